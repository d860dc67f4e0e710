// Package main uploads the knowledge documents to R2, optionally zstd-compressed.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/garyellow/askuenr-go/internal/config"
	"github.com/garyellow/askuenr-go/internal/knowledge"
	"github.com/garyellow/askuenr-go/internal/logger"
	"github.com/garyellow/askuenr-go/internal/r2client"
)

// CLI flags
var (
	dirFlag      = flag.String("dir", "", "Directory holding the documents (default: knowledge dir from config)")
	docsFlag     = flag.String("docs", "staff,guide,department", "Comma-separated documents to publish (staff,guide,department)")
	compressFlag = flag.Bool("compress", true, "zstd-compress documents before upload")
	timeoutFlag  = flag.Duration("timeout", 2*time.Minute, "Overall upload timeout")
)

// uploader is the subset of *r2client.Client used here.
type uploader interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if !cfg.R2.Enabled {
		_, _ = fmt.Fprintf(os.Stderr, "R2 is not enabled, set %s=true\n", config.EnvR2Enabled)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel).WithModule("publish")

	dir := *dirFlag
	if dir == "" {
		dir = cfg.KnowledgeDir
	}
	docs := parseDocuments(*docsFlag)
	if len(docs) == 0 {
		fmt.Println("⏭️  No documents to publish, skipping")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	client, err := r2client.New(ctx, r2client.Config{
		Endpoint:    cfg.R2.Endpoint(),
		AccessKeyID: cfg.R2.AccessKeyID,
		SecretKey:   cfg.R2.SecretAccessKey,
		BucketName:  cfg.R2.BucketName,
	})
	if err != nil {
		log.WithError(err).Error("Failed to create R2 client")
		os.Exit(1)
	}

	start := time.Now()
	var failed int
	for _, doc := range docs {
		key, size, err := publishDocument(ctx, client, dir, cfg.R2.KnowledgePrefix, doc, *compressFlag)
		if err != nil {
			log.WithError(err).WithField("document", doc).Error("Publish failed")
			failed++
			continue
		}
		log.WithField("document", doc).WithField("key", key).WithField("bytes", size).Info("Document published")
		fmt.Printf("✓ %s → %s (%d bytes)\n", doc, key, size)
	}

	if failed > 0 {
		_, _ = fmt.Fprintf(os.Stderr, "\n❌ %d of %d documents failed\n", failed, len(docs))
		os.Exit(1)
	}
	fmt.Printf("\n✅ Published %d documents in %v\n", len(docs), time.Since(start).Round(time.Millisecond))
}

// parseDocuments splits a comma-separated document list.
func parseDocuments(docs string) []string {
	parts := strings.Split(docs, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		doc := strings.TrimSpace(strings.ToLower(part))
		if doc != "" {
			result = append(result, doc)
		}
	}
	return result
}

// publishDocument uploads one document under prefix + file name, the key
// layout knowledge.R2Source reads. It returns the key and uploaded size.
func publishDocument(ctx context.Context, up uploader, dir, prefix, doc string, compress bool) (string, int, error) {
	name := knowledge.FileName(doc)
	if name == "" {
		return "", 0, fmt.Errorf("unknown document %q", doc)
	}

	raw, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return "", 0, fmt.Errorf("read %s: %w", name, err)
	}

	body := raw
	contentType := "application/json"
	if compress {
		var buf bytes.Buffer
		if err := r2client.Compress(&buf, bytes.NewReader(raw)); err != nil {
			return "", 0, err
		}
		body = buf.Bytes()
		contentType = "application/zstd"
	}

	key := prefix + name
	if _, err := up.Upload(ctx, key, bytes.NewReader(body), contentType); err != nil {
		return "", 0, fmt.Errorf("upload %s: %w", key, err)
	}
	return key, len(body), nil
}

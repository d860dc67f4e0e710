package knowledge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	domerrors "github.com/garyellow/askuenr-go/internal/errors"
	"github.com/garyellow/askuenr-go/internal/r2client"
)

// Source opens the raw bytes of a knowledge document.
// A missing document must be reported with an error matching domerrors.ErrNotFound.
type Source interface {
	Open(ctx context.Context, doc string) (io.ReadCloser, error)
}

// DirSource reads documents from files in a local directory.
// zstd-compressed files are decompressed transparently.
type DirSource struct {
	Dir string
}

// NewDirSource creates a DirSource rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{Dir: dir}
}

// Open implements Source.
func (s *DirSource) Open(_ context.Context, doc string) (io.ReadCloser, error) {
	name := FileName(doc)
	if name == "" {
		return nil, fmt.Errorf("%w: unknown document %q", domerrors.ErrNotFound, doc)
	}

	path := filepath.Join(s.Dir, name)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domerrors.ErrNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return r2client.MaybeDecompress(f)
}

// objectDownloader is the subset of *r2client.Client used by R2Source.
type objectDownloader interface {
	Download(ctx context.Context, key string) (io.ReadCloser, string, error)
}

// R2Source reads documents from an R2 bucket under a key prefix.
type R2Source struct {
	client objectDownloader
	prefix string
}

// NewR2Source creates an R2Source. Keys are prefix + file name.
func NewR2Source(client *r2client.Client, prefix string) *R2Source {
	return &R2Source{client: client, prefix: prefix}
}

// Open implements Source.
func (s *R2Source) Open(ctx context.Context, doc string) (io.ReadCloser, error) {
	name := FileName(doc)
	if name == "" {
		return nil, fmt.Errorf("%w: unknown document %q", domerrors.ErrNotFound, doc)
	}

	key := s.prefix + name
	body, _, err := s.client.Download(ctx, key)
	if err != nil {
		if errors.Is(err, r2client.ErrNotFound) {
			return nil, fmt.Errorf("%w: r2 object %s", domerrors.ErrNotFound, key)
		}
		return nil, err
	}
	return r2client.MaybeDecompress(body)
}

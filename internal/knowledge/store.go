package knowledge

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/garyellow/askuenr-go/internal/config"
	domerrors "github.com/garyellow/askuenr-go/internal/errors"
	"github.com/garyellow/askuenr-go/internal/logger"
	"github.com/garyellow/askuenr-go/internal/metrics"
	"golang.org/x/sync/errgroup"
)

// Load status values reported to metrics.
const (
	statusSuccess   = "success"
	statusMissing   = "missing"
	statusMalformed = "malformed"
	statusError     = "error"
)

// Store caches the knowledge documents for the process lifetime.
// The first Get loads all documents; later calls return the same value.
type Store struct {
	source  Source
	log     *logger.Logger
	metrics *metrics.Metrics

	once sync.Once
	docs *Documents
}

// NewStore creates a Store backed by source. metrics may be nil.
func NewStore(source Source, log *logger.Logger, m *metrics.Metrics) *Store {
	return &Store{
		source:  source,
		log:     log.WithModule("knowledge"),
		metrics: m,
	}
}

// Get returns the documents, loading them on first use.
// It never fails: a document that cannot be loaded is empty.
func (s *Store) Get(ctx context.Context) *Documents {
	s.once.Do(func() {
		// The load outlives the first caller's request.
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), config.KnowledgeLoad)
		defer cancel()
		s.docs = s.load(loadCtx)
	})
	return s.docs
}

func (s *Store) load(ctx context.Context) *Documents {
	start := time.Now()
	docs := &Documents{}

	var g errgroup.Group
	g.Go(func() error {
		s.loadDocument(ctx, DocStaff, func(r io.Reader) (int, error) {
			records, err := decodeStaff(r)
			docs.Staff = records
			return len(records), err
		})
		return nil
	})
	g.Go(func() error {
		s.loadDocument(ctx, DocGuide, func(r io.Reader) (int, error) {
			guide, err := decodeGuide(r)
			docs.Guide = guide
			return guide.recordCount(), err
		})
		return nil
	})
	g.Go(func() error {
		s.loadDocument(ctx, DocDepartment, func(r io.Reader) (int, error) {
			profile, err := decodeDepartment(r)
			docs.Department = profile
			return profile.recordCount(), err
		})
		return nil
	})
	_ = g.Wait()

	s.log.WithFields(map[string]any{
		"staff":       len(docs.Staff),
		"schools":     len(docs.Guide.Schools),
		"department":  docs.Department != nil,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Knowledge documents loaded")
	return docs
}

// loadDocument opens and decodes one document. decode must leave its target
// at the zero value when it returns an error.
func (s *Store) loadDocument(ctx context.Context, doc string, decode func(io.Reader) (int, error)) {
	log := s.log.WithField("document", doc)

	rc, err := s.source.Open(ctx, doc)
	if err != nil {
		status := statusError
		if domerrors.IsNotFound(err) {
			status = statusMissing
		}
		log.WithError(err).Warn("Knowledge document unavailable, using empty document")
		s.metrics.RecordKnowledgeLoad(doc, status, 0)
		return
	}
	defer func() { _ = rc.Close() }()

	records, err := decode(rc)
	if err != nil {
		log.WithError(err).Warn("Knowledge document malformed, using empty document")
		s.metrics.RecordKnowledgeLoad(doc, statusMalformed, 0)
		return
	}
	s.metrics.RecordKnowledgeLoad(doc, statusSuccess, records)
}

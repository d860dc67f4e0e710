// Package ask answers free-text questions about the university.
//
// A question is classified, tried against the knowledge documents and, when
// none of them can answer, sent to the external text generator. Every
// completed run is appended to the session's conversation log.
package ask

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/garyellow/askuenr-go/internal/config"
	"github.com/garyellow/askuenr-go/internal/ctxutil"
	domerrors "github.com/garyellow/askuenr-go/internal/errors"
	"github.com/garyellow/askuenr-go/internal/genai"
	"github.com/garyellow/askuenr-go/internal/intent"
	"github.com/garyellow/askuenr-go/internal/knowledge"
	"github.com/garyellow/askuenr-go/internal/logger"
	"github.com/garyellow/askuenr-go/internal/metrics"
	"github.com/garyellow/askuenr-go/internal/retrieval"
	"github.com/garyellow/askuenr-go/internal/storage"
	"github.com/google/uuid"
)

// ApologyText is returned when no source can answer.
const ApologyText = "I'm still learning about that specific aspect of UENR. " +
	"For the most accurate and current information, you might want to " +
	"check the official UENR website or contact the relevant department directly."

// ErrPanic marks a pipeline run aborted by a recovered panic.
var ErrPanic = errors.New("ask pipeline panicked")

// Operations that can abort a run.
var (
	loadHistoryOp = domerrors.NewWrapper("ask", "load_history")
	appendTurnOp  = domerrors.NewWrapper("ask", "append_turn")
	pipelineOp    = domerrors.NewWrapper("ask", "pipeline")
)

// KnowledgeProvider returns the knowledge documents. Implementations never fail.
type KnowledgeProvider interface {
	Get(ctx context.Context) *knowledge.Documents
}

// Answerer produces a generated answer when retrieval finds nothing.
type Answerer interface {
	Answer(ctx context.Context, question string, history []genai.Exchange) (string, bool)
}

// Request is a question submitted by a caller.
type Request struct {
	Question  string
	SessionID string // empty starts a new session
}

// Response is the answer and its provenance.
type Response struct {
	SessionID     string `json:"session_id"`
	Answer        string `json:"answer"`
	Source        string `json:"source"`
	Origin        string `json:"origin,omitempty"`
	IsAIAugmented bool   `json:"is_ai_augmented"`
}

// Service runs the question pipeline.
type Service struct {
	knowledge KnowledgeProvider
	chain     *retrieval.Chain
	fallback  Answerer
	turns     storage.ConversationRepository
	logger    *logger.Logger
	metrics   *metrics.Metrics
	newID     func() string
}

// ServiceConfig holds the collaborators of a Service.
type ServiceConfig struct {
	Knowledge KnowledgeProvider
	Chain     *retrieval.Chain // defaults to retrieval.DefaultChain
	Fallback  Answerer
	Turns     storage.ConversationRepository
	Logger    *logger.Logger
	Metrics   *metrics.Metrics
}

// NewService creates a Service.
func NewService(cfg ServiceConfig) *Service {
	chain := cfg.Chain
	if chain == nil {
		chain = retrieval.DefaultChain()
	}
	return &Service{
		knowledge: cfg.Knowledge,
		chain:     chain,
		fallback:  cfg.Fallback,
		turns:     cfg.Turns,
		logger:    cfg.Logger.WithModule("ask"),
		metrics:   cfg.Metrics,
		newID:     uuid.NewString,
	}
}

// Ask answers req and logs the turn. An error means the run was aborted
// before the turn was logged; the caller should report a generic failure.
func (s *Service) Ask(ctx context.Context, req Request) (resp *Response, err error) {
	start := time.Now()

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = s.newID()
	}
	ctx = ctxutil.WithSessionID(ctx, sessionID)

	defer func() {
		if r := recover(); r != nil {
			s.logger.WithField("panic", r).
				WithField("stack", string(debug.Stack())).
				ErrorContext(ctx, "Ask pipeline panicked")
			resp, err = nil, pipelineOp.Wrap(fmt.Errorf("%w: %v", ErrPanic, r))
		}
	}()

	history, err := s.turns.ListTurns(ctx, sessionID)
	if err != nil {
		return nil, loadHistoryOp.Wrap(err)
	}

	d := intent.Classify(req.Question)
	s.metrics.RecordIntent(string(d.Type))

	resp = &Response{SessionID: sessionID}
	if hit, ok := s.chain.Find(d, req.Question, s.knowledge.Get(ctx)); ok {
		resp.Answer = hit.Answer
		resp.Source = storage.SourceJSON
		resp.Origin = hit.Origin
	} else if answer, ok := s.fallback.Answer(ctx, req.Question, exchanges(history)); ok {
		resp.Answer = answer
		resp.Source = storage.SourceGemini
		resp.IsAIAugmented = true
	} else {
		resp.Answer = ApologyText
		resp.Source = storage.SourceFallback
	}

	turn := &storage.Turn{
		SessionID:     sessionID,
		Question:      req.Question,
		Answer:        resp.Answer,
		Source:        resp.Source,
		Origin:        resp.Origin,
		IsAIAugmented: resp.IsAIAugmented,
	}
	// A computed answer is logged even if the caller has gone away.
	persistCtx, cancel := context.WithTimeout(ctxutil.PreserveTracing(ctx), config.TurnPersist)
	defer cancel()
	if err := s.turns.AppendTurn(persistCtx, turn); err != nil {
		return nil, appendTurnOp.Wrap(err)
	}

	s.metrics.RecordAsk(resp.Source, resp.Origin, time.Since(start).Seconds())
	s.logger.WithFields(map[string]any{
		"intent":      d.Type,
		"source":      resp.Source,
		"origin":      resp.Origin,
		"history":     len(history),
		"duration_ms": time.Since(start).Milliseconds(),
	}).InfoContext(ctx, "Question answered")

	return resp, nil
}

func exchanges(turns []storage.Turn) []genai.Exchange {
	out := make([]genai.Exchange, 0, len(turns))
	for _, t := range turns {
		out = append(out, genai.Exchange{Question: t.Question, Answer: t.Answer})
	}
	return out
}

// Package retrieval answers classified questions from the knowledge documents.
//
// Three strategies are tried in a fixed order (department profile, staff
// directory, academic guide); the first one that produces an answer wins.
package retrieval

import (
	"github.com/garyellow/askuenr-go/internal/intent"
	"github.com/garyellow/askuenr-go/internal/knowledge"
)

// Origin tags identify the strategy that produced an answer.
const (
	OriginDepartment = "IT_DEPT_JSON"
	OriginStaff      = "STAFF_JSON"
	OriginGuide      = "GUIDE_JSON"
)

// Strategy is one lookup procedure against the knowledge documents.
type Strategy interface {
	// Origin returns the tag attached to answers from this strategy.
	Origin() string
	// Answer returns a formatted answer, or false when the strategy has none.
	Answer(d intent.Descriptor, question string, docs *knowledge.Documents) (string, bool)
}

// Result is a strategy hit.
type Result struct {
	Answer string
	Origin string
}

// Chain runs strategies in order and stops at the first answer.
type Chain struct {
	strategies []Strategy
}

// NewChain creates a Chain over strategies in the given order.
func NewChain(strategies ...Strategy) *Chain {
	return &Chain{strategies: strategies}
}

// DefaultChain returns department profile, staff directory and academic guide, in that order.
func DefaultChain() *Chain {
	return NewChain(DepartmentStrategy{}, StaffStrategy{}, GuideStrategy{})
}

// Origins returns the strategy tags in evaluation order.
func (c *Chain) Origins() []string {
	origins := make([]string, 0, len(c.strategies))
	for _, s := range c.strategies {
		origins = append(origins, s.Origin())
	}
	return origins
}

// Find returns the first strategy answer, or false when every strategy misses.
func (c *Chain) Find(d intent.Descriptor, question string, docs *knowledge.Documents) (Result, bool) {
	if docs == nil {
		return Result{}, false
	}
	for _, s := range c.strategies {
		if answer, ok := s.Answer(d, question, docs); ok && answer != "" {
			return Result{Answer: answer, Origin: s.Origin()}, true
		}
	}
	return Result{}, false
}

package main

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/garyellow/askuenr-go/internal/knowledge"
	"github.com/garyellow/askuenr-go/internal/logger"
	"github.com/stretchr/testify/assert"
)

func failedChecks(results []verifyResult) []string {
	var names []string
	for _, r := range results {
		if !r.passed {
			names = append(names, r.name)
		}
	}
	return names
}

func TestVerifyDocuments_Fixtures(t *testing.T) {
	t.Parallel()
	dir := filepath.Join("..", "..", "internal", "knowledge", "testdata")
	store := knowledge.NewStore(knowledge.NewDirSource(dir), logger.NewWithWriter("error", io.Discard), nil)

	results := verifyDocuments(store.Get(context.Background()))
	assert.Empty(t, failedChecks(results))
}

func TestVerifyDocuments_Empty(t *testing.T) {
	t.Parallel()

	results := verifyDocuments(&knowledge.Documents{})
	assert.Equal(t, []string{
		"Staff directory",
		"Guide schools",
		"Guide grading system",
		"Guide registration steps",
		"Guide overview",
		"Department profile",
	}, failedChecks(results))
}

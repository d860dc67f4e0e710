// Package main checks that the knowledge documents decode and carry the
// sections the retrieval strategies answer from.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/garyellow/askuenr-go/internal/knowledge"
	"github.com/garyellow/askuenr-go/internal/logger"
)

var dirFlag = flag.String("dir", "./data/knowledge", "Directory holding the knowledge documents")

type verifyResult struct {
	name    string
	passed  bool
	message string
}

func main() {
	flag.Parse()

	fmt.Println("🔍 AskUENR - Knowledge Document Verification")
	fmt.Println("============================================")

	store := knowledge.NewStore(knowledge.NewDirSource(*dirFlag), logger.NewWithWriter("error", io.Discard), nil)
	results := verifyDocuments(store.Get(context.Background()))

	passed, failed := 0, 0
	for _, r := range results {
		status := "❌"
		if r.passed {
			status = "✅"
			passed++
		} else {
			failed++
		}
		fmt.Printf("%s %s: %s\n", status, r.name, r.message)
	}

	fmt.Printf("\n📈 Summary: %d passed, %d failed\n", passed, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func check(name string, n int, what string) verifyResult {
	return verifyResult{
		name:    name,
		passed:  n > 0,
		message: fmt.Sprintf("%d %s", n, what),
	}
}

func verifyDocuments(docs *knowledge.Documents) []verifyResult {
	results := []verifyResult{check("Staff directory", len(docs.Staff), "records")}

	named := 0
	for _, s := range docs.Staff {
		if s.Name != "" {
			named++
		}
	}
	results = append(results, verifyResult{
		name:    "Staff names",
		passed:  named == len(docs.Staff),
		message: fmt.Sprintf("%d of %d records have a name", named, len(docs.Staff)),
	})

	g := docs.Guide
	results = append(results,
		check("Guide schools", len(g.Schools), "schools"),
		check("Guide grading system", len(g.Grades), "grade bands"),
		check("Guide registration steps", len(g.RegistrationSteps), "steps"),
		verifyResult{
			name:    "Guide overview",
			passed:  g.About.Overview != "",
			message: fmt.Sprintf("%d characters", len(g.About.Overview)),
		},
	)

	dept := docs.Department
	if dept == nil {
		return append(results, verifyResult{name: "Department profile", message: "missing"})
	}
	return append(results,
		verifyResult{name: "Department profile", passed: dept.Name != "", message: dept.Name},
		check("Department courses", len(dept.CoursesOffered), "courses"),
		check("Department programs", len(dept.Programs), "programs"),
		verifyResult{name: "Head of department", passed: dept.Head != nil, message: headName(dept.Head)},
	)
}

func headName(h *knowledge.HeadOfDepartment) string {
	if h == nil {
		return "missing"
	}
	return h.Name
}

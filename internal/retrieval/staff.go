package retrieval

import (
	"fmt"
	"strings"

	"github.com/garyellow/askuenr-go/internal/intent"
	"github.com/garyellow/askuenr-go/internal/knowledge"
)

// StaffStrategy answers person questions from the staff directory.
type StaffStrategy struct{}

// Origin implements Strategy.
func (StaffStrategy) Origin() string { return OriginStaff }

// Answer implements Strategy. A named target is looked up first; when no
// record carries that name, records are scored by keyword overlap.
func (StaffStrategy) Answer(d intent.Descriptor, _ string, docs *knowledge.Documents) (string, bool) {
	if d.Type != intent.PersonQuery || len(docs.Staff) == 0 {
		return "", false
	}

	if d.TargetPerson != "" {
		if rec, ok := findStaffByName(docs.Staff, d.TargetPerson); ok {
			return describeStaff(rec), true
		}
	}

	if rec, ok := bestStaffMatch(docs.Staff, d.Keywords); ok {
		return describeStaff(rec), true
	}
	return "", false
}

// findStaffByName returns the first record whose name contains target.
func findStaffByName(staff []knowledge.StaffRecord, target string) (knowledge.StaffRecord, bool) {
	target = strings.ToLower(target)
	for _, rec := range staff {
		if strings.Contains(strings.ToLower(rec.Name), target) {
			return rec, true
		}
	}
	return knowledge.StaffRecord{}, false
}

// bestStaffMatch scores each record by how many keywords occur in its name,
// position, role or department. The first record with the highest positive
// score wins; later records need a strictly higher score to replace it.
func bestStaffMatch(staff []knowledge.StaffRecord, keywords []string) (knowledge.StaffRecord, bool) {
	best, bestScore := -1, 0
	for i, rec := range staff {
		if score := scoreStaff(rec, keywords); score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return knowledge.StaffRecord{}, false
	}
	return staff[best], true
}

func scoreStaff(rec knowledge.StaffRecord, keywords []string) int {
	fields := []string{
		strings.ToLower(rec.Name),
		strings.ToLower(rec.CurrentPosition),
		strings.ToLower(rec.Role),
		strings.ToLower(rec.Department),
	}
	score := 0
	for _, kw := range keywords {
		for _, f := range fields {
			if strings.Contains(f, kw) {
				score++
				break
			}
		}
	}
	return score
}

func describeStaff(rec knowledge.StaffRecord) string {
	var b strings.Builder
	if rec.CurrentPosition != "" {
		fmt.Fprintf(&b, "%s is the %s at UENR.", rec.Name, rec.CurrentPosition)
	} else {
		fmt.Fprintf(&b, "%s works at UENR.", rec.Name)
	}
	if rec.Role != "" {
		fmt.Fprintf(&b, " Their role involves %s.", rec.Role)
	}
	if rec.Department != "" {
		fmt.Fprintf(&b, " They work in the %s.", rec.Department)
	}
	if known(rec.Qualifications) {
		fmt.Fprintf(&b, " Qualifications: %s.", rec.Qualifications)
	}
	if known(rec.Expertise) {
		fmt.Fprintf(&b, " Expertise: %s.", rec.Expertise)
	}
	switch n := len(rec.Achievements); {
	case n == 1:
		fmt.Fprintf(&b, " Notable achievements include: %s.", rec.Achievements[0])
	case n > 1:
		fmt.Fprintf(&b, " Notable achievements include: %s, and %d more.", rec.Achievements[0], n-1)
	}
	return b.String()
}

// known reports whether a scraped value carries information.
func known(v string) bool {
	return v != "" && !strings.EqualFold(v, "unknown")
}

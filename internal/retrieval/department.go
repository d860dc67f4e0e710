package retrieval

import (
	"fmt"
	"strings"

	"github.com/garyellow/askuenr-go/internal/intent"
	"github.com/garyellow/askuenr-go/internal/knowledge"
)

// maxListed caps how many courses or programmes an answer lists by name.
const maxListed = 5

// DepartmentStrategy answers from the IT department profile.
type DepartmentStrategy struct{}

// Origin implements Strategy.
func (DepartmentStrategy) Origin() string { return OriginDepartment }

// Answer implements Strategy. It only applies to questions about information technology.
func (DepartmentStrategy) Answer(d intent.Descriptor, question string, docs *knowledge.Documents) (string, bool) {
	if !aboutIT(d, question) || docs.Department == nil {
		return "", false
	}
	dept := docs.Department

	switch {
	case d.Type == intent.DepartmentQuery || d.Type == intent.AcademicQuery:
		switch {
		case d.HasKeyword("course"):
			return describeCourses(dept)
		case d.HasKeyword("program"):
			return describePrograms(dept)
		case d.Type == intent.DepartmentQuery:
			return describeDepartment(dept)
		}
	case d.Type == intent.PersonQuery && d.HasAnyKeyword("head", "hod"):
		return describeHead(dept)
	case d.Type == intent.PersonQuery:
		return findDepartmentStaff(dept, d.TargetPerson)
	}
	return "", false
}

func aboutIT(d intent.Descriptor, question string) bool {
	return d.TargetDepartment == intent.TopicIT ||
		d.TargetProgram == intent.TopicInformationTechnology ||
		intent.MentionsIT(question)
}

func describeDepartment(dept *knowledge.DepartmentProfile) (string, bool) {
	var b strings.Builder
	fmt.Fprintf(&b, "The %s is part of the %s at UENR.", dept.Name, dept.School)
	if dept.Location != "" {
		fmt.Fprintf(&b, " It is located in %s.", dept.Location)
	}
	if len(dept.Staff) > 0 {
		fmt.Fprintf(&b, " The department has %d staff members.", len(dept.Staff))
	}
	return b.String(), true
}

func describeHead(dept *knowledge.DepartmentProfile) (string, bool) {
	if dept.Head == nil {
		return "", false
	}
	return fmt.Sprintf("The Head of the %s is %s. They serve as %s in the %s.",
		dept.Name, dept.Head.Name, dept.Head.Position, dept.Head.School), true
}

func findDepartmentStaff(dept *knowledge.DepartmentProfile, target string) (string, bool) {
	if target == "" {
		return "", false
	}
	target = strings.ToLower(target)
	for _, s := range dept.Staff {
		if strings.Contains(strings.ToLower(s.Name), target) {
			return fmt.Sprintf("%s is a %s in the %s.", s.Name, s.Position, dept.Name), true
		}
	}
	return "", false
}

func describeCourses(dept *knowledge.DepartmentProfile) (string, bool) {
	if len(dept.CoursesOffered) == 0 {
		return "", false
	}
	return fmt.Sprintf("The %s offers courses including: %s",
		dept.Name, listWithRemainder(dept.CoursesOffered, "courses")), true
}

func describePrograms(dept *knowledge.DepartmentProfile) (string, bool) {
	if len(dept.Programs) == 0 {
		return "", false
	}
	programs := make([]string, 0, len(dept.Programs))
	for _, p := range dept.Programs {
		programs = append(programs, fmt.Sprintf("%s in %s (%s)", p.Degree, p.Name, p.Mode))
	}
	return "The department offers: " + strings.Join(programs, ", ") + ".", true
}

// listWithRemainder joins the first maxListed items and appends a count of
// the rest, e.g. "a, b, c, d, e, and 2 more courses."
func listWithRemainder(items []string, noun string) string {
	if len(items) <= maxListed {
		return strings.Join(items, ", ") + "."
	}
	return fmt.Sprintf("%s, and %d more %s.", strings.Join(items[:maxListed], ", "), len(items)-maxListed, noun)
}

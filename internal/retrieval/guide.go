package retrieval

import (
	"fmt"
	"strings"

	"github.com/garyellow/askuenr-go/internal/intent"
	"github.com/garyellow/askuenr-go/internal/knowledge"
)

const (
	maxGradeBands        = 3
	maxRegistrationSteps = 2
)

// GuideStrategy answers from the academic and student guide.
type GuideStrategy struct{}

// Origin implements Strategy.
func (GuideStrategy) Origin() string { return OriginGuide }

// Answer implements Strategy. Branches are checked in order and the first
// applicable one decides the outcome, even when it has nothing to say.
func (GuideStrategy) Answer(d intent.Descriptor, _ string, docs *knowledge.Documents) (string, bool) {
	guide := docs.Guide
	if guide.IsEmpty() {
		return "", false
	}

	switch {
	case d.Type == intent.AcademicQuery && d.HasKeyword("program"):
		return describeSchools(guide.Schools, d.Topic())
	case d.Type == intent.GradingQuery:
		return describeGrading(guide.Grades)
	case d.Type == intent.RegistrationQuery:
		return describeRegistration(guide.RegistrationSteps)
	case d.Type == intent.General || d.HasAnyKeyword("uenr", "university"):
		return describeAbout(guide.About)
	case d.HasAnyKeyword("location", "campus"):
		return describeLocation(guide.Location)
	default:
		return "", false
	}
}

// schoolName renders a document key such as "School_of_Engineering".
func schoolName(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}

func describeSchools(schools []knowledge.School, topic string) (string, bool) {
	if len(schools) == 0 {
		return "", false
	}

	if topic == "" {
		names := make([]string, 0, len(schools))
		for _, s := range schools {
			names = append(names, schoolName(s.Name))
		}
		return "UENR offers programs through these schools: " + strings.Join(names, ", ") + ".", true
	}

	for _, s := range schools {
		name := schoolName(s.Name)
		if !strings.Contains(strings.ToLower(name), topic) {
			continue
		}
		if len(s.Programmes) == 0 {
			return "", false
		}
		return fmt.Sprintf("%s offers: %s", name, listWithRemainder(s.Programmes, "programs")), true
	}
	return "", false
}

func describeGrading(grades []knowledge.GradeBand) (string, bool) {
	if len(grades) == 0 {
		return "", false
	}
	bands := make([]string, 0, maxGradeBands)
	for _, g := range grades[:min(len(grades), maxGradeBands)] {
		bands = append(bands, fmt.Sprintf("%s (%s) - %s", g.Grade, g.Mark, g.Interpretation))
	}
	return "UENR uses the following grading system: " + strings.Join(bands, "; ") + ".", true
}

func describeRegistration(steps []string) (string, bool) {
	if len(steps) == 0 {
		return "", false
	}
	return "To register for courses at UENR: " +
		strings.Join(steps[:min(len(steps), maxRegistrationSteps)], " ") +
		" For complete details, check the student guide.", true
}

func describeAbout(about knowledge.About) (string, bool) {
	var parts []string
	if about.Overview != "" {
		parts = append(parts, about.Overview)
	}
	if about.Vision != "" {
		parts = append(parts, "The university's vision is: "+about.Vision)
	}
	if about.Mission != "" {
		parts = append(parts, "Its mission is: "+about.Mission)
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " "), true
}

func describeLocation(loc knowledge.Location) (string, bool) {
	var parts []string
	if loc.MainCampus != "" {
		parts = append(parts, fmt.Sprintf("UENR's main campus is located in %s.", loc.MainCampus))
	}
	if len(loc.SatelliteCampuses) > 0 {
		parts = append(parts, fmt.Sprintf("It also has satellite campuses in %s.", strings.Join(loc.SatelliteCampuses, ", ")))
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " "), true
}

package intent

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// titledName matches an honorific followed by two name tokens.
	titledName = regexp.MustCompile(`(?i)\b(?:prof|dr|mr|mrs|ms)\b\.?\s+([a-z]+)\s+([a-z]+)`)

	// capitalizedWord matches one capitalized word; adjacent pairs form a name.
	capitalizedWord = regexp.MustCompile(`\b[A-Z][a-z]+\b`)
)

// sentenceOpeners are capitalized only because they start a question.
var sentenceOpeners = map[string]bool{
	"who": true, "what": true, "where": true, "when": true, "which": true,
	"how": true, "is": true, "are": true, "does": true, "do": true,
	"can": true, "tell": true, "the": true, "please": true, "give": true,
	"list": true, "show": true,
}

// extractName finds a personal name in the original question text. A titled
// name wins over a pair of capitalized words; only the first match counts.
func extractName(raw string) string {
	if m := titledName.FindStringSubmatch(raw); m != nil {
		return titleCase(m[1] + " " + m[2])
	}

	words := capitalizedWord.FindAllStringIndex(raw, -1)
	for i := 0; i+1 < len(words); i++ {
		first, second := words[i], words[i+1]
		if strings.TrimSpace(raw[first[1]:second[0]]) != "" {
			continue
		}
		firstWord := raw[first[0]:first[1]]
		if sentenceOpeners[strings.ToLower(firstWord)] {
			continue
		}
		return titleCase(firstWord + " " + raw[second[0]:second[1]])
	}
	return ""
}

// inferRole maps role words to a label when no name was found.
func inferRole(q question) string {
	switch {
	case q.has("vice-chancellor") || q.has("vice chancellor") || q.has("vc"):
		return RoleViceChancellor
	case q.has("head") && q.has("department"):
		return RoleHeadOfDepartment
	case q.has("dean"):
		return RoleDean
	default:
		return ""
	}
}

func titleCase(s string) string {
	// Casers are stateful; one per call keeps Classify safe for concurrent use.
	return cases.Title(language.English).String(s)
}

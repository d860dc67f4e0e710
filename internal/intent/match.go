package intent

import (
	"regexp"
	"strings"
)

var (
	keywordPattern = regexp.MustCompile(`\b[a-z]{3,}\b`)
	wordPattern    = regexp.MustCompile(`[a-z]+`)
	itAcronym      = regexp.MustCompile(`\bIT\b`)
)

// shortTermLen is the longest term that must match a whole word.
// Abbreviations such as "dr", "ms" and "it" would otherwise hit inside
// ordinary words ("address", "programs", "university").
const shortTermLen = 3

// question is a question prepared for term matching.
type question struct {
	raw   string
	lower string
	words []string
}

func newQuestion(raw string) question {
	lower := strings.ToLower(raw)
	return question{
		raw:   raw,
		lower: lower,
		words: wordPattern.FindAllString(lower, -1),
	}
}

// has reports whether term occurs in the question. Phrases and hyphenated
// terms match as substrings; single words follow wordMatches.
func (q question) has(term string) bool {
	if strings.ContainsAny(term, " -") {
		return strings.Contains(q.lower, term)
	}
	for _, w := range q.words {
		if wordMatches(w, term) {
			return true
		}
	}
	return false
}

func (q question) hasAny(terms []string) bool {
	for _, term := range terms {
		if q.has(term) {
			return true
		}
	}
	return false
}

func wordMatches(word, term string) bool {
	if len(term) <= shortTermLen {
		return word == term
	}
	return strings.HasPrefix(word, term)
}

// extractKeywords returns the 3+ letter words of the lower-cased text in order.
func extractKeywords(lower string) []string {
	kws := keywordPattern.FindAllString(lower, -1)
	if kws == nil {
		return []string{}
	}
	return kws
}

// itContext are the words that turn an adjacent lower-case "it" into the
// acronym ("the it department", "bsc it"). Elsewhere "it" is a pronoun.
var itContext = []string{"department", "dept", "program", "course", "degree", "bsc", "diploma", "lecturer"}

// MentionsIT reports whether the question names information technology:
// the upper-case acronym "IT", the spelled-out phrase, or a lower-case "it"
// next to a department, programme or course word.
func MentionsIT(raw string) bool {
	return newQuestion(raw).mentionsIT()
}

func (q question) mentionsIT() bool {
	if itAcronym.MatchString(q.raw) || strings.Contains(q.lower, TopicInformationTechnology) {
		return true
	}
	for i, w := range q.words {
		if w != "it" {
			continue
		}
		if i > 0 && wordMatchesAny(q.words[i-1], itContext) {
			return true
		}
		if i+1 < len(q.words) && wordMatchesAny(q.words[i+1], itContext) {
			return true
		}
	}
	return false
}

func wordMatchesAny(word string, terms []string) bool {
	for _, term := range terms {
		if wordMatches(word, term) {
			return true
		}
	}
	return false
}

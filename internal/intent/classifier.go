package intent

// rule maps a set of trigger terms to an intent type. enrich fills the
// entity fields once the rule has been selected.
type rule struct {
	typ    Type
	terms  []string
	enrich func(d *Descriptor, q question)
}

// topic maps a vocabulary match to the normalized tag it produces.
type topic struct {
	tag   string
	match func(q question) bool
}

func termTopic(tag string, terms ...string) topic {
	return topic{tag: tag, match: func(q question) bool { return q.hasAny(terms) }}
}

// Ordered: the first listed topic found in the question is used.
var (
	departmentTopics = []topic{
		{tag: TopicIT, match: question.mentionsIT},
		termTopic(TopicComputerScience, "computer science"),
		termTopic(TopicEngineering, "engineering"),
		termTopic(TopicSciences, "science"),
	}
	programTopics = []topic{
		{tag: TopicInformationTechnology, match: question.mentionsIT},
		termTopic(TopicComputerScience, "computer science"),
		termTopic(TopicEngineering, "engineering"),
	}
)

// rules is evaluated top to bottom; the first rule with a matching term wins.
// The keyword sets overlap ("head of department" is both a person and a
// department phrase), so the order is part of the classification contract.
var rules = []rule{
	{
		typ:    PersonQuery,
		terms:  []string{"who", "prof", "dr", "mr", "mrs", "ms", "director", "dean", "head", "vc", "vice-chancellor"},
		enrich: enrichPerson,
	},
	{
		typ:   DepartmentQuery,
		terms: []string{"department", "school", "faculty"},
		enrich: func(d *Descriptor, q question) {
			d.TargetDepartment = matchTopic(q, departmentTopics)
		},
	},
	{
		typ:   AcademicQuery,
		terms: []string{"course", "program", "degree", "study", "bsc", "diploma"},
		enrich: func(d *Descriptor, q question) {
			d.TargetProgram = matchTopic(q, programTopics)
		},
	},
	{typ: AdmissionQuery, terms: []string{"admission", "apply", "requirement"}},
	{typ: GradingQuery, terms: []string{"grade", "grading", "gpa", "score", "mark"}},
	{typ: FinancialQuery, terms: []string{"fee", "fees", "cost", "payment", "tuition"}},
	{typ: RegistrationQuery, terms: []string{"register", "registration"}},
	{typ: FacilityQuery, terms: []string{"library", "libraries", "hostel", "campus", "facility", "facilities"}},
}

// RuleOrder returns the intent types in evaluation order, ending with General.
func RuleOrder() []Type {
	order := make([]Type, 0, len(rules)+1)
	for _, r := range rules {
		order = append(order, r.typ)
	}
	return append(order, General)
}

// Classify turns a question into a Descriptor. It is deterministic and total:
// every input yields exactly one type.
func Classify(text string) Descriptor {
	q := newQuestion(text)
	d := Descriptor{
		Type:     General,
		Keywords: extractKeywords(q.lower),
	}

	for _, r := range rules {
		if !q.hasAny(r.terms) {
			continue
		}
		d.Type = r.typ
		if r.enrich != nil {
			r.enrich(&d, q)
		}
		break
	}
	return d
}

func enrichPerson(d *Descriptor, q question) {
	if name := extractName(q.raw); name != "" {
		d.TargetPerson = name
		return
	}
	d.TargetPerson = inferRole(q)
}

func matchTopic(q question, topics []topic) string {
	for _, t := range topics {
		if t.match(q) {
			return t.tag
		}
	}
	return ""
}

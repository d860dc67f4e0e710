// Package intent classifies free-text questions about the university into a
// single intent type with extracted entities and keywords.
//
// Classification is a pure function over an ordered rule table: the first
// rule whose terms appear in the question decides the type.
package intent

// Type is the classified kind of a question.
type Type string

// Intent types.
const (
	General           Type = "general"
	PersonQuery       Type = "person_query"
	DepartmentQuery   Type = "department_query"
	AcademicQuery     Type = "academic_query"
	AdmissionQuery    Type = "admission_query"
	GradingQuery      Type = "grading_query"
	FinancialQuery    Type = "financial_query"
	RegistrationQuery Type = "registration_query"
	FacilityQuery     Type = "facility_query"
)

// Normalized topic tags.
const (
	TopicIT                    = "it"
	TopicInformationTechnology = "information technology"
	TopicComputerScience       = "computer science"
	TopicEngineering           = "engineering"
	TopicSciences              = "sciences"
)

// Role labels inferred when no personal name is present.
const (
	RoleViceChancellor   = "Vice-Chancellor"
	RoleHeadOfDepartment = "Head of Department"
	RoleDean             = "Dean"
)

// Descriptor is the structured result of classifying one question.
type Descriptor struct {
	Type             Type
	TargetPerson     string   // extracted name or role label
	TargetDepartment string   // set for department queries
	TargetProgram    string   // set for academic queries
	Keywords         []string // lowercase alphabetic words of 3+ letters, in order, duplicates kept
}

// HasKeyword reports whether any keyword matches term. Terms of up to three
// letters must equal a keyword; longer terms match keywords they prefix, so
// "course" matches "courses".
func (d Descriptor) HasKeyword(term string) bool {
	for _, kw := range d.Keywords {
		if wordMatches(kw, term) {
			return true
		}
	}
	return false
}

// HasAnyKeyword reports whether any of terms matches a keyword.
func (d Descriptor) HasAnyKeyword(terms ...string) bool {
	for _, term := range terms {
		if d.HasKeyword(term) {
			return true
		}
	}
	return false
}

// Topic returns the department target, or the program target when unset.
func (d Descriptor) Topic() string {
	if d.TargetDepartment != "" {
		return d.TargetDepartment
	}
	return d.TargetProgram
}

package intent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		question   string
		wantType   Type
		person     string
		department string
		program    string
	}{
		{
			name:     "dean by role",
			question: "Who is the Dean of the School of Engineering?",
			wantType: PersonQuery,
			person:   RoleDean,
		},
		{
			name:     "titled name",
			question: "Tell me about Prof. Elvis Asare",
			wantType: PersonQuery,
			person:   "Elvis Asare",
		},
		{
			name:     "titled name lower case",
			question: "who is dr kofi sarpong adu-manu",
			wantType: PersonQuery,
			person:   "Kofi Sarpong",
		},
		{
			name:     "title without dot",
			question: "Who is Mrs Ama Owusu?",
			wantType: PersonQuery,
			person:   "Ama Owusu",
		},
		{
			name:     "capitalized pair",
			question: "Who is Elvis Asare?",
			wantType: PersonQuery,
			person:   "Elvis Asare",
		},
		{
			name:     "capitalized pair skips sentence opener",
			question: "Is Elvis Asare the VC?",
			wantType: PersonQuery,
			person:   "Elvis Asare",
		},
		{
			name:     "vice-chancellor role",
			question: "Who is the vice-chancellor of UENR?",
			wantType: PersonQuery,
			person:   RoleViceChancellor,
		},
		{
			name:     "vc role",
			question: "who is the vc",
			wantType: PersonQuery,
			person:   RoleViceChancellor,
		},
		{
			name:     "head of department role",
			question: "Who is the head of department?",
			wantType: PersonQuery,
			person:   RoleHeadOfDepartment,
		},
		{
			name:       "it department",
			question:   "What courses does the IT department offer?",
			wantType:   DepartmentQuery,
			department: TopicIT,
		},
		{
			name:       "lower-case it department",
			question:   "Tell me about the it department",
			wantType:   DepartmentQuery,
			department: TopicIT,
		},
		{
			name:     "pronoun it is not a topic",
			question: "Which department is it in?",
			wantType: DepartmentQuery,
		},
		{
			name:       "engineering school",
			question:   "Tell me about the school of engineering",
			wantType:   DepartmentQuery,
			department: TopicEngineering,
		},
		{
			name:       "computer science before sciences",
			question:   "Which faculty teaches computer science?",
			wantType:   DepartmentQuery,
			department: TopicComputerScience,
		},
		{
			name:       "sciences",
			question:   "What is in the School of Sciences?",
			wantType:   DepartmentQuery,
			department: TopicSciences,
		},
		{
			name:     "department without topic",
			question: "How many departments are there?",
			wantType: DepartmentQuery,
		},
		{
			name:     "academic it",
			question: "What BSc programs are available in IT?",
			wantType: AcademicQuery,
			program:  TopicInformationTechnology,
		},
		{
			name:     "academic spelled out",
			question: "Can I study information technology here?",
			wantType: AcademicQuery,
			program:  TopicInformationTechnology,
		},
		{
			name:     "academic engineering",
			question: "Which engineering degrees exist?",
			wantType: AcademicQuery,
			program:  TopicEngineering,
		},
		{
			name:     "courses outrank registration",
			question: "How do I register for courses?",
			wantType: AcademicQuery,
		},
		{name: "admission", question: "How do I apply for admission?", wantType: AdmissionQuery},
		{name: "grading", question: "What is the grading system at UENR?", wantType: GradingQuery},
		{name: "gpa", question: "What gpa do I need?", wantType: GradingQuery},
		{name: "fees", question: "How much are the fees?", wantType: FinancialQuery},
		{name: "registration", question: "When does registration open?", wantType: RegistrationQuery},
		{name: "facility", question: "Is the library open on weekends?", wantType: FacilityQuery},
		{name: "general", question: "Tell me about UENR", wantType: General},
		{name: "short term inside word", question: "Is there a dress code?", wantType: General},
		{name: "pronoun it is not IT", question: "Where is it located?", wantType: General},
		{name: "empty", question: "", wantType: General},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Classify(tt.question)
			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.person, got.TargetPerson)
			assert.Equal(t, tt.department, got.TargetDepartment)
			assert.Equal(t, tt.program, got.TargetProgram)
		})
	}
}

func TestClassify_Keywords(t *testing.T) {
	t.Parallel()

	got := Classify("Who is the Dean of the School of Engineering?")
	assert.Equal(t, []string{"who", "the", "dean", "the", "school", "engineering"}, got.Keywords)

	empty := Classify("Is it OK?")
	assert.NotNil(t, empty.Keywords)
	assert.Empty(t, empty.Keywords)

	mixed := Classify("CS101 vice-chancellor's office")
	assert.Equal(t, []string{"vice", "chancellor", "office"}, mixed.Keywords)
}

func TestClassify_Deterministic(t *testing.T) {
	t.Parallel()

	questions := []string{
		"Who is the Dean of the School of Engineering?",
		"What courses does the IT department offer?",
		"What is the grading system at UENR?",
		strings.Repeat("who head dean department course fee ", 25),
	}
	for _, q := range questions {
		first := Classify(q)
		for range 5 {
			assert.Equal(t, first, Classify(q))
		}
	}
}

func TestClassify_FirstRuleWins(t *testing.T) {
	t.Parallel()

	// Matches person, department, academic, grading and financial terms.
	got := Classify("Who is the head of the department that grades course fees?")
	assert.Equal(t, PersonQuery, got.Type)
	assert.Equal(t, RoleHeadOfDepartment, got.TargetPerson)
	assert.Empty(t, got.TargetDepartment)
	assert.Empty(t, got.TargetProgram)
}

func TestRuleOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Type{
		PersonQuery,
		DepartmentQuery,
		AcademicQuery,
		AdmissionQuery,
		GradingQuery,
		FinancialQuery,
		RegistrationQuery,
		FacilityQuery,
		General,
	}, RuleOrder())
}

func TestDescriptor_HasKeyword(t *testing.T) {
	t.Parallel()

	d := Descriptor{Keywords: []string{"what", "courses", "hod", "programmes"}}
	assert.True(t, d.HasKeyword("course"))
	assert.True(t, d.HasKeyword("program"))
	assert.True(t, d.HasKeyword("hod"))
	assert.False(t, d.HasKeyword("head"))
	assert.False(t, d.HasKeyword("wha"))
	assert.True(t, d.HasAnyKeyword("head", "hod"))
	assert.False(t, d.HasAnyKeyword())
}

func TestDescriptor_Topic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, TopicIT, Descriptor{TargetDepartment: TopicIT, TargetProgram: "x"}.Topic())
	assert.Equal(t, TopicEngineering, Descriptor{TargetProgram: TopicEngineering}.Topic())
	assert.Empty(t, Descriptor{}.Topic())
}

func TestMentionsIT(t *testing.T) {
	t.Parallel()

	assert.True(t, MentionsIT("IT department courses"))
	assert.True(t, MentionsIT("Tell me about Information Technology"))
	assert.True(t, MentionsIT("Tell me about the it department"))
	assert.True(t, MentionsIT("which courses does the it dept teach"))
	assert.True(t, MentionsIT("how long is the bsc it"))
	assert.True(t, MentionsIT("it programmes"))
	assert.False(t, MentionsIT("is it open"))
	assert.False(t, MentionsIT("what department is it in"))
	assert.False(t, MentionsIT("it is a good course"))
	assert.False(t, MentionsIT("UNIT fees"))
}

func TestExtractName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Peter Appiahene", extractName("Is DR. PETER APPIAHENE around?"))
	assert.Equal(t, "", extractName("who is the dean"))
	// The titled pattern wins even when a capitalized pair comes first.
	assert.Equal(t, "Ama Owusu", extractName("Computer Science lecturer Ms. Ama Owusu"))
}

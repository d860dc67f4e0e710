package knowledge

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openFixture(t *testing.T, doc string) *os.File {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", FileName(doc)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestDecodeStaff(t *testing.T) {
	t.Parallel()

	records, err := decodeStaff(openFixture(t, DocStaff))
	require.NoError(t, err)
	require.Len(t, records, 3)

	vc := records[0]
	assert.Equal(t, "Prof. Elvis Asare", vc.Name)
	assert.Equal(t, "Vice-Chancellor", vc.CurrentPosition)
	assert.Equal(t, "PhD Economics, University of Ghana", vc.Qualifications)
	assert.Equal(t, "unknown", vc.Expertise)
	assert.Len(t, vc.Achievements, 2)

	// Loosely typed fields are normalized at decode time.
	lecturer := records[1]
	assert.Empty(t, lecturer.Role)
	assert.Equal(t, "PhD Computer Science, MPhil Computer Science", lecturer.Qualifications)
	assert.Equal(t, []string{"Best paper award, IEEE Africon 2019"}, lecturer.Achievements)

	assert.Equal(t, "42", records[2].CurrentPosition)
	assert.Empty(t, records[2].Achievements)
}

func TestDecodeStaff_Malformed(t *testing.T) {
	t.Parallel()

	records, err := decodeStaff(strings.NewReader(`{"name": "not a list"}`))
	require.Error(t, err)
	assert.Nil(t, records)
}

func TestDecodeGuide_PreservesSchoolOrder(t *testing.T) {
	t.Parallel()

	guide, err := decodeGuide(openFixture(t, DocGuide))
	require.NoError(t, err)

	require.Len(t, guide.Schools, 3)
	assert.Equal(t, "School_of_Sciences", guide.Schools[0].Name)
	assert.Equal(t, "School_of_Engineering", guide.Schools[1].Name)
	assert.Equal(t, "School_of_Agriculture_and_Technology", guide.Schools[2].Name)
	assert.Equal(t, []string{"BSc Civil Engineering", "BSc Electrical Engineering"}, guide.Schools[1].Programmes)

	require.Len(t, guide.Grades, 4)
	assert.Equal(t, GradeBand{Grade: "A", Mark: "80-100", Interpretation: "Excellent"}, guide.Grades[0])
	assert.Len(t, guide.RegistrationSteps, 3)
	assert.Equal(t, "Sunyani, Bono Region", guide.Location.MainCampus)
	assert.Equal(t, []string{"Dormaa-Ahenkro", "Nsoatre"}, guide.Location.SatelliteCampuses)
	assert.False(t, guide.IsEmpty())
}

func TestDecodeGuide_MissingSections(t *testing.T) {
	t.Parallel()

	guide, err := decodeGuide(strings.NewReader(`{"About": {"Overview": "UENR overview"}}`))
	require.NoError(t, err)

	assert.Empty(t, guide.Schools)
	assert.Empty(t, guide.Grades)
	assert.Empty(t, guide.RegistrationSteps)
	assert.Equal(t, "UENR overview", guide.About.Overview)
	assert.Empty(t, guide.About.Vision)
	assert.False(t, guide.IsEmpty())

	empty, err := decodeGuide(strings.NewReader(`{}`))
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}

func TestDecodeDepartment(t *testing.T) {
	t.Parallel()

	profile, err := decodeDepartment(openFixture(t, DocDepartment))
	require.NoError(t, err)
	require.NotNil(t, profile)

	assert.Equal(t, "Department of Information Technology and Decision Sciences", profile.Name)
	assert.Len(t, profile.Staff, 2)
	assert.Len(t, profile.CoursesOffered, 7)
	assert.Equal(t, Program{Degree: "MSc", Name: "Information Technology", Mode: "Sandwich"}, profile.Programs[1])
	require.NotNil(t, profile.Head)
	assert.Equal(t, "Dr. Peter Appiahene", profile.Head.Name)
}

func TestDecodeDepartment_NoDepartmentKey(t *testing.T) {
	t.Parallel()

	profile, err := decodeDepartment(strings.NewReader(`{"faculty": {}}`))
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestDecodeDepartment_EmptyHead(t *testing.T) {
	t.Parallel()

	profile, err := decodeDepartment(strings.NewReader(`{"department": {"name": "IT", "head_of_department": {}}}`))
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Nil(t, profile.Head)
}

func TestCounts(t *testing.T) {
	t.Parallel()

	var nilDocs *Documents
	assert.Equal(t, map[string]int{DocStaff: 0, DocGuide: 0, DocDepartment: 0}, nilDocs.Counts())

	docs := &Documents{
		Staff:      []StaffRecord{{Name: "a"}, {Name: "b"}},
		Department: &DepartmentProfile{Name: "IT"},
		Guide:      AcademicGuide{Grades: []GradeBand{{Grade: "A"}}},
	}
	assert.Equal(t, map[string]int{DocStaff: 2, DocGuide: 1, DocDepartment: 1}, docs.Counts())
}

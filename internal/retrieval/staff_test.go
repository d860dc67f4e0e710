package retrieval

import (
	"testing"

	"github.com/garyellow/askuenr-go/internal/knowledge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestStaffMatch_FirstMaximumWins(t *testing.T) {
	t.Parallel()

	staff := []knowledge.StaffRecord{
		{Name: "A", CurrentPosition: "Lecturer"},
		{Name: "B", CurrentPosition: "Senior Registrar"},
		{Name: "C", CurrentPosition: "Deputy Registrar"},
	}

	got, ok := bestStaffMatch(staff, []string{"registrar"})
	require.True(t, ok)
	assert.Equal(t, "B", got.Name)
}

func TestBestStaffMatch_DuplicatesAreKept(t *testing.T) {
	t.Parallel()

	staff := []knowledge.StaffRecord{
		{Name: "Dr. Ama Owusu", CurrentPosition: "Lecturer"},
		{Name: "Dr. Ama Owusu", CurrentPosition: "Senior Lecturer", Role: "lecturer and examiner"},
	}

	// The second record scores higher, so the duplicate is not collapsed into the first.
	got, ok := bestStaffMatch(staff, []string{"senior", "lecturer"})
	require.True(t, ok)
	assert.Equal(t, "Senior Lecturer", got.CurrentPosition)

	byName, ok := findStaffByName(staff, "ama owusu")
	require.True(t, ok)
	assert.Equal(t, "Lecturer", byName.CurrentPosition)
}

func TestBestStaffMatch_NoPositiveScore(t *testing.T) {
	t.Parallel()

	_, ok := bestStaffMatch([]knowledge.StaffRecord{{Name: "A"}}, []string{"dean"})
	assert.False(t, ok)

	_, ok = bestStaffMatch([]knowledge.StaffRecord{{Name: "A"}}, nil)
	assert.False(t, ok)
}

func TestScoreStaff_CountsRepeatedKeywords(t *testing.T) {
	t.Parallel()

	rec := knowledge.StaffRecord{Name: "Kwame Mensah", Department: "School of Mines", Role: "the school treasurer"}
	assert.Equal(t, 3, scoreStaff(rec, []string{"school", "the", "school", "dean"}))
}

func TestDescribeStaff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rec  knowledge.StaffRecord
		want string
	}{
		{
			name: "minimal",
			rec:  knowledge.StaffRecord{Name: "Kwame Mensah"},
			want: "Kwame Mensah works at UENR.",
		},
		{
			name: "unknown values omitted",
			rec: knowledge.StaffRecord{
				Name:            "Kwame Mensah",
				CurrentPosition: "Registrar",
				Qualifications:  "Unknown",
				Expertise:       "Records management",
			},
			want: "Kwame Mensah is the Registrar at UENR. Expertise: Records management.",
		},
		{
			name: "single achievement",
			rec: knowledge.StaffRecord{
				Name:            "Kwame Mensah",
				CurrentPosition: "Registrar",
				Achievements:    []string{"Digitized student records"},
			},
			want: "Kwame Mensah is the Registrar at UENR. Notable achievements include: Digitized student records.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describeStaff(tt.rec))
		})
	}
}

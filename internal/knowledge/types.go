// Package knowledge provides read-only access to the three UENR reference
// documents (staff directory, academic and student guide, IT department
// profile). Documents are decoded into explicit types once per process and
// shared by every request.
package knowledge

// Document names used for sources, logs and metrics.
const (
	DocStaff      = "staff"
	DocGuide      = "guide"
	DocDepartment = "department"
)

// fileNames maps each document to its backing file (or object key suffix).
var fileNames = map[string]string{
	DocStaff:      "staffs.json",
	DocGuide:      "uenr_academic_and_student_guide.json",
	DocDepartment: "it_department_info.json",
}

// FileName returns the backing file name of a document, or "" if unknown.
func FileName(doc string) string {
	return fileNames[doc]
}

// StaffRecord is one entry of the staff directory.
type StaffRecord struct {
	Name            string
	CurrentPosition string
	Role            string
	Department      string
	Qualifications  string
	Expertise       string
	Achievements    []string
}

// DepartmentProfile describes the single department held in the profile document.
type DepartmentProfile struct {
	Name           string
	School         string
	Location       string
	Staff          []DepartmentStaff
	CoursesOffered []string
	Programs       []Program
	Head           *HeadOfDepartment // nil when the profile has no head entry
}

// DepartmentStaff is a staff member listed inside the department profile.
type DepartmentStaff struct {
	Name     string
	Position string
}

// Program is a degree programme offered by the department.
type Program struct {
	Degree string
	Name   string
	Mode   string
}

// HeadOfDepartment identifies the department head.
type HeadOfDepartment struct {
	Name     string
	Position string
	School   string
}

// School groups the programmes offered by one school, in document order.
type School struct {
	Name       string // raw key, e.g. "School_of_Engineering"
	Programmes []string
}

// GradeBand is one row of the grading system table.
type GradeBand struct {
	Grade          string
	Mark           string
	Interpretation string
}

// About holds the university overview statements.
type About struct {
	Overview string
	Vision   string
	Mission  string
}

// Location holds campus information.
type Location struct {
	MainCampus        string
	SatelliteCampuses []string
}

// AcademicGuide is the decoded academic and student guide.
type AcademicGuide struct {
	Schools           []School
	Grades            []GradeBand
	RegistrationSteps []string
	About             About
	Location          Location
}

// IsEmpty reports whether the guide carries no usable section.
func (g AcademicGuide) IsEmpty() bool {
	return len(g.Schools) == 0 &&
		len(g.Grades) == 0 &&
		len(g.RegistrationSteps) == 0 &&
		g.About == (About{}) &&
		g.Location.MainCampus == "" &&
		len(g.Location.SatelliteCampuses) == 0
}

// Documents bundles the three knowledge documents.
// A document that failed to load is present as its zero value.
type Documents struct {
	Staff      []StaffRecord
	Department *DepartmentProfile // nil when the profile document has no department
	Guide      AcademicGuide
}

// Counts returns a per-document record count for readiness reporting.
func (d *Documents) Counts() map[string]int {
	if d == nil {
		return map[string]int{DocStaff: 0, DocGuide: 0, DocDepartment: 0}
	}
	return map[string]int{
		DocStaff:      len(d.Staff),
		DocGuide:      d.Guide.recordCount(),
		DocDepartment: d.Department.recordCount(),
	}
}

func (g AcademicGuide) recordCount() int {
	return len(g.Schools) + len(g.Grades) + len(g.RegistrationSteps)
}

func (p *DepartmentProfile) recordCount() int {
	if p == nil {
		return 0
	}
	return 1
}

package knowledge

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// text decodes any JSON scalar into a string. null and objects decode to "",
// arrays are joined with ", ". Scraped documents are not consistently typed.
type text string

func (t *text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = text(strings.TrimSpace(s))
	case '[':
		var list textList
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*t = text(strings.Join(list, ", "))
	case '{':
		*t = ""
	default:
		// numbers and booleans keep their literal form
		*t = text(data)
	}
	return nil
}

// textList decodes a JSON array of scalars; a lone scalar becomes a single item.
// Empty items are dropped.
type textList []string

func (l *textList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	if data[0] != '[' {
		var single text
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		if single == "" {
			*l = nil
			return nil
		}
		*l = textList{string(single)}
		return nil
	}

	var items []text
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	out := make(textList, 0, len(items))
	for _, item := range items {
		if item != "" {
			out = append(out, string(item))
		}
	}
	*l = out
	return nil
}

type rawStaff struct {
	Name            text     `json:"name"`
	CurrentPosition text     `json:"current_position"`
	Role            text     `json:"role"`
	Department      text     `json:"department"`
	Qualifications  text     `json:"Education & Qualifications"`
	Expertise       text     `json:"Career / Work Experience / Research Interests"`
	Achievements    textList `json:"achievements"`
}

// decodeStaff decodes the staff directory (a JSON array of staff objects).
func decodeStaff(r io.Reader) ([]StaffRecord, error) {
	var raw []rawStaff
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode staff: %w", err)
	}

	records := make([]StaffRecord, 0, len(raw))
	for _, s := range raw {
		records = append(records, StaffRecord{
			Name:            string(s.Name),
			CurrentPosition: string(s.CurrentPosition),
			Role:            string(s.Role),
			Department:      string(s.Department),
			Qualifications:  string(s.Qualifications),
			Expertise:       string(s.Expertise),
			Achievements:    s.Achievements,
		})
	}
	return records, nil
}

type rawDepartmentFile struct {
	Department *struct {
		Name           text     `json:"name"`
		School         text     `json:"school"`
		Location       text     `json:"location"`
		CoursesOffered textList `json:"courses_offered"`
		Staff          []struct {
			Name     text `json:"name"`
			Position text `json:"position"`
		} `json:"staff"`
		Programs []struct {
			Degree text `json:"degree"`
			Name   text `json:"name"`
			Mode   text `json:"mode"`
		} `json:"programs"`
		HeadOfDepartment *struct {
			Name     text `json:"name"`
			Position text `json:"position"`
			School   text `json:"school"`
		} `json:"head_of_department"`
	} `json:"department"`
}

// decodeDepartment decodes the department profile document ({"department": {...}}).
// A document without a department object yields nil.
func decodeDepartment(r io.Reader) (*DepartmentProfile, error) {
	var raw rawDepartmentFile
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode department: %w", err)
	}
	if raw.Department == nil {
		return nil, nil
	}

	d := raw.Department
	profile := &DepartmentProfile{
		Name:           string(d.Name),
		School:         string(d.School),
		Location:       string(d.Location),
		CoursesOffered: d.CoursesOffered,
	}
	for _, s := range d.Staff {
		profile.Staff = append(profile.Staff, DepartmentStaff{Name: string(s.Name), Position: string(s.Position)})
	}
	for _, p := range d.Programs {
		profile.Programs = append(profile.Programs, Program{Degree: string(p.Degree), Name: string(p.Name), Mode: string(p.Mode)})
	}
	if h := d.HeadOfDepartment; h != nil && (h.Name != "" || h.Position != "" || h.School != "") {
		profile.Head = &HeadOfDepartment{Name: string(h.Name), Position: string(h.Position), School: string(h.School)}
	}
	return profile, nil
}

type rawGuide struct {
	ProgrammesOffered *orderedmap.OrderedMap[string, textList] `json:"Programmes_Offered"`
	GradingSystem     struct {
		Grades []struct {
			Grade          text `json:"Grade"`
			Mark           text `json:"Mark"`
			Interpretation text `json:"Interpretation"`
		} `json:"Grades"`
	} `json:"Grading_System"`
	CourseRegistration struct {
		StepsToRegister textList `json:"Steps_to_Register"`
	} `json:"Course_Registration"`
	About struct {
		Overview text `json:"Overview"`
		Vision   text `json:"Vision"`
		Mission  text `json:"Mission"`
	} `json:"About"`
	Location struct {
		MainCampus        text     `json:"Main_Campus"`
		SatelliteCampuses textList `json:"Satellite_Campuses"`
	} `json:"Location"`
}

// decodeGuide decodes the academic and student guide. School order follows
// the key order of Programmes_Offered in the document.
func decodeGuide(r io.Reader) (AcademicGuide, error) {
	var raw rawGuide
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return AcademicGuide{}, fmt.Errorf("decode guide: %w", err)
	}

	guide := AcademicGuide{
		RegistrationSteps: raw.CourseRegistration.StepsToRegister,
		About: About{
			Overview: string(raw.About.Overview),
			Vision:   string(raw.About.Vision),
			Mission:  string(raw.About.Mission),
		},
		Location: Location{
			MainCampus:        string(raw.Location.MainCampus),
			SatelliteCampuses: raw.Location.SatelliteCampuses,
		},
	}
	if raw.ProgrammesOffered != nil {
		for pair := raw.ProgrammesOffered.Oldest(); pair != nil; pair = pair.Next() {
			guide.Schools = append(guide.Schools, School{Name: pair.Key, Programmes: pair.Value})
		}
	}
	for _, g := range raw.GradingSystem.Grades {
		guide.Grades = append(guide.Grades, GradeBand{
			Grade:          string(g.Grade),
			Mark:           string(g.Mark),
			Interpretation: string(g.Interpretation),
		})
	}
	return guide, nil
}

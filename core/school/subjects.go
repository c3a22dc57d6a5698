package school

// SubjectCategory tags a subject with the catalog it belongs to.
type SubjectCategory string

const (
	CategoryCBC SubjectCategory = "CBC" // early-years band
	CategoryJSS SubjectCategory = "JSS" // junior band
)

type Subject struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category SubjectCategory `json:"category"`
}

// The two fixed subject catalogs. These are reference data, not stored state.
var (
	CBCSubjects = []Subject{
		{ID: "eng", Name: "English", Category: CategoryCBC},
		{ID: "kis", Name: "Kiswahili", Category: CategoryCBC},
		{ID: "mat", Name: "Mathematics", Category: CategoryCBC},
		{ID: "env", Name: "Environmental Activities", Category: CategoryCBC},
		{ID: "hyn", Name: "Hygiene & Nutrition", Category: CategoryCBC},
		{ID: "art", Name: "Creative Arts", Category: CategoryCBC},
		{ID: "rel", Name: "Religious Education", Category: CategoryCBC},
		{ID: "pe", Name: "Physical Education", Category: CategoryCBC},
	}

	JSSSubjects = []Subject{
		{ID: "eng_jss", Name: "English", Category: CategoryJSS},
		{ID: "kis_jss", Name: "Kiswahili", Category: CategoryJSS},
		{ID: "mat_jss", Name: "Mathematics", Category: CategoryJSS},
		{ID: "sci_jss", Name: "Integrated Science", Category: CategoryJSS},
		{ID: "soc_jss", Name: "Social Studies", Category: CategoryJSS},
		{ID: "pre_jss", Name: "Pre-Technical Studies", Category: CategoryJSS},
		{ID: "bus_jss", Name: "Business Studies", Category: CategoryJSS},
		{ID: "lif_jss", Name: "Life Skills", Category: CategoryJSS},
		{ID: "com_jss", Name: "Computer Studies", Category: CategoryJSS},
		{ID: "hea_jss", Name: "Health Education", Category: CategoryJSS},
	}
)

// SubjectsForGrade returns the assessable subject catalog for a grade:
// the 8-item CBC catalog for the early-years band, the 10-item JSS
// catalog for Grade 7-9.
func SubjectsForGrade(grade Grade) []Subject {
	if grade.IsEarlyYears() {
		return CBCSubjects
	}
	return JSSSubjects
}

// SubjectForGrade looks a subject up by id within the grade's catalog.
func SubjectForGrade(grade Grade, subjectID string) (Subject, bool) {
	for _, subj := range SubjectsForGrade(grade) {
		if subj.ID == subjectID {
			return subj, true
		}
	}
	return Subject{}, false
}

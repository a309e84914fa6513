package profile

import "strings"

// Unspecified is the sentinel stored in free-text fields the student left
// blank. It never satisfies a requirement that demands a concrete value.
const Unspecified = "Not specified"

// Boundary defaults applied by Normalized. Callers that bind untyped input
// (JSON bodies, CLI flags) rely on these instead of validating field by field.
const (
	DefaultGPA        = 3.5
	DefaultYear       = "Sophomore"
	DefaultMajor      = "Engineering"
	DefaultDiscipline = "General"
)

// Profile is the normalized set of student attributes every matching
// predicate reads. Skills, clubs and athletics are free text treated as
// keyword bags; year is exact-match sensitive ("Sophomore" vs "High School
// Senior" are distinct levels, not substrings of each other).
type Profile struct {
	GPA             float64 `json:"gpa"`
	University      string  `json:"university"`
	Major           string  `json:"major"`
	Year            string  `json:"year"`
	Heritage        string  `json:"heritage"`
	Gender          string  `json:"gender"`
	State           string  `json:"state"`
	Residency       string  `json:"residency"`
	FirstGeneration bool    `json:"first_generation"`
	Military        bool    `json:"military"`
	Disability      string  `json:"disability"`
	Discipline      string  `json:"discipline"`
	Skills          string  `json:"skills"`
	Clubs           string  `json:"clubs"`
	Athletics       string  `json:"athletics"`
}

// Normalized returns a copy with blank fields resolved to the documented
// defaults, so the matching core never sees a field it cannot interpret.
func (p Profile) Normalized() Profile {
	if p.GPA == 0 {
		p.GPA = DefaultGPA
	}
	if strings.TrimSpace(p.Major) == "" {
		p.Major = DefaultMajor
	}
	if strings.TrimSpace(p.Year) == "" {
		p.Year = DefaultYear
	}
	if strings.TrimSpace(p.Discipline) == "" {
		p.Discipline = DefaultDiscipline
	}

	for _, field := range []*string{
		&p.University, &p.Heritage, &p.Gender, &p.State, &p.Residency,
		&p.Disability, &p.Skills, &p.Clubs, &p.Athletics,
	} {
		if strings.TrimSpace(*field) == "" {
			*field = Unspecified
		}
	}

	return p
}

// Specified reports whether a profile field carries real information rather
// than the unspecified sentinel.
func Specified(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, Unspecified) && !strings.EqualFold(v, "unspecified")
}

// IsInternational reports whether the residency status excludes the profile
// from citizenship-restricted awards.
func (p Profile) IsInternational() bool {
	return strings.EqualFold(strings.TrimSpace(p.Residency), "International")
}

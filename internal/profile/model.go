package profile

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Gender of the person being named. Only "male" is recognised exactly;
// every other input reads as Other and is treated like Female.
type Gender int

const (
	GenderOther Gender = iota
	GenderMale
	GenderFemale
)

// ParseGender matches raw form input exactly (case-sensitive).
func ParseGender(s string) Gender {
	switch s {
	case "male":
		return GenderMale
	case "female":
		return GenderFemale
	default:
		return GenderOther
	}
}

// IsMale reports whether the male given-name pool applies.
func (g Gender) IsMale() bool { return g == GenderMale }

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	default:
		return "other"
	}
}

// Request holds the five form fields of one generation.
type Request struct {
	Surname   string `json:"surname" form:"surname"`
	GivenName string `json:"given_name" form:"given_name"`
	Gender    string `json:"gender" form:"gender"`
	Interests string `json:"interests" form:"interests"`
	Birthdate string `json:"birthdate" form:"birthdate"`
}

// Normalize returns a copy with surrounding whitespace removed from every field.
func (r Request) Normalize() Request {
	return Request{
		Surname:   strings.TrimSpace(r.Surname),
		GivenName: strings.TrimSpace(r.GivenName),
		Gender:    strings.TrimSpace(r.Gender),
		Interests: strings.TrimSpace(r.Interests),
		Birthdate: strings.TrimSpace(r.Birthdate),
	}
}

// EnglishName joins surname and given name with a single space.
func (r Request) EnglishName() string {
	return r.Surname + " " + r.GivenName
}

// Validate reports every field that is blank after trimming.
func (r Request) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"surname", r.Surname},
		{"given_name", r.GivenName},
		{"gender", r.Gender},
		{"interests", r.Interests},
		{"birthdate", r.Birthdate},
	}

	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &MissingFieldError{Fields: missing}
	}
	return nil
}

// Capitalize upper-cases the first rune and lower-cases the rest ("fEMALE" -> "Female").
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

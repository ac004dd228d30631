package engine

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"hanzi-namer/internal/profile"
)

// Source tells which table produced the middle character.
type Source string

const (
	SourceInterest Source = "interest"
	SourceSeasonal Source = "seasonal"
)

// Result of one generation.
type Result struct {
	Name            string           `json:"name"`
	Surname         string           `json:"surname"`
	Middle          string           `json:"middle"`
	Given           string           `json:"given"`
	Source          Source           `json:"source"`
	Interest        profile.Interest `json:"interest,omitempty"`
	Month           time.Month       `json:"month"`
	SurnameFallback bool             `json:"surname_fallback"`
	Explanation     string           `json:"explanation"`
}

// Generator builds Chinese names from the lookup tables.
type Generator struct {
	picker Picker
}

// NewGenerator uses p for every random choice. A nil p gets a randomly seeded FakerPicker.
func NewGenerator(p Picker) *Generator {
	if p == nil {
		p = NewFakerPicker(0)
	}
	return &Generator{picker: p}
}

// Translate maps each letter of name through the transliteration table,
// skipping anything the table does not know.
func Translate(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		sb.WriteString(LatinToChinese(r))
	}
	return sb.String()
}

// Surname transliterates the first character of englishName and keeps one rune.
// When nothing maps, a common surname is drawn instead and fallback is true.
func (g *Generator) Surname(englishName string) (surname string, fallback bool) {
	_, size := utf8.DecodeRuneInString(englishName)

	chars := Translate(englishName[:size])
	if chars == "" {
		chars = g.picker.Pick(surnames)
		fallback = true
	}
	_, size = utf8.DecodeRuneInString(chars)
	return chars[:size], fallback
}

// Middle picks from the first matching interest, else from the birth month.
func (g *Generator) Middle(interests string, month time.Month) (string, Source, profile.Interest, error) {
	if in, ok := profile.MatchInterest(interests); ok {
		return g.picker.Pick(interestCharacters[in]), SourceInterest, in, nil
	}

	chars, ok := seasonalCharacters[month]
	if !ok {
		return "", "", "", fmt.Errorf("%w: %d", ErrUnknownMonth, int(month))
	}
	return g.picker.Pick(chars), SourceSeasonal, "", nil
}

// Given picks from the male pool only for exactly "male".
func (g *Generator) Given(gender string) string {
	if profile.ParseGender(gender).IsMale() {
		return g.picker.Pick(maleGivenNames)
	}
	return g.picker.Pick(femaleGivenNames)
}

// Generate runs the full pipeline for one request. The request is expected
// to have passed Validate; failures come back as *GenerationError.
func (g *Generator) Generate(req profile.Request) (*Result, error) {
	birth, err := profile.ParseBirthdate(req.Birthdate)
	if err != nil {
		return nil, &GenerationError{Err: &BirthdateError{Value: req.Birthdate, Err: err}}
	}

	surname, fallback := g.Surname(req.EnglishName())

	middle, source, interest, err := g.Middle(req.Interests, birth.Month())
	if err != nil {
		return nil, &GenerationError{Err: err}
	}

	given := g.Given(req.Gender)

	res := &Result{
		Name:            surname + middle + given,
		Surname:         surname,
		Middle:          middle,
		Given:           given,
		Source:          source,
		Interest:        interest,
		Month:           birth.Month(),
		SurnameFallback: fallback,
	}
	res.Explanation = Explain(res, req.Interests)
	return res, nil
}

// Explain describes how each character of res was chosen.
func Explain(res *Result, interests string) string {
	surnameWhy := "1 character derived from your English name"
	if res.SurnameFallback {
		surnameWhy = "1 character chosen from common surnames"
	}

	middleWhy := "based on your birth month: " + res.Month.String()
	if res.Source == SourceInterest {
		middleWhy = "based on your interests: " + interests
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Your Chinese name %s was generated based on:\n", res.Name)
	fmt.Fprintf(&sb, "- Surname: %s (%s)\n", res.Surname, surnameWhy)
	fmt.Fprintf(&sb, "- Middle character: %s (%s)\n", res.Middle, middleWhy)
	fmt.Fprintf(&sb, "- Last character: %s (1 character based on your gender)\n", res.Given)
	return sb.String()
}

package output

import (
	"encoding/json"
	"io"

	"hanzi-namer/internal/engine"
	"hanzi-namer/internal/profile"
)

type JSONFormatter struct{}

func (f *JSONFormatter) Name() string { return "json" }

type jsonDoc struct {
	EnglishName string           `json:"english_name"`
	Gender      string           `json:"gender"`
	Interests   string           `json:"interests"`
	Birthdate   string           `json:"birthdate"`
	Results     []*engine.Result `json:"results"`
}

func (f *JSONFormatter) Write(w io.Writer, req profile.Request, results []*engine.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(jsonDoc{
		EnglishName: req.EnglishName(),
		Gender:      req.Gender,
		Interests:   req.Interests,
		Birthdate:   req.Birthdate,
		Results:     results,
	})
}

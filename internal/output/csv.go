package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"hanzi-namer/internal/engine"
	"hanzi-namer/internal/profile"
)

type CSVFormatter struct{}

func (f *CSVFormatter) Name() string { return "csv" }

var csvHeader = []string{"english_name", "name", "surname", "middle", "given", "source", "interest", "month", "surname_fallback"}

func (f *CSVFormatter) Write(w io.Writer, req profile.Request, results []*engine.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			req.EnglishName(),
			r.Name,
			r.Surname,
			r.Middle,
			r.Given,
			string(r.Source),
			string(r.Interest),
			strconv.Itoa(int(r.Month)),
			strconv.FormatBool(r.SurnameFallback),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

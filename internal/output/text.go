package output

import (
	"fmt"
	"io"

	"hanzi-namer/internal/engine"
	"hanzi-namer/internal/profile"
)

type TextFormatter struct{}

func (f *TextFormatter) Name() string { return "text" }

// Write prints the explanation for a single result, or one line per name.
func (f *TextFormatter) Write(w io.Writer, req profile.Request, results []*engine.Result) error {
	if len(results) == 1 {
		_, err := fmt.Fprintf(w, "%s -> %s\n\n%s", req.EnglishName(), results[0].Name, results[0].Explanation)
		return err
	}
	for i, r := range results {
		if _, err := fmt.Fprintf(w, "[%03d] %s (%s)\n", i+1, r.Name, r.Source); err != nil {
			return err
		}
	}
	return nil
}

package output

import (
	"io"

	"hanzi-namer/internal/engine"
	"hanzi-namer/internal/profile"
)

// Formatter writes generation results for the CLI.
type Formatter interface {
	Write(w io.Writer, req profile.Request, results []*engine.Result) error
	Name() string
}

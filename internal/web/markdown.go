package web

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"hanzi-namer/internal/engine"
)

var (
	markdown        = goldmark.New()
	explanationHTML = bluemonday.UGCPolicy()
)

// asciiPunct is every character CommonMark accepts after a backslash.
const asciiPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// renderExplanation turns the markdown explanation of res into sanitised HTML.
// The interests text is user input and is echoed literally.
// On a conversion error the plain text is returned, escaped by the template.
func renderExplanation(res *engine.Result, interests string) template.HTML {
	src := engine.Explain(res, escapeMarkdown(interests))
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(engine.Explain(res, interests)))
	}
	return template.HTML(explanationHTML.SanitizeBytes(buf.Bytes()))
}

// escapeMarkdown backslash-escapes punctuation and folds line breaks so s
// renders as one literal run of text inside a list item.
func escapeMarkdown(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r == '\n' || r == '\r':
			sb.WriteByte(' ')
		case r < 0x80 && strings.ContainsRune(asciiPunct, r):
			sb.WriteByte('\\')
			sb.WriteRune(r)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

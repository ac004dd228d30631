package output_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hanzi-namer/internal/engine"
	"hanzi-namer/internal/output"
	"hanzi-namer/internal/profile"
)

var req = profile.Request{
	Surname:   "Smith",
	GivenName: "John",
	Gender:    "male",
	Interests: "I love music",
	Birthdate: "2024-06-01",
}

func results(t *testing.T, n int) []*engine.Result {
	t.Helper()
	g := engine.NewGenerator(engine.NewFakerPicker(11))
	var out []*engine.Result
	for i := 0; i < n; i++ {
		res, err := g.Generate(req)
		require.NoError(t, err)
		out = append(out, res)
	}
	return out
}

func TestGetFormatter(t *testing.T) {
	for _, name := range []string{"", "text", "JSON", " csv "} {
		f, err := output.GetFormatter(name)
		require.NoError(t, err, name)
		assert.NotNil(t, f)
	}
	_, err := output.GetFormatter("xml")
	assert.Error(t, err)
}

func TestTextFormatter_SingleShowsExplanation(t *testing.T) {
	res := results(t, 1)
	var buf bytes.Buffer
	require.NoError(t, (&output.TextFormatter{}).Write(&buf, req, res))

	assert.True(t, strings.HasPrefix(buf.String(), "Smith John -> "+res[0].Name))
	assert.Contains(t, buf.String(), "Middle character: "+res[0].Middle)
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&output.JSONFormatter{}).Write(&buf, req, results(t, 3)))

	var doc struct {
		EnglishName string           `json:"english_name"`
		Results     []*engine.Result `json:"results"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "Smith John", doc.EnglishName)
	assert.Len(t, doc.Results, 3)
	assert.Equal(t, engine.SourceInterest, doc.Results[0].Source)
}

func TestCSVFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&output.CSVFormatter{}).Write(&buf, req, results(t, 2)))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "english_name", rows[0][0])
	assert.Equal(t, "music", rows[1][6])
	assert.Equal(t, "6", rows[1][7])
}

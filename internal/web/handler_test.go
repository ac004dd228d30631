package web_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hanzi-namer/internal/engine"
	"hanzi-namer/internal/web"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(seed int64) *gin.Engine {
	gen := engine.NewGenerator(engine.NewFakerPicker(seed))
	return web.NewRouter(gen, log.New(io.Discard))
}

func formValues() url.Values {
	return url.Values{
		"surname":    {"Smith"},
		"given_name": {"John"},
		"gender":     {"male"},
		"interests":  {"I love music"},
		"birthdate":  {"2024-06-01"},
	}
}

func postForm(t *testing.T, r http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetRendersEmptyForm(t *testing.T) {
	r := newTestRouter(1)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `name="given_name"`)
	assert.NotContains(t, body, `id="result"`)
	assert.NotContains(t, body, `id="error"`)
	assert.NotEmpty(t, w.Header().Get(web.RequestIDHeader))
}

func TestPostGeneratesName(t *testing.T) {
	pattern := regexp.MustCompile(`<h2 id="name">斯[韵歌乐音][伟强勇杰涛明超浩宇鑫]</h2>`)

	for seed := int64(1); seed <= 10; seed++ {
		w := postForm(t, newTestRouter(seed), formValues())
		require.Equal(t, http.StatusOK, w.Code)

		body := w.Body.String()
		assert.Regexp(t, pattern, body)
		assert.Contains(t, body, `<dd id="original-name">Smith John</dd>`)
		assert.Contains(t, body, `<dd id="gender">Male</dd>`)
		assert.Contains(t, body, `<dd id="birthdate">2024-06-01</dd>`)
		assert.Contains(t, body, "<li>Middle character:")
	}
}

func TestPostMissingField(t *testing.T) {
	form := formValues()
	form.Set("birthdate", "")

	w := postForm(t, newTestRouter(1), form)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Please fill in all fields")
	assert.NotContains(t, body, `id="result"`)
	assert.NotContains(t, body, `id="name"`)
}

func TestPostWhitespaceOnlyCountsAsMissing(t *testing.T) {
	form := formValues()
	form.Set("surname", "   ")

	w := postForm(t, newTestRouter(1), form)
	assert.Contains(t, w.Body.String(), "Please fill in all fields")
}

func TestPostMalformedBirthdate(t *testing.T) {
	for _, bad := range []string{"15-01-2024", "not-a-date"} {
		form := formValues()
		form.Set("birthdate", bad)

		w := postForm(t, newTestRouter(1), form)
		require.Equal(t, http.StatusOK, w.Code, bad)

		body := w.Body.String()
		assert.Contains(t, body, "Error generating Chinese name: ")
		assert.NotContains(t, body, `id="result"`)
	}
}

func TestPostEscapesInterests(t *testing.T) {
	form := formValues()
	form.Set("interests", "<script>alert(1)</script> music")

	w := postForm(t, newTestRouter(1), form)
	body := w.Body.String()
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestPostEchoesInterestsLiterally(t *testing.T) {
	explanation := regexp.MustCompile(`(?s)<div class="explanation">(.*?)</div>`)

	cases := []struct {
		interests string
		want      string
		absent    string
	}{
		{"<i>music</i> fan", "based on your interests: &lt;i&gt;music&lt;/i&gt; fan)", "<i>"},
		{"*sports* and music", "based on your interests: *sports* and music)", "<em>"},
		{"music `code` art", "based on your interests: music `code` art)", "<code>"},
		{"[art](http://x.test) #1", "based on your interests: [art](http://x.test) #1)", "<a "},
	}

	for _, tc := range cases {
		form := formValues()
		form.Set("interests", tc.interests)

		w := postForm(t, newTestRouter(1), form)
		require.Equal(t, http.StatusOK, w.Code, tc.interests)

		m := explanation.FindStringSubmatch(w.Body.String())
		require.Len(t, m, 2, tc.interests)
		assert.Contains(t, m[1], tc.want, tc.interests)
		assert.NotContains(t, m[1], tc.absent, tc.interests)
	}
}

func TestPanicRendersErrorPage(t *testing.T) {
	r := newTestRouter(1)
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), engine.GenerationErrorPrefix+"internal error")
	assert.NotContains(t, w.Body.String(), `id="result"`)
}

func TestAPIGenerate(t *testing.T) {
	r := newTestRouter(5)

	cases := []struct {
		name   string
		body   string
		status int
		check  func(t *testing.T, got map[string]any)
	}{
		{
			name:   "ok",
			body:   `{"surname":"Smith","given_name":"John","gender":"male","interests":"I love music","birthdate":"2024-06-01"}`,
			status: http.StatusOK,
			check: func(t *testing.T, got map[string]any) {
				assert.Regexp(t, `^斯[韵歌乐音][伟强勇杰涛明超浩宇鑫]$`, got["name"])
				assert.Equal(t, "interest", got["source"])
			},
		},
		{
			name:   "missing",
			body:   `{"surname":"Smith","given_name":"John","gender":"male","interests":"music"}`,
			status: http.StatusBadRequest,
			check: func(t *testing.T, got map[string]any) {
				assert.Equal(t, "Please fill in all fields", got["error"])
				assert.Equal(t, []any{"birthdate"}, got["fields"])
			},
		},
		{
			name:   "bad birthdate",
			body:   `{"surname":"Smith","given_name":"John","gender":"male","interests":"music","birthdate":"not-a-date"}`,
			status: http.StatusUnprocessableEntity,
			check: func(t *testing.T, got map[string]any) {
				assert.Contains(t, got["error"], "Error generating Chinese name: ")
			},
		},
		{
			name:   "invalid json",
			body:   `{`,
			status: http.StatusBadRequest,
			check:  func(t *testing.T, got map[string]any) { assert.Equal(t, "invalid json", got["error"]) },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/names", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, tc.status, w.Code)
			var got map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			tc.check(t, got)
		})
	}
}

func TestRequestIDIsEchoed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(web.RequestIDHeader, "abc123")
	w := httptest.NewRecorder()
	newTestRouter(1).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc123", w.Header().Get(web.RequestIDHeader))
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

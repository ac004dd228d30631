package web

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"hanzi-namer/internal/engine"
	"hanzi-namer/internal/profile"
)

const indexTemplate = "index.html"

type pageData struct {
	Error        string
	Name         string
	Explanation  template.HTML
	OriginalName string
	Gender       string
	Interests    string
	Birthdate    string
}

// Handler serves the name form and the JSON API.
type Handler struct {
	Gen    *engine.Generator
	Logger *log.Logger
}

// NewHandler returns a Handler that generates names with gen.
func NewHandler(gen *engine.Generator, logger *log.Logger) *Handler {
	return &Handler{Gen: gen, Logger: logger}
}

// RegisterRoutes mounts the form, API and health routes on r.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.showForm)
	r.POST("/", h.submitForm)
	r.POST("/api/names", h.apiGenerate)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func (h *Handler) showForm(c *gin.Context) {
	c.HTML(http.StatusOK, indexTemplate, pageData{})
}

func (h *Handler) submitForm(c *gin.Context) {
	req := profile.Request{
		Surname:   c.PostForm("surname"),
		GivenName: c.PostForm("given_name"),
		Gender:    c.PostForm("gender"),
		Interests: c.PostForm("interests"),
		Birthdate: c.PostForm("birthdate"),
	}.Normalize()

	res, err := h.generate(c, req)
	if err != nil {
		c.HTML(http.StatusOK, indexTemplate, pageData{Error: userMessage(err)})
		return
	}

	c.HTML(http.StatusOK, indexTemplate, pageData{
		Name:         res.Name,
		Explanation:  renderExplanation(res, req.Interests),
		OriginalName: req.EnglishName(),
		Gender:       profile.Capitalize(req.Gender),
		Interests:    req.Interests,
		Birthdate:    req.Birthdate,
	})
}

func (h *Handler) apiGenerate(c *gin.Context) {
	var req profile.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	req = req.Normalize()

	res, err := h.generate(c, req)
	if err != nil {
		var missing *profile.MissingFieldError
		if errors.As(err, &missing) {
			c.JSON(http.StatusBadRequest, gin.H{"error": missing.Error(), "fields": missing.Fields})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": userMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":        res.Name,
		"explanation": res.Explanation,
		"source":      res.Source,
	})
}

// generate validates then runs the generator, logging failures.
func (h *Handler) generate(c *gin.Context, req profile.Request) (*engine.Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	res, err := h.Gen.Generate(req)
	if err != nil {
		h.Logger.Warn("generation failed", "err", err, "request_id", c.GetString(requestIDKey))
		return nil, err
	}
	return res, nil
}

func userMessage(err error) string {
	var missing *profile.MissingFieldError
	if errors.As(err, &missing) {
		return missing.Error()
	}
	var genErr *engine.GenerationError
	if errors.As(err, &genErr) {
		return genErr.UserMessage()
	}
	return engine.GenerationErrorPrefix + err.Error()
}

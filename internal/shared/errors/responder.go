package errors

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContentTypeProblemJSON is the media type for Problem Details responses.
const ContentTypeProblemJSON = "application/problem+json"

// HTMLRenderer renders a problem as an HTML error page for browser routes.
type HTMLRenderer func(c *gin.Context, problem ProblemDetail)

// ErrorMapper maps domain/application errors to ProblemDetail.
type ErrorMapper func(err error) (ProblemDetail, bool)

// Responder translates errors into responses: problem+json for API
// clients, a rendered error page when the client prefers HTML and a
// renderer is configured.
type Responder struct {
	mappers  []ErrorMapper
	htmlPage HTMLRenderer
}

// NewResponder creates a responder with custom error mappers.
func NewResponder(mappers ...ErrorMapper) *Responder {
	return &Responder{mappers: mappers}
}

// WithHTMLRenderer installs the error-page renderer for browser routes.
func (r *Responder) WithHTMLRenderer(renderer HTMLRenderer) *Responder {
	r.htmlPage = renderer
	return r
}

// Respond sends a ProblemDetail, negotiating the representation.
func (r *Responder) Respond(c *gin.Context, problem ProblemDetail) {
	if problem.Instance == "" {
		problem.Instance = c.Request.URL.Path
	}
	if r.htmlPage != nil && prefersHTML(c) {
		r.htmlPage(c, problem)
		return
	}
	c.Header("Content-Type", ContentTypeProblemJSON)
	c.JSON(problem.Status, problem)
}

// RespondError tries each mapper, then unwraps ProblemDetail errors, and
// finally falls back to an internal server error.
func (r *Responder) RespondError(c *gin.Context, err error) {
	for _, mapper := range r.mappers {
		if problem, ok := mapper(err); ok {
			r.Respond(c, problem)
			return
		}
	}
	var problem ProblemDetail
	if errors.As(err, &problem) {
		r.Respond(c, problem)
		return
	}
	r.Respond(c, ErrInternal.WithDetail(err.Error()))
}

// NotFound sends a 404 problem response.
func (r *Responder) NotFound(c *gin.Context, resourceType string, identifier any) {
	r.Respond(c, NewNotFoundProblem(resourceType, identifier))
}

// BadRequest sends a 400 problem response.
func (r *Responder) BadRequest(c *gin.Context, detail string) {
	r.Respond(c, ErrBadRequest.WithDetail(detail))
}

// HTTPStatusFromError extracts an HTTP status from an error if possible.
func HTTPStatusFromError(err error) int {
	var problem ProblemDetail
	if errors.As(err, &problem) {
		return problem.Status
	}
	return http.StatusInternalServerError
}

func prefersHTML(c *gin.Context) bool {
	accept := c.GetHeader("Accept")
	if accept == "" {
		return false
	}
	htmlIdx := strings.Index(accept, "text/html")
	if htmlIdx < 0 {
		return false
	}
	jsonIdx := strings.Index(accept, "application/json")
	return jsonIdx < 0 || htmlIdx < jsonIdx
}

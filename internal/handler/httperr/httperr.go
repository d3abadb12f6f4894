package httperr

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"appointment-system/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	TitleValidation = "One or more validation errors occurred."
	TitleNotFound   = "Not found"
	TitleConflict   = "Conflict"
	TitleInternal   = "Internal server error"
	TitleBadRequest = "Invalid request"
)

// Problem is the error body returned by every failing endpoint.
type Problem struct {
	Status int                 `json:"status"`
	Title  string              `json:"title"`
	Detail string              `json:"detail,omitempty"`
	Errors map[string][]string `json:"errors,omitempty"`
}

// AbortWithProblem preserves the original error on the gin context for logging.
func AbortWithProblem(c *gin.Context, status int, err error, title, detail string, fields map[string][]string) {
	if err == nil {
		panic("AbortWithProblem: err cannot be nil")
	}

	p := Problem{Status: status, Title: title, Detail: detail, Errors: fields}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: p,
	})
	c.AbortWithStatusJSON(status, p)
}

func AbortWithValidation(c *gin.Context, verr *errs.ValidationError) {
	AbortWithProblem(c, http.StatusBadRequest, verr, TitleValidation, "", verr.Fields())
}

// AbortWithFailure maps a failed command or query onto a problem response.
// Unclassified errors are logged in full and answered with a generic 500.
func AbortWithFailure(c *gin.Context, err error, notFoundDetail string) {
	var verr *errs.ValidationError
	switch {
	case errors.As(err, &verr):
		AbortWithValidation(c, verr)
	case errs.Is(err, errs.ErrNotFound):
		AbortWithProblem(c, http.StatusNotFound, err, TitleNotFound, notFoundDetail, nil)
	case errs.Is(err, errs.ErrConflict):
		AbortWithProblem(c, http.StatusConflict, err, TitleConflict, "", nil)
	default:
		level := slog.LevelError
		if errors.Is(err, context.Canceled) {
			level = slog.LevelWarn
		}
		slog.Log(c.Request.Context(), level, "unexpected failure",
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()),
			slog.Any("stack", errs.ExtractStackLines(err, 12)),
		)
		AbortWithProblem(c, http.StatusInternalServerError, err, TitleInternal, "", nil)
	}
}

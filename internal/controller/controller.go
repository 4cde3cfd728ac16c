package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/lshigami/examcraft/internal/apperror"
	"github.com/lshigami/examcraft/internal/dto"
	"github.com/rs/zerolog/log"
)

// WriteError renders err as {"error", "message"} with the status of its kind.
// Storage and upstream details only reach the log.
func WriteError(c *gin.Context, err error) {
	resp, msg := apperror.ResponseFor(err)

	event := log.Warn()
	if resp.Status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).
		Str("kind", apperror.KindOf(err).String()).
		Str("method", c.Request.Method).
		Str("path", c.FullPath()).
		Msg("Request failed")

	c.AbortWithStatusJSON(resp.Status, dto.ErrorResponse{Error: resp.Category, Message: msg})
}

// BindJSON binds and validates the body, writing a 400 on failure.
func BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		WriteError(c, apperror.Validation("invalid request body: %s", describeBindError(err)))
		return false
	}
	return true
}

// describeBindError flattens validator failures into "field: rule" pairs so the
// client sees which field was rejected instead of the raw struct path.
func describeBindError(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule = fmt.Sprintf("%s=%s", rule, fe.Param())
		}
		parts = append(parts, fmt.Sprintf("%s: %s", fieldPath(fe), rule))
	}
	return strings.Join(parts, "; ")
}

// fieldPath drops the top-level struct name from the namespace, e.g.
// "CreateExamRequest.Sections[0].Title" becomes "Sections[0].Title".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// PathID parses a positive integer path parameter, writing a 400 on failure.
func PathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		WriteError(c, apperror.Validation("invalid %s: %q", name, c.Param(name)))
		return 0, false
	}
	return id, true
}

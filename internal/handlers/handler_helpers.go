package handlers

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vinque/vinque_backend/internal/apperrors"
	"github.com/vinque/vinque_backend/internal/core/domain"
	"github.com/vinque/vinque_backend/internal/middleware"
)

// fail hands err to the error middleware.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
}

// bindJSON decodes the body into req, reporting binding failures as validation errors.
func bindJSON(c *gin.Context, req any, message string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind JSON", slog.String("error", err.Error()))
		fail(c, apperrors.Wrap(apperrors.NewValidationError(message), err))
		return false
	}
	return true
}

// bindForm decodes a JSON, urlencoded or multipart body depending on its content type.
func bindForm(c *gin.Context, req any, message string) bool {
	if err := c.ShouldBind(req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind form", slog.String("error", err.Error()))
		fail(c, apperrors.Wrap(apperrors.NewValidationError(message), err))
		return false
	}
	return true
}

// idParam parses a positive integer path parameter.
func idParam(c *gin.Context, name, message string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		fail(c, apperrors.NewValidationError(message))
		return 0, false
	}
	return id, true
}

// optionalInt64Query parses an optional integer query parameter. Malformed
// values are treated as absent.
func optionalInt64Query(c *gin.Context, name string) *int64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return nil
	}
	return &v
}

// uploadedFiles tracks opened multipart parts so they are closed once the
// request is done.
type uploadedFiles struct {
	opened []multipart.File
}

// get returns the named part as a FileUpload, or nil when it was not sent.
func (u *uploadedFiles) get(c *gin.Context, field string) (*domain.FileUpload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.NewValidationError("Could not read uploaded file."), err)
	}
	f, err := header.Open()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.NewValidationError("Could not read uploaded file."), err)
	}
	u.opened = append(u.opened, f)
	return &domain.FileUpload{
		Filename:    header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Body:        f,
	}, nil
}

func (u *uploadedFiles) close() {
	for _, f := range u.opened {
		_ = f.Close()
	}
	u.opened = nil
}

package handlers

import (
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	portssvc "github.com/vinque/vinque_backend/internal/core/ports/services"
	"github.com/vinque/vinque_backend/internal/middleware"
	"github.com/vinque/vinque_backend/internal/platform/config"
	"github.com/vinque/vinque_backend/internal/platform/upload"
)

// imageContentTypes pins the MIME type of image extensions regardless of
// what the store recorded.
var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

type uploadsHandler struct {
	files portssvc.FileSvcFacade
}

func registerUploadRoutes(r *gin.Engine, cfg *config.Config, files portssvc.FileSvcFacade) {
	h := &uploadsHandler{files: files}

	uploads := r.Group("/uploads", middleware.UploadsHeaders(cfg.AllowedOrigins))
	{
		uploads.GET("/*key", h.serve)
		uploads.HEAD("/*key", h.serve)
		uploads.OPTIONS("/*key", func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
	}
}

// serve godoc
// @Summary Download a stored upload
// @Tags uploads
// @Produce octet-stream
// @Param key path string true "Object key"
// @Success 200 {file} binary
// @Failure 404 {object} dto.ErrorResponse
// @Router /uploads/{key} [get]
func (h *uploadsHandler) serve(c *gin.Context) {
	rc, info, err := h.files.Open(c.Request.Context(), c.Param("key"))
	if err != nil {
		fail(c, err)
		return
	}
	defer rc.Close()

	contentType := info.ContentType
	if ct, ok := imageContentTypes[strings.ToLower(path.Ext(info.Key))]; ok {
		contentType = ct
	}
	if !upload.ServableInline(contentType) {
		contentType = "application/octet-stream"
		c.Header("Content-Disposition", "attachment")
	}
	if !info.ModTime.IsZero() {
		c.Header("Last-Modified", info.ModTime.UTC().Format(http.TimeFormat))
	}
	if c.Request.Method == http.MethodHead {
		c.Header("Content-Type", contentType)
		c.Header("Content-Length", strconv.FormatInt(info.Size, 10))
		c.Status(http.StatusOK)
		return
	}
	c.DataFromReader(http.StatusOK, info.Size, contentType, rc, nil)
}

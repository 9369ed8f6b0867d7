package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"designfoli-web/internal/auth"
	"designfoli-web/internal/designfoli"
	"designfoli-web/internal/errorz"
	"designfoli-web/internal/middleware"
	"designfoli-web/internal/models"
	"designfoli-web/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondError maps service and backend errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var verr *errorz.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation failed",
			Message: verr.Message,
			Field:   verr.Field,
		})
	case errors.Is(err, errorz.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized", Message: err.Error()})
	case errors.Is(err, errorz.ErrForbidden):
		c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "forbidden", Message: err.Error()})
	case errors.Is(err, errorz.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found", Message: err.Error()})
	default:
		if status, ok := designfoli.IsAPIError(err); ok && status >= 400 && status < 500 {
			c.JSON(status, models.ErrorResponse{Error: "backend rejected the request", Message: err.Error()})
			return
		}
		if _, ok := designfoli.IsAPIError(err); ok {
			c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: "backend error", Message: err.Error()})
			return
		}
		log.Printf("Request %s %s failed: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error", Message: err.Error()})
	}
}

// session is the caller's identity as established by AuthMiddleware.
func session(c *gin.Context) *auth.Session {
	return auth.FromToken(middleware.Token(c), middleware.UserID(c))
}

func draftID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("draft_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid draft id"})
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return false
	}
	return true
}

// formFiles parses a multipart body and returns the files of the first
// matching field name.
func formFiles(c *gin.Context, maxBytes int64, fieldNames ...string) ([]*multipart.FileHeader, bool) {
	if err := c.Request.ParseMultipartForm(maxBytes + 1<<20); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to parse multipart form",
			Message: err.Error(),
		})
		return nil, false
	}
	form := c.Request.MultipartForm
	for _, name := range fieldNames {
		if files := form.File[name]; len(files) > 0 {
			return files, true
		}
	}
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "no files uploaded",
		Message: fmt.Sprintf("please provide files with one of these field names: %v", fieldNames),
	})
	return nil, false
}

func readUpload(fh *multipart.FileHeader) (services.Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return services.Upload{}, fmt.Errorf("failed to open %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return services.Upload{}, fmt.Errorf("failed to read %s: %w", fh.Filename, err)
	}
	return services.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

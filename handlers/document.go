package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/jobhub104/backend/docsearch"
	"github.com/jobhub104/backend/models"
)

// DocumentHandler handles document keyword queries
type DocumentHandler struct {
	matcher   *docsearch.Matcher
	uploadDir string
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(matcher *docsearch.Matcher, uploadDir string) *DocumentHandler {
	return &DocumentHandler{
		matcher:   matcher,
		uploadDir: uploadDir,
	}
}

// Query searches an uploaded document for a keyword
// @Summary Query a document
// @Description Upload a document and search it for a keyword, case-insensitively. Returns a bounded context window around the first match. The uploaded file only lives for the duration of the request.
// @Tags Documents
// @Accept multipart/form-data
// @Produce json
// @Param query formData string true "Keyword to search for"
// @Param file formData file true "Document to search (text; legacy Big5/Latin-1 encodings supported)"
// @Success 200 {object} models.DocumentMatchResponse "Match result"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 500 {object} models.ErrorResponse "Processing failed"
// @Router /document [post]
func (h *DocumentHandler) Query(c *gin.Context) {
	query := c.PostForm("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request",
			Code:    http.StatusBadRequest,
			Details: "query is required",
		})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request",
			Code:    http.StatusBadRequest,
			Details: "file is required",
		})
		return
	}

	log.Printf("[Handler] Document query: query=%q, file=%s, size=%d",
		query, fileHeader.Filename, fileHeader.Size)

	name := filepath.Base(fileHeader.Filename)
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "upload"
	}
	path := filepath.Join(h.uploadDir, name)

	if err := c.SaveUploadedFile(fileHeader, path); err != nil {
		log.Printf("[Handler] Failed to save uploaded file: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Document query failed",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
		return
	}

	// the upload is scoped to this request, on every exit path
	defer func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("[Handler] Failed to remove uploaded file %s: %v", path, err)
		}
	}()

	content, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[Handler] Failed to read uploaded file: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Document query failed",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
		return
	}

	result := h.matcher.Match(query, content)

	c.JSON(http.StatusOK, models.DocumentMatchResponse{
		Query:   result.Query,
		Found:   result.Found,
		Answer:  result.Answer,
		Context: result.Context,
	})
}

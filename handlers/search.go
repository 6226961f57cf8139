package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jobhub104/backend/job104"
	"github.com/jobhub104/backend/models"
)

// SearchHandler handles 104 job search requests
type SearchHandler struct {
	client *job104.Client
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(client *job104.Client) *SearchHandler {
	return &SearchHandler{
		client: client,
	}
}

// Search104 aggregates job listings from the 104 search and detail APIs
// @Summary Search 104 jobs
// @Description Scrape pages of the 104 job search API for a keyword and enrich each listing with its detail record. An upstream failure mid-scrape yields a partial result with a warning, not an error.
// @Tags Jobs
// @Produce json
// @Param keyword query string true "Search keyword (e.g. Python)"
// @Param end_page query int false "Last page to fetch (default 1)" minimum(1)
// @Success 200 {object} models.SearchJobsResponse "Aggregated results"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /search_104 [get]
func (h *SearchHandler) Search104(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request",
			Code:    http.StatusBadRequest,
			Details: "keyword is required",
		})
		return
	}

	endPage := 1
	if raw := c.Query("end_page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "Invalid request",
				Code:    http.StatusBadRequest,
				Details: "end_page must be a positive integer",
			})
			return
		}
		endPage = parsed
	}

	log.Printf("[Handler] Search104 request: keyword=%q, endPage=%d", keyword, endPage)

	output := h.client.Search(c.Request.Context(), keyword, endPage)

	log.Printf("[Handler] Search104 success: %d results from %d pages, warning=%q",
		len(output.Records), output.PagesFetched, output.Warning)

	c.JSON(http.StatusOK, models.SearchJobsResponse{
		Results:      output.Records,
		TotalResults: len(output.Records),
		PagesFetched: output.PagesFetched,
		Warning:      output.Warning,
	})
}

package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobhub104/backend/models"
	"github.com/jobhub104/backend/vectorstore"
)

// VectorStoreQuery runs the placeholder vector search
// @Summary Query the vector store
// @Description Placeholder vector search: case-insensitive substring matching over a fixed two-sentence corpus. No embeddings are involved.
// @Tags Documents
// @Produce json
// @Param query query string false "Query text"
// @Success 200 {object} models.VectorStoreResponse "Matched corpus entries"
// @Router /vectorstore [get]
func VectorStoreQuery(c *gin.Context) {
	query := c.Query("query")

	log.Printf("[Handler] Vectorstore query: query=%q", query)

	matched := vectorstore.Match(query)

	c.JSON(http.StatusOK, models.VectorStoreResponse{
		Query:          query,
		Answer:         fmt.Sprintf("found %d related results", len(matched)),
		MatchedSources: matched,
	})
}

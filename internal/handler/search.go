package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"homescout/internal/model"
	"homescout/internal/service"
)

// SearchHandler handles search-related HTTP requests.
type SearchHandler struct {
	search  *service.SearchService
	version string
	logger  *logrus.Logger
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(search *service.SearchService, version string, logger *logrus.Logger) *SearchHandler {
	return &SearchHandler{search: search, version: version, logger: logger}
}

// Search handles POST /search.
func (h *SearchHandler) Search(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	response, err := h.search.Search(c.Request.Context(), req.Query)
	if err != nil {
		// Only reachable when the data layer is unavailable; upstream
		// capability failures are degraded inside the service.
		h.logger.WithError(err).Error("Search failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Search unavailable: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Refresh handles POST /refresh: rebuild the listing snapshot from disk and
// swap it in atomically. In-flight searches keep their old snapshot.
func (h *SearchHandler) Refresh(c *gin.Context) {
	count, err := h.search.Refresh()
	if err != nil {
		h.logger.WithError(err).Error("Snapshot refresh failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Refresh failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "refreshed", "listings": count})
}

// Health handles GET /: readiness of the data layer and of the
// language-understanding capability as independent booleans.
func (h *SearchHandler) Health(c *gin.Context) {
	status := "healthy"
	if !h.search.DataReady() {
		status = "degraded"
	}
	c.JSON(http.StatusOK, model.HealthResponse{
		Status:    status,
		DataReady: h.search.DataReady(),
		NLUReady:  h.search.NLUReady(),
		Listings:  h.search.ListingCount(),
		Version:   h.version,
	})
}

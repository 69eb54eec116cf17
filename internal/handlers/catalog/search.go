package catalog

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Search - GET /api/search?q=
func (h *Handler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Paramètre 'q' requis"})
		return
	}

	results, err := h.Indexer.Search(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Recherche indisponible"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results, "count": len(results)})
}

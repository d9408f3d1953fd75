package ping

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func New() *Handler {
	return &Handler{}
}

// HandleDashboardPing répond au check de vie du dashboard
// @Summary Ping dashboard
// @Description Endpoint de test du dashboard
// @Tags test
// @Produce json
// @Success 200 {object} map[string]string "message: Dashboard API is working"
// @Router /dashboard/ping [get]
func (h *Handler) HandleDashboardPing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Dashboard API is working"})
}

// HandleMobilePing répond au check de vie de l'API mobile
// @Summary Ping mobile
// @Description Endpoint de test de l'API mobile
// @Tags test
// @Produce json
// @Success 200 {object} map[string]string "message: Mobile API is working"
// @Router /mobile/ping [get]
func (h *Handler) HandleMobilePing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Mobile API is working"})
}

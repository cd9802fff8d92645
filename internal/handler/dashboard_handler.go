package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dhruvkrishnavaid/oceaneye/internal/model"
	"github.com/dhruvkrishnavaid/oceaneye/internal/service"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Handles GET /api/dashboard/stats.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Handles GET /api/social - returns the monitoring feed with optional
// platform, sentiment and location filters.
func (h *DashboardHandler) GetSocialPosts(c *gin.Context) {
	posts, err := h.dashboardService.SocialPosts(
		c.Request.Context(),
		c.Query("platform"),
		c.Query("sentiment"),
		c.Query("location"),
	)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, model.SocialPostListResponse{
		Posts: posts,
		Total: len(posts),
	})
}

// Handles GET /api/trending.
func (h *DashboardHandler) GetTrending(c *gin.Context) {
	hashtags, err := h.dashboardService.Trending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, model.TrendingListResponse{Hashtags: hashtags})
}

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/Yofukashi625/fangyang-wiki-app/config"
	"github.com/Yofukashi625/fangyang-wiki-app/models"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const dashboardCacheKey = "dashboard:summary"
const dashboardCacheTTL = 5 * time.Minute

// DashboardSummary aggregates the landing-page numbers.
type DashboardSummary struct {
	SchoolCount       int64           `json:"schoolCount"`
	WikiArticleCount  int64           `json:"wikiArticleCount"`
	AnnouncementCount int64           `json:"announcementCount"`
	RecentSchools     []models.School `json:"recentSchools"`
}

// GetDashboardSummaryHandler returns collection counts plus the three most
// recently updated schools, cached in Redis for a few minutes.
func GetDashboardSummaryHandler(c *gin.Context) {
	if config.RDB != nil {
		cached, err := config.RDB.Get(config.Ctx, dashboardCacheKey).Result()
		if err == nil {
			var summary DashboardSummary
			if json.Unmarshal([]byte(cached), &summary) == nil {
				c.JSON(http.StatusOK, summary)
				return
			}
		} else if err != redis.Nil {
			slog.Error("Redis GET command failed", "error", err, "key", dashboardCacheKey)
		}
	}

	var summary DashboardSummary
	config.DB.Model(&models.School{}).Count(&summary.SchoolCount)
	config.DB.Model(&models.WikiArticle{}).Count(&summary.WikiArticleCount)
	config.DB.Model(&models.Announcement{}).Count(&summary.AnnouncementCount)

	if err := config.DB.Order("updated_at DESC").Limit(3).Find(&summary.RecentSchools).Error; err != nil {
		slog.Error("Failed to fetch recent schools", "error", err)
	}
	if summary.RecentSchools == nil {
		summary.RecentSchools = make([]models.School, 0)
	}

	if config.RDB != nil {
		if jsonData, err := json.Marshal(summary); err == nil {
			if err := config.RDB.Set(config.Ctx, dashboardCacheKey, jsonData, dashboardCacheTTL).Err(); err != nil {
				slog.Warn("Failed to cache dashboard summary", "error", err)
			}
		}
	}

	c.JSON(http.StatusOK, summary)
}

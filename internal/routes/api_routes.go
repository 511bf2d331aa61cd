package routes

import (
	"github.com/Yofukashi625/fangyang-wiki-app/internal/handlers"
	"github.com/Yofukashi625/fangyang-wiki-app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes registers all API routes that require authentication.
func RegisterAPIRoutes(api *gin.RouterGroup) {
	apiGroup := api.Group("/api")
	{
		// --- DASHBOARD ---
		apiGroup.GET("/dashboard/summary", handlers.GetDashboardSummaryHandler)

		// --- SCHOOL DATABASE ---
		schools := apiGroup.Group("/schools")
		{
			schools.GET("", handlers.ListSchoolsHandler)
			schools.POST("", handlers.CreateSchoolHandler)
			schools.POST("/parse-document", handlers.ParseSchoolDocumentHandler)
			schools.GET("/export", handlers.ExportSchoolsHandler)
			schools.GET("/:id", handlers.GetSchoolHandler)
			schools.PUT("/:id", handlers.UpdateSchoolHandler)
			schools.DELETE("/:id", middleware.RequireRole("admin"), handlers.DeleteSchoolHandler)
		}

		// --- WIKI / KNOWLEDGE BASE ---
		wiki := apiGroup.Group("/wiki")
		{
			wiki.GET("", handlers.ListWikiArticlesHandler)
			wiki.POST("", handlers.CreateWikiArticleHandler)
			wiki.GET("/:id", handlers.GetWikiArticleHandler)
			wiki.PUT("/:id", handlers.UpdateWikiArticleHandler)
			wiki.DELETE("/:id", handlers.DeleteWikiArticleHandler)
		}

		// --- ANNOUNCEMENTS ---
		announcements := apiGroup.Group("/announcements")
		{
			announcements.GET("", handlers.ListAnnouncementsHandler)
			announcements.POST("", handlers.CreateAnnouncementHandler)
			announcements.PUT("/:id", handlers.UpdateAnnouncementHandler)
			announcements.DELETE("/:id", handlers.DeleteAnnouncementHandler)
		}

		// --- ONBOARDING ---
		onboarding := apiGroup.Group("/onboarding")
		{
			onboarding.GET("", handlers.ListOnboardingTasksHandler)
			onboarding.POST("", handlers.CreateOnboardingTaskHandler)
			onboarding.PUT("/:id", handlers.UpdateOnboardingTaskHandler)
			onboarding.DELETE("/:id", handlers.DeleteOnboardingTaskHandler)
		}

		// --- AI ASSISTANT ---
		assistant := apiGroup.Group("/assistant")
		{
			assistant.POST("/chat", handlers.ChatHandler)
			assistant.GET("/messages", handlers.ListMessagesHandler)
			assistant.POST("/messages/:id/feedback", handlers.MessageFeedbackHandler)
			assistant.GET("/citations/:type/:id", handlers.ResolveCitationHandler)
		}

		// --- SCHOOL PLACEMENT ---
		apiGroup.POST("/placement/analyze", handlers.AnalyzePlacementHandler)

		// --- TRANSCRIPT CONVERTER ---
		transcripts := apiGroup.Group("/transcripts")
		{
			transcripts.POST("/recognize", handlers.RecognizeTranscriptHandler)
			transcripts.POST("/summarize", handlers.SummarizeTranscriptHandler)
			transcripts.GET("", handlers.ListTranscriptReportsHandler)
			transcripts.POST("", handlers.CreateTranscriptReportHandler)
			transcripts.GET("/:id", handlers.GetTranscriptReportHandler)
			transcripts.PUT("/:id", handlers.UpdateTranscriptReportHandler)
			transcripts.DELETE("/:id", handlers.DeleteTranscriptReportHandler)
		}

		// --- RECOMMENDATION SHEETS ---
		recommendations := apiGroup.Group("/recommendations")
		{
			recommendations.GET("", handlers.ListRecommendationSheetsHandler)
			recommendations.POST("", handlers.CreateRecommendationSheetHandler)
			recommendations.GET("/:id", handlers.GetRecommendationSheetHandler)
			recommendations.PUT("/:id", handlers.UpdateRecommendationSheetHandler)
			recommendations.DELETE("/:id", handlers.DeleteRecommendationSheetHandler)
		}
	}
}

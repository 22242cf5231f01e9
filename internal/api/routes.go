package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"resumeforge/internal/storage"
	"resumeforge/internal/store"
)

// RegisterRoutes registers the API routes, no /api prefix.
func RegisterRoutes(
	router *gin.Engine,
	st *store.Store,
	asynqClient *asynq.Client,
	redisClient *redis.Client,
	artifacts storage.ArtifactStore,
	logger *slog.Logger,
	clamdAddr string,
	exportsPerMinute int,
) {
	resumeHandler := NewResumeHandler(st)
	dataHandler := NewDataHandler(st)
	photoHandler := NewPhotoHandler(st, logger, clamdAddr)
	previewHandler := NewPreviewHandler(st)
	exportHandler := NewExportHandler(asynqClient, redisClient, artifacts, logger, exportsPerMinute)
	wsHandler := NewWsHandler(redisClient, logger)

	v1 := router.Group("/v1")
	{
		v1.GET("/ws", wsHandler.HandleConnection)

		resumeGroup := v1.Group("/resume")
		{
			resumeGroup.GET("", resumeHandler.GetState)
			resumeGroup.PUT("/personal/:field", resumeHandler.SetPersonalField)
			resumeGroup.POST("/sections", resumeHandler.AddSection)
			resumeGroup.POST("/sections/move", resumeHandler.MoveSection)
			resumeGroup.PATCH("/sections/:id", resumeHandler.UpdateSection)
			resumeGroup.DELETE("/sections/:id", resumeHandler.RemoveSection)
		}

		settingsGroup := v1.Group("/settings")
		{
			settingsGroup.PUT("/template", resumeHandler.SelectTemplate)
			settingsGroup.PUT("/font-scale", resumeHandler.SetFontScale)
			settingsGroup.PATCH("/colors", resumeHandler.UpdateCustomColors)
			settingsGroup.PATCH("/fonts", resumeHandler.UpdateCustomFonts)
		}

		v1.PATCH("/templates/:id", resumeHandler.UpdateTemplate)

		dataGroup := v1.Group("/data")
		{
			dataGroup.GET("/export", dataHandler.ExportData)
			dataGroup.POST("/import", dataHandler.ImportData)
			dataGroup.POST("/reset", dataHandler.ResetAll)
		}

		v1.POST("/photo", photoHandler.UploadPhoto)
		v1.DELETE("/photo", photoHandler.RemovePhoto)

		v1.GET("/preview", previewHandler.GetPreview)

		exportsGroup := v1.Group("/exports")
		{
			exportsGroup.POST("", exportHandler.EnqueueExport)
			exportsGroup.GET("/:id", exportHandler.GetExportStatus)
			exportsGroup.GET("/:id/download", exportHandler.DownloadExport)
		}
	}
}

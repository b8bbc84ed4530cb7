package app

import (
	"github.com/Rishit-Ranjan/Task-Pallete/internal/config"
	"github.com/Rishit-Ranjan/Task-Pallete/internal/handlers"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, core *Core) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg, core))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	api := r.Group("/api/v1")

	taskHandler := handlers.NewTaskHandler(core.Tasks, core.Queries, core.Settings)
	registerTaskRoutes(api, taskHandler)

	suggestHandler := handlers.NewSuggestHandler(core.Engine, core.Tasks, core.Queries)
	registerSuggestRoutes(api, suggestHandler)

	settingsHandler := handlers.NewSettingsHandler(core.Settings)
	registerSettingsRoutes(api, settingsHandler)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "TaskPalette API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config, core *Core) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, version := core.Tasks.Snapshot()
		c.JSON(200, gin.H{
			"ok":             true,
			"env":            cfg.App.Env,
			"store":          cfg.Store.Driver,
			"cache":          cfg.CacheEnabled(),
			"remote_suggest": core.Engine.RemoteEnabled(),
			"snapshot":       version,
		})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerTaskRoutes(api *gin.RouterGroup, h *handlers.TaskHandler) {
	api.POST("/tasks", h.Create)
	api.GET("/tasks", h.List)
	api.GET("/tasks/upcoming", h.Upcoming)
	api.GET("/tasks/stats", h.Stats)
	api.GET("/tasks/:id", h.GetByID)
	api.PATCH("/tasks/:id", h.Update)
	api.DELETE("/tasks/:id", h.Delete)
	api.POST("/tasks/:id/complete", h.ToggleCompleted)
	api.POST("/tasks/:id/important", h.ToggleImportant)
	api.POST("/tasks/:id/checklist/:itemId/toggle", h.ToggleChecklistItem)
	api.GET("/tasks/:id/share", h.Share)
}

func registerSuggestRoutes(api *gin.RouterGroup, h *handlers.SuggestHandler) {
	api.POST("/suggestions", h.Suggest)
	api.POST("/suggestions/accept", h.Accept)
}

func registerSettingsRoutes(api *gin.RouterGroup, h *handlers.SettingsHandler) {
	api.GET("/settings", h.Get)
	api.PUT("/settings", h.Update)
	api.GET("/settings/upcoming-visibility", h.GetUpcomingVisibility)
	api.PUT("/settings/upcoming-visibility", h.SetUpcomingVisibility)
}

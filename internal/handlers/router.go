package handlers

import "github.com/gin-gonic/gin"

// Handlers - все обработчики API
type Handlers struct {
	System    *SystemHandler
	Ephemeris *EphemerisHandler
	Targets   *TargetHandler
	Reports   *ReportHandler
	Settings  *SettingsHandler
	Locations *LocationHandler
}

// RegisterRoutes вешает маршруты на группу /api/v1
func RegisterRoutes(api *gin.RouterGroup, h Handlers) {
	if h.System != nil {
		api.GET("/health", h.System.HealthCheck)
		api.GET("/stats", h.System.GetStats)
	}

	api.GET("/sun", h.Ephemeris.GetSun)
	api.GET("/moon", h.Ephemeris.GetMoon)
	api.GET("/targets", h.Targets.ListTargets)

	report := api.Group("/report")
	{
		report.GET("", h.Reports.GetReport)
		report.GET("/export", h.Reports.ExportReport)
	}

	settings := api.Group("/settings")
	{
		settings.GET("", h.Settings.GetSettings)
		settings.PUT("", h.Settings.UpdateSettings)
		settings.PATCH("/digit", h.Settings.SetDigit)
	}

	presets := api.Group("/presets")
	{
		presets.GET("", h.Settings.ListPresets)
		presets.POST("", h.Settings.CreatePreset)
		presets.PUT("/:id/select", h.Settings.SelectPreset)
	}

	locations := api.Group("/locations")
	{
		locations.GET("", h.Locations.ListLocations)
		locations.POST("", h.Locations.CreateLocation)
		locations.DELETE("/:id", h.Locations.DeleteLocation)
	}
}

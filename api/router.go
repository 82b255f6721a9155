// api/router.go
package api

import (
	"github.com/devadigapratham/cncdro/api/handlers"
	"github.com/devadigapratham/cncdro/console"
	"github.com/devadigapratham/cncdro/motion"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SetupRouter sets up the API routes
func SetupRouter(c *console.Console, recorder *motion.Recorder, log logrus.FieldLogger) *gin.Engine {
	router := gin.New()

	// Create the handler
	handler := handlers.NewHandler(c, log)

	// Apply middleware
	router.Use(gin.Recovery(), handler.LoggingMiddleware())

	// API group
	api := router.Group("/api/v1")
	{
		// Preference endpoints
		api.GET("/preference", handler.GetPreference)
		api.PUT("/preference", handler.SetPreference)
		api.PUT("/feed-units", handler.SetFeedUnits)

		// Status source and display endpoints
		api.POST("/status", handler.PostStatus)
		api.GET("/surfaces", handler.GetSurfaces)
		api.DELETE("/surfaces/:name", handler.DestroySurface)

		// Input endpoints
		api.POST("/convert", handler.Convert)
		api.GET("/format", handler.Format)

		// Jog endpoints
		api.GET("/jog/steps", handler.GetSteps)
		api.POST("/jog/step", handler.SelectStep)
		api.POST("/jog/feed", handler.SetJogFeed)
		api.POST("/jog", handler.Jog)
	}

	// Lines handed to the motion sender, when it keeps them
	if recorder != nil {
		api.GET("/motion", func(ctx *gin.Context) {
			ctx.JSON(200, gin.H{"lines": recorder.Lines()})
		})
	}

	return router
}

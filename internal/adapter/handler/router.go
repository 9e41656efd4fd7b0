package handler

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(h *ReservationHandler, logger *zap.Logger, origins []string) *gin.Engine {
	r := gin.New()
	r.Use(Recovery(logger), AccessLog(logger))

	if len(origins) == 0 {
		origins = []string{"*"}
	}

	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", headerUserID, headerUserRole},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/hotels/:hotelId/availability", h.GetAvailability)
		api.GET("/quote", h.Quote)

		reservations := api.Group("/reservations")
		{
			reservations.POST("", h.CreateReservation)
			reservations.POST("/:id/cancel", h.CancelReservation)
		}

		api.GET("/users/:id/reservations", h.ListUserReservations)
	}

	return r
}

// Package server exposes the webhook callback endpoint over HTTP.
package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"reline-bot/domain/webhook"
	"reline-bot/line"
	"reline-bot/observability"
	"reline-bot/services"
)

// RequestParser verifies and decodes one webhook delivery.
type RequestParser interface {
	ParseRequest(r *http.Request) ([]webhook.Event, error)
}

// NewRouter wires the callback endpoint plus liveness and stats.
func NewRouter(log *slog.Logger, parser RequestParser, processor services.IEventProcessor, metrics *observability.Metrics) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, metrics.Snapshot())
	})

	r.POST("/callback", func(c *gin.Context) {
		events, err := parser.ParseRequest(c.Request)
		if err != nil {
			if errors.Is(err, line.ErrInvalidSignature) {
				log.Warn("Webhook signature rejected")
				c.Status(http.StatusBadRequest)
				return
			}
			log.Error("Webhook payload unreadable", "error", err)
			c.Status(http.StatusInternalServerError)
			return
		}

		if err := processor.Process(c.Request.Context(), events); err != nil {
			// Deadline hit: answer 500 so the platform redelivers the batch.
			log.Error("Webhook batch failed", "error", err)
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})

	return r
}

package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushub/campuschat-server/internal/config"
	"github.com/campushub/campuschat-server/internal/contact"
	"github.com/campushub/campuschat-server/internal/core"
)

// NewServer builds the HTTP server: websocket relay, contact endpoint,
// health probe.
func NewServer(hub *core.Hub, contactSvc *contact.Service, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware())

	router.GET("/healthz", healthHandler)
	router.GET("/ws", gin.WrapH(NewWSHandler(hub, logger)))

	contactHandlers := NewContactHandlers(contactSvc, logger)
	api := router.Group("/api")
	api.POST("/contact", RateLimitMiddleware(cfg.ContactRateLimit), contactHandlers.Submit)

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}

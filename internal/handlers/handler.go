package handlers

import (
	"heater_sizing/internal/logger"
	"heater_sizing/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	_ "heater_sizing/internal/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const defaultMaxMessageBytes = 1 << 12 // 4 KB

// Options tune the HTTP layer. The zero value disables rate limiting and
// allows any origin.
type Options struct {
	RateLimitEnabled bool
	RateLimitRPS     float64
	RateLimitBurst   int
	AllowedOrigins   []string
	MaxMessageBytes  int64
}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	opts     Options
	limiter  *IPRateLimiter
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts Options) *Handler {
	if opts.MaxMessageBytes <= 0 {
		opts.MaxMessageBytes = defaultMaxMessageBytes
	}
	h := &Handler{services: services, log: log, opts: opts}
	if opts.RateLimitEnabled {
		h.limiter = NewIPRateLimiter(rate.Limit(opts.RateLimitRPS), opts.RateLimitBurst)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestID, h.accessLog, cors.New(h.corsConfig()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	h.registerAPIRoutes(router)

	// live form: form payloads in, evaluations out; each message also draws
	// from the client's rate limit bucket
	if h.limiter != nil {
		router.GET("/ws", h.limiter.Middleware(h.log), h.wsConnect)
	} else {
		router.GET("/ws", h.wsConnect)
	}

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	if h.limiter != nil {
		api.Use(h.limiter.Middleware(h.log))
	}
	{
		api.GET("/catalog", h.getCatalog)
		api.POST("/evaluate", h.evaluate)

		rep := api.Group("/report")
		rep.POST("/pdf", h.reportPDF)
		rep.POST("/xlsx", h.reportXLSX)
	}
}

func (h *Handler) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	if allowsAnyOrigin(h.opts.AllowedOrigins) {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = h.opts.AllowedOrigins
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, requestIDHeader)
	cfg.ExposeHeaders = []string{requestIDHeader, "Content-Disposition"}
	return cfg
}

func allowsAnyOrigin(origins []string) bool {
	if len(origins) == 0 {
		return true
	}
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

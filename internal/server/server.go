package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/nikahlink/backend/config"
	"github.com/nikahlink/backend/internal/api"
	"github.com/nikahlink/backend/internal/database"
	"github.com/nikahlink/backend/internal/metrics"
	"github.com/nikahlink/backend/internal/middleware"
	"github.com/nikahlink/backend/internal/service"
)

// Server wires the services and handlers onto a Gin engine.
type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
}

// New builds the full application server.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, s3Config *config.S3Config) *Server {
	m := metrics.New()

	sessions := service.NewSessionService(cfg.JWTSecret)
	accounts := service.NewAccountService(db)
	biodatas := service.NewBiodataService(db, m)
	favorites := service.NewFavoriteService(db, m)
	payments := service.NewPaymentService(db, cfg.PaymentGatewayURL, cfg.PaymentSecretKey)
	stats := service.NewStatsService(db)
	photos := service.NewPhotoService(s3Config, biodatas)

	var notifier service.Notifier
	if n := service.NewEmailNotifier(cfg.SendGridAPIKey, cfg.AdminEmail); n != nil {
		notifier = n
	}
	premium := service.NewPremiumService(db, notifier, m)

	// Repair any premium divergence left behind by an earlier crash
	// before taking traffic.
	if repaired, err := premium.Reconcile(context.Background()); err != nil {
		log.Printf("[Server] premium reconciliation failed: %v", err)
	} else if repaired > 0 {
		log.Printf("[Server] premium reconciliation repaired %d accounts", repaired)
	}

	router := gin.Default()
	router.Use(middleware.CORS())

	public := router.Group("")
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(sessions))
	if redisClient != nil {
		limiter := middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
			Window: time.Minute,
			Limit:  120,
		})
		protected.Use(limiter.Middleware())
	}

	api.NewSessionHandler(sessions, accounts).RegisterRoutes(public, protected)
	api.NewBiodataHandler(biodatas, premium, photos).RegisterRoutes(public, protected)
	api.NewPremiumHandler(premium).RegisterRoutes(public)
	api.NewFavoriteHandler(favorites).RegisterRoutes(protected)
	api.NewPaymentHandler(payments).RegisterRoutes(public)
	api.NewStatsHandler(stats).RegisterRoutes(public, protected)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(c.Request.Context(), db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return &Server{
		router: router,
		db:     db,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: router,
		},
	}
}

// Start begins serving HTTP.
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

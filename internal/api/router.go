package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/api/handler"
	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/api/middleware"
	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/logger"
	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/metrics"
	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/service"
)

// RouterConfig carries everything the router wires together.
type RouterConfig struct {
	Mode          string
	CORS          middleware.CORSConfig
	Logger        *logger.Logger
	ReviewService *service.ReviewService
	// DB is pinged by /health when set.
	DB handler.Pinger
	// Metrics and Registry are both nil when metrics are disabled.
	Metrics  *metrics.Metrics
	Registry *prometheus.Registry
}

// SetupRouter configures the Gin router with all routes
func SetupRouter(cfg *RouterConfig) *gin.Engine {
	switch cfg.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	log := cfg.Logger
	if log == nil {
		log = logger.GetDefault()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware(log))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.ErrorHandler())

	healthHandler := handler.NewHealthHandler(cfg.DB)
	reviewHandler := handler.NewReviewHandler(cfg.ReviewService)

	r.GET("/health", healthHandler.Health)
	if cfg.Registry != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler(cfg.Registry)))
	}

	r.POST("/predict", reviewHandler.Predict)
	r.POST("/save-review", reviewHandler.SaveReview)
	r.GET("/get-reviews", reviewHandler.ListReviews)

	return r
}

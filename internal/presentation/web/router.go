package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"

	"github.com/chynaenye/microinsurance-predictor/internal/infrastructure/config"
	"github.com/chynaenye/microinsurance-predictor/internal/infrastructure/monitoring"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// NewRouter assembles the gin engine: templates, middleware and routes.
// Profiling endpoints are registered outside production only.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	metrics *monitoring.Metrics,
	assess *AssessHandler,
	health *HealthHandler,
	metricsHandler http.Handler,
) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.gohtml")))

	engine.Use(gin.Recovery())
	engine.Use(RequestID())
	engine.Use(Logger(logger))
	engine.Use(Metrics(metrics))
	engine.Use(Tracing())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.Server.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	engine.GET("/", assess.Index)
	engine.POST("/assess", assess.Assess)
	engine.GET("/healthz", health.Healthz)
	engine.GET("/readyz", health.Readyz)
	engine.GET("/metrics", gin.WrapH(metricsHandler))

	if !cfg.IsProduction() {
		pprof.Register(engine)
	}

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":             "not_found",
			"error_description": "The requested resource was not found",
		})
	})

	return engine
}

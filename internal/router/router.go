package router

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/dermaconnect/derma-api/internal/handler"
	authhandler "github.com/dermaconnect/derma-api/internal/handler/auth"
	consultationhandler "github.com/dermaconnect/derma-api/internal/handler/consultation"
	contenthandler "github.com/dermaconnect/derma-api/internal/handler/content"
	dashboardhandler "github.com/dermaconnect/derma-api/internal/handler/dashboard"
	doctorhandler "github.com/dermaconnect/derma-api/internal/handler/doctor"
	"github.com/dermaconnect/derma-api/internal/middleware"
	"github.com/dermaconnect/derma-api/internal/model"
)

type Router struct {
	engine        *gin.Engine
	auth          *middleware.AuthMiddleware
	authH         *authhandler.Handler
	consultationH *consultationhandler.Handler
	doctorH       *doctorhandler.Handler
	dashboardH    *dashboardhandler.Handler
	contentH      *contenthandler.Handler
	healthH       *handler.HealthHandler
	metrics       *routerMetrics
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

type Config struct {
	RateLimit     rate.Limit
	RateBurst     int
	CORSConfig    middleware.CORSConfig
	Timeout       time.Duration
	MetricsPrefix string
}

func NewRouter(
	auth *middleware.AuthMiddleware,
	authH *authhandler.Handler,
	consultationH *consultationhandler.Handler,
	doctorH *doctorhandler.Handler,
	dashboardH *dashboardhandler.Handler,
	contentH *contenthandler.Handler,
	healthH *handler.HealthHandler,
	config Config,
) (*Router, error) {
	gin.SetMode(gin.ReleaseMode)

	if err := model.RegisterValidations(); err != nil {
		return nil, fmt.Errorf("failed to register validations: %w", err)
	}

	engine := gin.New()

	r := &Router{
		engine:        engine,
		auth:          auth,
		authH:         authH,
		consultationH: consultationH,
		doctorH:       doctorH,
		dashboardH:    dashboardH,
		contentH:      contentH,
		healthH:       healthH,
		metrics:       initRouterMetrics(config.MetricsPrefix),
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = middleware.DefaultTimeoutConfig().Duration
	}

	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		r.metricsMiddleware(),
		middleware.Timeout(middleware.TimeoutConfig{Duration: timeout}),
		middleware.Locale(),
	)

	engine.Use(middleware.CORS(config.CORSConfig))

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  config.RateLimit,
		Burst: config.RateBurst,
	})
	engine.Use(rateLimiter.RateLimit())

	return r, nil
}

func (r *Router) Setup() {
	api := r.engine.Group("/api/v1")

	api.Use(func(c *gin.Context) {
		c.Header("X-API-Version", "1.0")
		c.Next()
	})

	r.setupHealthCheck(api)
	r.setupPublicRoutes(api)

	protected := api.Group("")
	protected.Use(r.auth.Authenticate())
	r.setupProtectedRoutes(protected)
}

func (r *Router) setupHealthCheck(rg *gin.RouterGroup) {
	health := rg.Group("/health")
	{
		health.GET("/live", r.healthH.HealthCheck)
		health.GET("/ready", r.healthH.ReadyCheck)
		health.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
}

func (r *Router) setupPublicRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", r.authH.Register)
		auth.POST("/login", r.authH.Login)
		auth.POST("/refresh", r.authH.Refresh)
	}

	content := rg.Group("/content")
	{
		content.GET("/landing", r.contentH.Landing)
		content.GET("/languages", r.contentH.Languages)
		content.GET("/specialties", r.contentH.Specialties)
	}
}

func (r *Router) setupProtectedRoutes(rg *gin.RouterGroup) {
	consultations := rg.Group("/consultations")
	{
		consultations.POST("", r.consultationH.Create)
		consultations.GET("", r.consultationH.List)
		consultations.GET("/:id", r.consultationH.Get)
		consultations.GET("/:id/history", r.consultationH.History)
		consultations.POST("/:id/accept", r.consultationH.Accept)
		consultations.POST("/:id/complete", r.consultationH.Complete)
		consultations.POST("/:id/release", r.consultationH.Release)
		consultations.POST("/:id/cancel", r.consultationH.Cancel)
		consultations.PUT("/:id/notes", r.consultationH.UpdateNotes)
	}

	doctors := rg.Group("/doctors")
	doctors.Use(r.auth.RequireRole(model.RoleDoctor))
	{
		doctors.GET("/profile", r.doctorH.GetProfile)
		doctors.PUT("/profile", r.doctorH.UpsertProfile)
		doctors.PUT("/availability", r.doctorH.SetAvailability)
	}

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/patient", r.dashboardH.Patient)
		dashboard.GET("/doctor", r.auth.RequireRole(model.RoleDoctor), r.dashboardH.Doctor)
		dashboard.GET("/admin", r.auth.RequireRole(model.RoleAdmin), r.dashboardH.Admin)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func initRouterMetrics(prefix string) *routerMetrics {
	return &routerMetrics{
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: prefix + "_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_errors_total",
				Help: "Total number of HTTP errors",
			},
			[]string{"method", "path", "type"},
		),
	}
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		status := fmt.Sprintf("%d", c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}

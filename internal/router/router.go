package router

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vitalsync/portal-api/internal/handler"
	appointmentHandler "github.com/vitalsync/portal-api/internal/handler/appointment"
	authHandler "github.com/vitalsync/portal-api/internal/handler/auth"
	chatHandler "github.com/vitalsync/portal-api/internal/handler/chat"
	dashboardHandler "github.com/vitalsync/portal-api/internal/handler/dashboard"
	doctorHandler "github.com/vitalsync/portal-api/internal/handler/doctor"
	medicalrecordHandler "github.com/vitalsync/portal-api/internal/handler/medicalrecord"
	"github.com/vitalsync/portal-api/internal/middleware"
)

type Handlers struct {
	Meta          *handler.Handler
	Auth          *authHandler.Handler
	Doctor        *doctorHandler.Handler
	Appointment   *appointmentHandler.Handler
	MedicalRecord *medicalrecordHandler.Handler
	Chat          *chatHandler.Handler
	Dashboard     *dashboardHandler.Handler
}

type Config struct {
	RateLimitRPS   float64
	RateLimitBurst int
	CORSConfig     middleware.CORSConfig
	RequestTimeout time.Duration
	MetricsPrefix  string
}

type Router struct {
	engine   *gin.Engine
	auth     *middleware.AuthMiddleware
	handlers Handlers
	metrics  *routerMetrics
	registry *prometheus.Registry
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

func NewRouter(auth *middleware.AuthMiddleware, handlers Handlers, config Config) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()

	registry := prometheus.NewRegistry()
	metrics := initRouterMetrics(config.MetricsPrefix, registry)

	r := &Router{
		engine:   engine,
		auth:     auth,
		handlers: handlers,
		metrics:  metrics,
		registry: registry,
	}

	timeout := middleware.DefaultTimeoutConfig()
	if config.RequestTimeout > 0 {
		timeout.Duration = config.RequestTimeout
	}

	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		r.metricsMiddleware(),
		middleware.Timeout(timeout),
		middleware.CORS(config.CORSConfig),
	)

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RPS:   config.RateLimitRPS,
		Burst: config.RateLimitBurst,
	})
	engine.Use(rateLimiter.RateLimit())

	return r
}

func (r *Router) Setup() {
	r.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})))

	api := r.engine.Group("/api/v1")

	// Public routes
	api.GET("/", r.handlers.Meta.Banner)
	api.GET("/health", r.handlers.Meta.HealthCheck)
	r.handlers.Auth.RegisterRoutes(api)
	r.handlers.Doctor.RegisterRoutes(api)

	// Protected routes
	protected := api.Group("")
	protected.Use(r.auth.Authenticate())
	r.handlers.Auth.RegisterProtectedRoutes(protected)
	r.handlers.Appointment.RegisterRoutes(protected)
	r.handlers.MedicalRecord.RegisterRoutes(protected)
	r.handlers.Chat.RegisterRoutes(protected)
	r.handlers.Dashboard.RegisterRoutes(protected)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func initRouterMetrics(prefix string, registry *prometheus.Registry) *routerMetrics {
	if prefix == "" {
		prefix = "portal"
	}

	m := &routerMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: prefix + "_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_errors_total",
				Help: "Total number of HTTP errors",
			},
			[]string{"method", "path", "type"},
		),
	}

	registry.MustRegister(m.requestDuration, m.requestTotal, m.errorTotal)
	return m
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

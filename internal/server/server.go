package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"
	"touchhub/backend/internal/api/controller"
	"touchhub/backend/internal/api/middleware"
	"touchhub/backend/internal/api/service"
	"touchhub/backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("server")

const healthTimeout = 2 * time.Second

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Server owns the gin engine and its routes.
type Server struct {
	engine  *gin.Engine
	db      Pinger
	metrics *metrics.Metrics
}

// NewServer wires controllers and middleware onto a new gin engine.
func NewServer(db Pinger, userService service.UserService, playService service.PlayService, m *metrics.Metrics) *Server {
	engine := gin.New()
	engine.RedirectTrailingSlash = false
	engine.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(m))

	s := &Server{
		engine:  engine,
		db:      db,
		metrics: m,
	}
	s.registerRoutes(
		controller.NewUserController(userService, m),
		controller.NewPlayController(playService, m),
		middleware.RequireUser(userService, m),
	)
	return s
}

func (s *Server) registerRoutes(uc *controller.UserController, pc *controller.PlayController, auth gin.HandlerFunc) {
	r := s.engine

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "TouchHub backend running!"})
	})
	r.GET("/healthz", s.health)
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	both(r.POST, "/users", uc.Register)
	both(r.GET, "/users", uc.List)
	r.GET("/users/:id", uc.Get)

	r.POST("/auth/token", uc.Login)
	r.GET("/auth/me", auth, uc.Me)

	both(r.GET, "/plays", pc.List)
	both(r.POST, "/plays", auth, pc.Create)
	r.GET("/plays/community", pc.ListCommunity)
	r.GET("/plays/me", auth, pc.ListMine)
	r.GET("/plays/:id", pc.Get)
	r.PUT("/plays/:id", auth, pc.Update)
	r.DELETE("/plays/:id", auth, pc.Delete)
}

// both registers path with and without a trailing slash.
func both(register func(string, ...gin.HandlerFunc) gin.IRoutes, path string, handlers ...gin.HandlerFunc) {
	register(path, handlers...)
	register(path+"/", handlers...)
}

func (s *Server) health(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "server.health")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "database unreachable")
		slog.WarnContext(ctx, "health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Engine returns the underlying gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Handler wraps the engine with CORS for the given origins and OpenTelemetry
// server spans.
func (s *Server) Handler(corsOrigins []string) http.Handler {
	withCORS := cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})(s.engine)

	return otelhttp.NewHandler(withCORS, "touchhub",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}

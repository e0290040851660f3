// Package gin implements the HTTP API on top of the gin web framework.
//
// The server exposes quiz generation and retrieval endpoints under /api/quiz,
// plus liveness and prometheus metrics endpoints. Domain errors are translated
// to HTTP status codes at this boundary; handlers never leak internal error
// messages for unexpected failures.
package gin

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fwojciec/wikiquiz"
	"github.com/fwojciec/wikiquiz/quizgen"
)

const shutdownTimeout = 5 * time.Second

// Server serves the quiz HTTP API.
type Server struct {
	ln     net.Listener
	server *http.Server
	router *gin.Engine

	addr   string
	svc    *quizgen.Service
	logger *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	return func(s *Server) {
		s.addr = addr
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer returns a Server wired to the given quiz service. Call Open to
// start listening.
func NewServer(svc *quizgen.Service, opts ...Option) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		router: gin.New(),
		addr:   ":8000",
		svc:    svc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router.Use(gin.Recovery())
	s.router.Use(RequestID())
	s.router.Use(Logger(s.logger))
	s.router.Use(Metrics())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	s.router.Use(cors.New(corsConfig))

	s.router.GET("/health", s.handleHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.router.Group("/api/quiz")
	{
		api.POST("/validate-url", s.handleValidateURL)
		api.POST("/generate", s.handleGenerateQuiz)
		api.GET("/history", s.handleQuizHistory)
		api.GET("/:id", s.handleQuizByID)
	}

	s.server = &http.Server{Handler: s.router}

	return s
}

// Open starts listening on the configured address. It returns once the
// listener is bound; requests are served on a background goroutine.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.ln = ln

	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.Error("http server terminated", "error", err)
		}
	}()

	return nil
}

// Addr returns the bound listener address. Only valid after Open.
func (s *Server) Addr() string {
	if s.ln == nil {
		return s.addr
	}
	return s.ln.Addr().String()
}

// Close gracefully shuts the server down, waiting for in-flight requests up
// to a fixed timeout.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// ServeHTTP dispatches to the underlying router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// errorResponse writes a domain error as a JSON body with the appropriate
// status code. Unexpected errors surface as a generic 500.
func errorResponse(c *gin.Context, err error) {
	c.JSON(statusFromCode(wikiquiz.ErrorCode(err)), gin.H{"detail": wikiquiz.ErrorMessage(err)})
}

func statusFromCode(code string) int {
	switch code {
	case wikiquiz.EINVALID:
		return http.StatusBadRequest
	case wikiquiz.ENOTFOUND:
		return http.StatusNotFound
	case wikiquiz.EUNAVAILABLE:
		return http.StatusBadGateway
	case wikiquiz.ECONFLICT:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

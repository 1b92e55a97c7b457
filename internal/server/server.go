package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"meetingroom/internal/config"
	"meetingroom/internal/reservation"
)

type Server struct {
	router *gin.Engine
	config *config.Config
	http   *http.Server
}

func New(repo reservation.Repository, cfg *config.Config) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware())

	reservationHandler := reservation.NewHandler(reservation.NewService(repo))

	public := router.Group("/")
	public.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))
	{
		public.GET("/meeting_rooms/:roomID/reservations", reservationHandler.ListFutureForRoom)
		public.GET("/meeting_rooms/:roomID/availability", reservationHandler.CheckAvailability)
		public.GET("/users/:userID/reservations", reservationHandler.ListForUser)
		public.GET("/reservations/stats", reservationHandler.RoomStats)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())

	return &Server{
		router: router,
		config: cfg,
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

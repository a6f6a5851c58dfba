package api

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"portfolio/internal/api/auth"
	"portfolio/internal/api/handler"
	"portfolio/internal/config"
	"portfolio/internal/storage"
)

// Server wires the HTTP surface: public content reads, the auth endpoints and
// the session-guarded admin routes.
type Server struct {
	cfg       *config.Config
	ginEngine *gin.Engine
	store     storage.Storage
}

func New(cfg *config.Config, store storage.Storage, debug bool) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	ginEngine := gin.New()
	ginEngine.Use(RequestLogger(), gin.Recovery(), gzip.Gzip(gzip.DefaultCompression))

	s := &Server{
		cfg:       cfg,
		ginEngine: ginEngine,
		store:     store,
	}
	s.setupSession()
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupSession() {
	store := cookie.NewStore([]byte(s.cfg.Session.Key))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   s.cfg.Session.MaxAge,
		HttpOnly: true,
		Secure:   s.cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	s.ginEngine.Use(sessions.Sessions("session", store))
}

func (s *Server) setupRoutes() {
	// A method mismatch on a known path is a 405, not a 404.
	s.ginEngine.HandleMethodNotAllowed = true
	s.ginEngine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Method not allowed"})
	})
	s.ginEngine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	})

	h := handler.New(s.store)
	authHandler := auth.New(s.store)

	api := s.ginEngine.Group("/api")

	api.GET("/health", h.Health)
	api.GET("/about", h.GetAbout)
	api.GET("/certifications", h.ListCertifications)
	api.GET("/hackathons", h.ListHackathons)
	api.GET("/projects", h.ListProjects)

	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/me", auth.RequireAuth(), authHandler.Me)

	admin := api.Group("/admin")
	admin.Use(auth.RequireAuth())

	admin.PUT("/about", h.UpsertAbout)

	admin.POST("/certifications", h.CreateCertification)
	admin.PUT("/certifications/:id", h.UpdateCertification)
	admin.DELETE("/certifications/:id", h.DeleteCertification)

	admin.POST("/hackathons", h.CreateHackathon)
	admin.PUT("/hackathons/:id", h.UpdateHackathon)
	admin.DELETE("/hackathons/:id", h.DeleteHackathon)

	admin.POST("/projects", h.CreateProject)
	admin.PUT("/projects/:id", h.UpdateProject)
	admin.DELETE("/projects/:id", h.DeleteProject)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.ginEngine
}

func (s *Server) Run() error {
	return s.ginEngine.Run(s.cfg.Listen)
}

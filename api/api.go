package api

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"propdesk/api/auth"
	"propdesk/api/handler"
	"propdesk/config"
	"propdesk/database"
	"propdesk/web"
)

// Server is the PropDesk HTTP server.
type Server struct {
	cfg          *config.Config
	ginEngine    *gin.Engine
	db           *database.Client
	authProvider *auth.Provider
}

// New creates the server and wires up routes and middleware.
func New(cfg *config.Config, db *database.Client, debug bool) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:          cfg,
		ginEngine:    gin.Default(),
		db:           db,
		authProvider: auth.New(db),
	}

	tmpl, err := template.ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	s.ginEngine.SetHTMLTemplate(tmpl)

	s.setupSession()
	s.setupRoutes()
	s.setupAdminRoutes()

	return s, nil
}

func (s *Server) setupSession() {
	key := s.cfg.SessionKey
	if key == "" {
		key = uuid.New().String()
		log.Warn("no session_key configured, sessions won't survive a restart")
	}
	store := cookie.NewStore([]byte(key))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   s.cfg.SessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.ginEngine.Use(sessions.Sessions("propdesk_session", store))
}

func (s *Server) setupRoutes() {
	h := handler.New(s.db)

	s.ginEngine.GET("/login", s.authProvider.LoginPage)
	s.ginEngine.POST("/login", s.authProvider.Login)
	s.ginEngine.GET("/logout", s.authProvider.Logout)

	protected := s.ginEngine.Group("/")
	protected.Use(s.authProvider.RequireAuth())

	protected.GET("/", h.Home)
	protected.GET("/proposals", h.Proposals)
	protected.GET("/add_proposal", h.AddProposalForm)
	protected.POST("/add_proposal", h.AddProposal)
}

func (s *Server) setupAdminRoutes() {
	h := handler.NewAdmin(s.db)

	// Admin routes only check the session's admin flag; each route keeps its
	// historical redirect target for non-admins, including the add_user
	// divergence where non-admins land on the login page instead of the
	// proposals list.
	s.ginEngine.GET("/admin/users", s.authProvider.RequireAdmin("/proposals"), h.Users)
	s.ginEngine.POST("/admin/add_user", s.authProvider.RequireAdmin("/login"), h.AddUser)
	s.ginEngine.GET("/admin/all", s.authProvider.RequireAdmin("/proposals"), h.AllProposals)
	s.ginEngine.GET("/admin/commissions", s.authProvider.RequireAdmin("/proposals"), h.Commissions)
	s.ginEngine.POST("/admin/add_commission", s.authProvider.RequireAdmin("/proposals"), h.AddCommission)
	s.ginEngine.POST("/admin/delete_commission", s.authProvider.RequireAdmin("/proposals"), h.DeleteCommission)
}

// Run starts the server and blocks until it stops.
func (s *Server) Run() error {
	return s.ginEngine.Run(s.cfg.Listen)
}

// Handler exposes the underlying http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.ginEngine
}

package adapthttp

import (
	"net/http"
	"time"

	"barista/internal/app"

	"go.uber.org/zap"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	coffees    *app.CoffeeService
	brew       *app.BrewService
	dashboard  *app.DashboardService
	authSvc    *app.AuthService
	oidcConfig *OIDCConfig
	webDir     string
	log        *zap.Logger

	disableAuth  bool
	forwardAuth  bool
	disableSetup bool
	now          func() time.Time
}

// New creates a Server wired to the given application services.
func New(cs *app.CoffeeService, bs *app.BrewService, ds *app.DashboardService, auth *app.AuthService, webDir string, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		coffees:    cs,
		brew:       bs,
		dashboard:  ds,
		authSvc:    auth,
		oidcConfig: &OIDCConfig{},
		webDir:     webDir,
		log:        log,
		now:        time.Now,
	}
}

// WithoutAuth disables authentication on the API.
func (s *Server) WithoutAuth() *Server {
	s.disableAuth = true
	return s
}

// WithForwardAuth trusts the Remote-User header set by a reverse proxy.
func (s *Server) WithForwardAuth() *Server {
	s.forwardAuth = true
	return s
}

// WithoutSetup closes the first-user setup endpoint.
func (s *Server) WithoutSetup() *Server {
	s.disableSetup = true
	return s
}

// WithOIDC enables single sign-on through cfg.
func (s *Server) WithOIDC(cfg *OIDCConfig) *Server {
	if cfg != nil {
		s.oidcConfig = cfg
	}
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	protected := http.NewServeMux()
	protected.HandleFunc("GET /coffees", s.handleCoffeeList)
	protected.HandleFunc("POST /coffees", s.handleCoffeeAdd)
	protected.HandleFunc("GET /coffees/all", s.handleCoffeeAll)
	protected.HandleFunc("GET /coffees/export", s.handleCoffeeExport)
	protected.HandleFunc("GET /brew-guides", s.handleBrewGuides)
	protected.HandleFunc("GET /brew-guides/{id}", s.handleBrewGuide)
	protected.HandleFunc("GET /dashboard", s.handleDashboard)

	api := http.NewServeMux()
	api.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	api.HandleFunc("POST /auth/login", s.handleLogin)
	api.HandleFunc("POST /auth/logout", s.handleLogout)
	api.HandleFunc("POST /auth/setup", s.handleSetupUser)
	api.HandleFunc("GET /auth/config", s.handleConfig)
	api.HandleFunc("GET /auth/sso/login", s.handleSSOLogin)
	api.HandleFunc("GET /auth/sso/callback", s.handleSSOCallback)
	api.Handle("/", s.authMiddleware(protected))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("/", spaFromDisk(s.webDir))

	return s.loggingMiddleware(withNoCache(root))
}

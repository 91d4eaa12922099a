// Package router assembles the gin engine.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	generationhandler "regalis_backend/internal/feature/generation/transport/handler"
	identityhandler "regalis_backend/internal/feature/identity/transport/handler"
	templatehandler "regalis_backend/internal/feature/templates/transport/handler"
	platformhandler "regalis_backend/internal/platform/http/handler"
	jwtmw "regalis_backend/internal/platform/jwt"
)

// Handlers groups the feature handlers mounted by NewRouter.
type Handlers struct {
	Identity   *identityhandler.IdentityHandler
	Projects   *identityhandler.ProjectHandler
	Generation *generationhandler.GenerationHandler
	Templates  *templatehandler.TemplateHandler
	// Backend is pinged by /readyz.
	Backend platformhandler.Pinger
}

// Options configures cross-cutting middleware.
type Options struct {
	JWTSecret      string
	AllowedOrigins []string
}

// NewRouter mounts every route. /session, /logout and /projects require a bearer token.
func NewRouter(h Handlers, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger())
	r.Use(cors.New(corsConfig(opts.AllowedOrigins)))

	// 認証不要
	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)
	r.GET("/readyz", platformhandler.Ready(h.Backend, 2*time.Second))

	r.POST("/signup", h.Identity.Signup)
	r.POST("/login", h.Identity.Login)

	r.POST("/generate", h.Generation.Generate)
	r.GET("/templates", h.Templates.List)
	r.GET("/templates/:id", h.Templates.Get)

	// 認証必須のルート
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired(opts.JWTSecret))
	{
		auth.POST("/logout", h.Identity.Logout)
		auth.GET("/session", h.Identity.Session)
		auth.POST("/projects", h.Projects.Save)
		auth.GET("/projects", h.Projects.List)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", HeaderRequestID},
		ExposeHeaders: []string{HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

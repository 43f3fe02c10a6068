package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mythoslab/mythos-backend/internal/announcement"
	annHttp "github.com/mythoslab/mythos-backend/internal/announcement/http"
	"github.com/mythoslab/mythos-backend/internal/auth"
	"github.com/mythoslab/mythos-backend/internal/chat"
	chatHttp "github.com/mythoslab/mythos-backend/internal/chat/http"
	"github.com/mythoslab/mythos-backend/internal/notify"
	notifyHttp "github.com/mythoslab/mythos-backend/internal/notify/http"
	"github.com/mythoslab/mythos-backend/internal/settings"
	settingsHttp "github.com/mythoslab/mythos-backend/internal/settings/http"
)

// Config holds everything the router needs to assemble the API.
type Config struct {
	IsProduction    bool
	ProdOrigins     string
	AnnService      announcement.Service
	SettingsService settings.Service
	ChatService     chat.Service
	Notifications   *notify.Center
	JWTManager      *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:5173", // Vite dev server
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// adminMiddleware: Further checks if the authenticated session has the admin role.
	adminMiddleware := RequireAdmin()

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	authHandler := NewAuthHandler(cfg.JWTManager)
	annHandler := annHttp.NewHandler(cfg.AnnService)
	settingsHandler := settingsHttp.NewHandler(cfg.SettingsService)
	chatHandler := chatHttp.NewHandler(cfg.ChatService)
	notifyHandler := notifyHttp.NewHandler(cfg.Notifications)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		v1.POST("/auth/login", authHandler.Login)
		v1.GET("/me", authMiddleware, authHandler.Me)

		annHttp.RegisterRoutes(v1, annHandler, authMiddleware, adminMiddleware)
		settingsHttp.RegisterRoutes(v1, settingsHandler, authMiddleware, adminMiddleware)
		chatHttp.RegisterRoutes(v1, chatHandler, authMiddleware, adminMiddleware)
		notifyHttp.RegisterRoutes(v1, notifyHandler, authMiddleware)
	}

	return r
}

package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mythoslab/mythos-backend/internal/announcement"
	"github.com/mythoslab/mythos-backend/internal/api"
	"github.com/mythoslab/mythos-backend/internal/auth"
	"github.com/mythoslab/mythos-backend/internal/chat"
	"github.com/mythoslab/mythos-backend/internal/notify"
	"github.com/mythoslab/mythos-backend/internal/pkg/blobstore"
	"github.com/mythoslab/mythos-backend/internal/settings"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	// DBPool is optional; when nil, blobs go to files under DataDir.
	DBPool       *pgxpool.Pool
	DataDir      string
	JWTSecret    string
	JWTTTL       time.Duration
	GeminiAPIKey string
	ChatModel    string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
	Settings   settings.Service
}

// NewContainer initializes all modules and returns the container.
func NewContainer(ctx context.Context, cfg Config) (*Container, error) {
	// Init Components
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	var store blobstore.Store
	if cfg.DBPool != nil {
		pgStore, err := blobstore.NewPgStore(ctx, cfg.DBPool)
		if err != nil {
			return nil, err
		}
		store = pgStore
	} else {
		fileStore, err := blobstore.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		store = fileStore
	}

	// Notification Center
	center := notify.NewCenter(notify.DefaultTTL)

	// Announcement Module
	annRepo := announcement.NewBlobRepository(ctx, store)
	annService := announcement.NewService(annRepo, center)

	// Settings Module
	settingsService := settings.NewService(ctx, store, center)

	// Chat Module
	chatService := chat.NewService(ctx, store, cfg.GeminiAPIKey, cfg.ChatModel)

	// API Router Config
	routerParams := api.Config{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     cfg.ProdOrigins,
		AnnService:      annService,
		SettingsService: settingsService,
		ChatService:     chatService,
		Notifications:   center,
		JWTManager:      jwtManager,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
		Settings:   settingsService,
	}, nil
}

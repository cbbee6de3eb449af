package server

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/trektribe/backend/internal/config"
	"github.com/trektribe/backend/internal/database"
	"github.com/trektribe/backend/internal/handlers"
	"github.com/trektribe/backend/internal/middleware"
	"github.com/trektribe/backend/internal/presence"
	"github.com/trektribe/backend/internal/services"
	"github.com/trektribe/backend/internal/shorts"
	ws "github.com/trektribe/backend/internal/websocket"
	"github.com/trektribe/backend/pkg/auth"
	"github.com/trektribe/backend/pkg/sheets"
)

// tokenDuration matches the long-lived session cookie.
const tokenDuration = 300 * 24 * time.Hour

type Server struct {
	Router *gin.Engine
	DB     *database.Database
	Redis  *redis.Client
	Hub    *ws.Hub
	cfg    config.Config
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db := &database.Database{}
	if err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB); err != nil {
		log.Fatalf("Mongo connect failed: %v", err)
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	rdb := redis.NewClient(redisOpts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Redis connect failed: %v", err)
	}

	jwtMgr := auth.NewJWTManager(cfg.JWTSecret, tokenDuration)
	blacklist := middleware.NewRedisBlacklist(rdb)

	hub := ws.NewHub()
	go hub.Run()

	registry := presence.NewRegistry()
	msgRouter := services.NewMessageRouter(db, registry, hub)
	dispatcher := services.NewNotificationDispatcher(db, registry, hub)

	var sheetClient handlers.SheetAppender
	if cfg.SheetCredentials != "" && cfg.SheetID != "" {
		client, err := sheets.NewClient(context.Background(), cfg.SheetCredentials, cfg.SheetID)
		if err != nil {
			log.Printf("Sheets client unavailable: %v", err)
		} else {
			sheetClient = client
		}
	} else {
		log.Println("Sheets integration not configured")
	}

	deps := &Handlers{
		Auth:         handlers.NewAuthHandler(db, jwtMgr, blacklist),
		Query:        handlers.NewQueryHandler(db),
		FindingBuddy: handlers.NewFindingBuddyHandler(db, dispatcher, msgRouter),
		HiddenGem:    handlers.NewHiddenGemHandler(db),
		Message:      handlers.NewMessageHandler(msgRouter),
		Contact:      handlers.NewContactHandler(sheetClient),
		Shorts:       handlers.NewShortsHandler(shorts.NewStore(cfg.ShortsFile)),
		WebSocket:    handlers.NewWebSocketHandler(hub, msgRouter, registry, db),
		AuthGate:     middleware.AuthMiddleware(jwtMgr, db, blacklist),
	}

	router := gin.Default()
	router.Use(middleware.CORS(cfg.CORSOrigin))
	APIEndpoints(router, deps)

	return &Server{
		Router: router,
		DB:     db,
		Redis:  rdb,
		Hub:    hub,
		cfg:    cfg,
	}
}

func (s *Server) Run() {
	log.Printf("Server starting on port %s", s.cfg.Port)
	if err := s.Router.Run(":" + s.cfg.Port); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}

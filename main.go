package main

import (
	"log"
	"strings"
	"time"

	"gamemedia/config"
	"gamemedia/db"
	"gamemedia/handlers"
	"gamemedia/models"
	"gamemedia/storage"
	"gamemedia/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

func main() {
	dbc, err := db.Open(config.MYSQL_DSN, config.SQLITE_FILE)
	if err != nil {
		log.Fatalf("Cannot open DB: %v", err)
	}
	if err := models.Init(dbc); err != nil {
		log.Fatalf("Cannot migrate DB: %v", err)
	}
	provider, err := storage.NewProvider(dbc, config.DEFAULT_BUCKET_DIR)
	if err != nil {
		log.Fatalf("Cannot initialise storage: %v", err)
	}

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))
	router.Use(utils.SecurityHeadersMiddleware)
	if !config.DEBUG_MODE {
		// Media fetches are base64-in-JSON and big enough that gzip buys little
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/sprite", "/audio"})))
	}
	router.Use(utils.NoCacheMiddleware) // No cache by default, media fetches override it

	scores := handlers.NewScoreStore(dbc)
	sprites := handlers.NewSpriteStore(dbc, provider)
	audio := handlers.NewAudioStore(dbc, provider)

	router.GET("/", handlers.Hello)
	// Score handlers
	router.GET("/player_score", scores.Fetch)
	router.POST("/upload_player_score", scores.Save)
	router.POST("/player_score", scores.Save) // legacy path
	// Sprite handlers
	router.GET("/sprite", sprites.Fetch)
	router.POST("/sprite", sprites.Upload)
	router.POST("/upload_sprite", sprites.Upload) // legacy path
	// Audio handlers
	router.GET("/audio", audio.Fetch)
	router.POST("/audio", audio.Upload)
	router.POST("/upload_audio", audio.Upload) // legacy path

	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/emilythestrangee/breadit-api/internal/cache"
	"github.com/emilythestrangee/breadit-api/internal/config"
	"github.com/emilythestrangee/breadit-api/internal/database"
	"github.com/emilythestrangee/breadit-api/internal/handlers"
	"github.com/emilythestrangee/breadit-api/internal/middleware"
)

type Server struct {
	cfg         config.Config
	db          database.Service
	redis       redis.UniversalClient
	handler     *handlers.Handler
	voteLimiter *middleware.RateLimiter
	log         *zap.Logger
}

// NewServer connects to Postgres and Redis and wires the handlers.
func NewServer(cfg config.Config, log *zap.Logger) (*Server, error) {
	db, err := database.New(cfg.DB, log.Named("database"))
	if err != nil {
		return nil, err
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	return New(cfg, db, redis.NewClient(opts), log), nil
}

// New wires a server around already opened connections.
func New(cfg config.Config, db database.Service, rdb redis.UniversalClient, log *zap.Logger) *Server {
	gdb := db.GetDB()
	stores := handlers.Stores{
		Posts:        database.NewPostStore(gdb),
		PostVotes:    database.NewPostVoteStore(gdb),
		Comments:     database.NewCommentStore(gdb),
		CommentVotes: database.NewCommentVoteStore(gdb),
		Communities:  database.NewCommunityStore(gdb),
		Users:        database.NewUserStore(gdb),
	}
	populator := cache.NewPopulator(cache.NewRedisWriter(rdb), cfg.Vote.CacheAfterUpvotes)

	return &Server{
		cfg:         cfg,
		db:          db,
		redis:       rdb,
		handler:     handlers.NewHandler(stores, populator, cfg.Vote.StoreTimeout, log),
		voteLimiter: middleware.NewRateLimiter(cfg.Vote.RateLimit, cfg.Vote.RateBurst),
		log:         log,
	}
}

// HTTPServer returns the listener configuration for the API.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         "0.0.0.0:" + s.cfg.App.Port,
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// Close releases the database and Redis connections.
func (s *Server) Close() error {
	return errors.Join(s.db.Close(), s.redis.Close())
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	if !s.cfg.App.IsDevEnvironment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(s.log))

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.Authenticate([]byte(s.cfg.Auth.JWTSecret)))

	r.GET("/health", s.health)

	limitVotes := s.voteLimiter.Middleware("Too many votes. Slow down.")

	api := r.Group("/api")
	{
		api.PATCH("/username", s.handler.User.UpdateUsername)

		community := api.Group("/community")
		community.POST("", s.handler.Community.CreateCommunity)
		community.POST("/subscribe", s.handler.Community.Subscribe)
		community.POST("/unsubscribe", s.handler.Community.Unsubscribe)

		post := community.Group("/post")
		post.POST("/create", s.handler.Post.CreatePost)
		post.PATCH("/vote", limitVotes, s.handler.Post.VotePost)
		post.PATCH("/comment", s.handler.Comment.CreateComment)
		post.PATCH("/comment/vote", limitVotes, s.handler.Comment.VoteComment)
	}

	return r
}

func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	db := s.db.Health(ctx)

	cacheStatus := map[string]string{"status": "up"}
	if err := s.redis.Ping(ctx).Err(); err != nil {
		cacheStatus = map[string]string{"status": "down", "error": err.Error()}
	}

	status := http.StatusOK
	if db["status"] != "up" || cacheStatus["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"database": db, "redis": cacheStatus})
}

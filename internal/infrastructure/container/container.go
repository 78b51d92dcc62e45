package container

import (
	"context"
	"fmt"
	"time"

	"github.com/gdugdh24/roomies-backend/internal/compatibility"
	"github.com/gdugdh24/roomies-backend/internal/config"
	"github.com/gdugdh24/roomies-backend/internal/delivery/http"
	"github.com/gdugdh24/roomies-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/roomies-backend/internal/delivery/http/middleware"
	"github.com/gdugdh24/roomies-backend/internal/infrastructure/cache"
	"github.com/gdugdh24/roomies-backend/internal/infrastructure/database"
	"github.com/gdugdh24/roomies-backend/internal/infrastructure/gemini"
	"github.com/gdugdh24/roomies-backend/internal/infrastructure/notify"
	"github.com/gdugdh24/roomies-backend/internal/infrastructure/server"
	"github.com/gdugdh24/roomies-backend/internal/repository"
	"github.com/gdugdh24/roomies-backend/internal/repository/memory"
	"github.com/gdugdh24/roomies-backend/internal/repository/postgres"
	"github.com/gdugdh24/roomies-backend/internal/usecase/auth"
	compatuc "github.com/gdugdh24/roomies-backend/internal/usecase/compatibility"
	"github.com/gdugdh24/roomies-backend/internal/usecase/feed"
	"github.com/gdugdh24/roomies-backend/internal/usecase/match"
	"github.com/gdugdh24/roomies-backend/internal/usecase/profile"
	"github.com/gdugdh24/roomies-backend/internal/usecase/swipe"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Gemini *gemini.GeminiClient
	logger *zap.Logger
}

type repositories struct {
	profiles     repository.ProfileRepository
	interactions repository.InteractionRepository
	matches      repository.MatchRepository
	spaces       repository.LivingSpaceRepository
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	c := &Container{Config: cfg, logger: logger}

	repos, err := c.initRepositories(ctx)
	if err != nil {
		return nil, err
	}

	// Redis is optional: without it results are not cached and
	// notifications only go to the log.
	var compatCache compatuc.Cache
	var notifier swipe.NotificationSink = notify.NewLogPublisher(logger)
	if cfg.Redis.Enabled {
		c.Redis, err = database.NewRedisClient(ctx, &cfg.Redis, logger)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		compatCache = cache.NewCompatibilityCache(c.Redis, cfg.Matching.CompatibilityCacheTTL)
		notifier = notify.NewRedisPublisher(c.Redis, cfg.Matching.NotifyChannel, logger)
	}

	var explainer match.Explainer
	if cfg.GeminiAPIKey != "" {
		c.Gemini, err = gemini.NewGeminiClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			logger.Warn("gemini client unavailable, using built-in explanations", zap.Error(err))
		} else {
			explainer = c.Gemini
		}
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Use cases
	engine := compatibility.NewEngine(repos.profiles)
	compatibilityUseCase := compatuc.NewCompatibilityUseCase(engine, compatCache, logger)
	tokenUseCase := auth.NewTokenUseCase(cfg.JWT.AccessSecret, time.Duration(cfg.JWT.AccessExpiryMin)*time.Minute)
	profileUseCase := profile.NewProfileUseCase(repos.profiles, compatibilityUseCase)
	matchUseCase := match.NewMatchUseCase(
		repos.matches,
		repos.interactions,
		compatibilityUseCase,
		repos.spaces,
		explainer,
		logger,
	)
	swipeUseCase := swipe.NewSwipeUseCase(
		repos.interactions,
		matchUseCase,
		compatibilityUseCase,
		notifier,
		logger,
	)
	feedUseCase := feed.NewFeedUseCase(
		repos.profiles,
		repos.interactions,
		compatibilityUseCase,
		cfg.Matching.SuggestionsLimit,
		logger,
	)

	// Handlers
	router := http.NewRouter(
		handler.NewAuthHandler(tokenUseCase, logger),
		handler.NewProfileHandler(profileUseCase, logger),
		handler.NewCompatibilityHandler(compatibilityUseCase, logger),
		handler.NewSwipeHandler(swipeUseCase, logger),
		handler.NewMatchHandler(matchUseCase, logger),
		handler.NewFeedHandler(feedUseCase, logger),
		middleware.NewAuthMiddleware(tokenUseCase),
		logger,
		cfg.Server.Env != "production",
	)

	c.Server = server.NewServer(&cfg.Server, router.Setup(), logger)
	return c, nil
}

func (c *Container) initRepositories(ctx context.Context) (*repositories, error) {
	switch c.Config.Storage.Type {
	case config.StorageMemory:
		c.logger.Warn("using in-memory storage, data is lost on restart")
		store := memory.NewStore()
		return &repositories{
			profiles:     store.Profiles(),
			interactions: store.Interactions(),
			matches:      store.Matches(),
			spaces:       store.LivingSpaces(),
		}, nil
	default:
		db, err := database.NewPostgresDB(ctx, &c.Config.Database, c.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		c.DB = db
		return &repositories{
			profiles:     postgres.NewProfileRepository(db),
			interactions: postgres.NewInteractionRepository(db),
			matches:      postgres.NewMatchRepository(db),
			spaces:       postgres.NewLivingSpaceRepository(db),
		}, nil
	}
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		if err := c.Gemini.Close(); err != nil {
			c.logger.Warn("error closing gemini client", zap.Error(err))
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Warn("error closing redis", zap.Error(err))
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}

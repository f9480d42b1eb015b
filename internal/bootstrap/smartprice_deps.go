package bootstrap

import (
	"context"
	"strings"
	"time"

	"smartprice_server/adapter/out/catalog"
	"smartprice_server/adapter/out/mongodb"
	"smartprice_server/adapter/out/oracle"
	"smartprice_server/adapter/out/persistence"
	"smartprice_server/config"
	"smartprice_server/core/agent"
	"smartprice_server/core/agent/llm"
	"smartprice_server/core/agent/session"
	"smartprice_server/core/domain"
	"smartprice_server/core/port/out"
	"smartprice_server/core/service/intent"
	"smartprice_server/core/service/pricing"
	"smartprice_server/infra/database"
	"smartprice_server/pkg/cache"
	"smartprice_server/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

type Dependencies struct {
	Config  *config.Config
	DB      *pgxpool.Pool
	SQLDB   *sqlx.DB
	Redis   *redis.Client
	MongoDB *mongo.Client

	// Repositories
	CardRepo out.CardRepository
	Catalog  out.OfferCatalog
	Archive  out.ConversationArchive

	// Core services
	Engine   *pricing.Engine
	Pipeline *intent.Pipeline
	Sessions *session.Manager

	// Agent
	LLMClient    *llm.Client
	Orchestrator *agent.Orchestrator
}

func NewDependencies(cfg *config.Config) (*Dependencies, func(), error) {
	deps := &Dependencies{Config: cfg}
	var cleanups []func()

	// Postgres is optional; without it the built-in card catalog serves.
	if cfg.DatabaseURL != "" {
		db, err := database.NewPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		deps.DB = db
		cleanups = append(cleanups, func() { db.Close() })

		// sqlx connection for the card adapter. Simple protocol avoids
		// prepared statement conflicts with PgBouncer.
		sqlxURL := cfg.DatabaseURL
		if strings.Contains(sqlxURL, "?") {
			sqlxURL += "&default_query_exec_mode=simple_protocol"
		} else {
			sqlxURL += "?default_query_exec_mode=simple_protocol"
		}
		sqlDB, err := sqlx.Connect("pgx", sqlxURL)
		if err != nil {
			logger.Error("sqlx connection failed: %v", err)
		} else {
			sqlDB.SetMaxOpenConns(25)
			sqlDB.SetMaxIdleConns(10)
			sqlDB.SetConnMaxLifetime(30 * time.Minute)
			sqlDB.SetConnMaxIdleTime(5 * time.Minute)

			deps.SQLDB = sqlDB
			cleanups = append(cleanups, func() { sqlDB.Close() })
		}
	}

	// Redis is optional; it backs the card catalog snapshot.
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedis(cfg.RedisURL)
		if err != nil {
			logger.WithError(err).Warn("Redis unavailable, card snapshot cache disabled")
		} else {
			deps.Redis = redisClient
			cleanups = append(cleanups, func() { redisClient.Close() })
		}
	}

	// MongoDB is optional; it archives finished conversation turns.
	if cfg.MongoDBURL != "" {
		mongoClient, err := mongodb.NewClient(cfg.MongoDBURL)
		if err != nil {
			logger.WithError(err).Warn("MongoDB unavailable, conversation archive disabled")
		} else {
			deps.MongoDB = mongoClient
			cleanups = append(cleanups, func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				mongoClient.Disconnect(ctx)
			})

			archive := mongodb.NewConversationAdapter(mongoClient.Database(cfg.MongoDBName))
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := archive.EnsureIndexes(ctx); err != nil {
				logger.WithError(err).Warn("conversation index creation failed")
			}
			cancel()
			deps.Archive = archive
		}
	}

	// Card repository: Postgres when available, built-in catalog otherwise,
	// with a Redis snapshot in front when Redis is up.
	if deps.SQLDB != nil {
		deps.CardRepo = persistence.NewCardAdapter(deps.SQLDB)
	} else {
		deps.CardRepo = persistence.NewStaticCardRepository()
	}
	if deps.Redis != nil {
		deps.CardRepo = persistence.NewCachedCardRepository(deps.CardRepo, cache.NewRedisCache(deps.Redis))
	}

	cards, err := loadCards(deps.CardRepo, cfg.DefaultCards)
	if err != nil {
		return nil, nil, err
	}
	deps.Engine = pricing.NewEngine(cards)

	// Intent pipeline: keyword classifier alone, or with the LLM oracle
	// when an API key is configured.
	if cfg.OpenAIAPIKey != "" {
		deps.LLMClient = llm.NewClientWithConfig(llm.ClientConfig{
			APIKey:      cfg.OpenAIAPIKey,
			Model:       cfg.LLMModel,
			MaxTokens:   cfg.LLMMaxTokens,
			Temperature: cfg.LLMTemperature,
		})
		deps.Pipeline = intent.NewPipelineWithOracle(oracle.NewOpenAIOracle(deps.LLMClient), cfg.LLMTimeout())
		logger.Info("Intent oracle enabled (model: %s)", cfg.LLMModel)
	} else {
		deps.Pipeline = intent.NewPipeline()
		logger.Info("Intent oracle disabled, keyword classification only")
	}

	deps.Catalog = catalog.NewStaticCatalog()

	deps.Sessions = session.NewManagerWithTTL(cfg.SessionTTL())
	cleanups = append(cleanups, func() { deps.Sessions.Stop() })

	deps.Orchestrator = agent.NewOrchestrator(deps.Pipeline, deps.Engine, deps.Catalog, deps.Sessions, deps.Archive)

	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	return deps, cleanup, nil
}

// loadCards fetches the card catalog and optionally restricts it to the
// configured default set.
func loadCards(repo out.CardRepository, only []string) ([]domain.CreditCard, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cards, err := repo.LoadCards(ctx)
	if err != nil {
		return nil, err
	}

	if len(only) == 0 {
		return cards, nil
	}

	allowed := make(map[string]bool, len(only))
	for _, name := range only {
		allowed[strings.TrimSpace(name)] = true
	}
	filtered := cards[:0]
	for _, card := range cards {
		if allowed[card.Name] {
			filtered = append(filtered, card)
		}
	}
	if len(filtered) == 0 {
		logger.Warn("DEFAULT_CARDS matched no cards, using full catalog")
		return cards, nil
	}
	return filtered, nil
}

func (d *Dependencies) HealthCheck(ctx context.Context) error {
	if d.DB != nil {
		if err := d.DB.Ping(ctx); err != nil {
			return err
		}
	}
	if d.Redis != nil {
		if err := d.Redis.Ping(ctx).Err(); err != nil {
			return err
		}
	}
	if d.MongoDB != nil {
		if err := d.MongoDB.Ping(ctx, nil); err != nil {
			return err
		}
	}
	return nil
}

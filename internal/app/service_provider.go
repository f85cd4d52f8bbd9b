package app

import (
	"context"
	"net/http"

	authAPI "rtp_casino/internal/api/auth"
	gameAPI "rtp_casino/internal/api/game"
	"rtp_casino/internal/config"
	"rtp_casino/internal/config/env"
	"rtp_casino/internal/middleware"
	"rtp_casino/internal/outcome"
	"rtp_casino/internal/repository"
	"rtp_casino/internal/repository/game_settings_repo"
	"rtp_casino/internal/repository/history_repo"
	"rtp_casino/internal/repository/ratelimit_repo"
	"rtp_casino/internal/repository/user_repo"
	"rtp_casino/internal/service"
	"rtp_casino/internal/service/auth"
	"rtp_casino/internal/service/game"
	"rtp_casino/pkg/token"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Redis
	redisConfig config.RedisConfig
	redisClient *redis.Client

	// User and auth bits
	jwtConfig config.JWTConfig
	userRepo  repository.UserRepository
	issuer    token.Issuer
	authServ  service.AuthService
	authHand  *authAPI.Handler

	// Game bits
	settlementCfg config.SettlementConfig
	gamesCfg      config.GamesConfig
	settingsRepo  repository.GameSettingsRepository
	historyRepo   repository.HistoryRepository
	engine        *outcome.Engine
	gameServ      service.GameService
	gameHand      *gameAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	logCfg  config.LogConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) RedisConfig() config.RedisConfig {
	if sp.redisConfig == nil {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			panic("failed to get redis config: " + err.Error())
		}
		sp.redisConfig = cfg
	}
	return sp.redisConfig
}

// RedisClient - nil, если REDIS_ADDR не задан
func (sp *ServiceProvider) RedisClient(ctx context.Context) *redis.Client {
	if sp.redisClient == nil && sp.RedisConfig().Enabled() {
		cfg := sp.RedisConfig()
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Addr(),
			Password: cfg.Password(),
			DB:       cfg.DB(),
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			panic("failed to ping redis: " + err.Error())
		}
		sp.redisClient = rdb
	}
	return sp.redisClient
}

func (sp *ServiceProvider) JWTConfig() config.JWTConfig {
	if sp.jwtConfig == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtConfig = cfg
	}
	return sp.jwtConfig
}

func (sp *ServiceProvider) TokenIssuer() token.Issuer {
	if sp.issuer == nil {
		cfg := sp.JWTConfig()
		if cfg.Enabled() {
			sp.issuer = token.NewJWTIssuer(cfg.AccessTokenSecretKey(), cfg.AccessTokenDuration())
		} else {
			sp.issuer = token.NewDigestIssuer(nil)
		}
	}
	return sp.issuer
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx), sp.PgConfig().Schema())
	}
	return sp.userRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewService(sp.TXManager(ctx), sp.UserRepo(ctx), sp.TokenIssuer())
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.AuthService(ctx)})
	}
	return sp.authHand
}

func (sp *ServiceProvider) SettlementCfg() config.SettlementConfig {
	if sp.settlementCfg == nil {
		cfg, err := env.NewSettlementConfig()
		if err != nil {
			panic("failed to get settlement config: " + err.Error())
		}
		sp.settlementCfg = cfg
	}
	return sp.settlementCfg
}

func (sp *ServiceProvider) GamesCfg() config.GamesConfig {
	if sp.gamesCfg == nil {
		cfg, err := env.NewGamesConfig()
		if err != nil {
			panic("failed to get games config: " + err.Error())
		}
		sp.gamesCfg = cfg
	}
	return sp.gamesCfg
}

func (sp *ServiceProvider) GameSettingsRepository(ctx context.Context) repository.GameSettingsRepository {
	if sp.settingsRepo == nil {
		sp.settingsRepo = game_settings_repo.NewGameSettingsRepository(sp.DBClient(ctx), sp.PgConfig().Schema())
	}
	return sp.settingsRepo
}

func (sp *ServiceProvider) HistoryRepository(ctx context.Context) repository.HistoryRepository {
	if sp.historyRepo == nil {
		sp.historyRepo = history_repo.NewHistoryRepository(sp.DBClient(ctx), sp.PgConfig().Schema())
	}
	return sp.historyRepo
}

func (sp *ServiceProvider) Engine() *outcome.Engine {
	if sp.engine == nil {
		sp.engine = outcome.NewEngine(nil)
	}
	return sp.engine
}

func (sp *ServiceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameServ == nil {
		sp.gameServ = game.NewGameService(
			sp.TXManager(ctx),
			sp.GameSettingsRepository(ctx),
			sp.UserRepo(ctx),
			sp.HistoryRepository(ctx),
			sp.Engine(),
			sp.SettlementCfg(),
		)
	}
	return sp.gameServ
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{Serv: sp.GameService(ctx)})
	}
	return sp.gameHand
}

// PlayLimiter - nil без Redis
func (sp *ServiceProvider) PlayLimiter(ctx context.Context) func(http.Handler) http.Handler {
	rdb := sp.RedisClient(ctx)
	if rdb == nil {
		return nil
	}
	cfg := sp.RedisConfig()
	return middleware.RateLimit(middleware.RateLimitDeps{
		Repo:    ratelimit_repo.NewRateLimitRepository(rdb),
		Limit:   cfg.PlayLimit(),
		Window:  cfg.PlayWindow(),
		Actions: []string{"play"},
	})
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		sp.router = NewRouter(RouterDeps{
			AuthHandler: sp.AuthHandler(ctx),
			GameHandler: sp.GameHandler(ctx),
			PlayLimiter: sp.PlayLimiter(ctx),
		})
	}

	return sp.router
}

// Close освобождает пулы соединений
func (sp *ServiceProvider) Close() {
	if sp.redisClient != nil {
		_ = sp.redisClient.Close()
	}
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
}

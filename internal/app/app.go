package app

import (
	"context"
	"log/slog"

	httpapp "halarcraft/internal/app/http"
	"halarcraft/internal/config"
	"halarcraft/internal/repository"
	codesvc "halarcraft/internal/services/code_service"
	feedsvc "halarcraft/internal/services/feed_service"
	identitysvc "halarcraft/internal/services/identity_service"
	modsvc "halarcraft/internal/services/moderation_service"
	submissionsvc "halarcraft/internal/services/submission_service"
	"halarcraft/internal/storage/filestorage"
	"halarcraft/internal/storage/postgresql"
	redisapp "halarcraft/internal/storage/redis"
	httprouters "halarcraft/internal/transport/http"

	"github.com/jackc/pgx/v4/pgxpool"
)

type App struct {
	HTTPServer  *httpapp.Server
	Submissions *submissionsvc.SubmissionService

	pool  *pgxpool.Pool
	redis *redisapp.Client
	log   *slog.Logger
}

func New(log *slog.Logger, cfg *config.Config) *App {
	pool, err := postgresql.New(context.Background(), cfg.DSN)
	if err != nil {
		panic(err)
	}

	redisClient := redisapp.NewClient(cfg.Redis.RedisAddr, cfg.Redis.RedisPassword, cfg.Redis.RedisDB)

	assets, err := filestorage.NewLocalAssetStore(cfg.FileStorage.BaseDir, cfg.FileStorage.BaseURL, cfg.FileStorage.MaxSize)
	if err != nil {
		panic(err)
	}

	submissionRepo := repository.NewSubmissionRepository(pool)
	codeLedger := repository.NewRedisCodeRepo(redisClient)

	feedService := feedsvc.NewFeedService(log, submissionRepo, cfg.FeedCacheTTL)
	submissionService := submissionsvc.NewSubmissionService(log, submissionRepo, assets, feedService, cfg.DraftTTL)
	moderationService := modsvc.NewModerationService(log, submissionRepo, feedService)
	identityService := identitysvc.NewIdentityService(log, cfg.Discord.APIBaseURL, cfg.Discord.Timeout)
	codeService := codesvc.NewCodeService(log, codeLedger)

	routers := httprouters.NewRouter(log, feedService, submissionService, moderationService, identityService, codeService)

	server := httpapp.New(
		log,
		[]byte(cfg.Moderation.SigningKey),
		cfg.SessionKey,
		cfg.HTTP.Host,
		cfg.HTTP.Port,
		cfg.FileStorage.BaseDir,
		routers,
	)

	return &App{
		HTTPServer:  server,
		Submissions: submissionService,
		pool:        pool,
		redis:       redisClient,
		log:         log,
	}
}

// Stop закрывает внешние соединения после остановки HTTP-сервера
func (a *App) Stop() {
	if err := a.HTTPServer.Stop(); err != nil {
		a.log.Error("failed to stop http server", slog.Any("error", err))
	}

	a.pool.Close()

	if err := a.redis.Close(); err != nil {
		a.log.Error("failed to close redis client", slog.Any("error", err))
	}
}

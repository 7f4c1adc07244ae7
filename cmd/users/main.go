package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"userapi/internal/common/clock"
	"userapi/internal/common/config"
	commoncrypto "userapi/internal/common/crypto"
	"userapi/internal/common/db"
	commonhttp "userapi/internal/common/http"
	"userapi/internal/common/logger"
	srv "userapi/internal/common/server"
	userhttp "userapi/internal/user/http"
	userrepo "userapi/internal/user/repository"
	"userapi/internal/user/service"
)

func main() {
	log, err := logger.New(os.Getenv("LOG_DIR"), "users", os.Getenv("LOG_LEVEL"))
	if err != nil {
		os.Stderr.WriteString(fmt.Sprintf("failed to initialize logger: %v\n", err))
		os.Exit(1)
	}

	cfg, err := config.LoadUsersConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	hasher := commoncrypto.NewBcryptHasher()
	idGenerator := commoncrypto.NewUUIDGenerator()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var store userrepo.Repository
	switch cfg.Store {
	case config.StoreMemory:
		log.Infof("using in-memory user store")
		store = userrepo.NewMemoryRepository(idGenerator)
	default:
		pool := db.NewPool(log, cfg.DatabaseURL)
		defer pool.Close()
		store = userrepo.NewPgRepository(pool, hasher, idGenerator)
	}

	var cache *userrepo.CachedRepository
	if cfg.CacheTTL > 0 {
		cache = userrepo.NewCachedRepository(ctx, store, cfg.CacheTTL, clock.NewRealClock(), log)
		store = cache
	}

	userService := service.NewUserService(store, log)

	handler := userhttp.NewHandler(userService, cfg, log)

	mux := http.NewServeMux()
	mux.Handle("/", handler)
	mux.Handle("/metrics", promhttp.Handler())

	rateLimiter := commonhttp.NewStrictRateLimiter()
	baseHandler := commonhttp.BuildBaseHandler(log, mux)
	finalHandler := rateLimiter.Middleware(baseHandler)

	server := srv.New(cfg.HTTPPort, finalHandler)

	shutdownHooks := []srv.ShutdownHook{
		func(ctx context.Context) error {
			log.Infof("users service: stopping background tasks")
			if cache != nil {
				cache.Close()
			}
			cancel()
			return nil
		},
	}

	srv.StartWithGracefulShutdown(server, log, "users", shutdownHooks)
}

// cmd/server/wire.go
//go:build wireinject
// +build wireinject

package main

import (
	"statusfeed/internal/config"
	"statusfeed/internal/controller"
	"statusfeed/internal/middleware"
	"statusfeed/internal/repository"
	"statusfeed/internal/router"
	"statusfeed/internal/service"
	"statusfeed/pkg/db"
	"statusfeed/pkg/jwtauth"
	"statusfeed/pkg/logger"
	"statusfeed/pkg/redis"

	"github.com/google/wire"
)

var dbSet = wire.NewSet(
	db.NewSQLite,
)

var redisSet = wire.NewSet(
	redis.NewRedisClient,
)

var configSet = wire.NewSet(
	config.LoadConfig,
)

var credentialsSet = wire.NewSet(
	provideCredentialScheme,
)

var repositorySet = wire.NewSet(
	repository.NewUserRepository,
	wire.Bind(new(repository.UserRepository), new(*repository.UserRepositoryImpl)),
	repository.NewStatusRepository,
	wire.Bind(new(repository.StatusRepository), new(*repository.StatusRepositoryImpl)),
)

var serviceSet = wire.NewSet(
	service.NewUserService,
	wire.Bind(new(service.UserService), new(*service.UserServiceImpl)),
	service.NewStatusService,
	wire.Bind(new(service.StatusService), new(*service.StatusServiceImpl)),
)

var controllerSet = wire.NewSet(
	controller.NewUserController,
	controller.NewStatusController,
	controller.NewAuthController,
)

var middlewareSet = wire.NewSet(
	middleware.NewRateLimiterMiddleware,
)

var routerSet = wire.NewSet(
	router.NewRouter,
)

var loggerSet = wire.NewSet(
	logger.NewZapLogger,
	wire.Bind(new(logger.Logger), new(*logger.ZapLogger)),
)

var jwtSet = wire.NewSet(
	jwtauth.NewBlacklist,
	jwtauth.NewUserCache,
	jwtauth.NewLoginLock,
	middleware.NewJWT,
)

// InitializeApp 初始化应用
func InitializeApp(configPath string) (*router.Router, func(), error) {
	wire.Build(
		configSet,
		dbSet,
		redisSet,
		loggerSet,
		credentialsSet,
		repositorySet,
		serviceSet,
		controllerSet,
		jwtSet,
		middlewareSet,
		routerSet,
	)
	return nil, nil, nil
}

//go:build wireinject
// +build wireinject

package di

import (
	"stayeasy/config"
	"stayeasy/infras/jwt"
	"stayeasy/infras/kafka"
	"stayeasy/infras/otel"
	"stayeasy/infras/postgres"
	"stayeasy/infras/redis"
	"stayeasy/permissions"
	"stayeasy/shared/cache"
	"stayeasy/transport/http"
	"stayeasy/transport/http/middleware"
	"stayeasy/transport/http/router"

	authService "stayeasy/internal/domains/auth/service"
	guestRepository "stayeasy/internal/domains/guest/repository"
	guestService "stayeasy/internal/domains/guest/service"
	reservationRepository "stayeasy/internal/domains/reservation/repository"
	reservationService "stayeasy/internal/domains/reservation/service"
	roomRepository "stayeasy/internal/domains/room/repository"
	roomService "stayeasy/internal/domains/room/service"
	userRepository "stayeasy/internal/domains/user/repository"
	userService "stayeasy/internal/domains/user/service"

	authHandler "stayeasy/internal/handlers/auth"
	guestHandler "stayeasy/internal/handlers/guest"
	reservationHandler "stayeasy/internal/handlers/reservation"
	roomHandler "stayeasy/internal/handlers/room"
	userHandler "stayeasy/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.NewRoomSync,
	reservationService.New,
)

var userDomain = wire.NewSet(
	userService.New,
)

var domains = wire.NewSet(
	authDomain,
	guestDomain,
	roomDomain,
	reservationDomain,
	userDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	guestHandler.New,
	reservationHandler.New,
	roomHandler.New,
	userHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

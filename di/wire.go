//go:build wireinject
// +build wireinject

package di

import (
	"armada/config"
	"armada/infras/jwt"
	"armada/infras/kafka"
	"armada/infras/otel"
	"armada/infras/postgres"
	"armada/infras/redis"
	"armada/infras/s3"
	"armada/internal/gateway/events"
	"armada/shared/cache"
	"armada/shared/localstore"
	"armada/transport/http"
	"armada/transport/http/middleware"
	"armada/transport/http/router"

	"github.com/google/wire"

	authService "armada/internal/domains/auth/service"
	bookingRepository "armada/internal/domains/booking/repository"
	bookingService "armada/internal/domains/booking/service"
	busRepository "armada/internal/domains/bus/repository"
	busService "armada/internal/domains/bus/service"
	dashboardRepository "armada/internal/domains/dashboard/repository"
	dashboardService "armada/internal/domains/dashboard/service"
	faqRepository "armada/internal/domains/faq/repository"
	faqService "armada/internal/domains/faq/service"
	jobRepository "armada/internal/domains/job/repository"
	jobService "armada/internal/domains/job/service"
	layananRepository "armada/internal/domains/layanan/repository"
	layananService "armada/internal/domains/layanan/service"
	maintenanceRepository "armada/internal/domains/maintenance/repository"
	maintenanceService "armada/internal/domains/maintenance/service"
	promoRepository "armada/internal/domains/promo/repository"
	promoService "armada/internal/domains/promo/service"
	scheduleRepository "armada/internal/domains/schedule/repository"
	scheduleService "armada/internal/domains/schedule/service"
	teamRepository "armada/internal/domains/team/repository"
	teamService "armada/internal/domains/team/service"
	testimonialRepository "armada/internal/domains/testimonial/repository"
	testimonialService "armada/internal/domains/testimonial/service"
	userRepository "armada/internal/domains/user/repository"
	userService "armada/internal/domains/user/service"

	authHandler "armada/internal/handlers/auth"
	bookingHandler "armada/internal/handlers/booking"
	busHandler "armada/internal/handlers/bus"
	dashboardHandler "armada/internal/handlers/dashboard"
	faqHandler "armada/internal/handlers/faq"
	jobHandler "armada/internal/handlers/job"
	layananHandler "armada/internal/handlers/layanan"
	maintenanceHandler "armada/internal/handlers/maintenance"
	promoHandler "armada/internal/handlers/promo"
	scheduleHandler "armada/internal/handlers/schedule"
	teamHandler "armada/internal/handlers/team"
	testimonialHandler "armada/internal/handlers/testimonial"
	userHandler "armada/internal/handlers/user"
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
	s3.New,
	localstore.NewProvider,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var gateways = wire.NewSet(
	events.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var busDomain = wire.NewSet(
	busRepository.New,
	busService.New,
)

var teamDomain = wire.NewSet(
	teamRepository.New,
	teamService.New,
)

var faqDomain = wire.NewSet(
	faqRepository.New,
	faqService.New,
)

var jobDomain = wire.NewSet(
	jobRepository.New,
	jobService.New,
)

var maintenanceDomain = wire.NewSet(
	maintenanceRepository.New,
	maintenanceService.New,
)

var promoDomain = wire.NewSet(
	promoRepository.New,
	promoService.New,
)

var scheduleDomain = wire.NewSet(
	scheduleRepository.New,
	scheduleService.New,
)

var layananDomain = wire.NewSet(
	layananRepository.New,
	layananService.New,
)

var testimonialDomain = wire.NewSet(
	testimonialRepository.New,
	testimonialService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardRepository.New,
	dashboardService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	bookingDomain,
	busDomain,
	teamDomain,
	faqDomain,
	jobDomain,
	maintenanceDomain,
	promoDomain,
	scheduleDomain,
	layananDomain,
	testimonialDomain,
	dashboardDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	bookingHandler.New,
	busHandler.New,
	teamHandler.New,
	faqHandler.New,
	jobHandler.New,
	maintenanceHandler.New,
	promoHandler.New,
	scheduleHandler.New,
	layananHandler.New,
	testimonialHandler.New,
	dashboardHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		gateways,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}

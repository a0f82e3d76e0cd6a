package service

import (
	"context"
	"fmt"
	"strconv"

	"armada/config"
	"armada/infras/otel"
	"armada/internal/domains/dashboard/model/dto"
	"armada/internal/domains/dashboard/repository"
	"armada/shared"
	"armada/shared/cache"
	"armada/shared/constant"
	"armada/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheSummary         = "dashboard:summary"
	cacheMonthlyTrips    = "dashboard:monthly_trips"
	cacheTopDestinations = "dashboard:top_destinations"
	cacheUpcomingTrips   = "dashboard:upcoming_trips"

	dateOnlyFormat = "2006-01-02"

	defaultTopDestinations = 5
	defaultUpcomingTrips   = 5
)

type Dashboard interface {
	Summary(ctx context.Context) (dto.SummaryResponse, error)
	MonthlyTrips(ctx context.Context, year string) (dto.MonthlyTripsReport, error)
	TopDestinations(ctx context.Context, limit int) (dto.TopDestinationsResponse, error)
	UpcomingTrips(ctx context.Context, limit int) (dto.UpcomingTripsResponse, error)
}

type serviceImpl struct {
	repo  repository.Dashboard
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Dashboard, cfg *config.Config, redisCache cache.RedisCache, otl otel.Otel) Dashboard {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: redisCache,
		otel:  otl,
	}
}

func (s *serviceImpl) Summary(ctx context.Context) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summary")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheSummary, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheSummary).Msg("cache hit for dashboard summary")

		return res, nil
	}

	byStatus, err := s.repo.CountTripsByStatus(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count trips by status")

		return res, fmt.Errorf("failed to count trips by status: %w", err)
	}

	spend, maintenanceTotal, err := s.repo.MaintenanceSpend(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to sum maintenance spend")

		return res, fmt.Errorf("failed to sum maintenance spend: %w", err)
	}

	res.FromModels(byStatus, spend, maintenanceTotal)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheSummary, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard summary to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) MonthlyTrips(ctx context.Context, year string) (res dto.MonthlyTripsReport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MonthlyTrips")
	defer scope.End()
	defer scope.TraceIfError(err)

	if year == "" {
		year = strconv.Itoa(timezone.Now().Year())
	}

	cacheKey := shared.BuildCacheKey(cacheMonthlyTrips, year)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for monthly trips")

		return res, nil
	}

	months, err := s.repo.MonthlyTrips(ctx, year)
	if err != nil {
		log.Error().Err(err).Msg("failed to count monthly trips")

		return res, fmt.Errorf("failed to count monthly trips: %w", err)
	}

	res.FromModels(year, months)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save monthly trips to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) TopDestinations(ctx context.Context, limit int) (res dto.TopDestinationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TopDestinations")
	defer scope.End()
	defer scope.TraceIfError(err)

	if limit <= 0 {
		limit = defaultTopDestinations
	}

	cacheKey := shared.BuildCacheKey(cacheTopDestinations, strconv.Itoa(limit))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for top destinations")

		return res, nil
	}

	destinations, err := s.repo.TopDestinations(ctx, limit)
	if err != nil {
		log.Error().Err(err).Msg("failed to rank destinations")

		return res, fmt.Errorf("failed to rank destinations: %w", err)
	}

	res.FromModels(destinations)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save top destinations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpcomingTrips(ctx context.Context, limit int) (res dto.UpcomingTripsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpcomingTrips")
	defer scope.End()
	defer scope.TraceIfError(err)

	if limit <= 0 {
		limit = defaultUpcomingTrips
	}

	from := timezone.Format(timezone.Now(), dateOnlyFormat)
	cacheKey := shared.BuildCacheKey(cacheUpcomingTrips, from, strconv.Itoa(limit))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for upcoming trips")

		return res, nil
	}

	trips, err := s.repo.UpcomingTrips(ctx, from, limit)
	if err != nil {
		log.Error().Err(err).Msg("failed to get upcoming trips")

		return res, fmt.Errorf("failed to get upcoming trips: %w", err)
	}

	res.FromModels(trips)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save upcoming trips to cache")
		}
	}()

	return res, nil
}

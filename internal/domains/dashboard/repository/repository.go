package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"armada/infras/otel"
	"armada/infras/postgres"
	"armada/internal/domains/dashboard/model"
	maintenanceModel "armada/internal/domains/maintenance/model"
	scheduleModel "armada/internal/domains/schedule/model"
	"armada/shared/constant"
	"armada/shared/logger"
)

type Dashboard interface {
	CountTripsByStatus(ctx context.Context) ([]model.StatusCount, error)
	MaintenanceSpend(ctx context.Context) (float64, int, error)
	MonthlyTrips(ctx context.Context, year string) ([]model.MonthlyTrips, error)
	TopDestinations(ctx context.Context, limit int) ([]model.DestinationCount, error)
	UpcomingTrips(ctx context.Context, from string, limit int) ([]model.UpcomingTrip, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otl otel.Otel) Dashboard {
	return &repositoryImpl{
		db:   db,
		otel: otl,
	}
}

func (repo *repositoryImpl) CountTripsByStatus(ctx context.Context) (res []model.StatusCount, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".CountTripsByStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT status, COUNT(*) AS total FROM %s GROUP BY status", scheduleModel.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.SelectContext(ctx, &res, query); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to count trips by status: %w", err)
	}

	return res, nil
}

func (repo *repositoryImpl) MaintenanceSpend(ctx context.Context) (spend float64, total int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".MaintenanceSpend")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT COALESCE(SUM(biaya), 0) AS spend, COUNT(*) AS total FROM %s", maintenanceModel.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	row := struct {
		Spend float64 `db:"spend"`
		Total int     `db:"total"`
	}{}

	if err = repo.db.Read.GetContext(ctx, &row, query); err != nil {
		logger.ErrorWithStack(err)

		return 0, 0, fmt.Errorf("failed to sum maintenance spend: %w", err)
	}

	return row.Spend, row.Total, nil
}

func (repo *repositoryImpl) MonthlyTrips(ctx context.Context, year string) (res []model.MonthlyTrips, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".MonthlyTrips")
	defer scope.End()
	defer scope.TraceIfError(err)

	// tanggal_mulai is stored as "YYYY-MM-DD", so the month is its first 7 bytes.
	query := fmt.Sprintf(
		"SELECT LEFT(tanggal_mulai, 7) AS month, COUNT(*) AS total FROM %s WHERE LEFT(tanggal_mulai, 4) = $1 GROUP BY month ORDER BY month",
		scheduleModel.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.SelectContext(ctx, &res, query, year); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to count monthly trips: %w", err)
	}

	return res, nil
}

func (repo *repositoryImpl) TopDestinations(ctx context.Context, limit int) (res []model.DestinationCount, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".TopDestinations")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"SELECT tujuan, COUNT(*) AS total FROM %s WHERE tujuan <> '' GROUP BY tujuan ORDER BY total DESC, tujuan ASC LIMIT $1",
		scheduleModel.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.SelectContext(ctx, &res, query, limit); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to rank destinations: %w", err)
	}

	return res, nil
}

func (repo *repositoryImpl) UpcomingTrips(ctx context.Context, from string, limit int) (res []model.UpcomingTrip, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".UpcomingTrips")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"SELECT id, id_bus, nama_pelanggan, tanggal_mulai, tujuan, status FROM %s WHERE tanggal_mulai >= $1 AND status <> $2 ORDER BY tanggal_mulai ASC LIMIT $3",
		scheduleModel.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.SelectContext(ctx, &res, query, from, scheduleModel.StatusDibatalkan, limit); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get upcoming trips: %w", err)
	}

	return res, nil
}

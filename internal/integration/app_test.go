package integration_test

import (
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinego/internal/app"
	"github.com/metinatakli/cinego/internal/booking"
	"github.com/metinatakli/cinego/internal/events"
	"github.com/metinatakli/cinego/internal/pricing"
	"github.com/metinatakli/cinego/internal/repository"
	appvalidator "github.com/metinatakli/cinego/internal/validator"
)

type TestApp struct {
	App         *app.Application
	DB          *pgxpool.Pool
	Coordinator *booking.Coordinator
	Publisher   *events.MockPublisher
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()
	publisher := events.NewMockPublisher()

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessionManager := app.NewSessionManager(redisClient)

	uow := repository.NewPostgresUnitOfWork(db,
		repository.WithScreeningCache(redisClient, cfg.ScreeningCacheTTL, logger))

	coordinator := booking.NewCoordinator(uow, pricing.NewEngine(location), logger,
		booking.WithPublisher(publisher))

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		sessionManager,
		repository.NewPostgresUserRepository(db),
		coordinator,
	)

	return &TestApp{
		App:         application,
		DB:          db,
		Coordinator: coordinator,
		Publisher:   publisher,
	}, nil
}

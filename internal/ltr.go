package internal

import (
	"context"
	"fmt"
	"sync"

	"github.com/learntoride/ltr/internal/api"
	"github.com/learntoride/ltr/internal/api/auth"
	"github.com/learntoride/ltr/internal/database"
	"github.com/learntoride/ltr/internal/storage"
	"github.com/learntoride/ltr/internal/thumbnail"
	"github.com/learntoride/ltr/pkg/logger"
)

var log = logger.Get("Core")

type RunnableService interface {
	Run(context.Context) error
}

// ltrImpl is the top-level object for the server, responsible for
// connecting the database, constructing the stores and services, and
// keeping the REST gateway running until shutdown.
type ltrImpl struct {
	config LtrConfig
}

func New(config LtrConfig) *ltrImpl {
	return &ltrImpl{config: config}
}

// Run brings up the database connection, object storage client and REST
// gateway. It does not return until the provided context is cancelled or
// a service crashes.
func (ltr *ltrImpl) Run(parent context.Context) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	crashHandler := func(label string, err error) {
		log.Emit(logger.FATAL, "Service crash (%s)! %s\n", label, err.Error())
		cancel()
	}

	log.Emit(logger.NEW, "Connecting to database...\n")
	db := database.New()
	if err := db.Connect(ltr.config.Database); err != nil {
		return err
	}

	store := NewDataOrchestrator(db)

	storageClient, err := storage.NewClient(ctx, ltr.config.Storage)
	if err != nil {
		return err
	}

	gateway := api.NewRestGateway(
		&ltr.config.RestConfig,
		auth.NewProvider(ltr.config.AdminPassword),
		store,
		storageClient,
		thumbnail.NewResolver(ltr.config.Thumbnails),
	)

	wg := &sync.WaitGroup{}
	ltr.spawnAsyncService(ctx, wg, gateway, "rest-gateway", crashHandler)
	log.Emit(logger.SUCCESS, "Services spawned!\n")

	wg.Wait()
	return nil
}

// spawnAsyncService runs the provided service as its own go-routine,
// ensuring the service waitgroup is updated correctly.
func (ltr *ltrImpl) spawnAsyncService(context context.Context, wg *sync.WaitGroup, service RunnableService, serviceLabel string, crashHandler func(string, error)) {
	log.Emit(logger.NEW, "Spawning %s\n", serviceLabel)
	wg.Add(1)

	go func(wg *sync.WaitGroup, label string, crash func(string, error)) {
		defer func() {
			if r := recover(); r != nil {
				crash(label, fmt.Errorf("panic %v", r))
			}
		}()

		defer wg.Done()
		if err := service.Run(context); err != nil {
			crash(label, err)
		}
	}(wg, serviceLabel, crashHandler)
}

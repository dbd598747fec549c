package client

import (
	"context"
	"velocity-shop/internal/config"
	"velocity-shop/internal/repository"
)

// Store holds the repositories backed by the configured database.
type Store struct {
	Cart   repository.CartRepository
	Orders repository.OrderRepository

	close func(ctx context.Context) error
}

func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

func OpenStore(ctx context.Context, cfg config.Store) (*Store, error) {
	if cfg.Driver == config.StoreDriverMongo {
		mongoClient, err := InitMongoClient(ctx, cfg.MongoURL)
		if err != nil {
			return nil, err
		}

		db := mongoClient.Database(cfg.DBName)
		return &Store{
			Cart:   repository.NewMongoCartRepository(db),
			Orders: repository.NewMongoOrderRepository(db),
			close:  mongoClient.Disconnect,
		}, nil
	}

	db, err := InitGormClient(cfg.Driver, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	return &Store{
		Cart:   repository.NewCartRepository(db),
		Orders: repository.NewOrderRepository(db),
		close: func(context.Context) error {
			return sqlDB.Close()
		},
	}, nil
}

package repository

import (
	"context"
	"velocity-shop/internal/model"

	"go.mongodb.org/mongo-driver/mongo"
)

type orderMongoRepoImpl struct {
	coll *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) OrderRepository {
	return &orderMongoRepoImpl{
		coll: db.Collection(ordersCollection),
	}
}

func (r *orderMongoRepoImpl) Create(ctx context.Context, order *model.Order) error {
	_, err := r.coll.InsertOne(ctx, order)
	return err
}

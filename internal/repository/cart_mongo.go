package repository

import (
	"context"
	"velocity-shop/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type cartMongoRepoImpl struct {
	coll *mongo.Collection
}

func NewMongoCartRepository(db *mongo.Database) CartRepository {
	return &cartMongoRepoImpl{
		coll: db.Collection(cartCollection),
	}
}

func (r *cartMongoRepoImpl) Create(ctx context.Context, item *model.CartItem) error {
	_, err := r.coll.InsertOne(ctx, item)
	return err
}

func (r *cartMongoRepoImpl) FindByUserID(ctx context.Context, userID string) ([]*model.CartItem, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetLimit(maxCartItems)

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}

	items := make([]*model.CartItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *cartMongoRepoImpl) UpdateQuantity(ctx context.Context, itemID string, quantity int) error {
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"id": itemID},
		bson.M{"$set": bson.M{"quantity": quantity}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *cartMongoRepoImpl) Delete(ctx context.Context, itemID string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": itemID})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *cartMongoRepoImpl) DeleteByUserID(ctx context.Context, userID string) (int64, error) {
	result, err := r.coll.DeleteMany(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}

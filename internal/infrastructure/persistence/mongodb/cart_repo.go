package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/contract"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoCartRepository struct {
	collection *mongo.Collection
}

var _ contract.ICartRepository = (*MongoCartRepository)(nil)

func NewMongoCartRepository(collection *mongo.Collection) *MongoCartRepository {
	return &MongoCartRepository{collection: collection}
}

func (r *MongoCartRepository) CreateCart(ctx context.Context, cart *entity.Cart) error {
	_, err := r.collection.InsertOne(ctx, cart)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return entity.ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *MongoCartRepository) GetCartByID(ctx context.Context, id string) (*entity.Cart, error) {
	var cart entity.Cart
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &cart, nil
}

func (r *MongoCartRepository) GetAllCarts(ctx context.Context) ([]*entity.Cart, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var carts []*entity.Cart
	if err := cursor.All(ctx, &carts); err != nil {
		return nil, err
	}
	return carts, nil
}

func (r *MongoCartRepository) UpdateCart(ctx context.Context, cart *entity.Cart) (*entity.Cart, error) {
	cart.UpdatedAt = time.Now()
	filter := bson.M{"_id": cart.ID}
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": cart})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, entity.ErrNotFound
	}
	var updated entity.Cart
	if err := r.collection.FindOne(ctx, filter).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *MongoCartRepository) DeleteCart(ctx context.Context, id string) error {
	count, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if count.DeletedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

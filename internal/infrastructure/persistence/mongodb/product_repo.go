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

type MongoProductRepository struct {
	collection *mongo.Collection
}

var _ contract.IProductRepository = (*MongoProductRepository)(nil)

func NewMongoProductRepository(collection *mongo.Collection) *MongoProductRepository {
	return &MongoProductRepository{collection: collection}
}

func (r *MongoProductRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	_, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return entity.ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *MongoProductRepository) GetProductByID(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *MongoProductRepository) GetAllProducts(ctx context.Context, filter *contract.ProductFilter) ([]*entity.Product, error) {
	query := bson.M{}
	if filter != nil {
		if filter.Category != "" {
			query["category"] = filter.Category
		}
		if filter.Owner != "" {
			query["owner"] = filter.Owner
		}
	}
	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []*entity.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *MongoProductRepository) UpdateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	product.UpdatedAt = time.Now()
	filter := bson.M{"_id": product.ID}
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": product})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, entity.ErrNotFound
	}
	var updated entity.Product
	if err := r.collection.FindOne(ctx, filter).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *MongoProductRepository) DeleteProduct(ctx context.Context, id string) error {
	count, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if count.DeletedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

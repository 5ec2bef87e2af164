package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/contract"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TokenRepository struct {
	collection *mongo.Collection
}

var _ contract.ITokenRepository = (*TokenRepository)(nil)

func NewTokenRepository(collection *mongo.Collection) *TokenRepository {
	return &TokenRepository{collection: collection}
}

func (r *TokenRepository) CreateToken(ctx context.Context, token *entity.Token) error {
	_, err := r.collection.InsertOne(ctx, token)
	return err
}

func (r *TokenRepository) GetTokenByUserID(ctx context.Context, userID string, tokenType entity.TokenType) (*entity.Token, error) {
	filter := bson.M{"user_id": userID, "token_type": tokenType, "revoked": false}
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var token entity.Token
	err := r.collection.FindOne(ctx, filter, opts).Decode(&token)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &token, nil
}

func (r *TokenRepository) GetTokenByVerifier(ctx context.Context, verifier string) (*entity.Token, error) {
	var token entity.Token
	err := r.collection.FindOne(ctx, bson.M{"verifier": verifier}).Decode(&token)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &token, nil
}

func (r *TokenRepository) UpdateToken(ctx context.Context, id, tokenHash string, expiresAt time.Time) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"token_hash": tokenHash, "expires_at": expiresAt}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *TokenRepository) RevokeToken(ctx context.Context, id string) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"revoked": true}}
	_, err := r.collection.UpdateOne(ctx, filter, update)
	return err
}

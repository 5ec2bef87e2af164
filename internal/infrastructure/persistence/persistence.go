package persistence

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/contract"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/infrastructure/config"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/infrastructure/database"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/infrastructure/persistence/filesystem"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/infrastructure/persistence/mongodb"
	usecasecontract "github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/usecase/contract"
)

// Store bundles the data-access objects for the one backend selected at
// startup. It is constructed exactly once, before the first request, and never
// mutated afterwards.
//
// Users, Chats and Tokens are only available under the MONGO backend; under FS
// they are nil and callers must treat that as a configuration error rather
// than a runtime fault.
type Store struct {
	Mode     config.Persistence
	Carts    contract.ICartRepository
	Products contract.IProductRepository
	Users    contract.IUserRepository
	Chats    contract.IChatRepository
	Tokens   contract.ITokenRepository

	mongoClient *database.MongoDBClient
}

// New selects and wires a backend from cfg.Persistence. For MONGO the
// connection is established and pinged before any repository is handed out;
// a connect failure is returned so the caller can refuse to start. FS
// selection cannot fail here: file I/O errors surface per operation.
func New(ctx context.Context, cfg *config.Config, log usecasecontract.IAppLogger) (*Store, error) {
	switch cfg.Persistence {
	case config.PersistenceMongo:
		if cfg.MongoURI == "" {
			return nil, fmt.Errorf("PERSISTENCE=MONGO requires MONGODB_URI to be set")
		}
		client, err := database.NewMongoDBClient(cfg.MongoURI)
		if err != nil {
			return nil, fmt.Errorf("mongo backend setup failed: %w", err)
		}
		db := client.Client.Database(cfg.MongoDBName)

		userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
		if err := userRepo.EnsureIndexes(ctx); err != nil {
			client.Disconnect()
			return nil, err
		}

		log.Infof("Persistence is: %s", cfg.Persistence)
		return &Store{
			Mode:        config.PersistenceMongo,
			Carts:       mongodb.NewMongoCartRepository(db.Collection("carts")),
			Products:    mongodb.NewMongoProductRepository(db.Collection("products")),
			Users:       userRepo,
			Chats:       mongodb.NewMongoChatRepository(db.Collection("messages")),
			Tokens:      mongodb.NewTokenRepository(db.Collection("tokens")),
			mongoClient: client,
		}, nil

	default:
		log.Infof("Persistence is: %s", config.PersistenceFS)
		return &Store{
			Mode:     config.PersistenceFS,
			Carts:    filesystem.NewFSCartRepository(filepath.Join(cfg.DataDir, "carts.json")),
			Products: filesystem.NewFSProductRepository(filepath.Join(cfg.DataDir, "products.json")),
		}, nil
	}
}

// Close releases backend resources. Safe to call for either mode.
func (s *Store) Close() {
	if s.mongoClient != nil {
		s.mongoClient.Disconnect()
	}
}

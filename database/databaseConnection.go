package database

import (
	"context"
	"log"
	"time"

	"github.com/psalmsin1759/menuja-backend/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DBinstance connects to MongoDB using the configured URI.
func DBinstance() *mongo.Client {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal(err)
	}

	log.Println("connected to mongodb")
	return client
}

var Client *mongo.Client = DBinstance()

// OpenCollection returns a handle to a collection in the configured database.
func OpenCollection(client *mongo.Client, collectionName string) *mongo.Collection {
	return client.Database(config.Load().DBName).Collection(collectionName)
}

// EnsureIndexes creates the unique indexes the services rely on. The index
// is the source of truth for uniqueness; any pre-insert check in a service
// is only a fast path for a friendlier error.
func EnsureIndexes(ctx context.Context, client *mongo.Client) error {
	unique := options.Index().SetUnique(true)

	indexes := []struct {
		collection string
		key        string
	}{
		{"order", "order_id"},
		{"admin", "email"},
		{"category", "name"},
		{"payment", "name"},
	}

	for _, idx := range indexes {
		_, err := OpenCollection(client, idx.collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: idx.key, Value: 1}},
			Options: unique,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

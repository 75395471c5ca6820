package config

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureSessionIndexes creates the session lookup index and a TTL index
// that drops sessions idle longer than ttl.
func EnsureSessionIndexes(ctx context.Context, db *mongo.Database, ttl time.Duration) error {
	if db == nil {
		return errors.New("mongo database is nil; call NewMongo first")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	models := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "session_id", Value: 1}},
			Options: options.Index().
				SetName("uniq_session_id").
				SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "updated_at", Value: -1}},
			Options: options.Index().SetName("by_user_updated"),
		},
	}
	if ttl > 0 {
		models = append(models, mongo.IndexModel{
			Keys: bson.D{{Key: "updated_at", Value: 1}},
			Options: options.Index().
				SetName("ttl_updated_at").
				SetExpireAfterSeconds(int32(ttl.Seconds())),
		})
	}

	_, err := db.Collection("sessions").Indexes().CreateMany(ctx, models)
	return err
}

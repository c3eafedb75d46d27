package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const blacklistCollection = "blacklisted_tokens"

// BlacklistRepository stores invalidated session tokens. Entries carry the
// expiry of the token itself, so the list never needs to outlive the tokens
// it rejects.
type BlacklistRepository struct {
	coll *mongo.Collection
}

func NewBlacklistRepository(db *mongo.Database) *BlacklistRepository {
	return &BlacklistRepository{coll: db.Collection(blacklistCollection)}
}

// Add records a blacklisted token. The write is an upsert keyed on the token,
// so logging out twice with the same token is not an error.
func (r *BlacklistRepository) Add(ctx context.Context, token string, expiresAt time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"token": token},
		bson.M{"$setOnInsert": bson.M{"token": token, "expires_at": expiresAt.UTC()}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("insert blacklisted token: %w", err)
	}
	return nil
}

// Contains reports whether the token is currently blacklisted. Entries whose
// expiry has passed are treated as absent even if the TTL monitor has not
// purged them yet.
func (r *BlacklistRepository) Contains(ctx context.Context, token string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{
		"token":      token,
		"expires_at": bson.M{"$gt": time.Now().UTC()},
	})
	if err != nil {
		return false, fmt.Errorf("check blacklisted token: %w", err)
	}
	return n > 0, nil
}

// EnsureIndexes creates the unique token index and a TTL index on expires_at
// so MongoDB reaps stale entries on its own.
func (r *BlacklistRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "token", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

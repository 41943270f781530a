package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/authkit/core/session"
)

// DefaultCollection is the collection name used by New.
const DefaultCollection = "sessions"

// document is the stored shape of a session. The identity is embedded so a
// read resolves the subject in one round trip.
type document struct {
	LookupID  string    `bson:"_id"`
	SubjectID string    `bson:"subject_id"`
	Email     string    `bson:"email"`
	IP        string    `bson:"ip"`
	UserAgent string    `bson:"user_agent"`
	ExpiresAt time.Time `bson:"expires_at"`
	CreatedAt time.Time `bson:"created_at"`
}

// Store persists sessions in a MongoDB collection keyed by lookup ID.
type Store struct {
	coll *mongo.Collection
}

// New creates a MongoDB-backed session store on the database's sessions
// collection.
func New(db *mongo.Database) *Store {
	return &Store{coll: db.Collection(DefaultCollection)}
}

// EnsureIndexes creates the TTL index on expires_at so MongoDB evicts
// expired sessions on its own. Call once during startup.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		return fmt.Errorf("create session ttl index: %w", err)
	}
	return nil
}

// Put inserts or replaces the session document.
func (s *Store) Put(ctx context.Context, sess session.Session) error {
	doc := document{
		LookupID:  sess.LookupID,
		SubjectID: sess.Identity.SubjectID.String(),
		Email:     sess.Identity.Email,
		IP:        sess.IP,
		UserAgent: sess.UserAgent,
		ExpiresAt: sess.ExpiresAt,
		CreatedAt: sess.CreatedAt,
	}

	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": sess.LookupID},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return errors.Join(session.ErrStoreUnavailable, err)
	}
	return nil
}

// Get returns the session stored under the lookup ID.
func (s *Store) Get(ctx context.Context, lookupID string) (session.Session, error) {
	var doc document
	err := s.coll.FindOne(ctx, bson.M{"_id": lookupID}).Decode(&doc)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return session.Session{}, session.ErrNotFound
	case err != nil:
		return session.Session{}, errors.Join(session.ErrStoreUnavailable, err)
	}

	sess := session.Session{
		LookupID:  doc.LookupID,
		IP:        doc.IP,
		UserAgent: doc.UserAgent,
		ExpiresAt: doc.ExpiresAt,
		CreatedAt: doc.CreatedAt,
	}
	sess.Identity.Email = doc.Email
	if err := sess.Identity.SubjectID.UnmarshalText([]byte(doc.SubjectID)); err != nil {
		return session.Session{}, fmt.Errorf("unmarshal subject id: %w", err)
	}
	return sess, nil
}

// UpdateExpiry moves the document's expiry forward. The filter keeps the
// update monotonic and makes updating an absent document a no-op.
func (s *Store) UpdateExpiry(ctx context.Context, lookupID string, newExpiresAt time.Time) error {
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": lookupID, "expires_at": bson.M{"$lt": newExpiresAt}},
		bson.M{"$set": bson.M{"expires_at": newExpiresAt}},
	)
	if err != nil {
		return errors.Join(session.ErrStoreUnavailable, err)
	}
	return nil
}

// Delete removes the document. Idempotent.
func (s *Store) Delete(ctx context.Context, lookupID string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": lookupID}); err != nil {
		return errors.Join(session.ErrStoreUnavailable, err)
	}
	return nil
}

// DeleteExpired removes documents past their expiry and returns the count.
// The TTL index usually gets there first; this covers backends where the
// TTL monitor lags or is disabled.
func (s *Store) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lte": time.Now()}})
	if err != nil {
		return 0, errors.Join(session.ErrStoreUnavailable, err)
	}
	return res.DeletedCount, nil
}

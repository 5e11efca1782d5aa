package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/sessionlab/sessiond/core/session"
)

// sessionCollection is the collection holding one document per session,
// keyed logically by the unique sessionId field.
const sessionCollection = "sessions"

// SessionStore implements session.Store on a MongoDB collection. Every
// operation maps to a single driver call, so each is atomic in isolation as
// the Store contract requires; the bulk expiry is one UpdateMany.
type SessionStore struct {
	coll *mongo.Collection
}

// NewSessionStore creates a store over the database's sessions collection.
func NewSessionStore(db *mongo.Database) *SessionStore {
	return &SessionStore{
		coll: db.Collection(sessionCollection),
	}
}

// EnsureIndexes creates the unique index backing session id uniqueness.
// Safe to call on every startup; Mongo treats it as a no-op when present.
func (s *SessionStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "sessionId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *SessionStore) Insert(ctx context.Context, sess *session.Session) error {
	if _, err := s.coll.InsertOne(ctx, sess); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return session.ErrDuplicateID
		}
		return storeErr(err)
	}
	return nil
}

func (s *SessionStore) GetByID(ctx context.Context, id string) (*session.Session, error) {
	var sess session.Session
	err := s.coll.FindOne(ctx, bson.M{"sessionId": id}).Decode(&sess)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, session.ErrNotFound
		}
		return nil, storeErr(err)
	}
	return &sess, nil
}

func (s *SessionStore) ListByStatus(ctx context.Context, status session.Status) ([]session.Session, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"status": status})
	if err != nil {
		return nil, storeErr(err)
	}

	var sessions []session.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, storeErr(err)
	}
	return sessions, nil
}

func (s *SessionStore) Save(ctx context.Context, sess *session.Session) error {
	res, err := s.coll.ReplaceOne(ctx, bson.M{"sessionId": sess.ID}, sess)
	if err != nil {
		return storeErr(err)
	}
	if res.MatchedCount == 0 {
		return session.ErrNotFound
	}
	return nil
}

func (s *SessionStore) EndInactive(ctx context.Context, olderThan time.Time, to session.Status) (int64, error) {
	res, err := s.coll.UpdateMany(ctx,
		bson.M{
			"status":       session.StatusActive,
			"lastAccessed": bson.M{"$lt": olderThan},
		},
		bson.M{"$set": bson.M{"status": to}},
	)
	if err != nil {
		return 0, storeErr(err)
	}
	return res.ModifiedCount, nil
}

// storeErr maps driver-level connectivity failures onto the core's
// ErrStoreUnavailable so callers never branch on driver types.
func storeErr(err error) error {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) ||
		errors.Is(err, context.DeadlineExceeded) {
		return errors.Join(session.ErrStoreUnavailable, err)
	}
	return err
}

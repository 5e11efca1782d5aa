// Package mongo provides MongoDB client initialization with application-level
// retry, a health check, and the MongoDB-backed session store.
//
// Connection retry absorbs Atlas cold starts and brief network interruptions
// that would otherwise fail application startup. Both New and NewWithDatabase
// verify the connection with a ping before returning.
//
// Basic usage:
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	db, err := mongo.NewWithDatabase(ctx, cfg, "sessiond")
//	if err != nil {
//		return err
//	}
//
//	store := mongo.NewSessionStore(db)
//	if err := store.EnsureIndexes(ctx); err != nil {
//		return err
//	}
//
// Configuration comes from MONGODB_* environment variables; the defaults are
// tuned for MongoDB Atlas.
package mongo

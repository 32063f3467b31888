package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/weaversoft/snapwatch/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func (r *repo) CreateWatcher(ctx context.Context, watcher *domain.WatcherConfig) error {
	if watcher == nil {
		return errors.New("nil watcher")
	}

	now := time.Now().UnixMilli()
	if watcher.ID.IsZero() {
		watcher.ID = bson.NewObjectID()
	}
	if watcher.CreatedTime == 0 {
		watcher.CreatedTime = now
	}
	watcher.UpdatedTime = now

	res, err := r.db.Collection(watcherCollection).InsertOne(ctx, watcher)
	if err != nil {
		// The unique index on name turns a duplicate insert into a domain
		// error the admin API can map to a conflict.
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("create watcher, err: %w", err)
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		watcher.ID = oid
	}
	return nil
}

func (r *repo) UpdateWatcher(ctx context.Context, watcher *domain.WatcherConfig) error {
	if watcher == nil {
		return errors.New("nil watcher")
	}
	if watcher.ID.IsZero() {
		return errors.New("watcher id is required")
	}

	watcher.UpdatedTime = time.Now().UnixMilli()
	res, err := r.db.Collection(watcherCollection).ReplaceOne(ctx, bson.M{"_id": watcher.ID}, watcher)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("update watcher, err: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *repo) DeleteWatcher(ctx context.Context, watcherID bson.ObjectID) error {
	_, err := r.db.Collection(watcherCollection).DeleteOne(ctx, bson.M{"_id": watcherID})
	if err != nil {
		return fmt.Errorf("delete watcher, err: %w", err)
	}
	return nil
}

func (r *repo) QueryWatchers(ctx context.Context, opt *domain.QueryWatcherOptions) error {
	if opt == nil {
		return errors.New("nil query options")
	}

	filter := bson.M{}
	if len(opt.IDs) > 0 {
		filter["_id"] = bson.M{"$in": opt.IDs}
	}
	if len(opt.Names) > 0 {
		filter["name"] = bson.M{"$in": opt.Names}
	}
	if len(opt.ClusterNames) > 0 {
		filter["clusterName"] = bson.M{"$in": opt.ClusterNames}
	}

	cursor, err := r.db.Collection(watcherCollection).Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("find watchers, err: %w", err)
	}

	var result []*domain.WatcherConfig
	if err := cursor.All(ctx, &result); err != nil {
		return fmt.Errorf("decode watchers, err: %w", err)
	}
	opt.Result = result
	return nil
}

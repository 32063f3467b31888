package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/weaversoft/snapwatch/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func (r *repo) CreateUser(ctx context.Context, user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}

	now := time.Now().UnixMilli()
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}
	if user.CreatedTime == 0 {
		user.CreatedTime = now
	}
	user.UpdatedTime = now

	res, err := r.db.Collection(userCollection).InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("create user, err: %w", err)
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

func (r *repo) UpdateUser(ctx context.Context, user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}
	if user.ID.IsZero() {
		return errors.New("user id is required")
	}

	user.UpdatedTime = time.Now().UnixMilli()
	res, err := r.db.Collection(userCollection).ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		return fmt.Errorf("update user, err: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *repo) QueryUsers(ctx context.Context, opt *domain.QueryUserOptions) error {
	if opt == nil {
		return errors.New("nil query options")
	}

	filter := bson.M{}
	if len(opt.IDs) > 0 {
		filter["_id"] = bson.M{"$in": opt.IDs}
	}
	if len(opt.UserNames) > 0 {
		filter["username"] = bson.M{"$in": opt.UserNames}
	}

	cursor, err := r.db.Collection(userCollection).Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("find users, err: %w", err)
	}

	var result []*domain.User
	if err := cursor.All(ctx, &result); err != nil {
		return fmt.Errorf("decode users, err: %w", err)
	}
	opt.Result = result
	return nil
}

package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tasktracker/internal/model"
	"tasktracker/internal/query"
)

type UserRepository struct {
	coll *mongo.Collection
}

type UserRepositoryInterface interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string, projection bson.D) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, q query.ListQuery) ([]model.User, error)
	Count(ctx context.Context, filter bson.D) (int64, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id string) error
	AddPendingTask(ctx context.Context, userID, taskID string) error
	RemovePendingTask(ctx context.Context, userID, taskID string) error
	PullTasksFromOthers(ctx context.Context, ownerID string, taskIDs []string) error
}

var _ UserRepositoryInterface = (*UserRepository)(nil)

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection("users")}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.DateCreated.IsZero() {
		user.DateCreated = time.Now().UTC()
	}
	if user.PendingTasks == nil {
		user.PendingTasks = []string{}
	}
	_, err := r.coll.InsertOne(ctx, user)
	return err
}

// GetByID returns nil, nil when the id is malformed or no user matches.
func (r *UserRepository) GetByID(ctx context.Context, id string, projection bson.D) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}
	var user model.User
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context, q query.ListQuery) ([]model.User, error) {
	opts := options.Find()
	if q.Sort != nil {
		opts.SetSort(q.Sort)
	}
	if q.Projection != nil {
		opts.SetProjection(q.Projection)
	}
	if q.Skip > 0 {
		opts.SetSkip(q.Skip)
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}
	cursor, err := r.coll.Find(ctx, q.Filter, opts)
	if err != nil {
		return nil, err
	}
	users := []model.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Count(ctx context.Context, filter bson.D) (int64, error) {
	return r.coll.CountDocuments(ctx, filter)
}

func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrUserNotFound
	}
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// AddPendingTask adds taskID to the user's pending set. $addToSet keeps the
// operation idempotent: re-adding a present id changes nothing.
func (r *UserRepository) AddPendingTask(ctx context.Context, userID, taskID string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrUserNotFound
	}
	_, err = r.coll.UpdateOne(ctx, bson.M{"_id": oid},
		bson.M{"$addToSet": bson.M{"pendingTasks": taskID}})
	return err
}

// RemovePendingTask removes taskID from the user's pending set; a no-op when
// the id is absent.
func (r *UserRepository) RemovePendingTask(ctx context.Context, userID, taskID string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrUserNotFound
	}
	_, err = r.coll.UpdateOne(ctx, bson.M{"_id": oid},
		bson.M{"$pull": bson.M{"pendingTasks": taskID}})
	return err
}

// PullTasksFromOthers removes the given task ids from the pending set of
// every user except ownerID. Used when tasks change hands so the previous
// owners' sets do not keep stale references.
func (r *UserRepository) PullTasksFromOthers(ctx context.Context, ownerID string, taskIDs []string) error {
	if len(taskIDs) == 0 {
		return nil
	}
	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return ErrUserNotFound
	}
	_, err = r.coll.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$ne": oid}, "pendingTasks": bson.M{"$in": taskIDs}},
		bson.M{"$pull": bson.M{"pendingTasks": bson.M{"$in": taskIDs}}})
	return err
}

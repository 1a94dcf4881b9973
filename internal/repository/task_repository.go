package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tasktracker/internal/model"
	"tasktracker/internal/query"
)

type TaskRepository struct {
	coll *mongo.Collection
}

type TaskRepositoryInterface interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, id string, projection bson.D) (*model.Task, error)
	FindByIDs(ctx context.Context, ids []string) ([]model.Task, error)
	List(ctx context.Context, q query.ListQuery) ([]model.Task, error)
	Count(ctx context.Context, filter bson.D) (int64, error)
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id string) error
	BulkAssign(ctx context.Context, taskIDs []string, userID, userName string) error
	BulkUnassign(ctx context.Context, taskIDs []string) error
}

var _ TaskRepositoryInterface = (*TaskRepository)(nil)

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{coll: db.Collection("tasks")}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, task)
	return err
}

// GetByID returns nil, nil when the id is malformed or no task matches.
func (r *TaskRepository) GetByID(ctx context.Context, id string, projection bson.D) (*model.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}
	var task model.Task
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}, opts).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// FindByIDs returns the tasks whose ids appear in ids. Malformed ids are
// skipped; ids with no matching document are simply missing from the result.
func (r *TaskRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Task, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	tasks := []model.Task{}
	if len(oids) == 0 {
		return tasks, nil
	}
	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, err
	}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) List(ctx context.Context, q query.ListQuery) ([]model.Task, error) {
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
	tasks := []model.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) Count(ctx context.Context, filter bson.D) (int64, error) {
	return r.coll.CountDocuments(ctx, filter)
}

func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": task.ID}, task)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrTaskNotFound
	}
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// BulkAssign points every listed task at the given user and refreshes the
// cached display name in the same write.
func (r *TaskRepository) BulkAssign(ctx context.Context, taskIDs []string, userID, userName string) error {
	oids := toObjectIDs(taskIDs)
	if len(oids) == 0 {
		return nil
	}
	_, err := r.coll.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": oids}},
		bson.M{"$set": bson.M{"assignedUser": userID, "assignedUserName": userName}})
	return err
}

// BulkUnassign resets every listed task to the unassigned state.
func (r *TaskRepository) BulkUnassign(ctx context.Context, taskIDs []string) error {
	oids := toObjectIDs(taskIDs)
	if len(oids) == 0 {
		return nil
	}
	_, err := r.coll.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": oids}},
		bson.M{"$set": bson.M{"assignedUser": "", "assignedUserName": model.UnassignedName}})
	return err
}

func toObjectIDs(ids []string) []primitive.ObjectID {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	return oids
}

package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"tasktracker/internal/model"
	"tasktracker/internal/query"
	"tasktracker/internal/repository"
)

type MockUserRepository struct {
	mock.Mock
}

var _ repository.UserRepositoryInterface = (*MockUserRepository)(nil)

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string, projection bson.D) (*model.User, error) {
	args := m.Called(ctx, id, projection)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, q query.ListQuery) ([]model.User, error) {
	args := m.Called(ctx, q)
	users := args.Get(0)
	if users == nil {
		return nil, args.Error(1)
	}
	return users.([]model.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context, filter bson.D) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) AddPendingTask(ctx context.Context, userID, taskID string) error {
	args := m.Called(ctx, userID, taskID)
	return args.Error(0)
}

func (m *MockUserRepository) RemovePendingTask(ctx context.Context, userID, taskID string) error {
	args := m.Called(ctx, userID, taskID)
	return args.Error(0)
}

func (m *MockUserRepository) PullTasksFromOthers(ctx context.Context, ownerID string, taskIDs []string) error {
	args := m.Called(ctx, ownerID, taskIDs)
	return args.Error(0)
}

type MockTaskRepository struct {
	mock.Mock
}

var _ repository.TaskRepositoryInterface = (*MockTaskRepository)(nil)

func (m *MockTaskRepository) Create(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) GetByID(ctx context.Context, id string, projection bson.D) (*model.Task, error) {
	args := m.Called(ctx, id, projection)
	task := args.Get(0)
	if task == nil {
		return nil, args.Error(1)
	}
	return task.(*model.Task), args.Error(1)
}

func (m *MockTaskRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Task, error) {
	args := m.Called(ctx, ids)
	tasks := args.Get(0)
	if tasks == nil {
		return nil, args.Error(1)
	}
	return tasks.([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) List(ctx context.Context, q query.ListQuery) ([]model.Task, error) {
	args := m.Called(ctx, q)
	tasks := args.Get(0)
	if tasks == nil {
		return nil, args.Error(1)
	}
	return tasks.([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) Count(ctx context.Context, filter bson.D) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskRepository) BulkAssign(ctx context.Context, taskIDs []string, userID, userName string) error {
	args := m.Called(ctx, taskIDs, userID, userName)
	return args.Error(0)
}

func (m *MockTaskRepository) BulkUnassign(ctx context.Context, taskIDs []string) error {
	args := m.Called(ctx, taskIDs)
	return args.Error(0)
}

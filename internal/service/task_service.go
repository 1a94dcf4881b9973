// Package service keeps the two sides of the task/user assignment
// relationship consistent. Tasks carry the assignee's id plus a cached
// display name; users carry the set of their pending task ids. The store has
// no cross-document transactions, so every operation here validates before
// its first write and then performs its writes in a fixed order; if a later
// write fails there is no rollback and the relationship may be left
// one-sided until a subsequent mutation repairs it.
package service

import (
	"context"
	"strings"
	"time"

	"tasktracker/internal/model"
	"tasktracker/internal/repository"
)

type TaskService struct {
	tasks repository.TaskRepositoryInterface
	users repository.UserRepositoryInterface
}

func NewTaskService(tasks repository.TaskRepositoryInterface, users repository.UserRepositoryInterface) *TaskService {
	return &TaskService{tasks: tasks, users: users}
}

type CreateTaskInput struct {
	Name         string
	Description  string
	Deadline     *time.Time
	Completed    bool
	AssignedUser string
	// AssignedUserName is accepted from callers but never trusted; the
	// cached name is always resolved from the user record.
	AssignedUserName string
}

// UpdateTaskInput has partial-update semantics: nil means the field was not
// supplied and must be left untouched.
type UpdateTaskInput struct {
	Name         *string
	Description  *string
	Deadline     *time.Time
	Completed    *bool
	AssignedUser *string
}

// Create validates and stores a new task, then adds its id to the assignee's
// pending set. Assignee resolution is lenient on create: an assignee that
// does not resolve is silently cleared instead of rejected.
func (s *TaskService) Create(ctx context.Context, in CreateTaskInput) (*model.Task, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Deadline == nil {
		return nil, invalid("Name and deadline are required")
	}

	task := &model.Task{
		Name:             name,
		Description:      in.Description,
		Deadline:         *in.Deadline,
		Completed:        in.Completed,
		AssignedUser:     "",
		AssignedUserName: model.UnassignedName,
	}

	if in.AssignedUser != "" {
		user, err := s.users.GetByID(ctx, in.AssignedUser, nil)
		if err != nil {
			return nil, err
		}
		if user != nil {
			task.AssignedUser = user.ID.Hex()
			task.AssignedUserName = user.Name
		}
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	if task.AssignedUser != "" {
		if err := s.users.AddPendingTask(ctx, task.AssignedUser, task.ID.Hex()); err != nil {
			return nil, err
		}
	}
	return task, nil
}

// Update applies a partial update and moves the task between pending sets
// when the assignee changes. Assignee resolution is strict on update: a
// non-empty assignee that does not resolve is a validation error. An absent
// assignedUser field leaves the current assignment alone; an explicit ""
// unassigns.
func (s *TaskService) Update(ctx context.Context, id string, in UpdateTaskInput) (*model.Task, error) {
	// Name and deadline are validated together: touching either requires
	// both to be present and non-empty.
	if in.Name != nil || in.Deadline != nil {
		if in.Name == nil || strings.TrimSpace(*in.Name) == "" || in.Deadline == nil {
			return nil, invalid("Name and deadline are required")
		}
	}

	task, err := s.tasks.GetByID(ctx, id, nil)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrNotFound
	}

	prevUser := task.AssignedUser
	nextUser := prevUser
	nextUserName := task.AssignedUserName
	if in.AssignedUser != nil {
		nextUser = *in.AssignedUser
		nextUserName = model.UnassignedName
		if nextUser != "" {
			user, err := s.users.GetByID(ctx, nextUser, nil)
			if err != nil {
				return nil, err
			}
			if user == nil {
				return nil, invalid("assignedUser not found")
			}
			nextUser = user.ID.Hex()
			nextUserName = user.Name
		}
	}

	if in.Name != nil {
		task.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Deadline != nil {
		task.Deadline = *in.Deadline
	}
	if in.Completed != nil {
		task.Completed = *in.Completed
	}
	task.AssignedUser = nextUser
	task.AssignedUserName = nextUserName

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	// Reassigning to the current assignee is a no-op on both pending sets.
	if prevUser != nextUser {
		taskID := task.ID.Hex()
		if prevUser != "" {
			if err := s.users.RemovePendingTask(ctx, prevUser, taskID); err != nil {
				return nil, err
			}
		}
		if nextUser != "" {
			if err := s.users.AddPendingTask(ctx, nextUser, taskID); err != nil {
				return nil, err
			}
		}
	}
	return task, nil
}

// Delete removes the task, scrubbing it from the assignee's pending set
// first so no user is left pointing at a dead task.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	task, err := s.tasks.GetByID(ctx, id, nil)
	if err != nil {
		return err
	}
	if task == nil {
		return ErrNotFound
	}
	if task.AssignedUser != "" {
		if err := s.users.RemovePendingTask(ctx, task.AssignedUser, task.ID.Hex()); err != nil {
			return err
		}
	}
	return s.tasks.Delete(ctx, task.ID.Hex())
}

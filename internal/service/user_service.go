package service

import (
	"context"
	"strings"

	"tasktracker/internal/model"
	"tasktracker/internal/repository"
)

type UserService struct {
	users repository.UserRepositoryInterface
	tasks repository.TaskRepositoryInterface
}

func NewUserService(users repository.UserRepositoryInterface, tasks repository.TaskRepositoryInterface) *UserService {
	return &UserService{users: users, tasks: tasks}
}

type CreateUserInput struct {
	Name         string
	Email        string
	PendingTasks []string
}

// UpdateUserInput has full-replace semantics: name and email are required on
// every call and PendingTasks replaces the whole set.
type UpdateUserInput struct {
	Name         string
	Email        string
	PendingTasks []string
}

// Create validates and stores a new user. A supplied pending set is verified
// against the task collection (unknown ids are dropped) and the surviving
// tasks are assigned to the new user, including tasks previously owned by
// someone else; the previous owners' sets are scrubbed.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*model.User, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	if name == "" || email == "" {
		return nil, invalid("Name and email are required")
	}
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, invalid("Email already exists")
	}

	pending, err := s.verifyTaskIDs(ctx, in.PendingTasks)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PendingTasks: pending,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	if len(pending) > 0 {
		if err := s.claimTasks(ctx, user.ID.Hex(), name, pending); err != nil {
			return nil, err
		}
	}
	return user, nil
}

// Update replaces the user's fields and reconciles both sides of the
// assignment relationship against the submitted pending set: every task in
// the new set is assigned to this user (with the new name), tasks dropped
// from the old set are unassigned, and other users lose any claim on the
// newly listed tasks.
func (s *UserService) Update(ctx context.Context, id string, in UpdateUserInput) (*model.User, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	if name == "" || email == "" {
		return nil, invalid("Name and email are required")
	}

	user, err := s.users.GetByID(ctx, id, nil)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	dupe, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if dupe != nil && dupe.ID != user.ID {
		return nil, invalid("Email already exists")
	}

	newSet, err := s.verifyTaskIDs(ctx, in.PendingTasks)
	if err != nil {
		return nil, err
	}
	dropped := difference(user.PendingTasks, newSet)

	userID := user.ID.Hex()
	if len(newSet) > 0 {
		if err := s.claimTasks(ctx, userID, name, newSet); err != nil {
			return nil, err
		}
	}
	if len(dropped) > 0 {
		if err := s.tasks.BulkUnassign(ctx, dropped); err != nil {
			return nil, err
		}
	}

	user.Name = name
	user.Email = email
	user.PendingTasks = newSet
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete unassigns every task in the user's pending set, then removes the
// user.
func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.users.GetByID(ctx, id, nil)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	if len(user.PendingTasks) > 0 {
		if err := s.tasks.BulkUnassign(ctx, user.PendingTasks); err != nil {
			return err
		}
	}
	return s.users.Delete(ctx, user.ID.Hex())
}

// claimTasks points the listed tasks at the user and removes them from every
// other user's pending set, so a cross-owner reassignment cannot leave the
// previous owner holding a stale reference.
func (s *UserService) claimTasks(ctx context.Context, userID, userName string, taskIDs []string) error {
	if err := s.tasks.BulkAssign(ctx, taskIDs, userID, userName); err != nil {
		return err
	}
	return s.users.PullTasksFromOthers(ctx, userID, taskIDs)
}

// verifyTaskIDs deduplicates the requested ids and keeps only those naming an
// existing task, preserving request order.
func (s *UserService) verifyTaskIDs(ctx context.Context, requested []string) ([]string, error) {
	deduped := dedupe(requested)
	if len(deduped) == 0 {
		return []string{}, nil
	}
	found, err := s.tasks.FindByIDs(ctx, deduped)
	if err != nil {
		return nil, err
	}
	exists := make(map[string]bool, len(found))
	for _, t := range found {
		exists[t.ID.Hex()] = true
	}
	verified := make([]string, 0, len(deduped))
	for _, id := range deduped {
		if exists[id] {
			verified = append(verified, id)
		}
	}
	return verified, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func difference(old, next []string) []string {
	keep := make(map[string]bool, len(next))
	for _, id := range next {
		keep[id] = true
	}
	out := make([]string, 0, len(old))
	for _, id := range old {
		if !keep[id] {
			out = append(out, id)
		}
	}
	return out
}

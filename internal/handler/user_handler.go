package handler

import (
	"github.com/gin-gonic/gin"

	"tasktracker/internal/query"
	"tasktracker/internal/repository"
	"tasktracker/internal/service"
)

type UserHandler struct {
	svc  *service.UserService
	repo repository.UserRepositoryInterface
}

func NewUserHandler(svc *service.UserService, repo repository.UserRepositoryInterface) *UserHandler {
	return &UserHandler{svc: svc, repo: repo}
}

type UserRequest struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PendingTasks []string `json:"pendingTasks"`
}

// List handles GET /api/users with where/sort/select/skip/limit/count
// parameters.
func (h *UserHandler) List(c *gin.Context) {
	q := query.Parse(c.Request.URL.Query(), 0)
	if q.Count {
		n, err := h.repo.Count(c.Request.Context(), q.Filter)
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, n)
		return
	}
	users, err := h.repo.List(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, users)
}

// GetByID handles GET /api/users/:id with an optional select projection.
func (h *UserHandler) GetByID(c *gin.Context) {
	user, err := h.repo.GetByID(c.Request.Context(), c.Param("id"), query.ParseProjection(c.Request.URL.Query()))
	if err != nil {
		respondError(c, err)
		return
	}
	if user == nil {
		respondNotFound(c)
		return
	}
	respondOK(c, user)
}

// Create handles POST /api/users.
func (h *UserHandler) Create(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	user, err := h.svc.Create(c.Request.Context(), service.CreateUserInput{
		Name:         req.Name,
		Email:        req.Email,
		PendingTasks: req.PendingTasks,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, user)
}

// Update handles PUT /api/users/:id with full-replace semantics: name and
// email are required on every call and pendingTasks replaces the whole set.
func (h *UserHandler) Update(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	user, err := h.svc.Update(c.Request.Context(), c.Param("id"), service.UpdateUserInput{
		Name:         req.Name,
		Email:        req.Email,
		PendingTasks: req.PendingTasks,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, user)
}

// Delete handles DELETE /api/users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/finbuddy/finbuddy/internal/common"
	"github.com/finbuddy/finbuddy/internal/server/models"
)

// UsersRepo keeps accounts in a slice. Email uniqueness is enforced
// case-insensitively, matching the postgres index on lower(email). Err, when
// set, is returned from every call to simulate store failures.
type UsersRepo struct {
	mu    sync.Mutex
	Items []*models.User
	Err   error
}

func (r *UsersRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, u := range r.Items {
		if strings.EqualFold(u.Email, user.Email) {
			return nil, common.ErrorAlreadyExists
		}
	}
	u := *user
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.Items = append(r.Items, &u)
	return &u, nil
}

func (r *UsersRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, u := range r.Items {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *UsersRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, u := range r.Items {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

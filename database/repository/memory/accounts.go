package memoryRepo

import (
	"context"
	"strings"
	"time"

	"tourdesk/models"
	"tourdesk/utils"
)

type userStore struct{ s *Store }

func (u userStore) GetByID(_ context.Context, id string) (*models.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	if user, ok := u.s.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}

func (u userStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	email = strings.ToLower(strings.TrimSpace(email))
	for _, user := range u.s.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

func (u userStore) Create(_ context.Context, user *models.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	for _, existing := range u.s.users {
		if existing.Email == user.Email {
			return utils.NewConflictError("The email has already been taken.")
		}
	}
	user.ID = newID(user.ID)
	user.CreatedAt = u.s.now()
	user.UpdatedAt = user.CreatedAt
	u.s.users[user.ID] = *user
	return nil
}

func (u userStore) Update(_ context.Context, user *models.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if _, ok := u.s.users[user.ID]; !ok {
		return utils.NewNotFoundError("User", user.ID)
	}
	user.UpdatedAt = u.s.now()
	u.s.users[user.ID] = *user
	return nil
}

func (u userStore) Delete(_ context.Context, id string) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if _, ok := u.s.users[id]; !ok {
		return utils.NewNotFoundError("User", id)
	}
	delete(u.s.users, id)
	return nil
}

type companyStore struct{ s *Store }

func (c companyStore) Create(_ context.Context, company *models.Company) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	company.ID = newID(company.ID)
	company.CreatedAt = c.s.now()
	company.UpdatedAt = company.CreatedAt
	c.s.companies[company.ID] = *company
	return nil
}

func (c companyStore) Update(_ context.Context, company *models.Company) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if _, ok := c.s.companies[company.ID]; !ok {
		return utils.NewNotFoundError("Company", company.ID)
	}
	company.UpdatedAt = c.s.now()
	c.s.companies[company.ID] = *company
	return nil
}

func (c companyStore) GetByID(_ context.Context, id string) (*models.Company, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	if company, ok := c.s.companies[id]; ok && !company.IsDeleted {
		return &company, nil
	}
	return nil, nil
}

func (c companyStore) GetByUserID(_ context.Context, userID string) (*models.Company, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	for _, company := range c.s.companies {
		if company.UserID == userID && !company.IsDeleted {
			found := company
			return &found, nil
		}
	}
	return nil, nil
}

func (c companyStore) List(_ context.Context) ([]models.Company, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	out := []models.Company{}
	for _, company := range c.s.companies {
		if !company.IsDeleted {
			out = append(out, company)
		}
	}
	sortNewestFirst(out, func(c models.Company) time.Time { return c.CreatedAt })
	return out, nil
}

func (c companyStore) Count(_ context.Context, status string) (int, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	n := 0
	for _, company := range c.s.companies {
		if !company.IsDeleted && (status == "" || company.Status == status) {
			n++
		}
	}
	return n, nil
}

func (c companyStore) SoftDelete(_ context.Context, id string) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	company, ok := c.s.companies[id]
	if !ok || company.IsDeleted {
		return utils.NewNotFoundError("Company", id)
	}
	company.IsDeleted = true
	company.UpdatedAt = c.s.now()
	c.s.companies[id] = company
	return nil
}

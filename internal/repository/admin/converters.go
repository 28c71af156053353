package admin

import (
	"geleverd/internal/entities"
)

func ToDomain(a *AdminDB) *entities.Admin {
	if a == nil {
		return nil
	}

	return &entities.Admin{
		ID:             a.ID,
		Username:       a.Username,
		Email:          a.Email,
		HashedPassword: a.HashedPassword,
		Role:           a.Role,
		LastLogin:      a.LastLogin,
		IsActive:       a.IsActive,
		CreatedAt:      a.CreatedAt,
	}
}

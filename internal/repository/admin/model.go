package admin

import "time"

type AdminDB struct {
	ID             string
	Username       string
	Email          string
	HashedPassword string
	Role           string
	LastLogin      *time.Time
	IsActive       bool
	CreatedAt      time.Time
}

package entities

import "time"

type Admin struct {
	ID             string
	Username       string
	Email          string
	HashedPassword string
	Role           string
	LastLogin      *time.Time
	IsActive       bool
	CreatedAt      time.Time
}

const RoleAdmin = "admin"

// AdminSession is the result of a successful login.
type AdminSession struct {
	AccessToken string
	TokenType   string
	Admin       Admin
}

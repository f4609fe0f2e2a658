package domain

import (
	"errors"
	"time"
)

// User represents a system user
type User struct {
	ID             string
	Email          string
	Name           string
	HashedPassword string
	Role           Role
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Active         bool
}

// Role represents a user's access level
type Role string

const (
	// RoleAdmin has full access, including product deletion
	RoleAdmin Role = "admin"

	// RoleClerk can manage products and record purchases and sales
	RoleClerk Role = "clerk"

	// RoleViewer can only view products, stock and the inventory feed
	RoleViewer Role = "viewer"
)

// Valid roles
var validRoles = map[Role]bool{
	RoleAdmin:  true,
	RoleClerk:  true,
	RoleViewer: true,
}

// IsValid checks if the role is a valid role
func (r Role) IsValid() bool {
	return validRoles[r]
}

// CanWrite checks if the role can create products and ledger entries
func (r Role) CanWrite() bool {
	return r == RoleAdmin || r == RoleClerk
}

// CanDelete checks if the role can delete products
func (r Role) CanDelete() bool {
	return r == RoleAdmin
}

// CanView checks if the role can view resources
func (r Role) CanView() bool {
	// All authenticated users can view
	return r.IsValid()
}

// Authentication errors
var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInsufficientRole = errors.New("insufficient role for this operation")
	ErrUserNotFound     = errors.New("user not found")
)

package model

import (
	"fmt"
	"time"
)

// Role is the closed set of account roles. Stored as a string column but
// never trusted raw: every boundary (registration, token parsing) goes
// through ParseRole.
type Role string

const (
	RoleStudent Role = "student"
	RoleClub    Role = "club"
	RoleAdmin   Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleClub, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("invalid role %q", s)
}

func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

func (r Role) String() string { return string(r) }

type User struct {
	ID           uint64 `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;size:150;not null"`
	PasswordHash string `gorm:"size:200;not null"`
	Role         Role   `gorm:"size:20;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

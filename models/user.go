package models

import "time"

type UserRole string

const (
	// RoleGuest doubles as the banned state: a ban demotes the user to
	// guest, restoring to user lifts it.
	RoleGuest UserRole = "guest"
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Password   string    `json:"-"`
	Role       UserRole  `json:"role"`
	Reputation int       `json:"reputation"`
	Bio        string    `json:"bio,omitempty"`
	IsOnline   bool      `json:"is_online"`
	JoinDate   time.Time `json:"join_date"`
}

package domain

import "time"

// Role classifies what a user is allowed to do on the platform
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// Valid reports whether the role is one the backend accepts
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// CanManageCourses reports whether the role may create or edit courses
func (r Role) CanManageCourses() bool {
	return r == RoleTeacher || r == RoleAdmin
}

// User is the current-user profile returned by the backend
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

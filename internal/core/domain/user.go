package domain

import "time"

type UserRole string

const (
	UserRoleCreator  UserRole = "Task Creator"
	UserRoleAssignee UserRole = "Task Assignee"
	UserRoleReviewer UserRole = "Task Reviewer"
)

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleCreator, UserRoleAssignee, UserRoleReviewer:
		return true
	}
	return false
}

func ParseUserRole(value string) (UserRole, error) {
	role := UserRole(value)
	if !role.IsValid() {
		return "", ErrInvalidUserRole
	}
	return role, nil
}

type User struct {
	ID        string
	Name      string
	Email     string
	Role      UserRole
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateUserInput struct {
	Name  string
	Email string
	Role  UserRole
}

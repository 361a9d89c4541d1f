package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleGuide     Role = "guide"
	RoleLeadGuide Role = "lead-guide"
	RoleAdmin     Role = "admin"
)

const DefaultPhoto = "default.jpg"

type User struct {
	ID                   string     `json:"id"`
	Name                 string     `json:"name" validate:"required"`
	Email                string     `json:"email" validate:"required,email"`
	Photo                string     `json:"photo"`
	Role                 Role       `json:"role" validate:"required,oneof=user guide lead-guide admin"`
	PasswordHash         string     `json:"-"`
	PasswordChangedAt    *time.Time `json:"-"`
	PasswordResetToken   *string    `json:"-"`
	PasswordResetExpires *time.Time `json:"-"`
	Active               bool       `json:"-"`
	CreatedAt            time.Time  `json:"createdAt"`
}

// ChangedPasswordAfter reports whether the password was changed after a token
// issued at iat. Token timestamps have second precision.
func (u *User) ChangedPasswordAfter(iat time.Time) bool {
	if u.PasswordChangedAt == nil {
		return false
	}
	return u.PasswordChangedAt.Truncate(time.Second).After(iat)
}

func (u *User) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

func (u *User) FirstName() string {
	first, _, _ := strings.Cut(u.Name, " ")
	return first
}

func (u *User) Summary() *UserSummary {
	return &UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Photo: u.Photo, Role: u.Role}
}

// UserSummary is the populated form of a user embedded in other records.
type UserSummary struct {
	ID    string
	Name  string
	Email string
	Photo string
	Role  Role
}

type SignupInput struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required,eqfield=Password"`
}

func (in *SignupInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = NormalizeEmail(in.Email)
}

// PasswordInput is used by reset and update-password flows.
type PasswordInput struct {
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required,eqfield=Password"`
}

// UserInput is the admin-editable subset of a user. Nil fields are left untouched.
type UserInput struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Photo  *string `json:"photo"`
	Role   *Role   `json:"role"`
	Active *bool   `json:"active"`
}

func (in *UserInput) Apply(u *User) {
	if in.Name != nil {
		u.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		u.Email = NormalizeEmail(*in.Email)
	}
	if in.Photo != nil {
		u.Photo = *in.Photo
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.Active != nil {
		u.Active = *in.Active
	}
}

// SelfUpdate keeps only the fields a user may change on their own account.
func (in UserInput) SelfUpdate() UserInput {
	return UserInput{Name: in.Name, Email: in.Email, Photo: in.Photo}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

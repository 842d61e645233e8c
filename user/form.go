package user

import (
	"time"

	"github.com/hairizuanbinnoorazman/qa-workbench/form"
	"github.com/hairizuanbinnoorazman/qa-workbench/internal/idgen"
)

// NewForm returns the create/edit dialog for the user list. New users get
// a UUID.
func NewForm(store Store, now func() time.Time) *form.Controller[User] {
	return form.New[User](store, form.Config[User]{
		Defaults: func() User {
			return User{Role: DefaultRole}
		},
		Required: []form.Field[User]{
			form.Required("email", func(u *User) string { return u.Email }),
			form.Required("username", func(u *User) string { return u.Username }),
		},
		Validate: func(u *User) error { return u.Validate() },
		ID:       func(u *User) string { return u.ID },
		AssignID: func(u *User, _ time.Time) {
			u.ID = idgen.New()
		},
		Prepare: func(u *User, editing bool, now time.Time) {
			if !editing {
				*u = Normalize(*u, now)
			}
		},
		Now: now,
	})
}

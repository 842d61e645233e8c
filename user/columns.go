package user

import (
	"strconv"

	"github.com/hairizuanbinnoorazman/qa-workbench/spreadsheet"
)

// ExportPrefix is the filename prefix of user workbooks.
const ExportPrefix = "Users"

// Columns is the spreadsheet layout of a user.
func Columns() []spreadsheet.Column[User] {
	return []spreadsheet.Column[User]{
		{Header: "User ID", Get: func(u *User) string { return u.ID }, Set: func(u *User, v string) { u.ID = v }, Default: spreadsheet.PlaceholderID("USR")},
		{Header: "First Name", Get: func(u *User) string { return u.FirstName }, Set: func(u *User, v string) { u.FirstName = v }},
		{Header: "Last Name", Get: func(u *User) string { return u.LastName }, Set: func(u *User, v string) { u.LastName = v }},
		{Header: "Username", Get: func(u *User) string { return u.Username }, Set: func(u *User, v string) { u.Username = v }},
		{Header: "Email", Get: func(u *User) string { return u.Email }, Set: func(u *User, v string) { u.Email = v }},
		{Header: "Role", Get: func(u *User) string { return string(u.Role) }, Set: func(u *User, v string) { u.Role = Role(v) }, Default: func() string { return string(DefaultRole) }},
		{Header: "Verified", Get: func(u *User) string { return strconv.FormatBool(u.IsVerified) }, Set: func(u *User, v string) { u.IsVerified, _ = strconv.ParseBool(v) }},
		{Header: "Department", Get: func(u *User) string { return u.Department }, Set: func(u *User, v string) { u.Department = v }},
		{Header: "Phone", Get: func(u *User) string { return u.Phone }, Set: func(u *User, v string) { u.Phone = v }},
		{Header: "Created At", Get: func(u *User) string { return u.CreatedAt }, Set: func(u *User, v string) { u.CreatedAt = v }, Default: spreadsheet.Today},
	}
}

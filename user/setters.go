package user

// SetEmail returns an UpdateSetter that sets the user's email.
func SetEmail(email string) UpdateSetter {
	return func(u *User) error {
		if email == "" {
			return ErrInvalidEmail
		}
		u.Email = email
		return nil
	}
}

// SetUsername returns an UpdateSetter that sets the user's username.
func SetUsername(username string) UpdateSetter {
	return func(u *User) error {
		if username == "" {
			return ErrInvalidUsername
		}
		u.Username = username
		return nil
	}
}

// SetName returns an UpdateSetter that sets the user's first and last name.
func SetName(first, last string) UpdateSetter {
	return func(u *User) error {
		u.FirstName = first
		u.LastName = last
		return nil
	}
}

// SetRole returns an UpdateSetter that sets the user's role.
func SetRole(role Role) UpdateSetter {
	return func(u *User) error {
		if !role.IsValid() {
			return ErrInvalidRole
		}
		u.Role = role
		return nil
	}
}

// SetProfile returns an UpdateSetter that sets the contact fields.
func SetProfile(phone, department, avatar string) UpdateSetter {
	return func(u *User) error {
		u.Phone = phone
		u.Department = department
		u.Avatar = avatar
		return nil
	}
}

// SetVerified returns an UpdateSetter that marks the email verified at the given time.
func SetVerified(at string) UpdateSetter {
	return func(u *User) error {
		u.IsVerified = true
		u.VerifiedAt = at
		return nil
	}
}

// SetLastLogin returns an UpdateSetter that records a login time.
func SetLastLogin(at string) UpdateSetter {
	return func(u *User) error {
		u.LastLogin = at
		return nil
	}
}

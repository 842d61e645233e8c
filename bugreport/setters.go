package bugreport

// SetTitle returns an UpdateSetter that sets the bug title.
func SetTitle(title string) UpdateSetter {
	return func(b *BugReport) error {
		if title == "" {
			return ErrInvalidTitle
		}
		b.Title = title
		return nil
	}
}

// SetSeverity returns an UpdateSetter that sets the severity.
func SetSeverity(severity Level) UpdateSetter {
	return func(b *BugReport) error {
		if !severity.IsValid() {
			return ErrInvalidSeverity
		}
		b.Severity = severity
		return nil
	}
}

// SetPriority returns an UpdateSetter that sets the priority.
func SetPriority(priority Level) UpdateSetter {
	return func(b *BugReport) error {
		if !priority.IsValid() {
			return ErrInvalidPriority
		}
		b.Priority = priority
		return nil
	}
}

// SetAssignedTo returns an UpdateSetter that sets the assignee.
func SetAssignedTo(assignee string) UpdateSetter {
	return func(b *BugReport) error {
		b.AssignedTo = assignee
		return nil
	}
}

// SetComments returns an UpdateSetter that sets the comments.
func SetComments(comments string) UpdateSetter {
	return func(b *BugReport) error {
		b.Comments = comments
		return nil
	}
}

// Resolve returns an UpdateSetter that marks the bug resolved on date.
func Resolve(date string) UpdateSetter {
	return func(b *BugReport) error {
		b.DateResolved = date
		return nil
	}
}

// Reopen returns an UpdateSetter that clears the resolution date.
func Reopen() UpdateSetter {
	return func(b *BugReport) error {
		b.DateResolved = ""
		return nil
	}
}

package rtm

import "github.com/samber/lo"

// SetRequirement returns an UpdateSetter that sets the requirement text.
func SetRequirement(text string) UpdateSetter {
	return func(e *Entry) error {
		if text == "" {
			return ErrInvalidRequirement
		}
		e.Requirement = text
		return nil
	}
}

// SetModule returns an UpdateSetter that sets the module.
func SetModule(module string) UpdateSetter {
	return func(e *Entry) error {
		e.Module = module
		return nil
	}
}

// LinkTestCase returns an UpdateSetter that links a test case ID once.
func LinkTestCase(id string) UpdateSetter {
	return func(e *Entry) error {
		if !lo.Contains(e.TestCaseIDs, id) {
			e.TestCaseIDs = append(e.TestCaseIDs, id)
		}
		return nil
	}
}

// UnlinkTestCase returns an UpdateSetter that removes a test case link.
func UnlinkTestCase(id string) UpdateSetter {
	return func(e *Entry) error {
		e.TestCaseIDs = lo.Without(e.TestCaseIDs, id)
		return nil
	}
}

package testsuite

import (
	"github.com/hairizuanbinnoorazman/qa-workbench/testcase"
	"github.com/samber/lo"
)

// SetName returns an UpdateSetter that sets the suite name.
func SetName(name string) UpdateSetter {
	return func(s *TestSuite) error {
		if name == "" {
			return ErrInvalidName
		}
		s.Name = name
		return nil
	}
}

// SetDescription returns an UpdateSetter that sets the description.
func SetDescription(description string) UpdateSetter {
	return func(s *TestSuite) error {
		s.Description = description
		return nil
	}
}

// SetStatus returns an UpdateSetter that sets the status.
func SetStatus(status Status) UpdateSetter {
	return func(s *TestSuite) error {
		if !status.IsValid() {
			return ErrInvalidStatus
		}
		s.Status = status
		return nil
	}
}

// SetOwner returns an UpdateSetter that sets the owner.
func SetOwner(owner string) UpdateSetter {
	return func(s *TestSuite) error {
		s.Owner = owner
		return nil
	}
}

// SetTestCases returns an UpdateSetter that replaces the embedded test cases
// with copies of cases.
func SetTestCases(cases []testcase.TestCase) UpdateSetter {
	snapshot := append([]testcase.TestCase{}, cases...)
	return func(s *TestSuite) error {
		s.TestCases = snapshot
		return nil
	}
}

// AddTestCase returns an UpdateSetter that appends a snapshot of tc, unless
// a case with the same ID is already embedded.
func AddTestCase(tc testcase.TestCase) UpdateSetter {
	return func(s *TestSuite) error {
		if lo.ContainsBy(s.TestCases, func(c testcase.TestCase) bool { return c.ID == tc.ID }) {
			return nil
		}
		s.TestCases = append(s.TestCases, tc)
		return nil
	}
}

// RemoveTestCase returns an UpdateSetter that drops the embedded case with the given ID.
func RemoveTestCase(id string) UpdateSetter {
	return func(s *TestSuite) error {
		s.TestCases = lo.Reject(s.TestCases, func(c testcase.TestCase, _ int) bool { return c.ID == id })
		return nil
	}
}

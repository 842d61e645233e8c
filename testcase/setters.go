package testcase

// SetTitle returns an UpdateSetter that sets the test case's title.
func SetTitle(title string) UpdateSetter {
	return func(tc *TestCase) error {
		if title == "" {
			return ErrInvalidTitle
		}
		tc.Title = title
		return nil
	}
}

// SetStatus returns an UpdateSetter that sets the execution status.
func SetStatus(status Status) UpdateSetter {
	return func(tc *TestCase) error {
		if !status.IsValid() {
			return ErrInvalidStatus
		}
		tc.Status = status
		return nil
	}
}

// SetExecution returns an UpdateSetter that records an execution.
func SetExecution(status Status, actual, executedBy, date string) UpdateSetter {
	return func(tc *TestCase) error {
		if !status.IsValid() {
			return ErrInvalidStatus
		}
		tc.Status = status
		tc.ActualResult = actual
		tc.ExecutedBy = executedBy
		tc.ExecutionDate = date
		return nil
	}
}

// SetSteps returns an UpdateSetter that sets the steps.
func SetSteps(steps string) UpdateSetter {
	return func(tc *TestCase) error {
		tc.Steps = steps
		return nil
	}
}

// SetExpectedResult returns an UpdateSetter that sets the expected result.
func SetExpectedResult(expected string) UpdateSetter {
	return func(tc *TestCase) error {
		tc.ExpectedResult = expected
		return nil
	}
}

// SetRemarks returns an UpdateSetter that sets the remarks.
func SetRemarks(remarks string) UpdateSetter {
	return func(tc *TestCase) error {
		tc.Remarks = remarks
		return nil
	}
}

// SetTester returns an UpdateSetter that sets the assigned tester.
func SetTester(tester string) UpdateSetter {
	return func(tc *TestCase) error {
		tc.Tester = tester
		return nil
	}
}

// SetRequirementID returns an UpdateSetter that links the test case to a requirement.
func SetRequirementID(id string) UpdateSetter {
	return func(tc *TestCase) error {
		tc.RequirementID = id
		return nil
	}
}

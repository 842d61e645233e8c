package testplan

import "strings"

// SetProjectName returns an UpdateSetter that sets the project name.
func SetProjectName(name string) UpdateSetter {
	return func(p *TestPlan) error {
		if name == "" {
			return ErrInvalidProjectName
		}
		p.ProjectName = name
		return nil
	}
}

// SetVersion returns an UpdateSetter that sets the document version.
func SetVersion(version string) UpdateSetter {
	return func(p *TestPlan) error {
		p.Version = version
		return nil
	}
}

// SetReviewedBy returns an UpdateSetter that sets the reviewer.
func SetReviewedBy(reviewer string) UpdateSetter {
	return func(p *TestPlan) error {
		p.ReviewedBy = reviewer
		return nil
	}
}

// SetPreparedBy returns an UpdateSetter that sets the author.
func SetPreparedBy(author string) UpdateSetter {
	return func(p *TestPlan) error {
		if strings.TrimSpace(author) == "" {
			return ErrInvalidPreparedBy
		}
		p.PreparedBy = author
		return nil
	}
}

// SetIntroduction returns an UpdateSetter that sets the introduction section.
func SetIntroduction(text string) UpdateSetter {
	return func(p *TestPlan) error {
		p.Introduction = text
		return nil
	}
}

// SetObjectives returns an UpdateSetter that sets the objectives section.
func SetObjectives(text string) UpdateSetter {
	return func(p *TestPlan) error {
		p.Objectives = text
		return nil
	}
}

// SetTestStrategy returns an UpdateSetter that sets the test strategy section.
func SetTestStrategy(strategy string) UpdateSetter {
	return func(p *TestPlan) error {
		p.TestStrategy = strategy
		return nil
	}
}

// SetScope returns an UpdateSetter that sets the scope section.
func SetScope(scope string) UpdateSetter {
	return func(p *TestPlan) error {
		p.Scope = scope
		return nil
	}
}

// SetTestEnvironment returns an UpdateSetter that sets the environment section.
func SetTestEnvironment(text string) UpdateSetter {
	return func(p *TestPlan) error {
		p.TestEnvironment = text
		return nil
	}
}

// SetEntryCriteria returns an UpdateSetter that sets the entry criteria.
func SetEntryCriteria(text string) UpdateSetter {
	return func(p *TestPlan) error {
		p.EntryCriteria = text
		return nil
	}
}

// SetExitCriteria returns an UpdateSetter that sets the exit criteria.
func SetExitCriteria(text string) UpdateSetter {
	return func(p *TestPlan) error {
		p.ExitCriteria = text
		return nil
	}
}

// SetDeliverables returns an UpdateSetter that sets the deliverables section.
func SetDeliverables(text string) UpdateSetter {
	return func(p *TestPlan) error {
		p.Deliverables = text
		return nil
	}
}

// SetRoles returns an UpdateSetter that replaces the roles table.
func SetRoles(roles []Role) UpdateSetter {
	roles = append([]Role{}, roles...)
	return func(p *TestPlan) error {
		p.Roles = roles
		return nil
	}
}

// SetSchedule returns an UpdateSetter that replaces the schedule table.
func SetSchedule(schedule []ScheduleEntry) UpdateSetter {
	schedule = append([]ScheduleEntry{}, schedule...)
	return func(p *TestPlan) error {
		p.Schedule = schedule
		return nil
	}
}

// SetRisks returns an UpdateSetter that replaces the risk register.
func SetRisks(risks []Risk) UpdateSetter {
	risks = append([]Risk{}, risks...)
	return func(p *TestPlan) error {
		p.Risks = risks
		return nil
	}
}

// SetMembers returns an UpdateSetter that replaces the team member list.
func SetMembers(members []string) UpdateSetter {
	members = append([]string{}, members...)
	return func(p *TestPlan) error {
		p.Members = members
		return nil
	}
}

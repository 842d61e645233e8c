package qareport

import (
	"github.com/hairizuanbinnoorazman/qa-workbench/bugreport"
	"github.com/samber/lo"
)

// SetTitle returns an UpdateSetter that sets the report title.
func SetTitle(title string) UpdateSetter {
	return func(r *QaReport) error {
		if title == "" {
			return ErrInvalidTitle
		}
		r.Title = title
		return nil
	}
}

// SetRagStatus returns an UpdateSetter that sets the RAG status.
func SetRagStatus(status RagStatus) UpdateSetter {
	return func(r *QaReport) error {
		if !status.IsValid() {
			return ErrInvalidRagStatus
		}
		r.RagStatus = status
		return nil
	}
}

// SetSummary returns an UpdateSetter that sets the summary.
func SetSummary(summary string) UpdateSetter {
	return func(r *QaReport) error {
		r.Summary = summary
		return nil
	}
}

// SetExecution returns an UpdateSetter that replaces the execution counters.
func SetExecution(e TestCaseExecution) UpdateSetter {
	return func(r *QaReport) error {
		next := *r
		next.TestCaseExecution = e
		if err := next.Validate(); err != nil {
			return err
		}
		r.TestCaseExecution = e
		return nil
	}
}

// SetBugDetails returns an UpdateSetter that replaces the defect table.
func SetBugDetails(details []BugDetail) UpdateSetter {
	details = append([]BugDetail{}, details...)
	return func(r *QaReport) error {
		r.BugDetails = details
		return nil
	}
}

// FromBugReports returns an UpdateSetter that rebuilds the defect table,
// severity distribution and open/resolved counts from bugs.
func FromBugReports(bugs []bugreport.BugReport) UpdateSetter {
	details := lo.Map(bugs, func(b bugreport.BugReport, _ int) BugDetail {
		return BugDetail{
			BugID:      b.ID,
			Title:      b.Title,
			Severity:   string(b.Severity),
			Status:     string(b.Status()),
			AssignedTo: b.AssignedTo,
			Module:     b.Module,
		}
	})
	bySeverity := lo.GroupBy(bugs, func(b bugreport.BugReport) bugreport.Level { return b.Severity })
	byStatus := lo.GroupBy(bugs, func(b bugreport.BugReport) bugreport.Status { return b.Status() })

	return func(r *QaReport) error {
		r.BugDetails = details
		r.DefectsDistribution = DefectsDistribution{
			Critical: len(bySeverity[bugreport.LevelCritical]),
			High:     len(bySeverity[bugreport.LevelHigh]),
			Medium:   len(bySeverity[bugreport.LevelMedium]),
			Low:      len(bySeverity[bugreport.LevelLow]),
		}
		r.DefectStatus.Open = len(byStatus[bugreport.StatusOpen])
		r.DefectStatus.Resolved = len(byStatus[bugreport.StatusResolved])
		return nil
	}
}

package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/hairizuanbinnoorazman/qa-workbench/app"
	"github.com/hairizuanbinnoorazman/qa-workbench/bugbash"
	"github.com/hairizuanbinnoorazman/qa-workbench/bugreport"
	"github.com/hairizuanbinnoorazman/qa-workbench/entitystore"
	"github.com/hairizuanbinnoorazman/qa-workbench/qareport"
	"github.com/hairizuanbinnoorazman/qa-workbench/rtm"
	"github.com/hairizuanbinnoorazman/qa-workbench/spreadsheet"
	"github.com/hairizuanbinnoorazman/qa-workbench/testcase"
	"github.com/hairizuanbinnoorazman/qa-workbench/testplan"
	"github.com/hairizuanbinnoorazman/qa-workbench/testsuite"
	"github.com/hairizuanbinnoorazman/qa-workbench/user"
)

// entity is the command line view of one store.
type entity struct {
	export func(ctx context.Context, a *app.App) ([]byte, string, error)
	load   func(ctx context.Context, a *app.App, r io.Reader, format spreadsheet.Format) (int, error)
	delete func(ctx context.Context, a *app.App, id string) (int, error)
}

func bind[T any](store func(*app.App) entitystore.Repository[T], cols func(*app.App) []spreadsheet.Column[T], prefix string) entity {
	return entity{
		export: func(ctx context.Context, a *app.App) ([]byte, string, error) {
			data, err := spreadsheet.Export(prefix, store(a).List(ctx), cols(a))
			return data, spreadsheet.Filename(prefix, a.Now()), err
		},
		load: func(ctx context.Context, a *app.App, r io.Reader, format spreadsheet.Format) (int, error) {
			return spreadsheet.ImportInto[T](ctx, store(a), r, format, cols(a))
		},
		delete: func(ctx context.Context, a *app.App, id string) (int, error) {
			return store(a).Delete(ctx, id)
		},
	}
}

var entities = map[string]entity{
	"testcases": bind(
		func(a *app.App) entitystore.Repository[testcase.TestCase] { return a.TestCases },
		func(*app.App) []spreadsheet.Column[testcase.TestCase] { return testcase.Columns() },
		testcase.ExportPrefix),
	"testsuites": bind(
		func(a *app.App) entitystore.Repository[testsuite.TestSuite] { return a.TestSuites },
		func(*app.App) []spreadsheet.Column[testsuite.TestSuite] { return testsuite.Columns() },
		testsuite.ExportPrefix),
	"testplans": bind(
		func(a *app.App) entitystore.Repository[testplan.TestPlan] { return a.TestPlans },
		func(*app.App) []spreadsheet.Column[testplan.TestPlan] { return testplan.Columns() },
		testplan.ExportPrefix),
	"bugreports": bind(
		func(a *app.App) entitystore.Repository[bugreport.BugReport] { return a.BugReports },
		func(*app.App) []spreadsheet.Column[bugreport.BugReport] { return bugreport.Columns() },
		bugreport.ExportPrefix),
	"bugbashes": bind(
		func(a *app.App) entitystore.Repository[bugbash.BugBash] { return a.BugBashes },
		func(a *app.App) []spreadsheet.Column[bugbash.BugBash] { return bugbash.Columns(a.Now) },
		bugbash.ExportPrefix),
	"qareports": bind(
		func(a *app.App) entitystore.Repository[qareport.QaReport] { return a.QAReports },
		func(*app.App) []spreadsheet.Column[qareport.QaReport] { return qareport.Columns() },
		qareport.ExportPrefix),
	"rtm": bind(
		func(a *app.App) entitystore.Repository[rtm.Entry] { return a.RTM },
		func(a *app.App) []spreadsheet.Column[rtm.Entry] {
			return rtm.Columns(func() []testcase.TestCase { return a.TestCases.List(context.Background()) })
		},
		rtm.ExportPrefix),
	"users": bind(
		func(a *app.App) entitystore.Repository[user.User] { return a.Users },
		func(*app.App) []spreadsheet.Column[user.User] { return user.Columns() },
		user.ExportPrefix),
}

func entityNames() []string {
	names := make([]string, 0, len(entities))
	for name := range entities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupEntity(name string) (entity, error) {
	e, ok := entities[strings.ToLower(name)]
	if !ok {
		return entity{}, fmt.Errorf("unknown entity %q, expected one of: %s", name, strings.Join(entityNames(), ", "))
	}
	return e, nil
}

package spreadsheet

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type item struct {
	ID    string
	Title string
	Date  string
}

func itemColumns() []Column[item] {
	return []Column[item]{
		{Header: "ID", Get: func(i *item) string { return i.ID }, Set: func(i *item, v string) { i.ID = v }, Default: PlaceholderID("ITEM")},
		{Header: "Title", Get: func(i *item) string { return i.Title }, Set: func(i *item, v string) { i.Title = v }},
		{Header: "Date", Get: func(i *item) string { return i.Date }, Set: func(i *item, v string) { i.Date = v }, Default: Today},
	}
}

func readRows(t *testing.T, data []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetList()[0])
	require.NoError(t, err)
	return rows
}

type appendRecorder struct {
	got []item
	err error
}

func (a *appendRecorder) AddAll(ctx context.Context, records []item) error {
	if a.err != nil {
		return a.err
	}
	a.got = append(a.got, records...)
	return nil
}

func TestExport(t *testing.T) {
	t.Run("empty collection produces header only", func(t *testing.T) {
		data, err := Export("Items", []item{}, itemColumns())
		require.NoError(t, err)

		rows := readRows(t, data)
		require.Len(t, rows, 1)
		assert.Equal(t, []string{"ID", "Title", "Date"}, rows[0])
	})

	t.Run("nil collection produces header only", func(t *testing.T) {
		data, err := Export[item]("", nil, itemColumns())
		require.NoError(t, err)
		assert.Len(t, readRows(t, data), 1)
	})

	t.Run("one row per record", func(t *testing.T) {
		records := []item{
			{ID: "I-1", Title: "First", Date: "2024-01-02"},
			{ID: "I-2", Title: "Second", Date: "2024-01-03"},
		}
		data, err := Export("Items", records, itemColumns())
		require.NoError(t, err)

		rows := readRows(t, data)
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"I-2", "Second", "2024-01-03"}, rows[2])
	})
}

func TestImport(t *testing.T) {
	ctx := context.Background()

	t.Run("xlsx round trip", func(t *testing.T) {
		records := []item{{ID: "I-1", Title: "Round trip", Date: "2024-02-03"}}
		data, err := Export("Items", records, itemColumns())
		require.NoError(t, err)

		got, err := Import(ctx, bytes.NewReader(data), FormatXLSX, itemColumns())
		require.NoError(t, err)
		assert.Equal(t, records, got)
	})

	t.Run("empty cells take defaults", func(t *testing.T) {
		input := "ID,Title,Date\n,,\n"
		got, err := Import(ctx, strings.NewReader(input), FormatCSV, itemColumns())
		require.NoError(t, err)
		require.Len(t, got, 1)

		assert.True(t, strings.HasPrefix(got[0].ID, "ITEM-IMP-"))
		assert.Equal(t, "", got[0].Title)
		assert.Equal(t, Today(), got[0].Date)
	})

	t.Run("xlsx row with empty cells takes defaults", func(t *testing.T) {
		f := excelize.NewFile()
		require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"ID", "Title", "Date"}))
		require.NoError(t, f.SetCellValue("Sheet1", "B2", "Only a title"))
		buf, err := f.WriteToBuffer()
		require.NoError(t, err)
		require.NoError(t, f.Close())

		got, err := Import(ctx, buf, FormatXLSX, itemColumns())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Only a title", got[0].Title)
		assert.NotEmpty(t, got[0].ID)
		assert.Equal(t, Today(), got[0].Date)
	})

	t.Run("short csv rows take defaults", func(t *testing.T) {
		input := "ID,Title,Date\nI-1,First,2024-01-01\nI-2,Second\nI-3\n"
		got, err := Import(ctx, strings.NewReader(input), FormatCSV, itemColumns())
		require.NoError(t, err)
		require.Len(t, got, 3)

		assert.Equal(t, item{ID: "I-1", Title: "First", Date: "2024-01-01"}, got[0])
		assert.Equal(t, item{ID: "I-2", Title: "Second", Date: Today()}, got[1])
		assert.Equal(t, "I-3", got[2].ID)
		assert.Equal(t, "", got[2].Title)
	})

	t.Run("missing columns take defaults and unknown headers are ignored", func(t *testing.T) {
		input := "  title ,Colour\nWidget,blue\n"
		got, err := Import(ctx, strings.NewReader(input), FormatCSV, itemColumns())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Widget", got[0].Title)
		assert.NotEmpty(t, got[0].ID)
	})

	t.Run("no recognized headers", func(t *testing.T) {
		_, err := Import(ctx, strings.NewReader("a,b\n1,2\n"), FormatCSV, itemColumns())
		assert.ErrorIs(t, err, ErrNoRecognizedHeaders)
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := Import(ctx, strings.NewReader(""), FormatCSV, itemColumns())
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("malformed csv returns no records", func(t *testing.T) {
		input := "ID,Title,Date\nI-1,ok,2024-01-01\nI-2,\"unterminated\n"
		got, err := Import(ctx, strings.NewReader(input), FormatCSV, itemColumns())
		assert.ErrorIs(t, err, ErrMalformed)
		assert.Nil(t, got)
	})

	t.Run("malformed xlsx", func(t *testing.T) {
		got, err := Import(ctx, strings.NewReader("this is not a zip"), FormatXLSX, itemColumns())
		assert.ErrorIs(t, err, ErrMalformed)
		assert.Nil(t, got)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := Import(ctx, strings.NewReader(""), Format("ods"), itemColumns())
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}

func TestImportInto(t *testing.T) {
	ctx := context.Background()

	t.Run("appends in one batch", func(t *testing.T) {
		rec := &appendRecorder{}
		n, err := ImportInto[item](ctx, rec, strings.NewReader("ID,Title\nA,a\nB,b\n"), FormatCSV, itemColumns())
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Len(t, rec.got, 2)
	})

	t.Run("parse failure appends nothing", func(t *testing.T) {
		rec := &appendRecorder{}
		_, err := ImportInto[item](ctx, rec, strings.NewReader("x,y\n1,2\n"), FormatCSV, itemColumns())
		assert.Error(t, err)
		assert.Empty(t, rec.got)
	})

	t.Run("store failure is returned", func(t *testing.T) {
		rec := &appendRecorder{err: errors.New("disk full")}
		_, err := ImportInto[item](ctx, rec, strings.NewReader("ID\nA\n"), FormatCSV, itemColumns())
		assert.EqualError(t, err, "disk full")
	})
}

func TestFormatFromFilename(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"bugs.xlsx", FormatXLSX, false},
		{"BUGS.XLS", FormatXLSX, false},
		{"rtm.csv", FormatCSV, false},
		{"notes.txt", "", true},
		{"noext", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatFromFilename(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilename(t *testing.T) {
	ts := time.Date(2024, 3, 9, 22, 15, 0, 0, time.Local)
	assert.Equal(t, "BugReports_2024-03-09.xlsx", Filename("BugReports", ts))
}

func TestDate(t *testing.T) {
	ts := time.Date(2024, 6, 10, 23, 59, 0, 0, time.Local)
	assert.Equal(t, "2024-06-10", Date(ts))
}

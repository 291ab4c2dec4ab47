package main

import (
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/openlearn-labs/lms-console/internal/models"
	"github.com/openlearn-labs/lms-console/pkg/config"
)

func TestLookupBindingKnowsEveryResource(t *testing.T) {
	want := []string{
		"certifications", "colleges", "companies", "courses", "jobs",
		"organizations", "questions", "syllabuses", "tasks", "topics",
		"universities",
	}
	assert.Equal(t, want, resourceNames())

	for _, name := range want {
		_, err := lookupBinding(name)
		assert.NoError(t, err, name)
	}
}

func TestLookupBindingRejectsUnknownResource(t *testing.T) {
	_, err := lookupBinding("students")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown resource")
	assert.Contains(t, err.Error(), "courses")
}

type recordingSource struct {
	lastQuery models.ListQuery
	calls     int
}

func (s *recordingSource) List(ctx context.Context, q models.ListQuery) ([]models.Course, int, error) {
	s.calls++
	s.lastQuery = q
	return []models.Course{{ID: "c1", Title: "Algebra I"}}, 1, nil
}

func testApp() *app {
	return &app{
		cfg:    &config.Config{List: config.ListConfig{PageSize: 10}},
		logger: zap.NewNop(),
	}
}

func TestFetchPageAppliesQueryFlags(t *testing.T) {
	src := &recordingSource{}

	snap, err := fetchPage[models.Course](context.Background(), testApp(), src, listFlags{
		page:    3,
		search:  "algebra",
		filters: []string{"category=math"},
		sortBy:  "title",
		order:   "desc",
	})
	require.NoError(t, err)

	assert.Equal(t, "algebra", src.lastQuery.Search)
	assert.Equal(t, "math", src.lastQuery.Filters["category"])
	assert.Equal(t, "title", src.lastQuery.SortBy)
	assert.Equal(t, "desc", src.lastQuery.SortOrder)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "c1", snap.Items[0].RowID())
}

func TestFetchPageWithoutFlagsFetchesOnce(t *testing.T) {
	src := &recordingSource{}

	_, err := fetchPage[models.Course](context.Background(), testApp(), src, listFlags{page: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, src.calls)
	assert.Equal(t, 1, src.lastQuery.Page)
	assert.Equal(t, 10, src.lastQuery.PageSize)
}

func TestFetchPageRejectsMalformedFilter(t *testing.T) {
	src := &recordingSource{}

	_, err := fetchPage[models.Course](context.Background(), testApp(), src, listFlags{
		filters: []string{"category"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key=value")
	assert.Zero(t, src.calls)
}

func newConfirmTestCmd(input string) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&strings.Builder{})
	return cmd
}

func TestTerminalConfirmerApprovesOnYes(t *testing.T) {
	c := newTerminalConfirmer(newConfirmTestCmd("y\n"), false)

	ok, err := c.Confirm("Delete record?")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, c.declined)
}

func TestTerminalConfirmerTreatsAnythingElseAsNo(t *testing.T) {
	for _, input := range []string{"n\n", "\n", "nope\n"} {
		c := newTerminalConfirmer(newConfirmTestCmd(input), false)

		ok, err := c.Confirm("Delete record?")
		require.NoError(t, err)
		assert.False(t, ok, input)
		assert.True(t, c.declined, input)
	}
}

func TestTerminalConfirmerAutoMode(t *testing.T) {
	c := newTerminalConfirmer(newConfirmTestCmd(""), true)

	ok, err := c.Confirm("Delete record?")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHTMLPreviewFlattensMarkup(t *testing.T) {
	got := htmlPreview("<p>Linear <strong>equations</strong></p><p>and graphs</p>")
	assert.Equal(t, "Linear equations and graphs", got)
}

func TestHTMLPreviewTruncatesLongText(t *testing.T) {
	long := strings.Repeat("mathematics ", 20)
	got := htmlPreview("<p>" + long + "</p>")
	assert.LessOrEqual(t, len([]rune(got)), 48)
	assert.True(t, strings.HasSuffix(got, "…"))
}

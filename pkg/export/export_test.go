package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type course struct {
	Title    string
	Category string
	Price    string
}

var courseColumns = []Column[course]{
	{Header: "Title", Value: func(c course) string { return c.Title }},
	{Header: "Category", Value: func(c course) string { return c.Category }},
	{Header: "Price", Value: func(c course) string { return c.Price }},
}

func TestBuildDatasetFollowsColumnOrder(t *testing.T) {
	data := BuildDataset(courseColumns, []course{
		{Title: "Algebra I", Category: "Math", Price: "49"},
		{Title: "Prose, Poetry", Category: "Literature", Price: "39"},
	})

	assert.Equal(t, []string{"Title", "Category", "Price"}, data.Headers)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, []string{"Algebra I", "Math", "49"}, data.Rows[0])
	assert.Equal(t, []string{"Prose, Poetry", "Literature", "39"}, data.Rows[1])
}

func TestCSVRenderQuotesCommas(t *testing.T) {
	data := BuildDataset(courseColumns, []course{
		{Title: "Prose, Poetry", Category: "Literature", Price: "39"},
	})

	out, err := NewCSVExporter().Render(data)
	require.NoError(t, err)

	assert.Equal(t, "Title,Category,Price\n\"Prose, Poetry\",Literature,39\n", string(out))
}

func TestCSVRenderRejectsEmptyHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFRenderProducesDocument(t *testing.T) {
	data := BuildDataset(courseColumns, []course{
		{Title: "Algebra I", Category: "Math", Price: "49"},
	})

	out, err := NewPDFExporter().Render(data, "Courses")
	require.NoError(t, err)

	assert.Greater(t, len(out), 4)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestPDFRenderRejectsEmptyHeaders(t *testing.T) {
	_, err := NewPDFExporter().Render(Dataset{}, "")
	assert.Error(t, err)
}

package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHydrateIsOneShot(t *testing.T) {
	e := NewEditor(nil)
	require.NoError(t, e.Hydrate("<p>seed</p>"))
	require.NoError(t, e.Hydrate("<p>replacement</p>"))
	assert.Equal(t, "<p>seed</p>", e.HTML(), "later initial values are never re-applied")
}

func TestEveryChangeEmitsFullHTML(t *testing.T) {
	var emitted []string
	e := NewEditor(func(html string) { emitted = append(emitted, html) })
	require.NoError(t, e.Hydrate(""))

	e.InsertText("hi")
	e.InsertText("!")
	e.SetSelection(0, 3)
	e.Apply(Command{Name: CmdBold})

	require.Len(t, emitted, 3, "one emission per change, keystroke included")
	assert.Equal(t, "<p>hi</p>", emitted[0])
	assert.Equal(t, "<p>hi!</p>", emitted[1])
	assert.Equal(t, "<p><strong>hi!</strong></p>", emitted[2])
}

func TestInsertTextReplacesSelection(t *testing.T) {
	e := NewEditor(nil)
	require.NoError(t, e.Hydrate("<p>hello world</p>"))
	e.SetSelection(0, 5)
	e.InsertText("goodbye")
	assert.Equal(t, "<p>goodbye world</p>", e.HTML())
	assert.Equal(t, Range{Start: 7, End: 7}, e.Selection())
}

func TestInsertNewlineSplitsBlock(t *testing.T) {
	e := NewEditor(nil)
	require.NoError(t, e.Hydrate("<p>ab</p>"))
	e.SetSelection(1, 1)
	e.InsertText("\n")
	assert.Equal(t, "<p>a</p><p>b</p>", e.HTML())
}

func TestDeleteSelectionAcrossBlocksMerges(t *testing.T) {
	e := NewEditor(nil)
	require.NoError(t, e.Hydrate("<p>abc</p><p>def</p>"))
	e.SetSelection(2, 5)
	e.DeleteSelection()
	assert.Equal(t, "<p>abef</p>", e.HTML())
}

func TestPickersAreExclusive(t *testing.T) {
	e := NewEditor(nil)

	e.OpenPicker(PickerTextColor)
	assert.Equal(t, PickerTextColor, e.OpenedPicker())

	e.OpenPicker(PickerFontSize)
	assert.Equal(t, PickerFontSize, e.OpenedPicker(), "opening one picker closes the other")

	e.OpenPicker(PickerFontSize)
	assert.Equal(t, PickerNone, e.OpenedPicker(), "reopening toggles closed")
}

func TestPickAppliesAndClosesInOneStep(t *testing.T) {
	e := NewEditor(nil)
	require.NoError(t, e.Hydrate("<p>hello</p>"))
	e.SetSelection(0, 5)

	e.OpenPicker(PickerTextColor)
	e.Pick("#e60000")

	assert.Equal(t, PickerNone, e.OpenedPicker())
	assert.Equal(t, `<p><span style="color:#e60000">hello</span></p>`, e.HTML())
}

func TestPickWithoutOpenPickerIsNoOp(t *testing.T) {
	var emitted int
	e := NewEditor(func(string) { emitted++ })
	require.NoError(t, e.Hydrate("<p>hello</p>"))
	e.SetSelection(0, 5)

	e.Pick("#e60000")
	assert.Zero(t, emitted)
	assert.Equal(t, "<p>hello</p>", e.HTML())
}

func TestBoldThenClearRoundTrip(t *testing.T) {
	e := NewEditor(nil)
	require.NoError(t, e.Hydrate("<p>hello world</p>"))

	e.SetSelection(0, 5)
	e.Apply(Command{Name: CmdBold})
	assert.Contains(t, e.HTML(), "<strong>hello</strong>")

	e.Apply(Command{Name: CmdClearFormat})
	assert.NotContains(t, e.HTML(), "strong")
}

func TestSanitizeStripsScriptContent(t *testing.T) {
	dirty := `<p>ok</p><script>alert("xss")</script><p onclick="evil()">click</p>`
	clean := Sanitize(dirty)
	assert.NotContains(t, clean, "script")
	assert.NotContains(t, clean, "onclick")
	assert.Contains(t, clean, "<p>ok</p>")
}

func TestSanitizeKeepsEditorDialect(t *testing.T) {
	produced := `<p style="text-align:center"><span style="color:#e60000"><strong>hot</strong></span></p>`
	clean := Sanitize(produced)
	assert.Contains(t, clean, "<strong>hot</strong>")
	assert.Contains(t, clean, "text-align")
	assert.Contains(t, clean, "#e60000")
}

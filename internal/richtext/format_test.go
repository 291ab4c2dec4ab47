package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRenderRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{"plain paragraph", "<p>hello world</p>"},
		{"bold italic nesting", "<p><strong><em>x</em></strong> rest</p>"},
		{"underline strike", "<p><u><s>gone</s></u></p>"},
		{"colored span", `<p><span style="color:#e60000">red</span></p>`},
		{"highlight span", `<p><span style="background-color:#ffff00">mark</span></p>`},
		{"font size", `<p><span style="font-size:1.25em">big</span></p>`},
		{"bullet list", "<ul><li>a</li><li>b</li></ul>"},
		{"numbered list", "<ol><li>one</li><li>two</li></ol>"},
		{"centered paragraph", `<p style="text-align:center">mid</p>`},
		{"two paragraphs", "<p>first</p><p>second</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(tt.html)
			require.NoError(t, err)
			assert.Equal(t, tt.html, doc.Render())
		})
	}
}

func TestApplyBoldWrapsSelection(t *testing.T) {
	out, err := ApplyFormat("<p>hello world</p>", Command{Name: CmdBold}, Range{Start: 0, End: 5})
	require.NoError(t, err)
	assert.Equal(t, "<p><strong>hello</strong> world</p>", out)
}

func TestApplyBoldTogglesOff(t *testing.T) {
	out, err := ApplyFormat("<p><strong>hello</strong> world</p>", Command{Name: CmdBold}, Range{Start: 0, End: 5})
	require.NoError(t, err)
	assert.Equal(t, "<p>hello world</p>", out)
}

func TestApplyBoldOnMixedSelectionBoldensAll(t *testing.T) {
	// Half the selection is bold already; the native toggle applies bold to
	// the whole selection in that case.
	out, err := ApplyFormat("<p><strong>he</strong>llo</p>", Command{Name: CmdBold}, Range{Start: 0, End: 5})
	require.NoError(t, err)
	assert.Equal(t, "<p><strong>hello</strong></p>", out)
}

func TestClearFormatRemovesBoldMarkup(t *testing.T) {
	out, err := ApplyFormat(
		`<p><span style="color:#e60000"><strong>hot</strong></span> text</p>`,
		Command{Name: CmdClearFormat}, Range{Start: 0, End: 3})
	require.NoError(t, err)
	assert.Equal(t, "<p>hot text</p>", out)
	assert.NotContains(t, out, "strong")
}

func TestApplyBoldAcrossBlocks(t *testing.T) {
	out, err := ApplyFormat("<p>ab</p><p>cd</p>", Command{Name: CmdBold}, Range{Start: 0, End: 5})
	require.NoError(t, err)
	assert.Equal(t, "<p><strong>ab</strong></p><p><strong>cd</strong></p>", out)
}

func TestTextColorFromPalette(t *testing.T) {
	out, err := ApplyFormat("<p>hello</p>", Command{Name: CmdTextColor, Value: "#e60000"}, Range{Start: 0, End: 5})
	require.NoError(t, err)
	assert.Equal(t, `<p><span style="color:#e60000">hello</span></p>`, out)
}

func TestTextColorOutsidePaletteNoOps(t *testing.T) {
	out, err := ApplyFormat("<p>hello</p>", Command{Name: CmdTextColor, Value: "#123456"}, Range{Start: 0, End: 5})
	require.NoError(t, err)
	assert.Equal(t, "<p>hello</p>", out)
}

func TestHighlightUsesSeparatePalette(t *testing.T) {
	// The text palette's red is not a valid highlight.
	out, err := ApplyFormat("<p>hello</p>", Command{Name: CmdHighlight, Value: "#e60000"}, Range{Start: 0, End: 5})
	require.NoError(t, err)
	assert.Equal(t, "<p>hello</p>", out)

	out, err = ApplyFormat("<p>hello</p>", Command{Name: CmdHighlight, Value: "#ffff00"}, Range{Start: 0, End: 5})
	require.NoError(t, err)
	assert.Equal(t, `<p><span style="background-color:#ffff00">hello</span></p>`, out)
}

func TestFontSizeBucket(t *testing.T) {
	out, err := ApplyFormat("<p>hello</p>", Command{Name: CmdFontSize, Value: "large"}, Range{Start: 0, End: 5})
	require.NoError(t, err)
	assert.Equal(t, `<p><span style="font-size:1.25em">hello</span></p>`, out)
}

func TestBulletListToggle(t *testing.T) {
	out, err := ApplyFormat("<p>a</p><p>b</p>", Command{Name: CmdBulletList}, Range{Start: 0, End: 3})
	require.NoError(t, err)
	assert.Equal(t, "<ul><li>a</li><li>b</li></ul>", out)

	out, err = ApplyFormat(out, Command{Name: CmdBulletList}, Range{Start: 0, End: 3})
	require.NoError(t, err)
	assert.Equal(t, "<p>a</p><p>b</p>", out)
}

func TestNumberedListConversion(t *testing.T) {
	out, err := ApplyFormat("<ul><li>a</li></ul>", Command{Name: CmdNumberedList}, Range{Start: 0, End: 1})
	require.NoError(t, err)
	assert.Equal(t, "<ol><li>a</li></ol>", out)
}

func TestParagraphCommandLiftsListItem(t *testing.T) {
	out, err := ApplyFormat("<ul><li>a</li></ul>", Command{Name: CmdParagraph}, Range{Start: 0, End: 1})
	require.NoError(t, err)
	assert.Equal(t, "<p>a</p>", out)
}

func TestAlignmentAppliesToCaretBlock(t *testing.T) {
	out, err := ApplyFormat("<p>first</p><p>second</p>", Command{Name: CmdAlignCenter}, Range{Start: 8, End: 8})
	require.NoError(t, err)
	assert.Equal(t, `<p>first</p><p style="text-align:center">second</p>`, out)
}

func TestApplyClampsOutOfRangeSelection(t *testing.T) {
	out, err := ApplyFormat("<p>hi</p>", Command{Name: CmdBold}, Range{Start: 0, End: 99})
	require.NoError(t, err)
	assert.Equal(t, "<p><strong>hi</strong></p>", out)
}

func TestAdjacentRunsWithEqualStyleMerge(t *testing.T) {
	doc, err := Parse("<p><strong>he</strong><strong>llo</strong></p>")
	require.NoError(t, err)
	assert.Equal(t, "<p><strong>hello</strong></p>", doc.Render())
	require.Len(t, doc.Blocks, 1)
	assert.Len(t, doc.Blocks[0].Runs, 1)
}

func TestParseCollapsesMarkupWhitespace(t *testing.T) {
	doc, err := Parse("<p>hello\n\t  world</p>")
	require.NoError(t, err)
	assert.Equal(t, "hello world", doc.PlainText())
}

func TestUnknownElementsTraversedTransparently(t *testing.T) {
	doc, err := Parse(`<article><p>kept</p></article>`)
	require.NoError(t, err)
	assert.Equal(t, "<p>kept</p>", doc.Render())
}

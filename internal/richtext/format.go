package richtext

// Range is a text selection in rune offsets over the document's plain text.
// Start == End is a caret with no selection.
type Range struct {
	Start int
	End   int
}

// ApplyFormat is the pure form of the browser formatting primitive: apply
// one command to the selection within the given HTML and return the new
// HTML. Commands either apply or no-op; there is no failure mode beyond
// unparseable input.
func ApplyFormat(doc string, cmd Command, sel Range) (string, error) {
	parsed, err := Parse(doc)
	if err != nil {
		return "", err
	}
	parsed.Apply(cmd, sel)
	return parsed.Render(), nil
}

// Apply executes one command against the selection.
func (d *Document) Apply(cmd Command, sel Range) {
	start, end := clampRange(sel.Start, sel.End, d.Len())

	switch cmd.Name {
	case CmdBold:
		d.toggleInline(start, end,
			func(s Style) bool { return s.Bold },
			func(s *Style, v bool) { s.Bold = v })
	case CmdItalic:
		d.toggleInline(start, end,
			func(s Style) bool { return s.Italic },
			func(s *Style, v bool) { s.Italic = v })
	case CmdUnderline:
		d.toggleInline(start, end,
			func(s Style) bool { return s.Underline },
			func(s *Style, v bool) { s.Underline = v })
	case CmdStrikethrough:
		d.toggleInline(start, end,
			func(s Style) bool { return s.Strike },
			func(s *Style, v bool) { s.Strike = v })
	case CmdTextColor:
		if inPalette(TextColors, cmd.Value) {
			d.setInline(start, end, func(s *Style) { s.Color = cmd.Value })
		}
	case CmdHighlight:
		if inPalette(HighlightColors, cmd.Value) {
			d.setInline(start, end, func(s *Style) { s.Highlight = cmd.Value })
		}
	case CmdFontSize:
		if inPalette(FontSizes, cmd.Value) {
			d.setInline(start, end, func(s *Style) { s.Size = cmd.Value })
		}
	case CmdClearFormat:
		d.setInline(start, end, func(s *Style) { *s = Style{} })
	case CmdBulletList:
		d.toggleList(start, end, ListBullet)
	case CmdNumberedList:
		d.toggleList(start, end, ListNumbered)
	case CmdParagraph:
		for _, block := range d.blocksIn(start, end) {
			block.List = ListNone
		}
	case CmdAlignLeft:
		d.setAlign(start, end, AlignLeft)
	case CmdAlignCenter:
		d.setAlign(start, end, AlignCenter)
	case CmdAlignRight:
		d.setAlign(start, end, AlignRight)
	}

	d.Normalize()
}

// toggleInline mirrors the native toggle behaviour: if the whole selection
// already carries the attribute it is removed, otherwise it is applied to
// the whole selection.
func (d *Document) toggleInline(start, end int, get func(Style) bool, set func(*Style, bool)) {
	runs := d.runsIn(start, end)
	if len(runs) == 0 {
		return
	}
	all := true
	for _, run := range runs {
		if !get(run.Style) {
			all = false
			break
		}
	}
	for _, run := range runs {
		set(&run.Style, !all)
	}
}

func (d *Document) setInline(start, end int, set func(*Style)) {
	for _, run := range d.runsIn(start, end) {
		set(&run.Style)
	}
}

func (d *Document) toggleList(start, end int, kind ListKind) {
	blocks := d.blocksIn(start, end)
	if len(blocks) == 0 {
		return
	}
	all := true
	for _, block := range blocks {
		if block.List != kind {
			all = false
			break
		}
	}
	next := kind
	if all {
		next = ListNone
	}
	for _, block := range blocks {
		block.List = next
	}
}

func (d *Document) setAlign(start, end int, align Align) {
	for _, block := range d.blocksIn(start, end) {
		block.Align = align
	}
}

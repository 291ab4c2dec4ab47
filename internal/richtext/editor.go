package richtext

import "unicode/utf8"

// Picker identifies the toolbar popovers. At most one is open at a time.
type Picker int

const (
	PickerNone Picker = iota
	PickerTextColor
	PickerHighlight
	PickerFontSize
)

// Editor is the edit surface: it owns the document while mounted and
// re-emits the full serialised HTML to OnChange after every mutation. Each
// emission is a complete replacement, never a delta, and may fire at
// keystroke frequency.
//
// The emitted HTML is not sanitised here; consumers must run Sanitize before
// persisting or rendering it anywhere else.
type Editor struct {
	doc      *Document
	sel      Range
	onChange func(string)
	hydrated bool
	picker   Picker
}

// NewEditor builds an empty editor. onChange may be nil.
func NewEditor(onChange func(string)) *Editor {
	return &Editor{doc: &Document{}, onChange: onChange}
}

// Hydrate loads initial HTML exactly once. Later calls are ignored: the
// initial value is a one-shot seed, and the editor owns the content from
// then on.
func (e *Editor) Hydrate(initial string) error {
	if e.hydrated {
		return nil
	}
	e.hydrated = true
	if initial == "" {
		return nil
	}
	doc, err := Parse(initial)
	if err != nil {
		return err
	}
	e.doc = doc
	return nil
}

// HTML serialises the current content.
func (e *Editor) HTML() string {
	return e.doc.Render()
}

// PlainText returns the unformatted content.
func (e *Editor) PlainText() string {
	return e.doc.PlainText()
}

// SetSelection moves the selection, clamped to the document.
func (e *Editor) SetSelection(start, end int) {
	start, end = clampRange(start, end, e.doc.Len())
	e.sel = Range{Start: start, End: end}
}

// Selection returns the current selection.
func (e *Editor) Selection() Range {
	return e.sel
}

// Apply runs one formatting command against the current selection and
// emits.
func (e *Editor) Apply(cmd Command) {
	e.doc.Apply(cmd, e.sel)
	e.emit()
}

// InsertText replaces the current selection with plain text, leaving the
// caret after the insertion. Every call emits.
func (e *Editor) InsertText(text string) {
	start, end := clampRange(e.sel.Start, e.sel.End, e.doc.Len())
	if end > start {
		e.doc.DeleteRange(start, end)
	}
	e.doc.InsertText(start, text)
	caret := start + utf8.RuneCountInString(text)
	e.sel = Range{Start: caret, End: caret}
	e.emit()
}

// DeleteSelection removes the selected text and emits.
func (e *Editor) DeleteSelection() {
	start, end := clampRange(e.sel.Start, e.sel.End, e.doc.Len())
	if end == start {
		return
	}
	e.doc.DeleteRange(start, end)
	e.sel = Range{Start: start, End: start}
	e.emit()
}

// OpenPicker opens one picker, closing any other open one.
func (e *Editor) OpenPicker(p Picker) {
	if e.picker == p {
		e.picker = PickerNone
		return
	}
	e.picker = p
}

// OpenedPicker reports which picker is currently open.
func (e *Editor) OpenedPicker() Picker {
	return e.picker
}

// Pick selects a swatch from the open picker: the command applies to the
// selection and the picker closes in one step. With no open picker it is a
// no-op.
func (e *Editor) Pick(value string) {
	var name CommandName
	switch e.picker {
	case PickerTextColor:
		name = CmdTextColor
	case PickerHighlight:
		name = CmdHighlight
	case PickerFontSize:
		name = CmdFontSize
	default:
		return
	}
	e.picker = PickerNone
	e.Apply(Command{Name: name, Value: value})
}

func (e *Editor) emit() {
	if e.onChange != nil {
		e.onChange(e.doc.Render())
	}
}

package richtext

import (
	"strings"
	"unicode/utf8"
)

// Style is the inline formatting carried by a run of text. Color, Highlight
// and Size hold palette values; empty means unstyled.
type Style struct {
	Bold      bool
	Italic    bool
	Underline bool
	Strike    bool
	Color     string
	Highlight string
	Size      string
}

// IsZero reports whether the style carries no formatting at all.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Run is a maximal stretch of text sharing one style.
type Run struct {
	Text  string
	Style Style
}

// ListKind marks whether a block belongs to a list.
type ListKind int

const (
	ListNone ListKind = iota
	ListBullet
	ListNumbered
)

// Align is a block's text alignment. Left is the zero value and is never
// serialised.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Block is one paragraph or list item.
type Block struct {
	List  ListKind
	Align Align
	Runs  []Run
}

func (b Block) textLen() int {
	n := 0
	for _, run := range b.Runs {
		n += utf8.RuneCountInString(run.Text)
	}
	return n
}

// Document is the parsed form of the edit surface's HTML. Offsets into the
// document count runes of its plain text, with one separator position
// between adjacent blocks.
type Document struct {
	Blocks []Block
}

// PlainText flattens the document, joining blocks with newlines.
func (d *Document) PlainText() string {
	parts := make([]string, len(d.Blocks))
	for i, block := range d.Blocks {
		var sb strings.Builder
		for _, run := range block.Runs {
			sb.WriteString(run.Text)
		}
		parts[i] = sb.String()
	}
	return strings.Join(parts, "\n")
}

// Len is the rune length of the plain text.
func (d *Document) Len() int {
	n := 0
	for i, block := range d.Blocks {
		if i > 0 {
			n++
		}
		n += block.textLen()
	}
	return n
}

// Normalize merges adjacent runs with equal styles and drops empty runs.
// Blocks with no runs survive; an empty paragraph is still a paragraph.
func (d *Document) Normalize() {
	for bi := range d.Blocks {
		block := &d.Blocks[bi]
		merged := make([]Run, 0, len(block.Runs))
		for _, run := range block.Runs {
			if run.Text == "" {
				continue
			}
			if len(merged) > 0 && merged[len(merged)-1].Style == run.Style {
				merged[len(merged)-1].Text += run.Text
				continue
			}
			merged = append(merged, run)
		}
		block.Runs = merged
	}
}

// split cuts runs at the start and end offsets so that every run lies
// entirely inside or entirely outside [start, end).
func (d *Document) split(start, end int) {
	pos := 0
	for bi := range d.Blocks {
		block := &d.Blocks[bi]
		runs := make([]Run, 0, len(block.Runs))
		for _, run := range block.Runs {
			n := utf8.RuneCountInString(run.Text)
			rs, re := pos, pos+n
			pos = re
			if n == 0 || re <= start || rs >= end {
				runs = append(runs, run)
				continue
			}
			cutA := start
			if cutA < rs {
				cutA = rs
			}
			cutB := end
			if cutB > re {
				cutB = re
			}
			runes := []rune(run.Text)
			if cutA > rs {
				runs = append(runs, Run{Text: string(runes[:cutA-rs]), Style: run.Style})
			}
			runs = append(runs, Run{Text: string(runes[cutA-rs : cutB-rs]), Style: run.Style})
			if cutB < re {
				runs = append(runs, Run{Text: string(runes[cutB-rs:]), Style: run.Style})
			}
		}
		block.Runs = runs
		pos++
	}
}

// runsIn returns pointers to the runs fully covered by [start, end) after
// splitting at the boundaries.
func (d *Document) runsIn(start, end int) []*Run {
	d.split(start, end)
	var selected []*Run
	pos := 0
	for bi := range d.Blocks {
		block := &d.Blocks[bi]
		for ri := range block.Runs {
			n := utf8.RuneCountInString(block.Runs[ri].Text)
			rs, re := pos, pos+n
			pos = re
			if n > 0 && rs >= start && re <= end {
				selected = append(selected, &block.Runs[ri])
			}
		}
		pos++
	}
	return selected
}

// blocksIn returns pointers to the blocks intersecting [start, end]. A
// collapsed selection still addresses the block the caret sits in.
func (d *Document) blocksIn(start, end int) []*Block {
	var selected []*Block
	pos := 0
	for bi := range d.Blocks {
		block := &d.Blocks[bi]
		bs, be := pos, pos+block.textLen()
		if start <= be && bs <= end {
			selected = append(selected, block)
		}
		pos = be + 1
	}
	return selected
}

// DeleteRange removes the text in [start, end), merging blocks whose
// separator falls inside the range.
func (d *Document) DeleteRange(start, end int) {
	if start >= end {
		return
	}
	d.split(start, end)

	pos := 0
	mergeWithNext := make([]bool, len(d.Blocks))
	for bi := range d.Blocks {
		block := &d.Blocks[bi]
		for ri := range block.Runs {
			n := utf8.RuneCountInString(block.Runs[ri].Text)
			rs, re := pos, pos+n
			pos = re
			if n > 0 && rs >= start && re <= end {
				block.Runs[ri].Text = ""
			}
		}
		if bi < len(d.Blocks)-1 && start <= pos && pos < end {
			mergeWithNext[bi] = true
		}
		pos++
	}

	blocks := make([]Block, 0, len(d.Blocks))
	for bi, block := range d.Blocks {
		if len(blocks) > 0 && bi > 0 && mergeWithNext[bi-1] {
			last := &blocks[len(blocks)-1]
			last.Runs = append(last.Runs, block.Runs...)
			continue
		}
		blocks = append(blocks, block)
	}
	d.Blocks = blocks
	d.Normalize()
}

// InsertText inserts plain text at the given offset, inheriting the style of
// the run the caret sits in. Newlines split the block.
func (d *Document) InsertText(offset int, text string) {
	if len(d.Blocks) == 0 {
		d.Blocks = []Block{{}}
	}
	segments := strings.Split(text, "\n")
	d.insertSegment(offset, segments[0])
	cursor := offset + utf8.RuneCountInString(segments[0])
	for _, segment := range segments[1:] {
		d.splitBlockAt(cursor)
		cursor++
		d.insertSegment(cursor, segment)
		cursor += utf8.RuneCountInString(segment)
	}
	d.Normalize()
}

func (d *Document) insertSegment(offset int, text string) {
	if text == "" {
		return
	}
	pos := 0
	for bi := range d.Blocks {
		block := &d.Blocks[bi]
		n := block.textLen()
		if offset > pos+n {
			pos += n + 1
			continue
		}
		local := offset - pos
		insertIntoBlock(block, local, text)
		return
	}
	// Past the end: append to the last block.
	last := &d.Blocks[len(d.Blocks)-1]
	insertIntoBlock(last, last.textLen(), text)
}

func insertIntoBlock(block *Block, local int, text string) {
	if len(block.Runs) == 0 {
		block.Runs = []Run{{Text: text}}
		return
	}
	at := 0
	for ri := range block.Runs {
		run := &block.Runs[ri]
		n := utf8.RuneCountInString(run.Text)
		if local <= at+n {
			runes := []rune(run.Text)
			cut := local - at
			run.Text = string(runes[:cut]) + text + string(runes[cut:])
			return
		}
		at += n
	}
	lastRun := &block.Runs[len(block.Runs)-1]
	lastRun.Text += text
}

// splitBlockAt splits the block containing offset into two blocks sharing
// the same kind and alignment.
func (d *Document) splitBlockAt(offset int) {
	d.split(offset, offset+1)
	pos := 0
	for bi := range d.Blocks {
		block := d.Blocks[bi]
		n := block.textLen()
		if offset > pos+n {
			pos += n + 1
			continue
		}
		local := offset - pos
		var head, tail []Run
		at := 0
		for _, run := range block.Runs {
			rl := utf8.RuneCountInString(run.Text)
			if at+rl <= local {
				head = append(head, run)
			} else if at >= local {
				tail = append(tail, run)
			} else {
				runes := []rune(run.Text)
				head = append(head, Run{Text: string(runes[:local-at]), Style: run.Style})
				tail = append(tail, Run{Text: string(runes[local-at:]), Style: run.Style})
			}
			at += rl
		}
		first := Block{List: block.List, Align: block.Align, Runs: head}
		second := Block{List: block.List, Align: block.Align, Runs: tail}
		blocks := make([]Block, 0, len(d.Blocks)+1)
		blocks = append(blocks, d.Blocks[:bi]...)
		blocks = append(blocks, first, second)
		blocks = append(blocks, d.Blocks[bi+1:]...)
		d.Blocks = blocks
		return
	}
}

func clampRange(start, end, max int) (int, int) {
	if start > end {
		start, end = end, start
	}
	if start < 0 {
		start = 0
	}
	if end > max {
		end = max
	}
	if start > max {
		start = max
	}
	return start, end
}

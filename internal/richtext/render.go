package richtext

import (
	stdhtml "html"
	"strings"
)

// Render serialises the document back to the edit surface's HTML dialect.
// The output is the editor's only contract with its host: a full HTML
// string, never a delta.
func (d *Document) Render() string {
	var sb strings.Builder
	i := 0
	for i < len(d.Blocks) {
		block := d.Blocks[i]
		if block.List == ListNone {
			renderBlock(&sb, block, "p")
			i++
			continue
		}
		// Consecutive items of the same list kind share one wrapper.
		tag := "ul"
		if block.List == ListNumbered {
			tag = "ol"
		}
		sb.WriteString("<" + tag + ">")
		for i < len(d.Blocks) && d.Blocks[i].List == block.List {
			renderBlock(&sb, d.Blocks[i], "li")
			i++
		}
		sb.WriteString("</" + tag + ">")
	}
	return sb.String()
}

func renderBlock(sb *strings.Builder, block Block, tag string) {
	sb.WriteString("<" + tag)
	switch block.Align {
	case AlignCenter:
		sb.WriteString(` style="text-align:center"`)
	case AlignRight:
		sb.WriteString(` style="text-align:right"`)
	}
	sb.WriteString(">")
	for _, run := range block.Runs {
		renderRun(sb, run)
	}
	sb.WriteString("</" + tag + ">")
}

func renderRun(sb *strings.Builder, run Run) {
	var closers []string
	if span := spanStyle(run.Style); span != "" {
		sb.WriteString(`<span style="` + span + `">`)
		closers = append(closers, "</span>")
	}
	if run.Style.Bold {
		sb.WriteString("<strong>")
		closers = append(closers, "</strong>")
	}
	if run.Style.Italic {
		sb.WriteString("<em>")
		closers = append(closers, "</em>")
	}
	if run.Style.Underline {
		sb.WriteString("<u>")
		closers = append(closers, "</u>")
	}
	if run.Style.Strike {
		sb.WriteString("<s>")
		closers = append(closers, "</s>")
	}

	sb.WriteString(stdhtml.EscapeString(run.Text))
	for i := len(closers) - 1; i >= 0; i-- {
		sb.WriteString(closers[i])
	}
}

func spanStyle(style Style) string {
	var props []string
	if style.Color != "" {
		props = append(props, "color:"+style.Color)
	}
	if style.Highlight != "" {
		props = append(props, "background-color:"+style.Highlight)
	}
	if style.Size != "" && style.Size != "normal" {
		if css, ok := fontSizeCSS[style.Size]; ok {
			props = append(props, "font-size:"+css)
		}
	}
	return strings.Join(props, ";")
}

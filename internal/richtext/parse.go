package richtext

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var fontSizeCSS = map[string]string{
	"small":  "0.8em",
	"normal": "1em",
	"large":  "1.25em",
	"xlarge": "1.5em",
	"huge":   "2em",
}

var cssFontSize = func() map[string]string {
	m := make(map[string]string, len(fontSizeCSS))
	for name, css := range fontSizeCSS {
		m[css] = name
	}
	return m
}()

// Parse reads the edit surface's HTML dialect into a Document. Unknown
// elements are traversed transparently; their formatting is ignored rather
// than rejected.
func Parse(input string) (*Document, error) {
	nodes, err := html.ParseFragment(strings.NewReader(input), &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	})
	if err != nil {
		return nil, err
	}

	p := &parser{doc: &Document{}}
	for _, node := range nodes {
		p.walk(node, Style{}, ListNone)
	}
	p.endBlock()
	p.doc.Normalize()
	return p.doc, nil
}

type parser struct {
	doc     *Document
	current *Block
}

func (p *parser) startBlock(list ListKind, align Align) {
	p.endBlock()
	p.current = &Block{List: list, Align: align}
}

func (p *parser) endBlock() {
	if p.current != nil {
		p.doc.Blocks = append(p.doc.Blocks, *p.current)
		p.current = nil
	}
}

func (p *parser) appendText(text string, style Style) {
	if text == "" {
		return
	}
	if p.current == nil {
		if strings.TrimSpace(text) == "" {
			return
		}
		p.current = &Block{}
	}
	p.current.Runs = append(p.current.Runs, Run{Text: text, Style: style})
}

func (p *parser) walk(node *html.Node, style Style, list ListKind) {
	switch node.Type {
	case html.TextNode:
		p.appendText(collapseWhitespace(node.Data), style)
		return
	case html.ElementNode:
	default:
		return
	}

	switch node.Data {
	case "p", "div":
		p.startBlock(list, alignFromAttr(node))
		p.walkChildren(node, style, list)
		p.endBlock()
	case "ul":
		p.endBlock()
		p.walkChildren(node, style, ListBullet)
	case "ol":
		p.endBlock()
		p.walkChildren(node, style, ListNumbered)
	case "li":
		p.startBlock(list, alignFromAttr(node))
		p.walkChildren(node, style, list)
		p.endBlock()
	case "br":
		list, align := ListNone, AlignLeft
		if p.current != nil {
			list, align = p.current.List, p.current.Align
		}
		p.startBlock(list, align)
	case "b", "strong":
		style.Bold = true
		p.walkChildren(node, style, list)
	case "i", "em":
		style.Italic = true
		p.walkChildren(node, style, list)
	case "u":
		style.Underline = true
		p.walkChildren(node, style, list)
	case "s", "strike", "del":
		style.Strike = true
		p.walkChildren(node, style, list)
	case "span":
		p.walkChildren(node, styleFromSpan(node, style), list)
	default:
		p.walkChildren(node, style, list)
	}
}

func (p *parser) walkChildren(node *html.Node, style Style, list ListKind) {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		p.walk(child, style, list)
	}
}

func attrValue(node *html.Node, name string) string {
	for _, attr := range node.Attr {
		if attr.Key == name {
			return attr.Val
		}
	}
	return ""
}

func parseStyleAttr(raw string) map[string]string {
	props := map[string]string{}
	for _, decl := range strings.Split(raw, ";") {
		parts := strings.SplitN(decl, ":", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(parts[0]))
		value := strings.ToLower(strings.TrimSpace(parts[1]))
		if key != "" && value != "" {
			props[key] = value
		}
	}
	return props
}

func alignFromAttr(node *html.Node) Align {
	switch parseStyleAttr(attrValue(node, "style"))["text-align"] {
	case "center":
		return AlignCenter
	case "right":
		return AlignRight
	}
	return AlignLeft
}

func styleFromSpan(node *html.Node, style Style) Style {
	props := parseStyleAttr(attrValue(node, "style"))
	if color, ok := props["color"]; ok {
		style.Color = color
	}
	if bg, ok := props["background-color"]; ok {
		style.Highlight = bg
	}
	if size, ok := props["font-size"]; ok {
		if name, ok := cssFontSize[size]; ok {
			style.Size = name
		}
	}
	return style
}

// collapseWhitespace folds runs of markup whitespace into single spaces,
// matching how a rendered editable region reads back its text.
func collapseWhitespace(text string) string {
	if text == "" {
		return ""
	}
	var sb strings.Builder
	inSpace := false
	for _, r := range text {
		if r == '\n' || r == '\t' || r == '\r' || r == ' ' {
			if !inSpace {
				sb.WriteRune(' ')
				inSpace = true
			}
			continue
		}
		inSpace = false
		sb.WriteRune(r)
	}
	return sb.String()
}

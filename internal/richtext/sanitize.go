package richtext

import "github.com/microcosm-cc/bluemonday"

// policy admits exactly the markup the edit surface emits and nothing else.
var policy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "ul", "ol", "li", "strong", "em", "u", "s", "br", "span")
	p.AllowStyles("color", "background-color", "font-size").OnElements("span")
	p.AllowStyles("text-align").OnElements("p", "li")
	return p
}()

// Sanitize strips anything outside the edit surface's dialect. The editor
// itself passes content through verbatim; stored markup must go through
// here before it is rendered anywhere, since editor output is otherwise a
// stored-markup injection vector.
func Sanitize(input string) string {
	return policy.Sanitize(input)
}

package richtext

// CommandName identifies one toolbar action. The set is fixed; there is no
// extensibility point.
type CommandName string

const (
	CmdBold          CommandName = "bold"
	CmdItalic        CommandName = "italic"
	CmdUnderline     CommandName = "underline"
	CmdStrikethrough CommandName = "strikethrough"
	CmdBulletList    CommandName = "bullet-list"
	CmdNumberedList  CommandName = "numbered-list"
	CmdTextColor     CommandName = "text-color"
	CmdHighlight     CommandName = "highlight"
	CmdFontSize      CommandName = "font-size"
	CmdParagraph     CommandName = "paragraph"
	CmdAlignLeft     CommandName = "align-left"
	CmdAlignCenter   CommandName = "align-center"
	CmdAlignRight    CommandName = "align-right"
	CmdClearFormat   CommandName = "clear-format"
)

// Command pairs an action with its value, used by the color, highlight and
// font-size commands. Toggle and alignment commands ignore Value.
type Command struct {
	Name  CommandName
	Value string
}

// TextColors is the fixed text color palette.
var TextColors = []string{
	"#000000",
	"#e60000",
	"#ff9900",
	"#008a00",
	"#0066cc",
	"#9933ff",
}

// HighlightColors is the fixed background color palette, separate from the
// text palette.
var HighlightColors = []string{
	"#ffff00",
	"#00e5ff",
	"#ff80c8",
	"#7bff7b",
	"#ffd480",
}

// FontSizes are the five named size buckets.
var FontSizes = []string{"small", "normal", "large", "xlarge", "huge"}

func inPalette(palette []string, value string) bool {
	for _, entry := range palette {
		if entry == value {
			return true
		}
	}
	return false
}

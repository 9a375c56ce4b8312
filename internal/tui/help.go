package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# Keys

| where | key | action |
|---|---|---|
| list | ` + "`a` `i` `tab`" + ` | focus the add input |
| list | ` + "`e` `enter`" + ` | edit the selected item |
| list | ` + "`d` `x` `delete`" + ` | delete the selected item |
| list | ` + "`q` `esc`" + ` | quit |
| add input | ` + "`enter`" + ` | add the typed text |
| add input | ` + "`tab` `esc` `down`" + ` | back to the list |
| editing | ` + "`enter` `ctrl+s`" + ` | save |
| editing | ` + "`esc`" + ` | cancel |
| editing | ` + "`ctrl+z`" + ` | undo back to the original text |
| editing | ` + "`up` `down`" + ` | edit the neighbouring item, dropping the draft |
| anywhere | ` + "`ctrl+c`" + ` | quit |

Press ` + "`?`" + ` to close.
`

// renderHelp renders the key table. If glamour fails the raw markdown is
// shown instead.
func renderHelp(theme string, width int) string {
	if width <= 0 {
		width = 80
	}
	style := glamour.WithAutoStyle()
	if theme == "mono" {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return strings.TrimRight(out, "\n")
}

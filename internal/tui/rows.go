package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/Makepad-fr/tada/internal/model"
)

// row adapts model.Item to bubbles/list.Item.
type row struct {
	item model.Item
}

func (r row) FilterValue() string { return r.item.Text }

func toRows(items []model.Item) []list.Item {
	out := make([]list.Item, 0, len(items))
	for _, it := range items {
		out = append(out, row{item: it})
	}
	return out
}

// rowDelegate renders one line per item. The row being edited shows the
// edit input instead of its text.
type rowDelegate struct {
	styles    Styles
	now       func() time.Time
	editingID int64
	editing   bool
	editView  string
	width     int
}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d rowDelegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	r, ok := li.(row)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = d.styles.Selected.Render(d.styles.Cursor)
	}

	if d.editing && r.item.ID == d.editingID {
		line := prefix + d.styles.Editing.Render(d.styles.Pencil) + d.editView
		fmt.Fprint(w, d.fit(line))
		return
	}

	age := ""
	if !r.item.CreatedAt.IsZero() {
		age = d.styles.Muted.Render("  " + humanize.RelTime(r.item.CreatedAt, d.now(), "ago", "from now"))
	}
	text := r.item.Text
	if d.width > 0 {
		room := d.width - ansi.StringWidth(prefix) - ansi.StringWidth(age)
		if room < 1 {
			room = 1
		}
		text = ansi.Truncate(text, room, "…")
	}
	fmt.Fprint(w, d.fit(prefix+text+age))
}

func (d rowDelegate) fit(line string) string {
	if d.width <= 0 {
		return line
	}
	return ansi.Truncate(line, d.width, "")
}

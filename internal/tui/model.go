package tui

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/app"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
)

// Options tune how the list looks.
type Options struct {
	Theme       string
	Placeholder string
	CharLimit   int
	// Now is used for item ages; defaults to time.Now.
	Now func() time.Time
}

// Model is the Bubble Tea model for a todo session. All state lives in the
// session; the model only tracks focus and the two text inputs.
type Model struct {
	session *app.Session

	list list.Model
	add  textinput.Model // always-visible add bar
	edit textinput.Model // inline edit of the selected row

	mode     mode
	showHelp bool

	charLimit int

	keys   keyMap
	styles Styles
	theme  string
	now    func() time.Time

	width, height int
}

const (
	defaultWidth  = 80
	defaultHeight = 24

	// panel border + padding on each side
	chromeWidth = 4
	// panel border, header, add bar (border + label + input), hint
	chromeHeight = 9
)

func New(s *app.Session, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.CharLimit <= 0 {
		opts.CharLimit = 200
	}
	keys := defaultKeys()
	styles := NewStyles(opts.Theme)

	l := list.New(toRows(s.Items()), rowDelegate{styles: styles, now: opts.Now}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("item", "items")
	l.Styles.HelpStyle = styles.Help
	l.Styles.PaginationStyle = styles.Help
	l.AdditionalShortHelpKeys = keys.listHelp
	l.AdditionalFullHelpKeys = keys.listHelp

	add := textinput.New()
	add.Prompt = "+ "
	add.Placeholder = opts.Placeholder
	add.CharLimit = opts.CharLimit
	add.SetValue(s.Input())

	edit := textinput.New()
	edit.Prompt = ""
	edit.CharLimit = opts.CharLimit

	m := Model{
		session:   s,
		list:      l,
		add:       add,
		edit:      edit,
		charLimit: opts.CharLimit,
		keys:      keys,
		styles:    styles,
		theme:     opts.Theme,
		now:       opts.Now,
		width:     defaultWidth,
		height:    defaultHeight,
	}
	m.resize()

	// An empty list starts in the add bar, like a fresh page would.
	if s.Len() == 0 {
		m.mode = modeAdd
		m.add.Focus()
	}
	return m
}

// Session returns the session the model mutates.
func (m Model) Session() *app.Session { return m.session }

func (m Model) Init() tea.Cmd {
	if m.mode == modeAdd {
		return textinput.Blink
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Force) {
			return m, tea.Quit
		}
		if m.showHelp {
			switch msg.String() {
			case "?", "esc", "q":
				m.showHelp = false
			}
			return m, nil
		}
		switch m.mode {
		case modeAdd:
			return m.updateAdd(msg)
		case modeEdit:
			return m.updateEdit(msg)
		default:
			return m.updateList(msg)
		}
	}

	// cursor blink and friends go to whatever has focus
	var cmd tea.Cmd
	switch m.mode {
	case modeAdd:
		m.add, cmd = m.add.Update(msg)
	case modeEdit:
		m.edit, cmd = m.edit.Update(msg)
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Add):
		return m, m.focusAdd()
	case key.Matches(msg, m.keys.Edit):
		id, ok := m.selectedID()
		if !ok {
			return m, nil
		}
		return m, m.startEdit(id)
	case key.Matches(msg, m.keys.Delete):
		id, ok := m.selectedID()
		if !ok {
			return m, nil
		}
		m.session.Delete(id)
		return m, m.syncRows()
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.session.SetInput(m.add.Value())
		if _, ok := m.session.Submit(); !ok {
			return m, nil
		}
		m.add.SetValue(m.session.Input())
		cmd := m.syncRows()
		m.list.Select(len(m.list.Items()) - 1)
		return m, cmd
	case key.Matches(msg, m.keys.Leave):
		m.focusList()
		return m, nil
	}
	var cmd tea.Cmd
	m.add, cmd = m.add.Update(msg)
	m.session.SetInput(m.add.Value())
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Save):
		m.session.Save()
		m.focusList()
		return m, m.syncRows()
	case key.Matches(msg, m.keys.Cancel):
		m.session.Cancel()
		m.focusList()
		return m, nil
	case key.Matches(msg, m.keys.Undo):
		if m.session.Undo() {
			e, _ := m.session.Editing()
			m.edit.SetValue(e.Draft)
			m.edit.CursorEnd()
		}
		return m, nil
	case key.Matches(msg, m.keys.Prev), key.Matches(msg, m.keys.Next):
		if key.Matches(msg, m.keys.Prev) {
			m.list.CursorUp()
		} else {
			m.list.CursorDown()
		}
		id, ok := m.selectedID()
		if cur, _ := m.session.Editing(); !ok || id == cur.ID {
			return m, nil
		}
		return m, m.startEdit(id)
	}
	var cmd tea.Cmd
	m.edit, cmd = m.edit.Update(msg)
	m.session.Type(m.edit.Value())
	return m, cmd
}

func (m *Model) startEdit(id int64) tea.Cmd {
	if !m.session.StartEdit(id) {
		return nil
	}
	e, _ := m.session.Editing()
	// the limit only guards new input; never cut an existing item
	m.edit.CharLimit = max(m.charLimit, utf8.RuneCountInString(e.Draft), utf8.RuneCountInString(e.Original))
	m.edit.SetValue(e.Draft)
	m.edit.CursorEnd()
	m.add.Blur()
	m.mode = modeEdit
	return m.edit.Focus()
}

func (m *Model) focusAdd() tea.Cmd {
	m.mode = modeAdd
	return m.add.Focus()
}

func (m *Model) focusList() {
	m.add.Blur()
	m.edit.Blur()
	m.edit.SetValue("")
	m.mode = modeList
}

func (m Model) selectedID() (int64, bool) {
	r, ok := m.list.SelectedItem().(row)
	if !ok {
		return 0, false
	}
	return r.item.ID, true
}

// syncRows reloads the rows from the session and keeps the cursor in range.
func (m *Model) syncRows() tea.Cmd {
	idx := m.list.Index()
	cmd := m.list.SetItems(toRows(m.session.Items()))
	if n := len(m.list.Items()); idx >= n && n > 0 {
		m.list.Select(n - 1)
	}
	return cmd
}

func (m *Model) resize() {
	w := m.width - chromeWidth
	if w < 10 {
		w = 10
	}
	h := m.height - chromeHeight
	if h < 3 {
		h = 3
	}
	m.list.SetSize(w, h)
	m.add.Width = w - 4
	m.edit.Width = w - 6
}

func (m Model) View() string {
	if m.showHelp {
		return m.styles.Panel.Render(renderHelp(m.theme, m.width-chromeWidth))
	}

	e, editing := m.session.Editing()
	m.list.SetDelegate(rowDelegate{
		styles:    m.styles,
		now:       m.now,
		editingID: e.ID,
		editing:   editing && m.mode == modeEdit,
		editView:  m.edit.View(),
		width:     m.list.Width(),
	})

	header := fmt.Sprintf("%s  %s %d",
		m.styles.Title.Render("Todo App"),
		m.styles.Accent.Render("Total"), m.session.Len(),
	)

	label := "Add a new todo"
	if m.mode == modeAdd {
		label = m.styles.Accent.Render(label)
	} else {
		label = m.styles.Muted.Render(label + " (a)")
	}
	bar := m.styles.Bar.Render(label + "\n" + m.add.View())

	hint := ""
	if m.mode == modeEdit {
		hint = m.styles.Muted.Render("enter save · esc cancel · ctrl+z undo · ↑/↓ switch")
	}

	content := lipgloss.JoinVertical(lipgloss.Left, header, bar, m.list.View(), hint)
	return m.styles.Panel.Render(content)
}

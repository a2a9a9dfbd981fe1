// Package tui is the interactive terminal shell over service.Service.
//
// The model keeps no task state of its own. Every key either changes
// presentation (cursor, input focus) or calls the service, and View renders
// from service.View.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"todo/internal/service"
	"todo/internal/todo"
)

const charLimit = 500

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
)

// Model is the bubbletea model for the list.
type Model struct {
	ctx  context.Context
	svc  service.Service
	keys KeyMap
	help help.Model

	addInput  textinput.Model
	editInput textinput.Model

	mode   mode
	cursor int
	width  int
	err    error
}

// New returns a model driving svc.
func New(ctx context.Context, svc service.Service) Model {
	add := textinput.New()
	add.Placeholder = "Add a new task..."
	add.CharLimit = charLimit
	add.Prompt = "+ "

	edit := textinput.New()
	edit.CharLimit = charLimit
	edit.Prompt = ""

	return Model{
		ctx:       ctx,
		svc:       svc,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		addInput:  add,
		editInput: edit,
	}
}

// Run runs the program until the user quits or ctx is canceled. It returns
// the last storage error, if one was still showing.
func Run(ctx context.Context, svc service.Service, out io.Writer) error {
	p := tea.NewProgram(New(ctx, svc), tea.WithContext(ctx), tea.WithOutput(out), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}

// Err returns the storage error from the last action, if any.
func (m Model) Err() error { return m.err }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.addInput.Width = max(msg.Width-8, 10)
		m.editInput.Width = max(msg.Width-14, 10)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Force) {
			return m, tea.Quit
		}
		switch m.mode {
		case modeAdd:
			return m.updateAdd(msg)
		case modeEdit:
			return m.updateEdit(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.move(1)
	case key.Matches(msg, m.keys.Filter):
		m.svc.SetFilter(m.svc.View().Filter.Next())
		m.clamp()
	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.addInput.Reset()
		cmd := m.addInput.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.current(); ok {
			m.record(m.svc.Toggle(m.ctx, t.ID))
			m.clamp()
		}
	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.current(); ok {
			m.record(m.svc.Delete(m.ctx, t.ID))
			m.clamp()
		}
	case key.Matches(msg, m.keys.Edit):
		if t, ok := m.current(); ok {
			m.svc.StartEdit(t.ID)
			m.mode = modeEdit
			m.editInput.SetValue(t.Text)
			m.editInput.CursorEnd()
			cmd := m.editInput.Focus()
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Accept):
		m.record(m.svc.Add(m.ctx, m.addInput.Value()))
		m.addInput.Reset()
		m.cursor = 0
		m.clamp()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeBrowse
		m.addInput.Blur()
		m.addInput.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return m, cmd
}

// updateEdit handles keys while a row is being renamed. Leaving the row by
// moving or switching filter counts as losing focus and commits the draft.
func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Accept):
		m.commitEdit()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.svc.CancelEdit()
		m.leaveEdit()
		return m, nil
	case msg.Type == tea.KeyUp:
		m.commitEdit()
		m.move(-1)
		return m, nil
	case msg.Type == tea.KeyDown:
		m.commitEdit()
		m.move(1)
		return m, nil
	case key.Matches(msg, m.keys.Filter):
		m.commitEdit()
		m.svc.SetFilter(m.svc.View().Filter.Next())
		m.clamp()
		return m, nil
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	m.svc.UpdateDraft(m.editInput.Value())
	return m, cmd
}

func (m *Model) commitEdit() {
	m.svc.UpdateDraft(m.editInput.Value())
	m.record(m.svc.CommitEdit(m.ctx))
	m.leaveEdit()
	m.clamp()
}

func (m *Model) leaveEdit() {
	m.mode = modeBrowse
	m.editInput.Blur()
	m.editInput.Reset()
}

func (m *Model) record(err error) {
	m.err = err
}

func (m *Model) move(delta int) {
	m.cursor += delta
	m.clamp()
}

func (m *Model) clamp() {
	n := len(m.svc.View().Tasks)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) current() (todo.Task, bool) {
	tasks := m.svc.View().Tasks
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return todo.Task{}, false
	}
	return tasks[m.cursor], true
}

// View implements tea.Model.
func (m Model) View() string {
	v := m.svc.View()

	var b strings.Builder
	b.WriteString(TitleStyle.Render("To-Do List"))
	b.WriteString("\n")

	if m.mode == modeAdd {
		b.WriteString(m.addInput.View())
	} else {
		b.WriteString(MutedStyle.Render("press a to add a task"))
	}
	b.WriteString("\n\n")

	b.WriteString(renderFilters(v.Filter))
	b.WriteString("\n\n")

	if len(v.Tasks) == 0 {
		b.WriteString(MutedStyle.Render("no tasks"))
		b.WriteString("\n")
	}
	for i, t := range v.Tasks {
		b.WriteString(m.renderRow(i, t, v.Edit))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(MutedStyle.Render(fmt.Sprintf("%d active · %d completed", v.Active, v.Completed)))
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render("error: " + m.err.Error()))
	}

	body := FrameStyle.Render(b.String())
	var keys help.KeyMap = browseKeys(m.keys)
	if m.mode != modeBrowse {
		keys = inputKeys(m.keys)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.help.View(keys))
}

func (m Model) renderRow(i int, t todo.Task, e *service.EditState) string {
	pointer := "  "
	if i == m.cursor && m.mode != modeAdd {
		pointer = CursorStyle.Render("> ")
	}

	box := "[ ]"
	if t.Completed {
		box = "[x]"
	}

	if m.mode == modeEdit && e != nil && e.TaskID == t.ID {
		return pointer + box + " " + m.editInput.View()
	}
	if t.Completed {
		return pointer + box + " " + DoneStyle.Render(t.Text)
	}
	return pointer + box + " " + TaskStyle.Render(t.Text)
}

func renderFilters(current todo.Filter) string {
	parts := make([]string, 0, len(todo.Filters))
	for _, f := range todo.Filters {
		label := strings.ToUpper(string(f[:1])) + string(f[1:])
		if f == current {
			parts = append(parts, FilterActiveStyle.Render(label))
		} else {
			parts = append(parts, FilterIdleStyle.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}

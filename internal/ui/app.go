package ui

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/mosdash/internal/rotation"
	"github.com/five82/mosdash/internal/state"
)

// Controller rotates tiles on behalf of the UI.
type Controller interface {
	Click(slot int) (rotation.Assignment, error)
	Slots() int
}

// Options configures the UI.
type Options struct {
	Context    context.Context
	Store      *state.Store
	Controller Controller
	UITick     time.Duration
	ThemeName  string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	store      *state.Store
	controller Controller
	uiTick     time.Duration

	// UI state
	keys     keyMap
	help     help.Model
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool

	// Splash state
	splash     int
	splashDone bool

	// Grid state
	cursor int
	notice string

	// Data state
	snapshot state.Snapshot
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	uiTick := opts.UITick
	if uiTick == 0 {
		uiTick = DefaultUIInterval
	}

	m := Model{
		ctx:        ctx,
		store:      opts.Store,
		controller: opts.Controller,
		uiTick:     uiTick,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		theme:      GetTheme(opts.ThemeName),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(m.uiTick),
		splashCmd(),
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tickMsg:
		var cmds []tea.Cmd
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		cmds = append(cmds, tickCmd(m.uiTick))
		return m, tea.Batch(cmds...)

	case splashMsg:
		m.splash++
		if m.splash > splashSteps {
			m.splashDone = true
			return m, nil
		}
		return m, splashCmd()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if !m.splashDone {
		return m.renderSplash()
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) && msg.String() != "esc" {
		return m, tea.Quit
	}

	// The splash swallows everything except quit.
	if !m.splashDone {
		return m, nil
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-gridColumns)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(gridColumns)
	case key.Matches(msg, m.keys.Left):
		if m.cursor%gridColumns > 0 {
			m.moveCursor(-1)
		}
	case key.Matches(msg, m.keys.Right):
		if m.cursor%gridColumns < gridColumns-1 {
			m.moveCursor(1)
		}

	case key.Matches(msg, m.keys.Rotate):
		m.rotate(m.cursor)

	case key.Matches(msg, m.keys.RotateSlot):
		n, err := strconv.Atoi(msg.String())
		if err == nil {
			m.cursor = n - 1
			m.rotate(n - 1)
		}
	}

	return m, nil
}

// handleMouse rotates the tile under a left click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.splashDone || m.showHelp {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	slot, ok := hitTest(msg.X, msg.Y, m.slotCount())
	if !ok {
		return m, nil
	}
	m.cursor = slot
	m.rotate(slot)
	return m, nil
}

// moveCursor shifts the selection by delta, staying on the grid.
func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= m.slotCount() {
		return
	}
	m.cursor = next
}

// rotate clicks slot and pulls the updated tiles straight from the store.
func (m *Model) rotate(slot int) {
	if m.controller == nil {
		return
	}
	if _, err := m.controller.Click(slot); err != nil {
		log.Printf("rotate tile %d: %v", slot+1, err)
		m.notice = err.Error()
		return
	}
	m.notice = ""
	m.refresh()
}

func (m *Model) refresh() {
	if m.store != nil {
		m.snapshot = m.store.Snapshot()
	}
}

func (m Model) slotCount() int {
	if m.controller != nil {
		return m.controller.Slots()
	}
	return len(m.snapshot.Tiles)
}

// Messages

type tickMsg time.Time

type splashMsg struct{}

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func splashCmd() tea.Cmd {
	return tea.Tick(splashStep, func(time.Time) tea.Msg {
		return splashMsg{}
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(m.ctx),
	)
	_, err := p.Run()
	return err
}

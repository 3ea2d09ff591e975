package ui

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/mosdash/internal/palette"
	"github.com/five82/mosdash/internal/rotation"
	"github.com/five82/mosdash/internal/state"
	"github.com/five82/mosdash/internal/widget"
)

func newTestModel(t *testing.T) (Model, *state.Store) {
	t.Helper()
	pool, err := rotation.New(palette.Reference(), rotation.DefaultSlots, rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatalf("rotation.New: %v", err)
	}
	store := &state.Store{}
	controller := widget.NewController(pool, store)
	controller.Paint()

	m := New(Options{Store: store, Controller: controller})
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m.splashDone = true
	return m, store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestNew_LoadsInitialSnapshot(t *testing.T) {
	m, _ := newTestModel(t)
	if len(m.snapshot.Tiles) != rotation.DefaultSlots {
		t.Fatalf("snapshot has %d tiles, want %d", len(m.snapshot.Tiles), rotation.DefaultSlots)
	}
	if m.theme.Name != "Nightfox" {
		t.Fatalf("theme = %q, want Nightfox", m.theme.Name)
	}
}

func TestCursorStaysOnGrid(t *testing.T) {
	m, _ := newTestModel(t)

	steps := []struct {
		msg  tea.KeyMsg
		want int
	}{
		{tea.KeyMsg{Type: tea.KeyRight}, 1},
		{tea.KeyMsg{Type: tea.KeyDown}, 4},
		{runes("h"), 3},
		{tea.KeyMsg{Type: tea.KeyLeft}, 3}, // left edge
		{runes("k"), 0},
		{tea.KeyMsg{Type: tea.KeyUp}, 0}, // top edge
		{runes("l"), 1},
		{runes("l"), 2},
		{runes("l"), 2}, // right edge does not wrap
		{runes("j"), 5},
		{runes("j"), 8},
		{runes("j"), 8}, // bottom edge
	}
	for i, step := range steps {
		m = update(t, m, step.msg)
		if m.cursor != step.want {
			t.Fatalf("step %d (%s): cursor = %d, want %d", i, step.msg, m.cursor, step.want)
		}
	}
}

func TestEnterRotatesSelectedTile(t *testing.T) {
	m, store := newTestModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	before := m.snapshot.Tiles[3]

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.snapshot.Clicks != 1 {
		t.Fatalf("clicks = %d, want 1", m.snapshot.Clicks)
	}
	if m.snapshot.Tiles[3].Color == before.Color {
		t.Fatal("selected tile kept its colour after rotation")
	}
	if got := store.Snapshot().Tiles[3]; got != m.snapshot.Tiles[3] {
		t.Fatalf("model tile %+v out of sync with store %+v", m.snapshot.Tiles[3], got)
	}
}

func TestDigitRotatesThatTile(t *testing.T) {
	m, _ := newTestModel(t)
	before := m.snapshot.Tiles

	m = update(t, m, runes("5"))

	if m.cursor != 4 {
		t.Fatalf("cursor = %d, want 4", m.cursor)
	}
	if m.snapshot.Clicks != 1 {
		t.Fatalf("clicks = %d, want 1", m.snapshot.Clicks)
	}
	for i := range before {
		changed := m.snapshot.Tiles[i].Color != before[i].Color
		if changed != (i == 4) {
			t.Fatalf("tile %d changed = %v, want only tile 4 to change", i, changed)
		}
	}
}

func TestMouseClickRotatesHitTile(t *testing.T) {
	m, _ := newTestModel(t)
	before := m.snapshot.Tiles[5]

	x := gridLeft + 2*(tileWidth+tileGap) + 1
	y := gridTop + (tileHeight + tileGap) + 1
	m = update(t, m, leftClick(x, y))

	if m.cursor != 5 {
		t.Fatalf("cursor = %d, want 5", m.cursor)
	}
	if m.snapshot.Tiles[5].Color == before.Color {
		t.Fatal("clicked tile kept its colour")
	}
	if m.snapshot.Clicks != 1 {
		t.Fatalf("clicks = %d, want 1", m.snapshot.Clicks)
	}
}

func TestMouseIgnoresGapsAndOtherButtons(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, leftClick(gridLeft+tileWidth, gridTop))
	m = update(t, m, tea.MouseMsg{X: gridLeft, Y: gridTop, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: gridLeft, Y: gridTop, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})

	if m.snapshot.Clicks != 0 {
		t.Fatalf("clicks = %d, want 0", m.snapshot.Clicks)
	}
}

func TestSplashProgression(t *testing.T) {
	m, _ := newTestModel(t)
	m.splashDone = false

	if got := m.View(); !strings.Contains(got, "Ostec-group") {
		t.Fatalf("splash view = %q, want company name", got)
	}

	// Input is ignored while the splash is up.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.snapshot.Clicks != 0 {
		t.Fatal("tile rotated during splash")
	}

	for step := 1; step <= splashSteps; step++ {
		m = update(t, m, splashMsg{})
		if m.splashDone {
			t.Fatalf("splash closed at step %d", step)
		}
		if want := splashLabel(step); !strings.Contains(m.View(), want) {
			t.Fatalf("step %d view missing %q", step, want)
		}
	}

	next, cmd := m.Update(splashMsg{})
	m = next.(Model)
	if !m.splashDone {
		t.Fatal("splash still shown after the last step")
	}
	if cmd != nil {
		t.Fatal("splash scheduled another step after closing")
	}
	if strings.Contains(m.View(), "Ostec-group") {
		t.Fatal("main view still shows the splash")
	}
}

func TestSplashLabel(t *testing.T) {
	cases := map[int]string{
		0: "Ostec-group",
		1: "Ostec-group.",
		2: "Ostec-group..",
		3: "Ostec-group...",
		4: "Ostec-group",
	}
	for step, want := range cases {
		if got := splashLabel(step); got != want {
			t.Fatalf("splashLabel(%d) = %q, want %q", step, got, want)
		}
	}
}

func TestHelpOverlayToggles(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, runes("?"))
	if !m.showHelp {
		t.Fatal("help not shown after ?")
	}
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatal("help view missing title")
	}
	if !strings.Contains(m.View(), "[Nightfox] Kanagawa Slate") {
		t.Fatalf("help view missing theme list:\n%s", m.View())
	}

	// Any key closes help without acting on it.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.showHelp {
		t.Fatal("help still shown after a key press")
	}
	if m.snapshot.Clicks != 0 {
		t.Fatal("key that closed help also rotated a tile")
	}
}

func TestCycleTheme(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, runes("T"))
	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", m.theme.Name)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		m, _ := newTestModel(t)
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%s: no command returned", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: command did not quit", msg)
		}
	}
}

type failingController struct{}

func (failingController) Click(int) (rotation.Assignment, error) {
	return rotation.Assignment{}, errors.New("reserve is empty")
}

func (failingController) Slots() int { return rotation.DefaultSlots }

func TestRotateErrorShowsNotice(t *testing.T) {
	m := New(Options{Store: &state.Store{}, Controller: failingController{}})
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m.splashDone = true

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.notice != "reserve is empty" {
		t.Fatalf("notice = %q", m.notice)
	}
	if !strings.Contains(m.View(), "reserve is empty") {
		t.Fatal("notice not rendered")
	}
}

func TestMainViewShowsReadingsOnSeparateLines(t *testing.T) {
	m, store := newTestModel(t)
	store.OnTimeUpdated("12:34", true)
	store.OnTemperatureUpdated(widget.NotAvailable, "Ошибка: Все API ключи не сработали.")
	m = update(t, m, snapshotMsg(store.Snapshot()))

	view := m.View()
	for _, want := range []string{
		widget.TimeLine("12:34"),
		widget.TemperatureLine(widget.NotAvailable),
		"Ошибка: Все API ключи не сработали.",
		widget.ClicksLine(0),
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}

	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, "Текущая температура") && strings.Contains(line, "Ошибка") {
			t.Fatalf("temperature and error share a line: %q", line)
		}
	}
}

func TestMainViewStaleSuffixShowsLastSuccess(t *testing.T) {
	m, _ := newTestModel(t)
	last := time.Date(2024, 1, 2, 10, 1, 5, 0, time.UTC)
	m.snapshot.Time = state.Reading{
		Text:                "N/A",
		LastUpdated:         last,
		ConsecutiveFailures: 2,
	}

	view := m.View()
	if !strings.Contains(view, "(обновлено 10:01:05)") {
		t.Fatalf("view missing last success time:\n%s", view)
	}
	if !strings.Contains(view, "stale") {
		t.Fatalf("header missing stale badge:\n%s", view)
	}
}

func TestMainViewStaleWithoutSuccess(t *testing.T) {
	m, _ := newTestModel(t)
	m.snapshot.Temperature = state.Reading{Text: "N/A", ConsecutiveFailures: 3}

	if view := m.View(); !strings.Contains(view, "(нет данных)") {
		t.Fatalf("view missing no-data suffix:\n%s", view)
	}
}

func TestMainViewSingleFailureHasNoSuffix(t *testing.T) {
	m, _ := newTestModel(t)
	m.snapshot.Time = state.Reading{Text: "N/A", LastUpdated: time.Now(), ConsecutiveFailures: 1}

	if view := m.View(); strings.Contains(view, "обновлено") || strings.Contains(view, "stale") {
		t.Fatalf("suffix shown after one failure:\n%s", view)
	}
}

func TestMainViewPendingReadings(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()
	if !strings.Contains(view, widget.TimeLine(pending)) {
		t.Fatalf("view missing pending time line:\n%s", view)
	}
}

func TestGridStartsAtGridTop(t *testing.T) {
	m, _ := newTestModel(t)
	lines := strings.Split(m.View(), "\n")
	if len(lines) <= gridTop {
		t.Fatalf("view has only %d lines", len(lines))
	}
	if !strings.Contains(lines[gridTop+tileHeight/2], m.snapshot.Tiles[1].Label) {
		t.Fatalf("row %d does not hold the first tile row:\n%s", gridTop+tileHeight/2, strings.Join(lines, "\n"))
	}
}

func TestReadingStyleWarnsOnFailedReading(t *testing.T) {
	m, _ := newTestModel(t)

	cases := []struct {
		name    string
		reading state.Reading
		want    string
	}{
		{"pending", state.Reading{}, m.theme.Text},
		{"value", state.Reading{Text: "12:00", HasValue: true}, m.theme.Text},
		{"failed", state.Reading{Text: "N/A", ConsecutiveFailures: 1}, m.theme.Warning},
	}
	for _, tc := range cases {
		got := m.readingStyle(tc.reading).GetForeground()
		if got != lipgloss.Color(tc.want) {
			t.Fatalf("%s: foreground = %v, want %s", tc.name, got, tc.want)
		}
	}
}

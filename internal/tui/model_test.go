package tui

import (
	"regexp"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/uhey22e/matrix-rain/internal/palette"
)

var ansiRE = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

func testConfig(t *testing.T, text string, speed int) Config {
	t.Helper()
	p, err := palette.Resolve(palette.DefaultName)
	if err != nil {
		t.Fatalf("Resolve(default): %v", err)
	}
	return Config{Text: text, Palette: p, Speed: speed, Seed: 42}
}

func sized(t *testing.T, cfg Config, w, h int) *Model {
	t.Helper()
	m := NewModel(cfg)
	if _, cmd := m.Update(tea.WindowSizeMsg{Width: w, Height: h}); cmd != nil {
		t.Fatalf("resize should not emit a command")
	}
	return m
}

func tick(m *Model) {
	m.Update(tickMsg(time.Now()))
}

func TestResize_ReplacesGrid(t *testing.T) {
	t.Parallel()

	m := sized(t, testConfig(t, "HI", 5), 20, 10)
	if w, h := m.grid.Size(); w != 20 || h != 10 {
		t.Fatalf("grid = (%d, %d), want (20, 10)", w, h)
	}

	for i := 0; i < 10; i++ {
		tick(m)
	}
	m.Update(tea.WindowSizeMsg{Width: 33, Height: 7})
	if w, h := m.grid.Size(); w != 33 || h != 7 {
		t.Fatalf("grid after resize = (%d, %d), want (33, 7)", w, h)
	}
	if m.grid.Occupied() != 0 {
		t.Fatalf("resize must replace the grid, found %d surviving cells", m.grid.Occupied())
	}
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	keys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	}
	for _, key := range keys {
		m := sized(t, testConfig(t, "HI", 5), 20, 10)
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: expected tea.QuitMsg, got %T", key, cmd())
		}
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	t.Parallel()

	m := sized(t, testConfig(t, "HI", 5), 20, 10)
	for _, r := range "axz 1" {
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		if cmd != nil {
			t.Fatalf("key %q should be ignored", r)
		}
	}
}

func TestTick_AdvancesRain(t *testing.T) {
	t.Parallel()

	m := sized(t, testConfig(t, "HI", 10), 40, 12)
	for i := 0; i < 5; i++ {
		tick(m)
	}
	if m.grid.Occupied() == 0 {
		t.Fatalf("expected spawns after 5 ticks at top speed")
	}
}

func TestSpeedZero_IsStatic(t *testing.T) {
	t.Parallel()

	m := sized(t, testConfig(t, "HI", 0), 40, 12)
	before := m.View()
	for i := 0; i < 10; i++ {
		tick(m)
		if m.grid.Occupied() != 0 {
			t.Fatalf("speed 0 must never spawn")
		}
	}
	if got := m.View(); got != before {
		t.Fatalf("speed 0 frame changed across ticks")
	}
}

func TestTick_SchedulesNextFrame(t *testing.T) {
	t.Parallel()

	m := sized(t, testConfig(t, "HI", 5), 20, 10)
	_, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatalf("tick must schedule the next frame")
	}
}

func TestView_CentersOverlay(t *testing.T) {
	t.Parallel()

	// Speed 0 keeps the background empty so the frame is fully deterministic.
	m := sized(t, testConfig(t, "HI", 0), 20, 10)
	lines := strings.Split(stripANSI(m.View()), "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 rows, got %d", len(lines))
	}

	// "HI" is 7 wide, 5 tall: anchored at (6, 2) in a 20x10 terminal.
	want := []string{
		"# # ###",
		"# #  # ",
		"###  # ",
		"# #  # ",
		"# # ###",
	}
	for i, row := range want {
		got := lines[2+i][6:13]
		if got != row {
			t.Errorf("overlay row %d = %q, want %q", i, got, row)
		}
	}
	for _, y := range []int{0, 1, 7, 8, 9} {
		if strings.ContainsRune(lines[y], '#') {
			t.Errorf("row %d should hold no overlay pixels: %q", y, lines[y])
		}
	}
}

func TestView_Idempotent(t *testing.T) {
	t.Parallel()

	m := sized(t, testConfig(t, "HI", 5), 20, 10)
	for i := 0; i < 3; i++ {
		tick(m)
	}
	if m.View() != m.View() {
		t.Fatalf("recomposing the same state must yield identical output")
	}
}

func TestView_ClipsOversizedOverlay(t *testing.T) {
	t.Parallel()

	m := sized(t, testConfig(t, "HELLO WORLD", 5), 5, 3)
	tick(m)
	lines := strings.Split(stripANSI(m.View()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(lines))
	}
	for i, line := range lines {
		if len([]rune(line)) != 5 {
			t.Fatalf("row %d width = %d, want 5 (clipped)", i, len([]rune(line)))
		}
	}
}

func TestView_NotReady(t *testing.T) {
	t.Parallel()

	m := NewModel(testConfig(t, "HI", 5))
	if m.View() != "" {
		t.Fatalf("view before the first size report should be empty")
	}
}

func TestFrameDuration_ScalesWithSpeed(t *testing.T) {
	t.Parallel()

	prev := time.Duration(1<<62 - 1)
	for speed := 1; speed <= 10; speed++ {
		m := sized(t, testConfig(t, "HI", speed), 20, 10)
		d := m.frameDuration()
		if d <= 0 {
			t.Fatalf("speed %d: non-positive frame interval", speed)
		}
		if d > prev {
			t.Fatalf("speed %d: interval %v longer than slower speed's %v", speed, d, prev)
		}
		prev = d
	}
}

package tui

import (
	"bytes"
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/uhey22e/matrix-rain/internal/overlay"
	"github.com/uhey22e/matrix-rain/internal/palette"
	"github.com/uhey22e/matrix-rain/internal/rain"
)

// Config is the immutable per-run configuration handed over by cmd.
type Config struct {
	Text    string
	Palette palette.Palette
	Speed   int // 0 (static) .. rain.MaxSpeed
	Seed    uint64
}

// Model drives the fixed-rate tick loop: resize reports replace the grid,
// tick messages advance the rain, View composites the overlay on top.
type Model struct {
	cfg Config
	rng *rand.Rand

	ready bool
	w, h  int

	grid   *rain.Grid
	block  overlay.Block
	ax, ay int

	spawnChance float64

	viewBuf bytes.Buffer

	// Pre-rendered styled cells; styling per frame would dominate the tick.
	overlayCell string
	rainCells   []map[rune]string // [color index][rune]
}

func NewModel(cfg Config) *Model {
	m := &Model{
		cfg:         cfg,
		rng:         rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		block:       overlay.New(cfg.Text),
		spawnChance: rain.SpawnChance(cfg.Speed),
	}
	m.buildCells()
	return m
}

var overlayStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff"))

func (m *Model) buildCells() {
	m.overlayCell = overlayStyle.Render("#")
	m.rainCells = make([]map[rune]string, len(m.cfg.Palette))
	for i := range m.cfg.Palette {
		st := lipgloss.NewStyle().Foreground(lipgloss.Color(m.cfg.Palette.Hex(i)))
		if i == 0 {
			// The freshest cells are the heads of the drops.
			st = st.Bold(true)
		}
		cells := make(map[rune]string, len(rain.Charset))
		for _, r := range rain.Charset {
			cells[r] = st.Render(string(r))
		}
		m.rainCells[i] = cells
	}
}

type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		d = time.Second / 30
	}
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Init() tea.Cmd {
	return tickCmd(m.frameDuration())
}

func (m *Model) frameDuration() time.Duration {
	if !m.ready || m.cfg.Speed == 0 {
		// Nothing moves; redraw slowly, just enough to track resizes.
		return time.Second / 15
	}
	return time.Second / time.Duration(4+2*m.cfg.Speed)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.w = msg.Width
		m.h = msg.Height
		m.rebuild()
		return m, nil
	case tickMsg:
		if m.ready && m.cfg.Speed > 0 {
			m.grid.Step(m.spawnChance)
		}
		return m, tickCmd(m.frameDuration())
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	default:
		return m, nil
	}
}

// rebuild replaces the grid wholesale at the reported size and recomputes
// the overlay anchor. No cell survives a resize.
func (m *Model) rebuild() {
	m.grid = rain.NewGrid(m.w, m.h, m.rng)
	m.ax, m.ay = m.block.Anchor(m.w, m.h)
	m.ready = m.w > 0 && m.h > 0
}

func (m *Model) View() string {
	if !m.ready {
		return ""
	}

	m.viewBuf.Reset()
	b := &m.viewBuf
	for y := 0; y < m.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < m.w; x++ {
			if m.block.At(x-m.ax, y-m.ay) {
				b.WriteString(m.overlayCell)
				continue
			}
			c := m.grid.At(x, y)
			if c.Empty() {
				b.WriteByte(' ')
				continue
			}
			idx := m.cfg.Palette.ColorIndex(c.Age)
			if cell, ok := m.rainCells[idx][c.Rune]; ok {
				b.WriteString(cell)
			} else {
				b.WriteRune(c.Rune)
			}
		}
	}
	return b.String()
}

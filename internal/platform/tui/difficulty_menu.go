package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	menuCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

// presetDescription summarizes the timing a preset produces on top of base.
func presetDescription(base config.BlocksConfig, preset config.DifficultyPreset) string {
	cfg := base
	config.ApplyBlocksPreset(&cfg, preset)
	if !cfg.Difficulty.Enabled {
		return fmt.Sprintf("%dms forever", cfg.Timing.DropIntervalMS)
	}
	return fmt.Sprintf("%dms start, speeds up every %d points", cfg.Timing.DropIntervalMS, cfg.Timing.SpeedupEvery)
}

// DifficultyModel lets users pick a difficulty preset before playing.
type DifficultyModel struct {
	presets   []config.DifficultyPreset
	base      config.BlocksConfig
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  config.DifficultyPreset
	choosing  bool
	quitting  bool
}

// NewDifficultyModel creates a selector with the cursor on normal. base is
// the loaded configuration the chosen preset will be applied to.
func NewDifficultyModel(width, height int, base config.BlocksConfig) DifficultyModel {
	presets := config.Presets()
	cursor := 0
	for i, p := range presets {
		if p == config.DifficultyNormal {
			cursor = i
		}
	}
	return DifficultyModel{
		presets:   presets,
		base:      base,
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selected = m.presets[m.cursor]
		return m, tea.Quit
	}
	return m, nil
}

// View renders the preset list.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText("B L O C K S", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		line := fmt.Sprintf("  %-7s %s", p, presetDescription(m.base, p))
		if i == m.cursor {
			line = "> " + line[2:]
			b.WriteString(menuCursorStyle.Render(centerText(line, m.width)))
		} else {
			b.WriteString(centerText(line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc/Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen preset, or false if still choosing.
func (m DifficultyModel) Selected() (config.DifficultyPreset, bool) {
	if m.choosing {
		return "", false
	}
	return m.selected, true
}

// IsQuitting returns true if the user left without choosing.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// RunDifficultySelector shows the selector and returns the chosen preset.
// ok is false if the user quit.
func RunDifficultySelector(cfg core.RuntimeConfig, base config.BlocksConfig) (preset config.DifficultyPreset, ok bool, err error) {
	p := tea.NewProgram(
		NewDifficultyModel(cfg.ScreenW, cfg.ScreenH, base),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isModel := finalModel.(DifficultyModel)
	if !isModel || m.IsQuitting() {
		return "", false, nil
	}

	preset, ok = m.Selected()
	return preset, ok, nil
}

// centerText pads text on the left so it sits in the middle of width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

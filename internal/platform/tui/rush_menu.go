package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkotenko/clickrush/internal/config"
	"github.com/dkotenko/clickrush/internal/core"
)

// RushSelection holds the user's selection from the round setup menu.
type RushSelection struct {
	DurationSecs int
}

type rushMenuOption struct {
	label  string
	preset config.DurationPreset
	custom bool
}

// RushSetupModel lets users choose the round duration for Target Rush.
type RushSetupModel struct {
	options        []rushMenuOption
	cursor         int
	inCustom       bool
	customDuration int
	width          int
	height         int
	cfg            config.RushConfig
	keyMapper      *KeyMapper
	selection      RushSelection
	choosing       bool
	quitting       bool
	back           bool
}

// NewRushSetupModel creates a new round setup model.
func NewRushSetupModel(width, height int, cfg config.RushConfig) RushSetupModel {
	options := []rushMenuOption{
		{label: "Blitz (10 seconds)", preset: config.PresetBlitz},
		{label: "Classic (30 seconds)", preset: config.PresetClassic},
		{label: "Marathon (60 seconds)", preset: config.PresetMarathon},
		{label: "Custom...", custom: true},
	}

	return RushSetupModel{
		options:        options,
		cursor:         1, // Classic is the default
		customDuration: cfg.Round.DefaultDuration,
		width:          width,
		height:         height,
		cfg:            cfg,
		keyMapper:      NewKeyMapper(),
		choosing:       true,
	}
}

// Init initializes the model.
func (m RushSetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m RushSetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m RushSetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inCustom {
		return m.handleCustomKey(action)
	}
	return m.handlePresetKey(action)
}

func (m RushSetupModel) handlePresetKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		opt := m.options[m.cursor]
		if opt.custom {
			m.inCustom = true
			return m, nil
		}
		m.choosing = false
		m.selection = RushSelection{DurationSecs: m.cfg.ClampDuration(config.DurationForPreset(opt.preset))}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m RushSetupModel) handleCustomKey(action MenuAction) (tea.Model, tea.Cmd) {
	step := m.cfg.Round.DurationStep

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.customDuration = m.cfg.ClampDuration(m.customDuration + step)
	case MenuActionDown:
		m.customDuration = m.cfg.ClampDuration(m.customDuration - step)
	case MenuActionSelect:
		m.choosing = false
		m.selection = RushSelection{DurationSecs: m.customDuration}
		return m, tea.Quit
	case MenuActionBack:
		m.inCustom = false
	}

	return m, nil
}

// View renders the round setup.
func (m RushSetupModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inCustom {
		return m.viewCustom()
	}
	return m.viewPresets()
}

func (m RushSetupModel) viewPresets() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("T A R G E T   R U S H", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select round duration:", m.width))
	b.WriteString("\n\n")

	for i, opt := range m.options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, opt.label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m RushSetupModel) viewCustom() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("CUSTOM DURATION", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("< %d seconds >", m.customDuration), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Range: %d-%d seconds", m.cfg.Round.MinDuration, m.cfg.Round.MaxDuration), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Up/Down: Adjust  |  Enter: Confirm  |  Esc: Back", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m RushSetupModel) Selected() *RushSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m RushSetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m RushSetupModel) WantsBack() bool {
	return m.back
}

// RunRushSetup runs the round setup menu and returns the selection. A nil
// selection means the user backed out or quit.
func RunRushSetup(cfg core.RuntimeConfig, rushCfg config.RushConfig) (*RushSelection, core.RuntimeConfig, error) {
	model := NewRushSetupModel(cfg.ScreenW, cfg.ScreenH, rushCfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(RushSetupModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}

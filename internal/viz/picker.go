package viz

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/pfx3d/internal/playback"
	"github.com/san-kum/pfx3d/internal/telemetry"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	keyHint = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
)

const (
	stateMenu = iota
	stateConfig
	stateLive
)

var settingNames = []string{"camera", "loop", "outfield", "restart delay"}

// Picker chooses which pitches to play and how, then hands over to a
// Player.
type Picker struct {
	state, cursor int
	pitches       []telemetry.Pitch
	labels        []string
	chosen        []bool

	opts    PlayerOptions
	loop    bool
	seqOpts []playback.Option

	settingCursor int
	err           error
	live          *Player
}

// NewPicker lists pitches with every pitch chosen.
func NewPicker(pitches []telemetry.Pitch, opts PlayerOptions, loop bool, seqOpts ...playback.Option) *Picker {
	chosen := make([]bool, len(pitches))
	for i := range chosen {
		chosen[i] = true
	}
	if opts.Camera == "" {
		opts.Camera = "catcher"
	}
	return &Picker{
		pitches: pitches,
		labels:  telemetry.Labels(pitches),
		chosen:  chosen,
		opts:    opts,
		loop:    loop,
		seqOpts: seqOpts,
	}
}

func (m *Picker) Init() tea.Cmd { return nil }

func (m *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == stateLive {
		_, cmd := m.live.Update(msg)
		return m, cmd
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch m.state {
		case stateMenu:
			return m.menuKey(msg)
		case stateConfig:
			return m.configKey(msg)
		}
	}
	return m, nil
}

func (m *Picker) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.pitches)-1 {
			m.cursor++
		}
	case " ", "x":
		if len(m.chosen) > 0 {
			m.chosen[m.cursor] = !m.chosen[m.cursor]
		}
	case "a":
		all := !allTrue(m.chosen)
		for i := range m.chosen {
			m.chosen[i] = all
		}
	case "enter":
		m.state, m.settingCursor, m.err = stateConfig, 0, nil
	}
	return m, nil
}

func (m *Picker) configKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.state = stateMenu
	case "up", "k":
		if m.settingCursor > 0 {
			m.settingCursor--
		}
	case "down", "j":
		if m.settingCursor < len(settingNames)-1 {
			m.settingCursor++
		}
	case "left", "h":
		m.adjust(-1)
	case "right", "l", " ":
		m.adjust(1)
	case "s", "enter":
		return m, m.start()
	}
	return m, nil
}

func (m *Picker) adjust(dir int) {
	switch settingNames[m.settingCursor] {
	case "camera":
		names := CameraPresets()
		i := 0
		for j, n := range names {
			if n == m.opts.Camera {
				i = j
			}
		}
		m.opts.Camera = names[(i+dir+len(names))%len(names)]
	case "loop":
		m.loop = !m.loop
	case "outfield":
		m.opts.Outfield = !m.opts.Outfield
	case "restart delay":
		m.opts.RestartDelay = max(0, m.opts.RestartDelay+time.Duration(dir)*100*time.Millisecond)
	}
}

// Selected is the chosen pitches in feed order.
func (m *Picker) Selected() []telemetry.Pitch {
	var out []telemetry.Pitch
	for i, p := range m.pitches {
		if m.chosen[i] {
			out = append(out, p)
		}
	}
	return out
}

func (m *Picker) start() tea.Cmd {
	opts := append([]playback.Option{}, m.seqOpts...)
	seq := playback.NewSequence(append(opts, playback.WithLooping(m.loop))...)
	if errs := seq.Load(m.Selected()); seq.Len() == 0 {
		m.err = errors.Join(errs...)
		return nil
	}
	live, err := NewPlayer(seq, m.opts)
	if err != nil {
		m.err = err
		return nil
	}
	m.live, m.state = live, stateLive
	return live.Init()
}

func (m *Picker) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateConfig:
		return m.viewConfig()
	case stateLive:
		return m.live.View()
	}
	return ""
}

func (m *Picker) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + cyan.Bold(true).Render("PFX3D") + "\n    " + dim.Render("choose pitches") + "\n    " + dim.Render("─────────────────────────") + "\n\n")
	for i, label := range m.labels {
		box := "[ ]"
		if m.chosen[i] {
			box = "[x]"
		}
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s %s\n", cyan.Bold(true).Render("▸"), magenta.Render(box), white.Render(label)))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s\n", dimmer.Render(box), dim.Render(label)))
		}
	}
	b.WriteString("\n    " + keyHint.Render("j/k") + dim.Render(" navigate  ") + keyHint.Render("space") + dim.Render(" toggle  ") +
		keyHint.Render("a") + dim.Render(" all  ") + keyHint.Render("enter") + dim.Render(" next  ") + keyHint.Render("q") + dim.Render(" quit") + "\n")
	return b.String()
}

func (m *Picker) viewConfig() string {
	var b strings.Builder
	b.WriteString("\n\n    " + cyan.Bold(true).Render("PLAYBACK") + "\n    " + dim.Render(fmt.Sprintf("%d pitches chosen", len(m.Selected()))) + "\n    " + dim.Render("─────────────────────────") + "\n\n")
	for i, name := range settingNames {
		val := m.settingValue(name)
		if i == m.settingCursor {
			b.WriteString(fmt.Sprintf("    %s %s %s\n", cyan.Bold(true).Render("▸"), white.Render(fmt.Sprintf("%-14s", name)), magenta.Bold(true).Render(val)))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s\n", dim.Render(fmt.Sprintf("%-14s", name)), dimmer.Render(val)))
		}
	}
	if m.err != nil {
		b.WriteString("\n    " + lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444")).Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n    " + keyHint.Render("j/k") + dim.Render(" select  ") + keyHint.Render("h/l") + dim.Render(" adjust  ") +
		keyHint.Render("s") + dim.Render(" start  ") + keyHint.Render("esc") + dim.Render(" back") + "\n")
	return b.String()
}

func (m *Picker) settingValue(name string) string {
	switch name {
	case "camera":
		return m.opts.Camera
	case "loop":
		return onOff(m.loop)
	case "outfield":
		return onOff(m.opts.Outfield)
	case "restart delay":
		return m.opts.RestartDelay.String()
	}
	return ""
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func allTrue(bs []bool) bool {
	for _, b := range bs {
		if !b {
			return false
		}
	}
	return true
}

// RunPicker runs the picker and the player it starts.
func RunPicker(pitches []telemetry.Pitch, opts PlayerOptions, loop bool, seqOpts ...playback.Option) error {
	_, err := tea.NewProgram(NewPicker(pitches, opts, loop, seqOpts...), tea.WithAltScreen()).Run()
	return err
}

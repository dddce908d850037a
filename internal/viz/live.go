package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"go.uber.org/zap"

	"github.com/san-kum/pfx3d/internal/log"
	"github.com/san-kum/pfx3d/internal/playback"
	"github.com/san-kum/pfx3d/internal/telemetry"
)

const (
	width           = 80
	height          = 24
	defaultFPS      = 60
	historyCapacity = 600
)

type TickMsg time.Time

// PlayerOptions configures a Player. Zero values select defaults.
type PlayerOptions struct {
	Title         string
	Width, Height int // canvas cells
	FPS           int
	Camera        string
	Theme         string
	Outfield      bool
	RestartDelay  time.Duration
	Logger        *zap.Logger
}

// Player is the Bubble Tea model of the live view. Every TickMsg steps
// the sequence once and the player draws the resulting frame.
type Player struct {
	seq    *playback.Sequence
	opts   PlayerOptions
	labels []string

	canvas     *Canvas
	camera     Camera
	cameraName string
	theme      Theme
	outfield   bool
	showHelp   bool

	frame    playback.Frame
	warned   map[int]bool
	heights  []float64
	chartKey [2]int
	logger   *zap.Logger
}

// NewPlayer wraps seq. It fails only on an unknown camera preset.
func NewPlayer(seq *playback.Sequence, opts PlayerOptions) (*Player, error) {
	if opts.Width <= 0 {
		opts.Width = width
	}
	if opts.Height <= 0 {
		opts.Height = height
	}
	if opts.FPS <= 0 {
		opts.FPS = defaultFPS
	}
	if opts.Camera == "" {
		opts.Camera = "catcher"
	}
	if opts.Logger == nil {
		opts.Logger = log.Logger
	}
	cam, err := CameraPreset(opts.Camera)
	if err != nil {
		return nil, err
	}

	tels := make([]telemetry.Pitch, seq.Len())
	for i := range tels {
		tels[i] = seq.Pitch(i).Telemetry
	}

	p := &Player{
		seq:        seq,
		opts:       opts,
		labels:     telemetry.Labels(tels),
		canvas:     NewCanvas(opts.Width, opts.Height),
		camera:     cam,
		cameraName: opts.Camera,
		theme:      GetTheme(opts.Theme),
		outfield:   opts.Outfield,
		warned:     make(map[int]bool),
		heights:    make([]float64, 0, historyCapacity),
		chartKey:   [2]int{-1, -1},
		logger:     opts.Logger,
	}
	p.Draw(seq.Frame())
	return p, nil
}

func (p *Player) Init() tea.Cmd { return p.tick() }

func (p *Player) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(p.opts.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the sequence.
func (p *Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return p, tea.Quit
		case " ":
			p.seq.TogglePause()
		case "r":
			p.seq.RestartAfter(p.opts.RestartDelay)
		case "l":
			p.seq.SetLooping(!p.seq.Looping())
		case "c":
			p.setCamera("catcher")
		case "p":
			p.setCamera("pitcher")
		case "o":
			p.setCamera("overhead")
		case "+", "=":
			p.camera.ZoomIn()
		case "-", "_":
			p.camera.ZoomOut()
		case "f":
			p.outfield = !p.outfield
		case "t":
			p.theme = p.theme.Next()
		case "?":
			p.showHelp = !p.showHelp
		}
		p.Draw(p.seq.Frame())
	case TickMsg:
		p.seq.Step(p)
		return p, p.tick()
	}
	return p, nil
}

func (p *Player) setCamera(name string) {
	cam, err := CameraPreset(name)
	if err != nil {
		p.logger.Warn("camera preset", zap.Error(err))
		return
	}
	p.camera, p.cameraName = cam, name
}

// Draw rasterizes a frame onto the player's canvas.
func (p *Player) Draw(f playback.Frame) {
	p.frame = f
	p.trackHeight(f)
	p.canvas.Clear()
	opts := SceneOptions{Outfield: p.outfield, Background: p.theme.Clear()}
	Render3D(p.canvas, BuildWireframe(f, opts, p.warnOutcome), p.camera)
}

func (p *Player) warnOutcome(v playback.PitchView, err error) {
	if p.warned[v.Index] {
		return
	}
	p.warned[v.Index] = true
	p.logger.Warn("pitch outcome not handled",
		zap.Int("pitch", v.Index),
		zap.String("code", v.OutcomeCode),
		zap.Error(err),
	)
}

// trackHeight records the height of the pitch in flight for the chart.
func (p *Player) trackHeight(f playback.Frame) {
	if f.Current >= len(f.Pitches) {
		return
	}
	key := [2]int{p.seq.Restarts(), f.Current}
	if key != p.chartKey {
		p.heights = p.heights[:0]
		p.chartKey = key
	}
	v := f.Pitches[f.Current]
	if v.Phase != playback.InFlight || len(p.heights) >= historyCapacity {
		return
	}
	p.heights = append(p.heights, v.Position.Z)
}

func (p *Player) status() string {
	switch {
	case p.frame.Finished:
		return "FINISHED"
	case p.frame.Paused:
		return "PAUSED"
	}
	return "PLAYING"
}

// View renders the TUI interface.
func (p *Player) View() string {
	f := p.frame
	var s strings.Builder

	title := p.opts.Title
	if title == "" {
		title = "pfx3d"
	}
	s.WriteString(headerStyle(p.theme).Render(strings.ToUpper(title)) + "\n")
	s.WriteString(statusStyle(p.theme, f.Paused).Render(p.status()) + "\n\n")

	idx := min(f.Current, len(f.Pitches)-1)
	if idx >= 0 {
		v := f.Pitches[idx]
		s.WriteString(labelStyle.Render("Pitch") + valueStyle.Render(fmt.Sprintf("%d/%d", idx+1, len(f.Pitches))) + "\n")
		if idx < len(p.labels) {
			s.WriteString(labelStyle.Render("") + valueStyle.Render(p.labels[idx]) + "\n")
		}
		s.WriteString(labelStyle.Render("Phase") + valueStyle.Render(v.Phase.String()) + "\n")
		s.WriteString(labelStyle.Render("Flight") + valueStyle.Render(fmt.Sprintf("%.3fs / %.3fs", v.Elapsed, v.FlightTime)) + "\n")
		progress := 0.0
		if v.FlightTime > 0 {
			progress = v.Elapsed / v.FlightTime
		}
		s.WriteString(labelStyle.Render("") + ProgressBar(progress, 20) + "\n")
		s.WriteString(labelStyle.Render("Position") + valueStyle.Render(v.Position.String()) + "\n")
	}
	loop := "off"
	if f.Looping {
		loop = "on"
	}
	s.WriteString(labelStyle.Render("Camera") + valueStyle.Render(fmt.Sprintf("%s x%.2f", p.cameraName, p.camera.Zoom)) + "\n")
	s.WriteString(labelStyle.Render("Loop") + valueStyle.Render(loop) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(p.theme.Name) + "\n")

	if len(p.heights) > 1 {
		chart := asciigraph.Plot(p.heights, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Height (m)"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString("\nPITCHES ")
	for _, v := range f.Pitches {
		if v.PathDone {
			s.WriteString(outcomeBadge(v.Outcome, v.OutcomeCode))
		} else {
			s.WriteString(lipgloss.NewStyle().Foreground(p.theme.Muted).Render("·"))
		}
	}
	s.WriteString("\n")
	s.WriteString(helpStyle.Render("─────────────────────\nSP:Pause R:Restart L:Loop Q:Quit\nC/P/O:Camera +/-:Zoom ?:Help"))

	canvasView := canvasStyle.Render(p.canvas.Render())
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if p.showHelp {
		return `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume playback    ║
║  R        - Restart the sequence     ║
║  L        - Toggle looping           ║
║  C        - Catcher camera           ║
║  P        - Pitcher camera           ║
║  O        - Overhead camera          ║
║  +/-      - Zoom in/out              ║
║  F        - Toggle outfield          ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// Run plays seq in the terminal until the user quits.
func Run(seq *playback.Sequence, opts PlayerOptions) error {
	p, err := NewPlayer(seq, opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(p, tea.WithAltScreen()).Run()
	return err
}

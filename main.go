package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"go-robo/internal/command"
	"go-robo/internal/game"
	"go-robo/internal/level"
	"go-robo/internal/state"
	"go-robo/internal/ui"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	queueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	idleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle  = lipgloss.NewStyle().MarginTop(1)
)

type LocalState struct {
	Game   *game.Game
	Canvas *ui.Canvas
	Modal  *ui.Modal
	Info   *ui.InfoPanel

	keys    ui.KeyMap
	help    help.Model
	watcher *level.Watcher

	delay         time.Duration
	frameInterval time.Duration
	frameActive   bool
}

type FrameMsg time.Time

// StepMsg fires when the delay before the next queued command has elapsed.
type StepMsg struct {
	Step game.Step
}

// ReloadMsg carries a layout re-read from the level file.
type ReloadMsg struct {
	Layout level.Layout
	Err    error
}

func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func stepCmd(d time.Duration, s game.Step) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return StepMsg{Step: s}
	})
}

func waitForReload(w *level.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			l, err := level.Load(path)
			return ReloadMsg{Layout: l, Err: err}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return ReloadMsg{Err: err}
		}
	}
}

func initialModel(layout level.Layout, cfg config) *LocalState {
	s := &LocalState{
		Canvas:        ui.NewCanvas(layout.Canvas),
		Modal:         &ui.Modal{},
		Info:          &ui.InfoPanel{},
		keys:          ui.DefaultKeyMap(),
		help:          help.New(),
		delay:         cfg.delay,
		frameInterval: time.Second / time.Duration(cfg.fps),
	}
	s.Game = game.NewGame(layout, s.Canvas, s.Modal, s.Info)
	s.Game.Init()
	for _, c := range cfg.commands {
		s.Game.Enqueue(c)
	}
	return s
}

func (s *LocalState) Init() tea.Cmd {
	// Game.Init already started the first run
	return tea.Batch(s.ensureLoop(), waitForReload(s.watcher))
}

// ensureLoop restarts the frame loop if the game is running and no frame is
// scheduled.
func (s *LocalState) ensureLoop() tea.Cmd {
	if !s.Game.Running() || s.frameActive {
		return nil
	}
	s.frameActive = true
	return frameCmd(s.frameInterval)
}

func (s *LocalState) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		s.frameActive = false
		// The player has not acknowledged the last message yet; hold the frame.
		if s.Modal.Open() {
			return s, s.ensureLoop()
		}
		s.Game.HandleFrame()
		return s, s.ensureLoop()
	case StepMsg:
		if next, ok := s.Game.Resume(msg.Step); ok {
			return s, tea.Batch(stepCmd(s.delay, next), s.ensureLoop())
		}
		return s, s.ensureLoop()
	case ReloadMsg:
		if msg.Err != nil {
			slog.Warn("level reload failed", "err", msg.Err)
		} else {
			s.Game.SetLayout(msg.Layout)
			slog.Info("level reloaded, applies on next reset", "name", msg.Layout.Name)
		}
		return s, waitForReload(s.watcher)
	case tea.WindowSizeMsg:
		s.help.Width = msg.Width
	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}

	return s, nil
}

func (s *LocalState) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Handle exit request
	if key.Matches(msg, s.keys.Quit) {
		return tea.Quit
	}

	// Notifications block everything until acknowledged
	if s.Modal.Open() {
		if key.Matches(msg, s.keys.Ack) {
			s.Modal.Acknowledge()
		}
		return nil
	}

	if cmd, ok := s.keys.Command(msg); ok {
		s.Game.Enqueue(cmd)
		return nil
	}

	switch {
	case key.Matches(msg, s.keys.Execute):
		if next, ok := s.Game.Execute(); ok {
			return tea.Batch(stepCmd(s.delay, next), s.ensureLoop())
		}
	case key.Matches(msg, s.keys.Start):
		s.Game.Start()
	case key.Matches(msg, s.keys.Reset):
		s.Game.Reset()
		s.Canvas.Resize(s.Game.State.Layout.Canvas)
		s.Game.Render()
	case key.Matches(msg, s.keys.Help):
		s.help.ShowAll = !s.help.ShowAll
	}
	return s.ensureLoop()
}

func (s *LocalState) View() string {
	var b strings.Builder

	b.WriteString(s.Info.View())
	b.WriteString("\n")
	b.WriteString(s.Canvas.View())
	b.WriteString("\n")

	queue := s.Game.State.Queue.String()
	if queue == "" {
		queue = "(empty)"
	}
	b.WriteString("Commands: " + queueStyle.Render(queue))
	if !s.Game.Running() {
		b.WriteString("  " + idleStyle.Render("[stopped: press g to start]"))
	}

	if s.Modal.Open() {
		b.WriteString("\n" + s.Modal.View())
	}

	b.WriteString(helpStyle.Render(s.help.View(s.keys)))
	return b.String()
}

// consoleNotifier prints notifications in headless mode.
type consoleNotifier struct {
	out io.Writer
}

func (n consoleNotifier) NotifySuccess() { fmt.Fprintln(n.out, ui.SuccessMessage) }
func (n consoleNotifier) NotifyFailure() { fmt.Fprintln(n.out, ui.FailureMessage) }

// runHeadless executes the pre-queued commands without a terminal UI and
// prints the final frame and outcome.
func runHeadless(ctx context.Context, layout level.Layout, cfg config, out io.Writer) error {
	canvas := ui.NewCanvas(layout.Canvas)
	info := &ui.InfoPanel{}
	g := game.NewGame(layout, canvas, consoleNotifier{out: out}, info)
	g.Init()
	for _, c := range cfg.commands {
		g.Enqueue(c)
	}

	if err := g.Drain(ctx, cfg.delay, game.Sleep); err != nil {
		return fmt.Errorf("executing commands: %w", err)
	}

	fmt.Fprintln(out, info.View())
	fmt.Fprintln(out, canvas.View())
	outcome := g.State.Outcome
	if outcome == state.NoOutcome && g.Running() {
		fmt.Fprintf(out, "Robot stopped at (%d,%d), target not reached\n", g.State.Robot.X, g.State.Robot.Y)
	} else {
		fmt.Fprintf(out, "Outcome: %s\n", outcome)
	}
	return nil
}

type commandsFlag []command.Command

func (c *commandsFlag) String() string {
	if c == nil {
		return ""
	}
	return command.NewQueue(*c...).String()
}

func (c *commandsFlag) Set(s string) error {
	cmds, err := command.ParseList(s)
	if err != nil {
		return err
	}
	*c = append(*c, cmds...)
	return nil
}

type strictIntFlag int

func (i *strictIntFlag) String() string {
	return fmt.Sprint(int(*i))
}

func (i *strictIntFlag) Set(s string) error {
	if s == "true" {
		return fmt.Errorf("value required (format: -flag=value)")
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if v <= 0 {
		return fmt.Errorf("must be positive, got %d", v)
	}
	*i = strictIntFlag(v)
	return nil
}

func (i *strictIntFlag) IsBoolFlag() bool { return true }

type config struct {
	levelPath string
	watch     bool
	delay     time.Duration
	fps       int
	commands  []command.Command
	headless  bool
	debug     bool
}

func setupLogging(cfg config) (io.Closer, error) {
	lvl := slog.LevelInfo
	if cfg.debug {
		lvl = slog.LevelDebug
	}

	if cfg.headless {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
		return nil, nil
	}

	// The TUI owns the terminal; logs only go to a file when debugging.
	if !cfg.debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nil, nil
	}
	f, err := tea.LogToFile("go-robo.log", "go-robo")
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl})))
	return f, nil
}

func main() {
	// defaults
	var cfg config
	var commands commandsFlag
	var fps strictIntFlag = 30

	flag.StringVar(&cfg.levelPath, "level", "", "Load the layout from a YAML level file")
	flag.StringVar(&cfg.levelPath, "l", "", "Load the layout from a YAML level file (shorthand)")

	flag.BoolVar(&cfg.watch, "watch", false, "Reload the level file when it changes (applies on reset)")
	flag.BoolVar(&cfg.watch, "w", false, "Reload the level file when it changes (shorthand)")

	flag.DurationVar(&cfg.delay, "delay", game.DefaultDelay, "Pause between two executed commands")

	flag.Var(&fps, "fps", "Frame loop rate")

	flag.Var(&commands, "commands", "Queue commands at start-up (e.g. Up,Right,Right)")
	flag.Var(&commands, "c", "Queue commands at start-up (shorthand)")

	flag.BoolVar(&cfg.headless, "headless", false, "Execute the queued commands without the TUI and print the outcome")
	flag.BoolVar(&cfg.debug, "debug", false, "Write debug logs (go-robo.log in TUI mode, stderr in headless mode)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		fmt.Fprintf(os.Stderr, "    -l, --level=FILE       Load the layout from a YAML level file\n")
		fmt.Fprintf(os.Stderr, "    -w, --watch            Reload the level file when it changes (applies on reset)\n")
		fmt.Fprintf(os.Stderr, "        --delay=DURATION   Pause between two executed commands (default 300ms)\n")
		fmt.Fprintf(os.Stderr, "        --fps=N            Frame loop rate (default 30)\n")
		fmt.Fprintf(os.Stderr, "    -c, --commands=LIST    Queue commands at start-up (e.g. Up,Right,Right)\n")
		fmt.Fprintf(os.Stderr, "        --headless         Execute the queued commands without the TUI\n")
		fmt.Fprintf(os.Stderr, "        --debug            Write debug logs\n")
		fmt.Fprintf(os.Stderr, "    -h, --help             Show this help message\n")
	}

	flag.Parse()

	cfg.fps = int(fps)
	cfg.commands = commands

	closer, err := setupLogging(cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if closer != nil {
		defer closer.Close()
	}

	layout := level.Default()
	if cfg.levelPath != "" {
		layout, err = level.Load(cfg.levelPath)
		if err != nil {
			fmt.Printf("Error loading level: %v\n", err)
			os.Exit(1)
		}
	}

	if cfg.headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := runHeadless(ctx, layout, cfg, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	model := initialModel(layout, cfg)
	if cfg.watch && cfg.levelPath != "" {
		w, err := level.NewWatcher(cfg.levelPath)
		if err != nil {
			fmt.Printf("Error watching level: %v\n", err)
			os.Exit(1)
		}
		defer w.Close()
		model.watcher = w
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error starting the program: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"dd-commander/internal/config"
	"dd-commander/internal/logging"
	"dd-commander/internal/nav"
	"dd-commander/internal/ui"
	"dd-commander/internal/watch"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// AppModel is the root application model.
type AppModel struct {
	width   int
	height  int
	browser ui.FileBrowserModel
	help    ui.HelpOverlay
}

func newAppModel(browser ui.FileBrowserModel) AppModel {
	return AppModel{browser: browser, help: ui.NewHelpOverlay()}
}

func (m AppModel) Init() tea.Cmd {
	return m.browser.Init()
}

var helpCloseKeys = key.NewBinding(key.WithKeys("esc", "q", "f1"))

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		keys := m.browser.Keys()
		if m.help.Visible() {
			switch {
			case key.Matches(msg, keys.Abort, keys.Quit):
				// fall through to the browser, which quits
			case key.Matches(msg, helpCloseKeys):
				m.help.Close()
				return m, nil
			default:
				var cmd tea.Cmd
				m.help, cmd = m.help.Update(msg)
				return m, cmd
			}
		} else if key.Matches(msg, keys.Help) {
			m.help.Toggle()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.browser, cmd = m.browser.Update(msg)
	return m, cmd
}

func (m AppModel) View() string {
	if m.help.Visible() {
		return m.help.View(m.width, m.height)
	}
	return m.browser.View()
}

// app bundles what run needs to start and later tear down.
type app struct {
	model   AppModel
	watcher *watch.Watcher
}

func (a *app) Close() {
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
}

// newApp builds both panes on dir. An unreadable dir is a startup failure.
func newApp(dir string, s *config.Settings, log *logrus.Logger) (*app, error) {
	lister, err := s.Lister()
	if err != nil {
		return nil, err
	}

	status := ui.NewStatusLine()
	opener := ui.NewExecOpener(s.Opener)
	ctrl, err := nav.Open(dir, lister,
		nav.WithStatusLine(status),
		nav.WithOpener(opener),
		nav.WithLogger(logging.Component(log, "nav")),
	)
	if err != nil {
		return nil, err
	}

	a := &app{}
	if s.Watch {
		w, err := watch.New(watch.DefaultDebounce, logging.Component(log, "watch"))
		if err != nil {
			// Auto-refresh is a convenience; Ctrl+R still works.
			log.WithError(err).Warn("directory watching disabled")
		} else {
			a.watcher = w
		}
	}

	browser := ui.NewFileBrowserModel(ctrl, status, opener, ui.Options{
		Title:   config.AppName,
		Watcher: a.watcher,
		Log:     logging.Component(log, "ui"),
	})
	status.Message("F1 for help, F10 to quit")
	a.model = newAppModel(browser)
	return a, nil
}

// runProgram starts the full-screen loop. Tests replace it.
var runProgram = func(m tea.Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func run() error {
	settings, err := config.Load()
	if err != nil {
		return err
	}

	log, closer, err := logging.Open(settings.LogPath(), settings.LogLevel)
	if err != nil {
		return fmt.Errorf("could not open debug log: %w", err)
	}
	defer func() { _ = closer.Close() }()
	log.WithField("log", settings.LogPath()).Infof("=== %s starting ===", config.AppName)

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("working directory: %w", err)
	}
	a, err := newApp(cwd, settings, log)
	if err != nil {
		log.WithError(err).Error("startup failed")
		return err
	}
	defer a.Close()

	if err := runProgram(a.model); err != nil {
		log.WithError(err).Error("program exited with error")
		return err
	}
	log.Info("bye")
	return nil
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           config.AppName,
		Short:         "Dual-pane terminal file browser",
		Long:          "Two directory listings side by side. Settings are read from DDC_* environment variables; press F1 inside the program for keys.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(*cobra.Command, []string) error {
			return run()
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

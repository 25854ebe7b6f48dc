package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"splitpane/internal/config"
	"splitpane/internal/group"
	"splitpane/internal/logger"
	"splitpane/internal/metrics"
	"splitpane/internal/storage"
	"splitpane/internal/tui/component"
	"splitpane/internal/tui/themes"
)

var (
	demoGroupFile string
	demoTheme     string
)

const demoGroupSpec = `id: demo
direction: horizontal
autosave_id: demo
panes:
  - id: sidebar
    constraints: {min_size: 15, max_size: 40, collapsible: true, collapsed_size: 0, default_size: 25}
  - id: editor
    constraints: {min_size: 30}
  - id: preview
    constraints: {min_size: 10, collapsible: true, default_size: 25}
`

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Resize a pane group interactively in the terminal",
	Long: `Open a terminal view of a pane group. Dividers can be dragged with the
mouse, or focused with tab and moved with the keyboard. The layout is saved
under the group's autosave_id and restored the next time.

Examples:
  splitpane demo
  splitpane demo --group editor.yaml --theme nord`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().StringVar(&demoGroupFile, "group", "", "group spec file (default is a built-in three pane group)")
	demoCmd.Flags().StringVar(&demoTheme, "theme", string(themes.PresetAuto), "color theme (auto, dark, light, nord)")
	demoCmd.Flags().Float64("keyboard-step", component.DefaultStep, "percentage moved by one resize key")
	demoCmd.Flags().String("metrics-addr", "", "serve Prometheus metrics on this address")
}

// stepMsg carries a reloaded keyboard step into the program.
type stepMsg float64

// demoModel frames the split view with a header and footer.
type demoModel struct {
	view  *component.SplitView
	title string
	theme *themes.Theme
}

func (m demoModel) Init() tea.Cmd {
	return m.view.Focus()
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.view.SetSize(msg.Width, max(msg.Height-3, 1))
		return m, nil
	case stepMsg:
		m.view.SetStep(float64(msg))
		return m, nil
	}

	_, cmd := m.view.Update(msg)
	return m, cmd
}

func (m demoModel) View() string {
	header := m.theme.Title.Render(m.title)
	return header + "\n" + m.view.View() + "\n" + m.view.StatusLine() + "\n" + m.view.HelpView()
}

func runDemo(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("demo needs an interactive terminal")
	}

	spec, err := loadDemoSpec()
	if err != nil {
		return err
	}
	dir, err := group.ParseDirection(spec.Direction)
	if err != nil {
		return err
	}

	if err := themes.Global().SetActive(themes.PresetName(demoTheme)); err != nil {
		return err
	}
	theme := themes.Global().Active()

	l := cmdLogger(cmd).Component("demo")

	store, err := storage.Open(cmd.Context(), cfg.Storage)
	if err != nil {
		return err
	}
	defer store.Close()

	var recorder metrics.Recorder = metrics.Noop{}
	if addr := cfg.Metrics.Addr; cfg.Metrics.Enabled || cmd.Flags().Changed("metrics-addr") {
		srv := metrics.NewServer(addr)
		prom, err := metrics.NewPrometheus(srv.Registry)
		if err != nil {
			return err
		}
		if err := srv.Start(func(err error) {
			l.Error("metrics server failed", logger.WithError(err))
		}); err != nil {
			return fmt.Errorf("failed to start metrics server: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Stop(ctx)
		}()
		l.Info("serving metrics", "addr", srv.Addr())
		recorder = prom
	}

	g := group.New(group.Options{
		ID:             spec.ID,
		Direction:      dir,
		AutoSaveID:     spec.AutoSaveID,
		Store:          store,
		Namespace:      cfg.Persistence.Namespace,
		Debounce:       cfg.Persistence.Debounce,
		StorageTimeout: cfg.Storage.Timeout,
		Logger:         cmdLogger(cmd),
		Metrics:        recorder,
	})
	defer g.Close()

	view := component.NewSplitView(g).
		WithTheme(theme).
		WithStep(cfg.Keyboard.Step).
		WithOrigin(0, 1)

	for _, p := range spec.Panes {
		title := p.ID
		_, err := view.AddPane(
			group.Pane{ID: p.ID, Order: p.Order, Constraints: p.Constraints},
			component.SplitPane{Title: title, Content: paneContent(g, title)},
		)
		if err != nil {
			return err
		}
	}

	title := "splitpane demo"
	if spec.ID != "" {
		title += " · " + spec.ID
	}
	p := tea.NewProgram(
		demoModel{view: view, title: title, theme: theme},
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)

	if path := config.ConfigFileUsed(cfgFile); path != "" && !cmd.Flags().Changed("keyboard-step") {
		w, err := config.NewWatcher(path)
		if err != nil {
			l.Warn("config reload disabled", logger.WithError(err))
		} else {
			w.OnChange(func(c *config.Config) {
				p.Send(stepMsg(c.Keyboard.Step))
			})
			w.OnError(func(err error) {
				l.Warn("failed to reload config", logger.WithError(err))
			})
			w.Start()
		}
	}

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("demo failed: %w", err)
	}
	return nil
}

func loadDemoSpec() (*config.GroupSpec, error) {
	if demoGroupFile != "" {
		return config.LoadGroupSpec(demoGroupFile)
	}
	return config.ParseGroupSpec([]byte(demoGroupSpec))
}

func paneContent(g *group.Group, id string) func(w, h int) string {
	return func(w, h int) string {
		size, err := g.Size(id)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("%.1f%%", size)
	}
}

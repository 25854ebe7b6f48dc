package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"splitpane/internal/cli/output"
	"splitpane/internal/config"
	"splitpane/internal/group"
	"splitpane/internal/layout"
	"splitpane/internal/metrics"
	"splitpane/internal/storage"
)

var (
	layoutFlag string
	saveState  bool

	adjustHandle  int
	adjustDelta   float64
	adjustTrigger string
)

// layoutCmd groups the layout commands
var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Compute and adjust layouts for a pane group",
	Long: `Compute, validate and adjust the layout of a pane group described by a
YAML spec file.

Commands that change the layout start from --layout, or from the saved
layout when --save is given, and print the result. With --save the result is
written back under the spec's autosave_id.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var layoutDefaultCmd = &cobra.Command{
	Use:   "default <group.yaml>",
	Short: "Print the default layout of a group",
	Args:  cobra.ExactArgs(1),
	RunE:  runLayoutDefault,
}

var layoutValidateCmd = &cobra.Command{
	Use:   "validate <group.yaml> <layout>",
	Short: "Repair a layout against the group's constraints",
	Long: `Clamp every pane of <layout> into its bounds and spread the remainder
so the layout totals 100.

Example:
  splitpane layout validate editor.yaml 5,90,5`,
	Args: cobra.ExactArgs(2),
	RunE: runLayoutValidate,
}

var layoutAdjustCmd = &cobra.Command{
	Use:   "adjust <group.yaml>",
	Short: "Move a resize handle by a delta",
	Long: `Move handle --handle (0 sits between the first two panes) by --delta
percent. A positive delta grows the pane before the handle.

Examples:
  splitpane layout adjust editor.yaml --handle 0 --delta 10
  splitpane layout adjust editor.yaml --layout 50,50 --delta -5 --trigger pointer`,
	Args: cobra.ExactArgs(1),
	RunE: runLayoutAdjust,
}

var layoutResizeCmd = &cobra.Command{
	Use:   "resize <group.yaml> <pane> <size>",
	Short: "Resize one pane to a percentage",
	Args:  cobra.ExactArgs(3),
	RunE:  runLayoutResize,
}

var layoutCollapseCmd = &cobra.Command{
	Use:   "collapse <group.yaml> <pane>",
	Short: "Collapse a collapsible pane",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPaneOp(cmd, args[0], func(g *group.Group) error { return g.CollapsePane(args[1]) })
	},
}

var layoutExpandCmd = &cobra.Command{
	Use:   "expand <group.yaml> <pane>",
	Short: "Expand a collapsed pane to its remembered size",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPaneOp(cmd, args[0], func(g *group.Group) error { return g.ExpandPane(args[1]) })
	},
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.AddCommand(layoutDefaultCmd, layoutValidateCmd, layoutAdjustCmd,
		layoutResizeCmd, layoutCollapseCmd, layoutExpandCmd)

	for _, c := range []*cobra.Command{layoutAdjustCmd, layoutResizeCmd, layoutCollapseCmd, layoutExpandCmd} {
		c.Flags().StringVar(&layoutFlag, "layout", "", "starting layout, e.g. 30,70")
		c.Flags().BoolVar(&saveState, "save", false, "load and save the layout under the spec's autosave_id")
	}

	layoutAdjustCmd.Flags().IntVar(&adjustHandle, "handle", 0, "handle index")
	layoutAdjustCmd.Flags().Float64Var(&adjustDelta, "delta", 0, "delta in percent")
	layoutAdjustCmd.Flags().StringVar(&adjustTrigger, "trigger", "keyboard", "trigger (keyboard, pointer)")
}

// paneRow is one line of a layout result.
type paneRow struct {
	ID          string  `json:"id" yaml:"id"`
	Size        float64 `json:"size" yaml:"size"`
	MinSize     float64 `json:"min_size" yaml:"min_size"`
	MaxSize     float64 `json:"max_size" yaml:"max_size"`
	Collapsible bool    `json:"collapsible" yaml:"collapsible"`
	Collapsed   bool    `json:"collapsed" yaml:"collapsed"`
}

// layoutResult is printed by every layout command.
type layoutResult struct {
	Group   string        `json:"group" yaml:"group"`
	Layout  layout.Layout `json:"layout" yaml:"layout"`
	Panes   []paneRow     `json:"panes" yaml:"panes"`
	Changed *bool         `json:"changed,omitempty" yaml:"changed,omitempty"`
}

func newLayoutResult(groupID string, ids []string, constraints []layout.PaneConstraints, l layout.Layout) layoutResult {
	r := layoutResult{Group: groupID, Layout: l}
	for i, c := range constraints {
		id := ids[i]
		if id == "" {
			id = "#" + strconv.Itoa(i)
		}
		n := c.Normalized()
		r.Panes = append(r.Panes, paneRow{
			ID:          id,
			Size:        l[i],
			MinSize:     n.MinSize,
			MaxSize:     n.MaxSize,
			Collapsible: n.Collapsible,
			Collapsed:   layout.IsCollapsed(c, l[i]),
		})
	}
	return r
}

// Table implements output.Tabler
func (r layoutResult) Table() *output.Table {
	t := output.NewTable("pane", "size", "min", "max", "state")
	for _, p := range r.Panes {
		state := "fixed"
		switch {
		case p.Collapsed:
			state = "collapsed"
		case p.Collapsible:
			state = "expanded"
		}
		t.AddRow(p.ID, formatPercent(p.Size), formatPercent(p.MinSize), formatPercent(p.MaxSize), state)
	}
	return t
}

// Key implements output.Keyed: the layout as comma separated numbers.
func (r layoutResult) Key() string {
	parts := make([]string, len(r.Layout))
	for i, v := range r.Layout {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

func specIDs(spec *config.GroupSpec) []string {
	ids := make([]string, len(spec.Panes))
	for i, p := range spec.Panes {
		ids[i] = p.ID
	}
	return ids
}

func runLayoutDefault(cmd *cobra.Command, args []string) error {
	spec, err := config.LoadGroupSpec(args[0])
	if err != nil {
		return err
	}
	constraints := spec.Constraints()
	l := layout.ComputeDefaultLayout(constraints)
	return newOutput(cmd).Write(newLayoutResult(spec.ID, specIDs(spec), constraints, l))
}

func runLayoutValidate(cmd *cobra.Command, args []string) error {
	spec, err := config.LoadGroupSpec(args[0])
	if err != nil {
		return err
	}
	in, err := layout.Parse(args[1])
	if err != nil {
		return err
	}

	constraints := spec.Constraints()
	out, err := layout.ValidateLayout(in, constraints)
	if err != nil {
		return err
	}

	changed := !out.Equal(in)
	r := newLayoutResult(spec.ID, specIDs(spec), constraints, out)
	r.Changed = &changed
	return newOutput(cmd).Write(r)
}

func parseTrigger(s string) (layout.Trigger, error) {
	switch strings.ToLower(s) {
	case "keyboard", "":
		return layout.TriggerKeyboard, nil
	case "pointer":
		return layout.TriggerPointer, nil
	default:
		return 0, fmt.Errorf("unsupported trigger %q (keyboard, pointer)", s)
	}
}

func runLayoutAdjust(cmd *cobra.Command, args []string) error {
	trigger, err := parseTrigger(adjustTrigger)
	if err != nil {
		return err
	}

	return runPaneOp(cmd, args[0], func(g *group.Group) error {
		handles := g.Handles()
		if adjustHandle < 0 || adjustHandle >= len(handles) {
			return fmt.Errorf("handle %d out of range (group has %d)", adjustHandle, len(handles))
		}
		h := handles[adjustHandle]

		if trigger == layout.TriggerPointer {
			if err := g.StartDrag(h, 0, group.Rect{}); err != nil {
				return err
			}
			defer g.StopDrag()
		}
		return g.UpdateDrag(h, adjustDelta, trigger)
	})
}

func runLayoutResize(cmd *cobra.Command, args []string) error {
	size, err := strconv.ParseFloat(strings.TrimSuffix(args[2], "%"), 64)
	if err != nil {
		return fmt.Errorf("invalid size %q: %w", args[2], err)
	}
	return runPaneOp(cmd, args[0], func(g *group.Group) error { return g.ResizePane(args[1], size) })
}

// runPaneOp loads a group from specPath, applies op and prints the result.
func runPaneOp(cmd *cobra.Command, specPath string, op func(*group.Group) error) error {
	spec, err := config.LoadGroupSpec(specPath)
	if err != nil {
		return err
	}

	g, closeGroup, err := openGroup(cmd, spec)
	if err != nil {
		return err
	}
	defer closeGroup()

	if layoutFlag != "" {
		l, err := layout.Parse(layoutFlag)
		if err != nil {
			return err
		}
		l, err = layout.ValidateLayout(l, g.Constraints())
		if err != nil {
			return err
		}
		if err := g.SetLayout(l); err != nil {
			return err
		}
	}

	before := g.Layout()
	if err := op(g); err != nil {
		return err
	}
	after := g.Layout()

	changed := !after.Identical(before)
	ids := make([]string, 0, len(spec.Panes))
	for _, p := range g.Panes() {
		ids = append(ids, p.ID)
	}
	r := newLayoutResult(g.ID(), ids, g.Constraints(), after)
	r.Changed = &changed
	return newOutput(cmd).Write(r)
}

// openGroup builds a group from spec. With --save it is backed by the
// configured storage and saves synchronously.
func openGroup(cmd *cobra.Command, spec *config.GroupSpec) (*group.Group, func(), error) {
	dir, err := group.ParseDirection(spec.Direction)
	if err != nil {
		return nil, nil, err
	}

	opts := group.Options{
		ID:        spec.ID,
		Direction: dir,
		Logger:    cmdLogger(cmd),
		Metrics:   metrics.Noop{},
	}

	var store storage.Store
	if saveState {
		if spec.AutoSaveID == "" {
			return nil, nil, errors.New("--save needs an autosave_id in the group spec")
		}
		store, err = storage.Open(cmd.Context(), cfg.Storage)
		if err != nil {
			return nil, nil, err
		}
		opts.AutoSaveID = spec.AutoSaveID
		opts.Store = store
		opts.Namespace = cfg.Persistence.Namespace
		opts.StorageTimeout = cfg.Storage.Timeout
		opts.Debounce = -1
	}

	g := group.New(opts)
	closeGroup := func() {
		_ = g.Close()
		if store != nil {
			_ = store.Close()
		}
	}

	for _, p := range spec.Panes {
		if _, err := g.RegisterPane(group.Pane{ID: p.ID, Order: p.Order, Constraints: p.Constraints}); err != nil {
			closeGroup()
			return nil, nil, err
		}
	}
	for i := 0; i < len(spec.Panes)-1; i++ {
		if err := g.RegisterHandle(fmt.Sprintf("handle-%d", i)); err != nil {
			closeGroup()
			return nil, nil, err
		}
	}
	return g, closeGroup, nil
}

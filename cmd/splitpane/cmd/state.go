package cmd

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"splitpane/internal/cli/output"
	"splitpane/internal/persist"
	"splitpane/internal/storage"
)

// stateCmd groups the saved state commands
var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect and clear saved layouts",
	Long: `Inspect and clear the layouts saved in the configured storage backend.

Each autosave id holds one entry per pane set, keyed by the pane-set
signature: the pane ids, or order and constraints for panes without an id.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var stateShowCmd = &cobra.Command{
	Use:   "show [autosave-id]",
	Short: "Show saved layouts",
	Long:  `Show the layouts saved under one autosave id, or under every id in the namespace.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStateShow,
}

var stateClearCmd = &cobra.Command{
	Use:   "clear <autosave-id>",
	Short: "Delete the layouts saved under an autosave id",
	Args:  cobra.ExactArgs(1),
	RunE:  runStateClear,
}

func init() {
	rootCmd.AddCommand(stateCmd)
	stateCmd.AddCommand(stateShowCmd, stateClearCmd)
}

// stateEntry is one saved pane set.
type stateEntry struct {
	AutoSaveID    string             `json:"autosave_id" yaml:"autosave_id"`
	Signature     string             `json:"signature" yaml:"signature"`
	Layout        []float64          `json:"layout" yaml:"layout"`
	ExpandToSizes map[string]float64 `json:"expand_to_sizes,omitempty" yaml:"expand_to_sizes,omitempty"`
}

type stateList []stateEntry

// Table implements output.Tabler
func (s stateList) Table() *output.Table {
	t := output.NewTable("autosave id", "signature", "layout", "expand to")
	for _, e := range s {
		sizes := make([]string, len(e.Layout))
		for i, v := range e.Layout {
			sizes[i] = formatPercent(v)
		}

		expand := make([]string, 0, len(e.ExpandToSizes))
		for _, id := range slices.Sorted(maps.Keys(e.ExpandToSizes)) {
			expand = append(expand, id+"="+strconv.FormatFloat(e.ExpandToSizes[id], 'f', -1, 64))
		}

		t.AddRow(e.AutoSaveID, e.Signature, strings.Join(sizes, " "), strings.Join(expand, " "))
	}
	return t
}

func openPersister(cmd *cobra.Command) (*persist.Persister, storage.Store, error) {
	store, err := storage.Open(cmd.Context(), cfg.Storage)
	if err != nil {
		return nil, nil, err
	}
	p := persist.New(store, persist.Options{
		Namespace: cfg.Persistence.Namespace,
		Timeout:   cfg.Storage.Timeout,
		Logger:    cmdLogger(cmd),
	})
	return p, store, nil
}

func runStateShow(cmd *cobra.Command, args []string) error {
	p, store, err := openPersister(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	ids := args
	if len(ids) == 0 {
		if ids, err = p.List(cmd.Context()); err != nil {
			return fmt.Errorf("failed to list saved groups: %w", err)
		}
	}

	var entries stateList
	for _, id := range ids {
		state, err := p.LoadGroup(cmd.Context(), id)
		if storage.IsNotFound(err) {
			if len(args) > 0 {
				return fmt.Errorf("no layout saved under %q", id)
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to load %q: %w", id, err)
		}
		for _, sig := range slices.Sorted(maps.Keys(state)) {
			entries = append(entries, stateEntry{
				AutoSaveID:    id,
				Signature:     sig,
				Layout:        state[sig].Layout,
				ExpandToSizes: state[sig].ExpandToSizes,
			})
		}
	}

	out := newOutput(cmd)
	if out.Format() == output.FormatQuiet {
		return out.Write(ids)
	}
	return out.Write(entries)
}

func runStateClear(cmd *cobra.Command, args []string) error {
	p, store, err := openPersister(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := p.Clear(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to clear %q: %w", args[0], err)
	}
	newOutput(cmd).Done("Cleared layouts saved under %s", args[0])
	return nil
}

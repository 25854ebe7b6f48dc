package group

import (
	"errors"
	"testing"
	"time"

	"splitpane/internal/layout"
	"splitpane/internal/persist"
	"splitpane/internal/storage"
)

func intPtr(v int) *int { return &v }

func mustRegister(t *testing.T, g *Group, p Pane) string {
	t.Helper()
	id, err := g.RegisterPane(p)
	if err != nil {
		t.Fatalf("RegisterPane(%q) failed: %v", p.ID, err)
	}
	return id
}

func expectLayout(t *testing.T, g *Group, want ...float64) {
	t.Helper()
	got := g.Layout()
	if !got.Equal(layout.Layout(want)) {
		t.Fatalf("layout = [%s], want [%s]", got, layout.Layout(want))
	}
}

func twoPanes(t *testing.T, opts Options, a, b layout.PaneConstraints) *Group {
	t.Helper()
	g := New(opts)
	mustRegister(t, g, Pane{ID: "a", Constraints: a})
	mustRegister(t, g, Pane{ID: "b", Constraints: b})
	if err := g.RegisterHandle("h"); err != nil {
		t.Fatalf("RegisterHandle failed: %v", err)
	}
	return g
}

// ==================== Registry Tests ====================

func TestRegisterPane_DefaultLayout(t *testing.T) {
	g := New(Options{})
	mustRegister(t, g, Pane{ID: "a", Constraints: layout.PaneConstraints{DefaultSize: layout.Size(30)}})
	mustRegister(t, g, Pane{ID: "b"})
	mustRegister(t, g, Pane{ID: "c"})

	expectLayout(t, g, 30, 35, 35)
}

func TestRegisterPane_Ordering(t *testing.T) {
	g := New(Options{})
	mustRegister(t, g, Pane{ID: "c", Order: intPtr(2)})
	mustRegister(t, g, Pane{ID: "a"})
	mustRegister(t, g, Pane{ID: "b", Order: intPtr(1)})
	mustRegister(t, g, Pane{ID: "d"})
	mustRegister(t, g, Pane{ID: "e", Order: intPtr(1)})

	want := []string{"a", "d", "b", "e", "c"}
	got := g.PaneIDs()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("PaneIDs() = %v, want %v", got, want)
		}
	}
}

func TestRegisterPane_GeneratedID(t *testing.T) {
	g := New(Options{})
	id := mustRegister(t, g, Pane{})
	if id == "" {
		t.Fatal("expected generated id")
	}
	if g.panes[0].idFromUser {
		t.Error("generated id must not be marked as user provided")
	}
}

func TestRegisterPane_Duplicate(t *testing.T) {
	g := New(Options{})
	mustRegister(t, g, Pane{ID: "a"})
	if _, err := g.RegisterPane(Pane{ID: "a"}); !errors.Is(err, ErrDuplicatePane) {
		t.Errorf("expected ErrDuplicatePane, got %v", err)
	}
}

func TestUnregisterPane(t *testing.T) {
	g := New(Options{})
	mustRegister(t, g, Pane{ID: "a", Constraints: layout.PaneConstraints{Collapsible: true, MinSize: 10}})
	mustRegister(t, g, Pane{ID: "b"})
	mustRegister(t, g, Pane{ID: "c"})
	_ = g.Layout()

	if err := g.CollapsePane("a"); err != nil {
		t.Fatal(err)
	}
	if !g.UnregisterPane("a") {
		t.Fatal("expected pane to be removed")
	}
	if g.UnregisterPane("a") {
		t.Error("second unregister should report false")
	}
	if _, ok := g.collapseMemory["a"]; ok {
		t.Error("collapse memory not purged")
	}

	expectLayout(t, g, 50, 50)
}

func TestSize_NotFound(t *testing.T) {
	g := New(Options{})
	if _, err := g.Size("nope"); !errors.Is(err, ErrPaneNotFound) {
		t.Errorf("expected ErrPaneNotFound, got %v", err)
	}
}

// ==================== Resize / Collapse Tests ====================

func TestResizePane(t *testing.T) {
	g := New(Options{})
	mustRegister(t, g, Pane{ID: "a", Constraints: layout.PaneConstraints{DefaultSize: layout.Size(30)}})
	mustRegister(t, g, Pane{ID: "b"})
	mustRegister(t, g, Pane{ID: "c"})

	if err := g.ResizePane("a", 50); err != nil {
		t.Fatal(err)
	}
	expectLayout(t, g, 50, 15, 35)

	// The last pane resizes through the handle before it.
	if err := g.ResizePane("c", 45); err != nil {
		t.Fatal(err)
	}
	expectLayout(t, g, 50, 5, 45)

	if size, _ := g.Size("c"); size != 45 {
		t.Errorf("Size(c) = %g, want 45", size)
	}
}

func TestResizePane_Constrained(t *testing.T) {
	g := twoPanes(t, Options{}, layout.PaneConstraints{MaxSize: 70}, layout.PaneConstraints{})

	if err := g.ResizePane("a", 90); err != nil {
		t.Fatal(err)
	}
	expectLayout(t, g, 70, 30)
}

func TestCollapseExpand_RoundTrip(t *testing.T) {
	var collapses, expands int
	g := New(Options{})
	mustRegister(t, g, Pane{
		ID:          "side",
		Constraints: layout.PaneConstraints{Collapsible: true, MinSize: 10, DefaultSize: layout.Size(40)},
		Callbacks: Callbacks{
			OnCollapse: func() { collapses++ },
			OnExpand:   func() { expands++ },
		},
	})
	mustRegister(t, g, Pane{ID: "main"})
	expectLayout(t, g, 40, 60)

	if err := g.CollapsePane("side"); err != nil {
		t.Fatal(err)
	}
	expectLayout(t, g, 0, 100)
	if ok, _ := g.IsCollapsed("side"); !ok {
		t.Error("expected side to be collapsed")
	}
	if ok, _ := g.IsExpanded("side"); ok {
		t.Error("collapsed pane reported expanded")
	}

	// Collapsing again is a no-op and keeps the remembered size.
	if err := g.CollapsePane("side"); err != nil {
		t.Fatal(err)
	}

	if err := g.ExpandPane("side"); err != nil {
		t.Fatal(err)
	}
	expectLayout(t, g, 40, 60)

	if collapses != 1 {
		t.Errorf("OnCollapse called %d times, want 1", collapses)
	}
	// Once for the initial layout, once for the expand.
	if expands != 2 {
		t.Errorf("OnExpand called %d times, want 2", expands)
	}
}

func TestCollapse_LastPane(t *testing.T) {
	g := twoPanes(t, Options{},
		layout.PaneConstraints{DefaultSize: layout.Size(70)},
		layout.PaneConstraints{Collapsible: true, MinSize: 10},
	)
	expectLayout(t, g, 70, 30)

	if err := g.CollapsePane("b"); err != nil {
		t.Fatal(err)
	}
	expectLayout(t, g, 100, 0)

	if err := g.ExpandPane("b"); err != nil {
		t.Fatal(err)
	}
	expectLayout(t, g, 70, 30)
}

func TestExpand_FallsBackToMinSize(t *testing.T) {
	g := twoPanes(t, Options{},
		layout.PaneConstraints{Collapsible: true, MinSize: 15},
		layout.PaneConstraints{},
	)
	if err := g.SetLayout(layout.Layout{0, 100}); err != nil {
		t.Fatal(err)
	}

	if err := g.ExpandPane("a"); err != nil {
		t.Fatal(err)
	}
	expectLayout(t, g, 15, 85)
}

func TestCollapse_IneligibleIsNoop(t *testing.T) {
	g := twoPanes(t, Options{}, layout.PaneConstraints{}, layout.PaneConstraints{})
	if err := g.CollapsePane("a"); err != nil {
		t.Fatal(err)
	}
	if err := g.ExpandPane("a"); err != nil {
		t.Fatal(err)
	}
	expectLayout(t, g, 50, 50)

	if ok, _ := g.IsExpanded("a"); !ok {
		t.Error("non-collapsible pane should always be expanded")
	}
}

func TestUpdateConstraints(t *testing.T) {
	g := twoPanes(t, Options{}, layout.PaneConstraints{}, layout.PaneConstraints{})
	expectLayout(t, g, 50, 50)

	if err := g.UpdateConstraints("a", layout.PaneConstraints{MaxSize: 30}); err != nil {
		t.Fatal(err)
	}
	expectLayout(t, g, 30, 70)

	if err := g.UpdateConstraints("b", layout.PaneConstraints{MinSize: 80}); err != nil {
		t.Fatal(err)
	}
	expectLayout(t, g, 20, 80)
}

func TestUpdateConstraints_CollapsedStaysCollapsed(t *testing.T) {
	g := twoPanes(t, Options{},
		layout.PaneConstraints{Collapsible: true, MinSize: 10},
		layout.PaneConstraints{},
	)
	if err := g.CollapsePane("a"); err != nil {
		t.Fatal(err)
	}
	expectLayout(t, g, 0, 100)

	if err := g.UpdateConstraints("a", layout.PaneConstraints{Collapsible: true, MinSize: 20}); err != nil {
		t.Fatal(err)
	}
	expectLayout(t, g, 0, 100)

	if err := g.UpdateConstraints("a", layout.PaneConstraints{Collapsible: true, MinSize: 20, CollapsedSize: 5}); err != nil {
		t.Fatal(err)
	}
	expectLayout(t, g, 5, 95)
}

// ==================== Drag Tests ====================

func TestPointerDrag_MeasuredFromStart(t *testing.T) {
	g := twoPanes(t, Options{}, layout.PaneConstraints{}, layout.PaneConstraints{})

	if err := g.StartDrag("h", 100, Rect{Width: 1, Height: 20}); err != nil {
		t.Fatal(err)
	}
	if c := g.Cursor(); c != CursorHorizontal {
		t.Errorf("cursor = %s, want horizontal", c)
	}

	if err := g.UpdateDrag("h", 10, layout.TriggerPointer); err != nil {
		t.Fatal(err)
	}
	expectLayout(t, g, 60, 40)

	if err := g.UpdateDrag("h", 20, layout.TriggerPointer); err != nil {
		t.Fatal(err)
	}
	expectLayout(t, g, 70, 30)

	// Returning to the start position restores the snapshot.
	if err := g.UpdateDrag("h", 0, layout.TriggerPointer); err != nil {
		t.Fatal(err)
	}
	expectLayout(t, g, 50, 50)

	d, ok := g.Drag()
	if !ok || d.HandleID != "h" || d.InitialPosition != 100 {
		t.Errorf("unexpected drag state %+v", d)
	}

	g.StopDrag()
	if _, ok := g.Drag(); ok {
		t.Error("drag should be cleared")
	}
	if g.Cursor() != CursorNone {
		t.Errorf("cursor = %s after stop, want none", g.Cursor())
	}
}

func TestPointerDrag_BlockedCursor(t *testing.T) {
	g := twoPanes(t, Options{}, layout.PaneConstraints{MaxSize: 60}, layout.PaneConstraints{})
	if err := g.StartDrag("h", 0, Rect{}); err != nil {
		t.Fatal(err)
	}

	_ = g.UpdateDrag("h", 10, layout.TriggerPointer)
	expectLayout(t, g, 60, 40)
	if g.Cursor() != CursorHorizontal {
		t.Errorf("cursor = %s, want horizontal", g.Cursor())
	}

	_ = g.UpdateDrag("h", 20, layout.TriggerPointer)
	expectLayout(t, g, 60, 40)
	if g.Cursor() != CursorHorizontalMax {
		t.Errorf("cursor = %s, want horizontal-max", g.Cursor())
	}

	_ = g.UpdateDrag("h", 20, layout.TriggerPointer)
	if g.Cursor() != CursorHorizontalMax {
		t.Errorf("repeated delta changed cursor to %s", g.Cursor())
	}

	_ = g.UpdateDrag("h", -5, layout.TriggerPointer)
	expectLayout(t, g, 45, 55)
	if g.Cursor() != CursorHorizontal {
		t.Errorf("cursor = %s, want horizontal", g.Cursor())
	}
}

func TestPointerDrag_VerticalMin(t *testing.T) {
	g := twoPanes(t, Options{Direction: Vertical}, layout.PaneConstraints{MinSize: 40}, layout.PaneConstraints{})
	if err := g.StartDrag("h", 0, Rect{}); err != nil {
		t.Fatal(err)
	}

	_ = g.UpdateDrag("h", -20, layout.TriggerPointer)
	expectLayout(t, g, 40, 60)
	if g.Cursor() != CursorVertical {
		t.Errorf("cursor = %s, want vertical", g.Cursor())
	}

	_ = g.UpdateDrag("h", -30, layout.TriggerPointer)
	if g.Cursor() != CursorVerticalMin {
		t.Errorf("cursor = %s, want vertical-min", g.Cursor())
	}
}

func TestKeyboard_WithoutDrag(t *testing.T) {
	g := twoPanes(t, Options{}, layout.PaneConstraints{}, layout.PaneConstraints{})

	if err := g.UpdateDrag("h", 10, layout.TriggerKeyboard); err != nil {
		t.Fatal(err)
	}
	if err := g.UpdateDrag("h", 10, layout.TriggerKeyboard); err != nil {
		t.Fatal(err)
	}
	expectLayout(t, g, 70, 30)
	if g.Cursor() != CursorNone {
		t.Errorf("keyboard moves should not set a cursor, got %s", g.Cursor())
	}
}

func TestKeyboard_ExpandSnap(t *testing.T) {
	g := twoPanes(t, Options{},
		layout.PaneConstraints{Collapsible: true, MinSize: 20},
		layout.PaneConstraints{},
	)
	if err := g.SetLayout(layout.Layout{0, 100}); err != nil {
		t.Fatal(err)
	}

	if err := g.UpdateDrag("h", 5, layout.TriggerKeyboard); err != nil {
		t.Fatal(err)
	}
	expectLayout(t, g, 20, 80)
}

func TestDrag_Errors(t *testing.T) {
	g := twoPanes(t, Options{}, layout.PaneConstraints{}, layout.PaneConstraints{})
	if err := g.RegisterHandle("extra"); err != nil {
		t.Fatal(err)
	}

	if err := g.RegisterHandle("h"); !errors.Is(err, ErrDuplicateHandle) {
		t.Errorf("expected ErrDuplicateHandle, got %v", err)
	}
	if err := g.UpdateDrag("h", 10, layout.TriggerPointer); !errors.Is(err, ErrNoActiveDrag) {
		t.Errorf("expected ErrNoActiveDrag, got %v", err)
	}
	if err := g.UpdateDrag("missing", 10, layout.TriggerKeyboard); !errors.Is(err, ErrHandleNotFound) {
		t.Errorf("expected ErrHandleNotFound, got %v", err)
	}
	if err := g.UpdateDrag("extra", 10, layout.TriggerKeyboard); !errors.Is(err, ErrInvalidPivot) {
		t.Errorf("expected ErrInvalidPivot, got %v", err)
	}
	if err := g.UpdateDrag("h", 10, layout.TriggerImperative); !errors.Is(err, ErrInvalidTrigger) {
		t.Errorf("expected ErrInvalidTrigger, got %v", err)
	}
	if err := g.StartDrag("missing", 0, Rect{}); !errors.Is(err, ErrHandleNotFound) {
		t.Errorf("expected ErrHandleNotFound, got %v", err)
	}

	if err := g.StartDrag("h", 0, Rect{}); err != nil {
		t.Fatal(err)
	}
	if err := g.StartDrag("h", 0, Rect{}); !errors.Is(err, ErrDragInProgress) {
		t.Errorf("expected ErrDragInProgress, got %v", err)
	}

	if !g.UnregisterHandle("h") {
		t.Fatal("expected handle removal")
	}
	if _, ok := g.Drag(); ok {
		t.Error("removing the dragged handle should end the drag")
	}
}

func TestRegisterPane_CancelsDrag(t *testing.T) {
	g := twoPanes(t, Options{}, layout.PaneConstraints{}, layout.PaneConstraints{})
	if err := g.StartDrag("h", 0, Rect{}); err != nil {
		t.Fatal(err)
	}

	mustRegister(t, g, Pane{ID: "c"})
	if _, ok := g.Drag(); ok {
		t.Fatal("registering a pane should end the drag")
	}
	if g.Cursor() != CursorNone {
		t.Errorf("cursor = %s, want none", g.Cursor())
	}

	if err := g.UpdateDrag("h", 10, layout.TriggerPointer); !errors.Is(err, ErrNoActiveDrag) {
		t.Errorf("expected ErrNoActiveDrag, got %v", err)
	}

	if err := g.StartDrag("h", 0, Rect{}); err != nil {
		t.Fatal(err)
	}
	if err := g.UpdateDrag("h", 10, layout.TriggerPointer); err != nil {
		t.Fatal(err)
	}
	if got := g.Layout(); !layout.Equal(got[0], 100.0/3+10) {
		t.Errorf("drag after re-start did not move the handle: %s", got)
	}
}

func TestDragState_Delta(t *testing.T) {
	d := DragState{InitialPosition: 100}
	if got := d.Delta(150, 200); got != 25 {
		t.Errorf("Delta = %g, want 25", got)
	}
	if got := d.Delta(50, 0); got != 0 {
		t.Errorf("Delta with zero size = %g, want 0", got)
	}
}

// ==================== Layout / Notification Tests ====================

func TestSetLayout(t *testing.T) {
	g := twoPanes(t, Options{}, layout.PaneConstraints{}, layout.PaneConstraints{})

	var events []ResizeEvent
	if err := g.UpdateCallbacks("a", Callbacks{OnResize: func(e ResizeEvent) { events = append(events, e) }}); err != nil {
		t.Fatal(err)
	}

	if err := g.SetLayout(layout.Layout{25, 75}); err != nil {
		t.Fatal(err)
	}
	expectLayout(t, g, 25, 75)

	if len(events) != 2 {
		t.Fatalf("expected 2 resize events, got %d", len(events))
	}
	if events[0].HasPrev || events[0].Size != 50 {
		t.Errorf("unexpected first event %+v", events[0])
	}
	if !events[1].HasPrev || events[1].PrevSize != 50 || events[1].Size != 25 {
		t.Errorf("unexpected second event %+v", events[1])
	}

	err := g.SetLayout(layout.Layout{100})
	var shapeErr *layout.LayoutShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected LayoutShapeError, got %v", err)
	}
	if shapeErr.Want != 2 || shapeErr.Got != 1 {
		t.Errorf("unexpected shape error %+v", shapeErr)
	}
}

func TestUpdateCallbacks_NotFound(t *testing.T) {
	g := New(Options{})
	if err := g.UpdateCallbacks("x", Callbacks{}); !errors.Is(err, ErrPaneNotFound) {
		t.Errorf("expected ErrPaneNotFound, got %v", err)
	}
}

func TestSubscribe(t *testing.T) {
	g := twoPanes(t, Options{}, layout.PaneConstraints{}, layout.PaneConstraints{})

	var seen []layout.Layout
	unsubscribe := g.Subscribe(func(l layout.Layout) { seen = append(seen, l) })

	expectLayout(t, g, 50, 50)
	_ = g.UpdateDrag("h", 10, layout.TriggerKeyboard)

	// A no-op resize does not notify.
	_ = g.ResizePane("a", 60)

	unsubscribe()
	_ = g.UpdateDrag("h", 10, layout.TriggerKeyboard)

	if len(seen) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(seen))
	}
	if !seen[1].Equal(layout.Layout{60, 40}) {
		t.Errorf("unexpected notified layout %s", seen[1])
	}

	// Subscribers get their own copy.
	seen[1][0] = 0
	if g.Layout()[0] == 0 {
		t.Error("subscriber mutated the group layout")
	}
}

// ==================== Persistence Tests ====================

func persistentGroup(t *testing.T, store storage.Store, panes ...Pane) *Group {
	t.Helper()
	g := New(Options{ID: "editor", AutoSaveID: "editor", Store: store, Debounce: -1})
	for _, p := range panes {
		mustRegister(t, g, p)
	}
	if err := g.RegisterHandle("h"); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestPersistence_RestoresLayout(t *testing.T) {
	store := storage.NewMemory()

	first := persistentGroup(t, store, Pane{ID: "a"}, Pane{ID: "b"})
	expectLayout(t, first, 50, 50)
	if err := first.UpdateDrag("h", 20, layout.TriggerKeyboard); err != nil {
		t.Fatal(err)
	}
	first.Close()

	second := persistentGroup(t, store, Pane{ID: "a"}, Pane{ID: "b"})
	expectLayout(t, second, 70, 30)

	// A different pane set under the same autosave id starts from defaults.
	third := persistentGroup(t, store, Pane{ID: "a"}, Pane{ID: "b"}, Pane{ID: "c"})
	if got := third.Layout(); len(got) != 3 || layout.Equal(got[0], 70) {
		t.Errorf("unexpected layout for new pane set: %s", got)
	}
}

func TestPersistence_RestoresCollapseMemory(t *testing.T) {
	store := storage.NewMemory()
	side := Pane{ID: "side", Constraints: layout.PaneConstraints{Collapsible: true, MinSize: 10}}

	first := persistentGroup(t, store, side, Pane{ID: "main"})
	_ = first.ResizePane("side", 40)
	_ = first.CollapsePane("side")
	first.Close()

	second := persistentGroup(t, store, side, Pane{ID: "main"})
	expectLayout(t, second, 0, 100)
	if err := second.ExpandPane("side"); err != nil {
		t.Fatal(err)
	}
	expectLayout(t, second, 40, 60)
}

func TestPersistence_AnonymousPanes(t *testing.T) {
	store := storage.NewMemory()
	c := layout.PaneConstraints{MinSize: 10}

	first := persistentGroup(t, store, Pane{Order: intPtr(1), Constraints: c}, Pane{Order: intPtr(2), Constraints: c})
	_ = first.UpdateDrag("h", 15, layout.TriggerKeyboard)
	first.Close()

	second := persistentGroup(t, store, Pane{Order: intPtr(1), Constraints: c}, Pane{Order: intPtr(2), Constraints: c})
	expectLayout(t, second, 65, 35)
}

func TestPersistence_DebouncedUntilClose(t *testing.T) {
	store := storage.NewMemory()
	g := New(Options{AutoSaveID: "slow", Store: store, Debounce: time.Hour})
	mustRegister(t, g, Pane{ID: "a"})
	mustRegister(t, g, Pane{ID: "b"})
	_ = g.Layout()

	p := persist.New(store, persist.Options{})
	if _, err := p.LoadGroup(t.Context(), "slow"); !storage.IsNotFound(err) {
		t.Fatalf("expected nothing saved before the debounce fires, got %v", err)
	}

	if err := g.Close(); err != nil {
		t.Fatal(err)
	}
	state, err := p.LoadGroup(t.Context(), "slow")
	if err != nil {
		t.Fatalf("expected state after Close: %v", err)
	}
	if len(state) != 1 {
		t.Errorf("expected one pane set, got %d", len(state))
	}
}

func TestPersistence_CorruptLayoutFallsBack(t *testing.T) {
	tests := []struct {
		name  string
		saved string
	}{
		{"all zero", `{"a,b":{"layout":[0,0],"expandToSizes":{"a":40}}}`},
		{"negative", `{"a,b":{"layout":[-10,-10],"expandToSizes":{"a":40}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storage.NewMemory()
			if err := store.Set(t.Context(), persist.GroupKey(persist.DefaultNamespace, "editor"), tt.saved); err != nil {
				t.Fatal(err)
			}

			g := persistentGroup(t, store,
				Pane{ID: "a", Constraints: layout.PaneConstraints{Collapsible: true, MinSize: 10}},
				Pane{ID: "b"},
			)
			expectLayout(t, g, 50, 50)
			if len(g.collapseMemory) != 0 {
				t.Errorf("collapse memory restored from a discarded layout: %v", g.collapseMemory)
			}

			if err := g.UpdateDrag("h", 10, layout.TriggerKeyboard); err != nil {
				t.Fatal(err)
			}
			expectLayout(t, g, 60, 40)

			p := persist.New(store, persist.Options{})
			got, ok := p.Load(t.Context(), "editor", g.paneKeys())
			if !ok || !layout.Layout(got.Layout).Equal(layout.Layout{60, 40}) {
				t.Errorf("expected the repaired layout to be saved, got %v (%v)", got.Layout, ok)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	if d, err := ParseDirection("vertical"); err != nil || d != Vertical {
		t.Errorf("ParseDirection(vertical) = %v, %v", d, err)
	}
	if d, err := ParseDirection(""); err != nil || d != Horizontal {
		t.Errorf("ParseDirection(\"\") = %v, %v", d, err)
	}
	if _, err := ParseDirection("diagonal"); err == nil {
		t.Error("expected error for unknown direction")
	}
}

func TestCursor_String(t *testing.T) {
	tests := map[Cursor]string{
		CursorNone:          "none",
		CursorHorizontal:    "horizontal",
		CursorHorizontalMin: "horizontal-min",
		CursorHorizontalMax: "horizontal-max",
		CursorVertical:      "vertical",
		CursorVerticalMin:   "vertical-min",
		CursorVerticalMax:   "vertical-max",
	}
	for c, want := range tests {
		if c.String() != want {
			t.Errorf("%d.String() = %q, want %q", c, c.String(), want)
		}
	}
	if CursorHorizontal.Blocked() || !CursorVerticalMax.Blocked() {
		t.Error("unexpected Blocked result")
	}
}

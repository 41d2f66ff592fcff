package boardview

import (
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reorder/internal/board"
	"github.com/llehouerou/reorder/internal/drag"
	"github.com/llehouerou/reorder/internal/state"
	"github.com/llehouerou/reorder/internal/ui/testutil"
)

func newTestHarness(t *testing.T, width, height int, combine bool) (*testutil.Harness, *state.Mock) {
	t.Helper()
	store := state.NewMock(nil)
	m := New(board.FromColumns(testColumns()), store, Options{Combine: combine, FrameInterval: time.Millisecond})
	return testutil.NewHarness(m, width, height), store
}

func model(h *testutil.Harness) Model {
	return h.Model().(Model)
}

func cardTitles(h *testutil.Harness, columnID string) []string {
	col, _ := model(h).Board().Column(columnID)
	out := make([]string, 0, len(col.Cards))
	for _, c := range col.Cards {
		out = append(out, c.Title)
	}
	return out
}

// settle sends frames until the drop animation has been applied.
func settle(t *testing.T, h *testutil.Harness) {
	t.Helper()
	for range 2 * dropFrames {
		h.Send(FrameMsg(time.Now()))
		if !model(h).h.isBusy() {
			return
		}
	}
	t.Fatal("drop did not settle")
}

func TestModel_View(t *testing.T) {
	h, _ := newTestHarness(t, 80, 30, false)
	view := h.View()

	for _, want := range []string{"Todo (3)", "Done (1)", "│ a", "│ d", "2 columns, 4 cards"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if lines := testutil.SplitLines(view); len(lines) > 30 {
		t.Errorf("view has %d lines, want at most 30", len(lines))
	}
}

func TestModel_ViewBeforeSize(t *testing.T) {
	m := New(board.FromColumns(testColumns()), state.NewMock(nil), Options{})
	if got := m.View(); got != "" {
		t.Errorf("View() = %q, want empty before the first resize", got)
	}
}

func TestModel_MouseReorder(t *testing.T) {
	h, store := newTestHarness(t, 80, 30, false)

	h.Press(10, 7)
	if model(h).Phase() != drag.PhaseDragging {
		t.Fatalf("phase = %s, want dragging", model(h).Phase())
	}
	if h.LastCommand() == nil {
		t.Error("lifting should start the frame ticker")
	}
	h.Motion(10, 20)
	if !h.ViewContains("3rd place") {
		t.Errorf("status should describe the destination:\n%s", h.View())
	}
	h.Release(10, 20)
	settle(t, h)

	if got := cardTitles(h, "col0"); !slices.Equal(got, []string{"a", "c", "b"}) {
		t.Errorf("col0 = %v, want [a c b]", got)
	}
	if store.Saves() != 1 {
		t.Errorf("saves = %d, want 1", store.Saves())
	}
	if !h.ViewContains("Moved 'b' to the 3rd place") {
		t.Errorf("view should report the move:\n%s", h.View())
	}
}

func TestModel_MouseMoveAcrossColumns(t *testing.T) {
	h, store := newTestHarness(t, 80, 30, false)

	h.Press(10, 7)
	h.Motion(38, 15)
	h.Release(38, 15)
	settle(t, h)

	if got := cardTitles(h, "col0"); !slices.Equal(got, []string{"a", "c"}) {
		t.Errorf("col0 = %v", got)
	}
	if got := cardTitles(h, "col1"); !slices.Equal(got, []string{"d", "b"}) {
		t.Errorf("col1 = %v", got)
	}
	if cols := store.Stored(); len(cols) != 2 || len(cols[1].Cards) != 2 {
		t.Errorf("stored = %+v", cols)
	}
}

func TestModel_KeyboardReorder(t *testing.T) {
	h, store := newTestHarness(t, 80, 30, false)

	h.Key(" ")
	if model(h).Phase() != drag.PhaseDragging {
		t.Fatalf("phase = %s, want dragging", model(h).Phase())
	}
	h.Key("j")
	h.Key(" ")
	settle(t, h)

	if got := cardTitles(h, "col0"); !slices.Equal(got, []string{"b", "a", "c"}) {
		t.Errorf("col0 = %v, want [b a c]", got)
	}
	if store.Saves() != 1 {
		t.Errorf("saves = %d, want 1", store.Saves())
	}
	if m := model(h); m.h.focusCol != 0 || m.h.focusRow != 1 {
		t.Errorf("focus = (%d, %d), want the dropped card", m.h.focusCol, m.h.focusRow)
	}
}

func TestModel_Cancel(t *testing.T) {
	h, store := newTestHarness(t, 80, 30, false)

	h.Key(" ")
	h.Key("j")
	h.Key("esc")
	settle(t, h)

	if got := cardTitles(h, "col0"); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("col0 = %v, want unchanged", got)
	}
	if store.Saves() != 0 {
		t.Errorf("saves = %d, want 0", store.Saves())
	}
	if !h.ViewContains("Cancelled") {
		t.Errorf("view should report the cancel:\n%s", h.View())
	}
}

func TestModel_AddCardDuringDrag(t *testing.T) {
	h, store := newTestHarness(t, 80, 30, false)

	h.Key(" ")
	h.Key("a")
	if model(h).Phase() != drag.PhaseCollecting {
		t.Fatalf("phase = %s, want collecting", model(h).Phase())
	}
	if !h.ViewContains("Updating board") {
		t.Errorf("status should show the collection:\n%s", h.View())
	}
	h.Send(FrameMsg(time.Now()))
	if model(h).Phase() != drag.PhaseDragging {
		t.Fatalf("phase = %s, want dragging after the frame", model(h).Phase())
	}
	h.Key(" ")
	settle(t, h)

	want := []string{"New card 1", "a", "b", "c"}
	if got := cardTitles(h, "col0"); !slices.Equal(got, want) {
		t.Errorf("col0 = %v, want %v", got, want)
	}
	if store.Saves() != 1 {
		t.Errorf("saves = %d, want 1 for the added card", store.Saves())
	}
}

func TestModel_DropWhileCollecting(t *testing.T) {
	h, _ := newTestHarness(t, 80, 30, false)

	h.Key(" ")
	h.Key("a")
	h.Key(" ")
	if model(h).Phase() != drag.PhaseDropPending {
		t.Fatalf("phase = %s, want drop pending", model(h).Phase())
	}
	settle(t, h)

	if model(h).Phase() != drag.PhaseIdle {
		t.Errorf("phase = %s, want idle", model(h).Phase())
	}
	if got := cardTitles(h, "col0"); len(got) != 4 {
		t.Errorf("col0 = %v, want the added card kept", got)
	}
}

func TestModel_AddCardIdle(t *testing.T) {
	h, store := newTestHarness(t, 80, 30, false)

	h.Key("l")
	h.Key("a")

	if got := cardTitles(h, "col1"); !slices.Equal(got, []string{"New card 1", "d"}) {
		t.Errorf("col1 = %v", got)
	}
	if store.Saves() != 1 {
		t.Errorf("saves = %d, want 1", store.Saves())
	}
}

func TestModel_WheelScroll(t *testing.T) {
	h, _ := newTestHarness(t, 80, 12, false)
	scroll := func() int { return model(h).h.scroll["col0"] }

	h.Wheel(10, 5, false)
	if scroll() != 4 {
		t.Errorf("scroll = %d, want 4", scroll())
	}
	h.Wheel(10, 5, false)
	if scroll() != 4 {
		t.Errorf("scroll = %d, want clamped to 4", scroll())
	}
	h.Wheel(10, 5, true)
	if scroll() != 0 {
		t.Errorf("scroll = %d, want 0", scroll())
	}
	h.Wheel(40, 5, false)
	if got := model(h).h.scroll["col1"]; got != 0 {
		t.Errorf("col1 scroll = %d, want 0 when its cards fit", got)
	}
}

func TestModel_ToggleCombine(t *testing.T) {
	h, _ := newTestHarness(t, 80, 30, false)

	h.Key("c")
	if !model(h).h.combine {
		t.Error("combining should be on")
	}
	if !h.ViewContains("Combining on") {
		t.Errorf("view should report the toggle:\n%s", h.View())
	}

	h.Key(" ")
	h.Key("c")
	if !model(h).h.combine {
		t.Error("combining should not change during a drag")
	}
}

func TestModel_ResizeCancelsDrag(t *testing.T) {
	h, _ := newTestHarness(t, 80, 30, false)

	h.Press(10, 7)
	h.Send(tea.WindowSizeMsg{Width: 100, Height: 40})
	if model(h).Phase() != drag.PhaseIdle {
		t.Errorf("phase = %s, want idle after resize", model(h).Phase())
	}
	settle(t, h)
	if got := cardTitles(h, "col0"); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("col0 = %v, want unchanged", got)
	}
}

func TestModel_Help(t *testing.T) {
	h, _ := newTestHarness(t, 80, 30, false)
	before := model(h).h.bodyHeight

	h.Key("?")
	m := model(h)
	if !m.ShowHelp {
		t.Fatal("help should be shown")
	}
	if m.h.bodyHeight >= before {
		t.Errorf("body height = %d, want less than %d with full help", m.h.bodyHeight, before)
	}
}

//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name      string
		context   string
		minLength int
	}{
		{"global context", ContextGlobal, 4},
		{"board context", ContextBoard, 7},
		{"dragging context", ContextDragging, 8},
		{"unknown context returns empty", "unknown", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)
			if len(result) < tt.minLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d",
					tt.context, len(result), tt.minLength)
			}
			if tt.minLength == 0 && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected empty", tt.context, len(result))
			}
			for _, b := range result {
				if b.Context != tt.context {
					t.Errorf("binding %v has context %q", b.Keys, b.Context)
				}
			}
		})
	}
}

func TestBindingsHaveRequiredFields(t *testing.T) {
	for _, b := range All {
		if b.Action == "" || len(b.Keys) == 0 || b.Description == "" {
			t.Errorf("incomplete binding: %+v", b)
		}
	}
}

func TestNoKeyBoundTwiceInAContext(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range All {
		for _, k := range b.Keys {
			id := b.Context + "/" + k
			if prev, ok := seen[id]; ok && prev != b.Action {
				t.Errorf("key %q in %s bound to %s and %s", k, b.Context, prev, b.Action)
			}
			seen[id] = b.Action
		}
	}
}

func TestHelp(t *testing.T) {
	h := HelpFor(ContextDragging)

	short := h.ShortHelp()
	if len(short) != len(ByContext(ContextDragging)) {
		t.Errorf("ShortHelp() has %d bindings", len(short))
	}

	var drop bool
	for _, b := range short {
		if b.Help().Desc == "Drop" {
			drop = true
			if b.Help().Key != "space" {
				t.Errorf("drop help key = %q, want space", b.Help().Key)
			}
		}
	}
	if !drop {
		t.Error("ShortHelp() should list the drop binding")
	}

	full := h.FullHelp()
	if len(full) != 2 || len(full[1]) != len(ByContext(ContextGlobal)) {
		t.Errorf("FullHelp() = %d groups", len(full))
	}
}

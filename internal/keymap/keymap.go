package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // ContextGlobal, ContextBoard or ContextDragging
}

// All contains all key bindings.
var All = []Binding{
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	{ActionHelp, []string{"?"}, "Toggle help", ContextGlobal},
	{ActionToggleCombine, []string{"c"}, "Toggle combining", ContextGlobal},
	{ActionAddCard, []string{"a"}, "Add card", ContextGlobal},

	{ActionMoveUp, []string{"k", "up"}, "Focus up", ContextBoard},
	{ActionMoveDown, []string{"j", "down"}, "Focus down", ContextBoard},
	{ActionMoveLeft, []string{"h", "left"}, "Previous column", ContextBoard},
	{ActionMoveRight, []string{"l", "right"}, "Next column", ContextBoard},
	{ActionScrollUp, []string{"pgup"}, "Scroll column up", ContextBoard},
	{ActionScrollDown, []string{"pgdown"}, "Scroll column down", ContextBoard},
	{ActionLift, []string{" "}, "Lift card", ContextBoard},

	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextDragging},
	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextDragging},
	{ActionMoveLeft, []string{"h", "left"}, "Move to previous column", ContextDragging},
	{ActionMoveRight, []string{"l", "right"}, "Move to next column", ContextDragging},
	{ActionScrollUp, []string{"pgup"}, "Scroll column up", ContextDragging},
	{ActionScrollDown, []string{"pgdown"}, "Scroll column down", ContextDragging},
	{ActionDrop, []string{" ", "enter"}, "Drop", ContextDragging},
	{ActionCancel, []string{"esc"}, "Cancel drag", ContextDragging},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Help exposes bindings to the bubbles help component.
type Help struct {
	context string
}

// HelpFor returns the help key map for a context. Global bindings are
// always listed.
func HelpFor(context string) Help {
	return Help{context: context}
}

func (h Help) ShortHelp() []key.Binding {
	return toKeys(ByContext(h.context))
}

func (h Help) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		toKeys(ByContext(h.context)),
		toKeys(ByContext(ContextGlobal)),
	}
}

func toKeys(bindings []Binding) []key.Binding {
	result := make([]key.Binding, 0, len(bindings))
	for _, b := range bindings {
		result = append(result, key.NewBinding(
			key.WithKeys(b.Keys...),
			key.WithHelp(displayKey(b.Keys[0]), b.Description),
		))
	}
	return result
}

func displayKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

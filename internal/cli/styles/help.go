package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// WorkspaceKeyMap defines keybindings of the interactive layout editor.
type WorkspaceKeyMap struct {
	SplitRight key.Binding
	SplitDown  key.Binding
	SplitLeft  key.Binding
	SplitUp    key.Binding
	Close      key.Binding
	Next       key.Binding
	Previous   key.Binding
	Grow       key.Binding
	Shrink     key.Binding
	SplitMode  key.Binding
	Save       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k WorkspaceKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SplitRight, k.SplitDown, k.Close, k.Next, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k WorkspaceKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SplitRight, k.SplitDown, k.SplitLeft, k.SplitUp},
		{k.Close, k.Next, k.Previous},
		{k.Grow, k.Shrink, k.SplitMode},
		{k.Save, k.Help, k.Quit},
	}
}

// DefaultWorkspaceKeyMap returns the default editor keybindings.
func DefaultWorkspaceKeyMap() WorkspaceKeyMap {
	return WorkspaceKeyMap{
		SplitRight: key.NewBinding(key.WithKeys("v", "|"), key.WithHelp("v", "split right")),
		SplitDown:  key.NewBinding(key.WithKeys("s", "-"), key.WithHelp("s", "split down")),
		SplitLeft:  key.NewBinding(key.WithKeys("V"), key.WithHelp("V", "split left")),
		SplitUp:    key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "split up")),
		Close:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "close pane")),
		Next:       key.NewBinding(key.WithKeys("tab", "l", "j"), key.WithHelp("tab", "next pane")),
		Previous:   key.NewBinding(key.WithKeys("shift+tab", "h", "k"), key.WithHelp("shift+tab", "previous pane")),
		Grow:       key.NewBinding(key.WithKeys(">", "+"), key.WithHelp(">", "grow")),
		Shrink:     key.NewBinding(key.WithKeys("<", "_"), key.WithHelp("<", "shrink")),
		SplitMode:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "toggle split mode")),
		Save:       key.NewBinding(key.WithKeys("w", "ctrl+s"), key.WithHelp("w", "save")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// NewHelp creates a help model styled with the theme.
func NewHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = theme.HelpKey
	h.Styles.ShortDesc = theme.HelpDesc
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = theme.HelpKey
	h.Styles.FullDesc = theme.HelpDesc
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.ShortSeparator = " • "
	return h
}

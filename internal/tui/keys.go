package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Switch    key.Binding
	Back      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	Start     key.Binding
	Exit      key.Binding
	Restart   key.Binding
	PlayAgain key.Binding
	Menu      key.Binding
}

var keys = keyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Switch:    key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch list")),
	Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	Start:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
	Exit:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "exit game")),
	Restart:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "restart")),
	PlayAgain: key.NewBinding(key.WithKeys("enter", "r"), key.WithHelp("enter", "play again")),
	Menu:      key.NewBinding(key.WithKeys("m", "esc"), key.WithHelp("m", "menu")),
}

// bindings adapts a list of bindings to help.KeyMap.
type bindings []key.Binding

func (b bindings) ShortHelp() []key.Binding { return b }

func (b bindings) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

func menuHelp() bindings {
	return bindings{keys.Up, keys.Down, keys.Select, keys.Quit}
}

func pickerHelp() bindings {
	return bindings{keys.Up, keys.Down, keys.Select, keys.Back}
}

func challengeHelp() bindings {
	return bindings{keys.Up, keys.Down, keys.Switch, keys.Select, keys.Back}
}

func waitingHelp() bindings {
	return bindings{keys.Start, keys.Back}
}

func playingHelp() bindings {
	return bindings{keys.Exit, keys.Restart, keys.ForceQuit}
}

func resultsHelp() bindings {
	return bindings{keys.PlayAgain, keys.Menu, keys.Quit}
}

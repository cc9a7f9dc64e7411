package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	left       key.Binding
	right      key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	logout     key.Binding
	newItem    key.Binding
	edit       key.Binding
	delete     key.Binding
	copy       key.Binding
	capsules   key.Binding
	save       key.Binding
	resetPass  key.Binding
	relayout   key.Binding
	yes        key.Binding
	no         key.Binding
	latestPage key.Binding
	interrupt  key.Binding
	buildInfo  key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	left:       key.NewBinding(key.WithKeys("left", "h")),
	right:      key.NewBinding(key.WithKeys("right", "l")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:     key.NewBinding(key.WithKeys("o")),
	newItem:    key.NewBinding(key.WithKeys("n")),
	edit:       key.NewBinding(key.WithKeys("e")),
	delete:     key.NewBinding(key.WithKeys("d")),
	copy:       key.NewBinding(key.WithKeys("c")),
	capsules:   key.NewBinding(key.WithKeys("t")),
	save:       key.NewBinding(key.WithKeys("ctrl+s")),
	resetPass:  key.NewBinding(key.WithKeys("ctrl+r")),
	relayout:   key.NewBinding(key.WithKeys("r")),
	yes:        key.NewBinding(key.WithKeys("y")),
	no:         key.NewBinding(key.WithKeys("n")),
	latestPage: key.NewBinding(key.WithKeys("G")),
	interrupt:  key.NewBinding(key.WithKeys("ctrl+c")),
	buildInfo:  key.NewBinding(key.WithKeys("v")),
}

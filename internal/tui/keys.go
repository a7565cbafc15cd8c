package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	forceQuit  key.Binding
	add        key.Binding
	edit       key.Binding
	toggleType key.Binding
	togglePwd  key.Binding
	copy       key.Binding
	delete     key.Binding
	info       key.Binding
	yes        key.Binding
	no         key.Binding

	// draft form only, plain letters are typed into the inputs there
	formType key.Binding
	formPwd  key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("q", "ctrl+c")),
	forceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	add:        key.NewBinding(key.WithKeys("a")),
	edit:       key.NewBinding(key.WithKeys("e")),
	toggleType: key.NewBinding(key.WithKeys("t")),
	togglePwd:  key.NewBinding(key.WithKeys(" ")),
	copy:       key.NewBinding(key.WithKeys("c")),
	delete:     key.NewBinding(key.WithKeys("ctrl+d", "x")),
	info:       key.NewBinding(key.WithKeys("i")),
	yes:        key.NewBinding(key.WithKeys("y")),
	no:         key.NewBinding(key.WithKeys("n")),
	formType:   key.NewBinding(key.WithKeys("ctrl+t")),
	formPwd:    key.NewBinding(key.WithKeys("ctrl+s")),
}

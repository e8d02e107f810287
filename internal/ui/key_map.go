package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	back      key.Binding
	playPause key.Binding
	translate key.Binding
	correct   key.Binding
	glossary  key.Binding
	cancel    key.Binding
	quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		playPause: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		translate: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "translate")),
		correct:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "correct")),
		glossary:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "glossary")),
		cancel:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "cancel task")),
		quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.back, k.playPause},
		{k.translate, k.correct, k.glossary},
		{k.cancel, k.quit},
	}
}

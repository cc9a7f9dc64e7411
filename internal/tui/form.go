package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// formFields is a column of labelled text inputs with one focused input.
type formFields struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newInput(placeholder string, charLimit int, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = charLimit
	in.Width = 40
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

func newFormFields(labels []string, inputs ...textinput.Model) formFields {
	f := formFields{labels: labels, inputs: inputs}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

func (f *formFields) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// rawValue keeps surrounding spaces, for passwords.
func (f *formFields) rawValue(i int) string {
	return f.inputs[i].Value()
}

func (f *formFields) focusNext() {
	f.setFocus((f.focus + 1) % len(f.inputs))
}

func (f *formFields) focusPrev() {
	f.setFocus((f.focus - 1 + len(f.inputs)) % len(f.inputs))
}

func (f *formFields) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

func (f *formFields) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.setFocus(0)
}

func (f *formFields) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *formFields) view() string {
	labelWidth := runewidth.StringWidth("Поле")
	for _, l := range f.labels {
		if w := runewidth.StringWidth(l); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s │ Значение\n", runewidth.FillRight("Поле", labelWidth)))
	b.WriteString(strings.Repeat("─", labelWidth))
	b.WriteString("─┼────────────────────────────────────────────\n")
	for i, in := range f.inputs {
		b.WriteString(runewidth.FillRight(f.labels[i], labelWidth))
		b.WriteString(" │ [")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}
	return b.String()
}

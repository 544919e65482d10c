package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rhasspy/phonetisaurus-go/internal/domain"
)

const historyLimit = 8

type entry struct {
	word  string
	prons []string
	err   error
}

type guessDoneMsg struct {
	word    string
	guesses []domain.Guess
	err     error
}

type model struct {
	theme Theme
	deps  Deps

	input   textinput.Model
	history []entry
	busy    bool
}

// Run starts the interactive pronunciation prompt.
func Run(deps Deps) error {
	p := tea.NewProgram(newModel(deps))
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	ti := textinput.New()
	ti.Placeholder = "word"
	ti.CharLimit = 64
	ti.Focus()

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		input: ti,
	}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			word := strings.TrimSpace(m.input.Value())
			if word == "" || m.busy {
				return m, nil
			}
			m.busy = true
			m.input.Reset()
			return m, m.guess(word)
		}

	case guessDoneMsg:
		m.busy = false
		if msg.err != nil && m.deps.Logger != nil {
			m.deps.Logger.Warn("tui.guess_failed", "word", msg.word, "err", msg.err.Error())
		}

		e := entry{word: msg.word, err: msg.err}
		for _, g := range msg.guesses {
			e.prons = append(e.prons, strings.Join(g.Phonemes, m.deps.PhonemeSeparator))
		}
		m.history = append(m.history, e)
		if len(m.history) > historyLimit {
			m.history = m.history[len(m.history)-historyLimit:]
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) guess(word string) tea.Cmd {
	return func() tea.Msg {
		guesses, err := m.deps.Guess(word)
		return guessDoneMsg{word: word, guesses: guesses, err: err}
	}
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("phonetisaurus"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	for _, e := range m.history {
		switch {
		case e.err != nil:
			fmt.Fprintf(&b, "%s  %s\n",
				m.theme.Word.Render(e.word),
				m.theme.Error.Render(e.err.Error()))
		case len(e.prons) == 0:
			fmt.Fprintf(&b, "%s  %s\n",
				m.theme.Word.Render(e.word),
				m.theme.Error.Render("no pronunciation"))
		default:
			for _, pron := range e.prons {
				fmt.Fprintf(&b, "%s  %s\n",
					m.theme.Word.Render(e.word),
					m.theme.Phonemes.Render(pron))
			}
		}
	}

	if m.busy {
		b.WriteString(m.theme.Help.Render("guessing..."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("enter: look up · esc: quit"))
	b.WriteString("\n")
	return b.String()
}

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	opStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectOp modelState = iota
	stateInput
	stateShowResult
)

// explorerModel lets the user pick an op, type an input and see the
// result, reusing the job's options.
type explorerModel struct {
	err      error
	job      Job
	input    textinput.Model
	result   string
	selected int
	state    modelState
}

func newExplorerModel(job *Job) *explorerModel {
	m := &explorerModel{job: *job, state: stateSelectOp}
	for i, op := range allOps {
		if op == job.Op {
			m.selected = i
		}
	}
	return m
}

type resultMsg struct {
	err    error
	result string
}

func (m *explorerModel) Init() tea.Cmd {
	return nil
}

func (m *explorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInput {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectOp && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectOp && m.selected < len(allOps)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectOp:
				m.job.Op = allOps[m.selected]
				m.prepareInput()
				m.state = stateInput
				return m, textinput.Blink

			case stateInput:
				return m, m.apply

			case stateShowResult:
				m.state = stateInput
				m.result = ""
				m.err = nil
				return m, nil
			}

		case "esc":
			switch m.state {
			case stateInput:
				m.state = stateSelectOp
			case stateShowResult:
				m.state = stateInput
				m.result = ""
				m.err = nil
			}
			return m, nil
		}

	case resultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
		return m, nil
	}

	if m.state == stateInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *explorerModel) prepareInput() {
	ti := textinput.New()
	ti.Placeholder = placeholder(m.job.Op)
	ti.Prompt = "input: "
	ti.Width = 60
	ti.Focus()
	m.input = ti
}

func (m *explorerModel) apply() tea.Msg {
	out, err := apply(&m.job, []byte(m.input.Value()))
	if err != nil {
		return resultMsg{err: err}
	}
	return resultMsg{result: string(out)}
}

func placeholder(op string) string {
	switch op {
	case opBase16Decode:
		return "68656c6c6f"
	case opBase16Decode4:
		return `\x68\x69`
	case opBase64Decode:
		return "aGVsbG8"
	case opParseU64:
		return "0x_ff_ff"
	case opParseI64:
		return "-9_223_372_036_854_775_808"
	case opParseF64, opRenderF64:
		return "6.02214076e23"
	default:
		return "hello"
	}
}

func (m *explorerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("wuffs explorer"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectOp:
		b.WriteString("Select an operation:\n\n")
		for i, op := range allOps {
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + op))
			} else {
				b.WriteString("  " + opStyle.Render(op))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter choose • q quit"))

	case stateInput:
		b.WriteString(fmt.Sprintf("Running %s\n\n", opStyle.Render(m.job.Op)))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter run • esc back • ctrl+c quit"))

	case stateShowResult:
		b.WriteString(fmt.Sprintf("%s %q:\n\n", opStyle.Render(m.job.Op), m.input.Value()))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter edit • q quit"))
	}

	return b.String()
}

func runInteractive(job *Job) error {
	p := tea.NewProgram(newExplorerModel(job), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	aotboot "github.com/wippyai/aot-boot"
	"github.com/wippyai/aot-boot/image"
	"github.com/wippyai/aot-boot/runtime"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	exportStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	entryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateLoading modelState = iota
	stateReady
)

type interactiveModel struct {
	err      error
	rt       *runtime.Runtime
	img      *image.Image
	filename string
	entry    string
	result   string
	exports  []string
	input    textinput.Model
	state    modelState
}

func newInteractiveModel(filename, entry string) *interactiveModel {
	input := textinput.New()
	input.Placeholder = "guest arguments (space separated)"
	input.Focus()

	return &interactiveModel{
		filename: filename,
		entry:    entry,
		input:    input,
		state:    stateLoading,
	}
}

type loadedMsg struct {
	err     error
	rt      *runtime.Runtime
	img     *image.Image
	exports []string
}

type bootedMsg struct {
	err    error
	status int
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadImage
}

func (m *interactiveModel) loadImage() tea.Msg {
	ctx := context.Background()

	img, err := image.FromFile(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}

	rt := runtime.New()
	if err := rt.Initialize(ctx, img); err != nil {
		rt.Close(ctx)
		return loadedMsg{err: err}
	}

	return loadedMsg{rt: rt, img: img, exports: rt.Exports()}
}

// bootSequence runs the post-initialization bootstrap steps with the typed
// arguments. SetArgs rebinds the same handle, so the sequence can run again
// with different arguments.
func (m *interactiveModel) bootSequence(args []string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		m.rt.ClearError()
		if err := m.rt.SetArgs(ctx, args); err != nil {
			return bootedMsg{err: err}
		}
		h, err := m.rt.Lookup(aotboot.CoreNamespace, aotboot.ArgsSymbol)
		if err != nil {
			return bootedMsg{err: err}
		}

		status := int(m.rt.Entry(m.entry)(ctx, h))
		if pending := m.rt.PendingError(); pending != nil {
			return bootedMsg{status: status, err: pending}
		}
		return bootedMsg{status: status}
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			if m.rt != nil {
				m.rt.Close(context.Background())
			}
			return m, tea.Quit

		case "enter":
			if m.state == stateReady {
				args := strings.Fields(m.input.Value())
				return m, m.bootSequence(args)
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.rt = msg.rt
		m.img = msg.img
		m.exports = msg.exports
		m.state = stateReady
		return m, nil

	case bootedMsg:
		if msg.err != nil {
			m.result = errorStyle.Render(fmt.Sprintf("status %d, fault: %v", msg.status, msg.err))
		} else {
			m.result = resultStyle.Render(fmt.Sprintf("exit status %d", msg.status))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("aotrun"))
	b.WriteString("\n\n")

	if m.state == stateLoading {
		b.WriteString("Loading " + m.filename + "...\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Image: %s (%d bytes)\n", m.img.Name(), m.img.Size()))
	b.WriteString("Entry: " + entryStyle.Render(m.entry) + "\n\n")

	b.WriteString("Exports:\n")
	for _, name := range m.exports {
		b.WriteString("  " + exportStyle.Render(name) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.result != "" {
		b.WriteString("\n" + m.result + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("enter: boot • esc: quit"))
	b.WriteString("\n")
	return b.String()
}

func runInteractive(filename, entry string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode requires a terminal")
	}

	p := tea.NewProgram(newInteractiveModel(filename, entry))
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(*interactiveModel); ok && m.err != nil {
		return m.err
	}
	return nil
}

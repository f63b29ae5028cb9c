package cli

import (
	"context"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/matzehuels/spritestitch/pkg/stitch"
)

// =============================================================================
// ConfirmModel - Interactive yes/no prompt
// =============================================================================

// ConfirmModel is the bubbletea model for a yes/no question.
// y/n answer directly; enter accepts the highlighted choice; esc, q and
// ctrl+c answer no.
type ConfirmModel struct {
	Prompt   string
	Yes      bool // highlighted choice
	Answered bool
}

// NewConfirmModel creates a prompt with "no" highlighted.
func NewConfirmModel(prompt string) ConfirmModel {
	return ConfirmModel{Prompt: prompt}
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch strings.ToLower(key.String()) {
	case "y":
		m.Yes, m.Answered = true, true
		return m, tea.Quit
	case "n", "q", "esc", "ctrl+c":
		m.Yes, m.Answered = false, true
		return m, tea.Quit
	case "left", "right", "h", "l", "tab":
		m.Yes = !m.Yes
	case "enter":
		m.Answered = true
		return m, tea.Quit
	}
	return m, nil
}

func (m ConfirmModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("? "))
	b.WriteString(m.Prompt)
	b.WriteString(" ")

	if m.Answered {
		if m.Yes {
			b.WriteString(StyleSuccess.Render("yes"))
		} else {
			b.WriteString(StyleDim.Render("no"))
		}
		b.WriteString("\n")
		return b.String()
	}

	yes, no := StyleDim.Render("yes"), StyleDim.Render("no")
	if m.Yes {
		yes = StyleHighlight.Render("[yes]")
	} else {
		no = StyleHighlight.Render("[no]")
	}
	b.WriteString(yes + " / " + no)
	b.WriteString(StyleDim.Render("  (y/n)"))
	return b.String()
}

// =============================================================================
// Confirmer adapters
// =============================================================================

// teaConfirmer asks on the terminal using ConfirmModel.
type teaConfirmer struct {
	in  io.Reader
	out io.Writer
}

// Confirm runs the prompt until the user answers or ctx is done.
func (c teaConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	p := tea.NewProgram(NewConfirmModel(prompt),
		tea.WithContext(ctx),
		tea.WithInput(c.in),
		tea.WithOutput(c.out),
	)
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ConfirmModel)
	return ok && m.Answered && m.Yes, nil
}

// confirmerFor picks how to answer the delete question: --yes and --keep
// answer without asking, an interactive terminal gets a prompt and
// anything else keeps the files.
func confirmerFor(yes, keep bool) stitch.Confirmer {
	switch {
	case keep:
		return stitch.NeverConfirm
	case yes:
		return stitch.AlwaysConfirm
	case term.IsTerminal(int(os.Stdin.Fd())):
		return teaConfirmer{in: os.Stdin, out: os.Stderr}
	}
	return stitch.NeverConfirm
}

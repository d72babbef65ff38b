package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hexboard/pkg/board"
	"github.com/matzehuels/hexboard/pkg/render/textgrid"
)

// boardModel is the bubbletea model for the interactive board viewer.
type boardModel struct {
	res   resolved
	board *board.Board
	err   error
	count int
}

func newBoardModel(res resolved) boardModel {
	m := boardModel{res: res}
	m.reroll()
	return m
}

// reroll builds and lays out a fresh board.
func (m *boardModel) reroll() {
	m.count++
	m.board, m.err = board.New(m.res.variant, m.res.buildOpts...)
	if m.err != nil {
		return
	}
	m.err = m.board.Layout(m.res.layout)
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.reroll()
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Hexboard · %s", m.res.variant)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("r reshuffle  q quit"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(StyleWarning.Render(fmt.Sprintf("layout failed: %v", m.err)))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(colorizeBoard(textgrid.Render(m.board)))
	b.WriteString("\n\n")

	status := fmt.Sprintf("board %d", m.count)
	if trials := m.board.TrialCount(); trials > 0 {
		status += fmt.Sprintf(" · %d trials", trials)
	}
	b.WriteString(StyleDim.Render(status))
	b.WriteString("\n")
	return b.String()
}

// newTUICmd creates the tui command.
func newTUICmd() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive board viewer",
		Long: `Interactive board viewer.

Shows a freshly generated board and reshuffles it on demand, using the same
rules and modes as 'generate'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			p := tea.NewProgram(newBoardModel(res), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run viewer: %w", err)
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

package observer

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	styleHeading  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	styleTurn     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	styleForfeit  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	styleWinner   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
)

// TerminalRenderer prints a human-readable narration of match lifecycle
// events to a terminal, widening or narrowing its heading rule to the
// detected terminal width when out is a real TTY.
type TerminalRenderer struct {
	out   io.Writer
	width int
}

// NewTerminalRenderer builds a renderer writing to out, probing its width
// via term.GetSize when out is backed by a file descriptor.
func NewTerminalRenderer(out *os.File) *TerminalRenderer {
	width := 80
	if term.IsTerminal(int(out.Fd())) {
		if w, _, err := term.GetSize(int(out.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	return &TerminalRenderer{out: out, width: width}
}

func (t *TerminalRenderer) rule(title string) {
	fmt.Fprintln(t.out, styleHeading.Render(title))
}

func (t *TerminalRenderer) OnMatchStarted(e MatchStartedEvent) {
	t.rule(fmt.Sprintf("=== match %s starting (seed %d) ===", e.MatchID, e.Seed))
}

func (t *TerminalRenderer) OnRoundStarted(e RoundStartedEvent) {
	t.rule(fmt.Sprintf("--- round %d: %s ---", e.Round, e.GoalKind))
}

func (t *TerminalRenderer) OnTurnStarted(e TurnStartedEvent) {
	fmt.Fprintln(t.out, styleTurn.Render(fmt.Sprintf("  %s's turn", e.PlayerID)))
}

func (t *TerminalRenderer) OnTurnEnded(e TurnEndedEvent) {
	line := fmt.Sprintf("  %s: %s", e.PlayerID, e.ActionKind)
	if e.BonusApplied {
		line += " (+bonus)"
	}
	fmt.Fprintln(t.out, styleTurn.Render(line))
}

func (t *TerminalRenderer) OnRoundEnded(e RoundEndedEvent) {
	fmt.Fprintf(t.out, "round %d goal points: %v\n", e.Round, e.GoalPoints)
}

func (t *TerminalRenderer) OnPlayerForfeited(e PlayerForfeitedEvent) {
	fmt.Fprintln(t.out, styleForfeit.Render(fmt.Sprintf("%s forfeited: %s (%d remaining)", e.PlayerID, e.Reason, e.RemainingPlayers)))
}

func (t *TerminalRenderer) OnMatchEnded(e MatchEndedEvent) {
	t.rule("=== final scores ===")
	for id, score := range e.FinalScores {
		line := fmt.Sprintf("  %s: %d", id, score)
		if id == e.WinnerID {
			line = styleWinner.Render(line + " 👑")
		}
		fmt.Fprintln(t.out, line)
	}
}

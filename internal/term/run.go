package term

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"mad-life/internal/session"
)

// Run takes over the terminal and blocks until the user quits. The standard
// logger is redirected for the duration so it cannot corrupt the display.
func Run(state *session.State, opts Options) error {
	prevOut := log.Writer()
	defer log.SetOutput(prevOut)

	if opts.LogFile != "" {
		f, err := tea.LogToFile(opts.LogFile, "mad-life")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(NewModel(state, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal: %w", err)
	}
	log.SetOutput(prevOut)
	log.Printf("terminal closed at generation %d, population %d", state.Generation, state.Cells.Len())
	return nil
}

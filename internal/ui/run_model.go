package ui

import (
	"os"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"

	"github.com/oakwood-commons/kvq/internal/session"
)

// RunModel starts the Bubble Tea program around an already-seeded
// session. Width/height of 0 auto-detect the terminal size (falling back
// to 80x24). Extra ProgramOptions (e.g., custom IO) can be provided to
// mirror tea.NewProgram.
func RunModel(sess *session.Session, cfg Config, width, height int, opts ...tea.ProgramOption) error {
	if !cfg.NoColor {
		SetTheme(DefaultTheme())
	}

	m := InitialModel(sess, cfg)

	runW := width
	runH := height
	if runW <= 0 || runH <= 0 {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			if runW <= 0 {
				runW = w
			}
			if runH <= 0 {
				runH = h
			}
		}
	}
	if runW <= 0 {
		runW = 80
	}
	if runH <= 0 {
		runH = 24
	}
	m.width = runW
	m.height = runH
	m.applyLayout()
	if width > 0 || height > 0 {
		opts = append(opts, tea.WithWindowSize(runW, runH))
	}

	prog := tea.NewProgram(&m, opts...)
	_, err := prog.Run()
	return err
}

package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"

	"github.com/five82/layerterm/internal/console"
)

// RunTcell drives the same model straight on a tcell screen. A nil screen
// opens the terminal.
func RunTcell(ctx context.Context, screen tcell.Screen, opts Options) error {
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("create screen: %w", err)
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	_, err := runScreen(ctx, screen, New(opts))
	return err
}

// runScreen is the tcell event loop. It returns the final model once a quit
// key is pressed or ctx is done.
func runScreen(ctx context.Context, screen tcell.Screen, m Model) (Model, error) {
	out := console.NewScreen(screen)

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	w, h := screen.Size()
	m = m.apply(tea.WindowSizeMsg{Width: w, Height: h})
	m.draw(out)

	for {
		select {
		case <-ctx.Done():
			return m, nil
		case ev := <-events:
			msg, ok := translateEvent(ev)
			if !ok {
				continue
			}
			if _, resized := msg.(tea.WindowSizeMsg); resized {
				screen.Sync()
			}
			m = m.apply(msg)
			if m.quitting {
				return m, nil
			}
			m.draw(out)
		}
	}
}

// apply runs Update and drops the command. Field commands only drive cursor
// blinking, which this backend does not do.
func (m Model) apply(msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func (m Model) draw(out *console.Screen) {
	m.scene.Render(out)
	out.Show()
}

var tcellKeys = map[tcell.Key]tea.KeyType{
	tcell.KeyTab:        tea.KeyTab,
	tcell.KeyBacktab:    tea.KeyShiftTab,
	tcell.KeyLeft:       tea.KeyLeft,
	tcell.KeyRight:      tea.KeyRight,
	tcell.KeyUp:         tea.KeyUp,
	tcell.KeyDown:       tea.KeyDown,
	tcell.KeyHome:       tea.KeyHome,
	tcell.KeyEnd:        tea.KeyEnd,
	tcell.KeyPgUp:       tea.KeyPgUp,
	tcell.KeyPgDn:       tea.KeyPgDown,
	tcell.KeyBackspace:  tea.KeyBackspace,
	tcell.KeyBackspace2: tea.KeyBackspace,
	tcell.KeyDelete:     tea.KeyDelete,
	tcell.KeyEnter:      tea.KeyEnter,
	tcell.KeyEscape:     tea.KeyEsc,
	tcell.KeyCtrlA:      tea.KeyCtrlA,
	tcell.KeyCtrlC:      tea.KeyCtrlC,
	tcell.KeyCtrlE:      tea.KeyCtrlE,
	tcell.KeyCtrlT:      tea.KeyCtrlT,
}

// translateEvent maps tcell events onto the Bubble Tea messages the model
// understands.
func translateEvent(ev tcell.Event) (tea.Msg, bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		return tea.WindowSizeMsg{Width: w, Height: h}, true
	case *tcell.EventKey:
		return keyMsg(ev)
	}
	return nil, false
}

func keyMsg(ev *tcell.EventKey) (tea.KeyMsg, bool) {
	alt := ev.Modifiers()&tcell.ModAlt != 0
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 && r >= 'a' && r <= 'z' {
			return tea.KeyMsg{Type: tea.KeyCtrlA + tea.KeyType(r-'a'), Alt: alt}, true
		}
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: alt}, true
	}
	t, ok := tcellKeys[ev.Key()]
	if !ok {
		return tea.KeyMsg{}, false
	}
	return tea.KeyMsg{Type: t, Alt: alt}, true
}

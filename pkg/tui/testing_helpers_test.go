package tui

import (
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/pluqqy-widgets/pkg/models"
	"github.com/pluqqy/pluqqy-widgets/pkg/slider"
)

// keyMsg builds the tea.KeyMsg bubbletea would deliver for a key name
func keyMsg(s string) tea.KeyMsg {
	named := map[string]tea.KeyType{
		"enter":     tea.KeyEnter,
		"tab":       tea.KeyTab,
		"esc":       tea.KeyEsc,
		"backspace": tea.KeyBackspace,
		"delete":    tea.KeyDelete,
		"left":      tea.KeyLeft,
		"right":     tea.KeyRight,
		"up":        tea.KeyUp,
		"down":      tea.KeyDown,
		" ":         tea.KeySpace,
		"ctrl+c":    tea.KeyCtrlC,
		"ctrl+x":    tea.KeyCtrlX,
	}
	if t, ok := named[s]; ok {
		if t == tea.KeySpace {
			return tea.KeyMsg{Type: t, Runes: []rune{' '}}
		}
		return tea.KeyMsg{Type: t}
	}
	if strings.HasPrefix(s, "alt+") {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(strings.TrimPrefix(s, "alt+")), Alt: true}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeKeys sends each rune of keys to m as a separate key press
func typeKeys(m tea.Model, keys string) []tea.Cmd {
	var cmds []tea.Cmd
	for _, r := range keys {
		_, cmd := m.Update(keyMsg(string(r)))
		cmds = append(cmds, cmd)
	}
	return cmds
}

// manualClock fires its timers only when Tick is called
type manualClock struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	fn      func()
	stopped bool
}

func (t *manualTimer) Stop() {
	t.stopped = true
}

func (c *manualClock) Every(_ time.Duration, fn func()) slider.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{fn: fn}
	c.timers = append(c.timers, t)
	return t
}

func (c *manualClock) Tick() {
	c.mu.Lock()
	var live []*manualTimer
	for _, t := range c.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	c.mu.Unlock()
	for _, t := range live {
		t.fn()
	}
}

func testDeck() *models.Deck {
	return &models.Deck{
		Name: "Test Deck",
		Slides: []models.Slide{
			{Image: "https://example.com/a.jpg", Title: "Alpha"},
			{Image: "https://example.com/b.jpg", Title: "Beta"},
			{Image: "https://example.com/c.jpg", Title: "Gamma"},
		},
	}
}

func newTestApp(t *testing.T, startView string) (*App, *manualClock) {
	t.Helper()
	clock := &manualClock{}
	app, err := NewApp(AppOptions{
		Deck:      testDeck(),
		StartView: startView,
		Clock:     clock,
	})
	require.NoError(t, err)
	t.Cleanup(app.Close)
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return app, clock
}

// runCmd executes cmd and returns its message, or nil when cmd is nil
func runCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// containsText reports whether the rendered view shows text
func containsText(view, text string) bool {
	return strings.Contains(view, text)
}

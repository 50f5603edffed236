package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/pluqqy-widgets/pkg/calculator"
)

const (
	displayWidth = 27
	keyWidth     = 6
	tapeHeight   = 6
)

// copyToClipboard is swapped out in tests
var copyToClipboard = clipboard.WriteAll

// historyTape keeps the most recent computations for display
type historyTape struct {
	entries []calculator.Computation
	size    int
}

func newHistoryTape(size int) *historyTape {
	if size <= 0 {
		size = 1
	}
	return &historyTape{size: size}
}

// Add records c, dropping the oldest entry when the tape is full
func (h *historyTape) Add(c calculator.Computation) {
	h.entries = append(h.entries, c)
	if len(h.entries) > h.size {
		h.entries = h.entries[len(h.entries)-h.size:]
	}
}

func (h *historyTape) Entries() []calculator.Computation {
	return h.entries
}

func (h *historyTape) Clear() {
	h.entries = nil
}

type calculatorKeyMap struct {
	Copy      key.Binding
	ClearTape key.Binding
	Scroll    key.Binding
	Switch    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newCalculatorKeyMap() calculatorKeyMap {
	return calculatorKeyMap{
		Copy: key.NewBinding(
			key.WithKeys(Shortcuts.Copy.Get()),
			key.WithHelp(FormatShortcutForHelp(Shortcuts.Copy), "copy"),
		),
		ClearTape: key.NewBinding(
			key.WithKeys(Shortcuts.ClearTape.Get()),
			key.WithHelp(FormatShortcutForHelp(Shortcuts.ClearTape), "clear history"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "pgup", "pgdown"),
			key.WithHelp("↑/↓", "scroll history"),
		),
		Switch: key.NewBinding(
			key.WithKeys(Shortcuts.SwitchView.Get()),
			key.WithHelp(FormatShortcutForHelp(Shortcuts.SwitchView), "slider"),
		),
		Help: key.NewBinding(
			key.WithKeys(Shortcuts.Help.Get()),
			key.WithHelp(FormatShortcutForHelp(Shortcuts.Help), "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(Shortcuts.Quit.Get()),
			key.WithHelp(FormatShortcutForHelp(Shortcuts.Quit), "quit"),
		),
	}
}

func (k calculatorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.Switch, k.Help, k.Quit}
}

func (k calculatorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Copy, k.ClearTape, k.Scroll},
		{k.Switch, k.Help, k.Quit},
	}
}

// CalculatorModel is the calculator view. It forwards key presses to the
// engine through the keypad table and renders the engine's display.
type CalculatorModel struct {
	engine *calculator.Engine
	keypad *calculator.Keypad
	tape   *historyTape

	tapeViewport viewport.Model
	confirm      *ConfirmationModel
	keys         calculatorKeyMap
	help         help.Model
	showHelp     bool

	width  int
	height int
}

// NewCalculatorModel creates the view for engine. tape must be the history
// the engine reports computations to.
func NewCalculatorModel(engine *calculator.Engine, tape *historyTape, showHelp bool) *CalculatorModel {
	h := help.New()
	h.ShowAll = showHelp
	return &CalculatorModel{
		engine:       engine,
		keypad:       calculator.NewKeypad(engine),
		tape:         tape,
		tapeViewport: viewport.New(displayWidth+2, tapeHeight),
		confirm:      NewConfirmation(),
		keys:         newCalculatorKeyMap(),
		help:         h,
		showHelp:     showHelp,
	}
}

func (m *CalculatorModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the available space
func (m *CalculatorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
}

// Engine returns the engine behind the view
func (m *CalculatorModel) Engine() *calculator.Engine {
	return m.engine
}

func (m *CalculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.confirm.Active() {
			return m, m.confirm.Update(msg)
		}
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *CalculatorModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Copy):
		return m.copyDisplay()

	case key.Matches(msg, m.keys.ClearTape):
		if len(m.tape.Entries()) == 0 {
			return nil
		}
		m.confirm.ShowInline("Clear calculation history?", true, func() tea.Cmd {
			m.tape.Clear()
			m.refreshTape()
			return statusCmd("History cleared")
		}, nil)
		return nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return nil

	case key.Matches(msg, m.keys.Scroll):
		var cmd tea.Cmd
		m.tapeViewport, cmd = m.tapeViewport.Update(msg)
		return cmd
	}

	// Pasted input arrives as a single message with several runes
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 {
		if err := m.keypad.Run(string(msg.Runes)); err != nil {
			return statusCmd(fmt.Sprintf("✗ %v", err))
		}
		m.refreshTape()
		return nil
	}

	if id, ok := m.keypad.ControlForKey(msg.String()); ok {
		if err := m.keypad.Press(id); err != nil {
			return statusCmd(fmt.Sprintf("✗ %v", err))
		}
		m.refreshTape()
	}
	return nil
}

func (m *CalculatorModel) copyDisplay() tea.Cmd {
	text := m.engine.DisplayText()
	return func() tea.Msg {
		if err := copyToClipboard(text); err != nil {
			return StatusMsg(fmt.Sprintf("✗ Failed to copy to clipboard: %v", err))
		}
		return StatusMsg(fmt.Sprintf("✓ Copied %s to clipboard", text))
	}
}

func (m *CalculatorModel) refreshTape() {
	entries := m.tape.Entries()
	lines := make([]string, len(entries))
	for i, c := range entries {
		lines[i] = c.String()
	}
	m.tapeViewport.SetContent(strings.Join(lines, "\n"))
	m.tapeViewport.GotoBottom()
}

func (m *CalculatorModel) View() string {
	var b strings.Builder

	b.WriteString(renderHeader(m.width, "Calculator"))
	b.WriteString("\n\n")

	expression := ""
	if operand, op, ok := m.engine.Pending(); ok {
		expression = operand + " " + op.String()
	}
	b.WriteString(ExpressionStyle.Width(displayWidth + 2).Render(expression))
	b.WriteString("\n")
	b.WriteString(DisplayStyle.Width(displayWidth).Render(m.engine.DisplayText()))
	b.WriteString("\n")
	b.WriteString(renderKeypad())
	b.WriteString("\n\n")

	b.WriteString(HeaderStyle.Render("HISTORY"))
	b.WriteString("\n")
	if len(m.tape.Entries()) == 0 {
		b.WriteString(DescriptionStyle.Render("No calculations yet"))
	} else {
		b.WriteString(m.tapeViewport.View())
	}
	b.WriteString("\n")

	if m.confirm.Active() {
		b.WriteString("\n")
		b.WriteString(m.confirm.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return ContentPaddingStyle.Render(b.String())
}

// keypadLayout is the on-screen button grid
var keypadLayout = [][]string{
	{"C", "/", "×", "⌫"},
	{"7", "8", "9", "-"},
	{"4", "5", "6", "+"},
	{"1", "2", "3", "="},
	{"0", "."},
}

func renderKeypad() string {
	rows := make([]string, 0, len(keypadLayout))
	for _, row := range keypadLayout {
		cells := make([]string, 0, len(row))
		for _, label := range row {
			width := keyWidth
			if label == "0" {
				width = keyWidth*2 + 1
			}
			cells = append(cells, keyStyle(label).Width(width).Render(label))
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func keyStyle(label string) lipgloss.Style {
	switch label {
	case "C", "⌫":
		return ClearKeyStyle
	case "/", "×", "-", "+":
		return OperatorKeyStyle
	case "=":
		return EqualsKeyStyle
	default:
		return NumberKeyStyle
	}
}

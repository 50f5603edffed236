package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pluqqy/pluqqy-widgets/pkg/slider"
)

// slideAdvancedMsg is sent when autoplay moved the slider
type slideAdvancedMsg struct {
	index int
}

// waitForAdvance blocks until the controller reports an autoplay tick
func waitForAdvance(advances <-chan int) tea.Cmd {
	if advances == nil {
		return nil
	}
	return func() tea.Msg {
		index, ok := <-advances
		if !ok {
			return nil
		}
		return slideAdvancedMsg{index: index}
	}
}

type sliderKeyMap struct {
	Next       key.Binding
	Previous   key.Binding
	TogglePlay key.Binding
	Reset      key.Binding
	GoTo       key.Binding
	Switch     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newSliderKeyMap() sliderKeyMap {
	return sliderKeyMap{
		Next: key.NewBinding(
			key.WithKeys(Shortcuts.Next.Get(), "l"),
			key.WithHelp(FormatShortcutForHelp(Shortcuts.Next)+"/l", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys(Shortcuts.Previous.Get(), "h"),
			key.WithHelp(FormatShortcutForHelp(Shortcuts.Previous)+"/h", "previous"),
		),
		TogglePlay: key.NewBinding(
			key.WithKeys(Shortcuts.TogglePlay.Get(), "p"),
			key.WithHelp(FormatShortcutForHelp(Shortcuts.TogglePlay)+"/p", "play/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys(Shortcuts.Reset.Get()),
			key.WithHelp(FormatShortcutForHelp(Shortcuts.Reset), "reset"),
		),
		GoTo: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to slide"),
		),
		Switch: key.NewBinding(
			key.WithKeys(Shortcuts.SwitchView.Get()),
			key.WithHelp(FormatShortcutForHelp(Shortcuts.SwitchView), "calculator"),
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

func (k sliderKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.TogglePlay, k.Reset, k.Help}
}

func (k sliderKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next, k.GoTo},
		{k.TogglePlay, k.Reset},
		{k.Switch, k.Help, k.Quit},
	}
}

// SliderModel is the slider view. The controller owns the slider state;
// the view only renders it and forwards key presses.
type SliderModel struct {
	controller *slider.Controller
	deckName   string
	advances   <-chan int

	spinner    spinner.Model
	keys       sliderKeyMap
	help       help.Model
	showHelp   bool
	wrapTitles bool

	width  int
	height int
}

// NewSliderModel creates the view for controller. advances delivers the
// controller's autoplay ticks and may be nil.
func NewSliderModel(controller *slider.Controller, deckName string, advances <-chan int, showHelp, wrapTitles bool) *SliderModel {
	h := help.New()
	h.ShowAll = showHelp
	return &SliderModel{
		controller: controller,
		deckName:   deckName,
		advances:   advances,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		keys:       newSliderKeyMap(),
		help:       h,
		showHelp:   showHelp,
		wrapTitles: wrapTitles,
	}
}

func (m *SliderModel) Init() tea.Cmd {
	return tea.Batch(waitForAdvance(m.advances), m.spinner.Tick)
}

// SetSize updates the available space
func (m *SliderModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
}

// Controller returns the controller behind the view
func (m *SliderModel) Controller() *slider.Controller {
	return m.controller
}

func (m *SliderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case slideAdvancedMsg:
		// Re-arm so the next tick is picked up too
		return m, waitForAdvance(m.advances)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *SliderModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Next):
		m.controller.Next()
	case key.Matches(msg, m.keys.Previous):
		m.controller.Previous()
	case key.Matches(msg, m.keys.TogglePlay):
		m.controller.TogglePlayback()
		if m.controller.Playing() {
			return statusCmd("▶ Autoplay resumed")
		}
		return statusCmd("⏸ Autoplay paused")
	case key.Matches(msg, m.keys.Reset):
		m.controller.Reset()
		return statusCmd("Slider reset")
	case key.Matches(msg, m.keys.GoTo):
		n, _ := strconv.Atoi(msg.String())
		if err := m.controller.GoTo(n - 1); err != nil {
			return statusCmd(fmt.Sprintf("✗ %v", err))
		}
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	}
	return nil
}

func (m *SliderModel) View() string {
	var b strings.Builder

	b.WriteString(renderHeader(m.width, m.deckName))
	b.WriteString("\n\n")

	contentWidth := m.width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	current := m.controller.Current()
	title := current.Title
	image := current.Image
	if m.wrapTitles {
		title = wordwrap.String(title, contentWidth)
		image = wordwrap.String(image, contentWidth)
	}

	slide := SlideTitleStyle.Render(title)
	if image != "" {
		slide += "\n" + DescriptionStyle.Render(image)
	}
	b.WriteString(ActiveBorderStyle.Width(contentWidth).Render(slide))
	b.WriteString("\n\n")

	b.WriteString(renderIndicators(m.controller.Index(), m.controller.Len()))
	b.WriteString(DescriptionStyle.Render(fmt.Sprintf("  %d / %d", m.controller.Index()+1, m.controller.Len())))
	b.WriteString("\n\n")

	b.WriteString(m.playbackBadge())
	b.WriteString("\n\n")

	b.WriteString(m.help.View(m.keys))

	return ContentPaddingStyle.Render(b.String())
}

func (m *SliderModel) playbackBadge() string {
	if m.controller.Playing() {
		return GetPlaybackStyle(true).Render(m.spinner.View() + " playing")
	}
	return GetPlaybackStyle(false).Render("⏸ paused")
}

// renderIndicators draws one dot per slide with the current one highlighted
func renderIndicators(current, total int) string {
	dots := make([]string, total)
	for i := range dots {
		if i == current {
			dots[i] = IndicatorActiveStyle.Render("●")
		} else {
			dots[i] = IndicatorInactiveStyle.Render("○")
		}
	}
	return strings.Join(dots, " ")
}

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/pluqqy-widgets/pkg/calculator"
	"github.com/pluqqy/pluqqy-widgets/pkg/models"
	"github.com/pluqqy/pluqqy-widgets/pkg/slider"
)

type sessionState int

const (
	calculatorView sessionState = iota
	sliderView
)

// View names accepted by AppOptions.StartView
const (
	ViewCalculator = "calculator"
	ViewSlider     = "slider"
)

// statusTimeout is how long a StatusMsg stays in the status bar
const statusTimeout = 3 * time.Second

// AppOptions configures NewApp. Zero values fall back to defaults.
type AppOptions struct {
	Settings  *models.Settings
	Deck      *models.Deck
	StartView string
	// Interval overrides the autoplay interval from Settings
	Interval time.Duration
	// Clock drives autoplay; nil uses the system clock
	Clock slider.Clock
}

type App struct {
	state      sessionState
	calculator *CalculatorModel
	slider     *SliderModel
	controller *slider.Controller
	width      int
	height     int
	statusMsg  string
	statusID   int
}

func NewApp(opts AppOptions) (*App, error) {
	settings := opts.Settings
	if settings == nil {
		settings = models.DefaultSettings()
	}
	deck := opts.Deck
	if deck == nil {
		deck = models.DefaultDeck()
	}

	tape := newHistoryTape(settings.UI.HistorySize)
	engine := calculator.New(calculator.WithObserver(tape.Add))

	interval := opts.Interval
	if interval == 0 {
		interval = time.Duration(settings.Slider.IntervalMS) * time.Millisecond
	}

	// Buffered so one pending advance survives while the UI is busy; later
	// ones are dropped since the view reads the index from the controller
	advances := make(chan int, 1)
	sliderOpts := []slider.Option{
		slider.WithInterval(interval),
		slider.WithAutoplay(settings.Slider.Autoplay),
		slider.WithOnAdvance(func(index int) {
			select {
			case advances <- index:
			default:
			}
		}),
	}
	if opts.Clock != nil {
		sliderOpts = append(sliderOpts, slider.WithClock(opts.Clock))
	}

	controller, err := slider.New(deck.Slides, sliderOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to start slider: %w", err)
	}

	state := calculatorView
	switch opts.StartView {
	case "", ViewCalculator:
	case ViewSlider:
		state = sliderView
	default:
		controller.Close()
		return nil, fmt.Errorf("unknown view %q (expected %s or %s)", opts.StartView, ViewCalculator, ViewSlider)
	}

	return &App{
		state:      state,
		calculator: NewCalculatorModel(engine, tape, settings.UI.ShowHelp),
		slider:     NewSliderModel(controller, deck.Name, advances, settings.UI.ShowHelp, settings.UI.WrapTitles),
		controller: controller,
	}, nil
}

// Close stops autoplay. Call it once the program has exited.
func (a *App) Close() {
	a.controller.Close()
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.calculator.Init(), a.slider.Init())
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Leave room for the tab bar and status bar
		a.calculator.SetSize(msg.Width, msg.Height-2)
		a.slider.SetSize(msg.Width, msg.Height-2)
		return a, nil

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if msg.String() == Shortcuts.SwitchView.Get() && !a.calculator.confirm.Active() {
			if a.state == calculatorView {
				a.state = sliderView
			} else {
				a.state = calculatorView
			}
			return a, nil
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		a.statusID++
		id := a.statusID
		return a, tea.Tick(statusTimeout, func(time.Time) tea.Msg {
			return clearStatusMsg{id: id}
		})

	case PersistentStatusMsg:
		a.statusMsg = string(msg)
		a.statusID++
		return a, nil

	case clearStatusMsg:
		// A newer message replaced the one this timer belonged to
		if msg.id == a.statusID {
			a.statusMsg = ""
		}
		return a, nil

	case slideAdvancedMsg, spinner.TickMsg:
		// Autoplay runs whichever view is on screen
		_, cmd := a.slider.Update(msg)
		return a, cmd
	}

	// Route updates to the active view
	var cmd tea.Cmd
	switch a.state {
	case calculatorView:
		_, cmd = a.calculator.Update(msg)
	case sliderView:
		_, cmd = a.slider.Update(msg)
	}

	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var content string
	switch a.state {
	case calculatorView:
		content = a.calculator.View()
	case sliderView:
		content = a.slider.View()
	default:
		content = "Unknown view"
	}

	content = lipgloss.JoinVertical(lipgloss.Left, a.renderTabs(), content)

	// Add status bar if there's a message
	if a.statusMsg != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, StatusBarStyle.Render(a.statusMsg))
	}

	return content
}

func (a *App) renderTabs() string {
	tabs := []struct {
		label string
		state sessionState
	}{
		{"Calculator", calculatorView},
		{"Slider", sliderView},
	}

	rendered := make([]string, len(tabs))
	for i, tab := range tabs {
		rendered[i] = GetActiveHeaderStyle(a.state == tab.state).Render(tab.label)
	}
	hint := DescriptionStyle.Render("  (" + FormatShortcutForHelp(Shortcuts.SwitchView) + " to switch)")
	return " " + strings.Join(rendered, " │ ") + hint
}

// Messages for communication between views

// StatusMsg shows a message in the status bar that clears itself
type StatusMsg string

// PersistentStatusMsg stays in the status bar until replaced
type PersistentStatusMsg string

type clearStatusMsg struct {
	id int
}

func statusCmd(s string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg(s)
	}
}

package models

// Settings represents the application configuration
type Settings struct {
	Slider SliderSettings `yaml:"slider"`
	UI     UISettings     `yaml:"ui"`
}

// SliderSettings controls slider playback
type SliderSettings struct {
	IntervalMS int  `yaml:"interval_ms"`
	Autoplay   bool `yaml:"autoplay"`
}

// UISettings controls UI preferences
type UISettings struct {
	ShowHelp    bool `yaml:"show_help"`
	HistorySize int  `yaml:"history_size"` // calculator tape entries kept in the view
	WrapTitles  bool `yaml:"wrap_titles"`
}

// DefaultIntervalMS is the autoplay interval used when none is configured
const DefaultIntervalMS = 4000

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Slider: SliderSettings{
			IntervalMS: DefaultIntervalMS,
			Autoplay:   true,
		},
		UI: UISettings{
			ShowHelp:    true,
			HistorySize: 20,
			WrapTitles:  true,
		},
	}
}

// Normalize replaces zero or negative values with their defaults
func (s *Settings) Normalize() {
	defaults := DefaultSettings()
	if s.Slider.IntervalMS <= 0 {
		s.Slider.IntervalMS = defaults.Slider.IntervalMS
	}
	if s.UI.HistorySize <= 0 {
		s.UI.HistorySize = defaults.UI.HistorySize
	}
}

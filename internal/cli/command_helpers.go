package cli

import (
	"github.com/pluqqy/pluqqy-widgets/pkg/files"
	"github.com/pluqqy/pluqqy-widgets/pkg/models"
)

// CommandContext caches settings and the slide deck for a command run
type CommandContext struct {
	Settings *models.Settings
	Deck     *models.Deck
}

// NewCommandContext creates a new command context
func NewCommandContext() *CommandContext {
	return &CommandContext{}
}

// LoadSettingsWithDefault loads settings or returns default if error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	if c.Settings != nil {
		return c.Settings
	}

	settings, err := files.ReadSettings()
	if err != nil {
		PrintWarning("Using default settings: %v", err)
		settings = models.DefaultSettings()
	}

	c.Settings = settings
	return settings
}

// LoadDeck loads the configured slide deck
func (c *CommandContext) LoadDeck() (*models.Deck, error) {
	if c.Deck != nil {
		return c.Deck, nil
	}

	deck, err := files.ReadDeck()
	if err != nil {
		return nil, err
	}

	c.Deck = deck
	return deck, nil
}

package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/pluqqy-widgets/pkg/models"
)

const (
	WidgetsDir   = ".widgets"
	SettingsFile = "settings.yaml"
	SlidesFile   = "slides.yaml"
)

// SettingsPath returns the path of the settings file
func SettingsPath() string {
	return filepath.Join(WidgetsDir, SettingsFile)
}

// SlidesPath returns the path of the slide deck file
func SlidesPath() string {
	return filepath.Join(WidgetsDir, SlidesFile)
}

// InitProjectStructure creates the .widgets directory and writes default
// settings and deck files. Existing files are left untouched.
func InitProjectStructure() error {
	if err := os.MkdirAll(WidgetsDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", WidgetsDir, err)
	}

	if !exists(SettingsPath()) {
		if err := WriteSettings(models.DefaultSettings()); err != nil {
			return err
		}
	}
	if !exists(SlidesPath()) {
		if err := WriteDeck(models.DefaultDeck()); err != nil {
			return err
		}
	}

	return nil
}

// ReadSettings loads settings.yaml. Keys missing from the file keep their
// default values. A missing file yields the defaults.
func ReadSettings() (*models.Settings, error) {
	settings := models.DefaultSettings()

	content, err := os.ReadFile(SettingsPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings %s: %w", SettingsPath(), err)
	}

	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML %s: %w", SettingsPath(), err)
	}
	settings.Normalize()

	return settings, nil
}

// WriteSettings saves settings.yaml
func WriteSettings(settings *models.Settings) error {
	return writeYAML(SettingsPath(), settings)
}

// ReadDeck loads slides.yaml, falling back to the built-in deck when the
// file does not exist
func ReadDeck() (*models.Deck, error) {
	content, err := os.ReadFile(SlidesPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.DefaultDeck(), nil
		}
		return nil, fmt.Errorf("failed to read deck %s: %w", SlidesPath(), err)
	}

	var deck models.Deck
	if err := yaml.Unmarshal(content, &deck); err != nil {
		return nil, fmt.Errorf("failed to parse deck YAML %s: %w", SlidesPath(), err)
	}
	if err := deck.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deck %s: %w", SlidesPath(), err)
	}

	return &deck, nil
}

// WriteDeck saves slides.yaml
func WriteDeck(deck *models.Deck) error {
	if err := deck.Validate(); err != nil {
		return err
	}
	return writeYAML(SlidesPath(), deck)
}

func writeYAML(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	content, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s to YAML: %w", path, err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

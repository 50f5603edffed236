package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/pluqqy-widgets/pkg/models"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	oldDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { os.Chdir(oldDir) })
	return tempDir
}

func TestInitProjectStructure(t *testing.T) {
	tempDir := chdirTemp(t)

	require.NoError(t, InitProjectStructure())

	assert.FileExists(t, filepath.Join(tempDir, WidgetsDir, SettingsFile))
	assert.FileExists(t, filepath.Join(tempDir, WidgetsDir, SlidesFile))

	settings, err := ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)

	deck, err := ReadDeck()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultDeck(), deck)
}

func TestInitProjectStructureKeepsExistingFiles(t *testing.T) {
	chdirTemp(t)

	require.NoError(t, os.MkdirAll(WidgetsDir, 0755))
	require.NoError(t, os.WriteFile(SettingsPath(), []byte("slider:\n  interval_ms: 900\n"), 0644))

	require.NoError(t, InitProjectStructure())

	settings, err := ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, 900, settings.Slider.IntervalMS)
}

func TestReadSettingsMissingFile(t *testing.T) {
	chdirTemp(t)

	settings, err := ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)
}

func TestReadSettingsPartialFile(t *testing.T) {
	chdirTemp(t)

	require.NoError(t, os.MkdirAll(WidgetsDir, 0755))
	content := `slider:
  interval_ms: 2500
ui:
  history_size: -4
`
	require.NoError(t, os.WriteFile(SettingsPath(), []byte(content), 0644))

	settings, err := ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, 2500, settings.Slider.IntervalMS)
	assert.True(t, settings.Slider.Autoplay, "missing keys keep defaults")
	assert.True(t, settings.UI.ShowHelp)
	assert.Equal(t, 20, settings.UI.HistorySize, "invalid values are normalized")
}

func TestReadSettingsInvalidYAML(t *testing.T) {
	chdirTemp(t)

	require.NoError(t, os.MkdirAll(WidgetsDir, 0755))
	require.NoError(t, os.WriteFile(SettingsPath(), []byte("slider: [unclosed"), 0644))

	_, err := ReadSettings()
	assert.ErrorContains(t, err, "failed to parse settings YAML")
}

func TestSettingsRoundTrip(t *testing.T) {
	chdirTemp(t)

	settings := models.DefaultSettings()
	settings.Slider.Autoplay = false
	settings.UI.WrapTitles = false
	require.NoError(t, WriteSettings(settings))

	loaded, err := ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestDeckRoundTrip(t *testing.T) {
	chdirTemp(t)

	deck := &models.Deck{
		Name: "Cities",
		Slides: []models.Slide{
			{Image: "lisbon.jpg", Title: "Lisbon"},
			{Image: "porto.jpg", Title: "Porto"},
		},
	}
	require.NoError(t, WriteDeck(deck))

	loaded, err := ReadDeck()
	require.NoError(t, err)
	assert.Equal(t, deck, loaded)
}

func TestReadDeckMissingFile(t *testing.T) {
	chdirTemp(t)

	deck, err := ReadDeck()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultDeck(), deck)
}

func TestReadDeckEmpty(t *testing.T) {
	chdirTemp(t)

	require.NoError(t, os.MkdirAll(WidgetsDir, 0755))
	require.NoError(t, os.WriteFile(SlidesPath(), []byte("name: Empty\nslides: []\n"), 0644))

	_, err := ReadDeck()
	assert.ErrorContains(t, err, "has no slides")
}

func TestWriteDeckRejectsEmpty(t *testing.T) {
	chdirTemp(t)

	err := WriteDeck(&models.Deck{Name: "nothing"})
	assert.Error(t, err)
	assert.NoFileExists(t, SlidesPath())
}

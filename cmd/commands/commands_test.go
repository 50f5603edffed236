package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pluqqy/pluqqy-widgets/internal/cli"
	"github.com/pluqqy/pluqqy-widgets/pkg/files"
	"github.com/pluqqy/pluqqy-widgets/pkg/models"
	"github.com/pluqqy/pluqqy-widgets/pkg/tui"
)

// setupProject switches into an empty temp dir and captures all output
func setupProject(t *testing.T) *bytes.Buffer {
	t.Helper()
	dir := t.TempDir()
	oldDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(oldDir) })

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	t.Cleanup(func() {
		cli.SetOutput(os.Stdout, os.Stderr)
		cli.SetGlobalFlags(false, false)
	})
	return buf
}

// stubTUI records the options the TUI would have been started with
func stubTUI(t *testing.T) *[]tui.AppOptions {
	t.Helper()
	var launched []tui.AppOptions
	saved := launchTUI
	launchTUI = func(opts tui.AppOptions) error {
		launched = append(launched, opts)
		return nil
	}
	t.Cleanup(func() { launchTUI = saved })
	return &launched
}

func execute(t *testing.T, buf *bytes.Buffer, args ...string) error {
	t.Helper()
	cmd := NewRootCommand("test")
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestCalcCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantErr  string
		contains []string
	}{
		{
			name:     "addition",
			args:     []string{"calc", "6+4="},
			contains: []string{"10\n"},
		},
		{
			name:     "chained operators",
			args:     []string{"calc", "6 + 4 - 2 ="},
			contains: []string{"8\n"},
		},
		{
			name:     "division by zero",
			args:     []string{"calc", "9/0="},
			contains: []string{"0\n"},
		},
		{
			name:     "decimal input",
			args:     []string{"calc", ".5+.25="},
			contains: []string{"0.75\n"},
		},
		{
			name:     "backspace and clear",
			args:     []string{"calc", "99C12<3"},
			contains: []string{"13\n"},
		},
		{
			name:    "unknown key",
			args:    []string{"calc", "2^8"},
			wantErr: "invalid key sequence",
		},
		{
			name:    "empty sequence",
			args:    []string{"calc", ""},
			wantErr: "key sequence cannot be empty",
		},
		{
			name:    "invalid output format",
			args:    []string{"calc", "1+1=", "-o", "xml"},
			wantErr: "invalid output format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := setupProject(t)

			err := execute(t, buf, tt.args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestCalcCommandJSON(t *testing.T) {
	buf := setupProject(t)

	require.NoError(t, execute(t, buf, "calc", "6+4*", "-o", "json"))

	var result CalcResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "6+4*", result.Sequence)
	assert.Equal(t, "10", result.Display)
	assert.Equal(t, "10 *", result.Pending)
	require.Len(t, result.History, 1)
	assert.Equal(t, "6 + 4 = 10", result.History[0].String())
}

func TestCalcCommandYAML(t *testing.T) {
	buf := setupProject(t)

	require.NoError(t, execute(t, buf, "calc", "7x6=", "-o", "yaml"))

	var result map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "42", result["display"])
	assert.NotContains(t, result, "pending")
}

func TestCalcCommandCopy(t *testing.T) {
	buf := setupProject(t)

	var copied string
	saved := copyToClipboard
	copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { copyToClipboard = saved })

	require.NoError(t, execute(t, buf, "calc", "12*12=", "--copy"))
	assert.Equal(t, "144", copied)
	assert.Contains(t, buf.String(), "✓ Copied 144 to clipboard")

	copyToClipboard = func(string) error { return errors.New("no clipboard") }
	err := execute(t, buf, "calc", "1=", "--copy")
	assert.ErrorContains(t, err, "failed to copy to clipboard")
}

func TestCalcCommandQuiet(t *testing.T) {
	buf := setupProject(t)
	saved := copyToClipboard
	copyToClipboard = func(string) error { return nil }
	t.Cleanup(func() { copyToClipboard = saved })

	require.NoError(t, execute(t, buf, "calc", "2+2=", "--copy", "-q"))
	assert.Equal(t, "4\n", buf.String())
}

func TestCalcCommandWithoutSequenceOpensTUI(t *testing.T) {
	buf := setupProject(t)
	launched := stubTUI(t)

	require.NoError(t, execute(t, buf, "calc"))
	require.Len(t, *launched, 1)
	assert.Equal(t, tui.ViewCalculator, (*launched)[0].StartView)
}

func TestRootCommandOpensCalculator(t *testing.T) {
	buf := setupProject(t)
	launched := stubTUI(t)

	require.NoError(t, execute(t, buf))
	require.Len(t, *launched, 1)
	assert.Equal(t, tui.ViewCalculator, (*launched)[0].StartView)
	assert.Equal(t, models.DefaultDeck().Name, (*launched)[0].Deck.Name)
}

func TestSliderCommand(t *testing.T) {
	buf := setupProject(t)
	launched := stubTUI(t)

	require.NoError(t, execute(t, buf, "slider", "--interval", "2s"))
	require.Len(t, *launched, 1)
	opts := (*launched)[0]
	assert.Equal(t, tui.ViewSlider, opts.StartView)
	assert.Equal(t, 2*time.Second, opts.Interval)
	assert.Equal(t, models.DefaultIntervalMS, opts.Settings.Slider.IntervalMS)

	err := execute(t, buf, "slider", "--interval", "10ms")
	assert.ErrorContains(t, err, "interval too short")
	assert.Len(t, *launched, 1)
}

func TestSliderCommandUsesProjectDeck(t *testing.T) {
	buf := setupProject(t)
	launched := stubTUI(t)

	require.NoError(t, files.InitProjectStructure())
	deck := &models.Deck{Name: "Mine", Slides: []models.Slide{{Title: "Only"}}}
	require.NoError(t, files.WriteDeck(deck))

	require.NoError(t, execute(t, buf, "slider"))
	require.Len(t, *launched, 1)
	assert.Equal(t, "Mine", (*launched)[0].Deck.Name)
	assert.Zero(t, (*launched)[0].Interval)
}

func TestSliderCommandInvalidDeck(t *testing.T) {
	buf := setupProject(t)
	stubTUI(t)

	require.NoError(t, os.MkdirAll(files.WidgetsDir, 0755))
	require.NoError(t, os.WriteFile(files.SlidesPath(), []byte("name: empty\nslides: []\n"), 0644))

	err := execute(t, buf, "slider")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load slides")
}

func TestSlidesCommand(t *testing.T) {
	buf := setupProject(t)

	require.NoError(t, execute(t, buf, "slides"))
	out := buf.String()
	assert.Contains(t, out, "Nature Image Slider (5 slides)")
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, models.DefaultDeck().Slides[0].Title)
}

func TestSlidesCommandJSON(t *testing.T) {
	buf := setupProject(t)

	require.NoError(t, execute(t, buf, "slides", "-o", "json"))

	var result SlidesResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, 5, result.Count)
	assert.Equal(t, models.DefaultDeck().Slides, result.Slides)
}

func TestInitCommand(t *testing.T) {
	buf := setupProject(t)

	require.NoError(t, execute(t, buf, "init"))
	assert.FileExists(t, filepath.Join(files.WidgetsDir, files.SettingsFile))
	assert.FileExists(t, filepath.Join(files.WidgetsDir, files.SlidesFile))
	assert.Contains(t, buf.String(), "✓ Created "+files.SettingsPath())

	// existing files are kept
	custom := &models.Deck{Name: "Custom", Slides: []models.Slide{{Title: "x"}}}
	require.NoError(t, files.WriteDeck(custom))
	require.NoError(t, execute(t, buf, "init"))
	deck, err := files.ReadDeck()
	require.NoError(t, err)
	assert.Equal(t, "Custom", deck.Name)
}

func TestVersionCommand(t *testing.T) {
	buf := setupProject(t)

	require.NoError(t, execute(t, buf, "version"))
	assert.Equal(t, "widgets version test\n", buf.String())
}

func TestNoColorMessages(t *testing.T) {
	buf := setupProject(t)

	require.NoError(t, execute(t, buf, "init", "--no-color"))
	assert.Contains(t, buf.String(), "OK: Created")
	assert.NotContains(t, buf.String(), "✓")
}

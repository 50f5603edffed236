package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-widgets/internal/cli"
	"github.com/pluqqy/pluqqy-widgets/pkg/models"
)

// SlidesResult represents the output structure for the slides command
type SlidesResult struct {
	Name   string         `json:"name" yaml:"name"`
	Slides []models.Slide `json:"slides" yaml:"slides"`
	Count  int            `json:"count" yaml:"count"`
}

// NewSlidesCommand creates the slides command
func NewSlidesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "slides",
		Short: "List the slides of the configured deck",
		Long: `List the slides the slider shows, in order.

Examples:
  # Table output
  widgets slides

  # YAML output, ready to edit into .widgets/slides.yaml
  widgets slides -o yaml`,
		Args: cobra.NoArgs,
		RunE: runSlides,
	}
}

func runSlides(cmd *cobra.Command, args []string) error {
	deck, err := cli.NewCommandContext().LoadDeck()
	if err != nil {
		return fmt.Errorf("failed to load slides: %w", err)
	}

	result := SlidesResult{
		Name:   deck.Name,
		Slides: deck.Slides,
		Count:  len(deck.Slides),
	}

	format := outputFormat(cmd)
	if format != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%d slides)\n\n", result.Name, result.Count)

	table := cli.NewTableFormatter(out)
	table.Header("#", "TITLE", "IMAGE")
	for i, slide := range result.Slides {
		table.Row(strconv.Itoa(i+1), cli.TruncateString(slide.Title, 30), cli.TruncateString(slide.Image, 60))
	}
	table.Flush()

	return nil
}

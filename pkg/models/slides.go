package models

import "fmt"

// Slide is a single entry of a slider deck
type Slide struct {
	Image string `yaml:"image" json:"image"`
	Title string `yaml:"title" json:"title"`
}

// Deck is an ordered, named list of slides as stored in slides.yaml
type Deck struct {
	Name   string  `yaml:"name" json:"name"`
	Slides []Slide `yaml:"slides" json:"slides"`
}

// Validate checks that the deck can back a slider
func (d *Deck) Validate() error {
	if len(d.Slides) == 0 {
		return fmt.Errorf("deck %q has no slides", d.Name)
	}
	for i, s := range d.Slides {
		if s.Image == "" && s.Title == "" {
			return fmt.Errorf("slide %d of deck %q has neither image nor title", i+1, d.Name)
		}
	}
	return nil
}

// DefaultDeck returns the built-in nature deck
func DefaultDeck() *Deck {
	return &Deck{
		Name: "Nature Image Slider",
		Slides: []Slide{
			{Image: "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800&h=600&fit=crop", Title: "Mountain Landscape"},
			{Image: "https://images.unsplash.com/photo-1469474968028-56623f02e42e?w=800&h=600&fit=crop", Title: "Forest Path"},
			{Image: "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=800&h=600&fit=crop", Title: "Autumn Trees"},
			{Image: "https://images.unsplash.com/photo-1472214103451-9374bd1c798e?w=800&h=600&fit=crop", Title: "Ocean Waves"},
			{Image: "https://images.unsplash.com/photo-1501594907352-04cda38ebc29?w=800&h=600&fit=crop", Title: "Mountain Lake"},
		},
	}
}

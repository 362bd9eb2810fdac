package config

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/crumbs/internal/breadcrumbs"
	"github.com/rileyhilliard/crumbs/internal/ui"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// File represents the complete .crumbs.yaml configuration file.
type File struct {
	Version          int             `yaml:"version" mapstructure:"version"`
	Steps            int             `yaml:"steps" mapstructure:"steps"`
	Current          int             `yaml:"current" mapstructure:"current"`
	Labels           []string        `yaml:"labels,omitempty" mapstructure:"labels"`
	SeparatorOnStart bool            `yaml:"separator_on_start" mapstructure:"separator_on_start"`
	Dot              DotConfig       `yaml:"dot" mapstructure:"dot"`
	Separator        SeparatorConfig `yaml:"separator" mapstructure:"separator"`
	Label            LabelConfig     `yaml:"label" mapstructure:"label"`
	Animation        AnimationConfig `yaml:"animation" mapstructure:"animation"`
}

// ColorPair is a border/fill color combination for one dot state.
type ColorPair struct {
	Border string `yaml:"border" mapstructure:"border"`
	Fill   string `yaml:"fill" mapstructure:"fill"`
}

// DotConfig controls the step markers.
type DotConfig struct {
	// Radius in cells. The dot occupies a 2*radius square.
	Radius int `yaml:"radius" mapstructure:"radius"`

	// Border is the ring thickness. Zero draws a solid dot.
	Border int `yaml:"border" mapstructure:"border"`

	Visited ColorPair `yaml:"visited" mapstructure:"visited"`
	Next    ColorPair `yaml:"next" mapstructure:"next"`
}

// SeparatorConfig controls the bars between dots.
type SeparatorConfig struct {
	Height  int    `yaml:"height" mapstructure:"height"`
	Visited string `yaml:"visited" mapstructure:"visited"`
	Next    string `yaml:"next" mapstructure:"next"`
}

// LabelConfig controls the text under each dot.
type LabelConfig struct {
	// Size of 2 or more renders labels in bold.
	Size      int    `yaml:"size" mapstructure:"size"`
	TopMargin int    `yaml:"top_margin" mapstructure:"top_margin"`
	Visited   string `yaml:"visited" mapstructure:"visited"`
	Next      string `yaml:"next" mapstructure:"next"`
}

// AnimationConfig tunes the transition spring.
type AnimationConfig struct {
	FPS       int     `yaml:"fps" mapstructure:"fps"`
	Frequency float64 `yaml:"frequency" mapstructure:"frequency"`
	Damping   float64 `yaml:"damping" mapstructure:"damping"`
}

// DefaultConfig returns a config with the built-in appearance.
func DefaultConfig() *File {
	bc := breadcrumbs.DefaultConfig()
	anim := ui.DefaultAnimationConfig()
	return &File{
		Version: CurrentConfigVersion,
		Steps:   4,
		Current: 0,
		Labels:  []string{},
		Dot: DotConfig{
			Radius:  bc.Radius,
			Border:  bc.DotBorder,
			Visited: ColorPair{Border: string(bc.VisitedDotBorderColor), Fill: string(bc.VisitedDotFillColor)},
			Next:    ColorPair{Border: string(bc.NextDotBorderColor), Fill: string(bc.NextDotFillColor)},
		},
		Separator: SeparatorConfig{
			Height:  bc.SeparatorHeight,
			Visited: string(bc.VisitedSeparatorColor),
			Next:    string(bc.NextSeparatorColor),
		},
		Label: LabelConfig{
			Size:      bc.TextSize,
			TopMargin: bc.TextTopMargin,
			Visited:   string(bc.VisitedTextColor),
			Next:      string(bc.NextTextColor),
		},
		Animation: AnimationConfig{
			FPS:       anim.FPS,
			Frequency: anim.Frequency,
			Damping:   anim.Damping,
		},
	}
}

// Breadcrumbs converts the file into the view configuration.
func (f *File) Breadcrumbs() breadcrumbs.Config {
	return breadcrumbs.Config{
		Steps:                 f.Steps,
		VisitedDotBorderColor: lipgloss.Color(f.Dot.Visited.Border),
		VisitedDotFillColor:   lipgloss.Color(f.Dot.Visited.Fill),
		NextDotBorderColor:    lipgloss.Color(f.Dot.Next.Border),
		NextDotFillColor:      lipgloss.Color(f.Dot.Next.Fill),
		VisitedSeparatorColor: lipgloss.Color(f.Separator.Visited),
		NextSeparatorColor:    lipgloss.Color(f.Separator.Next),
		VisitedTextColor:      lipgloss.Color(f.Label.Visited),
		NextTextColor:         lipgloss.Color(f.Label.Next),
		Radius:                f.Dot.Radius,
		DotBorder:             f.Dot.Border,
		SeparatorHeight:       f.Separator.Height,
		TextSize:              f.Label.Size,
		TextTopMargin:         f.Label.TopMargin,
		SeparatorOnStart:      f.SeparatorOnStart,
	}
}

// AnimationSettings converts the animation block for the ui animator.
func (f *File) AnimationSettings() ui.AnimationConfig {
	return ui.AnimationConfig{
		FPS:       f.Animation.FPS,
		Frequency: f.Animation.Frequency,
		Damping:   f.Animation.Damping,
	}
}

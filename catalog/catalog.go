// Package catalog holds the fixed reference data behind a report: the
// forecasting model's published accuracy figures, the community templates
// with their type factors, and the seasonal/challenge menus. The data ships
// embedded as YAML and is loaded once at startup; callers treat the
// resulting Catalog as read-only.
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"energy-report/models"
)

//go:embed catalog.yaml
var embedded []byte

// ModelMetrics are the quoted accuracy figures of the external forecasting
// model. They are constants here, not computed.
type ModelMetrics struct {
	WindowSize   int     `yaml:"window_size" validate:"gt=0"`
	Architecture string  `yaml:"architecture" validate:"required"`
	PVMAE        float64 `yaml:"pv_mae" validate:"gte=0"`
	PVRMSE       float64 `yaml:"pv_rmse" validate:"gte=0"`
	PVR2         float64 `yaml:"pv_r2" validate:"gt=0,lte=1"`
	WindMAE      float64 `yaml:"wind_mae" validate:"gte=0"`
	WindRMSE     float64 `yaml:"wind_rmse" validate:"gte=0"`
	WindR2       float64 `yaml:"wind_r2" validate:"gt=0,lte=1"`
}

// Template describes one community type.
type Template struct {
	Key              models.CommunityType `yaml:"key" validate:"required"`
	Description      string               `yaml:"description" validate:"required"`
	TypicalGHIRange  string               `yaml:"typical_ghi_range"`
	TypicalWindSpeed string               `yaml:"typical_wind_speed"`
	EnergyPattern    string               `yaml:"energy_pattern"`
	Factor           float64              `yaml:"factor" validate:"gt=0"`
}

// Option is a numbered menu entry; Label is what ends up in the profile.
type Option struct {
	Choice string `yaml:"choice" validate:"required"`
	Menu   string `yaml:"menu" validate:"required"`
	Label  string `yaml:"label" validate:"required"`
}

// Catalog is the immutable reference data for a run.
type Catalog struct {
	Model          ModelMetrics `yaml:"model"`
	CommunityTypes []Template   `yaml:"community_types" validate:"min=1,dive"`
	SeasonPatterns []Option     `yaml:"season_patterns" validate:"min=1,dive"`
	Challenges     []Option     `yaml:"challenges" validate:"min=1,dive"`
}

const (
	defaultSeasonChoice    = "4"
	defaultChallengeChoice = "2"
)

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(embedded)
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("catalog: parse YAML: %w", err)
	}
	if err := validator.New().Struct(c); err != nil {
		return nil, fmt.Errorf("catalog: validate: %w", err)
	}
	return &c, nil
}

// Template returns the template for t.
func (c *Catalog) Template(t models.CommunityType) (Template, bool) {
	for _, tpl := range c.CommunityTypes {
		if tpl.Key == t {
			return tpl, true
		}
	}
	return Template{}, false
}

// DefaultType is the first listed community type.
func (c *Catalog) DefaultType() models.CommunityType {
	return c.CommunityTypes[0].Key
}

// TypeFactor is the multiplier for t; unknown types get 1.0.
func (c *Catalog) TypeFactor(t models.CommunityType) float64 {
	if tpl, ok := c.Template(t); ok {
		return tpl.Factor
	}
	return 1.0
}

// SeasonLabel resolves a menu choice, falling back to the balanced pattern.
func (c *Catalog) SeasonLabel(choice string) string {
	return resolve(c.SeasonPatterns, choice, defaultSeasonChoice)
}

// ChallengeLabel resolves a menu choice, falling back to unreliable grid supply.
func (c *Catalog) ChallengeLabel(choice string) string {
	return resolve(c.Challenges, choice, defaultChallengeChoice)
}

func resolve(opts []Option, choice, fallback string) string {
	for _, o := range opts {
		if o.Choice == choice {
			return o.Label
		}
	}
	for _, o := range opts {
		if o.Choice == fallback {
			return o.Label
		}
	}
	return opts[len(opts)-1].Label
}

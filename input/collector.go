// Package input gathers a CommunityProfile interactively. Each field is a
// question descriptor (prompt, default, parser) consumed by one ask routine;
// a blank answer, or end of input, takes the default.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"energy-report/catalog"
	"energy-report/models"
	"energy-report/utils"
)

// question is one prompt in the fixed collection sequence.
type question struct {
	field  string
	prompt string
	def    string
	// intro prints context (menus, typical ranges) before the prompt.
	intro func(c *Collector, p *models.CommunityProfile)
	apply func(c *Collector, p *models.CommunityProfile, answer string) error
}

// Collector asks the questions on out and reads answers from in.
type Collector struct {
	in      *bufio.Reader
	out     io.Writer
	catalog *catalog.Catalog
	logger  *utils.Logger
}

// NewCollector creates a Collector over the given streams.
func NewCollector(in io.Reader, out io.Writer, c *catalog.Catalog, logger *utils.Logger) *Collector {
	return &Collector{
		in:      bufio.NewReader(in),
		out:     out,
		catalog: c,
		logger:  logger,
	}
}

// Collect runs every question in order. A numeric field that does not parse
// aborts collection with a *models.InputError naming the field.
func (c *Collector) Collect() (*models.CommunityProfile, error) {
	fmt.Fprintln(c.out, "\n📝 ENTER COMMUNITY INFORMATION")
	fmt.Fprintln(c.out, "Based on your database structure (Time, Season, DHI, DNI, GHI, Wind_speed, Humidity, Temperature)")
	fmt.Fprintln(c.out, strings.Repeat("-", 60))

	p := &models.CommunityProfile{}
	for _, q := range c.questions() {
		if q.intro != nil {
			q.intro(c, p)
		}
		answer, err := c.ask(q.prompt, q.def)
		if err != nil {
			return nil, err
		}
		if err := q.apply(c, p, answer); err != nil {
			return nil, err
		}
		c.logger.Debug("[input] %s = %q", q.field, answer)
	}
	return p, nil
}

// ask prints prompt and returns the trimmed answer, or def when blank.
func (c *Collector) ask(prompt, def string) (string, error) {
	fmt.Fprint(c.out, prompt)

	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", &models.IOError{Op: "read", Path: "stdin", Err: err}
	}
	if errors.Is(err, io.EOF) && line == "" {
		// keep the transcript readable when input is piped
		fmt.Fprintln(c.out)
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

func (c *Collector) questions() []question {
	return []question{
		{
			field:  "name",
			prompt: "Community Name: ",
			def:    "Sample Community",
			apply:  setText(func(p *models.CommunityProfile, v string) { p.Name = v }),
		},
		{
			field:  "region",
			prompt: "Region/State: ",
			def:    "Unknown Region",
			apply:  setText(func(p *models.CommunityProfile, v string) { p.Region = v }),
		},
		{
			field:  "type",
			prompt: fmt.Sprintf("\nChoose community type (1-%d): ", len(c.catalog.CommunityTypes)),
			intro:  (*Collector).printTypeMenu,
			apply:  (*Collector).applyType,
		},
		{
			field:  "population",
			prompt: "\n👥 Approximate population: ",
			def:    "10,000",
			apply:  setText(func(p *models.CommunityProfile, v string) { p.Population = v }),
		},
		{
			field:  "avg_demand",
			prompt: "Average electric demand (kW) [22000]: ",
			def:    "22000",
			intro:  (*Collector).printEnergyProfile,
			apply:  setNumber("avg_demand", func(p *models.CommunityProfile, v float64) { p.AvgDemandKW = v }),
		},
		{
			field:  "peak_demand",
			prompt: "Peak electric demand (kW) [35000]: ",
			def:    "35000",
			apply:  setNumber("peak_demand", func(p *models.CommunityProfile, v float64) { p.PeakDemandKW = v }),
		},
		{
			field:  "avg_ghi",
			prompt: "Average GHI (W/m²) [400]: ",
			def:    "400",
			intro:  (*Collector).printSolarPotential,
			apply:  setNumber("avg_ghi", func(p *models.CommunityProfile, v float64) { p.AvgGHI = v }),
		},
		{
			field:  "avg_wind_speed",
			prompt: "Average wind speed (m/s) [3.0]: ",
			def:    "3.0",
			intro:  (*Collector).printWindPotential,
			apply:  setNumber("avg_wind_speed", func(p *models.CommunityProfile, v float64) { p.AvgWindSpeed = v }),
		},
		{
			field:  "season_pattern",
			prompt: "Dominant seasonal pattern (1-4): ",
			def:    "4",
			intro:  (*Collector).printSeasonMenu,
			apply: func(c *Collector, p *models.CommunityProfile, v string) error {
				p.SeasonPattern = c.catalog.SeasonLabel(v)
				return nil
			},
		},
		{
			field:  "main_challenge",
			prompt: "Primary challenge (1-5): ",
			def:    "2",
			intro:  (*Collector).printChallengeMenu,
			apply: func(c *Collector, p *models.CommunityProfile, v string) error {
				p.MainChallenge = c.catalog.ChallengeLabel(v)
				return nil
			},
		},
		{
			field:  "special_needs",
			prompt: "\n⭐ Special energy needs (healthcare, schools, industries): ",
			def:    "General community needs",
			apply:  setText(func(p *models.CommunityProfile, v string) { p.SpecialNeeds = v }),
		},
	}
}

func setText(set func(*models.CommunityProfile, string)) func(*Collector, *models.CommunityProfile, string) error {
	return func(_ *Collector, p *models.CommunityProfile, v string) error {
		set(p, v)
		return nil
	}
}

func setNumber(field string, set func(*models.CommunityProfile, float64)) func(*Collector, *models.CommunityProfile, string) error {
	return func(_ *Collector, p *models.CommunityProfile, v string) error {
		n, err := strconv.ParseFloat(v, 64)
		// overflow yields ±Inf, which is kept
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return &models.InputError{Field: field, Value: v, Err: err}
		}
		set(p, n)
		return nil
	}
}

// applyType accepts a 1-based menu index; anything else selects the
// catalog's default type.
func (c *Collector) applyType(p *models.CommunityProfile, v string) error {
	p.Type = c.catalog.DefaultType()
	if !isDigits(v) {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > len(c.catalog.CommunityTypes) {
		return nil
	}
	p.Type = c.catalog.CommunityTypes[n-1].Key
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (c *Collector) template(p *models.CommunityProfile) catalog.Template {
	tpl, _ := c.catalog.Template(p.Type)
	return tpl
}

func (c *Collector) printTypeMenu(_ *models.CommunityProfile) {
	fmt.Fprintln(c.out, "\n🏘️  SELECT COMMUNITY TYPE (based on energy patterns):")
	for i, tpl := range c.catalog.CommunityTypes {
		fmt.Fprintf(c.out, "%d. %s - %s\n", i+1, menuTitle(string(tpl.Key)), tpl.Description)
		fmt.Fprintf(c.out, "   GHI: %s, Wind: %s\n", tpl.TypicalGHIRange, tpl.TypicalWindSpeed)
	}
}

func (c *Collector) printEnergyProfile(p *models.CommunityProfile) {
	fmt.Fprintln(c.out, "\n⚡ CURRENT ENERGY PROFILE (based on your dataset patterns):")
	fmt.Fprintf(c.out, "Typical for %s: %s\n", p.Type, c.template(p).EnergyPattern)
}

func (c *Collector) printSolarPotential(p *models.CommunityProfile) {
	fmt.Fprintln(c.out, "\n🌞 SOLAR POTENTIAL (based on GHI - Global Horizontal Irradiance)")
	fmt.Fprintf(c.out, "Typical range for this type: %s\n", c.template(p).TypicalGHIRange)
}

func (c *Collector) printWindPotential(p *models.CommunityProfile) {
	fmt.Fprintln(c.out, "\n💨 WIND POTENTIAL (based on Wind_speed)")
	fmt.Fprintf(c.out, "Typical range for this type: %s\n", c.template(p).TypicalWindSpeed)
}

func (c *Collector) printSeasonMenu(_ *models.CommunityProfile) {
	fmt.Fprintln(c.out, "\n📅 SEASONAL ENERGY PATTERNS (based on your Season feature)")
	for _, o := range c.catalog.SeasonPatterns {
		fmt.Fprintf(c.out, "%s. %s\n", o.Choice, o.Menu)
	}
}

func (c *Collector) printChallengeMenu(_ *models.CommunityProfile) {
	fmt.Fprintln(c.out, "\n🎯 MAIN ENERGY CHALLENGES:")
	for _, o := range c.catalog.Challenges {
		fmt.Fprintf(c.out, "%s. %s\n", o.Choice, o.Menu)
	}
}

func menuTitle(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

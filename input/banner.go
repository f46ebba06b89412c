package input

import (
	"fmt"
	"io"
	"strings"

	"energy-report/catalog"
)

// PrintBanner introduces the tool and the model figures it quotes.
func PrintBanner(w io.Writer, c *catalog.Catalog) {
	rule := strings.Repeat("=", 60)
	m := c.Model

	fmt.Fprintln(w, "🌱 INTERACTIVE AI FOR SOCIAL GOOD REPORT GENERATOR")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Using your CNN+LSTM model: R²=%.3f (PV), R²=%.3f (Wind)\n", m.PVR2, m.WindR2)
	fmt.Fprintln(w, rule)

	fmt.Fprintln(w, "\n"+rule)
	fmt.Fprintln(w, "🎯 AI FOR SOCIAL GOOD - RENEWABLE ENERGY REPORT GENERATOR")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Using your CNN+LSTM model performance:")
	fmt.Fprintf(w, "• Solar Prediction: R² = %.3f\n", m.PVR2)
	fmt.Fprintf(w, "• Wind Prediction: R² = %.3f\n", m.WindR2)
	fmt.Fprintf(w, "• Architecture: %s\n", m.Architecture)
	fmt.Fprintln(w, "\nThis tool will generate a personalized AI report for your community")
	fmt.Fprintln(w, "based on your exceptional renewable energy prediction technology.")
	fmt.Fprintln(w)
}

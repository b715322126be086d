// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayClassificationTable].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatQuietResult], [FormatCategory].

package cli

import (
	"fmt"
	"io"

	"github.com/alexbl00m/vo2calc/internal/config"
	"github.com/alexbl00m/vo2calc/internal/format"
	"github.com/alexbl00m/vo2calc/internal/ui"
	"github.com/alexbl00m/vo2calc/internal/vo2max"
)

// classificationNote is shown under the classification table. The thresholds
// are normative data for trained cyclists, not a diagnosis.
const classificationNote = "Note: classification is based on normative data for trained cyclists.\n" +
	"Individual performance depends on many factors beyond VO2max, including\n" +
	"lactate threshold, economy/efficiency, and anaerobic capacity."

// PrintExecutionConfig displays the effective inputs before a calculation.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- VO2max Estimation ---\n")
	fmt.Fprintf(out, "Protocol: %s%s%s\n", ui.ColorPrimary(), cfg.Summary(), ui.ColorReset())
	if cfg.Verbose {
		fmt.Fprintf(out, "%s%s%s\n", ui.ColorSecondary(), cfg.Protocol.Description(), ui.ColorReset())
	}
	fmt.Fprintln(out)
}

// FormatQuietResult formats a result for quiet mode output.
// Returns a single-line relative VO2max value suitable for scripting.
//
// Parameters:
//   - res: The calculation result.
//
// Returns:
//   - string: The formatted result string.
func FormatQuietResult(res vo2max.Result) string {
	return fmt.Sprintf("%.1f", res.VO2maxRelative)
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
//
// Parameters:
//   - out: The output writer.
//   - res: The calculation result.
func DisplayQuietResult(out io.Writer, res vo2max.Result) {
	fmt.Fprintln(out, FormatQuietResult(res))
}

// FormatCategory returns the colorized category name for a classification
// outcome.
//
// Parameters:
//   - category: The classification category.
//
// Returns:
//   - string: The colorized category string.
func FormatCategory(category vo2max.Category) string {
	var color string
	switch category {
	case vo2max.CategoryPoor:
		color = ui.ColorError()
	case vo2max.CategoryFair:
		color = ui.ColorWarning()
	case vo2max.CategoryGood, vo2max.CategoryExcellent:
		color = ui.ColorSuccess()
	case vo2max.CategoryElite:
		color = ui.ColorPrimary()
	}
	return fmt.Sprintf("%s%s%s%s", ui.ColorBold(), color, category, ui.ColorReset())
}

// DisplayResult displays the full calculation result: the power and oxygen
// uptake metrics followed by the classification table with the matching row
// marked.
//
// Parameters:
//   - out: The output writer.
//   - res: The calculation result.
//   - sex: The classification table column to use.
//   - verbose: Whether to append the classification note.
func DisplayResult(out io.Writer, res vo2max.Result, sex vo2max.Sex, verbose bool) {
	fmt.Fprintf(out, "--- Power Metrics ---\n")
	fmt.Fprintf(out, "Power at VO2max:         %s%s%s\n",
		ui.ColorPrimary(), format.Power(res.PowerAtVO2max), ui.ColorReset())
	fmt.Fprintf(out, "Weight-normalized power: %s%s%s\n",
		ui.ColorPrimary(), format.PowerToWeight(res.PowerToWeight), ui.ColorReset())

	fmt.Fprintf(out, "\n--- Oxygen Consumption ---\n")
	fmt.Fprintf(out, "VO2max:                  %s%s%s\n",
		ui.ColorPrimary(), format.VO2Absolute(res.VO2maxAbsolute), ui.ColorReset())
	fmt.Fprintf(out, "Weight-normalized VO2max: %s%s%s\n",
		ui.ColorPrimary(), format.VO2Relative(res.VO2maxRelative), ui.ColorReset())

	category := vo2max.Classify(res.VO2maxRelative, sex)
	fmt.Fprintf(out, "\nClassification (%s): %s\n", sex, FormatCategory(category))

	fmt.Fprintln(out)
	DisplayClassificationTable(out, res.VO2maxRelative, sex)

	if verbose {
		fmt.Fprintf(out, "\n%s%s%s\n", ui.ColorSecondary(), classificationNote, ui.ColorReset())
	}
}

// DisplayClassificationTable renders the static classification table with the
// row containing the given relative VO2max marked for the given sex.
// Uses manual padding to correctly handle ANSI color codes.
//
// Parameters:
//   - out: The output writer.
//   - relative: The relative VO2max used to mark the matching row.
//   - sex: The column whose band contains the value.
func DisplayClassificationTable(out io.Writer, relative float64, sex vo2max.Sex) {
	fmt.Fprintf(out, "%sCategory     Male (ml/min/kg)   Female (ml/min/kg)%s\n",
		ui.ColorUnderline(), ui.ColorReset())

	maleBands := vo2max.Bands(vo2max.Male)
	femaleBands := vo2max.Bands(vo2max.Female)
	matched := vo2max.Classify(relative, sex)

	for i := range maleBands {
		male := maleBands[i]
		female := femaleBands[i]

		marker := "  "
		lineColor := ""
		if male.Category == matched {
			marker = "▶ "
			lineColor = ui.ColorPrimary()
		}

		fmt.Fprintf(out, "%s%s%-11s  %-17s  %-17s%s\n",
			lineColor, marker, male.Category,
			formatBand(male), formatBand(female),
			ui.ColorReset())
	}
}

// formatBand renders one band's numeric range for the table.
func formatBand(b vo2max.Band) string {
	loUnbounded := b.Lo < 0
	hiUnbounded := b.Hi > 1000
	return format.BandRange(b.Lo, b.Hi, loUnbounded, hiUnbounded)
}

// DisplayExportConfirmation reports a successful CSV export.
//
// Parameters:
//   - out: The output writer.
//   - path: The file the results were written to.
func DisplayExportConfirmation(out io.Writer, path string) {
	fmt.Fprintf(out, "\n%s✓ Results saved to: %s%s%s\n",
		ui.ColorSuccess(), ui.ColorInfo(), path, ui.ColorReset())
}

// DisplayError prints an error with a severity prefix.
//
// Parameters:
//   - out: The output writer.
//   - err: The error to display.
func DisplayError(out io.Writer, err error) {
	fmt.Fprintf(out, "%sError:%s %v\n", ui.ColorError(), ui.ColorReset(), err)
}

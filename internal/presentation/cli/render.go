package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/chynaenye/microinsurance-predictor/internal/application/dto"
)

const gaugeWidth = 40

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	dropoutColor = color.New(color.FgRed, color.Bold)
	stayColor    = color.New(color.FgGreen, color.Bold)
	factorColor  = color.New(color.FgYellow)
	urgentColor  = color.New(color.FgRed, color.Bold)
	warnColor    = color.New(color.FgYellow, color.Bold)
	okColor      = color.New(color.FgGreen, color.Bold)
)

// renderAssessment prints the prediction panel to w.
func renderAssessment(w io.Writer, resp dto.AssessmentResponse) {
	rule := strings.Repeat("=", 56)

	fmt.Fprintln(w, rule)
	headingColor.Fprintln(w, "🎯 Prediction Results")
	fmt.Fprintln(w, rule)

	banner := stayColor
	if resp.Outcome == "WILL_DROPOUT" {
		banner = dropoutColor
	}
	banner.Fprintf(w, "%s (%s)\n", resp.OutcomeDisplay, resp.RiskTierDisplay)

	fmt.Fprintf(w, "Beneficiary: %s\n", resp.BeneficiaryID)
	fmt.Fprintf(w, "Dropout Probability: %s%%\n", resp.DropoutPercentage)
	fmt.Fprintln(w, renderBar(resp.DropoutPercentage))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "🔍 Key Risk Factors:")
	if len(resp.RiskFactors) == 0 {
		stayColor.Fprintln(w, "  ✅ No major risk factors identified")
	} else {
		for _, f := range resp.RiskFactors {
			line := "  ⚠️ " + f.Description
			if f.TopFactor {
				line += " (TOP FACTOR)"
			}
			factorColor.Fprintln(w, line)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "💡 Recommendations:")
	recColor := okColor
	switch resp.Recommendation.Level {
	case "urgent":
		recColor = urgentColor
	case "proactive":
		recColor = warnColor
	}
	recColor.Fprintf(w, "  %s\n", resp.Recommendation.Title)
	for _, action := range resp.Recommendation.Actions {
		fmt.Fprintf(w, "  • %s\n", action)
	}
	fmt.Fprintln(w, rule)
}

// renderBar draws the probability as a fixed-width gauge line.
func renderBar(percentage string) string {
	pct, err := strconv.ParseFloat(percentage, 64)
	if err != nil {
		pct = 0
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	filled := int(pct/100*gaugeWidth + 0.5)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", gaugeWidth-filled) + "] " + percentage + "%"
}

// renderGuard prints the missing-ID warning.
func renderGuard(w io.Writer) {
	warnColor.Fprintln(w, "⚠️ Please enter a Beneficiary ID to get prediction")
	fmt.Fprintln(w, "Example: BEN001234, MIC789456, etc.")
}

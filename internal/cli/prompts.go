package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"TrendScope/internal/collector"
)

var tickerPattern = regexp.MustCompile(`^[A-Z0-9.^=-]+$`)

func validateTicker(val interface{}) error {
	str, _ := val.(string)
	str = strings.TrimSpace(strings.ToUpper(str))
	if str == "" {
		return fmt.Errorf("ticker symbol cannot be empty")
	}
	if len(str) > 15 {
		return fmt.Errorf("ticker symbol too long (max 15 characters)")
	}
	if !tickerPattern.MatchString(str) {
		return fmt.Errorf("invalid ticker format (use letters, numbers, dots, carets and hyphens)")
	}
	return nil
}

// PromptForTicker asks for the symbol to analyze.
func PromptForTicker(def string) (string, error) {
	var ticker string
	prompt := &survey.Input{
		Message: "Enter the ticker symbol (e.g., AAPL, TSLA, BTC-USD):",
		Help:    "Any symbol the configured data source understands",
		Default: def,
	}
	if err := survey.AskOne(prompt, &ticker, survey.WithValidator(validateTicker)); err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.ToUpper(ticker)), nil
}

// PromptForPeriod asks how far back to download.
func PromptForPeriod(def string) (string, error) {
	var period string
	prompt := &survey.Select{
		Message: "Select the period:",
		Options: collector.Periods,
		Default: selectDefault(collector.Periods, def),
	}
	if err := survey.AskOne(prompt, &period); err != nil {
		return "", err
	}
	return period, nil
}

// PromptForInterval asks for the bar size.
func PromptForInterval(def string) (string, error) {
	var interval string
	prompt := &survey.Select{
		Message: "Select the bar interval:",
		Options: collector.Intervals,
		Default: selectDefault(collector.Intervals, def),
	}
	if err := survey.AskOne(prompt, &interval); err != nil {
		return "", err
	}
	return interval, nil
}

// selectDefault returns def when it is one of options. survey rejects a
// Select whose default is not an option.
func selectDefault(options []string, def string) interface{} {
	for _, o := range options {
		if o == def {
			return def
		}
	}
	return nil
}

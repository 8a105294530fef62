package domain

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PredictionResult is a predicted sale price together with the vector that produced it.
type PredictionResult struct {
	Price  float64
	Vector FeatureVector
	Model  string
}

var currencyPrinter = message.NewPrinter(language.AmericanEnglish)

// Display formats the price as US dollars with thousands separators, e.g. "$181,500.00".
func (r PredictionResult) Display() string {
	return FormatCurrency(r.Price)
}

// FormatCurrency formats an amount as US dollars with two decimals.
func FormatCurrency(amount float64) string {
	if amount < 0 {
		return currencyPrinter.Sprintf("-$%.2f", -amount)
	}
	return currencyPrinter.Sprintf("$%.2f", amount)
}

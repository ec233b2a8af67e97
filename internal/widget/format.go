package widget

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// MaskedTotal is shown in place of the amount while the hidden toggle is on.
const MaskedTotal = "$ ••••••••"

var printer = message.NewPrinter(language.Spanish)

// FormatTotal renders the inventory total with es-locale separators,
// e.g. 1234.5 -> "$ 1.234,50".
func FormatTotal(total float64) string {
	return printer.Sprintf("$ %v", number.Decimal(total, number.Scale(2)))
}

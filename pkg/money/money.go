// Package money formatea montos para presentación. El sistema es monomoneda
// (USD) y los reportes siempre muestran formato en-US con separador de miles.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Format devuelve el monto como moneda en-US con dos decimales, ej: "$12,345.50".
func Format(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("$%v", number.Decimal(f,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

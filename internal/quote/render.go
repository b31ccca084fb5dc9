package quote

import (
	"fmt"
	"io"
)

// NoDataMessage is printed in place of a quote when the fetch failed.
const NoDataMessage = "No data found."

// Render writes the quote as three lines, or NoDataMessage when r carries no
// quote. All failure kinds render the same way.
func Render(w io.Writer, r Result) error {
	if !r.OK() {
		_, err := fmt.Fprintln(w, NoDataMessage)
		return err
	}
	_, err := fmt.Fprintf(w, "Symbol: %s\nPrice: $%s\nAnalysis: %s\n",
		r.Quote.Symbol, r.Quote.Price.String(), r.Quote.Analysis)
	return err
}

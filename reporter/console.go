// Package reporter renders depth snapshots. It has no access to the
// book itself, only to the value the service hands back.
package reporter

import (
	"fmt"
	"io"

	"matchbook/domain/orderbook"
)

// Render prints the aggregated book: asks top-down (highest first, so
// the spread sits in the middle of the output), then bids highest
// first. Prices are formatted in major units from the minor unit.
func Render(w io.Writer, depth []orderbook.DepthLevel) {
	fmt.Fprintf(w, "\n--- ORDER BOOK ---\n")

	var bids, asks []orderbook.DepthLevel
	for _, lvl := range depth {
		if lvl.Side == orderbook.Bid {
			bids = append(bids, lvl)
		} else {
			asks = append(asks, lvl)
		}
	}

	// Depth carries asks ascending; display wants them descending.
	for i := len(asks) - 1; i >= 0; i-- {
		fmt.Fprintf(w, "ASK  $%.2f | Qty: %d\n", float64(asks[i].Price)/100, asks[i].Qty)
	}

	fmt.Fprintf(w, "- - - - - - - - -\n")

	for _, lvl := range bids {
		fmt.Fprintf(w, "BID  $%.2f | Qty: %d\n", float64(lvl.Price)/100, lvl.Qty)
	}
	fmt.Fprintf(w, "-----------------\n\n")
}

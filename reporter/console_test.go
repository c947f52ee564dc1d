package reporter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchbook/domain/orderbook"
)

func TestRender(t *testing.T) {
	depth := []orderbook.DepthLevel{
		{Side: orderbook.Bid, Price: 10000, Qty: 50},
		{Side: orderbook.Bid, Price: 9900, Qty: 30},
		{Side: orderbook.Ask, Price: 10100, Qty: 20},
		{Side: orderbook.Ask, Price: 10500, Qty: 10},
	}

	var buf bytes.Buffer
	Render(&buf, depth)
	out := buf.String()

	// Asks first, highest price on top, then bids below the separator.
	wantOrder := []string{
		"ASK  $105.00 | Qty: 10",
		"ASK  $101.00 | Qty: 20",
		"- - -",
		"BID  $100.00 | Qty: 50",
		"BID  $99.00 | Qty: 30",
	}
	pos := -1
	for _, line := range wantOrder {
		idx := strings.Index(out, line)
		require.GreaterOrEqual(t, idx, 0, "missing line %q in:\n%s", line, out)
		assert.Greater(t, idx, pos, "line %q out of order in:\n%s", line, out)
		pos = idx
	}
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, nil)
	assert.Contains(t, buf.String(), "ORDER BOOK")
	assert.NotContains(t, buf.String(), "ASK")
	assert.NotContains(t, buf.String(), "BID")
}

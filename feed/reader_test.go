package feed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchbook/domain/orderbook"
)

func writeFeed(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orders.csv")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestReadFile(t *testing.T) {
	path := writeFeed(t, "1,1,10000,50\n2,0,10100,25\n")

	recs, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, Record{ID: 1, Side: orderbook.Bid, Price: 10000, Qty: 50}, recs[0])
	assert.Equal(t, Record{ID: 2, Side: orderbook.Ask, Price: 10100, Qty: 25}, recs[1])
}

func TestReadFileBadRows(t *testing.T) {
	for name, data := range map[string]string{
		"bad id":     "x,1,10000,50\n",
		"bad side":   "1,2,10000,50\n",
		"bad price":  "1,1,abc,50\n",
		"bad qty":    "1,1,10000,\n",
		"wrong cols": "1,1,10000\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ReadFile(writeFeed(t, data))
			assert.Error(t, err)
		})
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

type stubSubmitter struct {
	calls  []Record
	reject map[uint64]bool
}

func (s *stubSubmitter) Submit(id uint64, side orderbook.Side, typ orderbook.OrderType, price, qty int64) ([]orderbook.Trade, error) {
	s.calls = append(s.calls, Record{ID: id, Side: side, Price: price, Qty: qty})
	if s.reject[id] {
		return nil, orderbook.ErrInvalidQuantity
	}
	if len(s.calls)%2 == 0 {
		return []orderbook.Trade{{Qty: qty, Price: price, MakerID: 1, TakerID: id}}, nil
	}
	return nil, nil
}

func TestReplayOrderAndStats(t *testing.T) {
	recs := []Record{
		{ID: 1, Side: orderbook.Bid, Price: 10000, Qty: 5},
		{ID: 2, Side: orderbook.Ask, Price: 10000, Qty: 5},
		{ID: 3, Side: orderbook.Bid, Price: 9900, Qty: 7},
		{ID: 4, Side: orderbook.Ask, Price: 9900, Qty: 7},
	}
	s := &stubSubmitter{reject: map[uint64]bool{3: true}}

	st := Replay(s, recs)

	require.Len(t, s.calls, 4, "one submission per record, in record order")
	for i, c := range s.calls {
		assert.Equal(t, recs[i].ID, c.ID)
	}
	assert.Equal(t, 4, st.Orders)
	assert.Equal(t, 1, st.Rejected)
	assert.Equal(t, 2, st.Trades)
	assert.Equal(t, int64(12), st.Volume)
}

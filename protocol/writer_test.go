package protocol

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quantonic/matchbook/matching"
)

func TestWriterTrades(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteTrades([]matching.Trade{
		{
			MakerID:       "order2",
			MakerPrice:    matching.NewPrice(1010),
			MakerQuantity: matching.NewQuantity(10),
			TakerID:       "order3",
			TakerPrice:    matching.NewPrice(1000),
			TakerQuantity: matching.NewQuantity(10),
		},
		{
			MakerID:       "order1",
			MakerPrice:    matching.NewPrice(1000),
			MakerQuantity: matching.NewQuantity(5),
			TakerID:       "order3",
			TakerPrice:    matching.NewPrice(1000),
			TakerQuantity: matching.NewQuantity(5),
		},
	}))
	require.NoError(t, w.Flush())

	require.Equal(t,
		"TRADE order2 1010 10 order3 1000 10\n"+
			"TRADE order1 1000 5 order3 1000 5\n",
		buf.String())
}

func TestWriterSnapshot(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteSnapshot(matching.BookSnapshot{
		Symbol: "BTCUSD",
		Asks: []matching.PriceLevelL2{
			{Price: matching.NewPrice(1010), Volume: matching.NewQuantity(7)},
			{Price: matching.NewPrice(1020), Volume: matching.NewQuantity(3)},
		},
		Bids: []matching.PriceLevelL2{
			{Price: matching.NewPrice(1000), Volume: matching.NewQuantity(10)},
			{Price: matching.NewPrice(990), Volume: matching.NewQuantity(4)},
		},
	}))
	require.NoError(t, w.Flush())

	require.Equal(t,
		"SELL:\n1010 7\n1020 3\nBUY:\n1000 10\n990 4\n",
		buf.String())
}

func TestWriterSnapshotEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteSnapshot(matching.BookSnapshot{}))
	require.NoError(t, w.Flush())
	require.Equal(t, "SELL:\nBUY:\n", buf.String())
}

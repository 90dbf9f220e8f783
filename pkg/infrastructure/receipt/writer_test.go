package receipt

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sanjidh090/SmartBuy/pkg/domain/model"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleOrder() *model.Order {
	return &model.Order{
		ID:        uuid.New(),
		CreatedAt: time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC),
		Lines: []model.OrderLine{
			{ItemNo: 1, Name: "Bread", Quantity: 10, UnitPrice: d("0.50"), LineTotal: d("5.00")},
			{ItemNo: 4, Name: "Soap", Quantity: 4, UnitPrice: d("1.20"), LineTotal: d("4.80")},
		},
		GrandTotal: d("9.80"),
	}
}

func newWriter(t *testing.T) *Writer {
	t.Helper()
	dir := t.TempDir()
	return NewWriter(filepath.Join(dir, "bill.txt"), filepath.Join(dir, "transactions.log"))
}

func TestWriteReceipt(t *testing.T) {
	w := newWriter(t)
	require.NoError(t, w.WriteReceipt(sampleOrder()))

	content, found, err := w.ReadReceipt()
	require.NoError(t, err)
	require.True(t, found)

	assert.Contains(t, content, banner)
	assert.Contains(t, content, "Date: 2024-05-01 12:30:00")
	assert.Contains(t, content, "Bread")
	assert.Contains(t, content, "$5.00")
	assert.Contains(t, content, "$4.80")
	assert.Contains(t, content, "TOTAL")
	assert.Contains(t, content, "$9.80")
	assert.Contains(t, content, "Thank you for choosing SmartBUY!")
}

func TestWriteReceiptOverwrites(t *testing.T) {
	w := newWriter(t)
	require.NoError(t, w.WriteReceipt(sampleOrder()))

	second := sampleOrder()
	second.Lines = []model.OrderLine{
		{ItemNo: 2, Name: "Milk", Quantity: 1, UnitPrice: d("0.30"), LineTotal: d("0.30")},
	}
	second.GrandTotal = d("0.30")
	require.NoError(t, w.WriteReceipt(second))

	content, _, err := w.ReadReceipt()
	require.NoError(t, err)
	assert.NotContains(t, content, "Bread")
	assert.Contains(t, content, "Milk")
	assert.Equal(t, 1, strings.Count(content, "Date:"))
}

func TestAppendLog(t *testing.T) {
	w := newWriter(t)

	require.NoError(t, w.AppendLog(sampleOrder()))
	require.NoError(t, w.AppendLog(sampleOrder()))

	content, found, err := w.ReadLog()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, strings.Count(content, "Date: 2024-05-01 12:30:00"))
	assert.Equal(t, 4, strings.Count(content, "Bread"))
}

func TestReadLogMissing(t *testing.T) {
	w := newWriter(t)

	content, found, err := w.ReadLog()

	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, content)
}

func TestReadLogIdempotent(t *testing.T) {
	w := newWriter(t)
	require.NoError(t, w.AppendLog(sampleOrder()))

	first, _, err := w.ReadLog()
	require.NoError(t, err)
	second, _, err := w.ReadLog()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

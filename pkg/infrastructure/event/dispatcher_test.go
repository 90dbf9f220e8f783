package event

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sanjidh090/SmartBuy/pkg/domain/model"
)

func TestDispatchLogsEventFields(t *testing.T) {
	logger, hook := test.NewNullLogger()
	dispatcher := NewDispatcher(logger)

	err := dispatcher.Dispatch(model.ItemAddedToOrder{
		ItemNo:    1,
		Name:      "Bread",
		Quantity:  2,
		LineTotal: decimal.RequireFromString("1.00"),
	})

	require.NoError(t, err)
	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "ItemAddedToOrder", entry.Data["event"])
	assert.Equal(t, 2, entry.Data["quantity"])
	assert.Equal(t, "1.00", entry.Data["line_total"])
}

func TestDispatchAdminLoginFailedWarns(t *testing.T) {
	logger, hook := test.NewNullLogger()
	dispatcher := NewDispatcher(logger)

	require.NoError(t, dispatcher.Dispatch(model.AdminLoginFailed{}))

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "AdminLoginFailed", hook.LastEntry().Data["event"])
}

package gateway

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/piresc/nairaxchange/internal/pkg/constants"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	natsserver "github.com/nats-io/nats-server/v2/test"
	natspkg "github.com/piresc/nairaxchange/internal/pkg/nats"
)

var testNatsURL string

func TestMain(m *testing.M) {
	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	srv := natsserver.RunServer(&opts)
	testNatsURL = srv.ClientURL()
	code := m.Run()
	srv.Shutdown()
	os.Exit(code)
}

func receive(t *testing.T, msgCh <-chan *nats.Msg, v interface{}) {
	select {
	case msg := <-msgCh:
		require.NoError(t, json.Unmarshal(msg.Data, v))
	case <-time.After(2 * time.Second):
		t.Fatal("Did not receive published message")
	}
}

func TestPublishWalletEvents(t *testing.T) {
	nc, err := natspkg.NewClient(testNatsURL, "wallet-test")
	require.NoError(t, err, "Failed to connect to NATS server")
	defer nc.Close()

	withdrawalCh := make(chan *nats.Msg, 1)
	balanceCh := make(chan *nats.Msg, 1)
	sub1, err := nc.Subscribe(constants.SubjectWithdrawalUpdated, func(msg *nats.Msg) { withdrawalCh <- msg })
	require.NoError(t, err)
	defer sub1.Unsubscribe()
	sub2, err := nc.Subscribe(constants.SubjectBalanceUpdated, func(msg *nats.Msg) { balanceCh <- msg })
	require.NoError(t, err)
	defer sub2.Unsubscribe()

	gw := NewWalletGW(nc)
	userID := uuid.New()

	withdrawal := models.WithdrawalEvent{
		TransactionID: uuid.New(),
		UserID:        userID,
		Currency:      models.CurrencyUSDT,
		Amount:        decimal.RequireFromString("40"),
		Status:        models.TransactionCompleted,
		TxHash:        "abc123",
		OccurredAt:    time.Now().UTC(),
	}
	require.NoError(t, gw.PublishWithdrawalUpdated(context.Background(), withdrawal))
	var gotWithdrawal models.WithdrawalEvent
	receive(t, withdrawalCh, &gotWithdrawal)
	assert.Equal(t, withdrawal.TransactionID, gotWithdrawal.TransactionID)
	assert.Equal(t, "abc123", gotWithdrawal.TxHash)

	balance := models.BalanceEvent{
		BalanceSnapshot: models.BalanceSnapshot{UserID: userID, USDTBalance: decimal.NewFromInt(60)},
		Reason:          "withdrawal",
	}
	require.NoError(t, gw.PublishBalanceUpdated(context.Background(), balance))
	var gotBalance models.BalanceEvent
	receive(t, balanceCh, &gotBalance)
	assert.Equal(t, userID, gotBalance.UserID)
	assert.True(t, gotBalance.USDTBalance.Equal(decimal.NewFromInt(60)))
}

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

func subscribe(t *testing.T, nc *natspkg.Client, subject string) <-chan *nats.Msg {
	msgCh := make(chan *nats.Msg, 1)
	sub, err := nc.Subscribe(subject, func(msg *nats.Msg) {
		msgCh <- msg
	})
	require.NoError(t, err)
	t.Cleanup(func() { sub.Unsubscribe() })
	return msgCh
}

func receive(t *testing.T, msgCh <-chan *nats.Msg, v interface{}) {
	select {
	case msg := <-msgCh:
		require.NoError(t, json.Unmarshal(msg.Data, v))
	case <-time.After(2 * time.Second):
		t.Fatal("Did not receive published message")
	}
}

func TestPublishTradeEvents(t *testing.T) {
	nc, err := natspkg.NewClient(testNatsURL, "trades-test")
	require.NoError(t, err, "Failed to connect to NATS server")
	defer nc.Close()

	trade := &models.Trade{
		ID:         uuid.New(),
		OfferID:    uuid.New(),
		BuyerID:    uuid.New(),
		SellerID:   uuid.New(),
		Amount:     decimal.RequireFromString("25"),
		FiatAmount: decimal.RequireFromString("38750"),
		Status:     models.TradeStatusPaymentMade,
	}
	gw := NewTradeGW(nc)

	createdCh := subscribe(t, nc, constants.SubjectTradeCreated)
	changedCh := subscribe(t, nc, constants.SubjectTradeStatusChanged)

	require.NoError(t, gw.PublishTradeCreated(context.Background(), models.NewTradeEvent(trade, "", nil)))
	var created models.TradeEvent
	receive(t, createdCh, &created)
	assert.Equal(t, trade.ID, created.TradeID)
	assert.True(t, created.Amount.Equal(trade.Amount))

	actor := trade.BuyerID
	require.NoError(t, gw.PublishTradeStatusChanged(context.Background(),
		models.NewTradeEvent(trade, models.TradeStatusPaymentPending, &actor)))
	var changed models.TradeEvent
	receive(t, changedCh, &changed)
	assert.Equal(t, models.TradeStatusPaymentPending, changed.From)
	assert.Equal(t, models.TradeStatusPaymentMade, changed.Status)
	require.NotNil(t, changed.ActorID)
	assert.Equal(t, actor, *changed.ActorID)
}

func TestPublishBalanceUpdated(t *testing.T) {
	nc, err := natspkg.NewClient(testNatsURL, "trades-test")
	require.NoError(t, err)
	defer nc.Close()

	balanceCh := subscribe(t, nc, constants.SubjectBalanceUpdated)
	event := models.BalanceEvent{
		BalanceSnapshot: models.BalanceSnapshot{UserID: uuid.New(), USDTBalance: decimal.NewFromInt(75), EscrowUSDT: decimal.NewFromInt(25)},
		Reason:          "trade_escrow",
		OccurredAt:      time.Now().UTC(),
	}

	require.NoError(t, NewTradeGW(nc).PublishBalanceUpdated(context.Background(), event))

	var got models.BalanceEvent
	receive(t, balanceCh, &got)
	assert.Equal(t, event.UserID, got.UserID)
	assert.Equal(t, "trade_escrow", got.Reason)
	assert.True(t, got.EscrowUSDT.Equal(decimal.NewFromInt(25)))
}

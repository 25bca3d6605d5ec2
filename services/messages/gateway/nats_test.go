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

func TestPublishMessage(t *testing.T) {
	nc, err := natspkg.NewClient(testNatsURL, "messages-test")
	require.NoError(t, err, "Failed to connect to NATS server")
	defer nc.Close()

	msgCh := make(chan *nats.Msg, 1)
	sub, err := nc.Subscribe(constants.SubjectTradeMessage, func(msg *nats.Msg) {
		msgCh <- msg
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	recipient := uuid.New()
	event := models.MessageEvent{
		Message: models.Message{
			ID:       uuid.New(),
			TradeID:  uuid.New(),
			SenderID: uuid.New(),
			Content:  "payment sent",
		},
		RecipientIDs: []uuid.UUID{recipient},
	}
	require.NoError(t, NewMessageGW(nc).PublishMessage(context.Background(), event))

	select {
	case msg := <-msgCh:
		var got models.MessageEvent
		require.NoError(t, json.Unmarshal(msg.Data, &got))
		assert.Equal(t, event.TradeID, got.TradeID)
		assert.Equal(t, "payment sent", got.Content)
		assert.Equal(t, []uuid.UUID{recipient}, got.RecipientIDs)
	case <-time.After(2 * time.Second):
		t.Fatal("Did not receive published message")
	}
}

package wallet

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fbsobreira/gotron-sdk/pkg/address"
	"github.com/fbsobreira/gotron-sdk/pkg/proto/api"
	"github.com/fbsobreira/gotron-sdk/pkg/proto/core"
	"github.com/google/uuid"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/internal/pkg/retry"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

type fakeNode struct {
	sendErr    []error
	sendCalls  int
	buildFails *api.Return
	lastAmount *big.Int
	lastTo     string

	broadcastErr []error
	results      []*api.Return
	broadcasts   []*core.Transaction
	accepted     map[string]bool
}

func (f *fakeNode) TRC20Send(from, to, contract string, amount *big.Int, feeLimit int64) (*api.TransactionExtention, error) {
	f.sendCalls++
	if len(f.sendErr) > 0 {
		err := f.sendErr[0]
		f.sendErr = f.sendErr[1:]
		if err != nil {
			return nil, err
		}
	}
	f.lastAmount = amount
	f.lastTo = to
	if f.buildFails != nil {
		return &api.TransactionExtention{Result: f.buildFails}, nil
	}
	// every build gets a fresh timestamp, so a rebuilt transfer has a new id
	return &api.TransactionExtention{
		Result:      &api.Return{Result: true},
		Transaction: &core.Transaction{RawData: &core.TransactionRaw{Timestamp: 1700000000000 + int64(f.sendCalls)}},
	}, nil
}

func (f *fakeNode) Broadcast(tx *core.Transaction) (*api.Return, error) {
	f.broadcasts = append(f.broadcasts, tx)
	if f.accepted == nil {
		f.accepted = map[string]bool{}
	}
	id := txID(tx)

	var err error
	if len(f.broadcastErr) > 0 {
		err = f.broadcastErr[0]
		f.broadcastErr = f.broadcastErr[1:]
	}
	res := &api.Return{Result: true}
	if len(f.results) > 0 {
		res = f.results[0]
		f.results = f.results[1:]
	}

	if res.GetResult() {
		if f.accepted[id] {
			return &api.Return{Code: api.Return_DUP_TRANSACTION_ERROR, Message: []byte("dup transaction")}, err
		}
		f.accepted[id] = true
	}
	return res, err
}

// distinctIDs counts the different transactions that reached Broadcast
func (f *fakeNode) distinctIDs() int {
	seen := map[string]bool{}
	for _, tx := range f.broadcasts {
		seen[txID(tx)] = true
	}
	return len(seen)
}

func txID(tx *core.Transaction) string {
	raw, _ := proto.Marshal(tx.GetRawData())
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

func randomAddress(t *testing.T) string {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return address.PubkeyToAddress(key.PublicKey).String()
}

func liveWallet(t *testing.T, n node) *TronWallet {
	w, err := NewTronWallet(models.WalletConfig{Network: "nile"})
	require.NoError(t, err)
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	w.hotKey = key
	w.hotAddr = address.PubkeyToAddress(key.PublicKey).String()
	w.node = n
	w.retrier = fastRetrier()
	return w
}

func fastRetrier() *retry.Retrier {
	return retry.New("tron.test", retry.Config{
		MaxRetries: 2,
		BaseDelay:  time.Millisecond,
		MaxDelay:   time.Millisecond,
		Multiplier: 1,
	})
}

func TestValidateAddress(t *testing.T) {
	assert.NoError(t, ValidateAddress(randomAddress(t)))
	assert.NoError(t, ValidateAddress(USDTContractMainnet))
	assert.ErrorIs(t, ValidateAddress("not-an-address"), apperrors.ErrInvalidAddress)
	assert.ErrorIs(t, ValidateAddress("TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6u"), apperrors.ErrInvalidAddress)
}

func TestDepositAddress(t *testing.T) {
	t.Run("demo mode generates fresh addresses", func(t *testing.T) {
		w, err := NewTronWallet(models.WalletConfig{Network: "shasta"})
		require.NoError(t, err)
		assert.True(t, w.Demo())
		assert.Equal(t, USDTContractShasta, w.contract)

		addr, err := w.DepositAddress(uuid.New())
		require.NoError(t, err)
		assert.NoError(t, ValidateAddress(addr))
	})

	t.Run("hot wallet key derives stable addresses", func(t *testing.T) {
		w := liveWallet(t, &fakeNode{})
		userID := uuid.New()

		first, err := w.DepositAddress(userID)
		require.NoError(t, err)
		second, err := w.DepositAddress(userID)
		require.NoError(t, err)
		other, err := w.DepositAddress(uuid.New())
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.NotEqual(t, first, other)
	})
}

func TestTransferUSDT_Demo(t *testing.T) {
	w, err := NewTronWallet(models.WalletConfig{})
	require.NoError(t, err)
	ctx := context.Background()

	transfer, err := w.PrepareUSDT(ctx, randomAddress(t), decimal.RequireFromString("12.5"))
	require.NoError(t, err)
	assert.Len(t, transfer.TxID, 64)
	assert.NoError(t, w.BroadcastUSDT(ctx, transfer))

	_, err = w.PrepareUSDT(ctx, "bad", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, apperrors.ErrInvalidAddress)

	_, err = w.PrepareUSDT(ctx, randomAddress(t), decimal.Zero)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
}

func TestPrepareUSDT_Live(t *testing.T) {
	to := randomAddress(t)
	ctx := context.Background()

	t.Run("builds and signs without broadcasting", func(t *testing.T) {
		n := &fakeNode{}
		w := liveWallet(t, n)

		transfer, err := w.PrepareUSDT(ctx, to, decimal.RequireFromString("12.345678"))
		require.NoError(t, err)
		assert.Equal(t, to, n.lastTo)
		assert.Equal(t, big.NewInt(12345678), n.lastAmount)
		assert.Empty(t, n.broadcasts)

		var signed core.Transaction
		require.NoError(t, proto.Unmarshal(transfer.Payload, &signed))
		assert.Len(t, signed.Signature, 1)
		assert.Equal(t, txID(&signed), transfer.TxID)
	})

	t.Run("retries transient build errors", func(t *testing.T) {
		n := &fakeNode{sendErr: []error{errors.New("unavailable"), nil}}
		w := liveWallet(t, n)

		_, err := w.PrepareUSDT(ctx, to, decimal.NewFromInt(1))
		require.NoError(t, err)
		assert.Equal(t, 2, n.sendCalls)
	})

	t.Run("refused build is not retried", func(t *testing.T) {
		n := &fakeNode{buildFails: &api.Return{Result: false, Message: []byte("contract validate error")}}
		w := liveWallet(t, n)

		_, err := w.PrepareUSDT(ctx, to, decimal.NewFromInt(1))
		assert.ErrorIs(t, err, ErrTransferInvalid)
		assert.Equal(t, 1, n.sendCalls)
	})
}

func TestBroadcastUSDT_Live(t *testing.T) {
	to := randomAddress(t)
	ctx := context.Background()

	prepare := func(t *testing.T, n *fakeNode) (*TronWallet, *models.SignedTransfer) {
		w := liveWallet(t, n)
		transfer, err := w.PrepareUSDT(ctx, to, decimal.NewFromInt(5))
		require.NoError(t, err)
		return w, transfer
	}

	t.Run("broadcasts the signed transaction", func(t *testing.T) {
		n := &fakeNode{}
		w, transfer := prepare(t, n)

		require.NoError(t, w.BroadcastUSDT(ctx, transfer))
		require.Len(t, n.broadcasts, 1)
		assert.Equal(t, transfer.TxID, txID(n.broadcasts[0]))
		assert.Len(t, n.accepted, 1)
	})

	t.Run("timeout after acceptance resends the same transaction", func(t *testing.T) {
		n := &fakeNode{broadcastErr: []error{status.Error(codes.DeadlineExceeded, "context deadline exceeded")}}
		w, transfer := prepare(t, n)

		require.NoError(t, w.BroadcastUSDT(ctx, transfer))
		assert.Equal(t, 1, n.sendCalls)
		assert.Len(t, n.broadcasts, 2)
		assert.Equal(t, 1, n.distinctIDs())
		assert.Len(t, n.accepted, 1)
	})

	t.Run("busy node is retried", func(t *testing.T) {
		n := &fakeNode{results: []*api.Return{
			{Result: false, Code: api.Return_SERVER_BUSY, Message: []byte("server busy")},
		}}
		w, transfer := prepare(t, n)

		require.NoError(t, w.BroadcastUSDT(ctx, transfer))
		assert.Len(t, n.broadcasts, 2)
		assert.Equal(t, 1, n.distinctIDs())
	})

	t.Run("rejected broadcast is not retried", func(t *testing.T) {
		n := &fakeNode{results: []*api.Return{
			{Result: false, Code: api.Return_CONTRACT_VALIDATE_ERROR, Message: []byte("balance is not sufficient")},
		}}
		w, transfer := prepare(t, n)

		err := w.BroadcastUSDT(ctx, transfer)
		assert.ErrorIs(t, err, ErrBroadcastRejected)
		assert.Len(t, n.broadcasts, 1)
		assert.Empty(t, n.accepted)
	})

	t.Run("exhausted transport errors are not a rejection", func(t *testing.T) {
		unavailable := status.Error(codes.Unavailable, "connection reset")
		n := &fakeNode{broadcastErr: []error{unavailable, unavailable, unavailable}}
		w, transfer := prepare(t, n)

		err := w.BroadcastUSDT(ctx, transfer)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrBroadcastRejected)
		assert.Equal(t, 1, n.distinctIDs())
	})
}

package wallet

import (
	"context"
	"crypto/ecdsa"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fbsobreira/gotron-sdk/pkg/address"
	"github.com/fbsobreira/gotron-sdk/pkg/client"
	"github.com/fbsobreira/gotron-sdk/pkg/proto/api"
	"github.com/fbsobreira/gotron-sdk/pkg/proto/core"
	"github.com/google/uuid"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	"github.com/piresc/nairaxchange/internal/pkg/circuitbreaker"
	"github.com/piresc/nairaxchange/internal/pkg/logger"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	nrpkg "github.com/piresc/nairaxchange/internal/pkg/newrelic"
	"github.com/piresc/nairaxchange/internal/pkg/retry"
	"github.com/piresc/nairaxchange/internal/utils"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/proto"
)

// USDT contract addresses per network
const (
	USDTContractMainnet = "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t"
	USDTContractShasta  = "TG3XXyExBkPp9nzdajDZsozEu4BkaSJozs"
	USDTContractNile    = "TXLAQ63Xg1NAzckPwKHvzw7CSEmLMEqcdj"

	usdtDecimals = 6
	// 30 TRX fee limit for a TRC20 transfer, in sun
	transferFeeLimit int64 = 30_000_000
)

var (
	// ErrTransferInvalid means the node refused to build the transfer
	ErrTransferInvalid = errors.New("tron node refused to build transfer")
	// ErrBroadcastRejected means the node refused the signed transfer
	ErrBroadcastRejected = errors.New("tron node rejected transaction")
)

// node is the subset of the gotron gRPC client used for withdrawals
type node interface {
	TRC20Send(from, to, contract string, amount *big.Int, feeLimit int64) (*api.TransactionExtention, error)
	Broadcast(tx *core.Transaction) (*api.Return, error)
}

// TronWallet generates deposit addresses and pays out USDT withdrawals.
// Without an API key or hot wallet key it runs in demo mode and never
// touches the network.
type TronWallet struct {
	cfg      models.WalletConfig
	grpcURL  string
	contract string
	hotKey   *ecdsa.PrivateKey
	hotAddr  string

	grpc    *client.GrpcClient
	node    node
	retrier *retry.Retrier
	breaker *circuitbreaker.CircuitBreaker
}

// GRPCEndpoint returns the public TronGrid endpoint for network
func GRPCEndpoint(network string) string {
	switch network {
	case "shasta":
		return "grpc.shasta.trongrid.io:50051"
	case "nile":
		return "grpc.nile.trongrid.io:50051"
	default:
		return "grpc.trongrid.io:50051"
	}
}

// USDTContract returns the USDT TRC20 contract for network
func USDTContract(network string) string {
	switch network {
	case "shasta":
		return USDTContractShasta
	case "nile":
		return USDTContractNile
	default:
		return USDTContractMainnet
	}
}

// NewTronWallet builds the wallet; in live mode it dials the TRON node
func NewTronWallet(cfg models.WalletConfig) (*TronWallet, error) {
	w := &TronWallet{
		cfg:      cfg,
		grpcURL:  GRPCEndpoint(cfg.Network),
		contract: cfg.USDTContract,
		retrier: retry.New("tron.broadcast", retry.Config{
			MaxRetries: 2,
			BaseDelay:  500 * time.Millisecond,
			MaxDelay:   4 * time.Second,
			Multiplier: 2,
			Jitter:     true,
			Retryable: func(err error) bool {
				return !errors.Is(err, ErrBroadcastRejected) && !errors.Is(err, ErrTransferInvalid)
			},
		}),
		breaker: circuitbreaker.New(circuitbreaker.Config{
			Name:             "tron-node",
			FailureThreshold: 5,
			Timeout:          time.Minute,
			IsFailure: func(err error) bool {
				return err != nil && !errors.Is(err, ErrBroadcastRejected) && !errors.Is(err, ErrTransferInvalid)
			},
		}),
	}
	if w.contract == "" {
		w.contract = USDTContract(cfg.Network)
	}

	if cfg.DemoMode() {
		logger.Warn("TRON wallet running in demo mode", logger.String("network", cfg.Network))
		return w, nil
	}

	key, err := crypto.HexToECDSA(cfg.HotWalletKey)
	if err != nil {
		return nil, fmt.Errorf("invalid hot wallet key: %w", err)
	}
	w.hotKey = key
	w.hotAddr = address.PubkeyToAddress(key.PublicKey).String()

	grpcClient := client.NewGrpcClient(w.grpcURL)
	if err := grpcClient.SetAPIKey(cfg.APIKey); err != nil {
		return nil, fmt.Errorf("failed to set TronGrid API key: %w", err)
	}
	if err := grpcClient.Start(grpc.WithTransportCredentials(insecure.NewCredentials())); err != nil {
		return nil, fmt.Errorf("failed to connect to TRON node: %w", err)
	}
	w.grpc = grpcClient
	w.node = grpcClient

	logger.Info("TRON wallet connected",
		logger.String("network", cfg.Network),
		logger.String("hot_wallet", w.hotAddr))
	return w, nil
}

// Demo reports whether on-chain calls are simulated
func (w *TronWallet) Demo() bool {
	return w.node == nil
}

// Network returns the configured TRON network name
func (w *TronWallet) Network() string {
	if w.cfg.Network == "" {
		return "mainnet"
	}
	return w.cfg.Network
}

// ValidateAddress checks a base58check TRON address
func (w *TronWallet) ValidateAddress(addr string) error {
	return ValidateAddress(addr)
}

// ValidateAddress checks a base58check TRON address
func ValidateAddress(addr string) error {
	if len(addr) != 34 || addr[0] != 'T' {
		return apperrors.ErrInvalidAddress
	}
	if _, err := address.Base58ToAddress(addr); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidAddress, err)
	}
	return nil
}

// DepositAddress returns a deposit address for userID. In live mode the key is
// derived from the hot wallet key and userID.
func (w *TronWallet) DepositAddress(userID uuid.UUID) (string, error) {
	var (
		key *ecdsa.PrivateKey
		err error
	)
	if w.hotKey != nil {
		seed := crypto.Keccak256(crypto.FromECDSA(w.hotKey), userID[:])
		key, err = crypto.ToECDSA(seed)
	} else {
		key, err = crypto.GenerateKey()
	}
	if err != nil {
		return "", fmt.Errorf("failed to derive deposit key: %w", err)
	}
	return address.PubkeyToAddress(key.PublicKey).String(), nil
}

// PrepareUSDT builds and signs a transfer of amount USDT from the hot wallet
// to to. Nothing is broadcast; the returned TxID is fixed for every later
// broadcast of the same payload.
func (w *TronWallet) PrepareUSDT(ctx context.Context, to string, amount decimal.Decimal) (*models.SignedTransfer, error) {
	if err := w.ValidateAddress(to); err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}

	if w.Demo() {
		hash, err := utils.GenerateRandomHex(64)
		if err != nil {
			return nil, err
		}
		return &models.SignedTransfer{TxID: hash}, nil
	}

	units := amount.Shift(usdtDecimals).BigInt()
	var ext *api.TransactionExtention
	err := w.breaker.Execute(ctx, func(ctx context.Context) error {
		return w.retrier.Execute(ctx, func(ctx context.Context) error {
			return nrpkg.WithExternalSegment(ctx, "gotron-sdk", "TRC20Send", w.grpcURL, func() error {
				built, err := w.node.TRC20Send(w.hotAddr, to, w.contract, units, transferFeeLimit)
				if err != nil {
					return fmt.Errorf("failed to build transfer: %w", err)
				}
				ext = built
				return nil
			})
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to prepare USDT transfer: %w", err)
	}
	if ext.GetResult() != nil && !ext.GetResult().GetResult() {
		return nil, fmt.Errorf("%w: %s", ErrTransferInvalid, string(ext.GetResult().GetMessage()))
	}

	tx := ext.GetTransaction()
	if tx == nil {
		return nil, fmt.Errorf("%w: empty transaction", ErrTransferInvalid)
	}
	txID, err := signTransaction(tx, w.hotKey)
	if err != nil {
		return nil, err
	}
	payload, err := proto.Marshal(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal signed transaction: %w", err)
	}

	logger.InfoCtx(ctx, "USDT transfer signed",
		logger.String("to", to),
		logger.Decimal("amount", amount),
		logger.String("tx_hash", txID))
	return &models.SignedTransfer{TxID: txID, Payload: payload}, nil
}

// BroadcastUSDT submits a prepared transfer. Retries resend the same signed
// transaction, so a transfer the node already accepted is reported as a
// duplicate and treated as success. ErrBroadcastRejected means the node
// refused the transfer and it can never land.
func (w *TronWallet) BroadcastUSDT(ctx context.Context, transfer *models.SignedTransfer) error {
	if w.Demo() {
		logger.InfoCtx(ctx, "Demo USDT transfer", logger.String("tx_hash", transfer.TxID))
		return nil
	}

	var tx core.Transaction
	if err := proto.Unmarshal(transfer.Payload, &tx); err != nil {
		return fmt.Errorf("%w: unreadable payload: %v", ErrBroadcastRejected, err)
	}

	err := w.breaker.Execute(ctx, func(ctx context.Context) error {
		return w.retrier.Execute(ctx, func(ctx context.Context) error {
			return nrpkg.WithExternalSegment(ctx, "gotron-sdk", "Broadcast", w.grpcURL, func() error {
				return w.broadcast(&tx)
			})
		})
	})
	if err != nil {
		return fmt.Errorf("failed to broadcast USDT transfer %s: %w", transfer.TxID, err)
	}

	logger.InfoCtx(ctx, "USDT transfer broadcast", logger.String("tx_hash", transfer.TxID))
	return nil
}

func (w *TronWallet) broadcast(tx *core.Transaction) error {
	res, err := w.node.Broadcast(tx)
	if err != nil {
		return fmt.Errorf("failed to broadcast: %w", err)
	}
	if res.GetResult() {
		return nil
	}

	switch res.GetCode() {
	case api.Return_DUP_TRANSACTION_ERROR:
		// accepted by an earlier attempt
		return nil
	case api.Return_SERVER_BUSY, api.Return_NO_CONNECTION, api.Return_NOT_ENOUGH_EFFECTIVE_CONNECTION:
		return fmt.Errorf("node unavailable: %s", string(res.GetMessage()))
	}
	return retry.Permanent(fmt.Errorf("%w: %s: %s", ErrBroadcastRejected, res.GetCode().String(), string(res.GetMessage())))
}

// signTransaction signs tx in place and returns its id
func signTransaction(tx *core.Transaction, key *ecdsa.PrivateKey) (string, error) {
	raw, err := proto.Marshal(tx.GetRawData())
	if err != nil {
		return "", fmt.Errorf("failed to marshal raw data: %w", err)
	}
	hash := sha256.Sum256(raw)

	sig, err := crypto.Sign(hash[:], key)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}
	tx.Signature = append(tx.Signature, sig)
	return hex.EncodeToString(hash[:]), nil
}

// Close stops the gRPC connection
func (w *TronWallet) Close() {
	if w.grpc != nil {
		w.grpc.Stop()
	}
}

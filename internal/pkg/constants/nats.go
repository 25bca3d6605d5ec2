package constants

// NATS subjects
const (
	SubjectTradeCreated       = "trade.created"
	SubjectTradeStatusChanged = "trade.status_changed"
	SubjectTradeMessage       = "trade.message"
	SubjectBalanceUpdated     = "balance.updated"
	SubjectKYCReviewed        = "kyc.reviewed"
	SubjectWithdrawalUpdated  = "withdrawal.updated"
)

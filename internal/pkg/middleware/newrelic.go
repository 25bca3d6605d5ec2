package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// AddAttribute adds a custom attribute to the current transaction
func AddAttribute(c echo.Context, key string, value interface{}) {
	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.AddAttribute(key, value)
	}
}

// SetTradeID tags the transaction with the trade being acted on
func SetTradeID(c echo.Context, tradeID string) {
	if tradeID != "" {
		AddAttribute(c, "trade.id", tradeID)
	}
}

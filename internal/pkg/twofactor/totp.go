package twofactor

import (
	"fmt"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// Key is a freshly generated authenticator secret
type Key struct {
	Secret string
	URL    string
}

// Generate creates a TOTP secret for accountName under issuer
func Generate(issuer, accountName string) (*Key, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: accountName,
		Period:      period,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate TOTP key: %w", err)
	}
	return &Key{Secret: key.Secret(), URL: key.URL()}, nil
}

const period = 30

// Match checks code against secret at now, allowing one period of skew, and
// returns the time step the code belongs to. Callers record the step so a
// code is accepted once.
func Match(code, secret string, now time.Time) (int64, bool) {
	if code == "" || secret == "" {
		return 0, false
	}
	opts := totp.ValidateOpts{
		Period:    period,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	}
	for _, skew := range []int{-1, 0, 1} {
		at := now.Add(time.Duration(skew*period) * time.Second)
		if ok, err := totp.ValidateCustom(code, secret, at, opts); err == nil && ok {
			return at.Unix() / period, true
		}
	}
	return 0, false
}

// Code returns the current code for secret; used by tests and tooling
func Code(secret string, now time.Time) (string, error) {
	return totp.GenerateCode(secret, now)
}

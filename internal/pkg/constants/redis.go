package constants

import "time"

// Redis key formats
const (
	KeyTOTPSetup    = "user:totp:setup:%s" // user:totp:setup:{user_id}
	KeyTOTPStep     = "user:totp:step:%s"  // user:totp:step:{user_id}
	KeyExchangeRate = "rates:current:%s"   // rates:current:{pair}
	KeyRateLimit    = "rate:limit:%s:%s"   // rate:limit:{route}:{identifier}
)

// TOTPSetupTTL bounds how long an unconfirmed 2FA secret is kept
const TOTPSetupTTL = 10 * time.Minute

// TOTPStepTTL outlives the window in which an accepted code still validates
const TOTPStepTTL = 2 * time.Minute

package auth

import (
	"time"

	"github.com/google/uuid"
)

// NewApprovalToken returns an opaque token and its expiry. The token
// authorizes a single future password-set action; it is only valid
// together with an unexpired expiry timestamp.
func NewApprovalToken(ttl time.Duration) (string, time.Time) {
	return uuid.NewString(), time.Now().Add(ttl)
}

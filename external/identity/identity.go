package identity

import (
	"context"
	"fmt"
)

const (
	logPrefix = "identity"
)

var (
	ErrInvalidToken = fmt.Errorf("invalid token")
	ErrUnavailable  = fmt.Errorf("identity service unavailable")
)

// Verifier - verifies a bearer credential and returns the subject it was issued to
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// Package services contains server-side business logic: authentication
// flows, watchlist management, and analysis storage. Services orchestrate
// repositories and never touch HTTP concerns.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/finbuddy/finbuddy/internal/common"
)

// storeTimeout bounds every call into the persistence layer so a stuck
// database cannot pin request handlers forever.
const storeTimeout = 5 * time.Second

func withStoreTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, storeTimeout)
}

// storeErr translates a timed-out store call into ErrorUnavailable, which
// the API maps to a retryable 503 instead of a misleading 4xx.
func storeErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return common.ErrorUnavailable
	}
	return err
}

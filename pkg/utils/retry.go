package utils

import (
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"gorm.io/gorm"
)

// RetryRead runs a read operation with bounded exponential backoff. Only
// transient store errors are retried; lookup misses, duplicate keys and any
// other business outcome short-circuit immediately (retrying a rejected
// request is never useful).
func RetryRead(op func() error) error {
	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(50*time.Millisecond),
		backoff.WithMaxElapsedTime(2*time.Second),
	), 3)

	return backoff.Retry(func() error {
		err := op()
		if err == nil {
			return nil
		}
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, gorm.ErrDuplicatedKey) {
			return backoff.Permanent(err)
		}
		return err
	}, policy)
}

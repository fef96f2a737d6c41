// utils/retry.go - Capped linear retry for transient backend failures
package utils

import (
	"errors"
	"log"
	"time"
)

const (
	MaxRetries = 3
	RetryDelay = 2 * time.Second
)

// ErrMaxRetries is returned once the retry cap is reached; callers surface it
// as a terminal "try again later" outcome instead of retrying forever.
var ErrMaxRetries = errors.New("maximum retry attempts reached")

// Retry runs fn up to MaxRetries times with a fixed delay between attempts.
func Retry(name string, fn func() error) error {
	return RetryWithDelay(name, MaxRetries, RetryDelay, fn)
}

// RetryWithDelay is Retry with explicit knobs, mainly for tests.
func RetryWithDelay(name string, attempts int, delay time.Duration, fn func() error) error {
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		log.Printf("⚠️ %s failed (attempt %d/%d): %v", name, attempt, attempts, lastErr)
		if attempt < attempts {
			time.Sleep(delay)
		}
	}
	return errors.Join(ErrMaxRetries, lastErr)
}

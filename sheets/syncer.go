// sheets/syncer.go - Best-effort registration export
package sheets

import (
	"context"
	"log"

	"github.com/seangjr/ythwknd25/config"
	"github.com/seangjr/ythwknd25/metrics"
	"github.com/seangjr/ythwknd25/models"
)

// Outcome reports what happened to one sync attempt. Failures never
// propagate to the caller; registration must not depend on bookkeeping.
type Outcome int

const (
	OutcomeSynced Outcome = iota
	OutcomeSkipped
	OutcomeFailed
)

// Appender is the slice of Client the syncer needs; tests substitute fakes.
type Appender interface {
	AppendRegistration(reg models.Registration) error
}

type Syncer struct {
	appender Appender
}

// NewSyncer wires the spreadsheet integration if it is configured. A missing
// or undecodable credential degrades to a no-op syncer rather than an error.
func NewSyncer(ctx context.Context, cfg config.Config) *Syncer {
	if !cfg.SheetsConfigured() {
		log.Println("Google Sheets integration not configured, sync disabled")
		return &Syncer{}
	}

	credentials, err := ParseServiceAccountKey(cfg.GoogleServiceAccountKey)
	if err != nil {
		log.Printf("⚠️ service account key unusable, sync disabled: %v", err)
		return &Syncer{}
	}

	client, err := NewClient(ctx, credentials, cfg.GoogleSheetID)
	if err != nil {
		log.Printf("⚠️ sheets client init failed, sync disabled: %v", err)
		return &Syncer{}
	}

	log.Println("✅ Google Sheets sync enabled")
	return &Syncer{appender: client}
}

// NewSyncerWithAppender is for tests.
func NewSyncerWithAppender(a Appender) *Syncer {
	return &Syncer{appender: a}
}

func (s *Syncer) Enabled() bool { return s.appender != nil }

// Sync appends one registration row. Every failure is swallowed into an
// Outcome; the error is returned only for logging.
func (s *Syncer) Sync(reg models.Registration) (Outcome, error) {
	if s.appender == nil {
		return OutcomeSkipped, nil
	}
	if err := s.appender.AppendRegistration(reg); err != nil {
		log.Printf("⚠️ sheets sync failed for line %d: %v", reg.LineNumber, err)
		metrics.SheetsSyncFailed.Inc()
		return OutcomeFailed, err
	}
	metrics.SheetsSynced.Inc()
	return OutcomeSynced, nil
}

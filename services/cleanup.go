// services/cleanup.go - Background invite expiry sweeper
package services

import (
	"log"
	"time"
)

const cleanupInterval = time.Hour

// CleanupService periodically deletes expired team invites so the lookup
// table stays small for the lifetime of the event.
type CleanupService struct {
	invites *InviteService
	stop    chan struct{}
	done    chan struct{}
}

func NewCleanupService(invites *InviteService) *CleanupService {
	return &CleanupService{
		invites: invites,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start launches the sweep loop.
func (s *CleanupService) Start() {
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				s.Sweep()
			}
		}
	}()
}

// Stop halts the loop and waits for it to exit.
func (s *CleanupService) Stop() {
	close(s.stop)
	<-s.done
}

// Sweep runs one cleanup pass.
func (s *CleanupService) Sweep() {
	deleted, err := s.invites.DeleteExpired()
	if err != nil {
		log.Printf("⚠️ invite cleanup failed: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("🧹 Cleaned up %d expired team invites", deleted)
	}
}

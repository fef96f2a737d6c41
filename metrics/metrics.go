package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	Registrations = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "ythwknd_registrations_total", Help: "Total successful registrations"},
	)
	RegistrationConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "ythwknd_registration_conflicts_total", Help: "Total registrations rejected on line/email/hero conflict"},
	)
	InvitesIssued = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "ythwknd_invites_issued_total", Help: "Total team invite links issued"},
	)
	SheetsSynced = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "ythwknd_sheets_synced_total", Help: "Total registrations appended to the spreadsheet"},
	)
	SheetsSyncFailed = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "ythwknd_sheets_sync_failed_total", Help: "Total spreadsheet appends that failed or were skipped"},
	)
)

func Register() {
	prometheus.MustRegister(Registrations, RegistrationConflicts, InvitesIssued, SheetsSynced, SheetsSyncFailed)
}

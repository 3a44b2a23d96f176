package domain

import "time"

// PhaseReport summarizes one entity-type sync phase.
type PhaseReport struct {
	Phase    string `json:"phase"`
	Inserted int    `json:"inserted"`
	Updated  int    `json:"updated"`
	Skipped  int    `json:"skipped"`
}

// SyncReport summarizes a full multi-entity sync pass.
type SyncReport struct {
	Phases     []PhaseReport `json:"phases"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
}

func (r *SyncReport) Totals() (inserted, updated, skipped int) {
	for _, p := range r.Phases {
		inserted += p.Inserted
		updated += p.Updated
		skipped += p.Skipped
	}
	return inserted, updated, skipped
}

package models

import "time"

// AuditAction identifies what an ingestion call did to a canonical record.
type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

// AuditEntry is an append-only record of an effectful ingestion. Entries are
// never mutated or deleted by this pipeline.
type AuditEntry struct {
	ID        string                 `json:"id"` // aud_{uuid}
	JobID     string                 `json:"job_id" badgerhold:"index"`
	Action    AuditAction            `json:"action"`
	Source    string                 `json:"source"`
	Diff      map[string]interface{} `json:"diff,omitempty"` // changed field -> new value
	CreatedAt time.Time              `json:"created_at" badgerhold:"index"`
}

package audit

import (
	"context"
	"database/sql"

	_ "embed"
)

//go:embed schema.sql
var schemaSQL string

// Migrate applies the audit schema to the given database. It executes the
// statements in schema.sql which create the table if it does not already
// exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schemaSQL)
	return err
}

// PostgresLog records audit events in Postgres for external observability
// tooling. The caller owns the DB connection lifecycle.
type PostgresLog struct {
	DB *sql.DB
}

// NewPostgresLog constructs a recorder over an existing sql.DB.
func NewPostgresLog(db *sql.DB) *PostgresLog { return &PostgresLog{DB: db} }

// Record inserts the event. The table is append-only; nothing updates or
// deletes rows.
func (l *PostgresLog) Record(ctx context.Context, ev Event) error {
	_, err := l.DB.ExecContext(ctx,
		`INSERT INTO audit_events (id, pseudo_id, ts, event_type, content_len, intent)
         VALUES ($1, $2, $3, $4, $5, $6)`,
		ev.ID, ev.PseudoID, ev.Timestamp, string(ev.Type), ev.ContentLen, ev.Intent,
	)
	return err
}

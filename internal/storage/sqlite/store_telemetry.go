package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vishalnayak-hash/Quadratic-Funding/internal/storage"
)

// AppendTelemetryEvent records an operational telemetry event.
func (s *Store) AppendTelemetryEvent(ctx context.Context, evt storage.TelemetryEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(evt.EventName) == "" {
		return fmt.Errorf("event name is required")
	}
	if strings.TrimSpace(evt.Severity) == "" {
		return fmt.Errorf("severity is required")
	}
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now().UTC()
	}
	attributes := evt.AttributesJSON
	if len(attributes) == 0 {
		attributes = []byte("{}")
	}

	if _, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO telemetry_events (timestamp, event_name, severity, project_id, actor, attributes_json)
VALUES (?, ?, ?, ?, ?, ?)`,
		toMillis(evt.Timestamp), evt.EventName, evt.Severity,
		int64(evt.ProjectID), string(evt.Actor), string(attributes),
	); err != nil {
		return fmt.Errorf("append telemetry event: %w", err)
	}
	return nil
}

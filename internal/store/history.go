package store

import (
	"context"
	"database/sql"
	"fmt"
)

const historyColumns = "id, raw, action, list_id, list_name, summary, matched, missed, created_at"

// RecordVoiceCommand persists the outcome of one applied voice command.
func (s *Store) RecordVoiceCommand(ctx context.Context, rec VoiceRecord) error {
	var listID any
	if rec.ListID != 0 {
		listID = rec.ListID
	}
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO voice_history (id, raw, action, list_id, list_name, summary, matched, missed, created_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.Raw,
		rec.Action,
		listID,
		rec.ListName,
		rec.Summary,
		rec.Matched,
		rec.Missed,
		nowTimestamp(),
	)
	if err != nil {
		return fmt.Errorf("insert voice record: %w", err)
	}
	return nil
}

// RecentVoiceCommands returns the newest voice records, up to limit.
func (s *Store) RecentVoiceCommands(ctx context.Context, limit int) ([]*VoiceRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+historyColumns+` FROM voice_history ORDER BY created_at DESC, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query voice history: %w", err)
	}
	defer rows.Close()

	var records []*VoiceRecord
	for rows.Next() {
		var (
			rec        VoiceRecord
			listID     sql.NullInt64
			createdRaw string
		)
		if err := rows.Scan(
			&rec.ID,
			&rec.Raw,
			&rec.Action,
			&listID,
			&rec.ListName,
			&rec.Summary,
			&rec.Matched,
			&rec.Missed,
			&createdRaw,
		); err != nil {
			return nil, err
		}
		rec.ListID = listID.Int64
		if created, err := parseTimeString(createdRaw); err == nil {
			rec.CreatedAt = created
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

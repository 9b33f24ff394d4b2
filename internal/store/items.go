package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"grocer/internal/textutil"
)

const itemColumns = "id, list_id, name, quantity, checked, position, created_at, updated_at"

// AddItem appends an item to the end of a list.
func (s *Store) AddItem(ctx context.Context, listID int64, name, quantity string) (*Item, error) {
	timestamp := nowTimestamp()
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO items (list_id, name, quantity, checked, position, created_at, updated_at)
         VALUES (?, ?, ?, 0, COALESCE((SELECT MAX(position) + 1 FROM items WHERE list_id = ?), 0), ?, ?)`,
		listID,
		name,
		quantity,
		listID,
		timestamp,
		timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetItem(ctx, id)
}

// GetItem fetches an item by identifier.
func (s *Store) GetItem(ctx context.Context, id int64) (*Item, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE id = ?`, id)
	item, err := scanStoredItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// ItemsForList returns a list's items in position order.
func (s *Store) ItemsForList(ctx context.Context, listID int64) ([]*Item, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+itemColumns+` FROM items WHERE list_id = ? ORDER BY position, id`,
		listID,
	)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		item, err := scanStoredItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// MatchItems returns the list's items whose names match the given name
// case-insensitively, by equality or substring containment in either
// direction.
func (s *Store) MatchItems(ctx context.Context, listID int64, name string) ([]*Item, error) {
	items, err := s.ItemsForList(ctx, listID)
	if err != nil {
		return nil, err
	}
	var matched []*Item
	for _, item := range items {
		if textutil.ContainsFold(item.Name, name) || textutil.ContainsFold(name, item.Name) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// SetItemChecked updates an item's checked state.
func (s *Store) SetItemChecked(ctx context.Context, id int64, checked bool) error {
	res, err := s.db.ExecContext(
		ctx,
		`UPDATE items SET checked = ?, updated_at = ? WHERE id = ?`,
		boolToInt(checked),
		nowTimestamp(),
		id,
	)
	if err != nil {
		return fmt.Errorf("update item checked: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// RemoveItem deletes an item by identifier.
func (s *Store) RemoveItem(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// ClearChecked removes every checked item from a list.
func (s *Store) ClearChecked(ctx context.Context, listID int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE list_id = ? AND checked = 1`, listID)
	if err != nil {
		return 0, fmt.Errorf("clear checked items: %w", err)
	}
	return res.RowsAffected()
}

func scanStoredItem(scanner interface{ Scan(dest ...any) error }) (*Item, error) {
	var (
		id         int64
		listID     int64
		name       string
		quantity   string
		checked    int64
		position   int
		createdRaw string
		updatedRaw string
	)
	if err := scanner.Scan(&id, &listID, &name, &quantity, &checked, &position, &createdRaw, &updatedRaw); err != nil {
		return nil, err
	}
	item := &Item{
		ID:       id,
		ListID:   listID,
		Name:     name,
		Quantity: quantity,
		Checked:  checked != 0,
		Position: position,
	}
	if created, err := parseTimeString(createdRaw); err == nil {
		item.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw); err == nil {
		item.UpdatedAt = updated
	}
	return item, nil
}

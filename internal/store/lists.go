package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"grocer/internal/textutil"
)

const listColumns = "id, name, created_at, updated_at"

// CreateList inserts a new list. Names are unique case-insensitively;
// collisions return ErrDuplicateList.
func (s *Store) CreateList(ctx context.Context, name string) (*List, error) {
	timestamp := nowTimestamp()
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO lists (name, created_at, updated_at) VALUES (?, ?, ?)`,
		name,
		timestamp,
		timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert list: %w", translateConstraint(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetList(ctx, id)
}

// GetList fetches a list by identifier.
func (s *Store) GetList(ctx context.Context, id int64) (*List, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+listColumns+` FROM lists WHERE id = ?`, id)
	list, err := scanList(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get list: %w", err)
	}
	return list, nil
}

// ListByName returns the list whose name matches exactly, ignoring case.
func (s *Store) ListByName(ctx context.Context, name string) (*List, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+listColumns+` FROM lists WHERE name = ? COLLATE NOCASE LIMIT 1`,
		name,
	)
	list, err := scanList(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find list by name: %w", err)
	}
	return list, nil
}

// Lists returns every list ordered by name.
func (s *Store) Lists(ctx context.Context) ([]*List, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+listColumns+` FROM lists ORDER BY name COLLATE NOCASE`)
	if err != nil {
		return nil, fmt.Errorf("query lists: %w", err)
	}
	defer rows.Close()

	var lists []*List
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			return nil, err
		}
		lists = append(lists, list)
	}
	return lists, rows.Err()
}

// RenameList updates a list's name. Returns ErrListNotFound when the list
// does not exist and ErrDuplicateList on a name collision.
func (s *Store) RenameList(ctx context.Context, id int64, name string) error {
	res, err := s.db.ExecContext(
		ctx,
		`UPDATE lists SET name = ?, updated_at = ? WHERE id = ?`,
		name,
		nowTimestamp(),
		id,
	)
	if err != nil {
		return fmt.Errorf("rename list: %w", translateConstraint(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrListNotFound
	}
	return nil
}

// DeleteList removes a list and, via cascade, its items.
func (s *Store) DeleteList(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM lists WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrListNotFound
	}
	return nil
}

// EnsureList returns the list with the given name, creating it when absent.
func (s *Store) EnsureList(ctx context.Context, name string) (*List, error) {
	list, err := s.ListByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if list != nil {
		return list, nil
	}
	list, err = s.CreateList(ctx, name)
	if errors.Is(err, ErrDuplicateList) {
		// Lost a race with another invocation; the list exists now.
		return s.ListByName(ctx, name)
	}
	return list, err
}

// ResolveList finds the list best matching a spoken name fragment: exact
// case-insensitive match first, then substring containment, then token
// similarity against every list. Among multiple candidates the highest
// similarity wins; candidates below minSimilarity are ignored. Returns nil
// when nothing matches.
func (s *Store) ResolveList(ctx context.Context, fragment string, minSimilarity float64) (*List, error) {
	fragment = textutil.NormalizeName(fragment)
	if fragment == "" {
		return nil, nil
	}

	if list, err := s.ListByName(ctx, fragment); err != nil || list != nil {
		return list, err
	}

	lists, err := s.Lists(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]*List, 0, len(lists))
	for _, list := range lists {
		if textutil.ContainsFold(list.Name, fragment) || textutil.ContainsFold(fragment, list.Name) {
			candidates = append(candidates, list)
		}
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}
	if len(candidates) == 0 {
		candidates = lists
	}

	target := textutil.NewFingerprint(fragment)
	var best *List
	bestScore := minSimilarity
	for _, list := range candidates {
		score := textutil.CosineSimilarity(target, textutil.NewFingerprint(list.Name))
		if score > bestScore {
			best = list
			bestScore = score
		}
	}
	return best, nil
}

func scanList(scanner interface{ Scan(dest ...any) error }) (*List, error) {
	var (
		id         int64
		name       string
		createdRaw string
		updatedRaw string
	)
	if err := scanner.Scan(&id, &name, &createdRaw, &updatedRaw); err != nil {
		return nil, err
	}
	list := &List{ID: id, Name: name}
	if created, err := parseTimeString(createdRaw); err == nil {
		list.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw); err == nil {
		list.UpdatedAt = updated
	}
	return list, nil
}

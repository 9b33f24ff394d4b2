// Package store manages grocery list persistence backed by SQLite.
//
// It owns the lists, items, and voice_history tables, applies embedded
// schema migrations on open (guarded by a file lock so concurrent CLI
// invocations cannot race), and exposes the matching primitives the voice
// apply layer depends on: case-insensitive list resolution with similarity
// ranking and substring item matching.
package store

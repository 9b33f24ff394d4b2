// Package apply executes parsed voice commands against the list store.
//
// It resolves the target list (explicit flag, spoken list name, or the
// configured default), applies add/complete/uncomplete/remove operations,
// aggregates per-item match counts, and records each applied command to the
// voice history with a correlation ID. The parser itself never fails;
// operational errors (unknown list, nothing matched) surface here.
package apply

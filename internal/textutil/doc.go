// Package textutil provides text helpers shared by the voice parser and the
// list store: name normalization for case-insensitive matching and token
// fingerprints with cosine similarity for fuzzy list-name resolution.
package textutil

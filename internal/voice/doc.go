// Package voice translates speech transcripts into structured grocery list
// commands.
//
// Parsing is a pure, synchronous pipeline: normalize the transcript, detect
// the intended action, extract an optional trailing target-list clause, strip
// the action verb, split the remainder into item phrases, and extract an
// optional quantity and unit from each phrase. Parse never fails; malformed
// input degrades to an add command carrying the remaining text as a single
// item name so the caller always has something actionable to show the user.
//
// The verb, unit, and number-word tables are ordered slices because matching
// order is semantically significant: the first matching entry wins.
package voice

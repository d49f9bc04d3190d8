// Package gamefile turns a game submission (loosely typed form fields plus a
// JSON details payload) into the canonical game file consumed by the site:
// YAML front matter with a fixed key schema, a short body, and an optional
// hidden reviewer-notes comment.
//
// The pipeline is pure and deterministic. Build canonicalizes an Input into a
// Document; Render serializes a Document under a Schema; Extract reads a
// rendered file back into a Record; Check validates a Record against the
// canonical key rules.
//
// Only missing required fields are errors. Malformed details JSON, unmapped
// glitch text and empty optional lists degrade to documented defaults.
package gamefile

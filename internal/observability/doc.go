// Package observability provides the toast notification sink and the
// append-only event log for the field-operations console. Events are
// persisted as structured JSON Lines (JSONL).
package observability

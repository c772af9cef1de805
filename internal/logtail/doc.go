// Package logtail reads the tail of the przepisnik log file.
//
// Read keeps a ring buffer of the newest records, so memory stays bounded
// by the requested line count regardless of file size. Records below the
// requested level are skipped before they enter the buffer.
//
// Parse understands both handler formats the logging package writes:
//
//	ts=2026-10-14T09:12:03Z level=info msg="recipe loaded" uuid=abc-123
//	{"ts":"2026-10-14T09:12:03Z","level":"info","msg":"recipe loaded","uuid":"abc-123"}
//
// Lines in any other shape are returned verbatim as info-level messages.
// A missing log file yields no entries and no error.
package logtail

// Package logtail reads text files for display in the viewer pane.
//
// # Overview
//
// Read extracts the last N lines of a file with a ring buffer, so large log
// files are scanned once with memory bounded by N:
//
//	lines, err := logtail.Read("/var/log/app.log", 2000)
//	if err != nil {
//		return err
//	}
//
// A missing file is not an error; it yields no lines.
//
// LineLevel picks the severity word out of common log line layouts so the
// viewer can color lines, and ExpandTabs turns tabs into spaces because a
// plate holds exactly one rune per cell.
package logtail

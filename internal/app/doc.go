// Package app is the composition root of layerterm.
//
// # Overview
//
// Run wires configuration, logging, preferences and the glyph registry
// together and hands control to one of the two UI backends:
//
//	Run()
//	  ├─> config.Load()      Read ~/.config/layerterm/config.toml
//	  ├─> setupLogging()     Redirect log output to log_file
//	  ├─> prefs.Load()       Theme and last focused field
//	  ├─> box.NewRegistry()  Classify and bucket the box glyphs once
//	  ├─> viewerText()       logtail.Read of the viewer file
//	  └─> ui.Run()           Bubble Tea program (blocks)
//	      or ui.RunTcell()   tcell event loop (blocks)
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Config file unreadable or invalid
//   - Unknown backend override
//   - Log file cannot be opened
//   - Terminal initialization failure
//
// Recoverable errors (logged, startup continues):
//   - Viewer file unreadable: the error text is shown in the viewer
//   - Preferences unreadable: defaults are used
//
// # Logging
//
// The terminal belongs to the UI, so the standard logger is pointed at the
// configured log file with tea.LogToFile. An empty log_file discards output.
package app

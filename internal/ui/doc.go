// Package ui is the layerterm demo: a full-screen form and file viewer drawn
// entirely through the plate and viewport layers.
//
// # Architecture Overview
//
// Scene owns all rendering state. Its viewport stack holds:
//
//   - the root viewport covering the screen, with a background plate and a
//     chrome plate carrying the outer frame, the title and the help line
//   - the form pane, whose plates are taller than the screen, holding one
//     bordered box per field
//   - one single-row viewport per field, nested in the form, over a plate
//     wider than the field so long values scroll sideways
//   - the viewer frame and, nested inside it, the viewer text
//
// Borders are box regions turned into glyphs by box.MapMaker and painted onto
// chrome plates with plate.BoxRenderer. The focused field gets a heavy square
// border; everything else uses the configured border style.
//
// # Focus and Scrolling
//
// Field editing is delegated to bubbles/textinput. After every key the cursor
// position becomes the key point of a bring-into-view on the field viewport,
// which scrolls the field, the form and the root in turn; the field's full
// box is then brought into the form with BringRectIntoView. Page keys scroll
// the viewer a screen at a time.
//
// # Backends
//
// Model implements tea.Model and renders into a console.Buffer whose Styled
// output is the View. RunTcell feeds tcell events through the same Update and
// renders into a console.Screen, so both backends share one Scene.
//
// # Key Bindings
//
//   - tab / down: next field
//   - shift+tab / up: previous field
//   - left, right, home, end, ctrl+a, ctrl+e: move the cursor
//   - pgup / pgdown: scroll the viewer
//   - ctrl+t: cycle themes (saved to prefs)
//   - esc / ctrl+c: quit
package ui

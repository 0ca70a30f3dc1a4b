package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/layerterm/internal/box"
	"github.com/five82/layerterm/internal/config"
	"github.com/five82/layerterm/internal/geometry"
	"github.com/five82/layerterm/internal/logtail"
	"github.com/five82/layerterm/internal/plate"
	"github.com/five82/layerterm/internal/style"
	"github.com/five82/layerterm/internal/viewport"
)

const (
	fieldHeight  = 3
	minFormWidth = 18
	tabWidth     = 4
)

// focusBorder is drawn around the focused field. The block has no heavy arcs,
// so it uses square corners.
var focusBorder = config.Border{Weight: box.Heavy, Corner: box.CornerBox}

type sceneIDs struct {
	root        viewport.ID
	form        viewport.ID
	fields      []viewport.ID
	viewerFrame viewport.ID
	viewer      viewport.ID
}

// SceneOptions configure a Scene.
type SceneOptions struct {
	Registry *box.Registry
	Border   config.Border
	Theme    Theme
	Title    string
	Lines    []string
}

// Scene is the demo screen: an outer frame, a form pane of text fields taller
// than the screen, and a text viewer. Every pane is a viewport; each field is
// a one-row viewport nested inside the form so it scrolls on both axes.
type Scene struct {
	maker    *box.MapMaker
	renderer plate.BoxRenderer
	border   config.Border
	keys     keyMap

	theme   Theme
	formats Formats

	fields []*Field
	focus  int

	title     string
	lines     []string
	textWidth int

	width, height int
	stack         *viewport.Stack
	ids           sceneIDs

	base, chrome             *plate.Plate
	formBase, formChrome     *plate.Plate
	fieldPlates              []*plate.Plate
	viewerChrome, viewerText *plate.Plate
}

// NewScene returns a scene with the default form fields and the first one
// focused. Call Resize before rendering.
func NewScene(opts SceneOptions) *Scene {
	reg := opts.Registry
	if reg == nil {
		reg = box.NewRegistry()
	}
	theme := opts.Theme
	if theme.Name == "" {
		theme = GetTheme("")
	}
	s := &Scene{
		maker:    box.NewMapMaker(reg),
		renderer: plate.NewBoxRenderer(),
		border:   opts.Border,
		keys:     DefaultKeyMap(),
		theme:    theme,
		formats:  theme.Formats(),
		fields:   defaultFields(),
	}
	s.setText(opts.Title, opts.Lines)
	s.fields[0].focus()
	s.Resize(0, 0)
	return s
}

func (s *Scene) setText(title string, lines []string) {
	if title == "" {
		title = "viewer"
	}
	s.title = title
	s.lines = make([]string, len(lines))
	s.textWidth = 0
	for i, line := range lines {
		s.lines[i] = logtail.ExpandTabs(line, tabWidth)
		s.textWidth = max(s.textWidth, style.TextWidth(s.lines[i]))
	}
}

// Theme returns the active theme.
func (s *Scene) Theme() Theme { return s.theme }

// SetTheme switches palettes; the next Render repaints every plate.
func (s *Scene) SetTheme(t Theme) {
	s.theme = t
	s.formats = t.Formats()
}

// Fields returns the form fields in display order.
func (s *Scene) Fields() []*Field { return s.fields }

// Focused returns the field receiving input.
func (s *Scene) Focused() *Field { return s.fields[s.focus] }

// Stack exposes the viewport stack.
func (s *Scene) Stack() *viewport.Stack { return s.stack }

// Resize lays the scene out for a width x height screen, keeping scroll
// positions where they still make sense.
func (s *Scene) Resize(width, height int) {
	origins := make(map[viewport.ID][2]int)
	if s.stack != nil {
		for _, id := range s.stack.IDs() {
			v, _ := s.stack.Viewport(id)
			origins[id] = [2]int{v.FirstVisibleColumn, v.FirstVisibleRow}
		}
	}

	s.width, s.height = max(width, 0), max(height, 0)
	s.layout()

	for id, o := range origins {
		s.stack.SetScroll(id, o[0], o[1])
	}
	s.clampScroll()
	s.follow()
}

// layout rebuilds the viewport stack. IDs are assigned in the same order on
// every call, so scroll origins can be carried across by ID.
func (s *Scene) layout() {
	w, h := s.width, s.height
	innerW, innerH := max(w-2, 0), max(h-2, 0)
	formW := min(innerW, max(minFormWidth, innerW*2/5))
	viewerW := innerW - formW

	s.stack = viewport.NewStack()

	s.base, s.chrome = plate.New(w, h), plate.New(w, h)
	s.ids.root = s.stack.AddViewport(viewport.Viewport{
		Width: w, Height: h,
		Plates: plate.NewStack(s.base, s.chrome),
	})

	formH := len(s.fields) * fieldHeight
	s.formBase, s.formChrome = plate.New(formW, formH), plate.New(formW, formH)
	s.ids.form = s.stack.AddViewport(viewport.Viewport{
		Left: 1, Top: 1, Width: formW, Height: innerH,
		Plates:    plate.NewStack(s.formBase, s.formChrome),
		Container: s.ids.root,
	})

	s.ids.fields = make([]viewport.ID, len(s.fields))
	s.fieldPlates = make([]*plate.Plate, len(s.fields))
	for i := range s.fields {
		s.fieldPlates[i] = plate.New(fieldCapacity, 1)
		s.ids.fields[i] = s.stack.AddViewport(viewport.Viewport{
			Left: 1, Top: i*fieldHeight + 1, Width: max(formW-2, 0), Height: 1,
			Plates:    plate.NewStack(s.fieldPlates[i]),
			Container: s.ids.form,
		})
	}

	s.viewerChrome = plate.New(viewerW, innerH)
	s.ids.viewerFrame = s.stack.AddViewport(viewport.Viewport{
		Left: 1 + formW, Top: 1, Width: viewerW, Height: innerH,
		Plates:    plate.NewStack(s.viewerChrome),
		Container: s.ids.root,
	})

	vw, vh := max(viewerW-2, 0), max(innerH-2, 0)
	s.viewerText = plate.New(max(s.textWidth, vw), max(len(s.lines), vh))
	s.ids.viewer = s.stack.AddViewport(viewport.Viewport{
		Left: 1, Top: 1, Width: vw, Height: vh,
		Plates:    plate.NewStack(s.viewerText),
		Container: s.ids.viewerFrame,
	})
}

// clampScroll keeps every origin within its plate stack.
func (s *Scene) clampScroll() {
	for _, id := range s.stack.IDs() {
		v, _ := s.stack.Viewport(id)
		pw, ph := v.Plates.Size()
		s.stack.SetScroll(id,
			min(v.FirstVisibleColumn, max(pw-v.Width, 0)),
			min(v.FirstVisibleRow, max(ph-v.Height, 0)))
	}
}

// follow scrolls the focused field's cursor into view, then makes sure its
// whole box is visible in the form pane, and parks the terminal cursor there.
func (s *Scene) follow() {
	i := s.focus
	id := s.ids.fields[i]
	pos := s.fields[i].Column()

	s.stack.BringIntoView(id, pos, 0)
	if form, ok := s.stack.Viewport(s.ids.form); ok {
		top := i * fieldHeight
		fieldBox := geometry.NewRectangle(0, top, form.Width, fieldHeight).WithKey(1, top+1)
		s.stack.BringRectIntoView(s.ids.form, fieldBox)
	}
	s.stack.SetCursor(id, pos, 0)
}

// FocusNext moves input focus to the next field, wrapping around.
func (s *Scene) FocusNext() tea.Cmd {
	return s.setFocus((s.focus + 1) % len(s.fields))
}

// FocusPrev moves input focus to the previous field, wrapping around.
func (s *Scene) FocusPrev() tea.Cmd {
	return s.setFocus((s.focus + len(s.fields) - 1) % len(s.fields))
}

// FocusLabel focuses the field with the given label and reports whether one
// was found.
func (s *Scene) FocusLabel(label string) bool {
	for i, f := range s.fields {
		if f.Label == label {
			s.setFocus(i)
			return true
		}
	}
	return false
}

func (s *Scene) setFocus(i int) tea.Cmd {
	s.fields[s.focus].blur()
	s.focus = i
	cmd := s.fields[i].focus()
	s.follow()
	return cmd
}

// UpdateField forwards msg to the focused field.
func (s *Scene) UpdateField(msg tea.Msg) tea.Cmd {
	cmd := s.fields[s.focus].update(msg)
	s.follow()
	return cmd
}

// PageDown scrolls the viewer one page towards the end.
func (s *Scene) PageDown() { s.page(1) }

// PageUp scrolls the viewer one page towards the start.
func (s *Scene) PageUp() { s.page(-1) }

func (s *Scene) page(dir int) {
	v, ok := s.stack.Viewport(s.ids.viewer)
	if !ok || v.Height <= 0 {
		return
	}
	_, contentH := v.Plates.Size()
	top := v.FirstVisibleRow + dir*v.Height
	top = max(min(top, contentH-v.Height), 0)
	s.stack.BringRectIntoView(s.ids.viewer, geometry.NewRectangle(v.FirstVisibleColumn, top, v.Width, v.Height))
}

// Render repaints every plate from the scene state and composites the stack
// onto c.
func (s *Scene) Render(c viewport.Console) {
	s.paint()
	s.stack.Render(c)
}

func (s *Scene) paint() {
	f := s.formats

	s.base.Fill(' ', f.Background)
	s.chrome.Clear()
	s.drawBoxes(s.chrome, s.region(0, 0, s.width, s.height, false, f.Frame))
	s.chrome.WriteLabel(2, 0, " layerterm ", s.width-4, f.Title)
	s.chrome.WriteLabel(2, s.height-1, s.keys.HelpLine(), s.width-4, f.Help)

	s.paintForm()
	s.paintViewer()
}

func (s *Scene) paintForm() {
	f := s.formats
	formW, _ := s.formBase.Size()

	s.formBase.Fill(' ', f.Pane)
	s.formChrome.Clear()
	regions := make([]box.BoxRegion, len(s.fields))
	for i := range s.fields {
		focused := i == s.focus
		bf := f.FieldBorder
		if focused {
			bf = f.FocusBorder
		}
		regions[i] = s.region(0, i*fieldHeight, formW, fieldHeight, focused, bf)
	}
	s.drawBoxes(s.formChrome, regions...)

	for i, field := range s.fields {
		label, input := f.Label, f.Input
		if i == s.focus {
			label, input = f.FocusLabel, f.FocusInput
		}
		s.formChrome.WriteLabel(2, i*fieldHeight, " "+field.Label+" ", formW-4, label)

		p := s.fieldPlates[i]
		p.Fill(' ', input)
		p.WriteText(0, 0, field.Value(), input)
	}
}

func (s *Scene) paintViewer() {
	f := s.formats
	w, h := s.viewerChrome.Size()

	s.viewerChrome.Fill(' ', f.Pane)
	s.drawBoxes(s.viewerChrome, s.region(0, 0, w, h, false, f.PaneBorder))
	s.viewerChrome.WriteLabel(2, 0, " "+s.title+" ", w-4, f.FocusLabel)

	if v, ok := s.stack.Viewport(s.ids.viewer); ok && len(s.lines) > 0 {
		first := min(v.FirstVisibleRow+1, len(s.lines))
		last := min(v.FirstVisibleRow+v.Height, len(s.lines))
		status := fmt.Sprintf(" %d-%d/%d ", first, last, len(s.lines))
		s.viewerChrome.WriteLabel(max(w-2-len(status), 1), h-1, status, w-2, f.Label)
	}

	s.viewerText.Fill(' ', f.Viewer)
	for y, line := range s.lines {
		s.viewerText.WriteText(0, y, line, f.Line(logtail.LineLevel(line)))
	}
}

func (s *Scene) region(x, y, width, height int, focused bool, f style.Format) box.BoxRegion {
	b := s.border
	if focused {
		b = focusBorder
	}
	r := b.Region(x, y, width, height)
	r.Format = f
	return r
}

func (s *Scene) drawBoxes(p *plate.Plate, regions ...box.BoxRegion) {
	w, h := p.Size()
	s.renderer.Render(s.maker.Build(w, h, regions...), p)
}

// Package plate holds layer buffers and composites them.
//
// A Plate is one transparent layer of runes with a parallel format array,
// row-major like a terminal cell buffer (cells[y*width+x]). A cell holding
// Unset is transparent. A Stack is an ordered list of plates, bottom first;
// reading a cell returns the topmost non-transparent rune, or a space.
//
// Plates are written between frames by the code that owns them. Stacks only
// read, so several viewports may share one Stack during a render pass.
//
//	bg := plate.New(80, 24)
//	bg.Fill(' ', theme.Surface)
//	borders := plate.New(80, 24)
//	plate.NewBoxRenderer().Render(maker.Build(80, 24, regions...), borders)
//	stack := plate.NewStack(bg, borders)
//	r := stack.TakeCharacterFromStack(0, 0)
package plate

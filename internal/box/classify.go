package box

import "strings"

// Side names one of the four arms a box glyph can have.
type Side int

const (
	Left Side = iota
	Right
	Up
	Down
	sideCount
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "side?"
}

// BoxCharacter is one classified glyph of the catalogue.
type BoxCharacter struct {
	Name     string
	Source   rune
	Corner   CornerType
	Left     *Edge
	Right    *Edge
	Up       *Edge
	Down     *Edge
	Unparsed []string
}

// Edge returns the edge on side s, or nil when the glyph has no arm there.
func (c BoxCharacter) Edge(s Side) *Edge {
	switch s {
	case Left:
		return c.Left
	case Right:
		return c.Right
	case Up:
		return c.Up
	case Down:
		return c.Down
	}
	return nil
}

// Parsed reports whether every token of the glyph name was understood.
func (c BoxCharacter) Parsed() bool {
	return len(c.Unparsed) == 0
}

// Shape returns the side-presence pattern of the glyph.
func (c BoxCharacter) Shape() Shape {
	return shapeOf(c.Left != nil, c.Right != nil, c.Up != nil, c.Down != nil)
}

func (c *BoxCharacter) assign(s Side, e Edge) {
	switch s {
	case Left:
		c.Left = &e
	case Right:
		c.Right = &e
	case Up:
		c.Up = &e
	case Down:
		c.Down = &e
	}
}

// Classify turns a glyph name such as "HEAVY_DOWN_AND_RIGHT" into a
// BoxCharacter. Tokens that fit no pattern end up in Unparsed.
func Classify(name string, source rune) BoxCharacter {
	c := BoxCharacter{Name: name, Source: source}
	p := parser{tokens: strings.Split(name, "_")}
	for !p.done() {
		if p.peek() == "AND" {
			p.pos++
			continue
		}
		if p.arc(&c) || p.prefixEdge(&c) || p.suffixEdge(&c) {
			continue
		}
		c.Unparsed = append(c.Unparsed, p.peek())
		p.pos++
	}
	return c
}

// parser walks a token list. Every pattern method either consumes tokens and
// reports true, or leaves pos where it was and reports false.
type parser struct {
	tokens []string
	pos    int
}

func (p *parser) done() bool { return p.pos >= len(p.tokens) }

func (p *parser) peek() string {
	if p.done() {
		return ""
	}
	return p.tokens[p.pos]
}

func (p *parser) at(i int) string {
	if p.pos+i >= len(p.tokens) {
		return ""
	}
	return p.tokens[p.pos+i]
}

// arc matches: [weight] ARC edges.
func (p *parser) arc(c *BoxCharacter) bool {
	start := p.pos
	e := Edge{}
	if w, ok := weightToken(p.peek()); ok {
		e.Weight = w
		p.pos++
	}
	if p.peek() != "ARC" {
		p.pos = start
		return false
	}
	p.pos++
	sides := p.edges()
	if len(sides) == 0 {
		p.pos = start
		return false
	}
	c.Corner = CornerArc
	for _, s := range sides {
		c.assign(s, e)
	}
	return true
}

// prefixEdge matches: edges [weight] [dash DASH] [count].
func (p *parser) prefixEdge(c *BoxCharacter) bool {
	start := p.pos
	sides := p.edges()
	if len(sides) == 0 {
		p.pos = start
		return false
	}
	e := p.style()
	for _, s := range sides {
		c.assign(s, e)
	}
	return true
}

// suffixEdge matches: [weight] [dash DASH] [count] edges.
func (p *parser) suffixEdge(c *BoxCharacter) bool {
	start := p.pos
	e := p.style()
	sides := p.edges()
	if len(sides) == 0 {
		p.pos = start
		return false
	}
	for _, s := range sides {
		c.assign(s, e)
	}
	return true
}

// style consumes optional weight, dash and count tokens in that order.
func (p *parser) style() Edge {
	e := Edge{}
	if w, ok := weightToken(p.peek()); ok {
		e.Weight = w
		p.pos++
	}
	if d, ok := dashToken(p.peek()); ok && p.at(1) == "DASH" {
		e.Dash = d
		p.pos += 2
	}
	if n, ok := countToken(p.peek()); ok {
		e.Count = n
		p.pos++
	}
	return e
}

// edges consumes one or more edge identifiers. AND joins two identifiers only
// when another identifier follows it.
func (p *parser) edges() []Side {
	var out []Side
	for {
		sides, ok := sideToken(p.peek())
		if !ok {
			break
		}
		out = append(out, sides...)
		p.pos++
		if p.peek() == "AND" {
			if _, next := sideToken(p.at(1)); next {
				p.pos++
				continue
			}
		}
	}
	return out
}

func sideToken(tok string) ([]Side, bool) {
	switch tok {
	case "LEFT":
		return []Side{Left}, true
	case "RIGHT":
		return []Side{Right}, true
	case "UP":
		return []Side{Up}, true
	case "DOWN":
		return []Side{Down}, true
	case "HORIZONTAL":
		return []Side{Left, Right}, true
	case "VERTICAL":
		return []Side{Up, Down}, true
	}
	return nil, false
}

func weightToken(tok string) (LineWeight, bool) {
	switch tok {
	case "LIGHT":
		return Light, true
	case "HEAVY":
		return Heavy, true
	}
	return Light, false
}

func dashToken(tok string) (DashType, bool) {
	switch tok {
	case "DOUBLE":
		return DoubleDash, true
	case "TRIPLE":
		return TripleDash, true
	case "QUADRUPLE":
		return QuadrupleDash, true
	}
	return NoDash, false
}

func countToken(tok string) (LineCount, bool) {
	switch tok {
	case "SINGLE":
		return Single, true
	case "DOUBLE":
		return Double, true
	}
	return Single, false
}

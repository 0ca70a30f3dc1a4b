// Package box selects Unicode box drawing glyphs for rectangular borders.
//
// # Overview
//
// The catalogue covers the whole box drawing block, U+2500 through U+257F,
// keyed by each glyph's symbolic name. Classify reads a name such as
// "DOWN_LIGHT_AND_RIGHT_HEAVY" and produces a BoxCharacter with one Edge per
// arm. A Registry classifies the block once and partitions it by Shape.
//
// # Name patterns
//
// Names are split on "_" and consumed greedily, trying in order:
//
//  1. arc:    [LIGHT|HEAVY] ARC <edges>
//  2. prefix: <edges> [LIGHT|HEAVY] [DOUBLE|TRIPLE|QUADRUPLE DASH] [SINGLE|DOUBLE]
//  3. suffix: [LIGHT|HEAVY] [DOUBLE|TRIPLE|QUADRUPLE DASH] [SINGLE|DOUBLE] <edges>
//
// <edges> is one or more of LEFT, RIGHT, UP, DOWN, HORIZONTAL, VERTICAL, where
// AND may join two identifiers. A bare AND between patterns is skipped. Any
// other token is recorded as unparsed, and such glyphs (the diagonals) never
// take part in selection. Neither do the half-line glyphs, whose single arm
// forms no selectable shape.
//
// # Selection
//
// Selection is exact: a glyph qualifies only when it defines precisely the
// requested arms and every arm's Edge equals the requested one. Corner type
// is honored for the four corner shapes. When nothing qualifies the cell is
// left empty; there is no nearest-match fallback.
//
// # Box maps
//
// MapMaker stamps BoxRegions into a BoxMap in caller order, so a later region
// overwrites an earlier one where they overlap. Regions outside the surface
// are skipped and every cell write is bounds-checked. Corners are requested
// without the dash pattern because the block has no dashed corners.
package box

// Package layout computes certificate layouts: a pure mapping from one
// recipient's awards to an ordered list of placed elements on the fixed
// 1920x1080 canvas. All geometric policy lives here; drawing lives in the
// render package.
package layout

import (
	"fmt"
	"image"

	"github.com/packforge/awardgen/internal/award"
	"github.com/packforge/awardgen/internal/badge"
)

// Canvas and band geometry. The canvas never grows or shrinks with
// content; overflow is absorbed by cell sizing.
const (
	Width  = 1920
	Height = 1080

	BarHeight    = 15
	HeaderTop    = BarHeight + 20
	HeaderHeight = 140
	BodyTop      = HeaderTop + HeaderHeight
	BodyBottom   = Height - BarHeight - 20
	SideMargin   = 80

	NameSize = 90
	InfoSize = 32

	EmblemBox = HeaderHeight + 20

	FeaturedItem   = 120
	FeaturedPad    = 20
	FeaturedLabelH = 40
	FeaturedHeight = FeaturedItem + 2*FeaturedPad + FeaturedLabelH
	FeaturedGap    = 60
	FeaturedLabelW = 220
	FeaturedLabel  = 24

	// SingleColumnMax is the grid's column threshold: up to this many
	// adventure items lay out in one column at the larger cell size,
	// beyond it the grid switches to two columns. Changing it changes
	// every golden image.
	SingleColumnMax = 6

	MaxCell    = 200
	MinCell    = 64
	CaptionH   = 36
	CellPad    = 12
	ColumnsCap = 2

	// CaptionBudget is the fixed character budget for grid captions; no
	// real text measurement is done.
	CaptionBudget = 36

	// ResolveSize is the size badge art is resolved at; the renderer
	// letterboxes it into each box.
	ResolveSize = 400
)

// ColumnCount is the grid column policy: a deterministic function of item
// count only, non-decreasing, and never more than two columns.
func ColumnCount(n int) int {
	if n <= SingleColumnMax {
		return 1
	}
	return ColumnsCap
}

// Planner turns recipients into layout plans. It consults the badge
// resolver for award art and the emblem set for rank emblems, but performs
// no drawing and no other I/O.
type Planner struct {
	Badges  *badge.Resolver
	Emblems *badge.EmblemSet
}

func NewPlanner(badges *badge.Resolver, emblems *badge.EmblemSet) *Planner {
	return &Planner{Badges: badges, Emblems: emblems}
}

// Plan lays out one certificate. Element order is draw order: header text,
// featured row, grid, rank emblem last (on top). The only errors are
// configuration-grade: a malformed recipient or a missing rank emblem.
func (p *Planner) Plan(r award.Recipient) (*Plan, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	emblem, err := p.Emblems.Emblem(r.DenType)
	if err != nil {
		return nil, fmt.Errorf("planning certificate for %s: %w", r.FullName(), err)
	}

	plan := &Plan{Palette: PaletteFor(r.DenType)}

	// Header: name and den line at fixed sizes. Long names are accepted
	// as-is, never auto-shrunk.
	nameRight := Width - SideMargin - EmblemBox - FeaturedPad
	plan.Elements = append(plan.Elements,
		Element{
			Kind:      KindText,
			Box:       image.Rect(SideMargin, HeaderTop, nameRight, HeaderTop+100),
			Text:      r.FullName(),
			TextSize:  NameSize,
			TextColor: white,
		},
		Element{
			Kind:      KindText,
			Box:       image.Rect(SideMargin, HeaderTop+100, nameRight, HeaderTop+HeaderHeight),
			Text:      fmt.Sprintf("Den %d · %s", r.DenNumber, r.DenType.Display()),
			TextSize:  InfoSize,
			TextColor: plan.Palette.Primary,
		},
	)

	bodyTop := BodyTop
	if feats := r.Featured(); len(feats) > 0 {
		plan.FeaturedBand = image.Rect(0, bodyTop, Width, bodyTop+FeaturedHeight)
		p.planFeatured(plan, feats, bodyTop)
		bodyTop += FeaturedHeight
	}
	// An empty featured row collapses; the grid reclaims its space.

	if advs := r.Adventures(); len(advs) > 0 {
		p.planGrid(plan, advs, bodyTop)
	}

	plan.Elements = append(plan.Elements, Element{
		Kind:  KindEmblem,
		Box:   image.Rect(Width-SideMargin-EmblemBox, HeaderTop, Width-SideMargin, HeaderTop+EmblemBox),
		Image: wrap(emblem),
	})
	return plan, nil
}

// planFeatured lays the featured awards in a single centered row of
// fixed-size items, caption beneath each.
func (p *Planner) planFeatured(plan *Plan, feats []award.Record, bandTop int) {
	total := len(feats)*FeaturedItem + (len(feats)-1)*FeaturedGap
	x := (Width - total) / 2
	imgTop := bandTop + FeaturedPad

	for _, f := range feats {
		res := p.Badges.Resolve(f.SKU, ResolveSize)
		cx := x + FeaturedItem/2
		plan.Elements = append(plan.Elements,
			Element{
				Kind:  KindFeatured,
				Box:   image.Rect(x, imgTop, x+FeaturedItem, imgTop+FeaturedItem),
				Image: &res,
			},
			Element{
				Kind:      KindText,
				Box:       image.Rect(cx-FeaturedLabelW/2, imgTop+FeaturedItem+4, cx+FeaturedLabelW/2, bandTop+FeaturedHeight-4),
				Text:      caption(f.ItemName),
				TextSize:  FeaturedLabel,
				TextColor: white,
				Anchor:    0.5,
			},
		)
		x += FeaturedItem + FeaturedGap
	}
}

// planGrid lays adventure awards in 1 or 2 columns, column-major. Cell
// size shrinks to fit the available height up to a cap; below the minimum
// legible size rows run off the bottom silently rather than paginating.
func (p *Planner) planGrid(plan *Plan, advs []award.Record, bodyTop int) {
	n := len(advs)
	cols := ColumnCount(n)
	rows := (n + cols - 1) / cols
	availH := BodyBottom - bodyTop
	colW := (Width - 2*SideMargin) / cols

	cell := availH/rows - CaptionH - CellPad
	if cell > MaxCell {
		cell = MaxCell
	}
	if cell < MinCell {
		cell = MinCell
	}
	rowH := cell + CaptionH + CellPad

	gridTop := bodyTop
	if total := rows * rowH; total < availH {
		gridTop += (availH - total) / 2
	}

	capSize := float64(min(36, max(22, cell/4+14)))

	for i, a := range advs {
		col := i / rows
		row := i % rows
		x0 := SideMargin + col*colW
		y0 := gridTop + row*rowH

		res := p.Badges.Resolve(a.SKU, ResolveSize)
		imgX := x0 + (colW-cell)/2
		plan.Elements = append(plan.Elements,
			Element{
				Kind:  KindGrid,
				Box:   image.Rect(imgX, y0, imgX+cell, y0+cell),
				Image: &res,
			},
			Element{
				Kind:      KindText,
				Box:       image.Rect(x0, y0+cell, x0+colW, y0+cell+CaptionH),
				Text:      caption(a.ItemName),
				TextSize:  capSize,
				TextColor: white,
				Anchor:    0.5,
			},
		)
	}
}

// caption cleans an item name and truncates it to the fixed budget.
func caption(name string) string {
	s := award.CleanName(name)
	runes := []rune(s)
	if len(runes) <= CaptionBudget {
		return s
	}
	return string(runes[:CaptionBudget-1]) + "…"
}

func wrap(img image.Image) *badge.Resolved {
	b := img.Bounds()
	return &badge.Resolved{Image: img, W: b.Dx(), H: b.Dy(), Origin: badge.OriginCache}
}

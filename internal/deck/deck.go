// Package deck assembles rendered certificates into a single slide deck,
// one full-bleed image slide per recipient, ordered by rank then name.
package deck

import (
	"image"
	"sort"

	"github.com/packforge/awardgen/internal/award"
)

// Slide pairs a recipient with their rendered certificate.
type Slide struct {
	Recipient award.Recipient
	Image     image.Image
}

// Sort orders slides by rank progression, then last name, then first name,
// case-sensitive. Recipients appearing more than once keep every slide, in
// their sorted positions.
func Sort(slides []Slide) {
	sort.SliceStable(slides, func(i, j int) bool {
		return award.Less(slides[i].Recipient, slides[j].Recipient)
	})
}

// Assemble sorts the slides and writes them into a PPTX document. The
// input slice is not modified.
func Assemble(slides []Slide) ([]byte, error) {
	ordered := make([]Slide, len(slides))
	copy(ordered, slides)
	Sort(ordered)
	return writePPTX(ordered)
}

package award

import (
	"fmt"
	"strings"
)

// ItemType classifies an award line item. BadgeOfRank and MiscAward items
// go to the featured row of a certificate; Adventure items go to the grid.
type ItemType string

const (
	Adventure   ItemType = "Adventure"
	BadgeOfRank ItemType = "BadgeOfRank"
	MiscAward   ItemType = "MiscAward"
)

// DenType is the den classification as it appears in purchase-order
// exports (lowercase plural).
type DenType string

const (
	DenLions   DenType = "lions"
	DenTigers  DenType = "tigers"
	DenWolves  DenType = "wolves"
	DenBears   DenType = "bears"
	DenWebelos DenType = "webelos"
	DenAOL     DenType = "aol"
)

// RankOrder is the fixed progression used for sorting and slide order.
var RankOrder = []DenType{DenLions, DenTigers, DenWolves, DenBears, DenWebelos, DenAOL}

var rankIndex = func() map[DenType]int {
	m := make(map[DenType]int, len(RankOrder))
	for i, d := range RankOrder {
		m[d] = i
	}
	return m
}()

var denDisplay = map[DenType]string{
	DenLions:   "Lions",
	DenTigers:  "Tigers",
	DenWolves:  "Wolves",
	DenBears:   "Bears",
	DenWebelos: "Webelos",
	DenAOL:     "Arrow of Light",
}

// RankIndex returns the den's position in RankOrder; unknown dens sort last.
func (d DenType) RankIndex() int {
	if i, ok := rankIndex[d]; ok {
		return i
	}
	return len(RankOrder)
}

// Display returns the den name used in the certificate header.
func (d DenType) Display() string {
	if s, ok := denDisplay[d]; ok {
		return s
	}
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d)[:1]) + string(d)[1:]
}

func (d DenType) Known() bool {
	_, ok := rankIndex[d]
	return ok
}

// Record is one award line for a recipient. Duplicates are kept as
// separate entries; quantity is never collapsed.
type Record struct {
	SKU      string   `json:"sku"`
	ItemName string   `json:"item_name"`
	ItemType ItemType `json:"item_type"`
}

// Recipient is one scout with all awards grouped from the purchase order.
type Recipient struct {
	First     string   `json:"first"`
	Last      string   `json:"last"`
	DenType   DenType  `json:"den_type"`
	DenNumber int      `json:"den_number"`
	Awards    []Record `json:"awards"`
}

func (r Recipient) FullName() string {
	return r.First + " " + r.Last
}

// ID identifies a recipient within one generation run and doubles as the
// output filename stem: <den>_<last>_<first>.
func (r Recipient) ID() string {
	return fmt.Sprintf("%s_%s_%s", r.DenType, r.Last, r.First)
}

func (r Recipient) Filename() string {
	return r.ID() + ".png"
}

// Validate reports malformed recipients; these are configuration-grade
// failures, not something a fallback can paper over.
func (r Recipient) Validate() error {
	if strings.TrimSpace(r.First) == "" || strings.TrimSpace(r.Last) == "" {
		return fmt.Errorf("recipient %q: missing name", r.ID())
	}
	if r.DenType == "" {
		return fmt.Errorf("recipient %q: missing den type", r.ID())
	}
	return nil
}

// Featured returns the awards shown in the featured row, in input order.
func (r Recipient) Featured() []Record {
	var out []Record
	for _, a := range r.Awards {
		if a.ItemType != Adventure {
			out = append(out, a)
		}
	}
	return out
}

// Adventures returns the awards shown in the grid, in input order.
func (r Recipient) Adventures() []Record {
	var out []Record
	for _, a := range r.Awards {
		if a.ItemType == Adventure {
			out = append(out, a)
		}
	}
	return out
}

// CleanName trims the catalog suffixes that would just repeat the section
// the award is displayed in.
func CleanName(name string) string {
	name = strings.TrimSuffix(name, " Adventure")
	name = strings.TrimSuffix(name, " Emblem")
	return name
}

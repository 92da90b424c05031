package award

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadCSV parses a Scoutbook purchase-order export and groups rows into
// recipients. Rows for the same (first, last, den type, den number) merge
// into one recipient; their award lines are kept in file order, duplicates
// included. Recipient order follows first appearance in the file.
func LoadCSV(r io.Reader) ([]Recipient, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("csv has no header")
	}

	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.TrimSpace(h)] = i
	}
	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	type key struct {
		first, last string
		den         DenType
		num         int
	}
	index := map[key]int{}
	var out []Recipient

	for _, row := range rows[1:] {
		den := DenType(strings.ToLower(get(row, "Den Type")))
		num, _ := strconv.Atoi(get(row, "Den Number"))
		k := key{get(row, "First Name"), get(row, "Last Name"), den, num}

		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, Recipient{
				First:     k.first,
				Last:      k.last,
				DenType:   k.den,
				DenNumber: k.num,
			})
		}
		out[i].Awards = append(out[i].Awards, Record{
			SKU:      get(row, "SKU"),
			ItemName: get(row, "Item Name"),
			ItemType: classifyItemType(get(row, "Item Type")),
		})
	}
	return out, nil
}

// LoadCSVFile is LoadCSV over a file path.
func LoadCSVFile(path string) ([]Recipient, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	rs, err := LoadCSV(fp)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return rs, nil
}

// classifyItemType maps the free-form "Item Type" column onto the three
// layout classes. Scoutbook exports use "Adventure", "Badges of Rank" and
// "Misc Awards"; anything unrecognized lands in the featured row as a misc
// award rather than being dropped.
func classifyItemType(s string) ItemType {
	switch {
	case strings.EqualFold(s, "Adventure"):
		return Adventure
	case strings.Contains(strings.ToLower(s), "rank"):
		return BadgeOfRank
	default:
		return MiscAward
	}
}

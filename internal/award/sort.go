package award

import "sort"

// Less is the deck ordering: rank progression, then last name, then first
// name. Name comparison is case-sensitive byte order so results are stable
// across locales. Webelos/AOL share emblem art but keep distinct rank
// slots; the literal den type breaks any remaining tie.
func Less(a, b Recipient) bool {
	if ai, bi := a.DenType.RankIndex(), b.DenType.RankIndex(); ai != bi {
		return ai < bi
	}
	if a.DenType != b.DenType {
		return a.DenType < b.DenType
	}
	if a.Last != b.Last {
		return a.Last < b.Last
	}
	return a.First < b.First
}

// Sort orders recipients in place by the deck ordering.
func Sort(recipients []Recipient) {
	sort.SliceStable(recipients, func(i, j int) bool {
		return Less(recipients[i], recipients[j])
	})
}

package planner

import "sort"

// sortCandidates orders due candidates most-overdue first, with
// section and sequence index as deterministic tiebreakers.
func sortCandidates(cands []Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].DueDay != cands[j].DueDay {
			return cands[i].DueDay < cands[j].DueDay
		}
		if cands[i].Topic.SectionID != cands[j].Topic.SectionID {
			return cands[i].Topic.SectionID < cands[j].Topic.SectionID
		}
		return cands[i].Topic.SequenceIndex < cands[j].Topic.SequenceIndex
	})
}

// interleave reorders a day's entries so entries from the same section
// are non-adjacent (the A-B-A pattern) whenever some valid arrangement
// exists. It greedily takes from the section with the most entries
// left, never repeating the previous section while an alternative
// remains. When every remaining entry shares the last placed section,
// adjacency is unavoidable and the rest is appended in order.
func interleave(entries []Entry) []Entry {
	if len(entries) < 3 {
		return entries
	}

	type bucket struct {
		section string
		order   int // first appearance, keeps the result deterministic
		items   []Entry
	}
	index := make(map[string]*bucket)
	var buckets []*bucket
	for _, e := range entries {
		b, ok := index[e.Topic.SectionID]
		if !ok {
			b = &bucket{section: e.Topic.SectionID, order: len(buckets)}
			index[e.Topic.SectionID] = b
			buckets = append(buckets, b)
		}
		b.items = append(b.items, e)
	}
	if len(buckets) == 1 {
		return entries
	}

	out := make([]Entry, 0, len(entries))
	last := ""
	for len(out) < len(entries) {
		var best *bucket
		for _, b := range buckets {
			if len(b.items) == 0 || b.section == last {
				continue
			}
			if best == nil ||
				len(b.items) > len(best.items) ||
				(len(b.items) == len(best.items) && b.order < best.order) {
				best = b
			}
		}
		if best == nil {
			// Only the last-placed section remains.
			rest := index[last]
			out = append(out, rest.items...)
			rest.items = nil
			continue
		}
		out = append(out, best.items[0])
		best.items = best.items[1:]
		last = best.section
	}
	return out
}

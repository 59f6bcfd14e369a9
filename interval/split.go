package interval

// split divides the entries of an overflowing node into two groups using
// Guttman's quadratic split. The first group stays in n and the second one is
// returned as a new node of the same kind.
func (t *Tree) split(n *node) *node {
	seedA, seedB := pickSeeds(n.entries)

	groupA := make([]entry, 0, t.fanout.Max+1)
	groupB := make([]entry, 0, t.fanout.Max+1)
	groupA = append(groupA, n.entries[seedA])
	groupB = append(groupB, n.entries[seedB])

	envelopeA := n.entries[seedA].envelope
	envelopeB := n.entries[seedB].envelope

	remaining := make([]entry, 0, len(n.entries)-2)
	for i, e := range n.entries {
		if i != seedA && i != seedB {
			remaining = append(remaining, e)
		}
	}

	for len(remaining) > 0 {
		// If one group needs every remaining entry to reach the minimum, it
		// gets them all.
		if len(groupA)+len(remaining) <= t.fanout.Min {
			groupA = append(groupA, remaining...)
			break
		}

		if len(groupB)+len(remaining) <= t.fanout.Min {
			groupB = append(groupB, remaining...)
			break
		}

		next := pickNext(remaining, envelopeA, envelopeB)
		e := remaining[next]

		last := len(remaining) - 1
		remaining[next] = remaining[last]
		remaining = remaining[:last]

		if prefersA(e.envelope, envelopeA, envelopeB, len(groupA), len(groupB)) {
			groupA = append(groupA, e)
			envelopeA = envelopeA.Union(e.envelope)
		} else {
			groupB = append(groupB, e)
			envelopeB = envelopeB.Union(e.envelope)
		}
	}

	n.entries = groupA

	return &node{leaf: n.leaf, entries: groupB}
}

// pickSeeds returns the pair of entries that would waste the most length if
// they were put in the same group.
func pickSeeds(entries []entry) (int, int) {
	seedA, seedB := 0, 1
	worst := waste(entries[0].envelope, entries[1].envelope)

	for i := range entries {
		for j := i + 1; j < len(entries); j++ {
			if w := waste(entries[i].envelope, entries[j].envelope); w > worst {
				seedA, seedB, worst = i, j, w
			}
		}
	}

	return seedA, seedB
}

func waste(a, b Envelope) int {
	return a.Union(b).Length() - a.Length() - b.Length()
}

// pickNext returns the entry with the strongest preference for one of the two
// groups.
func pickNext(remaining []entry, envelopeA, envelopeB Envelope) int {
	best, bestDiff := 0, -1

	for i, e := range remaining {
		diff := envelopeA.enlargement(e.envelope) - envelopeB.enlargement(e.envelope)
		if diff < 0 {
			diff = -diff
		}

		if diff > bestDiff {
			best, bestDiff = i, diff
		}
	}

	return best
}

// prefersA decides which group takes e: least enlargement, then smaller
// envelope, then fewer entries.
func prefersA(e, envelopeA, envelopeB Envelope, countA, countB int) bool {
	growthA := envelopeA.enlargement(e)
	growthB := envelopeB.enlargement(e)

	if growthA != growthB {
		return growthA < growthB
	}

	if lengthA, lengthB := envelopeA.Length(), envelopeB.Length(); lengthA != lengthB {
		return lengthA < lengthB
	}

	return countA <= countB
}

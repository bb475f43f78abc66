package tilemap

// Source is the random source used for weighted tile selection.
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// WeightedIndex is one entry of a weighted tile list. When Indices holds more
// than one index, a selected entry picks among them uniformly.
type WeightedIndex struct {
	Indices []int
	Weight  int
}

// PickWeighted selects a tile index from weights using the given source.
// Entries with a higher weight are more likely to be selected.
func PickWeighted(weights []WeightedIndex, rng Source) int {
	total := 0
	for _, w := range weights {
		total += w.Weight
	}
	if total <= 0 {
		return Empty
	}

	roll := rng.Intn(total)

	cumulative := 0
	for _, w := range weights {
		cumulative += w.Weight
		if roll < cumulative {
			return pickIndex(w.Indices, rng)
		}
	}

	// Unreachable with positive weights
	return pickIndex(weights[0].Indices, rng)
}

func pickIndex(indices []int, rng Source) int {
	switch len(indices) {
	case 0:
		return Empty
	case 1:
		return indices[0]
	default:
		return indices[rng.Intn(len(indices))]
	}
}

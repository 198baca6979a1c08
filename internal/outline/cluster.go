package outline

import "sort"

// clusterGap is the maximum distance (points) between a cluster's first,
// largest size and any size added to it. Heading tiers in real documents
// sit more than a point apart; sub-point jitter is the same tier.
const clusterGap = 1.0

// maxLevels caps how many clusters map to levels. Deeper tiers are
// silently excluded from the outline rather than erroring.
const maxLevels = 3

// clusterSizes greedily partitions the distinct font sizes into proximity
// clusters, largest first: a size joins the current cluster while it is
// within clusterGap of the cluster's first size, otherwise it starts a
// new one. Clusters come back ordered largest-to-smallest.
func clusterSizes(sizes []float64) [][]float64 {
	distinct := make(map[float64]struct{}, len(sizes))
	for _, s := range sizes {
		distinct[s] = struct{}{}
	}
	if len(distinct) == 0 {
		return nil
	}

	sorted := make([]float64, 0, len(distinct))
	for s := range distinct {
		sorted = append(sorted, s)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	var clusters [][]float64
	current := []float64{sorted[0]}
	for _, s := range sorted[1:] {
		if current[0]-s <= clusterGap {
			current = append(current, s)
			continue
		}
		clusters = append(clusters, current)
		current = []float64{s}
	}
	return append(clusters, current)
}

// buildLevelMap assigns "H1".."H3" to the sizes of the top clusters and
// returns the candidates sorted into document order (page ascending, then
// vertical position). Sizes outside the top clusters have no entry.
func buildLevelMap(candidates []Candidate) (map[float64]string, []Candidate) {
	if len(candidates) == 0 {
		return map[float64]string{}, nil
	}

	sizes := make([]float64, len(candidates))
	for i, c := range candidates {
		sizes[i] = c.Size
	}

	levelMap := make(map[float64]string)
	for i, cluster := range clusterSizes(sizes) {
		if i >= maxLevels {
			break
		}
		level := [maxLevels]string{"H1", "H2", "H3"}[i]
		for _, s := range cluster {
			levelMap[s] = level
		}
	}

	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Page != sorted[j].Page {
			return sorted[i].Page < sorted[j].Page
		}
		return sorted[i].BBox.Y0 < sorted[j].BBox.Y0
	})
	return levelMap, sorted
}

package life

// haloCells takes three cell-valid clusters (left, center, right) — bits
// 1..ClusterCells hold real cell data, but the halo bits may be
// halo-dirty — and returns center with its two halo bits replaced by the
// adjacent cell from left and right, per spec.md §4.2. The C interior
// bits of center are unchanged.
func haloCells(left, center, right Cluster) Cluster {
	loHalo := ((left >> ClusterCells) & 1) << loHaloBit
	hiHalo := ((right >> 1) & 1) << hiHaloBit
	return (center & dataBitsMask) | loHalo | hiHalo
}

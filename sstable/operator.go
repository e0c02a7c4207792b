package sstable

// uint32 vector summation, widened so that large corpora do not overflow
func Uint32VectorSum(data []uint32) uint64 {
	sum := uint64(0)
	for _, d := range data {
		sum += uint64(d)
	}
	return sum
}

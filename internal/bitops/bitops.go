// Package bitops provides the bit-index arithmetic that maps qubit positions
// to amplitude-array offsets. All functions are pure and total over their
// documented domains; bit positions outside [0, 64) are a caller error and
// are validated by the appliers, not here.
package bitops

// Pow2 returns 1 << p.
func Pow2(p int) uint64 {
	return 1 << p
}

// GetBit returns bit i of num as 0 or 1.
func GetBit(num uint64, i int) uint64 {
	return (num >> i) & 1
}

// FlipBit returns num with bit i inverted.
func FlipBit(num uint64, i int) uint64 {
	return num ^ (1 << i)
}

// InsertZeroBit widens num by one bit, shifting the bits at positions >= i
// up by one and leaving a 0 at position i.
// Example: InsertZeroBit(0b101, 1) = 0b1001.
func InsertZeroBit(num uint64, i int) uint64 {
	high := (num >> i) << i
	low := num - high

	return (high << 1) | low
}

// Mask returns the bitwise OR of 1<<b for every b in bits.
func Mask(bits []int) uint64 {
	var mask uint64
	for _, b := range bits {
		mask |= 1 << b
	}

	return mask
}

// AllSet returns 1 when every bit set in mask is also set in num, else 0.
// The numeric form serves both as a branch condition and as a blend weight.
func AllSet(num, mask uint64) uint64 {
	if num&mask == mask {
		return 1
	}

	return 0
}

// Truncate returns the lowest n bits of num.
func Truncate(num uint64, n int) uint64 {
	return num & (Pow2(n) - 1)
}

// FromAffix joins a prefix (bits above position i) and a suffix (bits below
// position i) into a full index whose bit i is 0.
// Example: FromAffix(0b11, 0b01, 2) = 0b11001.
func FromAffix(prefix, suffix uint64, i int) uint64 {
	return (prefix << (i + 1)) | suffix
}

// FromAffixes joins three bit groups around the two positions t1 < t2 into a
// full index whose bits t1 and t2 are both 0: prefix occupies the bits above
// t2, infix the bits between t1 and t2, suffix the bits below t1.
func FromAffixes(prefix, infix, suffix uint64, t2, t1 int) uint64 {
	return (prefix << (t2 + 1)) | (infix << (t1 + 1)) | suffix
}

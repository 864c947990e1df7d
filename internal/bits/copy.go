package bits

// Copy transfers count bits from src, starting at bit srcShift, to dst,
// starting at bit dstShift. Bits are numbered from the least significant bit
// of the first byte. Bits of dst outside of the destination span are left
// unchanged.
//
// When both spans are byte aligned the bytes are copied directly, otherwise
// the transfer falls back to moving at most 8 bits at a time.
//
// The function returns the number of bits that were copied, which is less
// than count if either buffer is too short.
func Copy(dst []byte, dstShift uint, src []byte, srcShift uint, count uint) int {
	count = clamp(dst, dstShift, src, srcShift, count)
	if count == 0 {
		return 0
	}

	if Aligned(dstShift, count) && Aligned(srcShift, count) {
		i, j, n := dstShift/8, srcShift/8, count/8
		copy(dst[i:i+n], src[j:j+n])
		return int(count)
	}

	for n := count; n > 0; {
		c := n
		if c > 8 {
			c = 8
		}
		store(dst, dstShift, c, load(src, srcShift, c))
		dstShift += c
		srcShift += c
		n -= c
	}

	return int(count)
}

// CopyBits is like Copy but always transfers one bit at a time. It is the
// reference against which the faster paths of Copy are verified.
func CopyBits(dst []byte, dstShift uint, src []byte, srcShift uint, count uint) int {
	count = clamp(dst, dstShift, src, srcShift, count)

	for i := uint(0); i < count; i++ {
		s, d := srcShift+i, dstShift+i
		bit := (src[s/8] >> (s % 8)) & 1
		dst[d/8] = dst[d/8]&^(1<<(d%8)) | bit<<(d%8)
	}

	return int(count)
}

func clamp(dst []byte, dstShift uint, src []byte, srcShift uint, count uint) uint {
	if maxBitsInDst := BitCount(len(dst)); dstShift >= maxBitsInDst {
		return 0
	} else if count > maxBitsInDst-dstShift {
		count = maxBitsInDst - dstShift
	}
	if maxBitsInSrc := BitCount(len(src)); srcShift >= maxBitsInSrc {
		return 0
	} else if count > maxBitsInSrc-srcShift {
		count = maxBitsInSrc - srcShift
	}
	return count
}

func load(src []byte, shift, count uint) byte {
	i, j := shift/8, shift%8
	value := src[i] >> j

	if (j + count) > 8 {
		value |= src[i+1] << (8 - j)
	}

	return value & byte((1<<count)-1)
}

func store(dst []byte, shift, count uint, value byte) {
	i, j := shift/8, shift%8
	mask := byte((1 << count) - 1)
	value &= mask
	dst[i] = dst[i]&^(mask<<j) | value<<j

	if (j + count) > 8 {
		dst[i+1] = dst[i+1]&^(mask>>(8-j)) | value>>(8-j)
	}
}

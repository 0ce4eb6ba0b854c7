package codeunit

import "sync"

const (
	// Pool limits to prevent memory bloat
	poolMaxCap  = 4096 // max pooled code units
	poolInitCap = 64
)

var unitsPool = sync.Pool{
	New: func() any {
		buf := make([]uint16, 0, poolInitCap)
		return &buf
	},
}

func getUnits(n int) []uint16 {
	bp := unitsPool.Get().(*[]uint16)
	if cap(*bp) < n {
		unitsPool.Put(bp)
		return make([]uint16, n)
	}
	return (*bp)[:n]
}

func putUnits(buf []uint16) {
	if buf == nil || cap(buf) > poolMaxCap {
		return // reject oversized
	}
	buf = buf[:0]
	unitsPool.Put(&buf)
}

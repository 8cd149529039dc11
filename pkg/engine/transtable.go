package engine

import (
	"github.com/avie-chess/avie/pkg/common"
)

const (
	boundLower = 1 << iota
	boundUpper
)

const boundExact = boundLower | boundUpper

func roundPowerOfTwo(size int) int {
	var x = 1
	for (x << 1) <= size {
		x <<= 1
	}
	return x
}

//16 bytes
type transEntry struct {
	key32 uint32
	move  common.Move
	date  uint16
	score int16
	depth int8
	bound uint8
}

// TransTable caches search results by position key.
// It is not safe for concurrent use; callers serialize access.
type TransTable struct {
	megabytes int
	entries   []transEntry
	date      uint16
	mask      uint32
}

func NewTransTable(megabytes int) *TransTable {
	if megabytes < 1 {
		megabytes = 1
	}
	var size = roundPowerOfTwo(1024 * 1024 * megabytes / 16)
	return &TransTable{
		megabytes: megabytes,
		entries:   make([]transEntry, size),
		mask:      uint32(size - 1),
	}
}

func (tt *TransTable) Size() int {
	return tt.megabytes
}

func (tt *TransTable) IncDate() {
	tt.date = (tt.date + 1) & 0x7ff
}

func (tt *TransTable) Clear() {
	tt.date = 0
	for i := range tt.entries {
		tt.entries[i] = transEntry{}
	}
}

// Hashfull returns the permille of sampled entries written in the current search.
func (tt *TransTable) Hashfull() int {
	var n = min(1000, len(tt.entries))
	var used = 0
	for i := 0; i < n; i++ {
		var entry = &tt.entries[i]
		if entry.bound != 0 && entry.date == tt.date {
			used++
		}
	}
	return used * 1000 / n
}

func (tt *TransTable) Read(key uint64) (depth, score, bound int, move common.Move, ok bool) {
	var entry = &tt.entries[uint32(key)&tt.mask]
	if entry.bound == 0 || entry.key32 != uint32(key>>32) {
		return
	}
	entry.date = tt.date
	return int(entry.depth), int(entry.score), int(entry.bound), entry.move, true
}

func (tt *TransTable) Update(key uint64, depth, score, bound int, move common.Move) {
	var entry = &tt.entries[uint32(key)&tt.mask]
	var replace bool
	if entry.key32 == uint32(key>>32) {
		replace = depth >= int(entry.depth)-3 || bound == boundExact
	} else {
		replace = entry.date != tt.date ||
			depth >= int(entry.depth)
	}
	if replace {
		entry.key32 = uint32(key >> 32)
		entry.score = int16(score)
		entry.depth = int8(depth)
		entry.bound = uint8(bound)
		entry.move = move
		entry.date = tt.date
	}
}

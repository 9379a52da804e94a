package engine

import "encoding/binary"

const (
	fnv1OffsetBasis uint64 = 14695981039346656037
	fnv1Prime       uint64 = 1099511628211
)

// fnv1Hash64 computes the 64-bit FNV-1 hash (xor-then-multiply, not the
// more common FNV-1a) of data.
func fnv1Hash64(data []byte) uint64 {
	h := fnv1OffsetBasis
	for _, b := range data {
		h ^= uint64(b)
		h *= fnv1Prime
	}
	return h
}

// boardBytes builds a canonical, alignment-independent byte image of
// board suitable for hashing. Every field that participates in
// BoardEqual is encoded.
func boardBytes(board *Board) []byte {
	buf := make([]byte, 0, len(board.Squares)*2+1+1+2)
	for _, sq := range board.Squares {
		buf = append(buf, byte(sq.Piece), byte(sq.Color))
	}
	buf = append(buf, byte(board.Move))
	var enPassant [8]byte
	binary.LittleEndian.PutUint64(enPassant[:], uint64(int64(board.EnPassant)))
	buf = append(buf, enPassant[:]...)
	for c := 0; c < ColorArraySize; c++ {
		for s := 0; s < 2; s++ {
			if board.CanCastle[c][s] {
				buf = append(buf, 1)
			} else {
				buf = append(buf, 0)
			}
		}
	}
	return buf
}

// hashBoard returns the FNV-1 fingerprint of board's byte image.
func hashBoard(board *Board) uint64 {
	return fnv1Hash64(boardBytes(board))
}

// hashEntry is one slot of a HashTable. An entry with occupied == false
// is free.
type hashEntry struct {
	occupied bool
	hash     uint64
	score    int32
	depth    int
	move     Move
}

// HashTable is an open-addressed transposition table, indexed by the
// FNV-1 hash of a board's raw bytes. Entries are linearly probed and
// insertion is additive: a board whose hash is already present is never
// overwritten by a later insert of that same hash.
type HashTable struct {
	entries []hashEntry
	count   int
	k       uint
}

// initialHashTableK sizes a fresh table at 2^21 entries, matching the
// reference table's starting capacity.
const initialHashTableK = 21

// NewHashTable allocates an empty table at the reference starting size.
func NewHashTable() *HashTable {
	return &HashTable{
		entries: make([]hashEntry, 1<<initialHashTableK),
		k:       initialHashTableK,
	}
}

func (t *HashTable) capacity() int {
	return len(t.entries)
}

// Lookup reports the cached score/depth/move for board, if present.
// Collision resolution is hash-only: two boards that happen to share an
// FNV-1 hash are treated as the same entry, relying on the birthday
// bound of a 64-bit hash rather than replaying board bytes.
func (t *HashTable) Lookup(board *Board) (score int32, depth int, move Move, ok bool) {
	hash := hashBoard(board)
	size := t.capacity()
	bucket := int(hash % uint64(size))

	for i := 0; i < size; i++ {
		slot := &t.entries[(bucket+i)%size]
		if !slot.occupied {
			return 0, 0, NullMove, false
		}
		if slot.hash == hash {
			return slot.score, slot.depth, slot.move, true
		}
	}
	return 0, 0, NullMove, false
}

// Insert records (score, depth, move) for board, growing the table
// first if the new count crosses half capacity. Insertion is additive:
// if a slot with the same hash is already occupied, the probe walks
// past it and writes into the next free slot, so repeated insertions of
// the same position accumulate distinct entries rather than replacing
// the first one. Lookup always finds the earliest-inserted match first,
// since it is nearer the home bucket.
func (t *HashTable) Insert(board *Board, score int32, depth int, move Move) {
	t.count++
	if t.count > t.capacity()/2 {
		t.grow()
	}
	t.insertHash(hashBoard(board), score, depth, move)
}

func (t *HashTable) insertHash(hash uint64, score int32, depth int, move Move) {
	size := t.capacity()
	bucket := int(hash % uint64(size))

	for i := 0; i < size; i++ {
		slot := &t.entries[(bucket+i)%size]
		if !slot.occupied {
			*slot = hashEntry{occupied: true, hash: hash, score: score, depth: depth, move: move}
			return
		}
	}
	// Table full with no empty slot; caller should have grown before
	// this could happen given the half-capacity trigger.
}

// grow doubles the table's capacity and reinserts every occupied entry
// by its stored hash alone, never replaying the original board bytes.
// count carries over unchanged; grow never recomputes it.
func (t *HashTable) grow() {
	old := t.entries
	t.k++
	t.entries = make([]hashEntry, 1<<t.k)

	for _, slot := range old {
		if slot.occupied {
			t.insertHash(slot.hash, slot.score, slot.depth, slot.move)
		}
	}
}

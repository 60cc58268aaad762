package arc

import (
	"crypto/sha256"
	"encoding/binary"

	"ori/internal/intern"
)

// contentHash deterministically serializes name and instrs and returns
// their sha256 digest. This is the integrity value internal/arccache
// (C11) keys its on-disk entries by, per §3's CachedArcIr and P11's
// "put then get returns a matching hash" property: two functions with
// identical instruction lists (even across separate compiler runs) must
// hash identically, so no wall-clock timestamp or pointer value is ever
// mixed in here.
func contentHash(name intern.Name, instrs []Instr) [32]byte {
	h := sha256.New()
	var buf [8]byte

	binary.LittleEndian.PutUint32(buf[:4], uint32(name))
	h.Write(buf[:4])

	binary.LittleEndian.PutUint64(buf[:], uint64(len(instrs)))
	h.Write(buf[:])

	for _, in := range instrs {
		h.Write([]byte{byte(in.Op)})
		binary.LittleEndian.PutUint32(buf[:4], uint32(in.Name))
		h.Write(buf[:4])
		binary.LittleEndian.PutUint64(buf[:], uint64(in.Site))
		h.Write(buf[:])
	}

	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

package consola

import (
	"crypto/sha256"
	"encoding/binary"
)

// Fingerprint is the 256-bit digest identifying a run of semantically
// identical records, per spec.md §4.3.
type Fingerprint [sha256.Size]byte

// fingerprintOf hashes, in order: type_name, tag (if present), the
// little-endian level, message (if present), and each argument's Display.
// Raw records have no args, so two raws with identical type/tag/message
// share a fingerprint with each other but never with a formatted record
// that happens to render the same text, because the formatted record's
// argument encoding always contributes extra bytes to the digest.
func fingerprintOf(r *LogRecord) Fingerprint {
	h := sha256.New()
	h.Write([]byte(r.TypeName))
	if r.HasTag {
		h.Write([]byte(r.Tag))
	}
	var lvl [2]byte
	binary.LittleEndian.PutUint16(lvl[:], uint16(r.Level))
	h.Write(lvl[:])
	if r.HasMessage {
		h.Write([]byte(r.Message))
	}
	for _, a := range r.Args {
		h.Write([]byte{byte(a.Kind())})
		h.Write([]byte(a.Display()))
	}
	var fp Fingerprint
	copy(fp[:], h.Sum(nil))
	return fp
}

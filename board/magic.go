package board

// Magic is a multiply-shift perfect hash over a masked occupancy. Sliding
// piece attack tables layered on top of this package index their Attacks
// array through it.
type Magic struct {
	Attacks *[4096]Bitmap
	Magic   Bitmap
	Mask    Bitmap
	Shift   uint8
}

// Index hashes occupancy into the attack table slot for this magic. The
// wraparound of Multiply is load-bearing here.
func (m *Magic) Index(occupancy Bitmap) uint16 {
	return uint16(Intersect(occupancy, m.Mask).Multiply(m.Magic).ShiftRight(m.Shift))
}

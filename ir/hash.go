package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the value, consistent with Equal within
// one process. It panics if v is nil.
func (v *Value) Hash() uint64 {
	if v == nil {
		panic("ir: Hash called on nil value")
	}
	var h maphash.Hash
	h.SetSeed(hashSeed)
	v.hashTo(&h)
	return h.Sum64()
}

func (v *Value) hashTo(h *maphash.Hash) {
	var b [8]byte
	h.WriteByte(byte(v.typ))
	switch {
	case v.typ.IsSigned():
		binary.LittleEndian.PutUint64(b[:], uint64(v.i))
		h.Write(b[:])
	case v.typ.IsUnsigned():
		binary.LittleEndian.PutUint64(b[:], v.u)
		h.Write(b[:])
	case v.typ.IsFloat():
		bits := math.Float64bits(v.f)
		if math.IsNaN(v.f) {
			bits = math.Float64bits(math.NaN())
		}
		binary.LittleEndian.PutUint64(b[:], bits)
		h.Write(b[:])
	case v.typ == StrType:
		binary.LittleEndian.PutUint64(b[:], uint64(v.max))
		h.Write(b[:])
		h.WriteString(v.s)
	case v.typ == BoolType:
		if v.b {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case v.typ == ObjectType:
		for i, k := range v.fields {
			binary.LittleEndian.PutUint64(b[:], uint64(len(k)))
			h.Write(b[:])
			h.WriteString(k)
			v.values[i].hashTo(h)
		}
		h.WriteByte('}')
	case v.typ == ArrayType:
		for _, e := range v.values {
			e.hashTo(h)
		}
		h.WriteByte(']')
	}
}

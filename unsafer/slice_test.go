package unsafer

import (
	"encoding/binary"
	"math"
	"testing"

	. "github.com/onsi/gomega"
)

func TestSliceToBytes(t *testing.T) {
	g := NewWithT(t)

	floats := []float32{1, -0.5, 0.25}
	b := SliceToBytes(floats)
	g.Expect(b).To(HaveLen(12))

	for i, f := range floats {
		bits := binary.NativeEndian.Uint32(b[i*4:])
		g.Expect(math.Float32frombits(bits)).To(Equal(f))
	}
}

func TestSliceToBytesSharesMemory(t *testing.T) {
	g := NewWithT(t)

	indices := []uint32{0, 1, 2}
	b := SliceToBytes(indices)
	indices[1] = 0xffffffff

	g.Expect(b[4:8]).To(Equal([]byte{0xff, 0xff, 0xff, 0xff}))
}

func TestSliceToBytesEmpty(t *testing.T) {
	g := NewWithT(t)

	g.Expect(SliceToBytes([]uint32{})).To(BeNil())
	g.Expect(SliceToBytes[float32](nil)).To(BeNil())
}

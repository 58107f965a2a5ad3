package fixture

import (
	"math/rand/v2"

	"github.com/rawbytedev/nsandbox"
)

// maxRandomLen bounds every generated array.
const maxRandomLen = 8

// Random returns a deterministic document of n nodes for seed. Floating point
// values are multiples of 1/8 so every renderer prints them exactly. Each
// node after the first either owns a holder or shares the root's, and
// reference arrays point back into the chain.
func Random(seed uint64, n int) *Document {
	if n < 1 {
		n = 1
	}
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	doc := &Document{Nodes: make([]NodeDoc, n)}
	for i := range doc.Nodes {
		nd := &doc.Nodes[i]
		nd.TypeID = 1
		nd.Byte = int8(r.IntN(256) - 128)
		nd.Short = int16(r.IntN(1<<16) - 1<<15)
		nd.Int = r.Int32() - 1<<30
		nd.Long = r.Int64() - 1<<62
		nd.Float = randomFloat32(r)
		nd.Double = randomFloat64(r)
		nd.Boolean = r.IntN(2) == 1
		nd.Enum = int32(r.IntN(4))
		nd.FloatArray = fill(r, randomFloat32)
		nd.Struct = randomStruct(r)
		if i > 0 && r.IntN(4) == 0 {
			share := 0
			nd.ShareArrays = &share
			continue
		}
		nd.Arrays = randomArrays(r, n)
	}
	return doc
}

func randomArrays(r *rand.Rand, nodes int) *ArraysDoc {
	return &ArraysDoc{
		TypeID:   2,
		Bytes:    fill(r, func(r *rand.Rand) int8 { return int8(r.IntN(256) - 128) }),
		Shorts:   fill(r, func(r *rand.Rand) int16 { return int16(r.IntN(1<<16) - 1<<15) }),
		Ints:     fill(r, func(r *rand.Rand) int32 { return r.Int32() - 1<<30 }),
		Longs:    fill(r, func(r *rand.Rand) int64 { return r.Int64() - 1<<62 }),
		Floats:   fill(r, randomFloat32),
		Doubles:  fill(r, randomFloat64),
		Booleans: fill(r, func(r *rand.Rand) bool { return r.IntN(2) == 1 }),
		Enums:    fill(r, func(r *rand.Rand) int32 { return int32(r.IntN(4)) }),
		Structs:  fill(r, randomStruct),
		References: fill(r, func(r *rand.Rand) int {
			return r.IntN(nodes+1) - 1
		}),
	}
}

func fill[T any](r *rand.Rand, gen func(*rand.Rand) T) []T {
	n := r.IntN(maxRandomLen + 1)
	if n == 0 {
		return nil
	}
	out := make([]T, n)
	for i := range out {
		out[i] = gen(r)
	}
	return out
}

func randomFloat32(r *rand.Rand) float32 { return float32(r.IntN(1<<16)-1<<15) / 8 }

func randomFloat64(r *rand.Rand) float64 { return float64(r.Int64N(1<<40)-1<<39) / 8 }

func randomStruct(r *rand.Rand) StructDoc {
	return StructDoc{
		Int:        r.Int32() - 1<<30,
		Float:      randomFloat32(r),
		NativeEnum: int32(nsandbox.NativeEnumValues[r.IntN(len(nsandbox.NativeEnumValues))]),
	}
}

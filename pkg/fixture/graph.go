package fixture

import (
	"errors"
	"fmt"
	"slices"
	"unsafe"

	"github.com/rawbytedev/nsandbox"
	"github.com/rawbytedev/nsandbox/zc"
)

var ErrInvalidFixture = errors.New("invalid fixture")

// Holder owns the arrays an nsandbox.ArrayHolder points into.
type Holder struct {
	Native   nsandbox.ArrayHolder
	Bytes    []int8
	Shorts   []int16
	Ints     []int32
	Longs    []int64
	Floats   []float32
	Doubles  []float64
	Booleans []bool
	Enums    []nsandbox.Enum
	Structs  []nsandbox.Nested
	Refs     []unsafe.Pointer
}

// bind points the native holder at the owned slices. Must run again after
// any slice is replaced.
func (h *Holder) bind() {
	h.Native.AByteArray = zc.First(h.Bytes)
	h.Native.AShortArray = zc.First(h.Shorts)
	h.Native.AnIntArray = zc.First(h.Ints)
	h.Native.ALongArray = zc.First(h.Longs)
	h.Native.AFloatArray = zc.First(h.Floats)
	h.Native.ADoubleArray = zc.First(h.Doubles)
	h.Native.ABooleanArray = zc.First(h.Booleans)
	h.Native.AnEnumArray = zc.First(h.Enums)
	h.Native.AStructArray = zc.First(h.Structs)
	h.Native.AReferenceArray = zc.First(h.Refs)
}

// Len returns the element count of the array sel picks, 0 for an unknown
// selector.
func (h *Holder) Len(sel nsandbox.ArraySelector) int {
	switch sel {
	case nsandbox.ByteArray:
		return len(h.Bytes)
	case nsandbox.ShortArray:
		return len(h.Shorts)
	case nsandbox.IntArray:
		return len(h.Ints)
	case nsandbox.LongArray:
		return len(h.Longs)
	case nsandbox.FloatArray:
		return len(h.Floats)
	case nsandbox.DoubleArray:
		return len(h.Doubles)
	case nsandbox.BoolArray:
		return len(h.Booleans)
	case nsandbox.EnumArray:
		return len(h.Enums)
	case nsandbox.ReferenceArray:
		return len(h.Refs)
	}
	return 0
}

// Node owns one record and the memory it references.
type Node struct {
	Record nsandbox.Record
	Floats []float32
	Holder *Holder
}

// Graph is a chain of nodes; Nodes[0] is the root.
type Graph struct {
	Nodes []*Node
}

func (g *Graph) Root() *nsandbox.Record { return &g.Nodes[0].Record }

// Address returns the value reference arrays store for node i.
func (g *Graph) Address(i int) uint64 {
	return uint64(uintptr(unsafe.Pointer(&g.Nodes[i].Record)))
}

// Build allocates the graph doc describes.
func Build(doc *Document) (*Graph, error) {
	if doc == nil || len(doc.Nodes) == 0 {
		return nil, fmt.Errorf("%w: no nodes", ErrInvalidFixture)
	}
	if err := validate(doc); err != nil {
		return nil, err
	}

	g := &Graph{Nodes: make([]*Node, len(doc.Nodes))}
	for i := range doc.Nodes {
		g.Nodes[i] = newNode(&doc.Nodes[i])
	}
	for i, nd := range doc.Nodes {
		n := g.Nodes[i]
		if i+1 < len(g.Nodes) {
			n.Record.Next = &g.Nodes[i+1].Record
		}
		if nd.ShareArrays != nil {
			n.Holder = g.Nodes[*nd.ShareArrays].Holder
		}
	}
	// references resolve once every node has a stable address
	for i, nd := range doc.Nodes {
		if nd.ShareArrays != nil || nd.Arrays == nil {
			continue
		}
		h := g.Nodes[i].Holder
		h.Refs = make([]unsafe.Pointer, len(nd.Arrays.References))
		for j, ref := range nd.Arrays.References {
			if ref >= 0 {
				h.Refs[j] = unsafe.Pointer(&g.Nodes[ref].Record)
			}
		}
		h.bind()
	}
	for _, n := range g.Nodes {
		n.Record.Arrays = &n.Holder.Native
	}
	return g, nil
}

func newNode(nd *NodeDoc) *Node {
	n := &Node{Floats: slices.Clone(nd.FloatArray)}
	n.Record = nsandbox.Record{
		BaseObject:  nsandbox.BaseObject{TypeID: nd.TypeID},
		AByte:       nd.Byte,
		AShort:      nd.Short,
		AnInt:       nd.Int,
		ALong:       nd.Long,
		AFloat:      nd.Float,
		ADouble:     nd.Double,
		ABoolean:    nd.Boolean,
		AnEnum:      nsandbox.Enum(nd.Enum),
		AFloatArray: zc.First(n.Floats),
		AStruct:     nestedOf(nd.Struct),
	}
	n.Holder = &Holder{}
	if a := nd.Arrays; a != nil {
		n.Holder.Native.TypeID = a.TypeID
		n.Holder.Bytes = slices.Clone(a.Bytes)
		n.Holder.Shorts = slices.Clone(a.Shorts)
		n.Holder.Ints = slices.Clone(a.Ints)
		n.Holder.Longs = slices.Clone(a.Longs)
		n.Holder.Floats = slices.Clone(a.Floats)
		n.Holder.Doubles = slices.Clone(a.Doubles)
		n.Holder.Booleans = slices.Clone(a.Booleans)
		n.Holder.Enums = make([]nsandbox.Enum, len(a.Enums))
		for i, e := range a.Enums {
			n.Holder.Enums[i] = nsandbox.Enum(e)
		}
		n.Holder.Structs = make([]nsandbox.Nested, len(a.Structs))
		for i, s := range a.Structs {
			n.Holder.Structs[i] = nestedOf(s)
		}
	}
	n.Holder.bind()
	return n
}

func nestedOf(s StructDoc) nsandbox.Nested {
	return nsandbox.Nested{AnInt: s.Int, AFloat: s.Float, ANativeEnum: nsandbox.NativeEnum(s.NativeEnum)}
}

func validate(doc *Document) error {
	count := len(doc.Nodes)
	for i, nd := range doc.Nodes {
		if !nsandbox.Enum(nd.Enum).Valid() {
			return fmt.Errorf("%w: node %d: enum %d out of range", ErrInvalidFixture, i, nd.Enum)
		}
		if !nsandbox.NativeEnum(nd.Struct.NativeEnum).Valid() {
			return fmt.Errorf("%w: node %d: native enum %d undeclared", ErrInvalidFixture, i, nd.Struct.NativeEnum)
		}
		if s := nd.ShareArrays; s != nil {
			if *s < 0 || *s >= count {
				return fmt.Errorf("%w: node %d: shareArrays %d out of range", ErrInvalidFixture, i, *s)
			}
			if doc.Nodes[*s].ShareArrays != nil {
				return fmt.Errorf("%w: node %d: shareArrays %d points at a shared holder", ErrInvalidFixture, i, *s)
			}
		}
		a := nd.Arrays
		if a == nil {
			continue
		}
		for j, e := range a.Enums {
			if !nsandbox.Enum(e).Valid() {
				return fmt.Errorf("%w: node %d: enums[%d] %d out of range", ErrInvalidFixture, i, j, e)
			}
		}
		for j, s := range a.Structs {
			if !nsandbox.NativeEnum(s.NativeEnum).Valid() {
				return fmt.Errorf("%w: node %d: structs[%d] native enum %d undeclared", ErrInvalidFixture, i, j, s.NativeEnum)
			}
		}
		for j, ref := range a.References {
			if ref < -1 || ref >= count {
				return fmt.Errorf("%w: node %d: references[%d] %d out of range", ErrInvalidFixture, i, j, ref)
			}
		}
	}
	return nil
}

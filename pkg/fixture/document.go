// Package fixture builds caller-owned record graphs for the formatter: the
// arrays, nested records and links a native caller would normally allocate.
// Graphs come from declarative documents (YAML, TOML, JSON, MessagePack) or
// from a seeded random generator.
package fixture

// Document is the declarative form of a record chain. Nodes[0] is the root;
// every node links to the one after it.
type Document struct {
	Nodes []NodeDoc `yaml:"nodes" toml:"nodes" json:"nodes" msgpack:"nodes"`
}

type NodeDoc struct {
	TypeID      uint64     `yaml:"typeId" toml:"typeId" json:"typeId" msgpack:"typeId"`
	Byte        int8       `yaml:"byte" toml:"byte" json:"byte" msgpack:"byte"`
	Short       int16      `yaml:"short" toml:"short" json:"short" msgpack:"short"`
	Int         int32      `yaml:"int" toml:"int" json:"int" msgpack:"int"`
	Long        int64      `yaml:"long" toml:"long" json:"long" msgpack:"long"`
	Float       float32    `yaml:"float" toml:"float" json:"float" msgpack:"float"`
	Double      float64    `yaml:"double" toml:"double" json:"double" msgpack:"double"`
	Boolean     bool       `yaml:"boolean" toml:"boolean" json:"boolean" msgpack:"boolean"`
	Enum        int32      `yaml:"enum" toml:"enum" json:"enum" msgpack:"enum"`
	FloatArray  []float32  `yaml:"floatArray,omitempty" toml:"floatArray,omitempty" json:"floatArray,omitempty" msgpack:"floatArray,omitempty"`
	Struct      StructDoc  `yaml:"struct" toml:"struct" json:"struct" msgpack:"struct"`
	// Arrays is the holder owned by this node. ShareArrays reuses the holder
	// of another node instead and wins over Arrays.
	Arrays      *ArraysDoc `yaml:"arrays,omitempty" toml:"arrays,omitempty" json:"arrays,omitempty" msgpack:"arrays,omitempty"`
	ShareArrays *int       `yaml:"shareArrays,omitempty" toml:"shareArrays,omitempty" json:"shareArrays,omitempty" msgpack:"shareArrays,omitempty"`
}

type StructDoc struct {
	Int        int32   `yaml:"int" toml:"int" json:"int" msgpack:"int"`
	Float      float32 `yaml:"float" toml:"float" json:"float" msgpack:"float"`
	NativeEnum int32   `yaml:"nativeEnum" toml:"nativeEnum" json:"nativeEnum" msgpack:"nativeEnum"`
}

type ArraysDoc struct {
	TypeID     uint64      `yaml:"typeId" toml:"typeId" json:"typeId" msgpack:"typeId"`
	Bytes      []int8      `yaml:"bytes,omitempty" toml:"bytes,omitempty" json:"bytes,omitempty" msgpack:"bytes,omitempty"`
	Shorts     []int16     `yaml:"shorts,omitempty" toml:"shorts,omitempty" json:"shorts,omitempty" msgpack:"shorts,omitempty"`
	Ints       []int32     `yaml:"ints,omitempty" toml:"ints,omitempty" json:"ints,omitempty" msgpack:"ints,omitempty"`
	Longs      []int64     `yaml:"longs,omitempty" toml:"longs,omitempty" json:"longs,omitempty" msgpack:"longs,omitempty"`
	Floats     []float32   `yaml:"floats,omitempty" toml:"floats,omitempty" json:"floats,omitempty" msgpack:"floats,omitempty"`
	Doubles    []float64   `yaml:"doubles,omitempty" toml:"doubles,omitempty" json:"doubles,omitempty" msgpack:"doubles,omitempty"`
	Booleans   []bool      `yaml:"booleans,omitempty" toml:"booleans,omitempty" json:"booleans,omitempty" msgpack:"booleans,omitempty"`
	Enums      []int32     `yaml:"enums,omitempty" toml:"enums,omitempty" json:"enums,omitempty" msgpack:"enums,omitempty"`
	Structs    []StructDoc `yaml:"structs,omitempty" toml:"structs,omitempty" json:"structs,omitempty" msgpack:"structs,omitempty"`
	// References are node indexes; -1 stores a nil reference.
	References []int       `yaml:"references,omitempty" toml:"references,omitempty" json:"references,omitempty" msgpack:"references,omitempty"`
}

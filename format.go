package nsandbox

import (
	"strconv"

	"github.com/rawbytedev/nsandbox/zc"
)

// ArraySelector picks one array of an ArrayHolder.
type ArraySelector int

const (
	ByteArray ArraySelector = iota
	ShortArray
	IntArray
	LongArray
	FloatArray
	DoubleArray
	BoolArray
	EnumArray
	ReferenceArray
)

// Selectors lists every valid selector in wire order.
var Selectors = [...]ArraySelector{
	ByteArray, ShortArray, IntArray, LongArray, FloatArray,
	DoubleArray, BoolArray, EnumArray, ReferenceArray,
}

var selectorNames = [...]string{
	"byte", "short", "int", "long", "float", "double", "bool", "enum", "reference",
}

func (s ArraySelector) Valid() bool { return s >= ByteArray && s <= ReferenceArray }

func (s ArraySelector) String() string {
	if !s.Valid() {
		return "selector(" + strconv.Itoa(int(s)) + ")"
	}
	return selectorNames[s]
}

// scratch size covering the longest record rendering
const recordScratch = 320

// FormatRecord writes the comma separated rendering of rec into dst with
// snprintf semantics: the output is cut to len(dst)-1 bytes and NUL
// terminated. Nothing is written when dst is empty. Truncation is silent.
func FormatRecord(rec *Record, dst []byte) {
	var scratch [recordScratch]byte
	putBounded(dst, AppendRecord(scratch[:0], rec))
}

// AppendRecord appends the full, unbounded rendering of rec to b.
func AppendRecord(b []byte, rec *Record) []byte {
	b = strconv.AppendUint(b, rec.TypeID, 10)
	b = append(b, ',')
	b = strconv.AppendInt(b, int64(rec.AByte), 10)
	b = append(b, ',')
	b = strconv.AppendInt(b, int64(rec.AShort), 10)
	b = append(b, ',')
	b = strconv.AppendInt(b, int64(rec.AnInt), 10)
	b = append(b, ',')
	b = strconv.AppendInt(b, rec.ALong, 10)
	b = append(b, ',')
	b = appendCFloat(b, float64(rec.AFloat))
	b = append(b, ',')
	b = appendCFloat(b, rec.ADouble)
	b = append(b, ',')
	b = appendBool(b, rec.ABoolean)
	b = append(b, ',')
	b = strconv.AppendInt(b, int64(rec.AnEnum), 10)
	b = append(b, ",{"...)
	b = strconv.AppendInt(b, int64(rec.AStruct.AnInt), 10)
	b = append(b, ',')
	b = appendCFloat(b, float64(rec.AStruct.AFloat))
	b = append(b, ',')
	b = strconv.AppendInt(b, int64(rec.AStruct.ANativeEnum), 10)
	b = append(b, "},{"...)
	b = strconv.AppendUint(b, rec.Arrays.TypeID, 10)
	return append(b, '}')
}

// RecordString renders rec without a length bound.
func RecordString(rec *Record) string {
	var scratch [recordScratch]byte
	return string(AppendRecord(scratch[:0], rec))
}

// elementAppender renders element i of the selected array.
type elementAppender func(b []byte, i int) []byte

func appenderFor(h *ArrayHolder, sel ArraySelector, count int) elementAppender {
	switch sel {
	case ByteArray:
		a := zc.View(h.AByteArray, count)
		return func(b []byte, i int) []byte { return strconv.AppendInt(b, int64(a[i]), 10) }
	case ShortArray:
		a := zc.View(h.AShortArray, count)
		return func(b []byte, i int) []byte { return strconv.AppendInt(b, int64(a[i]), 10) }
	case IntArray:
		a := zc.View(h.AnIntArray, count)
		return func(b []byte, i int) []byte { return strconv.AppendInt(b, int64(a[i]), 10) }
	case LongArray:
		a := zc.View(h.ALongArray, count)
		return func(b []byte, i int) []byte { return strconv.AppendInt(b, a[i], 10) }
	case FloatArray:
		a := zc.View(h.AFloatArray, count)
		return func(b []byte, i int) []byte { return appendCFloat(b, float64(a[i])) }
	case DoubleArray:
		a := zc.View(h.ADoubleArray, count)
		return func(b []byte, i int) []byte { return appendCFloat(b, a[i]) }
	case BoolArray:
		a := zc.View(h.ABooleanArray, count)
		return func(b []byte, i int) []byte { return appendBool(b, a[i]) }
	case EnumArray:
		a := zc.View(h.AnEnumArray, count)
		return func(b []byte, i int) []byte { return strconv.AppendInt(b, int64(a[i]), 10) }
	case ReferenceArray:
		a := zc.View(h.AReferenceArray, count)
		return func(b []byte, i int) []byte { return strconv.AppendUint(b, uint64(uintptr(a[i])), 10) }
	}
	return nil
}

// FormatArrayField writes count comma separated elements of the array sel
// picks from rec.Arrays. Each element goes into the room left in dst with
// snprintf semantics, and the loop stops once the accumulated length reaches
// len(dst). An unknown selector or a non-positive count leaves dst untouched.
func FormatArrayField(rec *Record, sel ArraySelector, count int, dst []byte) {
	if count <= 0 || len(dst) == 0 {
		return
	}
	elem := appenderFor(rec.Arrays, sel, count)
	if elem == nil {
		return
	}
	var scratch [40]byte
	written := 0
	for i := 0; i < count && written < len(dst); i++ {
		b := elem(scratch[:0], i)
		if i < count-1 {
			b = append(b, ',')
		}
		written += putBounded(dst[written:], b)
	}
}

// AppendArrayField appends the full rendering of the selected array to b.
func AppendArrayField(b []byte, rec *Record, sel ArraySelector, count int) []byte {
	if count <= 0 {
		return b
	}
	elem := appenderFor(rec.Arrays, sel, count)
	if elem == nil {
		return b
	}
	for i := 0; i < count; i++ {
		if i > 0 {
			b = append(b, ',')
		}
		b = elem(b, i)
	}
	return b
}

// ArrayFieldString renders the selected array without a length bound.
func ArrayFieldString(rec *Record, sel ArraySelector, count int) string {
	return string(AppendArrayField(nil, rec, sel, count))
}

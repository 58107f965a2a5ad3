package nsandbox

import (
	"testing"
)

func BenchmarkFormatRecordZeroAllocs(b *testing.B) {
	rec := sampleRecord()
	dst := make([]byte, 128)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		FormatRecord(rec, dst)
	}
}

func BenchmarkFormatDoubleArray(b *testing.B) {
	arrays := &testArrays{doubles: make([]float64, 64)}
	for i := range arrays.doubles {
		arrays.doubles[i] = float64(i) * 1.25
	}
	rec := sampleRecord()
	rec.Arrays = arrays.holder(2)
	dst := make([]byte, 1024)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		FormatArrayField(rec, DoubleArray, len(arrays.doubles), dst)
	}
}

func BenchmarkFormatTruncatedIntArray(b *testing.B) {
	arrays := &testArrays{ints: make([]int32, 256)}
	rec := sampleRecord()
	rec.Arrays = arrays.holder(2)
	dst := make([]byte, 32)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		FormatArrayField(rec, IntArray, len(arrays.ints), dst)
	}
}

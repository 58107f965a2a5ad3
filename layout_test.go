package nsandbox

import (
	"reflect"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckLayout(t *testing.T) {
	require.NoError(t, CheckLayout())
}

func TestRecordPlanOffsets(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("offsets below are for 64-bit targets")
	}
	p, err := PlanOf(reflect.TypeFor[Record]())
	require.NoError(t, err)
	assert.Equal(t, 88, p.Size)
	assert.Equal(t, 8, p.Align)

	want := map[string]int{
		"BaseObject":  0,
		"AByte":       8,
		"AShort":      10,
		"AnInt":       12,
		"ALong":       16,
		"AFloat":      24,
		"ADouble":     32,
		"ABoolean":    40,
		"AnEnum":      44,
		"AFloatArray": 48,
		"AStruct":     56,
		"Arrays":      72,
		"Next":        80,
	}
	for name, off := range want {
		f, ok := p.Field(name)
		require.True(t, ok, name)
		assert.Equal(t, off, f.Offset, name)
	}
}

func TestArrayHolderPlan(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("offsets below are for 64-bit targets")
	}
	p, err := PlanOf(reflect.TypeOf(&ArrayHolder{}))
	require.NoError(t, err)
	assert.Equal(t, 88, p.Size)
	f, ok := p.Field("AReferenceArray")
	require.True(t, ok)
	assert.Equal(t, 80, f.Offset)
}

func TestNestedPlan(t *testing.T) {
	p, err := PlanOf(reflect.TypeFor[Nested]())
	require.NoError(t, err)
	assert.Equal(t, 12, p.Size)
	assert.Equal(t, 4, p.Align)

	rp, err := PlanOf(reflect.TypeFor[Record]())
	require.NoError(t, err)
	f, ok := rp.Field("AStruct")
	require.True(t, ok)
	require.NotNil(t, f.Nested)
	assert.Equal(t, 12, f.Size)
}

func TestPlanCached(t *testing.T) {
	a, err := PlanOf(reflect.TypeFor[Nested]())
	require.NoError(t, err)
	b, err := PlanOf(reflect.TypeFor[*Nested]())
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestPlanRejects(t *testing.T) {
	_, err := PlanOf(reflect.TypeFor[int]())
	require.ErrorIs(t, err, ErrNotStruct)

	type withString struct {
		ID   uint64
		Name string
	}
	_, err = PlanOf(reflect.TypeFor[withString]())
	require.ErrorIs(t, err, ErrUnsupported)

	type withSlice struct {
		Values []int32
	}
	_, err = PlanOf(reflect.TypeFor[withSlice]())
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestVerifyReportsMismatch(t *testing.T) {
	p, err := PlanOf(reflect.TypeFor[Nested]())
	require.NoError(t, err)

	broken := *p
	broken.Fields = append([]FieldPlan(nil), p.Fields...)
	broken.Fields[1].Offset = 6
	err = broken.Verify()
	var le *LayoutError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "AFloat", le.Field)
	assert.Equal(t, 6, le.Planned)
	assert.Equal(t, 4, le.Effective)
	assert.Contains(t, le.Error(), "planned offset 6")

	broken = *p
	broken.Size = 16
	err = broken.Verify()
	require.ErrorAs(t, err, &le)
	assert.Empty(t, le.Field)
}

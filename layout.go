package nsandbox

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/rawbytedev/nsandbox/internal/common"
)

// Plan is the native layout of a struct type as a C compiler would lay out
// the same declaration.
type Plan struct {
	Type   reflect.Type
	Size   int
	Align  int
	Fields []FieldPlan
}

type FieldPlan struct {
	Name   string
	Kind   reflect.Kind
	Index  int
	Offset int
	Size   int
	Align  int
	Nested *Plan // set for structs held by value
}

// LayoutError reports the first field whose planned placement differs from
// the one the Go compiler chose.
type LayoutError struct {
	Type      reflect.Type
	Field     string
	Planned   int
	Effective int
}

func (e *LayoutError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("layout of %s: planned size %d, go size %d", e.Type, e.Planned, e.Effective)
	}
	return fmt.Sprintf("layout of %s.%s: planned offset %d, go offset %d", e.Type, e.Field, e.Planned, e.Effective)
}

var plans = struct {
	mu sync.RWMutex
	m  map[reflect.Type]*Plan
}{m: make(map[reflect.Type]*Plan)}

// PlanOf returns the cached native layout of t, computing it on first use.
func PlanOf(t reflect.Type) (*Plan, error) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, ErrNotStruct
	}
	plans.mu.RLock()
	if p, ok := plans.m[t]; ok {
		plans.mu.RUnlock()
		return p, nil
	}
	plans.mu.RUnlock()

	p, err := buildPlan(t)
	if err != nil {
		return nil, err
	}

	plans.mu.Lock()
	defer plans.mu.Unlock()
	// Double-check
	if cached, ok := plans.m[t]; ok {
		return cached, nil
	}
	plans.m[t] = p
	return p, nil
}

func buildPlan(t reflect.Type) (*Plan, error) {
	p := &Plan{Type: t, Align: 1, Fields: make([]FieldPlan, 0, t.NumField())}
	offset := 0
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		k := sf.Type.Kind()
		fp := FieldPlan{Name: sf.Name, Kind: k, Index: i}
		switch {
		case common.IsScalarKind(k) || common.IsPointerKind(k):
			fp.Size = common.Size(k)
			fp.Align = common.Align(k)
		case k == reflect.Struct:
			nested, err := buildPlan(sf.Type)
			if err != nil {
				return nil, err
			}
			fp.Size, fp.Align, fp.Nested = nested.Size, nested.Align, nested
		default:
			return nil, fmt.Errorf("%s.%s (%s): %w", t, sf.Name, k, ErrUnsupported)
		}
		offset = common.AlignUp(offset, fp.Align)
		fp.Offset = offset
		offset += fp.Size
		p.Align = max(p.Align, fp.Align)
		p.Fields = append(p.Fields, fp)
	}
	p.Size = common.AlignUp(offset, p.Align)
	return p, nil
}

// Field returns the plan of the named field.
func (p *Plan) Field(name string) (FieldPlan, bool) {
	for _, f := range p.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldPlan{}, false
}

// Verify checks the plan against the offsets the Go compiler assigned,
// descending into nested structs.
func (p *Plan) Verify() error {
	for _, f := range p.Fields {
		sf := p.Type.Field(f.Index)
		if int(sf.Offset) != f.Offset {
			return &LayoutError{Type: p.Type, Field: f.Name, Planned: f.Offset, Effective: int(sf.Offset)}
		}
		if f.Nested != nil {
			if err := f.Nested.Verify(); err != nil {
				return err
			}
		}
	}
	if int(p.Type.Size()) != p.Size {
		return &LayoutError{Type: p.Type, Planned: p.Size, Effective: int(p.Type.Size())}
	}
	return nil
}

// NativeTypes are the record types shared with native callers.
var NativeTypes = []reflect.Type{
	reflect.TypeFor[Record](),
	reflect.TypeFor[ArrayHolder](),
	reflect.TypeFor[Nested](),
}

// CheckLayout verifies that every native record type matches its C layout.
func CheckLayout() error {
	for _, t := range NativeTypes {
		p, err := PlanOf(t)
		if err != nil {
			return err
		}
		if err := p.Verify(); err != nil {
			return err
		}
	}
	return nil
}

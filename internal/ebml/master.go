package ebml

import "github.com/simonhull/mkvmeta/internal/types"

// Element is a decoded child of a master element.
type Element struct {
	Def    *Def
	Master *Master // set for master elements
	Value  Value
	Offset int64
}

// Master holds the decoded children of one master element.
//
// Single-multiplicity children keep only their last occurrence. Accessors
// for absent children fall back to the schema default, if there is one.
type Master struct {
	schema   *Schema
	children map[ID][]*Element
	Context  Context
	Offset   int64
	Unknown  bool // the element had an unknown size
}

func newMaster(s *Schema, ctx Context, h Header) *Master {
	return &Master{
		schema:   s,
		children: make(map[ID][]*Element),
		Context:  ctx,
		Offset:   h.Offset,
		Unknown:  h.Unknown,
	}
}

// EmptyMaster returns a Master with no children, so that every accessor
// reports the schema default for ctx.
func EmptyMaster(s *Schema, ctx Context) *Master {
	return &Master{schema: s, children: map[ID][]*Element{}, Context: ctx, Offset: -1}
}

// add stores e and reports whether it replaced an earlier occurrence.
func (m *Master) add(e *Element) bool {
	id := e.Def.ID
	prev := m.children[id]
	if e.Def.Multiplicity == Single {
		m.children[id] = []*Element{e}
		return len(prev) > 0
	}
	m.children[id] = append(prev, e)
	return false
}

// Has reports whether at least one child with id was decoded.
func (m *Master) Has(id ID) bool {
	return len(m.children[id]) > 0
}

// Count returns the number of decoded children with id.
func (m *Master) Count(id ID) int {
	return len(m.children[id])
}

func (m *Master) last(id ID) (*Element, bool) {
	list := m.children[id]
	if len(list) == 0 {
		return nil, false
	}
	return list[len(list)-1], true
}

func (m *Master) def(id ID) (Value, bool) {
	d, ok := m.schema.Lookup(m.Context, id)
	if !ok {
		return Value{}, false
	}
	return d.Default, d.HasDefault
}

// Uint returns an unsigned integer child.
func (m *Master) Uint(id ID) types.Field[uint64] {
	if e, ok := m.last(id); ok {
		return types.Present(e.Value.Uint)
	}
	v, ok := m.def(id)
	return types.Absent(v.Uint, ok)
}

// Int returns a signed integer child.
func (m *Master) Int(id ID) types.Field[int64] {
	if e, ok := m.last(id); ok {
		return types.Present(e.Value.Int)
	}
	v, ok := m.def(id)
	return types.Absent(v.Int, ok)
}

// Float returns a float child.
func (m *Master) Float(id ID) types.Field[float64] {
	if e, ok := m.last(id); ok {
		return types.Present(e.Value.Float)
	}
	v, ok := m.def(id)
	return types.Absent(v.Float, ok)
}

// String returns an ASCII or UTF-8 string child.
func (m *Master) String(id ID) types.Field[string] {
	if e, ok := m.last(id); ok {
		return types.Present(e.Value.Str)
	}
	v, ok := m.def(id)
	return types.Absent(v.Str, ok)
}

// Bytes returns a copy of a binary child.
func (m *Master) Bytes(id ID) types.Field[[]byte] {
	if e, ok := m.last(id); ok {
		return types.Present(append([]byte(nil), e.Value.Bytes...))
	}
	return types.Absent[[]byte](nil, false)
}

// Date returns a date child as nanoseconds since the Matroska epoch.
func (m *Master) Date(id ID) types.Field[int64] {
	if e, ok := m.last(id); ok {
		return types.Present(e.Value.Int)
	}
	return types.Absent[int64](0, false)
}

// Child returns the last master child with id, or nil.
func (m *Master) Child(id ID) *Master {
	if e, ok := m.last(id); ok {
		return e.Master
	}
	return nil
}

// Children returns every master child with id in file order.
func (m *Master) Children(id ID) []*Master {
	list := m.children[id]
	if len(list) == 0 {
		return nil
	}
	out := make([]*Master, 0, len(list))
	for _, e := range list {
		out = append(out, e.Master)
	}
	return out
}

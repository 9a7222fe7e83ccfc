package types

import "testing"

func TestField_Present(t *testing.T) {
	f := Present[uint64](7)

	v, ok := f.Get()
	if !ok || v != 7 {
		t.Errorf("Get() = (%d, %v), want (7, true)", v, ok)
	}
	if f.Value() != 7 {
		t.Errorf("Value() = %d, want 7", f.Value())
	}
	if !f.Present() {
		t.Error("Present() = false, want true")
	}
	if f.HasDefault() {
		t.Error("HasDefault() = true for a present field")
	}
	if f.Or(9) != 7 {
		t.Errorf("Or(9) = %d, want 7", f.Or(9))
	}
}

func TestField_AbsentWithDefault(t *testing.T) {
	f := Absent[uint64](1000000, true)

	if _, ok := f.Get(); ok {
		t.Error("Get() reported a value for an absent field")
	}
	if f.Value() != 1000000 {
		t.Errorf("Value() = %d, want implied default 1000000", f.Value())
	}
	if !f.HasDefault() {
		t.Error("HasDefault() = false, want true")
	}
	if f.Or(5) != 5 {
		t.Errorf("Or(5) = %d, want 5", f.Or(5))
	}
}

func TestField_AbsentWithoutDefault(t *testing.T) {
	f := Absent[float64](44100, false)

	if f.Value() != 0 {
		t.Errorf("Value() = %v, want zero when no default is implied", f.Value())
	}
	if f.Present() || f.HasDefault() {
		t.Error("absent field without default reported presence or default")
	}
}

func TestField_ZeroValueIsAbsent(t *testing.T) {
	var f Field[string]
	if f.Present() {
		t.Error("zero Field reported present")
	}
	if s, ok := f.Get(); ok || s != "" {
		t.Errorf("Get() = (%q, %v)", s, ok)
	}
}

func TestMap(t *testing.T) {
	isSet := func(v uint64) bool { return v != 0 }

	if v, ok := Map(Present[uint64](0), isSet).Get(); !ok || v {
		t.Errorf("Map(Present(0)) = (%v, %v), want (false, true)", v, ok)
	}

	f := Map(Absent[uint64](1, true), isSet)
	if f.Present() || !f.HasDefault() || !f.Value() {
		t.Errorf("Map(Absent(1, true)) lost its default: %+v", f)
	}

	f = Map(Absent[uint64](0, false), isSet)
	if f.Present() || f.HasDefault() {
		t.Errorf("Map(Absent(0, false)) = %+v, want empty", f)
	}
}

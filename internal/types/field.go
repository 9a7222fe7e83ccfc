package types

// Field holds a decoded element value and whether the element was physically
// present in the file.
//
// An absent field may still carry an implied default taken from the schema.
// Get reports only what the file contains; Value falls back to the default.
type Field[T any] struct {
	value   T
	present bool
	implied bool
}

// Present returns a field holding a value read from the file.
func Present[T any](v T) Field[T] {
	return Field[T]{value: v, present: true}
}

// Absent returns a field for an element that was not in the file.
// def is used by Value only when implied is true.
func Absent[T any](def T, implied bool) Field[T] {
	if !implied {
		return Field[T]{}
	}
	return Field[T]{value: def, implied: true}
}

// Get returns the value and true if the element was present in the file.
func (f Field[T]) Get() (T, bool) {
	if !f.present {
		var zero T
		return zero, false
	}
	return f.value, true
}

// Value returns the present value, the implied default, or the zero value.
func (f Field[T]) Value() T {
	return f.value
}

// Present reports whether the element was physically present.
func (f Field[T]) Present() bool {
	return f.present
}

// HasDefault reports whether an absent field carries an implied default.
func (f Field[T]) HasDefault() bool {
	return !f.present && f.implied
}

// Or returns the present value, or def when the element was absent.
func (f Field[T]) Or(def T) T {
	if f.present {
		return f.value
	}
	return def
}

// Map converts a field's value with fn, keeping its presence and default.
func Map[T, U any](f Field[T], fn func(T) U) Field[U] {
	return Field[U]{value: fn(f.value), present: f.present, implied: f.implied}
}

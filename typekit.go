// Package typekit classifies arbitrary runtime values by type.
//
// It provides two single-value classifiers and four aggregate classifiers
// over value sequences. Every classifier is a pure, total function: any
// value maps to exactly one label, nothing is mutated, and no state is kept
// between calls.
//
// # Quick Start
//
//	typekit.TypeOf(42)                  // "number"
//	typekit.RealTypeOf(math.NaN())      // "NaN"
//	typekit.RealTypeOf(nil)             // "null"
//	typekit.RealTypeOf([]any{1, 2, 3})  // "array"
//
//	typekit.AllOfSameType([]any{11, 12, 13})        // true
//	typekit.AllUniqueRealTypes([]any{true, 1, "1"}) // true
//	typekit.CountRealTypes([]any{true, nil, false}) // boolean:2 null:1
package typekit

import (
	"bytes"
	"math"
	"reflect"
	"regexp"
	"time"
)

// Type is a classification label. The coarse vocabulary covers the dynamic
// type categories a Go value can fall into; the refined vocabulary adds the
// labels RealTypeOf distinguishes on top of them.
type Type string

// Coarse labels, returned by TypeOf.
const (
	TypeNumber   Type = "number"
	TypeString   Type = "string"
	TypeBoolean  Type = "boolean"
	TypeFunction Type = "function"
	TypeObject   Type = "object"
)

// Refined labels, returned by RealTypeOf in addition to the coarse set.
const (
	TypeNull        Type = "null"
	TypeNaN         Type = "NaN"
	TypeInfinity    Type = "Infinity"
	TypeArray       Type = "array"
	TypeDate        Type = "date"
	TypeRegexp      Type = "regexp"
	TypeSet         Type = "set"
	TypeMap         Type = "map"
	TypeError       Type = "error"
	TypeArrayBuffer Type = "arrayBuffer"
	TypeDataView    Type = "dataView"
	TypePromise     Type = "promise"
)

// String implements fmt.Stringer.
func (t Type) String() string { return string(t) }

// ============================================================================
// Single-Value Classifiers
// ============================================================================

// TypeOf returns the coarse type label of v.
//
// All numeric kinds (integers, floats, complex numbers) collapse into
// "number", every func kind into "function", and everything that is neither
// a number, string, boolean nor function (including nil) is "object".
//
// Example:
//
//	TypeOf(3.14)           // "number"
//	TypeOf("hi")           // "string"
//	TypeOf(struct{}{})     // "object"
//	TypeOf(strings.ToUpper) // "function"
func TypeOf(v any) Type {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool:
		return TypeBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return TypeNumber
	case reflect.String:
		return TypeString
	case reflect.Func:
		return TypeFunction
	default:
		// Pointers, structs, maps, slices, channels, interfaces and the
		// untyped nil all live in the reference category.
		return TypeObject
	}
}

// RealTypeOf returns the refined type label of v.
//
// Checks run in a fixed precedence order, first match wins:
//
//  1. untyped nil → "null"
//  2. float kinds holding NaN / ±Inf → "NaN" / "Infinity"
//  3. slices and arrays → "arrayBuffer" for byte elements, "array" otherwise
//  4. time.Time → "date"
//  5. regexp.Regexp → "regexp"
//  6. maps with struct{} elements → "set"
//  7. other maps → "map"
//  8. error implementors → "error"
//  9. *bytes.Buffer, *bytes.Reader → "dataView"
//  10. channels → "promise"
//
// Anything else keeps its coarse label, so plain numbers, strings, booleans,
// funcs and generic objects pass through TypeOf unchanged.
func RealTypeOf(v any) Type {
	if v == nil {
		return TypeNull
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		// Kind-based, like TypeOf, so defined float types refine too.
		if t, ok := floatLabel(rv.Float()); ok {
			return t
		}
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return TypeArrayBuffer
		}
		return TypeArray
	}

	switch v.(type) {
	case time.Time, *time.Time:
		return TypeDate
	case regexp.Regexp, *regexp.Regexp:
		return TypeRegexp
	}

	if rv.Kind() == reflect.Map {
		if rv.Type().Elem() == emptyStructType {
			return TypeSet
		}
		return TypeMap
	}

	if _, ok := v.(error); ok {
		return TypeError
	}

	switch v.(type) {
	case *bytes.Buffer, *bytes.Reader:
		return TypeDataView
	}

	if rv.Kind() == reflect.Chan {
		return TypePromise
	}

	return TypeOf(v)
}

// emptyStructType identifies the map[...]struct{} set idiom.
var emptyStructType = reflect.TypeOf(struct{}{})

// floatLabel reports the special-value label of f, if it has one.
func floatLabel(f float64) (Type, bool) {
	switch {
	case math.IsNaN(f):
		return TypeNaN, true
	case math.IsInf(f, 0):
		return TypeInfinity, true
	default:
		return "", false
	}
}

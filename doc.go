/*
Package typekit classifies arbitrary runtime values by type.

# Overview

Typekit answers one question, "what kind of value is this?", at two levels
of detail. TypeOf buckets a value into its coarse dynamic category (number,
string, boolean, function, object). RealTypeOf refines the object and number
buckets into the shapes programs actually branch on: null, array, date,
regexp, set, map, error, raw byte buffer, buffer view, deferred-value handle,
NaN and Infinity.

# Classifiers

Single values:

	TypeOf(42)                 // "number"
	TypeOf(nil)                // "object"
	RealTypeOf(nil)            // "null"
	RealTypeOf(math.Inf(1))    // "Infinity"
	RealTypeOf(time.Now())     // "date"
	RealTypeOf([]byte("raw"))  // "arrayBuffer"

Sequences:

	TypesOf(items)             // one coarse label per element
	RealTypesOf(items)         // one refined label per element
	AllOfSameType(items)       // coarse uniformity
	AllUniqueRealTypes(items)  // no refined label repeats
	CountRealTypes(items)      // label-sorted (label, count) pairs

# Purity

Every classifier is a pure, total, synchronous function: any input maps to
exactly one label, nothing is mutated, no state survives a call, and
classifying the same value twice yields the same label both times.

# Sequence Inputs

The aggregate classifiers take []any, so handing them a non-sequence is a
compile error. Code that holds a sequence as a plain any (decoded JSON, for
example) goes through AsSequence, which is strict: anything that is not a
slice or array fails with ErrNotSequence rather than degrading silently.

# Go Shapes

The refined vocabulary maps onto Go as follows: date is time.Time, regexp is
regexp.Regexp, a set is the map[...]struct{} idiom, an error is anything
implementing the error interface, a raw binary buffer is a slice or array of
bytes, a buffer view is *bytes.Buffer or *bytes.Reader, and a deferred-value
handle is a channel.

# Assertion Harness

The subpackage expect is a minimal assertion runner used to exercise the
classifiers against literal fixtures. It compares by deep structural
equality, prints grouped [OK]/[FAIL] lines to any io.Writer, and never halts
a run on failure:

	r := expect.New(os.Stdout)
	r.Block("single values")
	r.Equal("nil is null", typekit.RealTypeOf(nil), typekit.TypeNull)
	fmt.Println(r.Summary())

# Package Import

	import "github.com/typekit-go/typekit"

	// Harness
	import "github.com/typekit-go/typekit/expect"
*/
package typekit

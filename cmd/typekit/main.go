// Command typekit classifies JSON literals by runtime type from the shell.
//
//	typekit type 42 '"hi"' null '[1,2]'
//	typekit count '[true, null, false, {"a":1}]'
//	typekit selftest
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"regexp"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/typekit-go/typekit"
	"github.com/typekit-go/typekit/expect"
)

var (
	flagVerbose bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "typekit",
	Short: "Classify values by runtime type",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			if l, err := zap.NewDevelopment(); err == nil {
				logger = l
			}
		}
	},
}

var typeCmd = &cobra.Command{
	Use:   "type <literal>...",
	Short: "Print the coarse and refined type of each JSON literal",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			v := decodeLiteral(arg)
			logger.Debug("classifying literal",
				zap.String("input", arg),
				zap.String("type", typekit.TypeOf(v).String()))
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n",
				arg, typekit.TypeOf(v), typekit.RealTypeOf(v))
		}
		return nil
	},
}

var typesCmd = &cobra.Command{
	Use:   "types <json-array>",
	Short: "Print the refined type of each element of a JSON array",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := decodeSequence(args[0])
		if err != nil {
			return err
		}
		for _, label := range typekit.RealTypesOf(items) {
			fmt.Fprintln(cmd.OutOrStdout(), label)
		}
		return nil
	},
}

var uniformCmd = &cobra.Command{
	Use:   "uniform <json-array>",
	Short: "Report whether all elements share one coarse type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := decodeSequence(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), typekit.AllOfSameType(items))
		return nil
	},
}

var uniqueCmd = &cobra.Command{
	Use:   "unique <json-array>",
	Short: "Report whether no two elements share a refined type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := decodeSequence(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), typekit.AllUniqueRealTypes(items))
		return nil
	},
}

var countCmd = &cobra.Command{
	Use:   "count <json-array>",
	Short: "Print refined type frequencies, sorted by label",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := decodeSequence(args[0])
		if err != nil {
			return err
		}
		for _, tc := range typekit.CountRealTypes(items) {
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %d\n", tc.Type, tc.Count)
		}
		return nil
	},
}

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run the classifier fixtures through the expect harness",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := expect.New(cmd.OutOrStdout())
		selftest(r)
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", r.Summary())
		if !r.OK() {
			return fmt.Errorf("selftest: %d check(s) failed", r.Failed())
		}
		return nil
	},
}

// decodeLiteral parses s as a JSON literal. Anything that does not parse is
// taken as a bare string.
func decodeLiteral(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		logger.Debug("not valid JSON, treating as string", zap.String("input", s))
		return s
	}
	return v
}

// decodeSequence parses s as a JSON array and converts it to the []any form
// the sequence classifiers take.
func decodeSequence(s string) ([]any, error) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf("decode %q: %w", s, err)
	}
	items, err := typekit.AsSequence(v)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", s, err)
	}
	logger.Debug("decoded sequence", zap.Int("len", len(items)))
	return items, nil
}

// wrappedString stands in for a string boxed inside a reference type, which
// classifies as coarse "object" rather than "string".
type wrappedString struct {
	Value string
}

// selftest exercises the classifiers against literal fixtures.
func selftest(r *expect.Runner) {
	r.Block("coarse types")
	r.Equal("integer is number", typekit.TypeOf(42), typekit.TypeNumber)
	r.Equal("float is number", typekit.TypeOf(3.14), typekit.TypeNumber)
	r.Equal("string is string", typekit.TypeOf("hello"), typekit.TypeString)
	r.Equal("bool is boolean", typekit.TypeOf(true), typekit.TypeBoolean)
	r.Equal("func is function", typekit.TypeOf(selftest), typekit.TypeFunction)
	r.Equal("struct is object", typekit.TypeOf(wrappedString{"x"}), typekit.TypeObject)
	r.Equal("nil is object", typekit.TypeOf(nil), typekit.TypeObject)

	r.Block("refined types")
	r.Equal("NaN", typekit.RealTypeOf(math.NaN()), typekit.TypeNaN)
	r.Equal("positive infinity", typekit.RealTypeOf(math.Inf(1)), typekit.TypeInfinity)
	r.Equal("negative infinity", typekit.RealTypeOf(math.Inf(-1)), typekit.TypeInfinity)
	r.Equal("nil is null", typekit.RealTypeOf(nil), typekit.TypeNull)
	r.Equal("empty slice is array", typekit.RealTypeOf([]any{}), typekit.TypeArray)
	r.Equal("time is date", typekit.RealTypeOf(time.Now()), typekit.TypeDate)
	r.Equal("pattern is regexp", typekit.RealTypeOf(regexp.MustCompile(`\d+`)), typekit.TypeRegexp)
	r.Equal("struct{} map is set", typekit.RealTypeOf(map[string]struct{}{"a": {}}), typekit.TypeSet)
	r.Equal("map is map", typekit.RealTypeOf(map[string]int{"a": 1}), typekit.TypeMap)
	r.Equal("error is error", typekit.RealTypeOf(errors.New("boom")), typekit.TypeError)
	r.Equal("byte slice is arrayBuffer", typekit.RealTypeOf([]byte{1, 2}), typekit.TypeArrayBuffer)
	r.Equal("channel is promise", typekit.RealTypeOf(make(chan int)), typekit.TypePromise)
	r.Equal("plain number passes through", typekit.RealTypeOf(7), typekit.TypeNumber)

	r.Block("sequence classifiers")
	r.Equal("types of mixed items",
		typekit.TypesOf([]any{1, "a", true}),
		[]typekit.Type{typekit.TypeNumber, typekit.TypeString, typekit.TypeBoolean})
	r.Equal("uniform numbers", typekit.AllOfSameType([]any{11, 12, 13}), true)
	r.Equal("wrapped string breaks uniformity",
		typekit.AllOfSameType([]any{"11", wrappedString{"12"}, "13"}), false)
	r.Equal("unique real types", typekit.AllUniqueRealTypes([]any{true, 123, "123"}), true)
	r.Equal("duplicate boolean breaks uniqueness",
		typekit.AllUniqueRealTypes([]any{true, 123, "123", false}), false)
	r.Equal("frequency count",
		typekit.CountRealTypes([]any{true, nil, true, false, wrappedString{"x"}}),
		[]typekit.TypeCount{
			{Type: typekit.TypeBoolean, Count: 3},
			{Type: typekit.TypeNull, Count: 1},
			{Type: typekit.TypeObject, Count: 1},
		})
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(typeCmd, typesCmd, uniformCmd, uniqueCmd, countCmd, selftestCmd)

	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

package fn

import (
	"fmt"

	"github.com/roach88/odsf/internal/category"
	"github.com/roach88/odsf/internal/ir"
)

var (
	countIfSig = sig("COUNTIF", numberResult,
		req("range", category.Reference),
		req("criterion", category.Criterion),
	)
	sumIfSig = sig("SUMIF", numberResult,
		req("range", category.Reference),
		req("criterion", category.Criterion),
		opt("sum_range", category.Reference),
	)
	averageIfSig = sig("AVERAGEIF", numberResult,
		req("range", category.Reference),
		req("criterion", category.Criterion),
		opt("average_range", category.Reference),
	)
	countIfsSig = sig("COUNTIFS", numberResult,
		rest("conditions", category.Sequence),
	)
	sumIfsSig = sig("SUMIFS", numberResult,
		req("sum_range", category.Reference),
		rest("conditions", category.Sequence),
	)
	averageIfsSig = sig("AVERAGEIFS", numberResult,
		req("average_range", category.Reference),
		rest("conditions", category.Sequence),
	)
	maxSig     = sig("MAX", numberResult, rest("values", category.Sequence))
	minSig     = sig("MIN", numberResult, rest("values", category.Sequence))
	averageSig = sig("AVERAGE", numberResult, rest("values", category.Sequence))
	medianSig  = sig("MEDIAN", numberResult, rest("values", category.Sequence))
)

var statisticSignatures = []ir.Signature{
	countIfSig, sumIfSig, averageIfSig, countIfsSig, sumIfsSig, averageIfsSig,
	maxSig, minSig, averageSig, medianSig,
}

// Condition pairs a range with the criterion its cells must meet.
type Condition struct {
	Range     ir.Value
	Criterion *ir.Criterion
}

// conditions flattens pairs into one sequence: r1;c1;r2;c2.
func conditions(node string, pairs []Condition) (*ir.Seq, error) {
	if len(pairs) == 0 {
		return nil, &ir.BuildError{Code: ir.ErrCodeArity, Node: node, Message: "at least one condition is required"}
	}
	items := make([]ir.Value, 0, 2*len(pairs))
	for i, p := range pairs {
		if p.Range == nil || !p.Range.Categories().Has(category.Reference) {
			return nil, fmt.Errorf("%s condition %d: %w", node, i+1,
				&ir.BuildError{Code: ir.ErrCodeCategory, Node: node, Arg: 2*i + 1, Required: category.Reference, Actual: categoriesOf(p.Range)})
		}
		items = append(items, p.Range, p.Criterion)
	}
	return ir.NewSeq(items...)
}

func categoriesOf(v ir.Value) category.Set {
	if v == nil {
		return 0
	}
	return v.Categories()
}

// CountIf counts the cells in rng meeting criterion.
func CountIf(rng ir.Value, criterion *ir.Criterion) (*ir.Call, error) {
	return countIfSig.Call(ir.Args(rng, criterion)...)
}

// SumIf sums the cells of sumRange (or rng when nil) whose rng cell meets
// criterion.
func SumIf(rng ir.Value, criterion *ir.Criterion, sumRange ir.Value) (*ir.Call, error) {
	return sumIfSig.Call(ir.Provided{Value: rng}, ir.Provided{Value: criterion}, ir.Opt(sumRange))
}

// AverageIf averages like SumIf sums.
func AverageIf(rng ir.Value, criterion *ir.Criterion, averageRange ir.Value) (*ir.Call, error) {
	return averageIfSig.Call(ir.Provided{Value: rng}, ir.Provided{Value: criterion}, ir.Opt(averageRange))
}

// CountIfs counts the rows meeting every condition.
func CountIfs(pairs ...Condition) (*ir.Call, error) {
	seq, err := conditions("Call(COUNTIFS)", pairs)
	if err != nil {
		return nil, err
	}
	return countIfsSig.Call(ir.Args(seq)...)
}

// SumIfs sums sumRange over the rows meeting every condition.
func SumIfs(sumRange ir.Value, pairs ...Condition) (*ir.Call, error) {
	seq, err := conditions("Call(SUMIFS)", pairs)
	if err != nil {
		return nil, err
	}
	return sumIfsSig.Call(ir.Args(sumRange, seq)...)
}

// AverageIfs averages averageRange over the rows meeting every condition.
func AverageIfs(averageRange ir.Value, pairs ...Condition) (*ir.Call, error) {
	seq, err := conditions("Call(AVERAGEIFS)", pairs)
	if err != nil {
		return nil, err
	}
	return averageIfsSig.Call(ir.Args(averageRange, seq)...)
}

// Max returns the largest number.
func Max(values ...ir.Value) (*ir.Call, error) { return maxSig.Call(ir.Args(values...)...) }

// Min returns the smallest number.
func Min(values ...ir.Value) (*ir.Call, error) { return minSig.Call(ir.Args(values...)...) }

// Average returns the arithmetic mean.
func Average(values ...ir.Value) (*ir.Call, error) { return averageSig.Call(ir.Args(values...)...) }

// Median returns the middle value.
func Median(values ...ir.Value) (*ir.Call, error) { return medianSig.Call(ir.Args(values...)...) }

package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOf_Number(t *testing.T) {
	s := Of(Number)

	want := []Category{Number, Logical, Sequence, Field, DateTimeParam, Scalar, TextOrNumber}
	assert.Equal(t, want, s.Categories())
	assert.False(t, s.Has(Text))
	assert.False(t, s.Has(Reference))
}

func TestOf_Text(t *testing.T) {
	s := Of(Text)

	want := []Category{Text, Sequence, Field, DateTimeParam, Scalar, TextOrNumber}
	assert.Equal(t, want, s.Categories())
	assert.False(t, s.Has(Number))
	assert.False(t, s.Has(Logical))
}

func TestOf_LogicalFollowsNumberTransitively(t *testing.T) {
	s := Of(Logical)

	// Logical → Number → Field, DateTimeParam
	for _, c := range []Category{Logical, Number, Sequence, TextOrNumber, Scalar, Field, DateTimeParam} {
		assert.True(t, s.Has(c), "Logical should satisfy %s", c)
	}
	assert.False(t, s.Has(Text))
}

func TestOf_ReferenceSubsumesEverythingButCriterionAndScalar(t *testing.T) {
	s := Of(Reference)

	for _, c := range All {
		if c == Criterion || c == Scalar {
			assert.False(t, s.Has(c), "Reference should not satisfy %s", c)
			continue
		}
		assert.True(t, s.Has(c), "Reference should satisfy %s", c)
	}
}

func TestClosure_ReferenceStaysNonScalar(t *testing.T) {
	s := Of(Reference, Number)
	assert.True(t, s.Has(Number))
	assert.False(t, s.Has(Scalar))
	assert.Equal(t, s, s.Closure())
	assert.Equal(t, Of(Reference), Of(Reference).Closure())
}

func TestOf_MatrixAndCriterion(t *testing.T) {
	assert.Equal(t, []Category{Matrix, Sequence}, Of(Matrix).Categories())
	assert.Equal(t, []Category{Criterion}, Of(Criterion).Categories())
}

func TestOf_Empty(t *testing.T) {
	s := Of()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, "{}", s.String())
}

func TestWith_DoesNotClose(t *testing.T) {
	s := Set(0).With(Matrix, Number)

	assert.True(t, s.Has(Number))
	assert.True(t, s.Has(Matrix))
	assert.False(t, s.Has(Scalar), "With must not follow the subsumption table")
	assert.False(t, s.Has(Sequence))
}

func TestSet_HasZero(t *testing.T) {
	assert.False(t, Of(Reference).Has(0))
}

func TestSet_UnionIntersect(t *testing.T) {
	n := Of(Number)
	txt := Of(Text)

	common := n.Intersect(txt)
	assert.Equal(t, []Category{Sequence, Field, DateTimeParam, Scalar, TextOrNumber}, common.Categories())

	both := n.Union(txt)
	assert.True(t, both.Has(Number))
	assert.True(t, both.Has(Text))
}

func TestSet_String(t *testing.T) {
	assert.Equal(t, "{Matrix, Sequence}", Of(Matrix).String())
	assert.Equal(t, "{Criterion}", Set(Criterion).String())
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "DateTimeParam", DateTimeParam.String())
	assert.Equal(t, "Category(3)", Category(3).String())
	assert.True(t, Field.Valid())
	assert.False(t, Category(3).Valid())
}

func TestParse(t *testing.T) {
	for _, c := range All {
		got, err := Parse(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	got, err := Parse("textornumber")
	require.NoError(t, err)
	assert.Equal(t, TextOrNumber, got)

	_, err = Parse("Currency")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Currency")
}

func TestImplies_IsDirectRow(t *testing.T) {
	row := Implies(Reference)
	assert.True(t, row.Has(Number))
	assert.False(t, row.Has(Scalar))
	assert.True(t, Of(Number).Has(Scalar))
	assert.False(t, Of(Reference).Has(Scalar))

	assert.True(t, Implies(Criterion).IsEmpty())
}

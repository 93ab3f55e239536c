package gosequences

import (
	"testing"

	"github.com/matryer/is"
)

func lessInt(a int, b int) bool {
	return a < b
}

func TestMax(t *testing.T) {
	is := is.New(t)

	result, err := Of(12, 55, 37, 9).Max(lessInt)

	is.NoErr(err)

	value, ok := result.Get()

	is.True(ok)
	is.Equal(value, 55)
}

func TestMin(t *testing.T) {
	is := is.New(t)

	result, err := Of(12, 55, 37, 9).Min(lessInt)

	is.NoErr(err)

	value, ok := result.Get()

	is.True(ok)
	is.Equal(value, 9)
}

func TestMax_Empty(t *testing.T) {
	is := is.New(t)

	result, err := Of[float64]().Max(func(a float64, b float64) bool {
		return a < b
	})

	is.NoErr(err)
	is.True(!result.Present())
}

func TestMin_Empty(t *testing.T) {
	is := is.New(t)

	result, err := Of[float64]().Min(func(a float64, b float64) bool {
		return a < b
	})

	is.NoErr(err)
	is.True(!result.Present())
}

func TestMax_Comparator(t *testing.T) {
	is := is.New(t)

	byLength := func(a string, b string) bool {
		return len(a) < len(b)
	}

	result, err := Of("foo", "quux", "ba").Max(byLength)

	is.NoErr(err)
	is.Equal(result.OrElse(""), "quux")
}

func TestMax_EqualExtremes(t *testing.T) {
	is := is.New(t)

	// ties are unspecified, but the result must rank equal to the extreme
	byLength := func(a string, b string) bool {
		return len(a) < len(b)
	}

	result, err := Of("foo", "bar", "x").Max(byLength)

	is.NoErr(err)

	value, ok := result.Get()

	is.True(ok)
	is.Equal(len(value), 3)
}

func TestOptional(t *testing.T) {
	is := is.New(t)

	present := OptionalOf(42)

	value, ok := present.Get()

	is.True(ok)
	is.Equal(value, 42)
	is.True(present.Present())
	is.Equal(present.OrElse(7), 42)

	empty := EmptyOptional[int]()

	value, ok = empty.Get()

	is.True(!ok)
	is.Equal(value, 0)
	is.True(!empty.Present())
	is.Equal(empty.OrElse(7), 7)
}

package guard_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guardkit/guardkit/pkg/guard"
)

func TestNotNil(t *testing.T) {
	t.Parallel()
	t.Run("returns non-nil pointer unchanged", func(t *testing.T) {
		v := 42
		got, err := guard.NotNil(&v, "count")
		require.NoError(t, err)
		assert.Same(t, &v, got)
	})

	t.Run("fails for nil pointer", func(t *testing.T) {
		var p *int
		_, err := guard.NotNil(p, "count")
		require.Error(t, err)
		assert.ErrorIs(t, err, guard.ErrMissingValue)
		assert.Equal(t, "Value of parameter 'count' cannot be null", err.Error())
	})

	t.Run("fails for nil interface", func(t *testing.T) {
		var w io.Writer
		_, err := guard.NotNil(w, "writer")
		require.Error(t, err)
		assert.ErrorIs(t, err, guard.ErrMissingValue)
	})

	t.Run("fails for typed nil inside interface", func(t *testing.T) {
		var p *int
		var v any = p
		_, err := guard.NotNil(v, "value")
		require.Error(t, err)
		assert.ErrorIs(t, err, guard.ErrMissingValue)
	})

	t.Run("fails for nil map", func(t *testing.T) {
		var m map[string]int
		_, err := guard.NotNil(m, "index")
		assert.ErrorIs(t, err, guard.ErrMissingValue)
	})

	t.Run("fails for nil slice", func(t *testing.T) {
		var s []string
		_, err := guard.NotNil(s, "items")
		assert.ErrorIs(t, err, guard.ErrMissingValue)
	})

	t.Run("fails for nil func", func(t *testing.T) {
		var f func()
		_, err := guard.NotNil(f, "callback")
		assert.ErrorIs(t, err, guard.ErrMissingValue)
	})

	t.Run("passes for empty but non-nil map", func(t *testing.T) {
		m := map[string]int{}
		got, err := guard.NotNil(m, "index")
		require.NoError(t, err)
		assert.Equal(t, m, got)
	})

	t.Run("passes for non-nilable kinds", func(t *testing.T) {
		n, err := guard.NotNil(0, "zero")
		require.NoError(t, err)
		assert.Equal(t, 0, n)

		s, err := guard.NotNil("", "text")
		require.NoError(t, err)
		assert.Equal(t, "", s)

		type pair struct{ a, b int }
		p, err := guard.NotNil(pair{}, "pair")
		require.NoError(t, err)
		assert.Equal(t, pair{}, p)
	})

	t.Run("exposes parameter name", func(t *testing.T) {
		var p *int
		_, err := guard.NotNil(p, "pool")
		var gerr *guard.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, "pool", gerr.Param)
	})
}

func TestNotEmpty(t *testing.T) {
	t.Parallel()
	t.Run("passes nil through", func(t *testing.T) {
		got, err := guard.NotEmpty(nil, "comment")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("returns non-blank text unchanged", func(t *testing.T) {
		s := "hello"
		got, err := guard.NotEmpty(&s, "comment")
		require.NoError(t, err)
		assert.Same(t, &s, got)
	})

	t.Run("fails for empty string", func(t *testing.T) {
		s := ""
		_, err := guard.NotEmpty(&s, "comment")
		require.Error(t, err)
		assert.ErrorIs(t, err, guard.ErrInvalidArgument)
		assert.Equal(t, "Value of parameter 'comment' cannot be empty", err.Error())
	})

	t.Run("fails for whitespace-only string", func(t *testing.T) {
		for _, s := range []string{" ", "   ", "\t", "\n", " \t\r\n "} {
			s := s
			_, err := guard.NotEmpty(&s, "comment")
			assert.ErrorIs(t, err, guard.ErrInvalidArgument, "input %q", s)
		}
	})

	t.Run("passes for text with surrounding whitespace", func(t *testing.T) {
		s := "  ok  "
		got, err := guard.NotEmpty(&s, "comment")
		require.NoError(t, err)
		assert.Equal(t, "  ok  ", *got)
	})
}

func TestNotNilNotEmpty(t *testing.T) {
	t.Parallel()
	t.Run("fails for nil with missing-value kind", func(t *testing.T) {
		_, err := guard.NotNilNotEmpty(nil, "name")
		require.Error(t, err)
		assert.ErrorIs(t, err, guard.ErrMissingValue)
		assert.Equal(t, "Value of parameter 'name' cannot be null", err.Error())
	})

	t.Run("fails for blank with invalid-argument kind", func(t *testing.T) {
		s := "  "
		_, err := guard.NotNilNotEmpty(&s, "name")
		require.Error(t, err)
		assert.ErrorIs(t, err, guard.ErrInvalidArgument)
		assert.Equal(t, "Value of parameter 'name' cannot be empty", err.Error())
	})

	t.Run("returns the dereferenced string", func(t *testing.T) {
		s := "ok"
		got, err := guard.NotNilNotEmpty(&s, "name")
		require.NoError(t, err)
		assert.Equal(t, "ok", got)
	})

	t.Run("keeps surrounding whitespace on success", func(t *testing.T) {
		s := " ok "
		got, err := guard.NotNilNotEmpty(&s, "name")
		require.NoError(t, err)
		assert.Equal(t, " ok ", got)
	})
}

func TestLowerBound(t *testing.T) {
	t.Parallel()
	t.Run("fails below the bound", func(t *testing.T) {
		_, err := guard.LowerBound(5, "limit", 10)
		require.Error(t, err)
		assert.ErrorIs(t, err, guard.ErrInvalidArgument)
		assert.Equal(t, "Value of parameter 'limit' must be larger than or equal to 10", err.Error())
	})

	t.Run("passes at the bound", func(t *testing.T) {
		got, err := guard.LowerBound(10, "limit", 10)
		require.NoError(t, err)
		assert.Equal(t, 10, got)
	})

	t.Run("passes above the bound", func(t *testing.T) {
		got, err := guard.LowerBound(11, "limit", 10)
		require.NoError(t, err)
		assert.Equal(t, 11, got)
	})

	t.Run("works with int64", func(t *testing.T) {
		got, err := guard.LowerBound(int64(1024), "bytes", int64(512))
		require.NoError(t, err)
		assert.Equal(t, int64(1024), got)

		_, err = guard.LowerBound(int64(256), "bytes", int64(512))
		assert.ErrorIs(t, err, guard.ErrInvalidArgument)
	})

	t.Run("works with uint", func(t *testing.T) {
		got, err := guard.LowerBound(uint(5), "workers", uint(1))
		require.NoError(t, err)
		assert.Equal(t, uint(5), got)
	})

	t.Run("works with float64", func(t *testing.T) {
		_, err := guard.LowerBound(0.5, "ratio", 1.0)
		require.Error(t, err)
		assert.Equal(t, "Value of parameter 'ratio' must be larger than or equal to 1", err.Error())
	})

	t.Run("handles negative bounds", func(t *testing.T) {
		got, err := guard.LowerBound(-5, "offset", -10)
		require.NoError(t, err)
		assert.Equal(t, -5, got)

		_, err = guard.LowerBound(-15, "offset", -10)
		assert.ErrorIs(t, err, guard.ErrInvalidArgument)
	})

	t.Run("exposes parameter name", func(t *testing.T) {
		_, err := guard.LowerBound(0, "attempts", 1)
		var gerr *guard.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, "attempts", gerr.Param)
	})
}

func TestErrorKinds(t *testing.T) {
	t.Parallel()
	t.Run("kinds are distinguishable", func(t *testing.T) {
		_, missing := guard.NotNilNotEmpty(nil, "a")
		blank := ""
		_, invalid := guard.NotEmpty(&blank, "a")

		assert.True(t, errors.Is(missing, guard.ErrMissingValue))
		assert.False(t, errors.Is(missing, guard.ErrInvalidArgument))
		assert.True(t, errors.Is(invalid, guard.ErrInvalidArgument))
		assert.False(t, errors.Is(invalid, guard.ErrMissingValue))
	})
}

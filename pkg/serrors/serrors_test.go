package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"cardforge/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrUnknownNetwork,
		serrors.ErrInvalidLength,
		serrors.ErrSerialization,
		serrors.ErrUnsupportedFormat,
		serrors.ErrBadRequest,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("writer closed")

	e1 := serrors.With(serrors.ErrUnknownNetwork, "unknown network: %s", "jcb")
	require.Equal(t, "unknown network: jcb", e1.Error())

	e2 := serrors.Wrap(serrors.ErrSerialization, base, "could not encode csv")
	require.Equal(t, "could not encode csv: writer closed", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrUnsupportedFormat)
	require.Equal(t, "UNSUPPORTED_FORMAT", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrSerialization, base, "encoding")

	require.ErrorIs(t, e, serrors.ErrSerialization)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUnknownNetwork)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrSerialization, base, "encoding")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrSerialization, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrBadRequest, base, "bad quantity")
	require.Equal(t, serrors.ErrBadRequest, e.Kind())
	require.Equal(t, "bad quantity", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	require.Nil(t, serrors.KindOf(nil))
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(errors.New("plain")))

	wrapped := fmt.Errorf("generating batch: %w", serrors.With(serrors.ErrUnknownNetwork, "unknown network: x"))
	require.Equal(t, serrors.ErrUnknownNetwork, serrors.KindOf(wrapped))
	require.Equal(t, serrors.ErrUnsupportedFormat, serrors.KindOf(serrors.ErrUnsupportedFormat))
}

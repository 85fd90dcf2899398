package modding_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usharplibs/engine/logging/logtest"
	"github.com/usharplibs/engine/modding"
)

func mustSource(t *testing.T, name, version string) modding.ModSource {
	t.Helper()

	v, err := modding.ParseModVersion(version)
	require.NoError(t, err)

	src, err := modding.NewModSource(name, v)
	require.NoError(t, err)
	return src
}

func TestSameNameDifferentVersionIsSameSource(t *testing.T) {

	a := mustSource(t, "coolmod", "1.0.0")
	b := mustSource(t, "coolmod", "2.3.1")
	c := mustSource(t, "othermod", "1.0.0")

	assert.True(t, modding.Equal(a, b))
	assert.Equal(t, modding.Hash(a), modding.Hash(b))
	assert.Zero(t, modding.Compare(a, b))
	assert.Equal(t, a.Key(), b.Key())

	assert.False(t, modding.Equal(a, c))
	assert.Negative(t, modding.Compare(a, c))

	// Versions are still kept apart
	assert.Positive(t, b.Version().Compare(a.Version()))
}

func TestModSourceIsNotComparable(t *testing.T) {

	// == would compare versions, so it must not compile for ModSource
	assert.False(t, reflect.TypeOf(modding.ModSource{}).Comparable())

	byKey := map[string]modding.ModSource{}
	a := mustSource(t, "coolmod", "1.0.0")
	b := mustSource(t, "coolmod", "2.0.0")
	byKey[a.Key()] = a
	byKey[b.Key()] = b
	assert.Len(t, byKey, 1)
}

func TestModSourceString(t *testing.T) {
	src := mustSource(t, "coolmod", "1.2.3")
	assert.Equal(t, "Source: coolmod, Version: 1.2.3", src.String())
}

func TestNewModSourceErrors(t *testing.T) {

	_, err := modding.NewModSource("  ", modding.MustParseModVersion("1.0.0"))
	assert.ErrorIs(t, err, modding.ErrEmptySourceName)

	_, err = modding.ParseModVersion("not a version")
	assert.Error(t, err)

	assert.Panics(t, func() { modding.MustParseModVersion("x.y") })
}

func TestZeroVersion(t *testing.T) {

	var v modding.ModVersion
	assert.True(t, v.IsZero())
	assert.Equal(t, "0.0.0", v.String())
	assert.Negative(t, v.Compare(modding.MustParseModVersion("0.0.1")))
}

func TestRegistryLoadsSourceOnce(t *testing.T) {

	logtest.Install(t)

	r := modding.Registry{}
	require.NoError(t, r.Register(mustSource(t, "b-mod", "1.0.0")))
	require.NoError(t, r.Register(mustSource(t, "a-mod", "1.0.0")))

	err := r.Register(mustSource(t, "b-mod", "9.0.0"))
	var dup *modding.DuplicateSourceError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "1.0.0", dup.Existing.Version().String())

	assert.Equal(t, 2, r.Len())
	assert.True(t, r.Has(mustSource(t, "a-mod", "5.0.0")))

	got, ok := r.Get("b-mod")
	require.True(t, ok)
	assert.Equal(t, "1.0.0", got.Version().String())

	srcs := r.Sources()
	require.Len(t, srcs, 2)
	assert.Equal(t, "a-mod", srcs[0].Source())
	assert.Equal(t, "b-mod", srcs[1].Source())
}

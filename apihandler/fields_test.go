package apihandler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldsKeepRegistrationOrder(t *testing.T) {
	f := NewFields().
		Headers(passing(nil)).
		Body(passing(nil)).
		Query(passing(nil))

	entries := f.all()
	require.Len(t, entries, 3)
	assert.Equal(t, FieldHeaders, entries[0].field)
	assert.Equal(t, FieldBody, entries[1].field)
	assert.Equal(t, FieldQuery, entries[2].field)
}

func TestFieldsReplaceInPlace(t *testing.T) {
	first := passing("first")
	second := passing("second")

	f := NewFields().
		Body(first).
		Query(passing(nil)).
		Body(second)

	entries := f.all()
	require.Len(t, entries, 2)
	assert.Equal(t, FieldBody, entries[0].field)
	assert.Equal(t, second, entries[0].schema)
}

func TestFieldsNilSafe(t *testing.T) {
	var f *Fields
	assert.Zero(t, f.Len())
	assert.Nil(t, f.all())
}

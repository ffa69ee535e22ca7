package sans

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefinition_Advance(t *testing.T) {
	t.Run("with fields", func(t *testing.T) {
		d := NewDefinition()
		kind, field, rec := d.Advance([5]byte{0, 0, 0, 0, 3})
		require.Equal(t, DefinitionToField, kind)
		require.NotNil(t, field)
		require.Nil(t, rec)
	})

	t.Run("no fields", func(t *testing.T) {
		d := NewDefinition()
		kind, field, rec := d.Advance([5]byte{0, 0, 0, 0, 0})
		require.Equal(t, DefinitionToRecordHeader, kind)
		require.Nil(t, field)
		require.NotNil(t, rec)
	})
}

func TestDefinitionField_Advance(t *testing.T) {
	d := NewDefinition()
	_, field, _ := d.Advance([5]byte{0, 0, 0, 0, 2})

	kind, next, rec := field.Advance([3]byte{0, 1, 0x00})
	require.Equal(t, DefinitionToField, kind)
	require.NotNil(t, next)
	require.Nil(t, rec)

	kind, next, rec = next.Advance([3]byte{1, 2, 0x84})
	require.Equal(t, DefinitionToRecordHeader, kind)
	require.Nil(t, next)
	require.NotNil(t, rec)
}

func TestDefinitionAlt_Advance(t *testing.T) {
	t.Run("little endian with fields", func(t *testing.T) {
		da := NewDefinitionAlt()
		global, kind, field, rec := da.Advance([5]byte{0, 0x00, 0x14, 0x00, 1})
		require.Equal(t, uint16(0x14), global)
		require.Equal(t, DefinitionAltToFieldAlt, kind)
		require.NotNil(t, field)
		require.Nil(t, rec)
	})

	t.Run("big endian no fields", func(t *testing.T) {
		da := NewDefinitionAlt()
		global, kind, field, rec := da.Advance([5]byte{0, 0x01, 0x00, 0x14, 0})
		require.Equal(t, uint16(0x14), global)
		require.Equal(t, DefinitionAltToRecordHeader, kind)
		require.Nil(t, field)
		require.NotNil(t, rec)
	})
}

func TestDefinitionFieldAlt_Advance(t *testing.T) {
	dfa := NewDefinitionFieldAltResume(1, true)
	fieldNum, field, err := dfa.Advance([3]byte{253, 4, 0x86})
	require.NoError(t, err)
	require.Equal(t, uint8(253), fieldNum)
	require.NotNil(t, field)
	require.Equal(t, uint8(4), field.Width())
	require.Equal(t, KindU32, field.Kind())
}

func TestDefinitionFieldAlt_Advance_UnknownBaseType(t *testing.T) {
	dfa := NewDefinitionFieldAltResume(0, true)
	_, field, err := dfa.Advance([3]byte{0, 1, 0xFF})
	require.Error(t, err)
	require.Nil(t, field)
}

func TestDefinitionAdvanceTwicePanics(t *testing.T) {
	d := NewDefinition()
	_, _, _ = d.Advance([5]byte{0, 0, 0, 0, 0})

	require.Panics(t, func() {
		_, _, _ = d.Advance([5]byte{0, 0, 0, 0, 0})
	})
}

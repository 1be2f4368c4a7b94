package wxhist_test

import (
	"testing"

	"github.com/fwojciec/wxhist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFields(t *testing.T) {
	t.Parallel()

	t.Run("returns fields in declaration order", func(t *testing.T) {
		t.Parallel()

		fields := wxhist.Fields()

		require.Len(t, fields, 13)
		assert.Equal(t, wxhist.FieldTime, fields[0])
		assert.Equal(t, wxhist.FieldPressure, fields[4])
		assert.Equal(t, wxhist.FieldWindChill, fields[12])
	})

	t.Run("every field has at least one keyword", func(t *testing.T) {
		t.Parallel()

		for _, f := range wxhist.Fields() {
			assert.NotEmpty(t, f.Keywords(), f.String())
		}
	})
}

func TestField_Excluded(t *testing.T) {
	t.Parallel()

	for _, f := range wxhist.Fields() {
		if f == wxhist.FieldWindChill {
			assert.True(t, f.Excluded(), f.String())
			continue
		}
		assert.False(t, f.Excluded(), f.String())
	}
}

func TestField_Numeric(t *testing.T) {
	t.Parallel()

	numeric := map[wxhist.Field]bool{
		wxhist.FieldTemperature: true,
		wxhist.FieldDewPoint:    true,
		wxhist.FieldHumidity:    true,
		wxhist.FieldPressure:    true,
		wxhist.FieldVisibility:  true,
		wxhist.FieldGustSpeed:   true,
	}
	for _, f := range wxhist.Fields() {
		assert.Equal(t, numeric[f], f.Numeric(), f.String())
	}
}

func TestField_Keywords(t *testing.T) {
	t.Parallel()

	t.Run("time keywords start with the EET pair", func(t *testing.T) {
		t.Parallel()

		kw := wxhist.FieldTime.Keywords()

		require.GreaterOrEqual(t, len(kw), 2)
		assert.Equal(t, []string{"Time (EET)", "Time (EEST)"}, kw[:2])
	})

	t.Run("returns a copy", func(t *testing.T) {
		t.Parallel()

		kw := wxhist.FieldTemperature.Keywords()
		kw[0] = "changed"

		assert.Equal(t, []string{"Temp."}, wxhist.FieldTemperature.Keywords())
	})

	t.Run("unknown field has no keywords", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, wxhist.Field(99).Keywords())
		assert.Equal(t, "unknown", wxhist.Field(99).String())
	})
}

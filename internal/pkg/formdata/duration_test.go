package formdata

import (
	"glucolog-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDuration(t *testing.T) {
	t.Run("hours minutes and seconds are summed into minutes", func(t *testing.T) {
		entries := []models.DurationEntry{
			{Unit: "Hora(s)", Value: "1"},
			{Unit: "Minuto(s)", Value: "30"},
			{Unit: "Segundo(s)", Value: "30"},
		}

		result := NormalizeDuration(entries)
		require.NotNil(t, result)
		assert.Equal(t, 90.5, result.ValueMinutes)
		assert.Equal(t, "min", result.Unit)
	})

	t.Run("result is rounded to two decimal places", func(t *testing.T) {
		entries := []models.DurationEntry{
			{Unit: "Segundo(s)", Value: "10"},
		}

		result := NormalizeDuration(entries)
		require.NotNil(t, result)
		assert.Equal(t, 0.17, result.ValueMinutes)
	})

	t.Run("nil when nothing was recorded", func(t *testing.T) {
		assert.Nil(t, NormalizeDuration(nil))
		assert.Nil(t, NormalizeDuration([]models.DurationEntry{}))
		assert.Nil(t, NormalizeDuration([]models.DurationEntry{
			{Unit: "Hora(s)", Value: ""},
			{Unit: "Minuto(s)", Value: ""},
		}))
	})

	t.Run("explicit zero is kept distinct from nothing recorded", func(t *testing.T) {
		result := NormalizeDuration([]models.DurationEntry{
			{Unit: "Minuto(s)", Value: "0"},
		})
		require.NotNil(t, result)
		assert.Equal(t, 0.0, result.ValueMinutes)
		assert.Equal(t, "min", result.Unit)
	})

	t.Run("non numeric values are skipped", func(t *testing.T) {
		result := NormalizeDuration([]models.DurationEntry{
			{Unit: "Hora(s)", Value: "abc"},
			{Unit: "Minuto(s)", Value: "15"},
		})
		require.NotNil(t, result)
		assert.Equal(t, 15.0, result.ValueMinutes)
	})

	t.Run("unknown unit labels are skipped", func(t *testing.T) {
		assert.Nil(t, NormalizeDuration([]models.DurationEntry{
			{Unit: "Dia(s)", Value: "2"},
		}))

		result := NormalizeDuration([]models.DurationEntry{
			{Unit: "Dia(s)", Value: "2"},
			{Unit: "Minuto(s)", Value: "5"},
		})
		require.NotNil(t, result)
		assert.Equal(t, 5.0, result.ValueMinutes)
	})

	t.Run("decimal values are accepted", func(t *testing.T) {
		result := NormalizeDuration([]models.DurationEntry{
			{Unit: "Hora(s)", Value: "0.5"},
		})
		require.NotNil(t, result)
		assert.Equal(t, 30.0, result.ValueMinutes)
	})
}

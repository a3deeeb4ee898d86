package validation

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUpdateCarStatus(t *testing.T) {
	carID := "7e2b4c6d-8f10-4a3b-b5c7-9d0e1f2a3b4c"

	t.Run("Valid", func(t *testing.T) {
		in, fieldErr := ParseUpdateCarStatus(url.Values{
			"car_id": {carID},
			"status": {"maintenance"},
		})
		require.Nil(t, fieldErr)
		assert.Equal(t, carID, in.CarID)
		assert.Equal(t, "maintenance", in.Status)
	})

	t.Run("Missing Car", func(t *testing.T) {
		_, fieldErr := ParseUpdateCarStatus(url.Values{"status": {"available"}})
		require.NotNil(t, fieldErr)
		assert.Equal(t, "car_id", fieldErr.Field)
	})

	t.Run("Unknown Status", func(t *testing.T) {
		_, fieldErr := ParseUpdateCarStatus(url.Values{
			"car_id": {carID},
			"status": {"exploded"},
		})
		require.NotNil(t, fieldErr)
		assert.Equal(t, "invalid car status", fieldErr.Message)
	})
}

func TestParseCreateCar(t *testing.T) {
	base := func() url.Values {
		return url.Values{
			"category_id":     {"0c7f9a3e-5b1d-4e8a-9f26-3d1c8e4b7a50"},
			"registration_no": {"1กข 1234"},
			"make":            {"Toyota"},
			"model":           {"Yaris"},
			"year":            {"2022"},
			"mileage":         {"15000"},
		}
	}

	t.Run("Valid With Default Status", func(t *testing.T) {
		in, fieldErr := ParseCreateCar(base())
		require.Nil(t, fieldErr)
		assert.Equal(t, "available", in.Status)
		assert.Equal(t, 2022, in.Year)
	})

	t.Run("Year Not A Number", func(t *testing.T) {
		form := base()
		form.Set("year", "twenty")
		_, fieldErr := ParseCreateCar(form)
		require.NotNil(t, fieldErr)
		assert.Equal(t, "year", fieldErr.Field)
	})

	t.Run("Future Year", func(t *testing.T) {
		form := base()
		form.Set("year", "2099")
		_, fieldErr := ParseCreateCar(form)
		require.NotNil(t, fieldErr)
		assert.Equal(t, "year is in the future", fieldErr.Message)
	})

	t.Run("Negative Mileage", func(t *testing.T) {
		form := base()
		form.Set("mileage", "-10")
		_, fieldErr := ParseCreateCar(form)
		require.NotNil(t, fieldErr)
		assert.Equal(t, "mileage", fieldErr.Field)
	})
}

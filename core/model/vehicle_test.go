package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVehicle(t *testing.T) {
	cases := []struct {
		in   string
		want VehicleKind
	}{
		{"car", VehicleCar},
		{"van", VehicleVan},
		{"bike", VehicleBike},
		{"ev", VehicleEV},
		{"spaceship", VehicleCar},
		{"EV", VehicleCar},
		{"", VehicleCar},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ParseVehicle(c.in), c.in)
	}
}

func TestVehicleProfiles(t *testing.T) {
	cases := []struct {
		kind   VehicleKind
		weight float64
		factor float64
	}{
		{VehicleCar, 1200, 1.0},
		{VehicleVan, 2500, 1.4},
		{VehicleBike, 200, 0.2},
		{VehicleEV, 1800, 0.0},
	}
	for _, c := range cases {
		p := c.kind.Profile()
		assert.Equal(t, c.weight, p.ReferenceWeightKg, c.kind.String())
		assert.Equal(t, c.factor, p.CO2ScaleFactor, c.kind.String())
	}
}

func TestUnknownVehicleResolvesToCarProfile(t *testing.T) {
	p := ParseVehicle("spaceship").Profile()
	assert.Equal(t, 1200.0, p.ReferenceWeightKg)
	assert.Equal(t, 1.0, p.CO2ScaleFactor)
	assert.Equal(t, VehicleCar.Profile(), VehicleKind(42).Profile())
}

func TestVehicleKindText(t *testing.T) {
	var out struct {
		V VehicleKind `json:"v"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"v":"van"}`), &out))
	assert.Equal(t, VehicleVan, out.V)
	require.NoError(t, json.Unmarshal([]byte(`{"v":"tractor"}`), &out))
	assert.Equal(t, VehicleCar, out.V)

	b, err := json.Marshal(struct {
		V VehicleKind `json:"v"`
	}{VehicleEV})
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":"ev"}`, string(b))
}

func TestLookupVehicle(t *testing.T) {
	k, ok := LookupVehicle("van")
	assert.True(t, ok)
	assert.Equal(t, VehicleVan, k)

	k, ok = LookupVehicle("Van")
	assert.False(t, ok)
	assert.Equal(t, VehicleCar, k)
}

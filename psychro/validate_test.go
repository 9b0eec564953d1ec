package psychro

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Validate(t *testing.T) {
	cases := []struct {
		name string
		ps   *PropertySet
		msg  string
	}{
		{"wet bulb above dry bulb", NewPropertySet(atm).Set(PropDryBulb, 20).Set(PropWetBulb, 25), "wet bulb exceeds dry bulb"},
		{"dew point above dry bulb", NewPropertySet(atm).Set(PropDryBulb, 20).Set(PropDewPoint, 21), "dew point exceeds dry bulb"},
		{"dew point above wet bulb", NewPropertySet(atm).Set(PropWetBulb, 15).Set(PropDewPoint, 16), "dew point exceeds wet bulb"},
		{"relative humidity above 1", NewPropertySet(atm).Set(PropWetBulb, 20).Set(PropRelativeHumidity, 1.3), "relative humidity exceeds 1.0"},
		{"negative relative humidity", NewPropertySet(atm).Set(PropDryBulb, 20).Set(PropRelativeHumidity, -0.1), "relative humidity is negative"},
		{"negative humidity ratio", NewPropertySet(atm).Set(PropDryBulb, 20).Set(PropHumidityRatio, -0.001), "humidity ratio is negative"},
		{"supersaturated", NewPropertySet(atm).Set(PropDryBulb, 20).Set(PropHumidityRatio, 0.05), "humidity ratio exceeds saturation humidity ratio"},
		{"vapor pressure above total", NewPropertySet(1000).Set(PropRelativeHumidity, 0.5).Set(PropVaporPressure, 1200), "partial vapor pressure exceeds total pressure"},
		{"vapor pressure above saturation", NewPropertySet(atm).Set(PropDryBulb, 20).Set(PropVaporPressure, 3000), "partial vapor pressure exceeds saturation pressure"},
		{"zero specific volume", NewPropertySet(atm).Set(PropDryBulb, 20).Set(PropSpecificVolume, 0), "specific volume must be positive"},
		{"specific heat below dry air", NewPropertySet(atm).Set(PropDryBulb, 20).Set(PropSpecificHeat, 1.0), "specific heat capacity is below"},
		{"non-positive pressure", NewPropertySet(0).Set(PropDryBulb, 20).Set(PropRelativeHumidity, 0.5), "total pressure must be positive"},
		{"not finite", NewPropertySet(atm).Set(PropDryBulb, math.NaN()).Set(PropRelativeHumidity, 0.5), "dry_bulb_temperature is not finite"},
		{"infinite", NewPropertySet(atm).Set(PropDryBulb, 20).Set(PropEnthalpy, math.Inf(1)), "total_enthalpy is not finite"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Validate(c.ps)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.ErrorContains(t, err, c.msg)
		})
	}
}

// 境界値は許容する
func Test_Validate_Boundary(t *testing.T) {
	assert.NoError(t, Validate(NewPropertySet(atm).Set(PropDryBulb, 30).Set(PropWetBulb, 30)))
	assert.NoError(t, Validate(NewPropertySet(atm).Set(PropDryBulb, 30).Set(PropRelativeHumidity, 1)))
	assert.NoError(t, Validate(NewPropertySet(atm).Set(PropDryBulb, 30).Set(PropRelativeHumidity, 0)))
	assert.NoError(t, Validate(NewPropertySet(atm).Set(PropDryBulb, 30).Set(PropSpecificHeat, 1.005)))
}

// 湿球温度と比エンタルピーの整合性
func Test_checkSaturationPair(t *testing.T) {
	s := defaultSolver()
	H := Enthalpy(17.815, SaturationHumidityRatio(17.815, atm))
	assert.NoError(t, checkSaturationPair(s, 17.815, H, atm))

	err := checkSaturationPair(s, 17.815, 60, atm)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorContains(t, err, "inconsistent")

	// 比エンタルピーが低すぎる場合の解なしは入力の誤りとして返す
	err = checkSaturationPair(s, 20, 10, atm)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.NotErrorIs(t, err, ErrNoPhysicalSolution)
	assert.ErrorContains(t, err, "too low for wet bulb")
}

func Test_checkResolved(t *testing.T) {
	ok := &State{
		DryBulb:          25,
		WetBulb:          17.815,
		DewPoint:         13.8646,
		HumidityRatio:    0.0098846,
		RelativeHumidity: 0.5,
		Enthalpy:         50.3149,
		VaporPressure:    1584.97,
		SpecificVolume:   0.85808,
		SpecificHeat:     1.02358,
		TotalPressure:    atm,
	}
	assert.NoError(t, checkResolved(ok, 1e-4))

	bad := *ok
	bad.WetBulb = 26
	assert.ErrorIs(t, checkResolved(&bad, 1e-4), ErrInvalidInput)

	bad = *ok
	bad.RelativeHumidity = 1.01
	assert.ErrorIs(t, checkResolved(&bad, 1e-4), ErrInvalidInput)

	bad = *ok
	bad.SpecificVolume = math.NaN()
	assert.ErrorIs(t, checkResolved(&bad, 1e-4), ErrNumericConvergenceFailure)

	// 温度の順序と相対湿度はわずかな逆転も認めない
	bad = *ok
	bad.DewPoint = bad.WetBulb + 1e-6
	assert.ErrorIs(t, checkResolved(&bad, 1e-4), ErrInvalidInput)

	bad = *ok
	bad.RelativeHumidity = 1 + 1e-6
	assert.ErrorIs(t, checkResolved(&bad, 1e-4), ErrInvalidInput)

	// 飽和の上限は許容差の範囲の超過を認める
	edge := *ok
	edge.VaporPressure = PSat(edge.DryBulb) * (1 + 1e-6)
	assert.NoError(t, checkResolved(&edge, 1e-4))
}

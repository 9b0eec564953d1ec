package psychro

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ReadSamples(t *testing.T) {
	in := `dry_bulb_temperature, relative_humidity, total_pressure
25,0.5,
30,,90000
,0.4,
`
	samples, err := ReadSamples(strings.NewReader(in), atm, SIUnits())
	require.NoError(t, err)
	require.Len(t, samples, 3)

	assert.Equal(t, []Property{PropDryBulb, PropRelativeHumidity}, samples[0].Known())
	P, _ := samples[0].Get(PropTotalPressure)
	assert.Equal(t, atm, P)

	assert.Equal(t, []Property{PropDryBulb}, samples[1].Known())
	P, _ = samples[1].Get(PropTotalPressure)
	assert.Equal(t, 90000.0, P)

	rh, ok := samples[2].Get(PropRelativeHumidity)
	assert.True(t, ok)
	assert.Equal(t, 0.4, rh)
}

// 列ごとに単位を換算する
func Test_ReadSamples_Units(t *testing.T) {
	in := `dry_bulb_temperature,relative_humidity,total_pressure,total_enthalpy,specific_volume
77,50,14.6959,,
,,,21.6,13.7
`
	u := Units{
		Temperature:    Fahrenheit,
		Pressure:       PSI,
		Enthalpy:       BtuPerPound,
		SpecificHeat:   BtuPerPoundRankine,
		SpecificVolume: CubicFootPerPound,
		RHPercent:      true,
	}
	samples, err := ReadSamples(strings.NewReader(in), atm, u)
	require.NoError(t, err)
	require.Len(t, samples, 2)

	db, _ := samples[0].Get(PropDryBulb)
	assert.InDelta(t, 25, db, 1e-9)
	rh, _ := samples[0].Get(PropRelativeHumidity)
	assert.InDelta(t, 0.5, rh, 1e-12)
	P, _ := samples[0].Get(PropTotalPressure)
	assert.InDelta(t, atm, P, 0.5)

	// 全圧の既定値は換算しない
	P, _ = samples[1].Get(PropTotalPressure)
	assert.Equal(t, atm, P)
	H, _ := samples[1].Get(PropEnthalpy)
	assert.InDelta(t, 50.2416, H, 1e-4)
	v, _ := samples[1].Get(PropSpecificVolume)
	assert.InDelta(t, 0.85526, v, 1e-5)
}

func Test_ReadSamples_Errors(t *testing.T) {
	_, err := ReadSamples(strings.NewReader(""), atm, SIUnits())
	assert.ErrorContains(t, err, "empty input")

	_, err = ReadSamples(strings.NewReader("temperature,relative_humidity\n25,0.5\n"), atm, SIUnits())
	assert.ErrorContains(t, err, "unknown property")

	_, err = ReadSamples(strings.NewReader("dry_bulb_temperature,relative_humidity\n25,0.5\n20,abc\n"), atm, SIUnits())
	assert.ErrorContains(t, err, "row 2, relative_humidity")

	_, err = ReadSamples(strings.NewReader("dry_bulb_temperature,relative_humidity\n25,0.5,1\n"), atm, SIUnits())
	assert.ErrorContains(t, err, "row 1")
}

// 失敗した行があっても他の行は計算され、順序は入力どおり
func Test_ResolveBatch(t *testing.T) {
	samples := []*PropertySet{}
	for i := 0; i < 40; i++ {
		samples = append(samples, NewPropertySet(atm).Set(PropDryBulb, float64(i)).Set(PropRelativeHumidity, 0.5))
	}
	samples[7] = NewPropertySet(atm).Set(PropDryBulb, 20)
	samples[13] = NewPropertySet(atm).Set(PropDryBulb, 20).Set(PropRelativeHumidity, 1.5)

	results := defaultResolver.ResolveBatch(samples)
	require.Len(t, results, len(samples))

	for i, r := range results {
		assert.Equal(t, i+1, r.Row)
		switch i {
		case 7:
			assert.ErrorIs(t, r.Err, ErrInsufficientData)
			assert.Nil(t, r.State)
		case 13:
			assert.ErrorIs(t, r.Err, ErrInvalidInput)
		default:
			if assert.NoError(t, r.Err, "row %d", r.Row) {
				assert.Equal(t, float64(i), r.State.DryBulb)
			}
		}
	}
}

func Test_ResolveBatch_Empty(t *testing.T) {
	assert.Empty(t, defaultResolver.ResolveBatch(nil))
}

func Test_Summarize(t *testing.T) {
	results := defaultResolver.ResolveBatch([]*PropertySet{
		NewPropertySet(atm).Set(PropDryBulb, 20).Set(PropRelativeHumidity, 0.5),
		NewPropertySet(atm).Set(PropDryBulb, 30).Set(PropRelativeHumidity, 0.5),
		NewPropertySet(atm).Set(PropDryBulb, 30),
	})

	summaries := Summarize(results)
	require.Len(t, summaries, len(Properties))

	db := summaries[0]
	assert.Equal(t, PropDryBulb, db.Property)
	assert.Equal(t, 2, db.Count)
	assert.InDelta(t, 25, db.Mean, 1e-12)
	assert.InDelta(t, 7.0710678, db.StdDev, 1e-6)
	assert.Equal(t, 20.0, db.Min)
	assert.Equal(t, 30.0, db.Max)

	rh := summaries[4]
	assert.Equal(t, PropRelativeHumidity, rh.Property)
	assert.InDelta(t, 0, rh.StdDev, 1e-12)

	// 1行だけの場合
	one := Summarize(results[:1])
	assert.Equal(t, 20.0, one[0].Mean)
	assert.Equal(t, 0.0, one[0].StdDev)

	assert.Empty(t, Summarize(results[2:]))
}

package psychro

import "fmt"

//--------------------------------------
// 単位換算
//--------------------------------------

type TemperatureUnit string

const (
	Celsius    TemperatureUnit = "C"
	Fahrenheit TemperatureUnit = "F"
	Kelvin     TemperatureUnit = "K"
	Rankine    TemperatureUnit = "R"
)

type PressureUnit string

const (
	Pascal       PressureUnit = "Pa"
	Kilopascal   PressureUnit = "kPa"
	Hectopascal  PressureUnit = "hPa"
	Bar          PressureUnit = "bar"
	Atmosphere   PressureUnit = "atm"
	PSI          PressureUnit = "psi"
	MillimeterHg PressureUnit = "mmHg"
	Torr         PressureUnit = "torr"
)

type EnthalpyUnit string

const (
	KilojoulePerKilogram EnthalpyUnit = "kJ/kg"
	BtuPerPound          EnthalpyUnit = "Btu/lb"
)

type SpecificHeatUnit string

const (
	KilojoulePerKilogramKelvin SpecificHeatUnit = "kJ/kgK"
	BtuPerPoundRankine         SpecificHeatUnit = "Btu/lbR"
)

type SpecificVolumeUnit string

const (
	CubicMeterPerKilogram SpecificVolumeUnit = "m3/kg"
	CubicFootPerPound     SpecificVolumeUnit = "ft3/lb"
	LiterPerKilogram      SpecificVolumeUnit = "L/kg"
)

// 1単位あたりの kJ/kg (国際蒸気表の Btu)
var kilojoulesPerKilogramPer = map[EnthalpyUnit]float64{
	KilojoulePerKilogram: 1,
	BtuPerPound:          2.326,
}

// 1単位あたりの kJ/(kg·K)
var kilojoulesPerKilogramKelvinPer = map[SpecificHeatUnit]float64{
	KilojoulePerKilogramKelvin: 1,
	BtuPerPoundRankine:         4.1868,
}

// 1単位あたりの m³/kg
var cubicMetersPerKilogramPer = map[SpecificVolumeUnit]float64{
	CubicMeterPerKilogram: 1,
	CubicFootPerPound:     0.028316846592 / 0.45359237,
	LiterPerKilogram:      1e-3,
}

// 1単位あたりの Pa
var pascalsPer = map[PressureUnit]float64{
	Pascal:       1,
	Kilopascal:   1000,
	Hectopascal:  100,
	Bar:          1e5,
	Atmosphere:   101325,
	PSI:          6894.757293168,
	MillimeterHg: 133.322387415,
	Torr:         101325.0 / 760.0,
}

func toCelsius(v float64, u TemperatureUnit) (float64, error) {
	switch u {
	case Celsius:
		return v, nil
	case Fahrenheit:
		return (v - 32) * 5 / 9, nil
	case Kelvin:
		return v - kelvin, nil
	case Rankine:
		return (v - 491.67) * 5 / 9, nil
	}
	return 0, fmt.Errorf("unknown temperature unit %q", u)
}

func fromCelsius(c float64, u TemperatureUnit) (float64, error) {
	switch u {
	case Celsius:
		return c, nil
	case Fahrenheit:
		return c*9/5 + 32, nil
	case Kelvin:
		return c + kelvin, nil
	case Rankine:
		return c*9/5 + 491.67, nil
	}
	return 0, fmt.Errorf("unknown temperature unit %q", u)
}

// 温度 v を単位 from から to へ換算する
func ConvertTemperature(v float64, from TemperatureUnit, to TemperatureUnit) (float64, error) {
	c, err := toCelsius(v, from)
	if err != nil {
		return 0, err
	}
	return fromCelsius(c, to)
}

// 比例関係にある単位間の換算。factors は基準単位に対する1単位あたりの量。
func convertLinear[U ~string](kind string, factors map[U]float64, v float64, from U, to U) (float64, error) {
	a, ok := factors[from]
	if !ok {
		return 0, fmt.Errorf("unknown %s unit %q", kind, from)
	}
	b, ok := factors[to]
	if !ok {
		return 0, fmt.Errorf("unknown %s unit %q", kind, to)
	}
	return v * a / b, nil
}

// 圧力 v を単位 from から to へ換算する
func ConvertPressure(v float64, from PressureUnit, to PressureUnit) (float64, error) {
	return convertLinear("pressure", pascalsPer, v, from, to)
}

// 比エンタルピー v を単位 from から to へ換算する
func ConvertEnthalpy(v float64, from EnthalpyUnit, to EnthalpyUnit) (float64, error) {
	return convertLinear("enthalpy", kilojoulesPerKilogramPer, v, from, to)
}

// 定圧比熱 v を単位 from から to へ換算する
func ConvertSpecificHeat(v float64, from SpecificHeatUnit, to SpecificHeatUnit) (float64, error) {
	return convertLinear("specific heat", kilojoulesPerKilogramKelvinPer, v, from, to)
}

// 比容積 v を単位 from から to へ換算する
func ConvertSpecificVolume(v float64, from SpecificVolumeUnit, to SpecificVolumeUnit) (float64, error) {
	return convertLinear("specific volume", cubicMetersPerKilogramPer, v, from, to)
}

// 相対湿度 [%] → [-]
func PercentToFraction(percent float64) float64 {
	return percent / 100
}

// 相対湿度 [-] → [%]
func FractionToPercent(fraction float64) float64 {
	return fraction * 100
}

// 入力値の単位。ToSI で計算に用いる単位 (℃, Pa, kJ/kg, kJ/(kg·K), m³/kg, 相対湿度 [-]) に換算する。
type Units struct {
	Temperature    TemperatureUnit
	Pressure       PressureUnit
	Enthalpy       EnthalpyUnit
	SpecificHeat   SpecificHeatUnit
	SpecificVolume SpecificVolumeUnit
	RHPercent      bool // 相対湿度を % で与える
}

func SIUnits() Units {
	return Units{
		Temperature:    Celsius,
		Pressure:       Pascal,
		Enthalpy:       KilojoulePerKilogram,
		SpecificHeat:   KilojoulePerKilogramKelvin,
		SpecificVolume: CubicMeterPerKilogram,
	}
}

// 状態量 p の値 v を計算に用いる単位へ換算する
func (u Units) ToSI(p Property, v float64) (float64, error) {
	switch p {
	case PropDryBulb, PropWetBulb, PropDewPoint:
		return ConvertTemperature(v, u.Temperature, Celsius)
	case PropVaporPressure, PropTotalPressure:
		return ConvertPressure(v, u.Pressure, Pascal)
	case PropEnthalpy:
		return ConvertEnthalpy(v, u.Enthalpy, KilojoulePerKilogram)
	case PropSpecificHeat:
		return ConvertSpecificHeat(v, u.SpecificHeat, KilojoulePerKilogramKelvin)
	case PropSpecificVolume:
		return ConvertSpecificVolume(v, u.SpecificVolume, CubicMeterPerKilogram)
	case PropRelativeHumidity:
		if u.RHPercent {
			return PercentToFraction(v), nil
		}
	}
	return v, nil
}

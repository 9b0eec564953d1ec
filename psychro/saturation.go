package psychro

import (
	"fmt"
	"math"
)

//--------------------------------------
// 飽和水蒸気圧
//--------------------------------------

// 飽和水蒸気圧の近似式の係数
// Huang (2018), J. Appl. Meteor. Climatol. 57(6) の水面上の式
const (
	satA = 34.494
	satB = 4924.99
	satC = 237.1
	satD = 105.0
	satE = 1.57
)

// 水と乾燥空気の分子量の比 [-]
const molarMassRatio = 18.02 / 28.97

// 気温 T [℃] における飽和水蒸気圧 [Pa] を求める。
// 近似式の適用範囲はおおむね -10～70℃。
func PSat(T float64) float64 {
	return math.Exp(satA-satB/(T+satC)) / math.Pow(T+satD, satE)
}

// 飽和水蒸気圧の温度微分 dPsat/dT [Pa/℃]
func DPSatDT(T float64) float64 {
	return PSat(T) * (satB/((T+satC)*(T+satC)) - satE/(T+satD))
}

// 気温 T [℃], 全圧 P [Pa] における飽和重量絶対湿度 [kg/kg(DA)]
func SaturationHumidityRatio(T float64, P float64) float64 {
	return HumidityRatioFromVaporPressure(PSat(T), P)
}

// PSat の結果が有限かつ正であることを確認する。
// 適用範囲外の温度では NaN や Inf になりうるため、計算失敗として扱う。
func checkedPSat(T float64) (float64, error) {
	p := PSat(T)
	if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
		return 0, &Error{
			Kind:  NumericConvergenceFailure,
			Msg:   fmt.Sprintf("saturation pressure is degenerate at %g °C", T),
			Value: p,
		}
	}
	return p, nil
}

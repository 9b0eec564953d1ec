package psychro

import (
	"fmt"
	"math"
)

//--------------------------------------
// 湿り空気の状態式
//--------------------------------------

const (
	RDryAir      = 287.0529 // 乾燥空気の気体定数 [J/(kg·K)]
	RWaterVapor  = 461.520  // 水蒸気の気体定数 [J/(kg·K)]
	cpDryAir     = 1.005    // 乾燥空気の定圧比熱 [kJ/(kg·K)]
	cpWaterVapor = 1.88     // 水蒸気の定圧比熱 [kJ/(kg·K)]
	latentHeat   = 2501.4   // 0℃の水の蒸発潜熱 [kJ/kg]
	kelvin       = 273.15
)

// 比エンタルピー H [kJ/kg(DA)]
//
//	T: 乾球温度 [℃]
//	W: 重量絶対湿度 [kg/kg(DA)]
func Enthalpy(T float64, W float64) float64 {
	return (cpDryAir+cpWaterVapor*W)*T + latentHeat*W
}

// 比エンタルピー H と乾球温度 T から重量絶対湿度 W を求める
func HumidityRatioFromEnthalpy(T float64, H float64) float64 {
	return (H - cpDryAir*T) / (cpWaterVapor*T + latentHeat)
}

// 比エンタルピー H と重量絶対湿度 W から乾球温度 T を求める
func DryBulbFromEnthalpy(H float64, W float64) float64 {
	return (H - latentHeat*W) / (cpDryAir + cpWaterVapor*W)
}

// 水蒸気分圧 Pv [Pa] と全圧 P [Pa] から重量絶対湿度 [kg/kg(DA)] を求める
func HumidityRatioFromVaporPressure(Pv float64, P float64) float64 {
	return molarMassRatio * Pv / (P - Pv)
}

// 重量絶対湿度 W と全圧 P [Pa] から水蒸気分圧 [Pa] を求める
func VaporPressureFromHumidityRatio(W float64, P float64) float64 {
	return 28.97 * W * P / (18.02 + 28.97*W)
}

// 湿り空気の定圧比熱 [kJ/(kg·K)]。
// 乾燥空気・水蒸気の比熱は温度・圧力によらず一定とする。
func SpecificHeat(W float64) float64 {
	return cpDryAir + cpWaterVapor*W
}

// 定圧比熱から重量絶対湿度を求める
func HumidityRatioFromSpecificHeat(cp float64) float64 {
	return (cp - cpDryAir) / cpWaterVapor
}

// 理想気体の状態方程式による比容積 [m³/kg(DA)]
func SpecificVolume(W float64, T float64, P float64) float64 {
	return (RDryAir/P + RWaterVapor/P*W) * (T + kelvin)
}

// 比容積 v と乾球温度 T から重量絶対湿度を求める
func HumidityRatioFromSpecificVolume(v float64, T float64, P float64) float64 {
	return (v/(T+kelvin) - RDryAir/P) / (RWaterVapor / P)
}

// 比容積 v と重量絶対湿度 W から乾球温度を求める
func DryBulbFromSpecificVolume(v float64, W float64, P float64) float64 {
	return v*P/(RDryAir+RWaterVapor*W) - kelvin
}

// 比エンタルピー H と比容積 v から重量絶対湿度を求める。
//
// 比容積の式を T について解いてエンタルピーの式へ代入すると
// W についての二次方程式 A·W² + B·W + C = 0 が得られる。
// 正の根がちょうど1つのときのみ解とする。
func HumidityRatioFromEnthalpyAndVolume(H float64, v float64, P float64) (float64, error) {
	a0 := v*P - kelvin*RDryAir
	a1 := -kelvin * RWaterVapor

	A := cpWaterVapor*a1 + latentHeat*RWaterVapor
	B := cpDryAir*a1 + cpWaterVapor*a0 + latentHeat*RDryAir - H*RWaterVapor
	C := cpDryAir*a0 - H*RDryAir

	D := B*B - 4*A*C
	if D < 0 || A == 0 {
		return 0, &Error{
			Kind:  NoPhysicalSolution,
			Msg:   fmt.Sprintf("no real humidity ratio for enthalpy %g kJ/kg and specific volume %g m³/kg", H, v),
			Value: D,
		}
	}

	sq := math.Sqrt(D)
	r1 := (-B + sq) / (2 * A)
	r2 := (-B - sq) / (2 * A)

	switch {
	case r1 > 0 && r2 <= 0:
		return r1, nil
	case r2 > 0 && r1 <= 0:
		return r2, nil
	}
	return 0, &Error{
		Kind:  NoPhysicalSolution,
		Msg:   fmt.Sprintf("humidity ratio roots %g and %g have no unique positive value", r1, r2),
		Value: r1,
		Bound: r2,
	}
}

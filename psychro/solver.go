package psychro

import (
	"fmt"
	"math"
)

//--------------------------------------
// 反復解法
//--------------------------------------

// Residual は x における差 (計算値 - 既知の目標値) とその傾き d(差)/dx を返す。
type Residual func(x float64) (diff float64, slope float64)

// 差の二乗 f = diff² を目的関数とするニュートン型の反復
//
//	x ← x - f(x)/f'(x)
//
// を |x_next - x| < Tolerance となるまで繰り返す。
type Solver struct {
	Tolerance     float64
	InitialGuess  float64
	MaxIterations int
}

// name はエラーメッセージに用いる求める量の名前
func (s Solver) Solve(name string, f Residual) (float64, error) {
	x := s.InitialGuess
	step := math.Inf(1)

	for i := 0; i < s.MaxIterations; i++ {
		diff, slope := f(x)
		if diff == 0 {
			return x, nil
		}

		sq := diff * diff
		grad := 2 * diff * slope
		next := x - sq/grad

		if math.IsNaN(next) || math.IsInf(next, 0) {
			return 0, &Error{
				Kind:  NumericConvergenceFailure,
				Msg:   fmt.Sprintf("%s diverged at iteration %d (x=%g, slope=%g)", name, i+1, x, slope),
				Value: x,
			}
		}

		step = math.Abs(next - x)
		if step < s.Tolerance {
			return next, nil
		}
		x = next
	}

	return 0, &Error{
		Kind:  NumericConvergenceFailure,
		Msg:   fmt.Sprintf("%s did not converge within %d iterations (last step %g)", name, s.MaxIterations, step),
		Value: x,
		Bound: s.Tolerance,
	}
}

// 水蒸気分圧 Pv [Pa] から露点温度 [℃] を求める。
// Psat は単調増加なので Psat(T) = Pv の根は一意。
func (s Solver) DewPoint(Pv float64) (float64, error) {
	if !(Pv > 0) {
		return 0, &Error{
			Kind:  NoPhysicalSolution,
			Msg:   fmt.Sprintf("dew point is undefined for vapor pressure %g Pa", Pv),
			Value: Pv,
		}
	}
	return s.Solve("dew point", func(T float64) (float64, float64) {
		return PSat(T) - Pv, DPSatDT(T)
	})
}

// 比エンタルピー H [kJ/kg(DA)] と全圧 P [Pa] から湿球温度 [℃] を求める。
// 湿球温度は同じエンタルピーを持つ飽和状態の温度として扱う。
func (s Solver) WetBulb(H float64, P float64) (float64, error) {
	return s.Solve("wet bulb temperature", func(T float64) (float64, float64) {
		ps := PSat(T)
		Ws := HumidityRatioFromVaporPressure(ps, P)
		dWs := molarMassRatio * P * DPSatDT(T) / ((P - ps) * (P - ps))

		diff := Enthalpy(T, Ws) - H
		slope := cpDryAir + cpWaterVapor*Ws + (cpWaterVapor*T+latentHeat)*dWs
		return diff, slope
	})
}

// 相対湿度 RH [-] と比エンタルピー H から乾球温度 [℃] を求める。
// Pv = RH·Psat(T) をエンタルピーの式に代入して T について解く。
func (s Solver) DryBulbFromRHEnthalpy(RH float64, H float64, P float64) (float64, error) {
	return s.Solve("dry bulb temperature", func(T float64) (float64, float64) {
		Pv := RH * PSat(T)
		W := HumidityRatioFromVaporPressure(Pv, P)
		dW := molarMassRatio * P * RH * DPSatDT(T) / ((P - Pv) * (P - Pv))

		diff := cpDryAir*T + (cpWaterVapor*T+latentHeat)*W - H
		slope := cpDryAir + cpWaterVapor*W + (cpWaterVapor*T+latentHeat)*dW
		return diff, slope
	})
}

// 湿球温度 WB と比エンタルピー H から、その飽和状態の温度 [℃] を求める。
// H と WB から得られる飽和水蒸気圧を陽に計算し、露点温度の解法に委ねる。
// H と WB が整合していれば結果は WB に一致する。
func (s Solver) DryBulbFromWetBulbEnthalpy(WB float64, H float64, P float64) (float64, error) {
	moist := H - cpDryAir*WB
	if !(moist > 0) {
		return 0, &Error{
			Kind:  NoPhysicalSolution,
			Msg:   fmt.Sprintf("enthalpy %g kJ/kg is too low for wet bulb %g °C", H, WB),
			Value: H,
			Bound: cpDryAir * WB,
		}
	}
	ps := P * 28.97 * moist / (28.97*moist + 18.02*(cpWaterVapor*WB+latentHeat))
	return s.DewPoint(ps)
}

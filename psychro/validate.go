package psychro

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

//--------------------------------------
// 入力値・計算結果の検証
//--------------------------------------

// 利用者が与えた値どうしの整合性を確認する。
// 未知の量（これから計算する量）は対象外。
func Validate(ps *PropertySet) error {
	for _, p := range allProperties {
		if v, ok := ps.Get(p); ok && (math.IsNaN(v) || math.IsInf(v, 0)) {
			return &Error{Kind: InvalidInput, Msg: fmt.Sprintf("%s is not finite", p), Value: v}
		}
	}

	P, hasP := ps.Get(PropTotalPressure)
	if hasP && P <= 0 {
		return &Error{Kind: InvalidInput, Msg: fmt.Sprintf("total pressure must be positive, got %g", P), Value: P}
	}

	db, hasDB := ps.Get(PropDryBulb)
	wb, hasWB := ps.Get(PropWetBulb)
	dp, hasDP := ps.Get(PropDewPoint)

	if hasDB && hasWB && wb > db {
		return invalidInput("wet bulb exceeds dry bulb", wb, db)
	}
	if hasDB && hasDP && dp > db {
		return invalidInput("dew point exceeds dry bulb", dp, db)
	}
	if hasWB && hasDP && dp > wb {
		return invalidInput("dew point exceeds wet bulb", dp, wb)
	}

	if rh, ok := ps.Get(PropRelativeHumidity); ok {
		if rh > 1 {
			return invalidInput("relative humidity exceeds 1.0", rh, 1)
		}
		if rh < 0 {
			return &Error{Kind: InvalidInput, Msg: fmt.Sprintf("relative humidity is negative, got %g", rh), Value: rh}
		}
	}

	if W, ok := ps.Get(PropHumidityRatio); ok {
		if W < 0 {
			return &Error{Kind: InvalidInput, Msg: fmt.Sprintf("humidity ratio is negative, got %g", W), Value: W}
		}
		if hasDB && hasP {
			if Ws := SaturationHumidityRatio(db, P); W > Ws {
				return invalidInput("humidity ratio exceeds saturation humidity ratio", W, Ws)
			}
		}
	}

	if pv, ok := ps.Get(PropVaporPressure); ok {
		if pv < 0 {
			return &Error{Kind: InvalidInput, Msg: fmt.Sprintf("partial vapor pressure is negative, got %g", pv), Value: pv}
		}
		if hasP && pv >= P {
			return invalidInput("partial vapor pressure exceeds total pressure", pv, P)
		}
		if hasDB {
			if psat := PSat(db); pv > psat {
				return invalidInput("partial vapor pressure exceeds saturation pressure", pv, psat)
			}
		}
	}

	if v, ok := ps.Get(PropSpecificVolume); ok && v <= 0 {
		return &Error{Kind: InvalidInput, Msg: fmt.Sprintf("specific volume must be positive, got %g", v), Value: v}
	}

	if cp, ok := ps.Get(PropSpecificHeat); ok && cp < cpDryAir {
		return &Error{
			Kind:  InvalidInput,
			Msg:   fmt.Sprintf("specific heat capacity is below that of dry air, got %g", cp),
			Value: cp,
			Bound: cpDryAir,
		}
	}

	return nil
}

// 与えられた湿球温度と比エンタルピーが同じ飽和状態を指しているかを確認する
func checkSaturationPair(s Solver, wb float64, H float64, P float64) error {
	t, err := s.DryBulbFromWetBulbEnthalpy(wb, H, P)
	if err != nil {
		var e *Error
		if errors.As(err, &e) && e.Kind == NoPhysicalSolution {
			return &Error{Kind: InvalidInput, Msg: e.Msg, Value: e.Value, Bound: e.Bound}
		}
		return err
	}
	if tol := 10 * s.Tolerance; !scalar.EqualWithinAbs(t, wb, tol) {
		return &Error{
			Kind:  InvalidInput,
			Msg:   fmt.Sprintf("enthalpy %g kJ/kg is inconsistent with wet bulb %g °C (saturates at %g °C)", H, wb, t),
			Value: t,
			Bound: wb,
		}
	}
	return nil
}

func leq(a float64, b float64, tol float64) bool {
	return a <= b || scalar.EqualWithinAbsOrRel(a, b, tol, tol)
}

// 解決後の状態点が物理的な順序・範囲を満たすかを確認する。
// 温度の順序と相対湿度は厳密に、飽和の上限は反復計算の誤差を見込み許容差 tol の範囲で比較する。
func checkResolved(s *State, tol float64) error {
	for _, p := range allProperties {
		if v := s.Get(p); math.IsNaN(v) || math.IsInf(v, 0) {
			return &Error{Kind: NumericConvergenceFailure, Msg: fmt.Sprintf("%s is not finite", p), Value: v}
		}
	}

	if s.DewPoint > s.WetBulb {
		return invalidInput("dew point exceeds wet bulb", s.DewPoint, s.WetBulb)
	}
	if s.WetBulb > s.DryBulb {
		return invalidInput("wet bulb exceeds dry bulb", s.WetBulb, s.DryBulb)
	}
	if s.RelativeHumidity > 1 {
		return invalidInput("relative humidity exceeds 1.0", s.RelativeHumidity, 1)
	}
	for _, p := range []Property{PropRelativeHumidity, PropHumidityRatio, PropVaporPressure} {
		if v := s.Get(p); v < 0 {
			return &Error{Kind: InvalidInput, Msg: fmt.Sprintf("%s is negative, got %g", p, v), Value: v}
		}
	}
	if psat := PSat(s.DryBulb); !leq(s.VaporPressure, psat, tol) {
		return invalidInput("partial vapor pressure exceeds saturation pressure", s.VaporPressure, psat)
	}
	if Ws := SaturationHumidityRatio(s.DryBulb, s.TotalPressure); Ws < 0 || !leq(s.HumidityRatio, Ws, tol) {
		return invalidInput("humidity ratio exceeds saturation humidity ratio", s.HumidityRatio, Ws)
	}
	return nil
}

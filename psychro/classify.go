package psychro

import "fmt"

//--------------------------------------
// 既知量の組合せの判定
//--------------------------------------

// 互いに換算可能な状態量のまとまり。
// 同じまとまりに属する量は独立な情報として1つと数える。
type factGroup int

const (
	groupDryBulb    factGroup = iota // 乾球温度
	groupSaturation                  // 湿球温度・比エンタルピー
	groupMoisture                    // 重量絶対湿度・水蒸気分圧・露点温度・定圧比熱
	groupRH                          // 相対湿度
	groupVolume                      // 比容積
)

func groupOf(p Property) factGroup {
	switch p {
	case PropDryBulb:
		return groupDryBulb
	case PropWetBulb, PropEnthalpy:
		return groupSaturation
	case PropHumidityRatio, PropVaporPressure, PropDewPoint, PropSpecificHeat:
		return groupMoisture
	case PropRelativeHumidity:
		return groupRH
	case PropSpecificVolume:
		return groupVolume
	}
	panic(fmt.Sprintf("psychro: property %s has no group", p))
}

// 状態点を決めるのに十分な情報があるかを判定する。
// 全圧が既知で、かつ独立な情報が2つ以上あること。
func Determinable(ps *PropertySet) error {
	if !ps.Has(PropTotalPressure) {
		return &Error{Kind: InsufficientData, Msg: "total pressure is required"}
	}

	if n := countGroups(ps); n < 2 {
		return &Error{
			Kind:  InsufficientData,
			Msg:   fmt.Sprintf("need two independent properties, got %d", n),
			Value: float64(n),
			Bound: 2,
		}
	}
	return nil
}

// 与えられた独立な情報の数
func countGroups(ps *PropertySet) int {
	groups := map[factGroup]bool{}
	for _, p := range ps.Known() {
		groups[groupOf(p)] = true
	}
	return len(groups)
}

// 縮約後に既知となっている2量の組合せ
type KnownPairKind int

const (
	CaseUndetermined            KnownPairKind = iota
	CaseDryBulbWetBulb                        // 1: 乾球温度, 湿球温度
	CaseDryBulbHumidityRatio                  // 2: 乾球温度, 重量絶対湿度
	CaseDryBulbRelativeHumidity               // 3: 乾球温度, 相対湿度
	CaseDryBulbSpecificVolume                 // 4: 乾球温度, 比容積
	CaseWetBulbHumidityRatio                  // 5: 湿球温度, 重量絶対湿度
	CaseWetBulbRelativeHumidity               // 6: 湿球温度, 相対湿度
	CaseWetBulbSpecificVolume                 // 7: 湿球温度, 比容積
	CaseHumidityRatioRelativeHumidity         // 8: 重量絶対湿度, 相対湿度
	CaseHumidityRatioEnthalpy                 // 9: 重量絶対湿度, 比エンタルピー
	CaseHumidityRatioSpecificVolume           // 10: 重量絶対湿度, 比容積
	CaseRelativeHumiditySpecificVolume        // 11: 相対湿度, 比容積 (未対応)
)

var caseNames = [...]string{
	"undetermined",
	"dry bulb + wet bulb",
	"dry bulb + humidity ratio",
	"dry bulb + relative humidity",
	"dry bulb + specific volume",
	"wet bulb + humidity ratio",
	"wet bulb + relative humidity",
	"wet bulb + specific volume",
	"humidity ratio + relative humidity",
	"humidity ratio + enthalpy",
	"humidity ratio + specific volume",
	"relative humidity + specific volume",
}

func (k KnownPairKind) String() string {
	if k < 0 || int(k) >= len(caseNames) {
		return fmt.Sprintf("KnownPairKind(%d)", int(k))
	}
	return caseNames[k]
}

// 計算途中の状態点。添字は Property。
type point struct {
	v     [PropTotalPressure + 1]float64
	known [PropTotalPressure + 1]bool
	given [PropTotalPressure + 1]bool // 利用者が与えた量
}

func newPoint(ps *PropertySet) *point {
	pt := &point{}
	for p := PropDryBulb; p <= PropTotalPressure; p++ {
		if v, ok := ps.Get(p); ok {
			pt.v[p] = v
			pt.known[p] = true
			pt.given[p] = true
		}
	}
	return pt
}

func (pt *point) set(p Property, v float64) {
	pt.v[p] = v
	pt.known[p] = true
}

// 縮約後の状態点から組合せを1つ選ぶ。
// 組合せが複数成り立つ（過剰に与えられた）場合は番号の小さいものを優先する。
func classify(pt *point) KnownPairKind {
	db := pt.known[PropDryBulb]
	sat := pt.known[PropWetBulb] && pt.known[PropEnthalpy]
	w := pt.known[PropHumidityRatio]
	rh := pt.known[PropRelativeHumidity]
	v := pt.known[PropSpecificVolume]

	switch {
	case db && sat:
		return CaseDryBulbWetBulb
	case db && w:
		return CaseDryBulbHumidityRatio
	case db && rh:
		return CaseDryBulbRelativeHumidity
	case db && v:
		return CaseDryBulbSpecificVolume
	case sat && w && pt.given[PropWetBulb]:
		return CaseWetBulbHumidityRatio
	case sat && rh:
		return CaseWetBulbRelativeHumidity
	case sat && v:
		return CaseWetBulbSpecificVolume
	case w && rh:
		return CaseHumidityRatioRelativeHumidity
	case sat && w:
		return CaseHumidityRatioEnthalpy
	case w && v:
		return CaseHumidityRatioSpecificVolume
	case rh && v:
		return CaseRelativeHumiditySpecificVolume
	}
	return CaseUndetermined
}

// 冗長な入力を各まとまりの代表値へ換算する。
// 順序は 定圧比熱→重量絶対湿度, 露点温度→水蒸気分圧, 水蒸気分圧⇔重量絶対湿度, 比エンタルピー⇔湿球温度。
// 同じまとまりの量が複数与えられた場合は後の段で得た値で上書きする。
func reduce(pt *point, s Solver) error {
	P := pt.v[PropTotalPressure]

	// 1. 定圧比熱 → 重量絶対湿度
	if pt.known[PropSpecificHeat] {
		pt.set(PropHumidityRatio, HumidityRatioFromSpecificHeat(pt.v[PropSpecificHeat]))
	}

	// 2. 露点温度 → 水蒸気分圧
	if pt.known[PropDewPoint] {
		pv, err := checkedPSat(pt.v[PropDewPoint])
		if err != nil {
			return err
		}
		pt.set(PropVaporPressure, pv)
	}

	// 3. 水蒸気分圧 ⇔ 重量絶対湿度
	if pt.known[PropVaporPressure] {
		pt.set(PropHumidityRatio, HumidityRatioFromVaporPressure(pt.v[PropVaporPressure], P))
	} else if pt.known[PropHumidityRatio] {
		pt.set(PropVaporPressure, VaporPressureFromHumidityRatio(pt.v[PropHumidityRatio], P))
	}

	// 4. 比エンタルピー ⇔ 湿球温度
	switch {
	case pt.known[PropEnthalpy] && pt.known[PropWetBulb]:
		if err := checkSaturationPair(s, pt.v[PropWetBulb], pt.v[PropEnthalpy], P); err != nil {
			return err
		}
	case pt.known[PropEnthalpy]:
		wb, err := s.WetBulb(pt.v[PropEnthalpy], P)
		if err != nil {
			return err
		}
		pt.set(PropWetBulb, wb)
	case pt.known[PropWetBulb]:
		pt.set(PropEnthalpy, Enthalpy(pt.v[PropWetBulb], SaturationHumidityRatio(pt.v[PropWetBulb], P)))
	}
	return nil
}

package psychro

import (
	"fmt"

	"github.com/hhkbp2/go-logging"
)

//--------------------------------------
// 状態点の決定
//--------------------------------------

var logger = logging.GetLogger("psychro")

// Resolver は既知の状態量から残りすべての状態量を求める。
// 状態を持たないため、複数のゴルーチンから同時に利用できる。
type Resolver struct {
	conf   Config
	solver Solver
}

func NewResolver(conf Config) (*Resolver, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{conf: conf, solver: conf.solver()}, nil
}

var defaultResolver = &Resolver{conf: DefaultConfig(), solver: DefaultConfig().solver()}

// 既定の設定で状態点を求める
func Resolve(ps *PropertySet) (*State, error) {
	return defaultResolver.Resolve(ps)
}

func (r *Resolver) Config() Config {
	return r.conf
}

// 既知の状態量 ps から状態点を求める。
// 失敗した場合は途中までの結果を返さず、*Error を返す。
func (r *Resolver) Resolve(ps *PropertySet) (*State, error) {
	if err := Determinable(ps); err != nil {
		return nil, err
	}
	if err := Validate(ps); err != nil {
		return nil, err
	}

	c := &calc{
		pt:    newPoint(ps),
		s:     r.solver,
		slack: 10 * r.solver.Tolerance,
	}
	c.P = c.pt.v[PropTotalPressure]

	if err := reduce(c.pt, c.s); err != nil {
		return nil, err
	}

	kind := classify(c.pt)
	logger.Debugf("状態点の計算: %s (P=%g Pa)", kind, c.P)
	if n := countGroups(ps); n > 2 {
		logger.Warnf("独立な状態量が %d 個与えられています。%s の組合せで計算し、他の値は再計算します", n, kind)
	}

	if err := c.dispatch(kind); err != nil {
		return nil, err
	}
	c.clampOrder()

	st, err := c.state(kind)
	if err != nil {
		return nil, err
	}
	if err := checkResolved(st, c.slack); err != nil {
		return nil, err
	}
	return st, nil
}

// 1回の計算の作業領域
type calc struct {
	pt    *point
	s     Solver
	P     float64
	slack float64 // 反復計算の誤差の許容幅
}

func (c *calc) get(p Property) float64 {
	return c.pt.v[p]
}

func (c *calc) set(p Property, v float64) {
	c.pt.set(p, v)
}

func (c *calc) dispatch(kind KnownPairKind) error {
	switch kind {
	case CaseDryBulbWetBulb:
		return c.dryBulbWetBulb()
	case CaseDryBulbHumidityRatio:
		return c.dryBulbHumidityRatio()
	case CaseDryBulbRelativeHumidity:
		return c.dryBulbRelativeHumidity()
	case CaseDryBulbSpecificVolume:
		return c.dryBulbSpecificVolume()
	case CaseWetBulbHumidityRatio, CaseHumidityRatioEnthalpy:
		return c.enthalpyHumidityRatio()
	case CaseWetBulbRelativeHumidity:
		return c.wetBulbRelativeHumidity()
	case CaseWetBulbSpecificVolume:
		return c.wetBulbSpecificVolume()
	case CaseHumidityRatioRelativeHumidity:
		return c.humidityRatioRelativeHumidity()
	case CaseHumidityRatioSpecificVolume:
		return c.humidityRatioSpecificVolume()
	case CaseRelativeHumiditySpecificVolume:
		// 相対湿度と比容積からの解法は定まっていない
		return &Error{Kind: UnsupportedCombination, Msg: "relative humidity with specific volume is not supported"}
	}
	return &Error{Kind: UnsupportedCombination, Msg: fmt.Sprintf("no handler for %s", kind)}
}

// 重量絶対湿度 W から水蒸気分圧を設定する
func (c *calc) setHumidityRatio(W float64) {
	c.set(PropHumidityRatio, W)
	c.set(PropVaporPressure, VaporPressureFromHumidityRatio(W, c.P))
}

// 水蒸気分圧と乾球温度から相対湿度を求める。
// 反復計算の誤差による 1 のわずかな超過は 1 に丸める。
func (c *calc) setRelativeHumidity() error {
	ps, err := checkedPSat(c.get(PropDryBulb))
	if err != nil {
		return err
	}
	rh := c.get(PropVaporPressure) / ps
	if rh > 1+c.slack {
		return invalidInput("relative humidity exceeds 1.0", rh, 1)
	}
	if rh > 1 {
		rh = 1
	}
	c.set(PropRelativeHumidity, rh)
	return nil
}

// 露点温度 ≤ 湿球温度 ≤ 乾球温度 の許容差以内の逆転を丸める。
// 利用者が与えた値は変えず、計算した側を合わせる。
func (c *calc) clampOrder() {
	c.clampBelow(PropDewPoint, PropWetBulb)
	c.clampBelow(PropWetBulb, PropDryBulb)
	c.clampBelow(PropDewPoint, PropWetBulb)
}

func (c *calc) clampBelow(lo Property, hi Property) {
	excess := c.get(lo) - c.get(hi)
	if excess <= 0 || excess > c.slack {
		return
	}
	if c.pt.given[lo] && !c.pt.given[hi] {
		c.set(hi, c.get(lo))
	} else {
		c.set(lo, c.get(hi))
	}
}

// 露点温度を求める。keep が真で露点温度が与えられている場合はその値を用いる。
func (c *calc) setDewPoint(keep bool) error {
	if keep && c.pt.given[PropDewPoint] {
		return nil
	}
	dp, err := c.s.DewPoint(c.get(PropVaporPressure))
	if err != nil {
		return err
	}
	c.set(PropDewPoint, dp)
	return nil
}

// 比エンタルピーから湿球温度を求める
func (c *calc) setWetBulb(H float64) error {
	c.set(PropEnthalpy, H)
	wb, err := c.s.WetBulb(H, c.P)
	if err != nil {
		return err
	}
	c.set(PropWetBulb, wb)
	return nil
}

func (c *calc) setSpecificVolume() {
	c.set(PropSpecificVolume, SpecificVolume(c.get(PropHumidityRatio), c.get(PropDryBulb), c.P))
}

func (c *calc) setSpecificHeat() {
	c.set(PropSpecificHeat, SpecificHeat(c.get(PropHumidityRatio)))
}

// ケース1: 乾球温度・湿球温度
func (c *calc) dryBulbWetBulb() error {
	c.setHumidityRatio(HumidityRatioFromEnthalpy(c.get(PropDryBulb), c.get(PropEnthalpy)))
	if err := c.setRelativeHumidity(); err != nil {
		return err
	}
	if err := c.setDewPoint(false); err != nil {
		return err
	}
	c.setSpecificVolume()
	c.setSpecificHeat()
	return nil
}

// ケース2: 乾球温度・重量絶対湿度
func (c *calc) dryBulbHumidityRatio() error {
	if err := c.setWetBulb(Enthalpy(c.get(PropDryBulb), c.get(PropHumidityRatio))); err != nil {
		return err
	}
	if err := c.setDewPoint(true); err != nil {
		return err
	}
	if err := c.setRelativeHumidity(); err != nil {
		return err
	}
	c.setSpecificVolume()
	c.setSpecificHeat()
	return nil
}

// ケース3: 乾球温度・相対湿度
func (c *calc) dryBulbRelativeHumidity() error {
	db := c.get(PropDryBulb)
	ps, err := checkedPSat(db)
	if err != nil {
		return err
	}
	pv := c.get(PropRelativeHumidity) * ps
	c.set(PropVaporPressure, pv)
	c.set(PropHumidityRatio, HumidityRatioFromVaporPressure(pv, c.P))
	if err := c.setDewPoint(false); err != nil {
		return err
	}
	if err := c.setWetBulb(Enthalpy(db, c.get(PropHumidityRatio))); err != nil {
		return err
	}
	c.setSpecificVolume()
	c.setSpecificHeat()
	return nil
}

// ケース4: 乾球温度・比容積
func (c *calc) dryBulbSpecificVolume() error {
	db := c.get(PropDryBulb)
	c.setHumidityRatio(HumidityRatioFromSpecificVolume(c.get(PropSpecificVolume), db, c.P))
	if err := c.setRelativeHumidity(); err != nil {
		return err
	}
	if err := c.setDewPoint(false); err != nil {
		return err
	}
	c.setSpecificHeat()
	return c.setWetBulb(Enthalpy(db, c.get(PropHumidityRatio)))
}

// ケース5, 9: 比エンタルピー（湿球温度）・重量絶対湿度
func (c *calc) enthalpyHumidityRatio() error {
	c.set(PropDryBulb, DryBulbFromEnthalpy(c.get(PropEnthalpy), c.get(PropHumidityRatio)))
	if err := c.setDewPoint(true); err != nil {
		return err
	}
	if err := c.setRelativeHumidity(); err != nil {
		return err
	}
	c.setSpecificVolume()
	c.setSpecificHeat()
	return nil
}

// ケース6: 湿球温度・相対湿度
func (c *calc) wetBulbRelativeHumidity() error {
	H := c.get(PropEnthalpy)
	db, err := c.s.DryBulbFromRHEnthalpy(c.get(PropRelativeHumidity), H, c.P)
	if err != nil {
		return err
	}
	c.set(PropDryBulb, db)
	c.setHumidityRatio(HumidityRatioFromEnthalpy(db, H))
	c.setSpecificVolume()
	c.setSpecificHeat()
	return c.setDewPoint(false)
}

// ケース7: 湿球温度・比容積
func (c *calc) wetBulbSpecificVolume() error {
	H := c.get(PropEnthalpy)
	W, err := HumidityRatioFromEnthalpyAndVolume(H, c.get(PropSpecificVolume), c.P)
	if err != nil {
		return err
	}
	c.set(PropDryBulb, DryBulbFromEnthalpy(H, W))
	c.setHumidityRatio(W)
	if err := c.setDewPoint(false); err != nil {
		return err
	}
	if err := c.setRelativeHumidity(); err != nil {
		return err
	}
	c.setSpecificHeat()
	return nil
}

// ケース8: 重量絶対湿度・相対湿度
// 乾球温度における飽和水蒸気圧は Pv/RH となるので、露点温度の解法で乾球温度を求める。
func (c *calc) humidityRatioRelativeHumidity() error {
	rh := c.get(PropRelativeHumidity)
	if rh <= 0 {
		return &Error{
			Kind:  NoPhysicalSolution,
			Msg:   "dry bulb is undetermined when relative humidity is zero",
			Value: rh,
		}
	}
	db, err := c.s.DewPoint(c.get(PropVaporPressure) / rh)
	if err != nil {
		return err
	}
	c.set(PropDryBulb, db)
	if err := c.setWetBulb(Enthalpy(db, c.get(PropHumidityRatio))); err != nil {
		return err
	}
	c.setSpecificHeat()
	if err := c.setDewPoint(true); err != nil {
		return err
	}
	c.setSpecificVolume()
	return nil
}

// ケース10: 重量絶対湿度・比容積
func (c *calc) humidityRatioSpecificVolume() error {
	W := c.get(PropHumidityRatio)
	db := DryBulbFromSpecificVolume(c.get(PropSpecificVolume), W, c.P)
	c.set(PropDryBulb, db)
	if err := c.setRelativeHumidity(); err != nil {
		return err
	}
	if err := c.setWetBulb(Enthalpy(db, W)); err != nil {
		return err
	}
	c.setSpecificHeat()
	return c.setDewPoint(true)
}

func (c *calc) state(kind KnownPairKind) (*State, error) {
	for _, p := range allProperties {
		if !c.pt.known[p] {
			return nil, &Error{
				Kind: UnsupportedCombination,
				Msg:  fmt.Sprintf("%s left %s undetermined", kind, p),
			}
		}
	}
	return &State{
		DryBulb:          c.get(PropDryBulb),
		WetBulb:          c.get(PropWetBulb),
		DewPoint:         c.get(PropDewPoint),
		HumidityRatio:    c.get(PropHumidityRatio),
		RelativeHumidity: c.get(PropRelativeHumidity),
		Enthalpy:         c.get(PropEnthalpy),
		VaporPressure:    c.get(PropVaporPressure),
		SpecificVolume:   c.get(PropSpecificVolume),
		SpecificHeat:     c.get(PropSpecificHeat),
		TotalPressure:    c.P,
		Case:             kind,
	}, nil
}

package psychro

import "fmt"

// 湿り空気の状態量
type Property int

const (
	PropDryBulb          Property = iota // 乾球温度 [℃]
	PropWetBulb                          // 湿球温度 [℃]
	PropDewPoint                         // 露点温度 [℃]
	PropHumidityRatio                    // 重量絶対湿度 [kg/kg(DA)]
	PropRelativeHumidity                 // 相対湿度 [-] (0～1)
	PropEnthalpy                         // 比エンタルピー [kJ/kg(DA)]
	PropVaporPressure                    // 水蒸気分圧 [Pa]
	PropSpecificVolume                   // 比容積 [m³/kg(DA)]
	PropSpecificHeat                     // 定圧比熱 [kJ/(kg·K)]
	PropTotalPressure                    // 全圧 [Pa]
)

// 全圧を除く9つの状態量
var Properties = []Property{
	PropDryBulb,
	PropWetBulb,
	PropDewPoint,
	PropHumidityRatio,
	PropRelativeHumidity,
	PropEnthalpy,
	PropVaporPressure,
	PropSpecificVolume,
	PropSpecificHeat,
}

var allProperties = append(append([]Property{}, Properties...), PropTotalPressure)

var propertyNames = [...]string{
	"dry_bulb_temperature",
	"wet_bulb_temperature",
	"dew_point_temperature",
	"humidity_ratio",
	"relative_humidity",
	"total_enthalpy",
	"partial_pressure_vapor",
	"specific_volume",
	"specific_heat_capacity",
	"total_pressure",
}

var propertyUnits = [...]string{
	"°C",
	"°C",
	"°C",
	"kg/kg",
	"-",
	"kJ/kg",
	"Pa",
	"m³/kg",
	"kJ/(kg·K)",
	"Pa",
}

func (p Property) String() string {
	if p < 0 || int(p) >= len(propertyNames) {
		return fmt.Sprintf("Property(%d)", int(p))
	}
	return propertyNames[p]
}

func (p Property) Unit() string {
	if p < 0 || int(p) >= len(propertyUnits) {
		return ""
	}
	return propertyUnits[p]
}

// 名前 (例: "dry_bulb_temperature") から状態量を得る
func ParseProperty(name string) (Property, error) {
	for i, n := range propertyNames {
		if n == name {
			return Property(i), nil
		}
	}
	return 0, fmt.Errorf("unknown property %q", name)
}

// PropertySet は利用者が与えた既知の状態量。nil は未知を表す。
// 全圧は必須。
type PropertySet struct {
	DryBulb          *float64
	WetBulb          *float64
	DewPoint         *float64
	HumidityRatio    *float64
	RelativeHumidity *float64
	Enthalpy         *float64
	VaporPressure    *float64
	SpecificVolume   *float64
	SpecificHeat     *float64
	TotalPressure    *float64
}

// 全圧 P [Pa] のみを与えた PropertySet を作成する
func NewPropertySet(P float64) *PropertySet {
	ps := &PropertySet{}
	return ps.Set(PropTotalPressure, P)
}

func (ps *PropertySet) field(p Property) **float64 {
	switch p {
	case PropDryBulb:
		return &ps.DryBulb
	case PropWetBulb:
		return &ps.WetBulb
	case PropDewPoint:
		return &ps.DewPoint
	case PropHumidityRatio:
		return &ps.HumidityRatio
	case PropRelativeHumidity:
		return &ps.RelativeHumidity
	case PropEnthalpy:
		return &ps.Enthalpy
	case PropVaporPressure:
		return &ps.VaporPressure
	case PropSpecificVolume:
		return &ps.SpecificVolume
	case PropSpecificHeat:
		return &ps.SpecificHeat
	case PropTotalPressure:
		return &ps.TotalPressure
	}
	panic(fmt.Sprintf("psychro: unknown property %d", int(p)))
}

// 状態量 p に値 v を設定する
func (ps *PropertySet) Set(p Property, v float64) *PropertySet {
	*ps.field(p) = &v
	return ps
}

// 状態量 p を未知に戻す
func (ps *PropertySet) Unset(p Property) *PropertySet {
	*ps.field(p) = nil
	return ps
}

func (ps *PropertySet) Get(p Property) (float64, bool) {
	f := *ps.field(p)
	if f == nil {
		return 0, false
	}
	return *f, true
}

func (ps *PropertySet) Has(p Property) bool {
	return *ps.field(p) != nil
}

// 既知の状態量の一覧（全圧を除く）
func (ps *PropertySet) Known() []Property {
	known := []Property{}
	for _, p := range Properties {
		if ps.Has(p) {
			known = append(known, p)
		}
	}
	return known
}

// State は解決済みの状態点。すべての値が有限。
type State struct {
	DryBulb          float64 `yaml:"dry_bulb_temperature"`
	WetBulb          float64 `yaml:"wet_bulb_temperature"`
	DewPoint         float64 `yaml:"dew_point_temperature"`
	HumidityRatio    float64 `yaml:"humidity_ratio"`
	RelativeHumidity float64 `yaml:"relative_humidity"`
	Enthalpy         float64 `yaml:"total_enthalpy"`
	VaporPressure    float64 `yaml:"partial_pressure_vapor"`
	SpecificVolume   float64 `yaml:"specific_volume"`
	SpecificHeat     float64 `yaml:"specific_heat_capacity"`
	TotalPressure    float64 `yaml:"total_pressure"`

	Case KnownPairKind `yaml:"-"` // 解決に用いたケース
}

func (s *State) Get(p Property) float64 {
	switch p {
	case PropDryBulb:
		return s.DryBulb
	case PropWetBulb:
		return s.WetBulb
	case PropDewPoint:
		return s.DewPoint
	case PropHumidityRatio:
		return s.HumidityRatio
	case PropRelativeHumidity:
		return s.RelativeHumidity
	case PropEnthalpy:
		return s.Enthalpy
	case PropVaporPressure:
		return s.VaporPressure
	case PropSpecificVolume:
		return s.SpecificVolume
	case PropSpecificHeat:
		return s.SpecificHeat
	case PropTotalPressure:
		return s.TotalPressure
	}
	panic(fmt.Sprintf("psychro: unknown property %d", int(p)))
}

// 解決済みの値から PropertySet を作る。別の組合せで再計算する際に用いる。
func (s *State) PropertySet(props ...Property) *PropertySet {
	ps := NewPropertySet(s.TotalPressure)
	for _, p := range props {
		ps.Set(p, s.Get(p))
	}
	return ps
}

package psychro

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
	"gopkg.in/yaml.v3"
)

// 表示用の小数桁数。相対湿度は % 表示での桁数。
// 計算結果そのものは丸めない。
var DisplayDecimals = map[Property]int{
	PropDryBulb:          2,
	PropWetBulb:          2,
	PropDewPoint:         2,
	PropHumidityRatio:    5,
	PropRelativeHumidity: 2,
	PropEnthalpy:         3,
	PropVaporPressure:    2,
	PropSpecificVolume:   2,
	PropSpecificHeat:     2,
	PropTotalPressure:    2,
}

// 表示用に丸めた値を返す
func (s *State) Display(p Property) float64 {
	d := DisplayDecimals[p]
	if p == PropRelativeHumidity {
		return scalar.Round(FractionToPercent(s.RelativeHumidity), d)
	}
	return scalar.Round(s.Get(p), d)
}

// テキスト形式
func (s *State) ToText(buf *bytes.Buffer) {
	buf.WriteString(fmt.Sprintf("case: %s\n", s.Case))
	for _, p := range allProperties {
		unit := p.Unit()
		if p == PropRelativeHumidity {
			unit = "%"
		}
		v := strconv.FormatFloat(s.Display(p), 'f', DisplayDecimals[p], 64)
		buf.WriteString(fmt.Sprintf("%-24s %12s %s\n", p, v, unit))
	}
}

// CSV形式
//
// Note:
//
//	decimals が負の場合は丸めずに出力します。
//	計算に失敗した行は値を空欄とし、error 列に理由を出力します。
func ToCSV(buf *bytes.Buffer, results []Result, decimals int) {
	buf.WriteString("row")
	for _, p := range allProperties {
		buf.WriteString(",")
		buf.WriteString(p.String())
	}
	buf.WriteString(",case,error\n")

	writeFloat := func(v float64) {
		if decimals >= 0 {
			v = scalar.Round(v, decimals)
		}
		buf.WriteString(",")
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	for _, r := range results {
		buf.WriteString(strconv.Itoa(r.Row))
		if r.Err != nil {
			for range allProperties {
				buf.WriteString(",")
			}
			buf.WriteString(",,")
			buf.WriteString(csvQuote(r.Err.Error()))
			buf.WriteString("\n")
			continue
		}
		for _, p := range allProperties {
			writeFloat(r.State.Get(p))
		}
		buf.WriteString(",")
		buf.WriteString(csvQuote(r.State.Case.String()))
		buf.WriteString(",\n")
	}
}

func csvQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

type yamlRecord struct {
	Row   int    `yaml:"row"`
	Case  string `yaml:"case,omitempty"`
	State *State `yaml:"state,omitempty"`
	Error string `yaml:"error,omitempty"`
}

// YAML形式
func ToYAML(buf *bytes.Buffer, results []Result) error {
	records := make([]yamlRecord, len(results))
	for i, r := range results {
		records[i] = yamlRecord{Row: r.Row, State: r.State}
		if r.State != nil {
			records[i].Case = r.State.Case.String()
		}
		if r.Err != nil {
			records[i].Error = r.Err.Error()
		}
	}

	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return err
	}
	return enc.Close()
}

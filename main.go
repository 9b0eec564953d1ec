// psychro
package main

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/akamensky/argparse"
	"github.com/davecgh/go-spew/spew"
	"github.com/hhkbp2/go-logging"
	"github.com/udawtr/psychro-go/psychro"
)

func main() {
	// コマンドライン引数の処理
	parser := argparse.NewParser("psychro", "Resolves the full psychrometric state of moist air from any two independent properties")

	flags := map[psychro.Property]*string{}
	flags[psychro.PropDryBulb] = parser.String("", "dry_bulb", &argparse.Options{
		Help: "乾球温度（--temp_unit の単位）"})
	flags[psychro.PropWetBulb] = parser.String("", "wet_bulb", &argparse.Options{
		Help: "湿球温度（--temp_unit の単位）"})
	flags[psychro.PropDewPoint] = parser.String("", "dew_point", &argparse.Options{
		Help: "露点温度（--temp_unit の単位）"})
	flags[psychro.PropHumidityRatio] = parser.String("", "humidity_ratio", &argparse.Options{
		Help: "重量絶対湿度 [kg/kg(DA)]"})
	flags[psychro.PropRelativeHumidity] = parser.String("", "relative_humidity", &argparse.Options{
		Help: "相対湿度 [-] (--rh_percent 指定時は [%])"})
	flags[psychro.PropEnthalpy] = parser.String("", "enthalpy", &argparse.Options{
		Help: "比エンタルピー（--enthalpy_unit の単位）"})
	flags[psychro.PropVaporPressure] = parser.String("", "vapor_pressure", &argparse.Options{
		Help: "水蒸気分圧（--pressure_unit の単位）"})
	flags[psychro.PropSpecificVolume] = parser.String("", "specific_volume", &argparse.Options{
		Help: "比容積（--specific_volume_unit の単位）"})
	flags[psychro.PropSpecificHeat] = parser.String("", "specific_heat", &argparse.Options{
		Help: "定圧比熱（--specific_heat_unit の単位）"})

	pressure := parser.Float("p", "pressure", &argparse.Options{
		Default: 101325.0,
		Help:    "全圧（--pressure_unit の単位）"})

	rhPercent := parser.Flag("", "rh_percent", &argparse.Options{
		Help: "相対湿度を % で与える"})

	tempUnit := parser.Selector("", "temp_unit", []string{"C", "F", "K", "R"}, &argparse.Options{
		Default: "C",
		Help:    "入力温度の単位"})

	pressureUnit := parser.Selector("", "pressure_unit", []string{"Pa", "kPa", "hPa", "bar", "atm", "psi", "mmHg", "torr"}, &argparse.Options{
		Default: "Pa",
		Help:    "入力圧力の単位"})

	enthalpyUnit := parser.Selector("", "enthalpy_unit", []string{"kJ/kg", "Btu/lb"}, &argparse.Options{
		Default: "kJ/kg",
		Help:    "入力比エンタルピーの単位"})

	specificHeatUnit := parser.Selector("", "specific_heat_unit", []string{"kJ/kgK", "Btu/lbR"}, &argparse.Options{
		Default: "kJ/kgK",
		Help:    "入力定圧比熱の単位"})

	specificVolumeUnit := parser.Selector("", "specific_volume_unit", []string{"m3/kg", "ft3/lb", "L/kg"}, &argparse.Options{
		Default: "m3/kg",
		Help:    "入力比容積の単位"})

	confFile := parser.String("", "config", &argparse.Options{
		Default: "",
		Help:    "反復計算の設定ファイル (YAML)"})

	precision := parser.Int("", "precision", &argparse.Options{
		Default: 0,
		Help:    "収束判定の小数桁数（0 の場合は設定ファイルまたは既定値）"})

	guess := parser.String("", "guess", &argparse.Options{
		Default: "",
		Help:    "反復計算の初期値 [℃]"})

	maxIter := parser.Int("", "max_iter", &argparse.Options{
		Default: 0,
		Help:    "反復回数の上限（0 の場合は設定ファイルまたは既定値）"})

	input := parser.String("i", "input", &argparse.Options{
		Default: "",
		Help:    "測定値のCSVファイル（指定時は一括計算）。各列は --temp_unit などの単位で換算する"})

	format := parser.Selector("f", "format", []string{"TEXT", "CSV", "YAML"}, &argparse.Options{
		Default: "TEXT",
		Help:    "出力形式 TEXT, CSV or YAML"})

	decimals := parser.Int("", "decimals", &argparse.Options{
		Default: -1,
		Help:    "CSV出力の小数桁数（負の場合は丸めない）"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "保存ファイルパス"})

	log := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Default: "ERROR",
		Help:    "ログレベルの設定"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	// ログレベル設定
	logger := logging.GetLogger("psychro")
	if *log == "DEBUG" {
		logger.SetLevel(logging.LevelDebug)
	} else if *log == "INFO" {
		logger.SetLevel(logging.LevelInfo)
	} else if *log == "WARN" {
		logger.SetLevel(logging.LevelWarn)
	} else if *log == "ERROR" {
		logger.SetLevel(logging.LevelError)
	} else if *log == "CRITICAL" {
		logger.SetLevel(logging.LevelCritical)
	}

	// 反復計算の設定
	conf := psychro.DefaultConfig()
	if *confFile != "" {
		conf, err = psychro.LoadConfig(*confFile)
		exitOnError(err)
	}
	if *precision != 0 {
		conf.Precision = *precision
	}
	if *maxIter != 0 {
		conf.MaxIterations = *maxIter
	}
	if *guess != "" {
		conf.InitialGuess, err = strconv.ParseFloat(*guess, 64)
		exitOnError(err)
	}
	resolver, err := psychro.NewResolver(conf)
	exitOnError(err)

	units := psychro.Units{
		Temperature:    psychro.TemperatureUnit(*tempUnit),
		Pressure:       psychro.PressureUnit(*pressureUnit),
		Enthalpy:       psychro.EnthalpyUnit(*enthalpyUnit),
		SpecificHeat:   psychro.SpecificHeatUnit(*specificHeatUnit),
		SpecificVolume: psychro.SpecificVolumeUnit(*specificVolumeUnit),
		RHPercent:      *rhPercent,
	}

	P, err := units.ToSI(psychro.PropTotalPressure, *pressure)
	exitOnError(err)

	var results []psychro.Result
	if *input != "" {
		// 一括計算
		f, err := os.Open(*input)
		exitOnError(err)
		samples, err := psychro.ReadSamples(f, P, units)
		f.Close()
		exitOnError(err)

		results = resolver.ResolveBatch(samples)
		for _, s := range psychro.Summarize(results) {
			logger.Infof("%s: n=%d mean=%g std=%g min=%g max=%g", s.Property, s.Count, s.Mean, s.StdDev, s.Min, s.Max)
		}
	} else {
		// 1点の計算
		ps := psychro.NewPropertySet(P)
		for _, p := range psychro.Properties {
			if *flags[p] == "" {
				continue
			}
			v, err := strconv.ParseFloat(*flags[p], 64)
			exitOnError(err)
			v, err = units.ToSI(p, v)
			exitOnError(err)
			ps.Set(p, v)
		}
		logger.Debugf("入力値:\n%s", spew.Sdump(ps))

		st, err := resolver.Resolve(ps)
		exitOnError(err)
		logger.Debugf("計算結果:\n%s", spew.Sdump(st))
		results = []psychro.Result{{Row: 1, State: st}}
	}

	// 保存
	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
	if *format == "TEXT" {
		for _, r := range results {
			if r.Err != nil {
				buf.WriteString(fmt.Sprintf("row %d: %v\n", r.Row, r.Err))
				continue
			}
			if len(results) > 1 {
				buf.WriteString(fmt.Sprintf("row %d\n", r.Row))
			}
			r.State.ToText(buf)
		}
	} else if *format == "CSV" {
		psychro.ToCSV(buf, results, *decimals)
	} else if *format == "YAML" {
		exitOnError(psychro.ToYAML(buf, results))
	}

	if *filename == "" {
		fmt.Print(buf.String())
	} else {
		logger.Infof("保存: %s", *filename)
		err := os.WriteFile(*filename, buf.Bytes(), 0644)
		exitOnError(err)
	}

	// 一括計算で失敗した行があれば異常終了とする
	for _, r := range results {
		if r.Err != nil {
			os.Exit(1)
		}
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

package psychro

import (
	"encoding/csv"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//--------------------------------------
// 測定値の一括計算
//--------------------------------------

// 1行分の計算結果
type Result struct {
	Row   int // 入力の行番号（ヘッダを除き1始まり）
	State *State
	Err   error
}

// CSVから測定値を読み込む。
// ヘッダは状態量の名前 (例: dry_bulb_temperature, relative_humidity)。
// 各値は単位 u で与えられたものとして換算する。
// 空欄は未知として扱い、total_pressure が無い・空欄の場合は defaultPressure [Pa] を用いる。
func ReadSamples(r io.Reader, defaultPressure float64, u Units) ([]*PropertySet, error) {
	csvReader := csv.NewReader(r)
	csvReader.TrimLeadingSpace = true

	header, err := csvReader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("samples: empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("samples: %w", err)
	}

	columns := make([]Property, len(header))
	for i, name := range header {
		p, err := ParseProperty(strings.TrimSpace(name))
		if err != nil {
			return nil, fmt.Errorf("samples: column %d: %w", i+1, err)
		}
		columns[i] = p
	}

	samples := []*PropertySet{}
	for row := 1; ; row++ {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("samples: row %d: %w", row, err)
		}

		ps := NewPropertySet(defaultPressure)
		for i, cell := range record {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("samples: row %d, %s: %w", row, columns[i], err)
			}
			v, err = u.ToSI(columns[i], v)
			if err != nil {
				return nil, fmt.Errorf("samples: row %d, %s: %w", row, columns[i], err)
			}
			ps.Set(columns[i], v)
		}
		samples = append(samples, ps)
	}
	return samples, nil
}

// 各測定値を独立に計算する。結果は入力の順に並ぶ。
// ある行の失敗は他の行に影響しない。
func (r *Resolver) ResolveBatch(samples []*PropertySet) []Result {
	results := make([]Result, len(samples))
	if len(samples) == 0 {
		return results
	}

	workers := runtime.NumCPU()
	if workers > len(samples) {
		workers = len(samples)
	}

	jobs := make(chan int, len(samples))
	c := make(chan Result, workers)
	for w := 0; w < workers; w++ {
		go func() {
			for i := range jobs {
				st, err := r.Resolve(samples[i])
				c <- Result{Row: i + 1, State: st, Err: err}
			}
		}()
	}
	for i := range samples {
		jobs <- i
	}
	close(jobs)

	failed := 0
	for i := 0; i < len(samples); i++ {
		ret := <-c
		results[ret.Row-1] = ret
		if ret.Err != nil {
			failed++
			logger.Debugf("行 %d の計算に失敗しました: %v", ret.Row, ret.Err)
		}
	}
	logger.Infof("一括計算が終了しました: %d 行 (失敗 %d 行)", len(samples), failed)

	return results
}

// 状態量ごとの統計量
type Summary struct {
	Property Property
	Count    int
	Mean     float64
	StdDev   float64
	Min      float64
	Max      float64
}

// 計算に成功した行について状態量ごとの平均・標準偏差・最小・最大を求める
func Summarize(results []Result) []Summary {
	summaries := []Summary{}
	for _, p := range Properties {
		x := []float64{}
		for _, r := range results {
			if r.Err == nil && r.State != nil {
				x = append(x, r.State.Get(p))
			}
		}
		if len(x) == 0 {
			continue
		}

		s := Summary{Property: p, Count: len(x), Min: floats.Min(x), Max: floats.Max(x)}
		if len(x) > 1 {
			s.Mean, s.StdDev = stat.MeanStdDev(x, nil)
		} else {
			s.Mean = x[0]
		}
		summaries = append(summaries, s)
	}
	return summaries
}

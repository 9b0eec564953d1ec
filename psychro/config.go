package psychro

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// 反復計算の設定
type Config struct {
	Precision     int     `yaml:"precision"`      // 収束判定の小数桁数 (|x_next - x| < 10^-Precision)
	InitialGuess  float64 `yaml:"initial_guess"`  // 初期値 [℃]
	MaxIterations int     `yaml:"max_iterations"` // 反復回数の上限
}

func DefaultConfig() Config {
	return Config{
		Precision:     5,
		InitialGuess:  50.0,
		MaxIterations: 100,
	}
}

// YAMLファイルから設定を読み込む。記載のない項目は既定値のまま。
func LoadConfig(path string) (Config, error) {
	conf := DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return conf, err
	}
	if err := yaml.Unmarshal(b, &conf); err != nil {
		return conf, fmt.Errorf("config %s: %w", path, err)
	}
	if err := conf.Validate(); err != nil {
		return conf, fmt.Errorf("config %s: %w", path, err)
	}
	return conf, nil
}

func (c Config) Validate() error {
	if c.Precision < 1 || c.Precision > 12 {
		return fmt.Errorf("precision must be within 1..12, got %d", c.Precision)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("max_iterations must be positive, got %d", c.MaxIterations)
	}
	if math.IsNaN(c.InitialGuess) || math.IsInf(c.InitialGuess, 0) {
		return fmt.Errorf("initial_guess must be finite")
	}
	return nil
}

// 収束判定の許容差
func (c Config) Tolerance() float64 {
	return math.Pow(10, -float64(c.Precision))
}

func (c Config) solver() Solver {
	return Solver{
		Tolerance:     c.Tolerance(),
		InitialGuess:  c.InitialGuess,
		MaxIterations: c.MaxIterations,
	}
}

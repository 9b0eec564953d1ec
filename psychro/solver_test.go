package psychro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultSolver() Solver {
	return DefaultConfig().solver()
}

// 一次関数の根
func Test_Solve_Linear(t *testing.T) {
	x, err := defaultSolver().Solve("x", func(x float64) (float64, float64) {
		return x - 3, 1
	})
	require.NoError(t, err)
	assert.InDelta(t, 3, x, 1e-4)
}

// 初期値で差が 0 ならそのまま返す
func Test_Solve_ExactGuess(t *testing.T) {
	x, err := defaultSolver().Solve("x", func(x float64) (float64, float64) {
		return 0, 0
	})
	require.NoError(t, err)
	assert.Equal(t, 50.0, x)
}

// 傾きが 0 の場合は発散として扱う
func Test_Solve_ZeroSlope(t *testing.T) {
	_, err := defaultSolver().Solve("x", func(x float64) (float64, float64) {
		return 1, 0
	})
	assert.ErrorIs(t, err, ErrNumericConvergenceFailure)
	assert.Contains(t, err.Error(), "diverged")
}

// 反復回数の上限
func Test_Solve_MaxIterations(t *testing.T) {
	s := Solver{Tolerance: 1e-12, InitialGuess: 50, MaxIterations: 1}
	_, err := s.DewPoint(1000)
	assert.ErrorIs(t, err, ErrNumericConvergenceFailure)
	assert.Contains(t, err.Error(), "did not converge")
}

func Test_DewPoint(t *testing.T) {
	s := defaultSolver()
	for _, T := range []float64{-5, 0, 13.86464, 30, 65} {
		dp, err := s.DewPoint(PSat(T))
		require.NoError(t, err)
		assert.InDelta(t, T, dp, 1e-4, "T=%g", T)
	}

	_, err := s.DewPoint(0)
	assert.ErrorIs(t, err, ErrNoPhysicalSolution)
	_, err = s.DewPoint(-1)
	assert.ErrorIs(t, err, ErrNoPhysicalSolution)
}

func Test_WetBulb(t *testing.T) {
	s := defaultSolver()
	wb, err := s.WetBulb(50.314923, atm)
	require.NoError(t, err)
	assert.InDelta(t, 17.815, wb, 1e-3)

	// 飽和状態のエンタルピーからはその温度に戻る
	wb, err = s.WetBulb(Enthalpy(60, SaturationHumidityRatio(60, atm)), atm)
	require.NoError(t, err)
	assert.InDelta(t, 60, wb, 1e-3)
}

func Test_DryBulbFromRHEnthalpy(t *testing.T) {
	W := HumidityRatioFromVaporPressure(0.5*PSat(25), atm)
	db, err := defaultSolver().DryBulbFromRHEnthalpy(0.5, Enthalpy(25, W), atm)
	require.NoError(t, err)
	assert.InDelta(t, 25, db, 1e-3)
}

func Test_DryBulbFromWetBulbEnthalpy(t *testing.T) {
	s := defaultSolver()
	H := Enthalpy(20, SaturationHumidityRatio(20, atm))
	got, err := s.DryBulbFromWetBulbEnthalpy(20, H, atm)
	require.NoError(t, err)
	assert.InDelta(t, 20, got, 1e-4)

	// 比エンタルピーが乾燥空気分にも満たない
	_, err = s.DryBulbFromWetBulbEnthalpy(20, 10, atm)
	assert.ErrorIs(t, err, ErrNoPhysicalSolution)
}

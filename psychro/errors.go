package psychro

import "fmt"

// 計算失敗の種類
type ErrorKind int

const (
	InsufficientData          ErrorKind = iota + 1 // 状態点を決めるための情報が不足
	InvalidInput                                   // 入力値が物理的に不整合
	NumericConvergenceFailure                      // 反復計算が収束しない
	NoPhysicalSolution                             // 物理的に意味のある解がない
	UnsupportedCombination                         // 未対応の既知量の組合せ
)

func (k ErrorKind) String() string {
	switch k {
	case InsufficientData:
		return "insufficient data"
	case InvalidInput:
		return "invalid input"
	case NumericConvergenceFailure:
		return "numeric convergence failure"
	case NoPhysicalSolution:
		return "no physical solution"
	case UnsupportedCombination:
		return "unsupported combination"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error は状態点の計算失敗を表す。
// Value は問題となった値、Bound は超過した境界値（該当する場合）。
type Error struct {
	Kind  ErrorKind
	Msg   string
	Value float64
	Bound float64
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Msg
}

// 種類だけを持つ番兵エラーとは Kind が一致すれば等しいとみなす
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Msg == "" && t.Kind == e.Kind
}

var (
	ErrInsufficientData          = &Error{Kind: InsufficientData}
	ErrInvalidInput              = &Error{Kind: InvalidInput}
	ErrNumericConvergenceFailure = &Error{Kind: NumericConvergenceFailure}
	ErrNoPhysicalSolution        = &Error{Kind: NoPhysicalSolution}
	ErrUnsupportedCombination    = &Error{Kind: UnsupportedCombination}
)

func invalidInput(msg string, value float64, bound float64) *Error {
	return &Error{
		Kind:  InvalidInput,
		Msg:   fmt.Sprintf("%s (value %g, bound %g)", msg, value, bound),
		Value: value,
		Bound: bound,
	}
}

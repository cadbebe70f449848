package model

import (
	"errors"
	"fmt"
)

// 検索系コラボレーターの「見つからない」結果を輸送エラーと区別するためのセンチネル
var (
	// ErrPlaceNotFound はジオコーディングで地名が解決できなかったことを表す
	ErrPlaceNotFound = errors.New("place not found")

	// ErrNoMatchingWeather は指定条件に合う天気の連続期間が予報内に存在しないことを表す
	ErrNoMatchingWeather = errors.New("no matching weather window")
)

// ValidationError は入力値の検証エラー（許可される値の一覧を含むメッセージを持つ）
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError は新しいValidationErrorを作成する
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidationError はエラーがValidationErrorかどうかを判定する
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

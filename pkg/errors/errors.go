package errors

import (
	"errors"
	"fmt"

	"tradesense/pkg/errors/ecode"
)

// withCode 携带业务错误码的error
type withCode struct {
	code    int
	message string
	cause   error
}

func (w *withCode) Error() string {
	if w.cause != nil {
		return w.message + ": " + w.cause.Error()
	}
	return w.message
}

func (w *withCode) Unwrap() error {
	return w.cause
}

// WithCode 创建一个带错误码的error
func WithCode(code int, format string, args ...interface{}) error {
	message := fmt.Sprintf(format, args...)
	if message == "" {
		message = ecode.Message(code)
	}
	return &withCode{code: code, message: message}
}

// Wrap 包装底层error并附加错误码和描述
func Wrap(err error, code int, message string) error {
	if message == "" {
		message = ecode.Message(code)
	}
	return &withCode{code: code, message: message, cause: err}
}

// DecodeErr 解出错误码和提示信息，响应层使用
func DecodeErr(err error) (int, string) {
	if err == nil {
		return ecode.Success, ecode.Message(ecode.Success)
	}
	var wc *withCode
	if errors.As(err, &wc) {
		return wc.code, wc.message
	}
	return ecode.Unknown, err.Error()
}

// IsCode 判断error是否携带指定错误码
func IsCode(err error, code int) bool {
	var wc *withCode
	if errors.As(err, &wc) {
		return wc.code == code
	}
	return false
}

package exceptions

import (
	"fmt"
)

// CustomError carries the HTTP status plus the split between what the client
// is told and what the logs record. Only Code and ClientMessage are ever
// serialized to the caller.
type CustomError struct {
	StatusCode    int    `json:"-"`
	Code          string `json:"code"`
	ClientMessage string `json:"message"`
	DevMessage    string `json:"-"`
	Err           error  `json:"-"`
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.DevMessage, e.Err.Error())
	}
	return e.DevMessage
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

func BuildNewCustomError(err error, statusCode int, code, clientMessage, devMessage string) *CustomError {
	return &CustomError{
		StatusCode:    statusCode,
		Code:          code,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Err:           err,
	}
}

package domain

import (
	"fmt"
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Code:       e.Code,
		Message:    e.Message,
		StatusCode: e.StatusCode,
		Err:        err,
	}
}

// Pre-defined errors
var (
	ErrInternal = &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		StatusCode: 500,
	}

	ErrInvalidSource = &AppError{
		Code:       "INVALID_SOURCE",
		Message:    "Invalid image source",
		StatusCode: 400,
	}

	ErrInvalidFile = &AppError{
		Code:       "INVALID_FILE",
		Message:    "Missing filename or unsupported file extension",
		StatusCode: 400,
	}

	ErrDecodeFailed = &AppError{
		Code:       "DECODE_FAILED",
		Message:    "Could not decode webcam image data",
		StatusCode: 400,
	}

	ErrPayloadTooLarge = &AppError{
		Code:       "PAYLOAD_TOO_LARGE",
		Message:    "Image exceeds the maximum allowed size",
		StatusCode: 413,
	}

	ErrStorageFailed = &AppError{
		Code:       "STORAGE_FAILED",
		Message:    "Could not persist prediction record",
		StatusCode: 500,
	}
)

package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/quietpage/quietpage/internal/platform/apperror"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name         string
		code         apperror.ErrorCode
		businessCode apperror.BusinessCode
		message      string
		httpStatus   int
	}{
		{
			name:         "creates not-found error",
			code:         apperror.CodeNotFound,
			businessCode: apperror.BusinessCodePostNotFound,
			message:      "post not found",
			httpStatus:   http.StatusNotFound,
		},
		{
			name:         "creates validation error",
			code:         apperror.CodeValidationFailed,
			businessCode: apperror.BusinessCodeInvalidPostData,
			message:      "invalid post data",
			httpStatus:   http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := apperror.New(tt.code, tt.businessCode, tt.message, tt.httpStatus)

			if err.Code != tt.code {
				t.Errorf("expected code %v, got %v", tt.code, err.Code)
			}
			if err.BusinessCode != tt.businessCode {
				t.Errorf("expected business code %v, got %v", tt.businessCode, err.BusinessCode)
			}
			if err.Message != tt.message {
				t.Errorf("expected message %v, got %v", tt.message, err.Message)
			}
			if err.HTTPStatus != tt.httpStatus {
				t.Errorf("expected HTTP status %v, got %v", tt.httpStatus, err.HTTPStatus)
			}
			if err.Inner != nil {
				t.Errorf("expected no inner error, got %v", err.Inner)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	innerErr := errors.New("smtp: connection refused")

	err := apperror.Wrap(
		innerErr,
		apperror.CodeUnavailable,
		apperror.BusinessCodeNotificationFailed,
		"failed to relay contact message",
		http.StatusServiceUnavailable,
	)

	if err.Inner != innerErr {
		t.Errorf("expected inner error %v, got %v", innerErr, err.Inner)
	}
	if !errors.Is(err, innerErr) {
		t.Error("expected errors.Is to reach the wrapped error")
	}
	if err.Code != apperror.CodeUnavailable {
		t.Errorf("expected code %v, got %v", apperror.CodeUnavailable, err.Code)
	}
}

func TestWithDetails(t *testing.T) {
	err := apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeInvalidPostData,
		"validation failed",
		http.StatusBadRequest,
	)

	withDetails := err.WithDetails(map[string]string{"imageURL": "must be a valid URL"})

	if withDetails.Details == nil {
		t.Error("expected details to be set")
	}
	if err.Details != nil {
		t.Error("WithDetails must not mutate the original error")
	}
	if !errors.Is(withDetails, err) {
		t.Error("the detailed copy should still match the original via errors.Is")
	}
}

func TestIs(t *testing.T) {
	notFound := apperror.New(
		apperror.CodeNotFound,
		apperror.BusinessCodePostNotFound,
		"post not found",
		http.StatusNotFound,
	)

	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{
			name: "same codes match regardless of message",
			err:  notFound,
			target: apperror.New(
				apperror.CodeNotFound,
				apperror.BusinessCodePostNotFound,
				"different message",
				http.StatusNotFound,
			),
			want: true,
		},
		{
			name: "different business code does not match",
			err:  notFound,
			target: apperror.New(
				apperror.CodeNotFound,
				apperror.BusinessCodeDuplicateTitle,
				"title conflict",
				http.StatusConflict,
			),
			want: false,
		},
		{
			name:   "non-AppError does not match",
			err:    notFound,
			target: errors.New("plain error"),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	innerErr := errors.New("unique constraint violated")

	err := apperror.Wrap(
		innerErr,
		apperror.CodeConflict,
		apperror.BusinessCodeDuplicateTitle,
		"title already exists",
		http.StatusConflict,
	).WithDetails(map[string]string{"title": "Hello World"})

	verbose := fmt.Sprintf("%+v", err)
	for _, expected := range []string{
		"Code: CONFLICT",
		"BusinessCode: DUPLICATE_TITLE",
		"Message: title already exists",
		"HTTPStatus: 409",
		"Caused by: unique constraint violated",
		"Details: map[title:Hello World]",
	} {
		if !strings.Contains(verbose, expected) {
			t.Errorf("expected %%+v output to contain %q, got %q", expected, verbose)
		}
	}

	if got := fmt.Sprintf("%s", err); got != "title already exists" {
		t.Errorf("expected %%s output to be the message, got %q", got)
	}
}

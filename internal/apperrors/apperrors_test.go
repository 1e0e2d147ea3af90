package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	plain := New(DatasetKeyError, "unknown sample dataset")
	if plain.Error() != "DATASET_KEY_ERROR: unknown sample dataset" {
		t.Errorf("Error() = %q, unexpected format", plain.Error())
	}

	wrapped := Wrap(FetchError, "fetching timeline", errors.New("connection refused"))
	want := "FETCH_ERROR: fetching timeline (caused by: connection refused)"
	if wrapped.Error() != want {
		t.Errorf("Error() = %q, want %q", wrapped.Error(), want)
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewFetchError("fetching timeline", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestIsType(t *testing.T) {
	err := NewDecodeError("decoding payload", errors.New("unexpected EOF"))

	if !IsType(err, DecodeError) {
		t.Error("IsType should match DecodeError")
	}
	if IsType(err, FetchError) {
		t.Error("IsType should not match FetchError")
	}
	if IsType(errors.New("plain"), DecodeError) {
		t.Error("IsType should not match plain errors")
	}

	// Matching survives further wrapping
	outer := fmt.Errorf("loading: %w", err)
	if !IsType(outer, DecodeError) {
		t.Error("IsType should match through fmt.Errorf wrapping")
	}
}

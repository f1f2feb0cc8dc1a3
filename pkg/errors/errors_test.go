package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeFrequencyMismatch, "antennas %c and %c", 'A', '0')

	if err.Code != ErrCodeFrequencyMismatch {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeFrequencyMismatch)
	}

	if err.Message != "antennas A and 0" {
		t.Errorf("Message = %v, want %v", err.Message, "antennas A and 0")
	}

	expected := "FREQUENCY_MISMATCH: antennas A and 0"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := Wrap(ErrCodeInvalidMap, cause, "read header")

	if err.Code != ErrCodeInvalidMap {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidMap)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "INVALID_MAP: read header: unexpected EOF"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeVertexNotFound, "test"),
			code:     ErrCodeVertexNotFound,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeVertexNotFound, "test"),
			code:     ErrCodeInvalidStart,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeInvalidMap, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeInvalidMap,
			expected: true,
		},
		{
			name:     "fmt wrapped",
			err:      fmtWrap(New(ErrCodeDuplicateAntenna, "inner")),
			code:     ErrCodeDuplicateAntenna,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidStart, "test"),
			expected: ErrCodeInvalidStart,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMissingEndpoints(t *testing.T) {
	tests := []struct {
		name string
		m    MissingEndpoints
		want string
	}{
		{"both", MissingEndpoints{Source: true, Destination: true}, "neither antenna exists in the map"},
		{"source", MissingEndpoints{Source: true}, "source antenna does not exist in the map"},
		{"destination", MissingEndpoints{Destination: true}, "destination antenna does not exist in the map"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}

	err := Wrap(ErrCodeVertexNotFound, &MissingEndpoints{Source: true}, "find paths")
	var m *MissingEndpoints
	if !errors.As(err, &m) || !m.Source || m.Destination {
		t.Errorf("errors.As(MissingEndpoints) = %+v", m)
	}
}

func fmtWrap(err error) error {
	return &wrapped{err}
}

type wrapped struct{ err error }

func (w *wrapped) Error() string { return "outer: " + w.err.Error() }
func (w *wrapped) Unwrap() error { return w.err }

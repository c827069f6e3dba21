package dto

import (
	"errors"
	"testing"
	"time"
)

func TestNewErrorResponse(t *testing.T) {
	before := time.Now()
	resp := NewErrorResponse("something failed", errors.New("connection refused"))

	if resp.Message != "something failed" {
		t.Errorf("Message = %q", resp.Message)
	}
	if resp.ErrorDetails != "connection refused" {
		t.Errorf("ErrorDetails = %q", resp.ErrorDetails)
	}
	if resp.Timestamp.Before(before) || resp.Timestamp.After(time.Now()) {
		t.Errorf("Timestamp out of range: %v", resp.Timestamp)
	}
}

func TestNewErrorResponse_NilError(t *testing.T) {
	resp := NewErrorResponse("bad request", nil)

	if resp.ErrorDetails != "" {
		t.Errorf("ErrorDetails = %q, want empty", resp.ErrorDetails)
	}
}

func TestErrorResponse_Error(t *testing.T) {
	cases := []struct {
		name string
		resp ErrorResponse
		want string
	}{
		{
			name: "with details",
			resp: ErrorResponse{Message: "fetch failed", ErrorDetails: "timeout"},
			want: "fetch failed: timeout",
		},
		{
			name: "message only",
			resp: ErrorResponse{Message: "fetch failed"},
			want: "fetch failed",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.resp.Error(); got != tc.want {
				t.Errorf("Error() = %q, want %q", got, tc.want)
			}
		})
	}
}

package tzerror

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

type codedErr struct{ code Code }

func (c codedErr) Error() string { return "coded" }
func (c codedErr) Code() Code    { return c.code }

func TestNew(t *testing.T) {
	err := New("something failed")

	if err.Error() != "something failed" {
		t.Errorf("Error() = %v, want %v", err.Error(), "something failed")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Unwrap() != nil {
		t.Errorf("Unwrap() = %v, want nil", err.Unwrap())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		cause    error
		wantCode Code
	}{
		{"plain error", errors.New("disk full"), CodeUnknown},
		{"coded Error", New("bad").WithCode(CodeConfigRead), CodeConfigRead},
		{"foreign coder", codedErr{CodeUnresolvedZone}, CodeUnresolvedZone},
		{"fmt wrapped coder", fmt.Errorf("ctx: %w", codedErr{CodeGeoData}), CodeGeoData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Wrap(tt.cause, "outer")
			if err.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", err.Code(), tt.wantCode)
			}
			if !errors.Is(err, tt.cause) {
				t.Errorf("errors.Is(err, cause) = false, want true")
			}
			if !strings.HasPrefix(err.Error(), "outer: ") {
				t.Errorf("Error() = %q, want prefix %q", err.Error(), "outer: ")
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "nothing"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("loading: %w", New("unreadable").WithCode(CodeConfigRead))

	if !HasCode(err, CodeConfigRead) {
		t.Errorf("HasCode(CodeConfigRead) = false, want true")
	}
	if HasCode(err, CodeGeometry) {
		t.Errorf("HasCode(CodeGeometry) = true, want false")
	}
	if HasCode(nil, CodeUnknown) {
		t.Errorf("HasCode(nil) = true, want false")
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Errorf("GetCode(plain) = %v, want %v", GetCode(errors.New("plain")), CodeUnknown)
	}
}

func TestString(t *testing.T) {
	err := Wrap(errors.New("eof"), "reading cities").
		WithCode(CodeGeoData).
		WithDetail("path", "/tmp/cities.tsv").
		WithDetail("line", 3)

	got := err.String()
	want := "[GEO_DATA] reading cities line=3 path=/tmp/cities.tsv (caused by: eof)"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDetailsIsCopy(t *testing.T) {
	err := New("x").WithDetail("k", "v")
	d := err.Details()
	d["k"] = "changed"

	if err.Details()["k"] != "v" {
		t.Errorf("Details() leaked internal map")
	}
}

func TestCodeSoft(t *testing.T) {
	tests := []struct {
		code Code
		soft bool
	}{
		{CodeConfigRead, true},
		{CodeGeometry, true},
		{CodeUnresolvedZone, false},
		{CodeGeoData, false},
		{CodeInvalidInput, false},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if !tt.code.IsValid() {
				t.Errorf("IsValid() = false for %v", tt.code)
			}
			if got := tt.code.Soft(); got != tt.soft {
				t.Errorf("Soft() = %v, want %v", got, tt.soft)
			}
		})
	}

	if Code("NOPE").IsValid() {
		t.Errorf("IsValid(NOPE) = true, want false")
	}
}

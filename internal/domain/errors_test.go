package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "domain.resolve",
		Kind: KindYearRange,
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindYearRange {
		t.Fatalf("expected kind %s", KindYearRange)
	}
}

func TestIsKind(t *testing.T) {
	err := &OpError{
		Op:   "config.load",
		Kind: KindInvalidConfig,
		Err:  ErrInvalidConfig,
	}

	if !IsKind(err, KindInvalidConfig) {
		t.Fatalf("expected IsKind to match")
	}
	if IsKind(err, KindYearRange) {
		t.Fatalf("expected IsKind to reject other kinds")
	}
	if IsKind(errors.New("plain"), KindInvalidConfig) {
		t.Fatalf("expected IsKind to reject plain errors")
	}
}

func TestOpErrorMessageIncludesPath(t *testing.T) {
	err := &OpError{
		Op:   "config.load",
		Kind: KindNotFound,
		Path: "/tmp/lunar.yaml",
		Err:  ErrNotFound,
	}

	msg := err.Error()
	if !strings.Contains(msg, "config.load") || !strings.Contains(msg, "/tmp/lunar.yaml") {
		t.Fatalf("unexpected message: %s", msg)
	}
}

package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestWrapPreservesChainAndCode(t *testing.T) {
	cause := stdErrors.New("connection refused")
	err := Wrap(CodeBackend, cause, "remote call failed")

	if err.Code() != CodeBackend {
		t.Fatalf("expected backend code, got %s", err.Code())
	}
	if !stdErrors.Is(err, cause) {
		t.Fatal("expected wrapped cause in chain")
	}

	typed := As(fmt.Errorf("outer: %w", err))
	if typed == nil || typed.Code() != CodeBackend {
		t.Fatalf("expected typed error through wrapping, got %v", typed)
	}
}

func TestMetadataForUnknownCodeFallsBackToInternal(t *testing.T) {
	meta := MetadataFor(Code("SOMETHING_ELSE"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500 fallback, got %d", meta.HTTPStatus)
	}
}

func TestTaxonomyStatuses(t *testing.T) {
	cases := map[Code]int{
		CodeNotFound:           http.StatusNotFound,
		CodeInvalidCredential:  http.StatusUnauthorized,
		CodeAccountInactive:    http.StatusForbidden,
		CodeAlreadyExists:      http.StatusConflict,
		CodeOfflineUnavailable: http.StatusServiceUnavailable,
		CodeBackend:            http.StatusBadGateway,
		CodeLocalStore:         http.StatusInternalServerError,
	}
	for code, want := range cases {
		if got := MetadataFor(code).HTTPStatus; got != want {
			t.Fatalf("code %s: expected %d, got %d", code, want, got)
		}
	}
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", New(CodeNotFound, "user missing"))
	if !HasCode(err, CodeNotFound) {
		t.Fatal("expected NOT_FOUND in chain")
	}
	if HasCode(err, CodeBackend) {
		t.Fatal("did not expect BACKEND_ERROR")
	}
}

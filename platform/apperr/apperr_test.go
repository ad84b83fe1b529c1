package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindNotFound:    http.StatusNotFound,
		KindValidation:  http.StatusBadRequest,
		KindBadRequest:  http.StatusBadRequest,
		KindInternal:    http.StatusInternalServerError,
		KindUpstream:    http.StatusBadGateway,
		KindUnavailable: http.StatusServiceUnavailable,
		KindUnknown:     http.StatusBadRequest,
	}
	for kind, want := range cases {
		if got := New(kind, "x").HTTPStatus(); got != want {
			t.Fatalf("kind %d: status %d, want %d", kind, got, want)
		}
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := fmt.Errorf("fetch: %w", Upstream("Wetterdaten konnten nicht abgerufen werden", cause).WithOp("weather.current"))

	if !errors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
	if !Is(err, KindUpstream) {
		t.Fatalf("kind = %d, want upstream", GetKind(err))
	}
	if got := err.Error(); got != "fetch: weather.current: Wetterdaten konnten nicht abgerufen werden" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestGetKindWithoutDomainError(t *testing.T) {
	if GetKind(errors.New("plain")) != KindUnknown {
		t.Fatal("expected unknown kind")
	}
	if GetKind(nil) != KindUnknown {
		t.Fatal("expected unknown kind for nil")
	}
}

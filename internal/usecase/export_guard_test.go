package usecase

import "testing"

func TestExportGuard(t *testing.T) {
	g := NewExportGuard()

	if !g.TryAcquire("a") {
		t.Fatalf("expected first acquire to succeed")
	}
	if g.TryAcquire("a") {
		t.Fatalf("expected second acquire to fail")
	}
	if !g.TryAcquire("b") {
		t.Fatalf("expected other key to be independent")
	}
	g.Release("a")
	if g.Busy("a") {
		t.Fatalf("expected a released")
	}
	if !g.TryAcquire("a") {
		t.Fatalf("expected acquire after release")
	}
}

package health

import (
	"context"
	"errors"
	"testing"
)

// --- Mocks ---

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

// --- Tests ---

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(&mockPinger{}, &mockPinger{})
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks[ComponentGraph] != CheckOK {
		t.Errorf("expected graph %q, got %q", CheckOK, r.Checks[ComponentGraph])
	}
	if r.Checks[ComponentSearch] != CheckOK {
		t.Errorf("expected search %q, got %q", CheckOK, r.Checks[ComponentSearch])
	}
}

func TestCheck_GraphError(t *testing.T) {
	svc := New(&mockPinger{err: errors.New("conn refused")}, &mockPinger{})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks[ComponentGraph] != CheckError {
		t.Errorf("expected graph %q, got %q", CheckError, r.Checks[ComponentGraph])
	}
	if r.Checks[ComponentSearch] != CheckOK {
		t.Errorf("expected search %q, got %q", CheckOK, r.Checks[ComponentSearch])
	}
}

func TestCheck_SearchError(t *testing.T) {
	svc := New(&mockPinger{}, &mockPinger{err: errors.New("timeout")})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks[ComponentSearch] != CheckError {
		t.Errorf("expected search %q, got %q", CheckError, r.Checks[ComponentSearch])
	}
}

func TestCheck_BothFail(t *testing.T) {
	svc := New(
		&mockPinger{err: errors.New("graph down")},
		&mockPinger{err: errors.New("index down")},
	)
	r := svc.Check(context.Background())

	if r.Status != Unhealthy {
		t.Errorf("expected %q, got %q", Unhealthy, r.Status)
	}
}

func TestCheck_NoSearch(t *testing.T) {
	svc := New(&mockPinger{}, nil)
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if _, ok := r.Checks[ComponentSearch]; ok {
		t.Error("search check should be absent when search is nil")
	}
}

func TestCheck_NoSearch_GraphError(t *testing.T) {
	svc := New(&mockPinger{err: errors.New("fail")}, nil)
	r := svc.Check(context.Background())

	if r.Status != Unhealthy {
		t.Errorf("expected %q, got %q", Unhealthy, r.Status)
	}
}

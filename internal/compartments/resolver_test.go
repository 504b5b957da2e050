package compartments_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/adbstack/agent-tools/internal/compartments"
)

type fakeLister struct {
	compartments []compartments.Compartment
	err          error
	calls        int
}

func (f *fakeLister) ListCompartments(ctx context.Context) ([]compartments.Compartment, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.compartments, nil
}

func newResolver(lister compartments.Lister) *compartments.Resolver {
	return compartments.NewResolver(lister, slog.Default(), 0)
}

func TestResolver_ResolveOCID(t *testing.T) {
	lister := &fakeLister{compartments: []compartments.Compartment{
		{OCID: "ocid1.compartment.oc1..aaa", Name: "dev"},
		{OCID: "ocid1.compartment.oc1..bbb", Name: "prod"},
	}}
	resolver := newResolver(lister)

	res, err := resolver.ResolveOCID(context.Background(), "prod")
	if err != nil {
		t.Fatalf("ResolveOCID() failed: %v", err)
	}
	if res.OCID != "ocid1.compartment.oc1..bbb" {
		t.Errorf("OCID = %q, want %q", res.OCID, "ocid1.compartment.oc1..bbb")
	}
	if res.Name != "prod" {
		t.Errorf("Name = %q, want %q", res.Name, "prod")
	}
}

func TestResolver_ResolveOCID_NotFound(t *testing.T) {
	lister := &fakeLister{compartments: []compartments.Compartment{
		{OCID: "ocid1.compartment.oc1..aaa", Name: "dev"},
	}}
	resolver := newResolver(lister)

	_, err := resolver.ResolveOCID(context.Background(), "staging")
	if !errors.Is(err, compartments.ErrNotFound) {
		t.Errorf("ResolveOCID() error = %v, want ErrNotFound", err)
	}
}

func TestResolver_ResolveOCID_CaseSensitive(t *testing.T) {
	lister := &fakeLister{compartments: []compartments.Compartment{
		{OCID: "ocid1.compartment.oc1..aaa", Name: "Dev"},
	}}
	resolver := newResolver(lister)

	_, err := resolver.ResolveOCID(context.Background(), "dev")
	if !errors.Is(err, compartments.ErrNotFound) {
		t.Errorf("ResolveOCID() error = %v, want ErrNotFound for case mismatch", err)
	}
}

func TestResolver_ResolveOCID_FirstMatchWins(t *testing.T) {
	lister := &fakeLister{compartments: []compartments.Compartment{
		{OCID: "ocid1.compartment.oc1..first", Name: "dev"},
		{OCID: "ocid1.compartment.oc1..second", Name: "dev"},
	}}
	resolver := newResolver(lister)

	res, err := resolver.ResolveOCID(context.Background(), "dev")
	if err != nil {
		t.Fatalf("ResolveOCID() failed: %v", err)
	}
	if res.OCID != "ocid1.compartment.oc1..first" {
		t.Errorf("OCID = %q, want first listing match", res.OCID)
	}
}

func TestResolver_ResolveOCID_RemoteFailure(t *testing.T) {
	lister := &fakeLister{err: errors.New("status 502")}
	resolver := newResolver(lister)

	_, err := resolver.ResolveOCID(context.Background(), "dev")
	if !errors.Is(err, compartments.ErrRemote) {
		t.Errorf("ResolveOCID() error = %v, want ErrRemote", err)
	}
	if errors.Is(err, compartments.ErrNotFound) {
		t.Error("listing failure must not be reported as not found")
	}
}

func TestResolver_ResolveOCID_NoCaching(t *testing.T) {
	lister := &fakeLister{compartments: []compartments.Compartment{
		{OCID: "ocid1.compartment.oc1..aaa", Name: "dev"},
	}}
	resolver := newResolver(lister)

	for range 3 {
		if _, err := resolver.ResolveOCID(context.Background(), "dev"); err != nil {
			t.Fatalf("ResolveOCID() failed: %v", err)
		}
	}
	if lister.calls != 3 {
		t.Errorf("lister calls = %d, want 3 (one per resolution)", lister.calls)
	}
}

func TestResolver_ResolveOCID_Timeout(t *testing.T) {
	blocked := &blockingLister{release: make(chan struct{})}
	defer close(blocked.release)

	resolver := compartments.NewResolver(blocked, slog.Default(), 10*time.Millisecond)

	_, err := resolver.ResolveOCID(context.Background(), "dev")
	if !errors.Is(err, compartments.ErrRemote) {
		t.Errorf("ResolveOCID() error = %v, want ErrRemote on timeout", err)
	}
}

type blockingLister struct {
	release chan struct{}
}

func (b *blockingLister) ListCompartments(ctx context.Context) ([]compartments.Compartment, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-b.release:
		return nil, nil
	}
}

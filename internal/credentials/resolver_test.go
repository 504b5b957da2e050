package credentials_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/adbstack/agent-tools/internal/configstore"
	"github.com/adbstack/agent-tools/internal/credentials"
	"github.com/adbstack/agent-tools/pkg/pagination"
)

type fakeStore struct {
	entries map[string]string
	err     error
}

func (f *fakeStore) Get(ctx context.Context, agent, key string) (*configstore.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	value, ok := f.entries[agent+"/"+key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", configstore.ErrNotFound, key)
	}
	return &configstore.Entry{Key: key, Value: value, Agent: agent}, nil
}

func (f *fakeStore) Set(ctx context.Context, cmd configstore.SetCommand) (*configstore.Entry, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeStore) List(ctx context.Context, agent string) ([]configstore.Entry, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeStore) Search(ctx context.Context, page pagination.PageRequest, filters configstore.Filters) (*pagination.PageResult[configstore.Entry], error) {
	return nil, errors.New("not implemented")
}

func TestResolver_Resolve_ExplicitWins(t *testing.T) {
	store := &fakeStore{entries: map[string]string{
		"GENAI/CREDENTIAL_NAME": "STORED_CRED",
	}}
	resolver := credentials.NewResolver(store)

	got, err := resolver.Resolve(context.Background(), "MY_CRED", credentials.Caller{Agent: "GENAI"})
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if got != "MY_CRED" {
		t.Errorf("Resolve() = %q, want %q", got, "MY_CRED")
	}
}

func TestResolver_Resolve_FallsBackToStore(t *testing.T) {
	store := &fakeStore{entries: map[string]string{
		"GENAI/CREDENTIAL_NAME": "VAULT_CRED",
	}}
	resolver := credentials.NewResolver(store)

	got, err := resolver.Resolve(context.Background(), "", credentials.Caller{Agent: "GENAI"})
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if got != "VAULT_CRED" {
		t.Errorf("Resolve() = %q, want %q", got, "VAULT_CRED")
	}
}

func TestResolver_Resolve_ScopedByAgent(t *testing.T) {
	store := &fakeStore{entries: map[string]string{
		"GENAI/CREDENTIAL_NAME": "GENAI_CRED",
		"OPS/CREDENTIAL_NAME":   "OPS_CRED",
	}}
	resolver := credentials.NewResolver(store)

	got, err := resolver.Resolve(context.Background(), "", credentials.Caller{Agent: "OPS"})
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if got != "OPS_CRED" {
		t.Errorf("Resolve() = %q, want %q", got, "OPS_CRED")
	}
}

func TestResolver_Resolve_MissingConfiguration(t *testing.T) {
	resolver := credentials.NewResolver(&fakeStore{entries: map[string]string{}})

	_, err := resolver.Resolve(context.Background(), "", credentials.Caller{Agent: "GENAI"})
	if !errors.Is(err, credentials.ErrConfigurationMissing) {
		t.Errorf("Resolve() error = %v, want ErrConfigurationMissing", err)
	}
}

func TestResolver_Resolve_EmptyStoredValue(t *testing.T) {
	store := &fakeStore{entries: map[string]string{
		"GENAI/CREDENTIAL_NAME": "",
	}}
	resolver := credentials.NewResolver(store)

	_, err := resolver.Resolve(context.Background(), "", credentials.Caller{Agent: "GENAI"})
	if !errors.Is(err, credentials.ErrConfigurationMissing) {
		t.Errorf("Resolve() error = %v, want ErrConfigurationMissing", err)
	}
}

func TestResolver_Resolve_StoreErrorPropagates(t *testing.T) {
	storeErr := errors.New("connection refused")
	resolver := credentials.NewResolver(&fakeStore{err: storeErr})

	_, err := resolver.Resolve(context.Background(), "", credentials.Caller{Agent: "GENAI"})
	if !errors.Is(err, storeErr) {
		t.Errorf("Resolve() error = %v, want wrapped store error", err)
	}
	if errors.Is(err, credentials.ErrConfigurationMissing) {
		t.Error("store failure must not be reported as missing configuration")
	}
}

func TestResolver_Resolve_ExplicitSkipsStore(t *testing.T) {
	resolver := credentials.NewResolver(&fakeStore{err: errors.New("unreachable")})

	got, err := resolver.Resolve(context.Background(), "MY_CRED", credentials.Caller{Agent: "GENAI"})
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if got != "MY_CRED" {
		t.Errorf("Resolve() = %q, want %q", got, "MY_CRED")
	}
}

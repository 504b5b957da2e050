package installer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/adbstack/agent-tools/internal/compartments"
	"github.com/adbstack/agent-tools/internal/configstore"
	"github.com/adbstack/agent-tools/internal/teams"
	"github.com/adbstack/agent-tools/internal/tools"
	"github.com/adbstack/agent-tools/pkg/pagination"
)

type memoryStore struct {
	entries map[string]string
	err     error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{entries: make(map[string]string)}
}

func (m *memoryStore) Get(ctx context.Context, agent, key string) (*configstore.Entry, error) {
	value, ok := m.entries[agent+"/"+key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", configstore.ErrNotFound, key)
	}
	return &configstore.Entry{Key: key, Value: value, Agent: agent}, nil
}

func (m *memoryStore) Set(ctx context.Context, cmd configstore.SetCommand) (*configstore.Entry, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.entries[cmd.Agent+"/"+cmd.Key] = cmd.Value
	return &configstore.Entry{Key: cmd.Key, Value: cmd.Value, Agent: cmd.Agent}, nil
}

func (m *memoryStore) List(ctx context.Context, agent string) ([]configstore.Entry, error) {
	return nil, errors.New("not implemented")
}

func (m *memoryStore) Search(ctx context.Context, page pagination.PageRequest, filters configstore.Filters) (*pagination.PageResult[configstore.Entry], error) {
	return nil, errors.New("not implemented")
}

type fakeDefinitions struct {
	installed *teams.Definitions
	err       error
}

func (f *fakeDefinitions) ReplaceAll(ctx context.Context, defs teams.Definitions) error {
	if f.err != nil {
		return f.err
	}
	f.installed = &defs
	return nil
}

func (f *fakeDefinitions) Tasks(ctx context.Context) ([]teams.Task, error)   { return nil, nil }
func (f *fakeDefinitions) Agents(ctx context.Context) ([]teams.Agent, error) { return nil, nil }
func (f *fakeDefinitions) Teams(ctx context.Context) ([]teams.Team, error)   { return nil, nil }
func (f *fakeDefinitions) FindTeam(ctx context.Context, name string) (*teams.Team, error) {
	return nil, nil
}

type fakeRegistrar struct {
	called bool
	report tools.Report
}

func (f *fakeRegistrar) RegisterAll(ctx context.Context) tools.Report {
	f.called = true
	return f.report
}

type fakeResolver struct {
	resolution *compartments.Resolution
	err        error
}

func (f *fakeResolver) ResolveOCID(ctx context.Context, name string) (*compartments.Resolution, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resolution, nil
}

type fixture struct {
	store     *memoryStore
	defs      *fakeDefinitions
	registrar *fakeRegistrar
	seq       *Sequencer
}

func newFixture(resolver Resolver) *fixture {
	f := &fixture{
		store:     newMemoryStore(),
		defs:      &fakeDefinitions{},
		registrar: &fakeRegistrar{},
	}
	f.seq = NewSequencer(nil, f.store, f.defs, f.registrar, resolver, slog.Default())
	f.seq.preflight = func(ctx context.Context, db *sql.DB) error { return nil }
	f.seq.migrate = func(db *sql.DB) error { return nil }
	return f
}

func TestSequencer_Run(t *testing.T) {
	f := newFixture(nil)

	truthy := true
	err := f.seq.Run(context.Background(), Options{
		Agent: "GENAI",
		Params: SetupParams{
			UseResourcePrincipal: &truthy,
			CredentialName:       "VAULT_CRED",
			CompartmentOCID:      "ocid1.compartment.oc1..aaa",
		},
	})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	want := map[string]string{
		"GENAI/CREDENTIAL_NAME":           "VAULT_CRED",
		"GENAI/COMPARTMENT_OCID":          "ocid1.compartment.oc1..aaa",
		"GENAI/ENABLE_RESOURCE_PRINCIPAL": "true",
	}
	for key, value := range want {
		if f.store.entries[key] != value {
			t.Errorf("entries[%q] = %q, want %q", key, f.store.entries[key], value)
		}
	}

	if f.defs.installed == nil {
		t.Fatal("definitions not installed")
	}
	if len(f.defs.installed.Tasks) == 0 || len(f.defs.installed.Teams) == 0 {
		t.Error("installed definitions incomplete")
	}
	if !f.registrar.called {
		t.Error("tool registration not attempted")
	}
}

func TestSequencer_Run_RequiresAgent(t *testing.T) {
	f := newFixture(nil)

	err := f.seq.Run(context.Background(), Options{})
	if !errors.Is(err, ErrSetup) {
		t.Errorf("Run() error = %v, want ErrSetup", err)
	}
}

func TestSequencer_Run_PreflightFailureAborts(t *testing.T) {
	f := newFixture(nil)
	f.seq.preflight = func(ctx context.Context, db *sql.DB) error {
		return errors.New("role lacks CREATE")
	}

	err := f.seq.Run(context.Background(), Options{Agent: "GENAI"})
	if !errors.Is(err, ErrSetup) {
		t.Fatalf("Run() error = %v, want ErrSetup", err)
	}
	if f.registrar.called {
		t.Error("registration ran after fatal preflight failure")
	}
	if f.defs.installed != nil {
		t.Error("definitions installed after fatal preflight failure")
	}
}

func TestSequencer_Run_MigrationFailureAborts(t *testing.T) {
	f := newFixture(nil)
	f.seq.migrate = func(db *sql.DB) error { return errors.New("syntax error") }

	err := f.seq.Run(context.Background(), Options{Agent: "GENAI"})
	if !errors.Is(err, ErrSetup) {
		t.Fatalf("Run() error = %v, want ErrSetup", err)
	}
	if f.registrar.called {
		t.Error("registration ran after fatal migration failure")
	}
}

func TestSequencer_Run_DefinitionFailureAborts(t *testing.T) {
	f := newFixture(nil)
	f.defs.err = errors.New("insert failed")

	err := f.seq.Run(context.Background(), Options{Agent: "GENAI"})
	if !errors.Is(err, ErrSetup) {
		t.Fatalf("Run() error = %v, want ErrSetup", err)
	}
	if f.registrar.called {
		t.Error("registration ran after fatal definition failure")
	}
}

func TestSequencer_Run_RegistrationFailureNonFatal(t *testing.T) {
	f := newFixture(nil)
	f.registrar.report = tools.Report{
		Registered: []string{"resolve_compartment"},
		Failed:     map[string]error{"create_bucket": errors.New("insert failed")},
	}

	if err := f.seq.Run(context.Background(), Options{Agent: "GENAI"}); err != nil {
		t.Errorf("Run() failed: %v, want registration failures tolerated", err)
	}
}

func TestSequencer_Run_OmittedKeysUntouched(t *testing.T) {
	f := newFixture(nil)
	f.store.entries["GENAI/CREDENTIAL_NAME"] = "EXISTING_CRED"

	err := f.seq.Run(context.Background(), Options{
		Agent:  "GENAI",
		Params: SetupParams{CompartmentOCID: "ocid1.compartment.oc1..aaa"},
	})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if got := f.store.entries["GENAI/CREDENTIAL_NAME"]; got != "EXISTING_CRED" {
		t.Errorf("CREDENTIAL_NAME = %q, want existing value preserved", got)
	}
	if _, ok := f.store.entries["GENAI/ENABLE_RESOURCE_PRINCIPAL"]; ok {
		t.Error("ENABLE_RESOURCE_PRINCIPAL written without being provided")
	}
}

func TestSequencer_Run_ResolvesCompartmentName(t *testing.T) {
	f := newFixture(&fakeResolver{resolution: &compartments.Resolution{
		OCID: "ocid1.compartment.oc1..resolved",
		Name: "dev",
	}})

	err := f.seq.Run(context.Background(), Options{
		Agent:  "GENAI",
		Params: SetupParams{CompartmentName: "dev"},
	})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if got := f.store.entries["GENAI/COMPARTMENT_NAME"]; got != "dev" {
		t.Errorf("COMPARTMENT_NAME = %q, want %q", got, "dev")
	}
	if got := f.store.entries["GENAI/COMPARTMENT_OCID"]; got != "ocid1.compartment.oc1..resolved" {
		t.Errorf("COMPARTMENT_OCID = %q, want resolved OCID", got)
	}
}

func TestSequencer_Run_ResolutionFailureNonFatal(t *testing.T) {
	f := newFixture(&fakeResolver{err: compartments.ErrRemote})

	err := f.seq.Run(context.Background(), Options{
		Agent:  "GENAI",
		Params: SetupParams{CompartmentName: "dev"},
	})
	if err != nil {
		t.Fatalf("Run() failed: %v, want resolution failure tolerated", err)
	}

	if got := f.store.entries["GENAI/COMPARTMENT_NAME"]; got != "dev" {
		t.Errorf("COMPARTMENT_NAME = %q, want name stored despite failed resolution", got)
	}
	if _, ok := f.store.entries["GENAI/COMPARTMENT_OCID"]; ok {
		t.Error("COMPARTMENT_OCID written despite failed resolution")
	}
}

func TestSequencer_Run_ExplicitOCIDSkipsResolution(t *testing.T) {
	resolver := &fakeResolver{err: errors.New("must not be called")}
	f := newFixture(resolver)

	err := f.seq.Run(context.Background(), Options{
		Agent: "GENAI",
		Params: SetupParams{
			CompartmentName: "dev",
			CompartmentOCID: "ocid1.compartment.oc1..explicit",
		},
	})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if got := f.store.entries["GENAI/COMPARTMENT_OCID"]; got != "ocid1.compartment.oc1..explicit" {
		t.Errorf("COMPARTMENT_OCID = %q, want explicit value", got)
	}
}

func TestSequencer_Run_ConfigFailureAborts(t *testing.T) {
	f := newFixture(nil)
	f.store.err = errors.New("insert failed")

	err := f.seq.Run(context.Background(), Options{
		Agent:  "GENAI",
		Params: SetupParams{CredentialName: "VAULT_CRED"},
	})
	if !errors.Is(err, ErrSetup) {
		t.Fatalf("Run() error = %v, want ErrSetup", err)
	}
	if f.registrar.called {
		t.Error("registration ran after fatal configuration failure")
	}
}

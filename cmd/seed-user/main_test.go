package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"loanflow.backend/internal/config"
	"loanflow.backend/internal/domain/entities"
	"loanflow.backend/internal/usecases"
)

type fakeSeedRuntime struct {
	got usecases.RegisterInput
	out *usecases.AuthOutput
	err error
}

func (f *fakeSeedRuntime) Register(ctx context.Context, input usecases.RegisterInput) (*usecases.AuthOutput, error) {
	f.got = input
	return f.out, f.err
}

func testSeedDeps(rt seedUserRuntime, out io.Writer) seedUserDeps {
	return seedUserDeps{
		loadEnv: func() error { return nil },
		loadCfg: func() *config.Config { return &config.Config{} },
		prepare: func(cfg *config.Config) (seedUserRuntime, io.Closer, error) {
			return rt, nil, nil
		},
		out: out,
	}
}

func TestRunSeedUser_CreatesBackOfficeUser(t *testing.T) {
	id := uuid.New()
	rt := &fakeSeedRuntime{out: &usecases.AuthOutput{
		User: &entities.User{ID: id, Email: "admin@loanflow.local", Role: entities.RoleLoanAdmin},
	}}
	var buf bytes.Buffer

	err := runSeedUser([]string{
		"--email", "admin@loanflow.local",
		"--name", "Ops Admin",
		"--password", "LoanFlow.Ops-2026",
	}, testSeedDeps(rt, &buf))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rt.got.Email != "admin@loanflow.local" || rt.got.Name != "Ops Admin" {
		t.Fatalf("unexpected register input: %+v", rt.got)
	}
	if rt.got.Role != entities.RoleLoanAdmin {
		t.Fatalf("expected default LOAN_ADMIN role, got %s", rt.got.Role)
	}
	if !strings.Contains(buf.String(), "user_id="+id.String()) {
		t.Fatalf("output missing user id: %s", buf.String())
	}
}

func TestRunSeedUser_ExplicitRole(t *testing.T) {
	rt := &fakeSeedRuntime{out: &usecases.AuthOutput{
		User: &entities.User{ID: uuid.New(), Email: "coord@loanflow.local", Role: entities.RoleCoordinator},
	}}
	var buf bytes.Buffer

	err := runSeedUser([]string{
		"--email", "coord@loanflow.local",
		"--name", "Coordinator",
		"--password", "pw-123456",
		"--role", "COORDINATOR",
	}, testSeedDeps(rt, &buf))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rt.got.Role != entities.RoleCoordinator {
		t.Fatalf("expected COORDINATOR, got %s", rt.got.Role)
	}
}

func TestRunSeedUser_MissingFlags(t *testing.T) {
	err := runSeedUser([]string{"--email", "a@b.c"}, testSeedDeps(&fakeSeedRuntime{}, io.Discard))
	if err == nil {
		t.Fatal("expected error for missing flags")
	}
}

func TestRunSeedUser_UnknownRole(t *testing.T) {
	err := runSeedUser([]string{
		"--email", "a@b.c",
		"--name", "A",
		"--password", "pw-123456",
		"--role", "SUPERVISOR",
	}, testSeedDeps(&fakeSeedRuntime{}, io.Discard))
	if err == nil || !strings.Contains(err.Error(), "unknown role") {
		t.Fatalf("expected unknown role error, got %v", err)
	}
}

func TestRunSeedUser_RegisterFailure(t *testing.T) {
	rt := &fakeSeedRuntime{err: errors.New("email already registered")}
	err := runSeedUser([]string{
		"--email", "dup@loanflow.local",
		"--name", "Dup",
		"--password", "pw-123456",
	}, testSeedDeps(rt, io.Discard))
	if err == nil || !strings.Contains(err.Error(), "failed creating user") {
		t.Fatalf("expected wrapped register error, got %v", err)
	}
}

func TestRunSeedUser_PrepareFailure(t *testing.T) {
	deps := testSeedDeps(&fakeSeedRuntime{}, io.Discard)
	deps.prepare = func(cfg *config.Config) (seedUserRuntime, io.Closer, error) {
		return nil, nil, errors.New("db unreachable")
	}
	err := runSeedUser([]string{
		"--email", "a@b.c",
		"--name", "A",
		"--password", "pw-123456",
	}, deps)
	if err == nil || !strings.Contains(err.Error(), "db unreachable") {
		t.Fatalf("expected prepare error, got %v", err)
	}
}

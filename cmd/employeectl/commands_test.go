package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/ogurasousui/codex-employee-dashboard/internal/core/auth"
	"github.com/ogurasousui/codex-employee-dashboard/internal/core/employee"
	"github.com/ogurasousui/codex-employee-dashboard/internal/platform/bootstrap"
)

type cli struct {
	t          *testing.T
	configPath string
	dir        string
}

func newCLI(t *testing.T) *cli {
	t.Helper()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := "server:\n  listen_addr: \":0\"\nstorage:\n  driver: file\n  file:\n    path: " + filepath.Join(dir, "kv.json") + "\n"
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return &cli{t: t, configPath: configPath, dir: dir}
}

func (c *cli) run(args ...string) (string, error) {
	c.t.Helper()

	var out bytes.Buffer
	err := run(context.Background(), append([]string{"-config", c.configPath}, args...), &out, bootstrap.WithBcryptCost(bcrypt.MinCost))
	return out.String(), err
}

func (c *cli) mustRun(args ...string) string {
	c.t.Helper()

	out, err := c.run(args...)
	if err != nil {
		c.t.Fatalf("%v returned error: %v", args, err)
	}
	return out
}

func TestCLI_RequiresLogin(t *testing.T) {
	t.Parallel()

	c := newCLI(t)

	if _, err := c.run("list"); !errors.Is(err, errLoginRequired) {
		t.Fatalf("expected login required, got %v", err)
	}
	if out := c.mustRun("whoami"); !strings.Contains(out, "Not logged in") {
		t.Fatalf("unexpected whoami output %q", out)
	}
	if _, err := c.run("login", "-email", auth.DefaultEmail, "-password", "nope"); err == nil || err.Error() != auth.InvalidCredentialsMessage {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
}

func TestCLI_SessionAndEmployeeLifecycle(t *testing.T) {
	t.Parallel()

	c := newCLI(t)

	if out := c.mustRun("login", "-email", auth.DefaultEmail, "-password", auth.DefaultPassword); !strings.Contains(out, auth.DefaultName) {
		t.Fatalf("unexpected login output %q", out)
	}
	if out := c.mustRun("whoami"); !strings.Contains(out, auth.DefaultEmail) {
		t.Fatalf("expected persisted session, got %q", out)
	}

	samples := len(employee.SampleEmployees())
	if out := c.mustRun("list"); !strings.Contains(out, fmt.Sprintf("Showing %d of %d employees", samples, samples)) {
		t.Fatalf("expected %d seeded employees, got:\n%s", samples, out)
	}

	var created employee.Employee
	out := c.mustRun("add", "-name", "Arjun Mehta", "-gender", "Male", "-dob", "1994-02-03", "-state", "Gujarat", "-inactive")
	if err := json.Unmarshal([]byte(out), &created); err != nil {
		t.Fatalf("failed to decode add output %q: %v", out, err)
	}
	if created.IsActive || !strings.HasPrefix(created.ID, "EMP-") {
		t.Fatalf("unexpected created employee %+v", created)
	}

	if out := c.mustRun("list", "-status", "inactive", "-search", "arjun"); !strings.Contains(out, fmt.Sprintf("Showing 1 of %d employees", samples+1)) {
		t.Fatalf("unexpected filtered list:\n%s", out)
	}

	var updated employee.Employee
	out = c.mustRun("update", created.ID, "-state", "Goa", "-active", "true")
	if err := json.Unmarshal([]byte(out), &updated); err != nil {
		t.Fatalf("failed to decode update output %q: %v", out, err)
	}
	if updated.State != "Goa" || !updated.IsActive || updated.FullName != "Arjun Mehta" {
		t.Fatalf("unexpected updated employee %+v", updated)
	}

	if out := c.mustRun("toggle", created.ID); !strings.Contains(out, "Arjun Mehta is now Inactive") {
		t.Fatalf("unexpected toggle output %q", out)
	}
	if out := c.mustRun("stats"); !strings.Contains(out, fmt.Sprintf("Total: %d", samples+1)) {
		t.Fatalf("unexpected stats output %q", out)
	}
	if out := c.mustRun("recent", "-n", "1"); !strings.Contains(out, created.ID) {
		t.Fatalf("expected newest employee first, got:\n%s", out)
	}

	xlsx := filepath.Join(c.dir, "out.xlsx")
	if out := c.mustRun("export", "-o", xlsx, "-gender", "Male"); !strings.Contains(out, "Exported") {
		t.Fatalf("unexpected export output %q", out)
	}
	if info, err := os.Stat(xlsx); err != nil || info.Size() == 0 {
		t.Fatalf("expected workbook written, err=%v", err)
	}

	if out := c.mustRun("print", "-title", "Team"); !strings.HasPrefix(out, "Team\n====") {
		t.Fatalf("unexpected print output:\n%s", out)
	}

	c.mustRun("delete", created.ID)
	if _, err := c.run("get", created.ID); !errors.Is(err, employee.ErrEmployeeNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if _, err := c.run("delete", created.ID); !errors.Is(err, employee.ErrEmployeeNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}

	c.mustRun("logout")
	if _, err := c.run("stats"); !errors.Is(err, errLoginRequired) {
		t.Fatalf("expected login required after logout, got %v", err)
	}
}

func TestCLI_InvalidInput(t *testing.T) {
	t.Parallel()

	c := newCLI(t)
	c.mustRun("login", "-email", auth.DefaultEmail, "-password", auth.DefaultPassword)

	if _, err := c.run("frobnicate"); err == nil {
		t.Fatalf("expected unknown command error")
	}
	if _, err := c.run("get"); err == nil {
		t.Fatalf("expected missing id error")
	}
	if _, err := c.run("list", "-status", "retired"); !errors.Is(err, employee.ErrInvalidStatusFilter) {
		t.Fatalf("expected invalid status filter, got %v", err)
	}
	if _, err := c.run("add", "-name", "X", "-gender", "Male", "-dob", "1990-01-01", "-state", "Goa"); !errors.Is(err, employee.ErrInvalidFullName) {
		t.Fatalf("expected invalid name, got %v", err)
	}
	if _, err := c.run("recent", "-n", "-1"); err == nil {
		t.Fatalf("expected negative -n error")
	}
}

package checks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ulink-doctor/internal/domain/model"
)

func writeChecks(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "checks.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write checks config: %v", err)
	}
	return path
}

func TestLoad_MissingFileIsEmptyConfig(t *testing.T) {
	loaded, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded.Config.Checks) != 0 {
		t.Fatalf("expected empty config, got %+v", loaded.Config)
	}

	loaded, err = Load("")
	if err != nil {
		t.Fatalf("Load empty path: %v", err)
	}
	if loaded == nil {
		t.Fatalf("expected non-nil Loaded for empty path")
	}
}

func TestLoad_DisableAndDowngrade(t *testing.T) {
	path := writeChecks(t, `
version: 1
checks:
  - name: "iOS Team Identifier"
    enabled: false
  - name: "iOS Associated Domains"
    severity: warning
`)
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.SHA256 == "" {
		t.Fatalf("expected file hash to be recorded")
	}

	findings := []model.Finding{
		model.Success(model.CheckIOSBundleID, "ok"),
		model.Warn(model.CheckIOSTeamID, "warned", ""),
		model.Fail(model.CheckIOSDomains, "failed", ""),
	}
	out := loaded.Apply(findings)

	if len(out) != 2 {
		t.Fatalf("findings = %d, want 2 after disable", len(out))
	}
	// 顺序保持不变。
	if out[0].CheckName != model.CheckIOSBundleID {
		t.Fatalf("out[0] = %q, want %q", out[0].CheckName, model.CheckIOSBundleID)
	}
	if out[1].CheckName != model.CheckIOSDomains || out[1].Severity != model.SeverityWarning {
		t.Fatalf("out[1] = %+v, want downgraded %q", out[1], model.CheckIOSDomains)
	}
}

func TestLoad_DowngradeOnlyAffectsErrors(t *testing.T) {
	path := writeChecks(t, `
checks:
  - name: "iOS Associated Domains"
    severity: warning
`)
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	out := loaded.Apply([]model.Finding{model.Success(model.CheckIOSDomains, "ok")})
	if out[0].Severity != model.SeveritySuccess {
		t.Fatalf("severity = %s, success must not be rewritten", out[0].Severity)
	}
}

func TestLoad_RejectsUnknownCheck(t *testing.T) {
	path := writeChecks(t, `
checks:
  - name: "No Such Check"
    enabled: false
`)
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "unknown check") {
		t.Fatalf("err = %v, want unknown check error", err)
	}
}

func TestLoad_RejectsDuplicate(t *testing.T) {
	path := writeChecks(t, `
checks:
  - name: "iOS Team Identifier"
    enabled: false
  - name: "iOS Team Identifier"
    severity: warning
`)
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("err = %v, want duplicate error", err)
	}
}

func TestLoad_RejectsSeverityUpgrade(t *testing.T) {
	path := writeChecks(t, `
checks:
  - name: "iOS Associated Domains"
    severity: error
`)
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "unsupported severity") {
		t.Fatalf("err = %v, want unsupported severity error", err)
	}
}

func TestApply_NilLoadedPassthrough(t *testing.T) {
	var loaded *Loaded
	findings := []model.Finding{model.Fail(model.CheckIOSDomains, "failed", "")}
	out := loaded.Apply(findings)
	if len(out) != 1 || out[0].Severity != model.SeverityError {
		t.Fatalf("nil Loaded must pass findings through, got %+v", out)
	}
}

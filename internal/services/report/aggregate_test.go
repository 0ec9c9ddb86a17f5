package report

import (
	"testing"
	"time"

	"ulink-doctor/internal/domain/model"
)

func TestBuild_Counts(t *testing.T) {
	findings := []model.Finding{
		model.Success(model.CheckIOSBundleID, "ok"),
		model.Success(model.CheckIOSScheme, "ok"),
		model.Warn(model.CheckIOSTeamID, "warn", ""),
		model.Fail(model.CheckIOSDomains, "bad", ""),
		{CheckName: model.CheckIOSDependency, Severity: model.SeveritySkipped, Message: "skip"},
	}

	at := time.Date(2026, 8, 24, 10, 30, 0, 0, time.FixedZone("CST", 8*3600))
	rep := Build(model.KindIOS, "proj_1", findings, at)

	if rep.SuccessCount != 2 || rep.WarningCount != 1 || rep.ErrorCount != 1 || rep.SkippedCount != 1 {
		t.Fatalf("counts = %d/%d/%d/%d, want 2/1/1/1",
			rep.SuccessCount, rep.WarningCount, rep.ErrorCount, rep.SkippedCount)
	}
	if !rep.HasErrors() || !rep.HasWarnings() {
		t.Fatalf("HasErrors/HasWarnings = %v/%v", rep.HasErrors(), rep.HasWarnings())
	}
	if rep.GeneratedAt.Location() != time.UTC {
		t.Fatalf("GeneratedAt not normalized to UTC")
	}

	// Finding 顺序原样保留。
	for i := range findings {
		if rep.Findings[i].CheckName != findings[i].CheckName {
			t.Fatalf("findings[%d] = %q, order must be preserved", i, rep.Findings[i].CheckName)
		}
	}
}

func TestBuild_Empty(t *testing.T) {
	rep := Build(model.KindAndroid, "", nil, time.Now())
	if rep.HasErrors() || rep.HasWarnings() {
		t.Fatalf("empty report must not flag errors or warnings")
	}
	if rep.SuccessCount+rep.WarningCount+rep.ErrorCount+rep.SkippedCount != 0 {
		t.Fatalf("counts must be zero")
	}
}

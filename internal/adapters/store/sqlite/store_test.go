package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"ulink-doctor/internal/domain/model"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	db.SetMaxOpenConns(1)

	if err := NewMigrator(db).Up(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func sampleReport(projectID string, errors int) model.Report {
	findings := []model.Finding{
		model.Success(model.CheckIOSBundleID, "ok"),
	}
	for i := 0; i < errors; i++ {
		findings = append(findings, model.Fail(model.CheckIOSDomains, "bad", ""))
	}
	return model.Report{
		Kind:         model.KindIOS,
		ProjectID:    projectID,
		Findings:     findings,
		GeneratedAt:  time.Unix(1756000000, 0).UTC(),
		SuccessCount: 1,
		ErrorCount:   errors,
	}
}

func TestSaveAndGetRun(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	store := NewStore(db)

	runID, err := store.SaveRun(ctx, "/tmp/proj", sampleReport("proj_1", 0))
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if runID == "" {
		t.Fatalf("empty run id")
	}

	r, err := store.GetRun(ctx, runID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if r == nil {
		t.Fatalf("run not found after save")
	}
	if r.ProjectID != "proj_1" || r.Kind != model.KindIOS || !r.Passed {
		t.Fatalf("record = %+v", r)
	}
	if len(r.ReportJSON) == 0 {
		t.Fatalf("report json missing")
	}

	missing, err := store.GetRun(ctx, "run_missing")
	if err != nil {
		t.Fatalf("GetRun missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown run id")
	}
}

func TestListRuns_FilterAndOrder(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	store := NewStore(db)

	repA := sampleReport("proj_a", 1)
	repA.GeneratedAt = time.Unix(1756000000, 0).UTC()
	repB := sampleReport("proj_b", 0)
	repB.GeneratedAt = time.Unix(1756000100, 0).UTC()

	if _, err := store.SaveRun(ctx, "/tmp/a", repA); err != nil {
		t.Fatalf("SaveRun a: %v", err)
	}
	if _, err := store.SaveRun(ctx, "/tmp/b", repB); err != nil {
		t.Fatalf("SaveRun b: %v", err)
	}

	runs, err := store.ListRuns(ctx, "", 10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("runs = %d, want 2", len(runs))
	}
	// 时间倒序：proj_b 在前。
	if runs[0].ProjectID != "proj_b" || runs[1].ProjectID != "proj_a" {
		t.Fatalf("order = %s, %s; want proj_b first", runs[0].ProjectID, runs[1].ProjectID)
	}
	if runs[0].Passed == runs[1].Passed {
		t.Fatalf("passed flags should differ, got %+v", runs)
	}

	only, err := store.ListRuns(ctx, "proj_a", 10)
	if err != nil {
		t.Fatalf("ListRuns filtered: %v", err)
	}
	if len(only) != 1 || only[0].ProjectID != "proj_a" {
		t.Fatalf("filtered runs = %+v", only)
	}
}

func TestVerifyRuns_DetectsTampering(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	store := NewStore(db)

	runID, err := store.SaveRun(ctx, "/tmp/proj", sampleReport("proj_1", 0))
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	res, err := store.VerifyRuns(ctx, "", 0)
	if err != nil {
		t.Fatalf("VerifyRuns: %v", err)
	}
	if res.Total != 1 || res.Failed != 0 {
		t.Fatalf("clean db: %+v", res)
	}

	// 篡改报告内容后复核必须报失败。
	if _, err := db.ExecContext(ctx,
		`UPDATE verification_runs SET report_json = ? WHERE run_id = ?`,
		[]byte(`{"tampered":true}`), runID); err != nil {
		t.Fatalf("tamper: %v", err)
	}

	res, err = store.VerifyRuns(ctx, "", 0)
	if err != nil {
		t.Fatalf("VerifyRuns after tamper: %v", err)
	}
	if res.Failed != 1 || len(res.Failures) != 1 || res.Failures[0].RunID != runID {
		t.Fatalf("tampered db: %+v", res)
	}
}

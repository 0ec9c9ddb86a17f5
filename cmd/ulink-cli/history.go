package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	sqliteadapter "ulink-doctor/internal/adapters/store/sqlite"
	"ulink-doctor/internal/app"
)

// runHistory 是历史库二级命令路由：list / show / verify。
func runHistory(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage:")
		fmt.Println("  ulink-cli history list [--project-id ID] [--limit N]")
		fmt.Println("  ulink-cli history show --run-id RUN_ID")
		fmt.Println("  ulink-cli history verify [--project-id ID]")
		return fmt.Errorf("history: missing subcommand")
	}

	switch args[0] {
	case "list":
		return runHistoryList(ctx, args[1:])
	case "show":
		return runHistoryShow(ctx, args[1:])
	case "verify":
		return runHistoryVerify(ctx, args[1:])
	default:
		return fmt.Errorf("history: unknown subcommand: %s", args[0])
	}
}

// runHistoryList 按时间倒序打印运行记录摘要。
func runHistoryList(ctx context.Context, args []string) error {
	cfg := app.DefaultConfig()

	fs := flag.NewFlagSet("history list", flag.ContinueOnError)
	dbPath := fs.String("db", cfg.DBPath, "sqlite database path")
	projectID := fs.String("project-id", "", "filter by remote project id (optional)")
	limit := fs.Int("limit", 50, "max records to list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	db, err := openHistoryDB(ctx, *dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := sqliteadapter.NewStore(db).ListRuns(ctx, *projectID, *limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}

	fmt.Printf("runs (%d):\n", len(runs))
	for _, r := range runs {
		verdict := "FAILED"
		if r.Passed {
			verdict = "PASSED"
		}
		at := time.Unix(r.GeneratedAt, 0).UTC().Format("2006-01-02 15:04:05")
		fmt.Printf("  %s  %s  project_id=%s kind=%s verdict=%s errors=%d warnings=%d\n",
			r.RunID, at, r.ProjectID, r.Kind, verdict, r.ErrorCount, r.WarningCount)
	}
	return nil
}

// runHistoryShow 打印单条运行记录，含完整报告 JSON。
func runHistoryShow(ctx context.Context, args []string) error {
	cfg := app.DefaultConfig()

	fs := flag.NewFlagSet("history show", flag.ContinueOnError)
	dbPath := fs.String("db", cfg.DBPath, "sqlite database path")
	runID := fs.String("run-id", "", "run id to show (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *runID == "" {
		return fmt.Errorf("--run-id is required")
	}

	db, err := openHistoryDB(ctx, *dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	r, err := sqliteadapter.NewStore(db).GetRun(ctx, *runID)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("run not found: %s", *runID)
	}

	verdict := "FAILED"
	if r.Passed {
		verdict = "PASSED"
	}
	fmt.Printf("run_id=%s\n", r.RunID)
	fmt.Printf("project_id=%s project_root=%s kind=%s\n", r.ProjectID, r.ProjectRoot, r.Kind)
	fmt.Printf("verdict=%s success=%d warnings=%d errors=%d skipped=%d\n",
		verdict, r.SuccessCount, r.WarningCount, r.ErrorCount, r.SkippedCount)
	fmt.Printf("generated_at=%s record_hash=%s\n",
		time.Unix(r.GeneratedAt, 0).UTC().Format(time.RFC3339), r.RecordHash)
	fmt.Println("report:")
	fmt.Println(string(r.ReportJSON))
	return nil
}

// runHistoryVerify 逐条复算 record_hash，检出被篡改或损坏的历史记录。
func runHistoryVerify(ctx context.Context, args []string) error {
	cfg := app.DefaultConfig()

	fs := flag.NewFlagSet("history verify", flag.ContinueOnError)
	dbPath := fs.String("db", cfg.DBPath, "sqlite database path")
	projectID := fs.String("project-id", "", "filter by remote project id (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	db, err := openHistoryDB(ctx, *dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	res, err := sqliteadapter.NewStore(db).VerifyRuns(ctx, *projectID, 0)
	if err != nil {
		return err
	}

	fmt.Printf("integrity check: total=%d failed=%d\n", res.Total, res.Failed)
	for _, f := range res.Failures {
		fmt.Printf("FAIL %s: stored=%s actual=%s\n", f.RunID, f.ExpectedHash, f.ActualHash)
	}
	if res.Failed > 0 {
		return fmt.Errorf("integrity check failed: %d corrupted record(s)", res.Failed)
	}
	return nil
}

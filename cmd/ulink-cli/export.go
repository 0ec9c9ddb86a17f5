package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	sqliteadapter "ulink-doctor/internal/adapters/store/sqlite"
	"ulink-doctor/internal/app"
	"ulink-doctor/internal/domain/model"
	"ulink-doctor/internal/services/reportpdf"
)

// runExport 把历史库中的某次运行导出为 PDF 或 JSON 归档文件。
func runExport(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage:")
		fmt.Println("  ulink-cli export pdf --run-id RUN_ID [--out DIR]")
		fmt.Println("  ulink-cli export json --run-id RUN_ID [--out DIR]")
		return fmt.Errorf("export: missing format (pdf|json)")
	}

	format := args[0]
	if format != "pdf" && format != "json" {
		return fmt.Errorf("export: unknown format: %s (want pdf or json)", format)
	}

	cfg := app.DefaultConfig()

	fs := flag.NewFlagSet("export "+format, flag.ContinueOnError)
	dbPath := fs.String("db", cfg.DBPath, "sqlite database path")
	runID := fs.String("run-id", "", "run id to export (required)")
	outDir := fs.String("out", cfg.ReportDir, "output directory")
	if err := fs.Parse(args[1:]); err != nil {
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

	run, err := sqliteadapter.NewStore(db).GetRun(ctx, *runID)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("run not found: %s", *runID)
	}

	var rep model.Report
	if err := json.Unmarshal(run.ReportJSON, &rep); err != nil {
		return fmt.Errorf("decode stored report %s: %w", *runID, err)
	}

	switch format {
	case "pdf":
		res, err := reportpdf.Export(rep, *outDir)
		if err != nil {
			return err
		}
		fmt.Printf("pdf exported: path=%s sha256=%s\n", res.PDFPath, res.PDFSHA256)
	case "json":
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			return fmt.Errorf("mkdir report dir: %w", err)
		}
		path := filepath.Join(*outDir, fmt.Sprintf("%s.json", run.RunID))
		raw, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		if err := os.WriteFile(path, raw, 0o644); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
		fmt.Printf("json exported: path=%s\n", path)
	}
	return nil
}

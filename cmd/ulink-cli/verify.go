package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"strings"
	"time"

	"ulink-doctor/internal/adapters/checks"
	"ulink-doctor/internal/adapters/remote"
	sqliteadapter "ulink-doctor/internal/adapters/store/sqlite"
	"ulink-doctor/internal/app"
	"ulink-doctor/internal/domain/model"
	"ulink-doctor/internal/services/crossref"
	"ulink-doctor/internal/services/extract"
	"ulink-doctor/internal/services/report"
)

// runVerify 执行一次完整校验：
// 定位工程 → 提取本地配置 → 与远端快照交叉比对 → 聚合输出报告。
// 报告中存在 error 级结论时返回非 0。
func runVerify(ctx context.Context, args []string) error {
	cfg := app.DefaultConfig()

	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	projectDir := fs.String("project", ".", "project root directory")
	remotePath := fs.String("remote", "", "path to the fetched remote config JSON (required)")
	bundleID := fs.String("bundle-id", "", "bundle id for multi-target disambiguation (optional)")
	checksPath := fs.String("checks", cfg.ChecksPath, "checks config file (optional)")
	dbPath := fs.String("db", cfg.DBPath, "sqlite database path")
	save := fs.Bool("save", false, "register the report in the run history database")
	asJSON := fs.Bool("json", false, "print the report as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*remotePath) == "" {
		return fmt.Errorf("--remote is required")
	}

	remoteCfg, err := remote.LoadConfigFile(*remotePath)
	if err != nil {
		return err
	}
	loaded, err := checks.Load(*checksPath)
	if err != nil {
		return err
	}

	res := extract.Extract(extract.Options{
		Root:              *projectDir,
		RequestedBundleID: strings.TrimSpace(*bundleID),
		SDKToken:          cfg.SDKToken,
	})
	if res.Kind == model.KindUnknown {
		return fmt.Errorf("unrecognized project type at %s", *projectDir)
	}

	// 多 target 且未命中请求的 bundle id：把候选列表直接给到用户。
	if strings.TrimSpace(*bundleID) != "" && !res.Targets.HasMatch() && res.Targets.HasMultipleTargets() {
		printTargetList(res.Targets)
		return fmt.Errorf("no target matches bundle id %q", *bundleID)
	}

	findings := collectFindings(res, *remoteCfg)
	findings = loaded.Apply(findings)
	rep := report.Build(res.Kind, remoteCfg.ProjectID, findings, time.Now())

	if *asJSON {
		raw, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		fmt.Println(string(raw))
	} else {
		printReport(rep)
	}

	if *save {
		db, err := openHistoryDB(ctx, *dbPath)
		if err != nil {
			return err
		}
		defer db.Close()

		runID, err := sqliteadapter.NewStore(db).SaveRun(ctx, *projectDir, rep)
		if err != nil {
			return err
		}
		fmt.Printf("run saved: run_id=%s db=%s\n", runID, *dbPath)
	}

	if rep.HasErrors() {
		return fmt.Errorf("verification failed: %d error(s)", rep.ErrorCount)
	}
	return nil
}

// collectFindings 按工程类型组合平台校验。
// Flutter 工程双端各跑一轮，再追加 pubspec 的 SDK 集成检查。
func collectFindings(res extract.Result, remoteCfg model.RemoteConfig) []model.Finding {
	var findings []model.Finding
	switch res.Kind {
	case model.KindIOS:
		findings = crossref.ValidateIOS(*res.IOS, remoteCfg)
	case model.KindAndroid:
		findings = crossref.ValidateAndroid(*res.Android, remoteCfg)
	case model.KindFlutter:
		findings = append(findings, crossref.ValidateIOS(*res.IOS, remoteCfg)...)
		findings = append(findings, crossref.ValidateAndroid(*res.Android, remoteCfg)...)
		findings = append(findings, crossref.ValidateFlutterDependency(res.Merged.FlutterDependency))
	}
	return findings
}

// printReport 输出控制台文本报告：摘要一行 + 非 success 结论逐条展开。
func printReport(rep model.Report) {
	verdict := "PASSED"
	if rep.HasErrors() {
		verdict = "FAILED"
	}
	fmt.Println("deep link verification completed")
	fmt.Printf("platform=%s project_id=%s verdict=%s success=%d warnings=%d errors=%d skipped=%d\n",
		rep.Kind, rep.ProjectID, verdict, rep.SuccessCount, rep.WarningCount, rep.ErrorCount, rep.SkippedCount)

	for _, f := range rep.Findings {
		switch f.Severity {
		case model.SeverityError:
			fmt.Printf("FAIL %s: %s\n", f.CheckName, f.Message)
		case model.SeverityWarning:
			fmt.Printf("WARN %s: %s\n", f.CheckName, f.Message)
		default:
			continue
		}
		if f.Remediation != "" {
			fmt.Printf("     fix: %s\n", f.Remediation)
		}
	}
}

func printTargetList(t model.TargetDiscoveryResult) {
	fmt.Printf("requested bundle id: %s\n", t.RequestedBundleID)
	fmt.Printf("discovered targets (%d):\n", len(t.AllTargets))
	for _, target := range t.AllTargets {
		fmt.Printf("  %s bundle_id=%s entitlements=%s\n", target.Name, target.BundleID, target.EntitlementsPath)
	}
}

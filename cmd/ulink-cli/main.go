package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	sqliteadapter "ulink-doctor/internal/adapters/store/sqlite"
	"ulink-doctor/internal/app"

	_ "modernc.org/sqlite"
)

// CLI 入口。所有子命令错误都统一输出到 stderr 并返回非 0 状态码。
func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run 是一级命令路由：verify / targets / history / export / migrate。
func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printUsage()
		return nil
	}

	switch args[0] {
	case "verify":
		return runVerify(ctx, args[1:])
	case "targets":
		return runTargets(ctx, args[1:])
	case "history":
		return runHistory(ctx, args[1:])
	case "export":
		return runExport(ctx, args[1:])
	case "migrate":
		return runMigrate(ctx, args[1:])
	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  ulink-cli verify --remote REMOTE_JSON [--project DIR] [--bundle-id ID] [--save]")
	fmt.Println("  ulink-cli targets [--project DIR] [--bundle-id ID]")
	fmt.Println("  ulink-cli history list|show|verify ...")
	fmt.Println("  ulink-cli export pdf|json --run-id RUN_ID")
	fmt.Println("  ulink-cli migrate [--db data/ulink-doctor.db]")
}

// runMigrate 执行 SQLite 迁移，确保校验历史库结构完整。
func runMigrate(ctx context.Context, args []string) error {
	cfg := app.DefaultConfig()

	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	dbPath := fs.String("db", cfg.DBPath, "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	db, err := openHistoryDB(ctx, *dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Printf("migrations applied successfully: db=%s\n", *dbPath)
	return nil
}

// openHistoryDB 打开历史库并保证迁移已执行。
func openHistoryDB(ctx context.Context, dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy_timeout: %w", err)
	}

	m := sqliteadapter.NewMigrator(db)
	if err := m.Up(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}
	return db, nil
}

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"ulink-doctor/internal/domain/model"
	"ulink-doctor/internal/platform/hash"
	"ulink-doctor/internal/platform/id"
)

// Store 封装校验历史库的读写逻辑。
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// SaveRun 登记一次完整校验运行。
// record_hash 由关键字段 + 报告 JSON 计算，供后续 history verify 复核。
func (s *Store) SaveRun(ctx context.Context, projectRoot string, rep model.Report) (string, error) {
	raw, err := json.Marshal(rep)
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	runID := id.New("run")
	generatedAt := rep.GeneratedAt.Unix()
	passed := 0
	if !rep.HasErrors() {
		passed = 1
	}
	recordHash := runRecordHash(runID, rep.ProjectID, string(rep.Kind), generatedAt, raw)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO verification_runs(
			run_id, project_id, project_root, kind,
			success_count, warning_count, error_count, skipped_count,
			passed, report_json, generated_at, record_hash
		)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, runID, rep.ProjectID, projectRoot, string(rep.Kind),
		rep.SuccessCount, rep.WarningCount, rep.ErrorCount, rep.SkippedCount,
		passed, raw, generatedAt, recordHash)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return runID, nil
}

// ListRuns 按时间倒序列出运行记录（projectID 为空表示全部项目）。
// 列表场景不回传 report_json，减少无谓读放大。
func (s *Store) ListRuns(ctx context.Context, projectID string, limit int) ([]model.RunRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT run_id, project_id, project_root, kind,
		       success_count, warning_count, error_count, skipped_count,
		       passed, generated_at, record_hash
		FROM verification_runs
	`
	args := []any{}
	if projectID != "" {
		query += ` WHERE project_id = ?`
		args = append(args, projectID)
	}
	query += ` ORDER BY generated_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []model.RunRecord
	for rows.Next() {
		var r model.RunRecord
		var kind string
		var passed int
		if err := rows.Scan(&r.RunID, &r.ProjectID, &r.ProjectRoot, &kind,
			&r.SuccessCount, &r.WarningCount, &r.ErrorCount, &r.SkippedCount,
			&passed, &r.GeneratedAt, &r.RecordHash); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Kind = model.ProjectKind(kind)
		r.Passed = passed == 1
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return out, nil
}

// GetRun 读取单条运行记录（含报告 JSON）。不存在时返回 nil。
func (s *Store) GetRun(ctx context.Context, runID string) (*model.RunRecord, error) {
	var r model.RunRecord
	var kind string
	var passed int
	err := s.db.QueryRowContext(ctx, `
		SELECT run_id, project_id, project_root, kind,
		       success_count, warning_count, error_count, skipped_count,
		       passed, report_json, generated_at, record_hash
		FROM verification_runs
		WHERE run_id = ?
		LIMIT 1
	`, runID).Scan(&r.RunID, &r.ProjectID, &r.ProjectRoot, &kind,
		&r.SuccessCount, &r.WarningCount, &r.ErrorCount, &r.SkippedCount,
		&passed, &r.ReportJSON, &r.GeneratedAt, &r.RecordHash)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get run %s: %w", runID, err)
	}
	r.Kind = model.ProjectKind(kind)
	r.Passed = passed == 1
	return &r, nil
}

// IntegrityFailure 描述一条 record_hash 复核失败的运行记录。
type IntegrityFailure struct {
	RunID        string
	ExpectedHash string
	ActualHash   string
}

// IntegrityResult 是历史库完整性复核的汇总结果。
type IntegrityResult struct {
	Total    int
	Failed   int
	Failures []IntegrityFailure
}

// VerifyRuns 逐条复算 record_hash，检出被篡改或损坏的历史记录。
func (s *Store) VerifyRuns(ctx context.Context, projectID string, limit int) (IntegrityResult, error) {
	if limit <= 0 {
		limit = 5000
	}

	query := `
		SELECT run_id, project_id, kind, report_json, generated_at, record_hash
		FROM verification_runs
	`
	args := []any{}
	if projectID != "" {
		query += ` WHERE project_id = ?`
		args = append(args, projectID)
	}
	query += ` ORDER BY generated_at ASC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return IntegrityResult{}, fmt.Errorf("list runs for verify: %w", err)
	}
	defer rows.Close()

	var res IntegrityResult
	for rows.Next() {
		var runID, projID, kind, stored string
		var raw []byte
		var generatedAt int64
		if err := rows.Scan(&runID, &projID, &kind, &raw, &generatedAt, &stored); err != nil {
			return IntegrityResult{}, fmt.Errorf("scan run for verify: %w", err)
		}

		res.Total++
		actual := runRecordHash(runID, projID, kind, generatedAt, raw)
		if actual != stored {
			res.Failed++
			res.Failures = append(res.Failures, IntegrityFailure{
				RunID:        runID,
				ExpectedHash: stored,
				ActualHash:   actual,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return IntegrityResult{}, fmt.Errorf("iterate runs for verify: %w", err)
	}
	return res, nil
}

// runRecordHash 统一 record_hash 的计算口径（写入与复核共用）。
func runRecordHash(runID, projectID, kind string, generatedAt int64, reportJSON []byte) string {
	return hash.Text(runID, projectID, kind, strconv.FormatInt(generatedAt, 10), string(reportJSON))
}

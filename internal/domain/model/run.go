package model

// RunRecord 是校验历史库中的一条运行记录（对应 verification_runs 表）。
// 只持久化校验输出（报告），从不持久化提取输入，避免形成跨运行的工程索引。
type RunRecord struct {
	RunID       string      `json:"run_id"`
	ProjectID   string      `json:"project_id"`
	ProjectRoot string      `json:"project_root"`
	Kind        ProjectKind `json:"kind"`

	SuccessCount int  `json:"success_count"`
	WarningCount int  `json:"warning_count"`
	ErrorCount   int  `json:"error_count"`
	SkippedCount int  `json:"skipped_count"`
	Passed       bool `json:"passed"`

	ReportJSON  []byte `json:"report_json,omitempty"`
	GeneratedAt int64  `json:"generated_at"`
	RecordHash  string `json:"record_hash"`
}

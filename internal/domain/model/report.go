package model

import "time"

// Report 是一次完整校验运行的结果。构造后不再修改。
// Findings 顺序即检查执行顺序，必须保持稳定以保证报告可复现。
type Report struct {
	Kind        ProjectKind `json:"kind"`
	ProjectID   string      `json:"project_id,omitempty"`
	Findings    []Finding   `json:"findings"`
	GeneratedAt time.Time   `json:"generated_at"`

	SuccessCount int `json:"success_count"`
	WarningCount int `json:"warning_count"`
	ErrorCount   int `json:"error_count"`
	SkippedCount int `json:"skipped_count"`
}

// HasErrors 表示报告中存在 error 级结论。
func (r Report) HasErrors() bool { return r.ErrorCount > 0 }

// HasWarnings 表示报告中存在 warning 级结论。
func (r Report) HasWarnings() bool { return r.WarningCount > 0 }

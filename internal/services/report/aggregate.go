package report

import (
	"time"

	"ulink-doctor/internal/domain/model"
)

// 报告聚合：对 Finding 列表做纯归约，不做 I/O 也不做渲染。
// 渲染（控制台/JSON/PDF）由下游各自实现，依赖的契约是 Finding 结构本身。

// Build 由 Finding 列表构造一份 Report。
// Finding 顺序原样保留；计数在构造时一次算好，Report 之后不再修改。
func Build(kind model.ProjectKind, projectID string, findings []model.Finding, at time.Time) model.Report {
	r := model.Report{
		Kind:        kind,
		ProjectID:   projectID,
		Findings:    findings,
		GeneratedAt: at.UTC(),
	}
	for _, f := range findings {
		switch f.Severity {
		case model.SeveritySuccess:
			r.SuccessCount++
		case model.SeverityWarning:
			r.WarningCount++
		case model.SeverityError:
			r.ErrorCount++
		case model.SeveritySkipped:
			r.SkippedCount++
		}
	}
	return r
}

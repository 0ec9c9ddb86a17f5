package model

// DependencyState 表示 SDK 依赖在某个清单文件中的声明状态。
type DependencyState string

const (
	// DependencyPresent 表示依赖已声明且生效。
	DependencyPresent DependencyState = "present"
	// DependencyCommented 表示依赖声明存在但被注释掉。
	// 与 absent 区分：注释掉通常意味着集成被临时关闭而非从未集成。
	DependencyCommented DependencyState = "commented"
	// DependencyAbsent 表示清单中不存在该依赖。
	DependencyAbsent DependencyState = "absent"
)

// DependencyStatus 是一次依赖探测的结果。
type DependencyStatus struct {
	State DependencyState `json:"state"`
	// Version 是声明的版本约束（如可提取）。
	Version string `json:"version,omitempty"`
	// Source 是探测到该状态的清单文件相对路径。
	Source string `json:"source,omitempty"`
}

package model

// ChecksConfig 是检查项配置文件（YAML）的顶层结构。
// 用于在不改代码的情况下关闭个别检查或调低其级别（例如 CI 灰度期）。
type ChecksConfig struct {
	Version string          `yaml:"version"`
	Checks  []CheckOverride `yaml:"checks"`
}

// CheckOverride 是对单个检查项的覆盖配置。
type CheckOverride struct {
	// Name 必须是已知检查名（见 finding.go 常量）。
	Name    string `yaml:"name"`
	Enabled *bool  `yaml:"enabled,omitempty"`
	// Severity 可将 error 降为 warning（只允许降级，不允许升级掩盖）。
	Severity string `yaml:"severity,omitempty"`
}

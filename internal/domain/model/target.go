package model

// TargetInfo 表示一个 iOS 构建目标：一个 entitlements 文件与其归属的 Info.plist 配对。
type TargetInfo struct {
	// Name 是目标的可读名称，取自 entitlements 文件所在目录名。
	Name string `json:"name"`
	// EntitlementsPath 是签名 entitlements 文件路径。
	EntitlementsPath string `json:"entitlements_path"`
	// InfoPlistPath 是配对到的 Info.plist 路径。
	InfoPlistPath string `json:"info_plist_path"`
	// BundleID 是解析（含构建变量展开）后的 bundle identifier；解析失败时为空。
	BundleID string `json:"bundle_id,omitempty"`
}

// TargetDiscoveryResult 是目标发现的完整结果。
// AllTargets 始终包含全部可配对目标；Matched 至多一个：
// - 未指定 RequestedBundleID 时为首个发现的目标
// - 指定时为第一个 bundle id 严格相等（大小写敏感）的目标
type TargetDiscoveryResult struct {
	AllTargets        []TargetInfo `json:"all_targets"`
	Matched           *TargetInfo  `json:"matched,omitempty"`
	RequestedBundleID string       `json:"requested_bundle_id,omitempty"`
}

// HasMatch 表示是否命中了一个目标。
func (r TargetDiscoveryResult) HasMatch() bool { return r.Matched != nil }

// HasMultipleTargets 表示工程内存在多个可配对目标。
func (r TargetDiscoveryResult) HasMultipleTargets() bool { return len(r.AllTargets) > 1 }

package model

// Severity 表示单条校验结论的级别。
type Severity string

const (
	// SeveritySuccess 表示检查通过。
	SeveritySuccess Severity = "success"
	// SeverityWarning 表示存在可疑但不阻断的问题。
	SeverityWarning Severity = "warning"
	// SeverityError 表示本地与远端配置确定性不一致。
	SeverityError Severity = "error"
	// SeveritySkipped 表示该检查在当前配置下被跳过。
	SeveritySkipped Severity = "skipped"
)

// 检查名是稳定标识，report 渲染与 golden 输出都依赖这些常量。
const (
	CheckIOSBundleID     = "iOS Bundle Identifier Match"
	CheckIOSScheme       = "iOS URL Scheme Match"
	CheckIOSExtraSchemes = "iOS Extra URL Schemes"
	CheckIOSDomains      = "iOS Associated Domains"
	CheckIOSTeamID       = "iOS Team Identifier"
	CheckIOSDependency   = "iOS SDK Dependency"
	CheckAndroidPackage  = "Android Package Name Match"
	CheckAndroidScheme   = "Android URL Scheme Match"
	CheckAndroidExtra    = "Android Extra URL Schemes"
	CheckAndroidHosts    = "Android App Link Hosts"
	CheckAndroidCerts    = "Android Certificate Fingerprints"
	CheckAndroidDep      = "Android SDK Dependency"
	CheckFlutterDep      = "Flutter SDK Dependency"
)

// Finding 是一条原子校验结论。
// Detail 保存产生该结论的字面本地/远端值，供 golden 测试与 dashboard 上报使用。
type Finding struct {
	CheckName   string         `json:"check_name"`
	Severity    Severity       `json:"severity"`
	Message     string         `json:"message"`
	Remediation string         `json:"remediation,omitempty"`
	Detail      map[string]any `json:"detail,omitempty"`
}

// Success 构造一条通过结论。
func Success(check, message string) Finding {
	return Finding{CheckName: check, Severity: SeveritySuccess, Message: message}
}

// Warn 构造一条告警结论。
func Warn(check, message, remediation string) Finding {
	return Finding{CheckName: check, Severity: SeverityWarning, Message: message, Remediation: remediation}
}

// Fail 构造一条错误结论。
func Fail(check, message, remediation string) Finding {
	return Finding{CheckName: check, Severity: SeverityError, Message: message, Remediation: remediation}
}

// WithDetail 返回附加了 detail 键值的拷贝，便于链式构造。
func (f Finding) WithDetail(detail map[string]any) Finding {
	f.Detail = detail
	return f
}

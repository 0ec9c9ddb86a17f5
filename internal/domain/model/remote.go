package model

// DomainStatus 表示远端域名所有权验证状态。
type DomainStatus string

const (
	// DomainVerified 表示域名已通过所有权验证。
	DomainVerified DomainStatus = "verified"
	// DomainPending 表示域名验证进行中。
	DomainPending DomainStatus = "pending"
	// DomainFailed 表示域名验证失败。
	DomainFailed DomainStatus = "failed"
)

// DomainRecord 是远端项目中登记的一条关联域名记录。
// 主机名在同一项目内默认唯一，但本层不做强校验（按出现顺序先匹配者生效）。
type DomainRecord struct {
	ID        string       `json:"id"`
	Host      string       `json:"host"`
	Status    DomainStatus `json:"status"`
	IsPrimary bool         `json:"isPrimary"`
}

// RemoteConfig 是由上游 API 客户端拉取后的项目远端配置快照。
// 字段名与 dashboard 接口返回保持一致；本层不发起任何 HTTP 请求。
type RemoteConfig struct {
	ProjectID string `json:"projectId"`

	IOSBundleID string `json:"ios_bundle_identifier,omitempty"`
	IOSTeamID   string `json:"ios_team_id,omitempty"`
	IOSScheme   string `json:"ios_deeplink_schema,omitempty"`

	AndroidPackage      string   `json:"android_package_name,omitempty"`
	AndroidScheme       string   `json:"android_deeplink_schema,omitempty"`
	AndroidFingerprints []string `json:"android_sha256_fingerprints,omitempty"`

	Domains []DomainRecord `json:"domains,omitempty"`
}

// VerifiedDomains 返回状态为 verified 的域名记录（保持原始顺序）。
func (r RemoteConfig) VerifiedDomains() []DomainRecord {
	var out []DomainRecord
	for _, d := range r.Domains {
		if d.Status == DomainVerified {
			out = append(out, d)
		}
	}
	return out
}

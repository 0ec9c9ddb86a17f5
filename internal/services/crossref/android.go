package crossref

import (
	"fmt"

	"ulink-doctor/internal/domain/model"
)

// ValidateAndroid 执行 Android 侧全部交叉校验，Finding 顺序固定：
// 包名 → scheme（含多余 scheme）→ app link 主机 → 证书指纹 → SDK 依赖。
func ValidateAndroid(local model.LocalConfig, remote model.RemoteConfig) []model.Finding {
	var out []model.Finding

	out = append(out, checkIdentifier(model.CheckAndroidPackage, "Package name", local.BundleID, remote.AndroidPackage))
	out = append(out, checkScheme(model.CheckAndroidScheme, model.CheckAndroidExtra, local.AndroidSchemes, remote.AndroidScheme)...)
	out = append(out, checkDomains(model.CheckAndroidHosts, "app link hosts", local.AppLinkHosts, remote.Domains))
	out = append(out, checkFingerprints(remote.AndroidFingerprints))
	out = append(out, checkDependency(model.CheckAndroidDep, "Android", local.AndroidDependency))

	return out
}

// checkFingerprints 检查远端是否登记了签名证书 SHA-256 指纹。
// 指纹与 assetlinks.json 的逐项比对属于 well-known 探测器的职责，这里只查有无。
func checkFingerprints(fingerprints []string) model.Finding {
	if len(fingerprints) == 0 {
		return model.Warn(model.CheckAndroidCerts,
			"No certificate fingerprints configured in ULink",
			"Add the app signing SHA-256 fingerprints to the ULink project settings")
	}
	return model.Success(model.CheckAndroidCerts,
		fmt.Sprintf("%d certificate fingerprint(s) configured in ULink", len(fingerprints))).
		WithDetail(map[string]any{"count": len(fingerprints)})
}

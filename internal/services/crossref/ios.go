package crossref

import (
	"fmt"
	"strings"

	"ulink-doctor/internal/domain/model"
)

// ValidateIOS 执行 iOS 侧全部交叉校验，Finding 顺序固定：
// bundle id → scheme（含多余 scheme）→ associated domains → team id → SDK 依赖。
func ValidateIOS(local model.LocalConfig, remote model.RemoteConfig) []model.Finding {
	var out []model.Finding

	out = append(out, checkIdentifier(model.CheckIOSBundleID, "Bundle identifier", local.BundleID, remote.IOSBundleID))
	out = append(out, checkScheme(model.CheckIOSScheme, model.CheckIOSExtraSchemes, local.IOSSchemes, remote.IOSScheme)...)
	out = append(out, checkDomains(model.CheckIOSDomains, "associated domains", local.AssociatedDomains, remote.Domains))
	out = append(out, checkTeamID(local.TeamID, remote.IOSTeamID))
	out = append(out, checkDependency(model.CheckIOSDependency, "iOS", local.IOSDependency))

	return out
}

// checkTeamID 比对签名 Team Identifier（仅 iOS）。
// 本地提取不到时视作“以 ULink 配置为准”，不算失败。
func checkTeamID(local, remote string) model.Finding {
	local = strings.TrimSpace(local)
	remote = strings.TrimSpace(remote)

	switch {
	case remote == "":
		return model.Warn(model.CheckIOSTeamID,
			"No team identifier configured in ULink",
			"Add the Apple team identifier to the ULink project settings")
	case local == "":
		return model.Success(model.CheckIOSTeamID,
			fmt.Sprintf("Team identifier configured in ULink: %s", remote)).
			WithDetail(map[string]any{"remote": remote})
	case local == remote:
		return model.Success(model.CheckIOSTeamID,
			fmt.Sprintf("Team identifier matches: %s", local)).
			WithDetail(map[string]any{"local": local, "remote": remote})
	default:
		return model.Fail(model.CheckIOSTeamID,
			fmt.Sprintf("Team identifier mismatch: local %q, ULink %q", local, remote),
			"Update the team identifier in ULink or fix the signing configuration").
			WithDetail(map[string]any{"local": local, "remote": remote})
	}
}

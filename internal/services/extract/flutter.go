package extract

import (
	"os"
	"path/filepath"

	"ulink-doctor/internal/adapters/formats"
	"ulink-doctor/internal/domain/model"
)

// extractFlutter 独立提取 iOS / Android 两端子配置后合并。
//
// 合并规则：
// - URLSchemes 取双端并集（去重，iOS 在前保持发现顺序）
// - 平台标注集合原样保留，供平台维度交叉校验
// - 其余字段各取其平台来源（bundle id 取 iOS 侧）
func extractFlutter(opts Options) Result {
	ios, targets := extractIOS(opts, model.KindFlutter)
	ios.Kind = model.KindFlutter
	android := extractAndroid(opts, model.KindFlutter)
	android.Kind = model.KindFlutter

	merged := model.LocalConfig{
		Kind:              model.KindFlutter,
		BundleID:          ios.BundleID,
		IOSSchemes:        ios.IOSSchemes,
		AndroidSchemes:    android.AndroidSchemes,
		AssociatedDomains: ios.AssociatedDomains,
		AppLinkHosts:      android.AppLinkHosts,
		TeamID:            ios.TeamID,
		IOSDependency:     ios.IOSDependency,
		AndroidDependency: android.AndroidDependency,
		FlutterDependency: flutterDependency(opts),
	}

	seen := make(map[string]struct{})
	merged.URLSchemes = dedupAppend(nil, seen, ios.URLSchemes)
	merged.URLSchemes = dedupAppend(merged.URLSchemes, seen, android.URLSchemes)

	return Result{
		Kind:    model.KindFlutter,
		Merged:  merged,
		IOS:     &ios,
		Android: &android,
		Targets: targets,
	}
}

// flutterDependency 探测 pubspec.yaml 中的 SDK 依赖。
func flutterDependency(opts Options) *model.DependencyStatus {
	path := filepath.Join(opts.Root, "pubspec.yaml")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	st := formats.FindPubspecDependency(raw, opts.SDKToken)
	st.Source = "pubspec.yaml"
	return &st
}

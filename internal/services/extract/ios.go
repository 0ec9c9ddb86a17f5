package extract

import (
	"os"
	"path/filepath"

	"ulink-doctor/internal/adapters/formats"
	"ulink-doctor/internal/adapters/project"
	"ulink-doctor/internal/domain/model"
)

// extractIOS 提取 iOS 侧配置。
//
// 主路径：目标发现 → 命中目标的 entitlements + Info.plist。
// 兜底路径：工程里一个可配对目标都没有时（缺 entitlements），
// 退回首个 Info.plist，只提取 bundle id 与 scheme。
func extractIOS(opts Options, kind model.ProjectKind) (model.LocalConfig, model.TargetDiscoveryResult) {
	cfg := model.LocalConfig{}

	targets := project.Discover(opts.Root, kind, opts.RequestedBundleID)
	var plistPath, entPath string
	if targets.HasMatch() {
		plistPath = targets.Matched.InfoPlistPath
		entPath = targets.Matched.EntitlementsPath
		cfg.BundleID = targets.Matched.BundleID
	} else if all := project.FindAll(opts.Root, kind, project.FileInfoPlist); len(all) > 0 {
		plistPath = all[0]
	}

	if plistPath != "" {
		if raw, err := os.ReadFile(plistPath); err == nil {
			cfg.URLSchemes = formats.PlistURLSchemes(raw)
			if cfg.BundleID == "" {
				if v := formats.PlistBundleID(raw); v != "" {
					cfg.BundleID = project.ExpandBuildVariable(v, filepath.Dir(plistPath))
				}
			}
		}
		cfg.TeamID = project.TeamIdentifier(filepath.Dir(plistPath))
	}

	if entPath != "" {
		if raw, err := os.ReadFile(entPath); err == nil {
			cfg.AssociatedDomains = formats.PlistAssociatedDomains(raw)
		}
	}

	cfg.IOSSchemes = cfg.URLSchemes
	cfg.IOSDependency = iosDependency(opts, kind)
	return cfg, targets
}

// iosDependency 按策略链探测 SDK 集成：Podfile 优先，其次 Package.swift。
// commented / present 都算“有信息”，absent 继续尝试下一来源。
func iosDependency(opts Options, kind model.ProjectKind) *model.DependencyStatus {
	type probe struct {
		fileKind project.FileKind
		find     func([]byte, string) model.DependencyStatus
	}
	probes := []probe{
		{project.FilePodfile, formats.FindPodDependency},
		{project.FileSwiftPackage, formats.FindSwiftPackageDependency},
	}

	var result *model.DependencyStatus
	for _, p := range probes {
		for _, path := range project.FindAll(opts.Root, kind, p.fileKind) {
			raw, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			st := p.find(raw, opts.SDKToken)
			if rel, err := filepath.Rel(opts.Root, path); err == nil {
				st.Source = filepath.ToSlash(rel)
			}
			if st.State != model.DependencyAbsent {
				return &st
			}
			if result == nil {
				result = &st
			}
		}
	}
	return result
}

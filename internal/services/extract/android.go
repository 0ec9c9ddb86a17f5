package extract

import (
	"os"
	"path/filepath"

	"ulink-doctor/internal/adapters/formats"
	"ulink-doctor/internal/adapters/project"
	"ulink-doctor/internal/domain/model"
)

// extractAndroid 提取 Android 侧配置。
//
// 包名优先级：build.gradle 的 applicationId > manifest 的 package 属性
// （新版 AGP 已不在 manifest 中声明包名）。
func extractAndroid(opts Options, kind model.ProjectKind) model.LocalConfig {
	cfg := model.LocalConfig{}

	if manifests := project.FindAll(opts.Root, kind, project.FileManifest); len(manifests) > 0 {
		if raw, err := os.ReadFile(manifests[0]); err == nil {
			if sum := formats.ParseManifest(raw); sum != nil {
				cfg.URLSchemes = sum.URLSchemes
				cfg.AppLinkHosts = sum.AppLinkHosts
				cfg.BundleID = sum.Package
			}
		}
	}

	for _, path := range project.FindAll(opts.Root, kind, project.FileGradle) {
		raw, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if appID := formats.GradleApplicationID(raw); appID != "" {
			cfg.BundleID = appID
		}

		st := formats.FindGradleDependency(raw, opts.SDKToken)
		if rel, err := filepath.Rel(opts.Root, path); err == nil {
			st.Source = filepath.ToSlash(rel)
		}
		if cfg.AndroidDependency == nil || st.State != model.DependencyAbsent {
			s := st
			cfg.AndroidDependency = &s
		}
		if st.State == model.DependencyPresent {
			break
		}
	}

	cfg.AndroidSchemes = cfg.URLSchemes
	return cfg
}

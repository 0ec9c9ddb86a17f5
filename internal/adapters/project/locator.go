package project

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"ulink-doctor/internal/domain/model"
)

// 工程定位器：识别工程类型并找出各平台的候选配置文件。
// 多 target 工程会返回全部候选，由 TargetMatcher 负责消歧。

// FileKind 表示需要定位的配置文件类别。
type FileKind string

const (
	// FileInfoPlist 定位 Info.plist。
	FileInfoPlist FileKind = "info_plist"
	// FileEntitlements 定位 *.entitlements。
	FileEntitlements FileKind = "entitlements"
	// FileManifest 定位 AndroidManifest.xml。
	FileManifest FileKind = "manifest"
	// FileGradle 定位 build.gradle / build.gradle.kts。
	FileGradle FileKind = "gradle"
	// FilePodfile 定位 Podfile。
	FilePodfile FileKind = "podfile"
	// FileSwiftPackage 定位 Package.swift。
	FileSwiftPackage FileKind = "swift_package"
)

// 扫描时跳过的目录：构建产物、依赖缓存与版本库元数据。
var skipDirs = map[string]struct{}{
	".git":         {},
	".gradle":      {},
	".dart_tool":   {},
	"build":        {},
	"Pods":         {},
	"node_modules": {},
	"DerivedData":  {},
}

// Classify 按严格优先级识别工程类型：
// Flutter（根目录 pubspec.yaml）> iOS 原生（xcworkspace/xcodeproj 或 ios 子目录）
// > Android 原生（android 子目录或根目录构建脚本）> 未识别。
func Classify(root string) model.ProjectKind {
	if fileExists(filepath.Join(root, "pubspec.yaml")) {
		return model.KindFlutter
	}

	if hasBundleDir(root, ".xcworkspace") || hasBundleDir(root, ".xcodeproj") || dirExists(filepath.Join(root, "ios")) {
		return model.KindIOS
	}

	if dirExists(filepath.Join(root, "android")) ||
		fileExists(filepath.Join(root, "build.gradle")) ||
		fileExists(filepath.Join(root, "build.gradle.kts")) {
		return model.KindAndroid
	}

	return model.KindUnknown
}

// FindAll 返回指定类别的全部候选配置文件（绝对路径，发现顺序稳定）。
//
// Flutter 工程只检查固定的约定路径；原生工程递归扫描后按后缀过滤。
// manifest 有额外的路径约束（见 isMainManifest），避免把构建产物或
// 测试 manifest 当成主配置。
func FindAll(root string, kind model.ProjectKind, fileKind FileKind) []string {
	if kind == model.KindFlutter {
		return existingPaths(root, flutterConventionalPaths(fileKind))
	}
	return scanTree(root, fileKind)
}

// flutterConventionalPaths 是 Flutter 工程各类配置文件的约定相对路径。
func flutterConventionalPaths(fileKind FileKind) []string {
	switch fileKind {
	case FileInfoPlist:
		return []string{"ios/Runner/Info.plist"}
	case FileEntitlements:
		return []string{"ios/Runner/Runner.entitlements"}
	case FileManifest:
		return []string{"android/app/src/main/AndroidManifest.xml"}
	case FileGradle:
		return []string{"android/app/build.gradle", "android/app/build.gradle.kts"}
	case FilePodfile:
		return []string{"ios/Podfile"}
	case FileSwiftPackage:
		return []string{"Package.swift", "ios/Package.swift"}
	default:
		return nil
	}
}

func scanTree(root string, fileKind FileKind) []string {
	var out []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // 读不到的子树直接跳过，定位是 best effort
		}
		if d.IsDir() {
			if _, skip := skipDirs[d.Name()]; skip && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if matchFileKind(root, path, d.Name(), fileKind) {
			out = append(out, path)
		}
		return nil
	})
	return out
}

func matchFileKind(root, path, name string, fileKind FileKind) bool {
	switch fileKind {
	case FileInfoPlist:
		return name == "Info.plist"
	case FileEntitlements:
		return strings.HasSuffix(name, ".entitlements")
	case FileManifest:
		return name == "AndroidManifest.xml" && isMainManifest(root, path)
	case FileGradle:
		return name == "build.gradle" || name == "build.gradle.kts"
	case FilePodfile:
		return name == "Podfile"
	case FileSwiftPackage:
		return name == "Package.swift"
	default:
		return false
	}
}

// isMainManifest 过滤生成物与测试用 manifest：
// 路径需同时含 src 与 main 两个段（标准源集布局），
// 或者位于根目录 / app 目录这两个历史惯用位置。
func isMainManifest(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	segs := strings.Split(filepath.ToSlash(rel), "/")

	hasSrc, hasMain := false, false
	for _, s := range segs[:len(segs)-1] {
		switch s {
		case "src":
			hasSrc = true
		case "main":
			hasMain = true
		}
	}
	if hasSrc && hasMain {
		return true
	}

	switch filepath.ToSlash(rel) {
	case "AndroidManifest.xml", "app/AndroidManifest.xml":
		return true
	}
	return false
}

func existingPaths(root string, rels []string) []string {
	var out []string
	for _, rel := range rels {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if fileExists(p) {
			out = append(out, p)
		}
	}
	return out
}

func fileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}

func dirExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.IsDir()
}

// hasBundleDir 判断根目录下是否存在指定后缀的 bundle 目录（如 *.xcodeproj）。
func hasBundleDir(root, suffix string) bool {
	entries, err := os.ReadDir(root)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if e.IsDir() && strings.HasSuffix(e.Name(), suffix) {
			return true
		}
	}
	return false
}

package project

import (
	"io/fs"
	"os"
	"path/filepath"

	"ulink-doctor/internal/adapters/formats"
	"ulink-doctor/internal/domain/model"
)

// 目标匹配器。
//
// 多 target 工程里每个 entitlements 文件对应一个构建目标，
// 需要为其配对归属的 Info.plist，并按请求的 bundle id 选出最终目标。

// Discover 枚举工程内全部可配对目标并执行匹配。
//
// 匹配策略：
// - 未指定 requestedBundleID：首个发现的目标即命中
// - 指定时：第一个解析出的 bundle id 严格相等（大小写敏感）的目标命中；
//   命中后继续扫描，保证 AllTargets 完整
// - 找不到 Info.plist 的 entitlements 文件直接跳过（不算错误）
func Discover(root string, kind model.ProjectKind, requestedBundleID string) model.TargetDiscoveryResult {
	result := model.TargetDiscoveryResult{RequestedBundleID: requestedBundleID}

	for _, entPath := range FindAll(root, kind, FileEntitlements) {
		plistPath := locateInfoPlist(entPath)
		if plistPath == "" {
			continue
		}

		target := model.TargetInfo{
			Name:             filepath.Base(filepath.Dir(entPath)),
			EntitlementsPath: entPath,
			InfoPlistPath:    plistPath,
			BundleID:         extractBundleID(plistPath),
		}
		result.AllTargets = append(result.AllTargets, target)

		if result.Matched != nil {
			continue // 请求已满足时不被后续目标覆盖
		}
		if requestedBundleID == "" || target.BundleID == requestedBundleID {
			t := target
			result.Matched = &t
		}
	}

	return result
}

// locateInfoPlist 为 entitlements 文件配对归属的 Info.plist。
//
// 依次尝试（第一个命中者生效）：
// 1) 同目录 2) 父目录 3) 同目录的一级子目录 4) 父目录的一级子目录
// 5) entitlements 所在子树的递归搜索
func locateInfoPlist(entitlementsPath string) string {
	dir := filepath.Dir(entitlementsPath)
	parent := filepath.Dir(dir)

	candidates := []string{
		filepath.Join(dir, "Info.plist"),
		filepath.Join(parent, "Info.plist"),
	}
	candidates = append(candidates, subdirPlists(dir)...)
	candidates = append(candidates, subdirPlists(parent)...)

	for _, c := range candidates {
		if fileExists(c) {
			return c
		}
	}

	found := ""
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && d.Name() == "Info.plist" {
			found = path
			return filepath.SkipAll
		}
		return nil
	})
	return found
}

// subdirPlists 枚举一级子目录下的 Info.plist 候选路径。
func subdirPlists(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			out = append(out, filepath.Join(dir, e.Name(), "Info.plist"))
		}
	}
	return out
}

// extractBundleID 读取 Info.plist 的 bundle id 并展开构建变量。
// 任一步失败返回空串。
func extractBundleID(plistPath string) string {
	raw, err := os.ReadFile(plistPath)
	if err != nil {
		return ""
	}
	value := formats.PlistBundleID(raw)
	if value == "" {
		return ""
	}
	return ExpandBuildVariable(value, filepath.Dir(plistPath))
}

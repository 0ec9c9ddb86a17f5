package project

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// 构建变量解析器。
//
// Info.plist 中的 bundle id 常写成 $(PRODUCT_BUNDLE_IDENTIFIER) 这类占位符，
// 真实值在 *.xcodeproj/project.pbxproj 的 build settings 里。
// 解析策略：从起始目录向上找 xcodeproj bundle（最多 5 层，显式迭代便于测试上界），
// 在 pbxproj 中用宽松正则收集 `NAME = value;` 赋值，再按偏好挑选。

// maxUpwardLevels 是向上查找 xcodeproj 的层数上界。
const maxUpwardLevels = 5

var (
	reBuildVarToken = regexp.MustCompile(`^\$[({]([A-Za-z_][A-Za-z0-9_]*)[)}]$`)
	reTeamID        = regexp.MustCompile(`DEVELOPMENT_TEAM\s*=\s*"?([A-Za-z0-9]{10})"?\s*;`)
)

// IsBuildVariable 判断字符串是否为 $(NAME) / ${NAME} 形式的构建变量引用。
func IsBuildVariable(s string) bool {
	return reBuildVarToken.MatchString(strings.TrimSpace(s))
}

// ExpandBuildVariable 将构建变量引用展开为真实值。
// 非变量引用原样返回；变量无法解析时返回空串（调用方按“字段缺失”处理）。
func ExpandBuildVariable(value, startDir string) string {
	value = strings.TrimSpace(value)
	m := reBuildVarToken.FindStringSubmatch(value)
	if m == nil {
		return value
	}
	return resolveInPbxproj(startDir, m[1])
}

// resolveInPbxproj 在向上可达的 project.pbxproj 中解析变量赋值。
//
// 同名变量通常有多组赋值（Debug/Release/各 target 配置）。选取规则：
// 1) 第一个值不含 "Test" 且自身不是变量引用的赋值
// 2) 全部命中 Test 配置时，退回第一个非变量值
func resolveInPbxproj(startDir, name string) string {
	raw := readNearestPbxproj(startDir)
	if raw == "" {
		return ""
	}

	re, err := regexp.Compile(regexp.QuoteMeta(name) + `\s*=\s*"?([^";\n]+)"?\s*;`)
	if err != nil {
		return ""
	}

	var first string
	for _, m := range re.FindAllStringSubmatch(raw, -1) {
		v := strings.TrimSpace(m[1])
		if v == "" || IsBuildVariable(v) {
			continue
		}
		if first == "" {
			first = v
		}
		if !strings.Contains(v, "Test") {
			return v
		}
	}
	return first
}

// TeamIdentifier 提取签名 Team ID（DEVELOPMENT_TEAM，10 位字母数字）。
// 与变量解析共用同一套向上查找策略，彼此独立失败。
func TeamIdentifier(startDir string) string {
	raw := readNearestPbxproj(startDir)
	if raw == "" {
		return ""
	}
	if m := reTeamID.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return ""
}

// readNearestPbxproj 自 startDir 向上最多 maxUpwardLevels 层，
// 找到第一个 *.xcodeproj/project.pbxproj 并读出内容。找不到返回空串。
func readNearestPbxproj(startDir string) string {
	dir := startDir
	for level := 0; level <= maxUpwardLevels; level++ {
		entries, err := os.ReadDir(dir)
		if err == nil {
			for _, e := range entries {
				if !e.IsDir() || !strings.HasSuffix(e.Name(), ".xcodeproj") {
					continue
				}
				raw, err := os.ReadFile(filepath.Join(dir, e.Name(), "project.pbxproj"))
				if err == nil && len(raw) > 0 {
					return string(raw)
				}
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

package formats

import (
	"strings"

	"howett.net/plist"
)

// plist 读取器：覆盖 Info.plist 与 *.entitlements 两类文件。
//
// 约定：所有函数都是 best effort —— 输入损坏或结构不符合预期时返回空结果，
// 绝不向上抛错。上层把“读不到”当作“该字段缺失”处理。

const associatedDomainsKey = "com.apple.developer.associated-domains"

// ParsePlistDict 将 plist 字节（XML 或二进制格式均可）解析为顶层字典。
// 解析失败时返回 nil。
func ParsePlistDict(raw []byte) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	var dict map[string]any
	if _, err := plist.Unmarshal(raw, &dict); err != nil {
		return nil
	}
	return dict
}

// PlistBundleID 提取 CFBundleIdentifier 原始值。
// 返回值可能是 "$(PRODUCT_BUNDLE_IDENTIFIER)" 这类构建变量，由上层负责展开。
func PlistBundleID(raw []byte) string {
	dict := ParsePlistDict(raw)
	if dict == nil {
		return ""
	}
	s, _ := dict["CFBundleIdentifier"].(string)
	return strings.TrimSpace(s)
}

// PlistURLSchemes 提取 CFBundleURLTypes 下声明的全部自定义 URL scheme。
//
// 结构为 array-of-dict-of-array：
//
//	CFBundleURLTypes: [ { CFBundleURLSchemes: [ "myapp", ... ] }, ... ]
//
// 单个条目结构异常时跳过该条目而不是整体失败。
// 返回值去重并保持首次出现顺序，且不含 "://" 后缀。
func PlistURLSchemes(raw []byte) []string {
	dict := ParsePlistDict(raw)
	if dict == nil {
		return nil
	}

	types, ok := dict["CFBundleURLTypes"].([]any)
	if !ok {
		return nil
	}

	var out []string
	seen := make(map[string]struct{})
	for _, entry := range types {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		schemes, ok := m["CFBundleURLSchemes"].([]any)
		if !ok {
			continue
		}
		for _, s := range schemes {
			v, ok := s.(string)
			if !ok {
				continue
			}
			v = strings.TrimSuffix(strings.TrimSpace(v), "://")
			if v == "" {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// PlistAssociatedDomains 从 entitlements 提取 applinks 域名列表。
//
// 规则：
// - "applinks:<host>" 取 <host>（前缀大小写不敏感）
// - 无前缀的条目原样保留（历史配置中存在裸域名写法）
// - 其他服务前缀（webcredentials: / appclips: 等）不属于深链域名，跳过
// - host 后的查询参数（如 ?mode=developer）裁掉
func PlistAssociatedDomains(raw []byte) []string {
	dict := ParsePlistDict(raw)
	if dict == nil {
		return nil
	}

	items, ok := dict[associatedDomainsKey].([]any)
	if !ok {
		return nil
	}

	var out []string
	seen := make(map[string]struct{})
	for _, item := range items {
		v, ok := item.(string)
		if !ok {
			continue
		}
		host := normalizeAssociatedDomain(v)
		if host == "" {
			continue
		}
		if _, dup := seen[host]; dup {
			continue
		}
		seen[host] = struct{}{}
		out = append(out, host)
	}
	return out
}

func normalizeAssociatedDomain(entry string) string {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return ""
	}

	if i := strings.Index(entry, ":"); i >= 0 {
		prefix := strings.ToLower(entry[:i])
		if prefix != "applinks" {
			return ""
		}
		entry = entry[i+1:]
	}

	if i := strings.Index(entry, "?"); i >= 0 {
		entry = entry[:i]
	}
	return strings.TrimSpace(entry)
}

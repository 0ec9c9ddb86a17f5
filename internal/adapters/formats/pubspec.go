package formats

import (
	"bufio"
	"bytes"
	"regexp"
	"strings"

	"ulink-doctor/internal/domain/model"

	"gopkg.in/yaml.v3"
)

// pubspec.yaml 读取器（Flutter 工程）。
//
// 依赖声明可能是标量版本，也可能是 git/path 映射：
//
//	dependencies:
//	  ulink: ^1.2.3
//	  ulink:
//	    git: https://github.com/...
//
// YAML 解析丢弃注释，所以 commented 探测退化为行扫描。

type pubspecDoc struct {
	Name            string               `yaml:"name"`
	Dependencies    map[string]yaml.Node `yaml:"dependencies"`
	DevDependencies map[string]yaml.Node `yaml:"dev_dependencies"`
}

// FindPubspecDependency 在 pubspec.yaml 内容中查找名称含 token 的依赖。
func FindPubspecDependency(raw []byte, token string) model.DependencyStatus {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" || len(raw) == 0 {
		return model.DependencyStatus{State: model.DependencyAbsent}
	}

	var doc pubspecDoc
	if err := yaml.Unmarshal(raw, &doc); err == nil {
		for _, deps := range []map[string]yaml.Node{doc.Dependencies, doc.DevDependencies} {
			for name, node := range deps {
				if !strings.Contains(strings.ToLower(name), token) {
					continue
				}
				return model.DependencyStatus{State: model.DependencyPresent, Version: pubspecVersionOf(node)}
			}
		}
	}

	if pubspecCommentedDependency(raw, token) {
		return model.DependencyStatus{State: model.DependencyCommented}
	}
	return model.DependencyStatus{State: model.DependencyAbsent}
}

// pubspecVersionOf 从依赖节点提取版本约束：
// 标量直接取值；映射形式尝试 version 字段，git/path 形式无版本。
func pubspecVersionOf(node yaml.Node) string {
	switch node.Kind {
	case yaml.ScalarNode:
		return strings.TrimSpace(node.Value)
	case yaml.MappingNode:
		var m map[string]any
		if err := node.Decode(&m); err != nil {
			return ""
		}
		if v, ok := m["version"].(string); ok {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// pubspecCommentedDependency 行扫描探测被注释掉的依赖声明，例如 "# ulink: ^1.0.0"。
func pubspecCommentedDependency(raw []byte, token string) bool {
	re := regexp.MustCompile(`^\s*#\s*([\w\-]+)\s*:`)
	sc := bufio.NewScanner(bytes.NewReader(raw))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		m := re.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		if strings.Contains(strings.ToLower(m[1]), token) {
			return true
		}
	}
	return false
}

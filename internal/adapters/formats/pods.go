package formats

import (
	"bufio"
	"bytes"
	"regexp"
	"strings"

	"ulink-doctor/internal/domain/model"
)

// iOS 依赖清单读取器：Podfile 与 Package.swift。
// 与 gradle.go 相同的约定：注释掉的声明报告为 commented，而不是 absent。

var (
	// Podfile：pod 'ULink'[, '~> 1.2']
	rePodDecl = regexp.MustCompile(`(?i)pod\s+['"]([\w\-/]+)['"](?:\s*,\s*['"]([^'"]+)['"])?`)
	// Package.swift：.package(url: "https://.../ulink-ios.git", from: "1.2.3")
	reSwiftPackageURL = regexp.MustCompile(`(?i)\.package\s*\(\s*url:\s*"([^"]+)"`)
	reSwiftVersion    = regexp.MustCompile(`(?i)(?:from|exact|branch|revision):\s*"([^"]+)"`)
	reSwiftUpToNext   = regexp.MustCompile(`(?i)\.upToNext(?:Major|Minor)\s*\(\s*from:\s*"([^"]+)"`)
)

// FindPodDependency 在 Podfile 内容中查找名称含 token 的 pod 声明。
func FindPodDependency(raw []byte, token string) model.DependencyStatus {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" || len(raw) == 0 {
		return model.DependencyStatus{State: model.DependencyAbsent}
	}

	commented := false
	sc := bufio.NewScanner(bytes.NewReader(raw))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		isComment := strings.HasPrefix(trimmed, "#")

		body := line
		if isComment {
			body = strings.TrimLeft(trimmed, "# ")
		} else if i := strings.Index(line, "#"); i >= 0 {
			body = line[:i]
		}

		m := rePodDecl.FindStringSubmatch(body)
		if m == nil || !strings.Contains(strings.ToLower(m[1]), token) {
			continue
		}
		if isComment {
			commented = true
			continue
		}
		return model.DependencyStatus{State: model.DependencyPresent, Version: strings.TrimSpace(m[2])}
	}

	if commented {
		return model.DependencyStatus{State: model.DependencyCommented}
	}
	return model.DependencyStatus{State: model.DependencyAbsent}
}

// FindSwiftPackageDependency 在 Package.swift 内容中查找 URL 含 token 的 package 声明。
// 版本约束按 from/exact/upToNext 依次尝试（策略链）。
func FindSwiftPackageDependency(raw []byte, token string) model.DependencyStatus {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" || len(raw) == 0 {
		return model.DependencyStatus{State: model.DependencyAbsent}
	}

	commented := false
	inBlockComment := false
	sc := bufio.NewScanner(bytes.NewReader(raw))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		code, isComment := splitGradleComment(line, &inBlockComment) // Swift 注释语法与 Gradle 相同

		if m := reSwiftPackageURL.FindStringSubmatch(code); m != nil && strings.Contains(strings.ToLower(m[1]), token) {
			return model.DependencyStatus{State: model.DependencyPresent, Version: swiftVersionOf(code)}
		}
		if isComment {
			raw := stripCommentMarkers(line)
			if m := reSwiftPackageURL.FindStringSubmatch(raw); m != nil && strings.Contains(strings.ToLower(m[1]), token) {
				commented = true
			}
		}
	}

	if commented {
		return model.DependencyStatus{State: model.DependencyCommented}
	}
	return model.DependencyStatus{State: model.DependencyAbsent}
}

func swiftVersionOf(line string) string {
	if m := reSwiftUpToNext.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := reSwiftVersion.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

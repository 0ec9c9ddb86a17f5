package formats

import (
	"bufio"
	"bytes"
	"regexp"
	"strings"

	"ulink-doctor/internal/domain/model"
)

// Gradle 构建脚本读取器（Groovy 与 Kotlin DSL 通吃）。
//
// 依赖声明覆盖两代语法：
//
//	implementation 'ly.ulink:ulink-sdk:1.2.3'            // 单行坐标
//	implementation("ly.ulink:ulink-sdk:1.2.3")
//	implementation group: 'ly.ulink', name: 'ulink-sdk', version: '1.2.3'  // map 结构
//
// 注释掉的声明（// 行注释或 /* */ 块注释内）必须报告为 commented，
// 与完全不存在（absent）区分开。

var (
	// 坐标形式：configuration '<group>:<name>[:<version>]'
	reGradleCoordinate = regexp.MustCompile(`(?i)(implementation|api|compile)\s*\(?\s*['"]([\w.\-]+):([\w.\-]+)(?::([^'"]+))?['"]`)
	// map 结构形式：group: '...', name: '...'[, version: '...']
	reGradleMapGroup   = regexp.MustCompile(`(?i)group\s*[:=]\s*['"]([\w.\-]+)['"]`)
	reGradleMapName    = regexp.MustCompile(`(?i)name\s*[:=]\s*['"]([\w.\-]+)['"]`)
	reGradleMapVersion = regexp.MustCompile(`(?i)version\s*[:=]\s*['"]([^'"]+)['"]`)

	reGradleApplicationID = regexp.MustCompile(`applicationId\s*=?\s*['"]([\w.\-]+)['"]`)
)

// FindGradleDependency 在 build.gradle / build.gradle.kts 内容中查找指定依赖。
// token 与坐标的 group 或 name 做大小写不敏感的包含匹配（如 "ulink"）。
// 返回的 DependencyStatus.Source 由调用方补充。
func FindGradleDependency(raw []byte, token string) model.DependencyStatus {
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
		code, isComment := splitGradleComment(line, &inBlockComment)

		if version, ok := matchGradleDependency(code, token); ok {
			return model.DependencyStatus{State: model.DependencyPresent, Version: version}
		}
		if isComment {
			if _, ok := matchGradleDependency(stripCommentMarkers(line), token); ok {
				commented = true
			}
		}
	}

	if commented {
		return model.DependencyStatus{State: model.DependencyCommented}
	}
	return model.DependencyStatus{State: model.DependencyAbsent}
}

// GradleApplicationID 提取 defaultConfig 中的 applicationId。
// 未声明时返回空串（包名转由 AndroidManifest 提供）。
func GradleApplicationID(raw []byte) string {
	inBlockComment := false
	sc := bufio.NewScanner(bytes.NewReader(raw))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		code, _ := splitGradleComment(sc.Text(), &inBlockComment)
		if m := reGradleApplicationID.FindStringSubmatch(code); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// matchGradleDependency 按两种语法依次尝试匹配一行内的依赖声明。
func matchGradleDependency(line, token string) (version string, ok bool) {
	if m := reGradleCoordinate.FindStringSubmatch(line); m != nil {
		group, name, ver := m[2], m[3], m[4]
		if strings.Contains(strings.ToLower(group), token) || strings.Contains(strings.ToLower(name), token) {
			return strings.TrimSpace(ver), true
		}
	}

	gm := reGradleMapGroup.FindStringSubmatch(line)
	nm := reGradleMapName.FindStringSubmatch(line)
	if gm == nil && nm == nil {
		return "", false
	}
	hit := false
	if gm != nil && strings.Contains(strings.ToLower(gm[1]), token) {
		hit = true
	}
	if nm != nil && strings.Contains(strings.ToLower(nm[1]), token) {
		hit = true
	}
	if !hit {
		return "", false
	}
	if vm := reGradleMapVersion.FindStringSubmatch(line); vm != nil {
		return strings.TrimSpace(vm[1]), true
	}
	return "", true
}

// splitGradleComment 返回一行中的有效代码部分，并报告该行是否携带注释内容。
// 块注释状态跨行由 inBlock 维护；不处理字符串字面量里的伪注释（容错场景可接受）。
func splitGradleComment(line string, inBlock *bool) (code string, hasComment bool) {
	var b strings.Builder
	i := 0
	for i < len(line) {
		if *inBlock {
			hasComment = true
			end := strings.Index(line[i:], "*/")
			if end < 0 {
				return b.String(), true
			}
			i += end + 2
			*inBlock = false
			continue
		}
		if strings.HasPrefix(line[i:], "//") {
			return b.String(), true
		}
		if strings.HasPrefix(line[i:], "/*") {
			*inBlock = true
			hasComment = true
			i += 2
			continue
		}
		b.WriteByte(line[i])
		i++
	}
	return b.String(), hasComment
}

// stripCommentMarkers 去掉注释标记后返回原文，用于探测“被注释掉的依赖”。
func stripCommentMarkers(line string) string {
	line = strings.ReplaceAll(line, "//", " ")
	line = strings.ReplaceAll(line, "/*", " ")
	line = strings.ReplaceAll(line, "*/", " ")
	return line
}

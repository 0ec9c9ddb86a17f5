package crossref

import (
	"fmt"
	"strings"

	"ulink-doctor/internal/domain/model"
)

// 交叉校验服务：比较本地提取配置与远端项目记录，产出带级别的 Finding 列表。
//
// 约定：
// - 每个检查相互独立，一次运行产出全部结论而不是遇错即停
// - Finding 顺序即检查定义顺序，报告可复现依赖这一点
// - Detail 保存产生结论的字面值，供 golden 测试与 dashboard 使用

// normalizeScheme 统一 scheme 比较口径：去空白、去一个 "://" 后缀、转小写。
func normalizeScheme(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "://")
	return strings.ToLower(s)
}

// checkIdentifier 是标识符精确比对（iOS bundle id / Android 包名共用）。
func checkIdentifier(check, label, local, remote string) model.Finding {
	local = strings.TrimSpace(local)
	remote = strings.TrimSpace(remote)

	switch {
	case local == "" && remote == "":
		return model.Warn(check,
			fmt.Sprintf("%s is configured neither locally nor in ULink", label),
			fmt.Sprintf("Configure the %s in your project and in the ULink dashboard", label))
	case local == "":
		return model.Warn(check,
			fmt.Sprintf("Could not determine the local %s", label),
			fmt.Sprintf("Check the project configuration files for the %s", label)).
			WithDetail(map[string]any{"remote": remote})
	case remote == "":
		return model.Warn(check,
			fmt.Sprintf("No %s configured in ULink", label),
			fmt.Sprintf("Add %q to the ULink project settings", local)).
			WithDetail(map[string]any{"local": local})
	case local == remote:
		return model.Success(check, fmt.Sprintf("%s matches: %s", label, local)).
			WithDetail(map[string]any{"local": local, "remote": remote})
	default:
		return model.Fail(check,
			fmt.Sprintf("%s mismatch: local %q, ULink %q", label, local, remote),
			fmt.Sprintf("Align the local %s with the ULink project settings", label)).
			WithDetail(map[string]any{"local": local, "remote": remote})
	}
}

// checkScheme 比对自定义 URL scheme。
//
// 远端至多声明一个规范 scheme（可能带 "://" 后缀）；比较大小写不敏感。
// 命中时额外计算“本地多余 scheme”，非空则追加一条 warning。
func checkScheme(matchCheck, extraCheck string, localSchemes []string, remoteScheme string) []model.Finding {
	canonical := normalizeScheme(remoteScheme)

	if canonical == "" {
		if len(localSchemes) == 0 {
			return []model.Finding{{
				CheckName: matchCheck,
				Severity:  model.SeveritySkipped,
				Message:   "No URL scheme configured locally or in ULink",
			}}
		}
		return []model.Finding{
			model.Warn(matchCheck,
				fmt.Sprintf("No URL scheme configured in ULink; local project declares %q", localSchemes[0]),
				fmt.Sprintf("Add %q as the deep link scheme in the ULink dashboard", localSchemes[0])).
				WithDetail(map[string]any{"local_schemes": localSchemes, "suggested": localSchemes[0]}),
		}
	}

	matched := false
	var extras []string
	for _, s := range localSchemes {
		if normalizeScheme(s) == canonical {
			matched = true
		} else {
			extras = append(extras, s)
		}
	}

	if !matched {
		if len(localSchemes) == 0 {
			return []model.Finding{
				model.Fail(matchCheck,
					fmt.Sprintf("URL scheme %q is configured in ULink but the project declares no URL schemes", canonical),
					fmt.Sprintf("Declare the %q URL scheme in the project configuration", canonical)).
					WithDetail(map[string]any{"remote": canonical, "local_schemes": []string{}}),
			}
		}
		return []model.Finding{
			model.Fail(matchCheck,
				fmt.Sprintf("URL scheme %q is configured in ULink but not declared by the project", canonical),
				fmt.Sprintf("Declare the %q URL scheme in the project configuration", canonical)).
				WithDetail(map[string]any{"remote": canonical, "local_schemes": localSchemes}),
		}
	}

	out := []model.Finding{
		model.Success(matchCheck, fmt.Sprintf("URL scheme %q matches", canonical)).
			WithDetail(map[string]any{"remote": canonical, "local_schemes": localSchemes}),
	}
	if len(extras) > 0 {
		out = append(out, model.Warn(extraCheck,
			fmt.Sprintf("Project declares URL schemes not configured in ULink: %s", strings.Join(extras, ", ")),
			"Remove unused schemes or register them as additional projects").
			WithDetail(map[string]any{"extra_schemes": extras}))
	}
	return out
}

// checkDomains 对本地域名/主机集合与远端 DomainRecord 做三级匹配：
//
//	i.   任一本地条目命中 verified 记录 → success
//	ii.  否则任一本地条目命中任意记录 → error（指明未验证状态）
//	iii. 否则本地有条目但全部无匹配 → error（指明首个未命中条目）
//
// 即使存在多个可匹配条目，也只报告第一个命中的本地条目（刻意的简化，
// 测试固化了这一行为）。
func checkDomains(check, noun string, local []string, records []model.DomainRecord) model.Finding {
	if len(local) == 0 {
		return noLocalDomainsFinding(check, noun, records)
	}

	for _, entry := range local {
		for _, r := range records {
			if strings.EqualFold(strings.TrimSpace(entry), strings.TrimSpace(r.Host)) && r.Status == model.DomainVerified {
				return model.Success(check, fmt.Sprintf("Domain %q is verified in ULink", entry)).
					WithDetail(map[string]any{"domain": entry, "status": string(r.Status)})
			}
		}
	}

	for _, entry := range local {
		for _, r := range records {
			if strings.EqualFold(strings.TrimSpace(entry), strings.TrimSpace(r.Host)) {
				return model.Fail(check,
					fmt.Sprintf("Domain %q is configured in ULink but not verified (status: %s)", entry, r.Status),
					"Complete domain verification in the ULink dashboard").
					WithDetail(map[string]any{"domain": entry, "status": string(r.Status)})
			}
		}
	}

	return model.Fail(check,
		fmt.Sprintf("Domain %q is declared by the project but not configured in ULink", local[0]),
		"Add the domain to the ULink project or remove it from the project configuration").
		WithDetail(map[string]any{"domain": local[0], "local": local})
}

// noLocalDomainsFinding 处理“本地无域名声明”的两类告警。
func noLocalDomainsFinding(check, noun string, records []model.DomainRecord) model.Finding {
	var verified, unverified []string
	for _, r := range records {
		if r.Status == model.DomainVerified {
			verified = append(verified, r.Host)
		} else {
			unverified = append(unverified, r.Host)
		}
	}

	switch {
	case len(verified) > 0:
		return model.Warn(check,
			fmt.Sprintf("No %s declared by the project; ULink has verified domains: %s", noun, strings.Join(verified, ", ")),
			fmt.Sprintf("Declare %q in the project configuration", verified[0])).
			WithDetail(map[string]any{"suggested": verified})
	case len(unverified) > 0:
		return model.Warn(check,
			fmt.Sprintf("No %s declared by the project; ULink has domains but none are verified", noun),
			"Complete domain verification in the ULink dashboard").
			WithDetail(map[string]any{"unverified": unverified})
	default:
		return model.Finding{
			CheckName: check,
			Severity:  model.SeveritySkipped,
			Message:   fmt.Sprintf("No %s configured locally or in ULink", noun),
		}
	}
}

// checkDependency 汇报 SDK 依赖探测结果。
func checkDependency(check, label string, st *model.DependencyStatus) model.Finding {
	if st == nil {
		return model.Finding{
			CheckName: check,
			Severity:  model.SeveritySkipped,
			Message:   fmt.Sprintf("No %s dependency manifest found", label),
		}
	}

	switch st.State {
	case model.DependencyPresent:
		msg := fmt.Sprintf("SDK dependency declared in %s", st.Source)
		if st.Version != "" {
			msg = fmt.Sprintf("SDK dependency declared in %s (version %s)", st.Source, st.Version)
		}
		return model.Success(check, msg).
			WithDetail(map[string]any{"source": st.Source, "version": st.Version})
	case model.DependencyCommented:
		return model.Warn(check,
			fmt.Sprintf("SDK dependency in %s is commented out", st.Source),
			"Uncomment the dependency declaration to enable the SDK").
			WithDetail(map[string]any{"source": st.Source})
	default:
		return model.Warn(check,
			fmt.Sprintf("SDK dependency not declared in %s", st.Source),
			"Add the ULink SDK to the dependency manifest").
			WithDetail(map[string]any{"source": st.Source})
	}
}

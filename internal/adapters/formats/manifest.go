package formats

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// AndroidManifest 读取器。
//
// 兼容两代属性写法：带命名空间前缀（android:scheme）与裸属性（scheme）。
// 每个字段按“策略链”依次尝试，第一个非空结果生效，新的方言只需追加策略。

const androidNS = "http://schemas.android.com/apk/res/android"

// ManifestSummary 是一份 AndroidManifest.xml 的归一化提取结果。
type ManifestSummary struct {
	// Package 是 manifest 根元素声明的包名（新版 AGP 可能缺失，转由 gradle 提供）。
	Package string
	// URLSchemes 是 custom-scheme intent-filter 中声明的自定义 scheme（去重，保序）。
	URLSchemes []string
	// AppLinkHosts 是 autoVerify app-link intent-filter 中声明的 https 主机（去重，保序）。
	AppLinkHosts []string
}

// manifestNode 是宽松的 XML 元素树节点，保留全部属性与子元素。
type manifestNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr     `xml:",any,attr"`
	Children []manifestNode `xml:",any"`
}

// ParseManifest 解析 AndroidManifest.xml 字节。
// XML 损坏（未闭合等）时返回 nil，不抛错。
func ParseManifest(raw []byte) *ManifestSummary {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	var root manifestNode
	if err := xml.Unmarshal(raw, &root); err != nil {
		return nil
	}
	if root.XMLName.Local != "manifest" {
		return nil
	}

	sum := &ManifestSummary{Package: root.attr("package")}

	schemeSeen := make(map[string]struct{})
	hostSeen := make(map[string]struct{})
	for _, app := range root.children("application") {
		for _, act := range app.childrenAny("activity", "activity-alias") {
			for _, filter := range act.children("intent-filter") {
				classifyIntentFilter(filter, sum, schemeSeen, hostSeen)
			}
		}
	}
	return sum
}

// classifyIntentFilter 按如下规则归类单个 intent-filter：
//
//  1. app-link：scheme 为 https、host 非空、filter 上 autoVerify="true"
//  2. custom-scheme：含 VIEW action，且含 BROWSABLE 或 DEFAULT category，
//     data 中存在非 https 的 scheme
//  3. 宽松兜底：有 VIEW action 但 category 不全时，非 https scheme 仍然收集；
//     https 在任何情况下都不会被当成自定义 scheme
func classifyIntentFilter(filter manifestNode, sum *ManifestSummary, schemeSeen, hostSeen map[string]struct{}) {
	hasView := false
	for _, a := range filter.children("action") {
		if a.attr("name") == "android.intent.action.VIEW" {
			hasView = true
		}
	}

	autoVerify := strings.EqualFold(filter.attr("autoVerify"), "true")

	var schemes, hosts []string
	hasHTTPS := false
	for _, d := range filter.children("data") {
		if s := strings.TrimSpace(d.attr("scheme")); s != "" {
			if strings.EqualFold(s, "https") {
				hasHTTPS = true
			} else {
				schemes = append(schemes, s)
			}
		}
		if h := strings.TrimSpace(d.attr("host")); h != "" {
			hosts = append(hosts, h)
		}
	}

	if autoVerify && hasHTTPS {
		for _, h := range hosts {
			if _, dup := hostSeen[h]; dup {
				continue
			}
			hostSeen[h] = struct{}{}
			sum.AppLinkHosts = append(sum.AppLinkHosts, h)
		}
	}

	// 严格规则与宽松兜底对 scheme 的最终收集条件相同：都要求 VIEW action。
	// category 缺失只影响归类说法不影响结果，https 永远不进入自定义 scheme 集合。
	if !hasView {
		return
	}
	for _, s := range schemes {
		if _, dup := schemeSeen[s]; dup {
			continue
		}
		schemeSeen[s] = struct{}{}
		sum.URLSchemes = append(sum.URLSchemes, s)
	}
}

// attr 按策略链取属性值：先 android 命名空间，再裸属性名。
func (n manifestNode) attr(local string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == local && a.Name.Space == androidNS {
			return a.Value
		}
	}
	for _, a := range n.Attrs {
		if a.Name.Local == local && (a.Name.Space == "" || a.Name.Space == "android") {
			return a.Value
		}
	}
	return ""
}

func (n manifestNode) children(local string) []manifestNode {
	var out []manifestNode
	for _, c := range n.Children {
		if c.XMLName.Local == local {
			out = append(out, c)
		}
	}
	return out
}

func (n manifestNode) childrenAny(locals ...string) []manifestNode {
	var out []manifestNode
	for _, c := range n.Children {
		for _, l := range locals {
			if c.XMLName.Local == l {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

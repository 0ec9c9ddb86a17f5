package model

// ProjectKind 表示被检测工程的类型。
type ProjectKind string

const (
	// KindFlutter 表示 Flutter 跨平台工程（根目录存在 pubspec.yaml）。
	KindFlutter ProjectKind = "flutter"
	// KindIOS 表示 iOS 原生工程。
	KindIOS ProjectKind = "ios"
	// KindAndroid 表示 Android 原生工程。
	KindAndroid ProjectKind = "android"
	// KindUnknown 表示无法识别的工程类型。
	KindUnknown ProjectKind = "unknown"
)

// LocalConfig 是一次提取得到的本地深链配置归一化结果。
//
// 不变量：
// - scheme 字符串不含 "://" 后缀
// - AssociatedDomains / AppLinkHosts 为裸主机名，不含 "applinks:" 前缀或 scheme
type LocalConfig struct {
	Kind     ProjectKind `json:"kind"`
	BundleID string      `json:"bundle_id,omitempty"` // iOS bundle id；Android 工程为 applicationId/package

	// URLSchemes 是合并后的去重 scheme 列表（保持首次出现顺序）。
	// IOSSchemes / AndroidSchemes 保留平台归属，供平台维度交叉校验使用；
	// 原生工程两者之一与 URLSchemes 相同。
	URLSchemes     []string `json:"url_schemes,omitempty"`
	IOSSchemes     []string `json:"ios_schemes,omitempty"`
	AndroidSchemes []string `json:"android_schemes,omitempty"`

	// AssociatedDomains 是 iOS 侧 associated domains（去 applinks: 前缀后的主机名）。
	AssociatedDomains []string `json:"associated_domains,omitempty"`
	// AppLinkHosts 是 Android 侧通过 autoVerify intent-filter 声明的主机名。
	AppLinkHosts []string `json:"app_link_hosts,omitempty"`

	// TeamID 是 iOS 签名 Team Identifier（10 位字母数字，可选）。
	TeamID string `json:"team_id,omitempty"`

	// SDK 依赖探测结果（按平台；nil 表示未探测）。
	IOSDependency     *DependencyStatus `json:"ios_dependency,omitempty"`
	AndroidDependency *DependencyStatus `json:"android_dependency,omitempty"`
	FlutterDependency *DependencyStatus `json:"flutter_dependency,omitempty"`
}

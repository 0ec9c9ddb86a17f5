package extract

import (
	"ulink-doctor/internal/adapters/project"
	"ulink-doctor/internal/domain/model"
)

// 配置提取服务：把定位器、格式读取器、构建变量解析器与目标匹配器
// 组合成一份归一化 LocalConfig。
//
// 提取从不整体失败：任何子来源缺失或损坏只让对应字段为空，
// 其余字段照常填充（errors are data）。

// Options 是一次提取的输入。
type Options struct {
	// Root 是工程根目录。
	Root string
	// RequestedBundleID 用于多 target 工程消歧；为空时取首个发现的目标。
	RequestedBundleID string
	// SDKToken 是 SDK 依赖探测的匹配关键字（默认 "ulink"）。
	SDKToken string
}

// Result 是一次提取的完整结果。
// Flutter 工程同时保留双端子配置，供平台维度交叉校验使用；
// 原生工程只填充对应平台的子配置（与 Merged 相同）。
type Result struct {
	Kind    model.ProjectKind
	Merged  model.LocalConfig
	IOS     *model.LocalConfig
	Android *model.LocalConfig
	// Targets 是 iOS 目标发现结果（Android-only 工程为空结果）。
	Targets model.TargetDiscoveryResult
}

const defaultSDKToken = "ulink"

// Extract 识别工程类型并按平台提取本地配置。
func Extract(opts Options) Result {
	if opts.SDKToken == "" {
		opts.SDKToken = defaultSDKToken
	}

	kind := project.Classify(opts.Root)
	switch kind {
	case model.KindFlutter:
		return extractFlutter(opts)
	case model.KindIOS:
		cfg, targets := extractIOS(opts, kind)
		cfg.Kind = kind
		return Result{Kind: kind, Merged: cfg, IOS: &cfg, Targets: targets}
	case model.KindAndroid:
		cfg := extractAndroid(opts, kind)
		cfg.Kind = kind
		return Result{Kind: kind, Merged: cfg, Android: &cfg}
	default:
		return Result{Kind: model.KindUnknown, Merged: model.LocalConfig{Kind: model.KindUnknown}}
	}
}

// dedupAppend 把 src 中未出现过的值追加到 dst，保持首次出现顺序。
func dedupAppend(dst []string, seen map[string]struct{}, src []string) []string {
	for _, s := range src {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		dst = append(dst, s)
	}
	return dst
}

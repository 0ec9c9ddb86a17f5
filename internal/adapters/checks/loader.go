package checks

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"ulink-doctor/internal/domain/model"

	"gopkg.in/yaml.v3"
)

// 检查项配置装载器：读取并校验 checks.yaml。
// 配置是可选的；文件不存在等同于“全部检查按默认级别执行”。

// knownChecks 是允许被覆盖的检查名全集。
var knownChecks = map[string]struct{}{
	model.CheckIOSBundleID:     {},
	model.CheckIOSScheme:       {},
	model.CheckIOSExtraSchemes: {},
	model.CheckIOSDomains:      {},
	model.CheckIOSTeamID:       {},
	model.CheckIOSDependency:   {},
	model.CheckAndroidPackage:  {},
	model.CheckAndroidScheme:   {},
	model.CheckAndroidExtra:    {},
	model.CheckAndroidHosts:    {},
	model.CheckAndroidCerts:    {},
	model.CheckAndroidDep:      {},
	model.CheckFlutterDep:      {},
}

// Loaded 是加载后的检查配置与其文件哈希（留痕用）。
type Loaded struct {
	Config model.ChecksConfig
	SHA256 string

	disabled  map[string]bool
	downgrade map[string]model.Severity
}

// Load 读取并校验检查配置文件。path 为空或文件不存在时返回空配置。
func Load(path string) (*Loaded, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return &Loaded{}, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Loaded{}, nil
		}
		return nil, fmt.Errorf("read checks config: %w", err)
	}

	var cfg model.ChecksConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse checks config: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}

	sum := sha256.Sum256(raw)
	loaded := &Loaded{
		Config:    cfg,
		SHA256:    hex.EncodeToString(sum[:]),
		disabled:  make(map[string]bool),
		downgrade: make(map[string]model.Severity),
	}
	for _, ov := range cfg.Checks {
		if ov.Enabled != nil && !*ov.Enabled {
			loaded.disabled[ov.Name] = true
		}
		if ov.Severity != "" {
			loaded.downgrade[ov.Name] = model.Severity(ov.Severity)
		}
	}
	return loaded, nil
}

// validate 检查配置的完整性与唯一性。
func validate(cfg model.ChecksConfig) error {
	seen := make(map[string]struct{}, len(cfg.Checks))
	for _, ov := range cfg.Checks {
		name := strings.TrimSpace(ov.Name)
		if name == "" {
			return errors.New("checks config: check name is required")
		}
		if _, ok := knownChecks[name]; !ok {
			return fmt.Errorf("checks config: unknown check: %s", name)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("checks config: duplicate check: %s", name)
		}
		seen[name] = struct{}{}

		switch ov.Severity {
		case "", string(model.SeverityWarning):
			// 只允许降级为 warning，升级或改成其他值都拒绝
		default:
			return fmt.Errorf("checks config: unsupported severity override for %s: %s", name, ov.Severity)
		}
	}
	return nil
}

// Apply 按配置过滤并降级 Finding 列表，保持原有顺序。
// 被禁用的检查整条移除；被降级的 error 改写为 warning。
func (l *Loaded) Apply(findings []model.Finding) []model.Finding {
	if l == nil || (len(l.disabled) == 0 && len(l.downgrade) == 0) {
		return findings
	}

	out := make([]model.Finding, 0, len(findings))
	for _, f := range findings {
		if l.disabled[f.CheckName] {
			continue
		}
		if sev, ok := l.downgrade[f.CheckName]; ok && f.Severity == model.SeverityError {
			f.Severity = sev
		}
		out = append(out, f)
	}
	return out
}

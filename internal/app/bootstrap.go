package app

// Config 存放应用级默认路径与常量配置。
type Config struct {
	// DBPath 是校验历史库路径。
	DBPath string
	// ChecksPath 是可选的检查项配置文件路径。
	ChecksPath string
	// ReportDir 是导出产物（PDF/JSON）的输出目录。
	ReportDir string
	// SDKToken 是依赖清单中识别 ULink SDK 的匹配关键字。
	SDKToken string
}

// DefaultConfig 返回本地开发环境的默认配置。
func DefaultConfig() Config {
	return Config{
		DBPath:     "data/ulink-doctor.db",
		ChecksPath: ".ulink-checks.yaml",
		ReportDir:  "data/reports",
		SDKToken:   "ulink",
	}
}

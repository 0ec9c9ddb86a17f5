package remote

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"ulink-doctor/internal/domain/model"
)

// 远端配置装载器。
//
// HTTP 拉取与鉴权由上游 API 客户端完成，这里只消费已落盘/已到手的 JSON 快照。
// 核心校验逻辑不发起任何网络请求。

// DecodeConfig 解析远端项目配置 JSON。
func DecodeConfig(raw []byte) (*model.RemoteConfig, error) {
	var cfg model.RemoteConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse remote config: %w", err)
	}
	if strings.TrimSpace(cfg.ProjectID) == "" {
		return nil, fmt.Errorf("remote config: projectId is required")
	}
	return &cfg, nil
}

// LoadConfigFile 从磁盘读取远端配置快照并解析。
func LoadConfigFile(path string) (*model.RemoteConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read remote config: %w", err)
	}
	return DecodeConfig(raw)
}

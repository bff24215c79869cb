// Package config 读取 YAML 配置文件并应用环境变量覆盖。
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// CurrentVersion 是当前配置结构的版本号。
const CurrentVersion = 1

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type ExportConfig struct {
	Format  string `yaml:"format"`  // pdf | vector | png
	Quality string `yaml:"quality"` // standard | high | ultra
	OutDir  string `yaml:"out_dir"`
}

type FontsConfig struct {
	// Files 将字体名映射到 TTF 路径；相对路径以配置文件所在目录为基准
	Files map[string]string `yaml:"files"`
}

type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	Logging       LoggingConfig `yaml:"logging"`
	Export        ExportConfig  `yaml:"export"`
	Fonts         FontsConfig   `yaml:"fonts"`
}

// Defaults returns the built-in configuration.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: CurrentVersion,
		Logging:       LoggingConfig{Level: "info", Format: "console"},
		Export:        ExportConfig{Format: "pdf", Quality: "high"},
	}
}

// 环境变量覆盖
const (
	EnvLogLevel      = "INKTRACE_LOG_LEVEL"
	EnvLogFormat     = "INKTRACE_LOG_FORMAT"
	EnvLogSource     = "INKTRACE_LOG_SOURCE"
	EnvLogFile       = "INKTRACE_LOG_FILE"
	EnvExportFormat  = "INKTRACE_EXPORT_FORMAT"
	EnvExportQuality = "INKTRACE_EXPORT_QUALITY"
)

// LoadFile 读取配置文件并合并到默认值上，最后应用环境变量。
// path 为空或文件不存在时直接使用默认值；文件损坏时仍返回可用的默认配置以及错误。
func LoadFile(path string) (AppConfig, error) {
	cfg := Defaults()
	var loadErr error
	if path = strings.TrimSpace(path); path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			loadErr = fmt.Errorf("读取配置文件 %s 失败: %w", path, err)
		default:
			var fileCfg AppConfig
			if err := yaml.Unmarshal(data, &fileCfg); err != nil {
				loadErr = fmt.Errorf("解析配置文件 %s 失败: %w", path, err)
			} else {
				resolveFontPaths(&fileCfg, filepath.Dir(path))
				mergeInto(&cfg, &fileCfg)
			}
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, loadErr
}

// Save 以 YAML 写出配置。
func Save(path string, cfg AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("创建配置目录失败: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("序列化配置失败: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func resolveFontPaths(cfg *AppConfig, base string) {
	for name, p := range cfg.Fonts.Files {
		if p != "" && !filepath.IsAbs(p) {
			cfg.Fonts.Files[name] = filepath.Join(base, p)
		}
	}
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if v := lowerTrim(src.Logging.Level); v != "" {
		dst.Logging.Level = v
	}
	if v := lowerTrim(src.Logging.Format); v != "" {
		dst.Logging.Format = v
	}
	dst.Logging.Source = src.Logging.Source
	if v := strings.TrimSpace(src.Logging.File); v != "" {
		dst.Logging.File = v
	}
	if v := lowerTrim(src.Export.Format); v != "" {
		dst.Export.Format = v
	}
	if v := lowerTrim(src.Export.Quality); v != "" {
		dst.Export.Quality = v
	}
	if v := strings.TrimSpace(src.Export.OutDir); v != "" {
		dst.Export.OutDir = v
	}
	if len(src.Fonts.Files) > 0 {
		if dst.Fonts.Files == nil {
			dst.Fonts.Files = map[string]string{}
		}
		for name, p := range src.Fonts.Files {
			dst.Fonts.Files[name] = p
		}
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := lowerTrim(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = v
	}
	if v := lowerTrim(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = v
	}
	if v := lowerTrim(os.Getenv(EnvLogSource)); v != "" {
		cfg.Logging.Source = v == "1" || v == "true" || v == "on" || v == "yes"
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
	if v := lowerTrim(os.Getenv(EnvExportFormat)); v != "" {
		cfg.Export.Format = v
	}
	if v := lowerTrim(os.Getenv(EnvExportQuality)); v != "" {
		cfg.Export.Quality = v
	}
}

// EnvOverrideFor 返回覆盖该配置项的环境变量名。
func EnvOverrideFor(key string) (string, bool) {
	env := map[string]string{
		"logging.level":  EnvLogLevel,
		"logging.format": EnvLogFormat,
		"logging.source": EnvLogSource,
		"logging.file":   EnvLogFile,
		"export.format":  EnvExportFormat,
		"export.quality": EnvExportQuality,
	}[key]
	if env == "" || os.Getenv(env) == "" {
		return "", false
	}
	return env, true
}

func lowerTrim(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

/*
 * @Description: 统一配置管理 (手动加载)
 * @Author: 安知鱼
 * @Date: 2025-06-28 00:21:55
 * @LastEditTime: 2026-10-13 14:12:48
 * @LastEditors: 安知鱼
 */
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-ini/ini"
	"github.com/spf13/viper"
)

// DefaultConfigPath 是默认的配置文件路径
const DefaultConfigPath = "data/conf.ini"

// EnvPrefix 是环境变量前缀，例如 BLOG_SYSTEM_PORT
const EnvPrefix = "BLOG"

// 定义所有已知的配置键
var allKeys = []string{
	KeyServerPort, KeyServerDebug,
	KeyUploadMaxSize, KeyFlashTTL, KeyStaticDir, KeyIDSeed,
	KeyRedisAddr, KeyRedisPassword, KeyRedisDB,
}

const (
	KeyServerPort    = "System.Port"
	KeyServerDebug   = "System.Debug"
	KeyUploadMaxSize = "Upload.MaxSize"
	KeyFlashTTL      = "Flash.TTL"
	KeyStaticDir     = "Static.Dir"
	KeyIDSeed        = "ID.Seed"
	KeyRedisAddr     = "Redis.Addr"
	KeyRedisPassword = "Redis.Password"
	KeyRedisDB       = "Redis.DB"
)

// 内部默认值，配置文件和环境变量都未提供时使用
var defaults = map[string]interface{}{
	KeyServerPort:    "3000",
	KeyServerDebug:   false,
	KeyUploadMaxSize: int64(10 << 20),
	KeyFlashTTL:      300,
	KeyRedisDB:       0,
}

type Config struct {
	vp *viper.Viper
}

// NewConfigFromFile 手动加载配置：内部默认值 < ini 文件 < 环境变量
func NewConfigFromFile(filePath string) (*Config, error) {
	vp := viper.New()
	for key, value := range defaults {
		vp.SetDefault(key, value)
	}

	// --- 步骤 1: 使用 go-ini 从文件加载配置 ---
	iniCfg, err := ini.Load(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("提示: 未找到 %s，将创建默认配置文件。", filePath)
			if err := createDefaultConfigFile(filePath); err != nil {
				log.Printf("警告: 创建默认配置文件失败: %v，将仅依赖环境变量或内部默认值。", err)
			} else {
				log.Printf("✅ 已创建默认配置文件: %s", filePath)
				iniCfg, err = ini.Load(filePath)
				if err != nil {
					log.Printf("警告: 重新加载配置文件失败: %v", err)
				}
			}
		} else {
			return nil, fmt.Errorf("错误: 解析配置文件 '%s' 失败: %w", filePath, err)
		}
	}

	if iniCfg != nil {
		for _, section := range iniCfg.Sections() {
			for _, key := range section.Keys() {
				viperKey := fmt.Sprintf("%s.%s", section.Name(), key.Name())
				if section.Name() == ini.DefaultSection {
					viperKey = key.Name()
				}
				// 空值不覆盖内部默认值
				if strings.TrimSpace(key.Value()) == "" {
					continue
				}
				vp.Set(viperKey, key.Value())
			}
		}
		log.Printf("从 %s 文件加载了配置。", filePath)
	}

	// --- 步骤 2: 手动检查并覆盖环境变量 ---
	envReplacer := strings.NewReplacer(".", "_")
	for _, key := range allKeys {
		envVarName := fmt.Sprintf("%s_%s", EnvPrefix, envReplacer.Replace(strings.ToUpper(key)))
		if value, found := os.LookupEnv(envVarName); found {
			vp.Set(key, value)
			log.Printf("发现环境变量: %s, 已覆盖配置 '%s'。", envVarName, key)
		}
	}

	log.Println("✅ 配置加载器初始化完成。")
	return &Config{vp: vp}, nil
}

func (c *Config) GetString(key string) string {
	return c.vp.GetString(key)
}

func (c *Config) GetInt(key string) int {
	return c.vp.GetInt(key)
}

func (c *Config) GetInt64(key string) int64 {
	return c.vp.GetInt64(key)
}

func (c *Config) GetBool(key string) bool {
	return c.vp.GetBool(key)
}

// createDefaultConfigFile 创建默认的配置文件
func createDefaultConfigFile(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("创建目录失败: %w", err)
	}

	defaultConfig := `[System]
Port = 3000
Debug = false

[Upload]
# 单次提交的请求体上限（字节），超出视为上传结构错误
MaxSize = 10485760

[Flash]
# 错误提示在被读取前的保留时间（秒）
TTL = 300

[Static]
# 留空则使用内嵌的静态资源
Dir =

[ID]
# 公共ID字母表的打乱种子，留空使用默认字母表
Seed =

# Redis 配置（可选）
# 如果不配置或留空 Addr，系统将自动使用内存缓存保存错误提示
[Redis]
Addr =
Password =
DB = 0
`

	if err := os.WriteFile(filePath, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("写入配置文件失败: %w", err)
	}

	return nil
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// 配置键。环境变量名由键中的 '.' 替换为 '_' 并转为大写得到。
const (
	KeyToken           = "BOT_TOKEN"
	KeyApplicationID   = "discord.application_id"
	KeyGuildID         = "discord.guild_id"
	KeyDefinitionsPath = "definitions.path"
	KeyLogLevel        = "log.level"
)

// Settings 是运行 CLI 所需的全部设置。
type Settings struct {
	Token           string
	ApplicationID   string
	GuildID         string
	DefinitionsPath string
	LogLevel        string
}

// LoadSettings 使用全局 viper 实例加载设置，命令行 flag 绑定在该实例上。
func LoadSettings(configFile string) (*Settings, error) {
	return Load(viper.GetViper(), configFile)
}

// Load 从多个源加载配置：.env 文件、config.yaml、以及环境变量。
// 配置加载顺序:
// 1. .env 文件 (用于环境变量)
// 2. config.yaml 或 configFile 指定的文件 (基础配置)
// 3. 环境变量 (覆盖配置文件中的同名设置)
// 与 flag 绑定的值优先级最高。
func Load(v *viper.Viper, configFile string) (*Settings, error) {
	// 1. 从 .env 文件加载环境变量，如果文件不存在则忽略。
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	// 2. 设置并读取基础配置文件。
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config") // 配置文件名 (无扩展名)
		v.SetConfigType("yaml")   // 配置文件类型
		v.AddConfigPath(".")      // 在当前工作目录中查找
	}
	v.AutomaticEnv()                                   // 自动读取匹配的环境变量
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // 将配置键中的'.'替换为'_'以匹配环境变量

	v.SetDefault(KeyDefinitionsPath, "commands.yaml")
	v.SetDefault(KeyLogLevel, "info")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// 未显式指定时，配置文件未找到是正常情况，可以继续。
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &Settings{
		Token:           v.GetString(KeyToken),
		ApplicationID:   v.GetString(KeyApplicationID),
		GuildID:         v.GetString(KeyGuildID),
		DefinitionsPath: v.GetString(KeyDefinitionsPath),
		LogLevel:        v.GetString(KeyLogLevel),
	}, nil
}

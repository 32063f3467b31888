package config

import (
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// SecretValue is a string that masks itself when printed.
type SecretValue string

func (s SecretValue) String() string {
	return "*******"
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

type MongoDBConfig struct {
	Database string      `mapstructure:"database"`
	CAPem    string      `mapstructure:"ca_pem"`
	User     string      `mapstructure:"user"`
	Password SecretValue `mapstructure:"password"`
	Port     string      `mapstructure:"port"`
	Host     string      `mapstructure:"host"`
}

type KeyConfig struct {
	RsaPrivateKeyPem string `mapstructure:"rsa_private_key_pem"`
}

type AccountConfig struct {
	AdminUser     string      `mapstructure:"admin_user"`
	AdminPassword SecretValue `mapstructure:"admin_password"`
}

type KubernetesConfig struct {
	KubeConfigPath string `mapstructure:"kubeconfig_path"`
	InCluster      bool   `mapstructure:"in_cluster"`
}

// HookConfig locates the checkpoint hook endpoint triggers are dispatched to.
// The endpoint is operator configuration, never user input.
type HookConfig struct {
	Endpoint       string `mapstructure:"endpoint"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

func (c HookConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// WatchConfig tunes the per-watcher loop behavior.
type WatchConfig struct {
	ClusterName               string `mapstructure:"cluster_name"`
	ReconnectBackoffSeconds   int    `mapstructure:"reconnect_backoff_seconds"`
	ReconnectBackoffMaxSecond int    `mapstructure:"reconnect_backoff_max_seconds"`
	HeartbeatSeconds          int    `mapstructure:"heartbeat_seconds"`
	StalenessSeconds          int    `mapstructure:"staleness_seconds"`
}

func (c WatchConfig) ReconnectBackoff() time.Duration {
	return time.Duration(c.ReconnectBackoffSeconds) * time.Second
}

func (c WatchConfig) ReconnectBackoffMax() time.Duration {
	return time.Duration(c.ReconnectBackoffMaxSecond) * time.Second
}

func (c WatchConfig) Heartbeat() time.Duration {
	return time.Duration(c.HeartbeatSeconds) * time.Second
}

func (c WatchConfig) StalenessThreshold() time.Duration {
	return time.Duration(c.StalenessSeconds) * time.Second
}

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	MongoDB    MongoDBConfig    `mapstructure:"mongodb"`
	Key        KeyConfig        `mapstructure:"key"`
	Account    AccountConfig    `mapstructure:"account"`
	Kubernetes KubernetesConfig `mapstructure:"kubernetes"`
	Hook       HookConfig       `mapstructure:"hook"`
	Watch      WatchConfig      `mapstructure:"watch"`
}

var (
	cfg *Config
)

func GetConfig() *Config {
	return cfg
}

func InitConfig(configName string, configPath string) (Config, error) {
	var c Config
	if configPath != "" {
		viper.AddConfigPath(configPath)
	}
	if configName == "" {
		configName = "snapwatch_config"
	}
	viper.AddConfigPath(GetAbsPath("config"))
	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.SetEnvPrefix("SNAPWATCH")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("hook.timeout_seconds", 5)
	viper.SetDefault("watch.reconnect_backoff_seconds", 1)
	viper.SetDefault("watch.reconnect_backoff_max_seconds", 30)
	viper.SetDefault("watch.heartbeat_seconds", 10)
	viper.SetDefault("watch.staleness_seconds", 60)

	err := viper.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = viper.Unmarshal(&c)
	if err != nil {
		return c, err
	}
	cfg = &c
	return c, nil
}

// GetAbsPath returns the absolute path by joining the given paths with the project root directory
func GetAbsPath(paths ...string) string {
	_, filePath, _, _ := runtime.Caller(1)
	basePath := filepath.Dir(filePath)
	rootPath := filepath.Join(basePath, "..")
	return filepath.Join(rootPath, filepath.Join(paths...))
}

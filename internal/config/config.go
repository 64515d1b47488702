package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env          string            `yaml:"env" env-default:"local"`
	DSN          string            `yaml:"dsn" env:"DSN"`
	HTTP         HTTPConfig        `yaml:"http"`
	FileStorage  FileStorageConfig `yaml:"file_storage"`
	Redis        RedisConf         `yaml:"redis"`
	Discord      DiscordConfig     `yaml:"discord"`
	Moderation   ModerationConfig  `yaml:"moderation"`
	SessionKey   string            `yaml:"session_key" env:"SESSION_KEY" env-default:"halarcraft-dev"`
	DraftTTL     time.Duration     `yaml:"draft_ttl" env-default:"2h"`
	FeedCacheTTL time.Duration     `yaml:"feed_cache_ttl" env-default:"0"`
}

type HTTPConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port" env-default:"8080"`
}

type FileStorageConfig struct {
	BaseDir string `yaml:"base_dir" env-default:"./uploads"`
	BaseURL string `yaml:"base_url" env-default:"http://localhost:8080/uploads"`
	MaxSize int64  `yaml:"max_size" env-default:"10485760"`
}

type RedisConf struct {
	RedisAddr     string `yaml:"redis_addr" env-default:"localhost:6379"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
}

type DiscordConfig struct {
	// Базовый URL API Discord; в тестах подменяется на httptest-сервер
	APIBaseURL string        `yaml:"api_base_url" env-default:"https://discord.com/api"`
	Timeout    time.Duration `yaml:"timeout" env-default:"10s"`
}

type ModerationConfig struct {
	// Ключ подписи JWT модераторов
	SigningKey string        `yaml:"signing_key" env:"MODERATION_SIGNING_KEY" env-required:"true"`
	TokenTTL   time.Duration `yaml:"token_ttl" env-default:"12h"`
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	return &cfg
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}

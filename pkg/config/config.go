package config

import (
	"os"
	"sync"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"
	"sigs.k8s.io/yaml"
)

// DefaultStorageQuotaMiB is the per-user storage ceiling applied when the
// configuration does not set one.
const DefaultStorageQuotaMiB = 300

type Config struct {
	// Port Settings
	Host       string `json:"host"`       // The domain name of the server.
	ServerAddr string `json:"serverAddr"` // The address the server endpoint binds to.

	// DB Settings
	Postgres struct {
		Host     string `json:"host"`
		Port     string `json:"port"`
		DBName   string `json:"dbname"`
		User     string `json:"user"`
		Password string `json:"password"`
		SSLMode  string `json:"sslmode"`
		TimeZone string `json:"TimeZone"`
		// Optional read-only replicas sharing the credentials above.
		ReadReplicaHosts []string `json:"readReplicaHosts"`
	} `json:"postgres"`

	// Object storage for image assets, S3 compatible.
	S3 struct {
		Endpoint     string `json:"endpoint"` // Empty for AWS endpoint resolution.
		Region       string `json:"region"`
		Bucket       string `json:"bucket"`
		AccessKey    string `json:"accessKey"`
		SecretKey    string `json:"secretKey"`
		UsePathStyle bool   `json:"usePathStyle"` // Required for MinIO.
	} `json:"s3"`

	Quota struct {
		StorageMiB int64 `json:"storageMiB"` // Per-user ceiling in MiB, 0 for default.
		// When true, deleting or replacing a stored object credits its size
		// back to the owner. When false usage only ever grows.
		ReclaimCredit bool `json:"reclaimCredit"`
	} `json:"quota"`

	Session struct {
		CookieName   string `json:"cookieName"`
		CookiePath   string `json:"cookiePath"`
		CookieDomain string `json:"cookieDomain"`
		Secure       bool   `json:"secure"`
	} `json:"session"`

	Registration struct {
		Open bool `json:"open"` // Allow self sign up with role user.
	} `json:"registration"`

	// Initial passwords for the builtin accounts, used once at first migration.
	Bootstrap struct {
		AdminPassword string `json:"adminPassword"`
		GuestPassword string `json:"guestPassword"`
	} `json:"bootstrap"`

	LDAP struct {
		Enable   bool   `json:"enable"` // If true, passwords are verified against LDAP.
		Address  string `json:"address"`
		UserName string `json:"userName"`
		Password string `json:"password"`
		SearchDN string `json:"searchDN"`
	} `json:"ldap"`

	SMTP struct {
		Host     string `json:"host"`
		Port     string `json:"port"`
		User     string `json:"user"`
		Password string `json:"password"`
		Notify   string `json:"notify"`
	} `json:"smtp"`

	// Alert channel selection, the webhook wins over SMTP when both are set.
	Alert struct {
		WebhookURL string `json:"webhookUrl"`
	} `json:"alert"`

	Sweep struct {
		Schedule   string `json:"schedule"`   // Cron spec, empty disables the sweeper.
		GraceHours int    `json:"graceHours"` // Minimum orphan age before deletion, 0 for default 24.
	} `json:"sweep"`

	// Upstream image generation service, proxied as-is.
	Generation struct {
		URL    string `json:"url"`
		APIKey string `json:"apiKey"`
		Model  string `json:"model"`
	} `json:"generation"`

	Web struct {
		DistDir string `json:"distDir"` // Static frontend directory, empty disables.
	} `json:"web"`
}

// StorageQuotaBytes returns the per-user storage ceiling in bytes.
func (c *Config) StorageQuotaBytes() int64 {
	mib := c.Quota.StorageMiB
	if mib <= 0 {
		mib = DefaultStorageQuotaMiB
	}
	return mib << 20
}

var (
	once   sync.Once
	config *Config
)

func GetConfig() *Config {
	once.Do(func() {
		config = initConfig()
	})
	return config
}

func IsDebugMode() bool {
	return gin.Mode() == gin.DebugMode
}

// InitConfig initializes the configuration by reading the configuration file.
// If the environment is set to debug, it reads the debug-config.yaml file.
// Otherwise, it reads the config.yaml file from ConfigMap.
// It returns a pointer to the Config struct and an error if any occurred.
func initConfig() *Config {
	// 读取配置文件
	config := &Config{}
	var configPath string
	if IsDebugMode() {
		if os.Getenv("ATELIER_DEBUG_CONFIG_PATH") != "" {
			configPath = os.Getenv("ATELIER_DEBUG_CONFIG_PATH")
		} else {
			configPath = "./etc/debug-config.yaml"
		}
	} else {
		configPath = "/etc/config/config.yaml"
	}
	klog.Info("config path: ", configPath)

	err := readConfig(configPath, config)
	if err != nil {
		klog.Error("init config", err)
		panic(err)
	}
	return config
}

func readConfig(filePath string, config *Config) error {
	// 读取 YAML 配置文件
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	// 解析 YAML 数据到结构体
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return err
	}
	return nil
}

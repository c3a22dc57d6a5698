package core

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	// Config holds all application settings. It is populated once at startup
	// from the environment (with an optional .env file) and passed down
	// explicitly to whoever needs it.
	Config struct {
		AppName  string
		Env      string // DEV (local; default), TEST, QA, PROD
		Debug    bool
		TestMode bool
		Build    string

		SecretKey    string
		RollbarToken string

		Server  ServerConfig
		Storage StorageConfig
		Gemini  GeminiConfig
		School  SchoolConfig
	}

	ServerConfig struct {
		Addr               string
		ShutdownTimeout    time.Duration
		JWTExpirationDelta time.Duration
	}

	StorageConfig struct {
		// Backend is one of: memory, file, redis.
		Backend       string
		DataDir       string
		RedisAddr     string
		RedisPassword string
		RedisDB       int
	}

	GeminiConfig struct {
		APIKey  string
		Model   string
		Timeout time.Duration
	}

	// SchoolConfig pins the session new admissions and mark entries default to.
	SchoolConfig struct {
		CurrentTerm int
		CurrentYear int
	}
)

// NewConfig loads the app configuration from the environment.
// A `.env` file in the working directory is loaded first if it exists.
func NewConfig() *Config {
	_ = godotenv.Load() // ignore if missing

	v := viper.New()
	v.SetTypeByDefaultValue(true)

	// defaults
	v.SetDefault("appName", "ElimuSmart")
	v.SetDefault("debug", true)
	v.SetDefault("build", "develop")
	v.SetDefault("secretKey", "w#per)enb$+57=dz&uoxh2(h!x)#*c2(#yg4h^$cegm2emy")
	v.SetDefault("serverAddr", ":8000")
	v.SetDefault("shutdownTimeout", 5*time.Second)
	v.SetDefault("jwtExpirationDelta", 7*24*time.Hour)
	v.SetDefault("storageBackend", "file")
	v.SetDefault("storageDataDir", ".elimusmart")
	v.SetDefault("redisAddr", "localhost:6379")
	v.SetDefault("redisPassword", "")
	v.SetDefault("redisDB", 0)
	v.SetDefault("geminiApiKey", "")
	v.SetDefault("geminiModel", "gemini-3-flash-preview")
	v.SetDefault("geminiTimeout", 30*time.Second)
	v.SetDefault("rollbarToken", "")
	v.SetDefault("currentTerm", 1)
	v.SetDefault("currentYear", 2024)

	env := strings.ToUpper(os.Getenv("ENV"))
	if env == "" {
		env = "DEV"
	}
	v.SetDefault("testMode", env == "TEST")
	v.SetEnvPrefix(env)
	v.AutomaticEnv()

	return &Config{
		AppName:      v.GetString("appName"),
		Env:          env,
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		Build:        v.GetString("build"),
		SecretKey:    v.GetString("secretKey"),
		RollbarToken: v.GetString("rollbarToken"),
		Server: ServerConfig{
			Addr:               v.GetString("serverAddr"),
			ShutdownTimeout:    v.GetDuration("shutdownTimeout"),
			JWTExpirationDelta: v.GetDuration("jwtExpirationDelta"),
		},
		Storage: StorageConfig{
			Backend:       v.GetString("storageBackend"),
			DataDir:       v.GetString("storageDataDir"),
			RedisAddr:     v.GetString("redisAddr"),
			RedisPassword: v.GetString("redisPassword"),
			RedisDB:       v.GetInt("redisDB"),
		},
		Gemini: GeminiConfig{
			APIKey:  v.GetString("geminiApiKey"),
			Model:   v.GetString("geminiModel"),
			Timeout: v.GetDuration("geminiTimeout"),
		},
		School: SchoolConfig{
			CurrentTerm: v.GetInt("currentTerm"),
			CurrentYear: v.GetInt("currentYear"),
		},
	}
}

package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

type PostgresConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
}

// DSN renders the lib/pq key/value connection string.
func (c PostgresConfig) DSN() string {
	return "host=" + c.Host + " port=" + c.Port + " user=" + c.User +
		" password=" + c.Password + " dbname=" + c.Name + " sslmode=" + c.SSLMode
}

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

func (c TwilioConfig) Configured() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.FromNumber != ""
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type Config struct {
	Port string

	Postgres PostgresConfig

	RedisHost string
	RedisPort string

	KafkaBroker string

	OpenAI OpenAIConfig
	Twilio TwilioConfig

	JWTSecret string
	JWTTTL    time.Duration

	PublicBaseURL  string
	MenuCacheTTL   time.Duration
	PickupTimezone string

	PickupSvcURL    string
	AnalyticsSvcURL string
	StaticDir       string
}

// RedisAddr is empty when no Redis host is configured.
func (c *Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return c.RedisHost + ":" + c.RedisPort
}

// Load reads .env.local and .env when present; real environment variables win.
func Load(defaultPort string) *Config {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	return &Config{
		Port: getEnv("PORT", defaultPort),
		Postgres: PostgresConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "restaurant"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		RedisHost:   os.Getenv("REDIS_HOST"),
		RedisPort:   getEnv("REDIS_PORT", "6379"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		OpenAI: OpenAIConfig{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			Model:   getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
			BaseURL: os.Getenv("OPENAI_BASE_URL"),
		},
		Twilio: TwilioConfig{
			AccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
			AuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
			FromNumber: os.Getenv("TWILIO_PHONE_NUMBER"),
		},
		JWTSecret:       getEnv("JWT_SECRET", "changeme"),
		JWTTTL:          getDuration("JWT_TTL", time.Hour),
		PublicBaseURL:   getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		MenuCacheTTL:    getDuration("MENU_CACHE_TTL", 5*time.Minute),
		PickupTimezone:  getEnv("PICKUP_TIMEZONE", "UTC"),
		PickupSvcURL:    getEnv("PICKUP_SVC_URL", "http://localhost:3001"),
		AnalyticsSvcURL: getEnv("ANALYTICS_SVC_URL", "http://localhost:8083"),
		StaticDir:       getEnv("STATIC_DIR", "./client/dist"),
	}
}

// Location falls back to UTC on an unknown zone name.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.PickupTimezone)
	if err != nil {
		log.Printf("unknown PICKUP_TIMEZONE %q, using UTC: %v", c.PickupTimezone, err)
		return time.UTC
	}
	return loc
}

func MustInitPostgres(cfg PostgresConfig) *sql.DB {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(addr string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(broker, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{broker},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(broker, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("invalid %s=%q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

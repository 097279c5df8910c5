package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (game tuning, timeouts, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Game   GameConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// GameConfig holds every tunable of the pet simulation. Decay rates are in
// stat units per hour of wall-clock time; decay itself is computed lazily
// from elapsed time, never by a background timer.
type GameConfig struct {
	HungerDecayPerHour    int `envconfig:"GAME_HUNGER_DECAY_PER_HOUR" default:"5"`
	EnergyDecayPerHour    int `envconfig:"GAME_ENERGY_DECAY_PER_HOUR" default:"3"`
	EnergyRegenPerHour    int `envconfig:"GAME_ENERGY_REGEN_PER_HOUR" default:"10"`
	HygieneDecayPerHour   int `envconfig:"GAME_HYGIENE_DECAY_PER_HOUR" default:"4"`
	HappinessDriftPerHour int `envconfig:"GAME_HAPPINESS_DRIFT_PER_HOUR" default:"2"`
	HappinessMidpoint     int `envconfig:"GAME_HAPPINESS_MIDPOINT" default:"50"`

	UnhappyThreshold int `envconfig:"GAME_UNHAPPY_THRESHOLD" default:"30"`
	// Below this value a stat counts as a neglected need and accelerates
	// happiness loss.
	LowStatThreshold      int `envconfig:"GAME_LOW_STAT_THRESHOLD" default:"20"`
	LowStatPenaltyPerHour int `envconfig:"GAME_LOW_STAT_PENALTY_PER_HOUR" default:"2"`

	TreatDailyLimit int `envconfig:"GAME_TREAT_DAILY_LIMIT" default:"3"`

	FeedCooldown     time.Duration `envconfig:"GAME_FEED_COOLDOWN" default:"1h"`
	CleanCooldown    time.Duration `envconfig:"GAME_CLEAN_COOLDOWN" default:"2h"`
	PlayCooldown     time.Duration `envconfig:"GAME_PLAY_COOLDOWN" default:"1h"`
	SleepCooldown    time.Duration `envconfig:"GAME_SLEEP_COOLDOWN" default:"4h"`
	WakeCooldown     time.Duration `envconfig:"GAME_WAKE_COOLDOWN" default:"30m"`
	PetCooldown      time.Duration `envconfig:"GAME_PET_COOLDOWN" default:"30m"`
	ExerciseCooldown time.Duration `envconfig:"GAME_EXERCISE_COOLDOWN" default:"2h"`
	TreatCooldown    time.Duration `envconfig:"GAME_TREAT_COOLDOWN" default:"3h"`
	MedicineCooldown time.Duration `envconfig:"GAME_MEDICINE_COOLDOWN" default:"6h"`

	CacheIdleTTL       time.Duration `envconfig:"GAME_CACHE_IDLE_TTL" default:"30m"`
	CacheSweepInterval time.Duration `envconfig:"GAME_CACHE_SWEEP_INTERVAL" default:"5m"`
	PersistMaxElapsed  time.Duration `envconfig:"GAME_PERSIST_MAX_ELAPSED" default:"2m"`
	ConflictRetryLimit int           `envconfig:"GAME_CONFLICT_RETRY_LIMIT" default:"3"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	cfg := Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Game: NewTestGameConfig(),
	}
	return cfg
}

// NewTestGameConfig mirrors the envconfig defaults so unit tests exercise
// the same numbers the service runs with.
func NewTestGameConfig() GameConfig {
	return GameConfig{
		HungerDecayPerHour:    5,
		EnergyDecayPerHour:    3,
		EnergyRegenPerHour:    10,
		HygieneDecayPerHour:   4,
		HappinessDriftPerHour: 2,
		HappinessMidpoint:     50,
		UnhappyThreshold:      30,
		LowStatThreshold:      20,
		LowStatPenaltyPerHour: 2,
		TreatDailyLimit:       3,
		FeedCooldown:          time.Hour,
		CleanCooldown:         2 * time.Hour,
		PlayCooldown:          time.Hour,
		SleepCooldown:         4 * time.Hour,
		WakeCooldown:          30 * time.Minute,
		PetCooldown:           30 * time.Minute,
		ExerciseCooldown:      2 * time.Hour,
		TreatCooldown:         3 * time.Hour,
		MedicineCooldown:      6 * time.Hour,
		CacheIdleTTL:          30 * time.Minute,
		CacheSweepInterval:    5 * time.Minute,
		PersistMaxElapsed:     2 * time.Minute,
		ConflictRetryLimit:    3,
	}
}

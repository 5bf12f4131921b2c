package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "TIENDA"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "TIENDA_DB_DSN"
	EnvDBHost = "TIENDA_DB_HOST"
	EnvDBUser = "TIENDA_DB_USER"
	EnvDBName = "TIENDA_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	LocalStore   LocalStoreConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	RateLimit    RateLimitConfig
	FeatureFlags FeatureFlagsConfig
	GCP          GCPConfig
	GCS          GCSConfig
	PubSub       PubSubConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"TIENDA_APP_ENV" required:"true"`
	Port         string `envconfig:"TIENDA_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"TIENDA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"TIENDA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// DBConfig describes the hosted Postgres backend served by the remote store.
type DBConfig struct {
	DSN    string `envconfig:"TIENDA_DB_DSN"`
	Driver string `envconfig:"TIENDA_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"TIENDA_DB_HOST"`
	LegacyPort     int    `envconfig:"TIENDA_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"TIENDA_DB_USER"`
	LegacyPassword string `envconfig:"TIENDA_DB_PASSWORD"`
	LegacyName     string `envconfig:"TIENDA_DB_NAME"`
	LegacySSLMode  string `envconfig:"TIENDA_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"TIENDA_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"TIENDA_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"TIENDA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"TIENDA_DB_CONN_MAX_IDLE_TIME" default:"10m"`

	// DialTimeout bounds the connectivity probe used by the data-access router.
	DialTimeout time.Duration `envconfig:"TIENDA_DB_DIAL_TIMEOUT" default:"2s"`
}

// LocalStoreConfig describes the embedded SQLite store used as the offline fallback.
type LocalStoreConfig struct {
	// BlobDir is where whole-database snapshots are persisted between runs.
	BlobDir string `envconfig:"TIENDA_LOCAL_BLOB_DIR" default:".tienda"`
	// BlobKey names the snapshot inside the blob store.
	BlobKey string `envconfig:"TIENDA_LOCAL_BLOB_KEY" default:"storefront_db"`
	// WorkDir holds the live SQLite file while the process runs.
	WorkDir string `envconfig:"TIENDA_LOCAL_WORK_DIR" default:""`
	// SimulatedLatency is applied to every local operation so loading-state
	// behavior matches the network-bound remote path.
	SimulatedLatency time.Duration `envconfig:"TIENDA_LOCAL_SIMULATED_LATENCY" default:"300ms"`
}

type RedisConfig struct {
	URL          string        `envconfig:"TIENDA_REDIS_URL"`
	Host         string        `envconfig:"TIENDA_REDIS_HOST" default:"localhost"`
	Port         int           `envconfig:"TIENDA_REDIS_PORT" default:"6379"`
	Password     string        `envconfig:"TIENDA_REDIS_PASSWORD"`
	DB           int           `envconfig:"TIENDA_REDIS_DB" default:"0"`
	DialTimeout  time.Duration `envconfig:"TIENDA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"TIENDA_REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"TIENDA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"TIENDA_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"TIENDA_JWT_ISSUER" default:"tienda-api"`
	ExpirationMinutes int    `envconfig:"TIENDA_JWT_EXPIRATION_MINUTES" default:"60"`
	SessionTTLMinutes int    `envconfig:"TIENDA_SESSION_TTL_MINUTES" default:"43200"`
}

// SessionTTL returns the server-side session lifetime.
func (j JWTConfig) SessionTTL() time.Duration {
	if j.SessionTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.SessionTTLMinutes) * time.Minute
}

// PasswordConfig gates credential hashing. The storefront's historical contract
// is a literal comparison against the stored credential; bcrypt is opt-in so
// deployments can harden without breaking existing rows.
type PasswordConfig struct {
	HashingEnabled   bool `envconfig:"TIENDA_PASSWORD_HASHING" default:"false"`
	ArgonMemoryKB    int  `envconfig:"TIENDA_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int  `envconfig:"TIENDA_ARGON_TIME" default:"3"`
	ArgonParallelism int  `envconfig:"TIENDA_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int  `envconfig:"TIENDA_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int  `envconfig:"TIENDA_ARGON_KEY_LEN" default:"32"`
}

// RateLimitConfig throttles the credential-bearing auth endpoints.
type RateLimitConfig struct {
	AuthWindow         time.Duration `envconfig:"TIENDA_RATE_LIMIT_AUTH_WINDOW" default:"1m"`
	LoginIPLimit       int           `envconfig:"TIENDA_RATE_LIMIT_LOGIN_IP" default:"20"`
	LoginEmailLimit    int           `envconfig:"TIENDA_RATE_LIMIT_LOGIN_EMAIL" default:"10"`
	RegisterIPLimit    int           `envconfig:"TIENDA_RATE_LIMIT_REGISTER_IP" default:"10"`
	RegisterEmailLimit int           `envconfig:"TIENDA_RATE_LIMIT_REGISTER_EMAIL" default:"5"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"TIENDA_AUTO_MIGRATE" default:"false"`
}

type GCPConfig struct {
	ProjectID              string `envconfig:"TIENDA_GCP_PROJECT_ID"`
	CredentialsJSON        string `envconfig:"TIENDA_GCP_CREDENTIALS_JSON"`
	ApplicationCredentials string `envconfig:"TIENDA_GOOGLE_APPLICATION_CREDENTIALS"`
}

type GCSConfig struct {
	BucketName string `envconfig:"TIENDA_GCS_BUCKET_NAME"`
}

type PubSubConfig struct {
	OrdersTopic         string        `envconfig:"TIENDA_PUBSUB_ORDERS_TOPIC" default:"tienda-order-events"`
	OrdersSubscription  string        `envconfig:"TIENDA_PUBSUB_ORDERS_SUBSCRIPTION"`
	EventIdempotencyTTL time.Duration `envconfig:"TIENDA_PUBSUB_EVENT_IDEMPOTENCY_TTL" default:"24h"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}

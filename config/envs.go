package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the maze server's configuration values.
type Config struct {
	HostIP           string        // Host IP for the server
	RESTPort         int           // Port for the REST API
	DBHost           string        // Hostname or IP address for the database
	DBPort           int           // Port number for the database
	DBUser           string        // Username for the database
	DBPassword       string        // Password for the database
	DBName           string        // Name of the database
	MazeCollection   string        // Collection holding persisted mazes
	RedisAddr        string        // host:port of the Redis cache
	RedisPassword    string        // Password for Redis, empty when none
	RedisDB          int           // Redis logical database index
	MazeCacheTTL     time.Duration // How long encoded mazes stay cached
	MaxMazeDimension int           // Largest accepted width or height
	GinMode          string        // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret        string        // Secret key for JWT signing
	JWTIssuer        string        // Issuer claim for JWTs
	SolutionTokenTTL time.Duration // Lifetime of solution access tokens
}

// Load reads the configuration from environment variables.
// A .env file in the working directory is loaded first when present.
func Load() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("%s[APP] [INFO]%s .env file not found or could not be loaded: %v", LogInfoColor, LogColorReset, err)
	}

	// Populate the Config struct with required environment variables
	return Config{
		HostIP:           mustGetEnv("HOST_IP"),
		RESTPort:         mustGetEnvAsInt("REST_PORT"),
		DBHost:           mustGetEnv("DB_HOST"),
		DBPort:           mustGetEnvAsInt("DB_PORT"),
		DBUser:           mustGetEnv("DB_USER"),
		DBPassword:       mustGetEnv("DB_PASS"),
		DBName:           mustGetEnv("DB_NAME"),
		MazeCollection:   getEnvWithDefault("DB_MAZE_COLLECTION", "mazes"),
		RedisAddr:        mustGetEnv("REDIS_ADDR"),
		RedisPassword:    getEnvWithDefault("REDIS_PASS", ""),
		RedisDB:          getEnvAsIntWithDefault("REDIS_DB", 0),
		MazeCacheTTL:     time.Duration(getEnvAsIntWithDefault("MAZE_CACHE_TTL_SECONDS", 600)) * time.Second,
		MaxMazeDimension: getEnvAsIntWithDefault("MAX_MAZE_DIMENSION", 100),
		GinMode:          getEnvWithDefault("GIN_MODE", "release"),
		JWTSecret:        mustGetEnv("JWT_SECRET"),
		JWTIssuer:        mustGetEnv("JWT_ISSUER"),
		SolutionTokenTTL: time.Duration(getEnvAsIntWithDefault("SOLUTION_TOKEN_TTL_SECONDS", 86400)) * time.Second,
	}
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("%s[APP] [FATAL]%s Environment variable %s is not set", LogErrorColor, LogColorReset, key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("%s[APP] [FATAL]%s Environment variable %s must be an integer: %v", LogErrorColor, LogColorReset, key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault is getEnvWithDefault for integers; unparsable values are fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	if _, exists := os.LookupEnv(key); !exists {
		return defaultValue
	}
	return mustGetEnvAsInt(key)
}

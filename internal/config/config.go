package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database"   validate:"required"`
	Auth       AuthConfig       `mapstructure:"auth"       validate:"required"`
	Cloudinary CloudinaryConfig `mapstructure:"cloudinary" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all MongoDB-related configuration settings.
type DatabaseConfig struct {
	URI  string `mapstructure:"uri"  validate:"required"`
	Name string `mapstructure:"name" validate:"required"`
}

// AuthConfig contains all authentication settings.
type AuthConfig struct {
	// TokenSecret signs session tokens; short secrets are rejected outright.
	TokenSecret          string `mapstructure:"token_secret"           validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
	BcryptCost           int    `mapstructure:"bcrypt_cost"            validate:"omitempty,gte=4,lte=31"`
}

// CloudinaryConfig contains the credentials for the image upload backend.
type CloudinaryConfig struct {
	CloudName string `mapstructure:"cloud_name" validate:"required"`
	APIKey    string `mapstructure:"api_key"    validate:"required"`
	APISecret string `mapstructure:"api_secret" validate:"required"`
	// Folder is the remote folder uploads land in.
	Folder string `mapstructure:"folder"`
}

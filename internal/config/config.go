package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Email    EmailConfig    `mapstructure:"email"`
	Upload   UploadConfig   `mapstructure:"upload"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains authentication settings. The token secret is injected
// here and passed explicitly to the token service constructor; nothing reads
// it from ambient environment state at verification time.
type AuthConfig struct {
	TokenSecret string `mapstructure:"token_secret" validate:"required,min=32"`
}

// EmailConfig configures the transactional mail collaborator. When Enabled
// is false the application logs instead of sending, which keeps local
// development free of SMTP dependencies.
type EmailConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Host        string `mapstructure:"host"         validate:"required_if=Enabled true"`
	Port        int    `mapstructure:"port"         validate:"required_if=Enabled true"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
	FromName    string `mapstructure:"from_name"    validate:"required_if=Enabled true"`
	FromAddress string `mapstructure:"from_address" validate:"omitempty,email,required_if=Enabled true"`
}

// UploadConfig constrains avatar uploads.
type UploadConfig struct {
	// MaxAvatarBytes caps the accepted upload size. Defaults to 1 MiB.
	MaxAvatarBytes int64 `mapstructure:"max_avatar_bytes" validate:"gt=0"`

	// AvatarSize is the square pixel dimension avatars are resized to.
	AvatarSize int `mapstructure:"avatar_size" validate:"gt=0"`
}

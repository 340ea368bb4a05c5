package config

// ServerConfig contains server configuration
type ServerConfig struct {
	Port           int      `yaml:"port" validate:"gt=0,lte=65535"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// StationsConfig points at the station dataset
type StationsConfig struct {
	Path string `yaml:"path" validate:"omitempty"`
}

// NetworkConfig contains the fixed parameters of the graph build
type NetworkConfig struct {
	AverageSpeedKMH float64  `yaml:"averageSpeedKMH" validate:"gt=0"`
	TransferMinutes float64  `yaml:"transferMinutes" validate:"gte=0"`
	EarthRadiusKM   float64  `yaml:"earthRadiusKM" validate:"gt=0"`
	LoopLines       []string `yaml:"loopLines" validate:"dive,required,uppercase"`
	CodeSeparator   string   `yaml:"codeSeparator" validate:"required"`
	EdgeConflict    string   `yaml:"edgeConflict" validate:"oneof=last min first"` // last|min|first
}

// CacheConfig sizes the route query cache
type CacheConfig struct {
	Size       int `yaml:"size" validate:"gte=0"`
	TTLSeconds int `yaml:"ttlSeconds" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Stations StationsConfig `yaml:"stations"`
	Network  NetworkConfig  `yaml:"network"`
	Cache    CacheConfig    `yaml:"cache"`
}

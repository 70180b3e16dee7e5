package storage

// Config holds the S3/MinIO connection used by the object store backend.
type Config struct {
	// Endpoint is host:port of the storage service; a scheme prefix is stripped.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey and SecretKey are static V4 credentials.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL switches the client to https.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket holds the item cache snapshot. It is created on first load when missing.
	Bucket string `mapstructure:"bucket" default:"tataru"`
	// Region is used for bucket creation and request signing.
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds dialing, TLS handshakes and response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

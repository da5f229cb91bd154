package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// Lead endpoint
	ApplyEndpointURL       string `envconfig:"APPLY_ENDPOINT_URL"`
	ApplyEndpointKey       string `envconfig:"APPLY_ENDPOINT_KEY"`
	ApplyEndpointKeyHeader string `envconfig:"APPLY_ENDPOINT_KEY_HEADER" default:"x-api-key"`
	ApplyTimeoutSec        uint   `envconfig:"APPLY_TIMEOUT_SEC" default:"0"` // 0 leaves it to the network stack

	// Shown when a submission fails
	ContactEmail string `envconfig:"CONTACT_EMAIL" default:"morry4@gmail.com"`

	// Open application forms are dropped after this much idle time
	FormSessionTTLMin uint `envconfig:"FORM_SESSION_TTL_MIN" default:"60"`
	// Seconds between page refreshes while a submission is in flight
	SendingRefreshSec uint `envconfig:"SENDING_REFRESH_SEC" default:"2"`

	// Testimonial media, presigned from S3 when a bucket is set
	MediaBucket       string `envconfig:"MEDIA_BUCKET"`
	MediaPrefix       string `envconfig:"MEDIA_PREFIX"`
	MediaURLExpirySec uint   `envconfig:"MEDIA_URL_EXPIRY_SEC" default:"3600"`

	// Cookie encryption keys (base64 encoded)
	// hersalon keys
	// to generate values
	CookieHashKey  string `envconfig:"COOKIE_HASH_KEY"`  // 32 or 64 bytes
	CookieBlockKey string `envconfig:"COOKIE_BLOCK_KEY"` // 16, 24, or 32 bytes
	CookieSecure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
}

// Package config reads the service settings from the environment (optionally
// seeded from a .env file) through viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	KeyPort              = "PORT"
	KeyMongoURL          = "MONGO_URL"
	KeyDatabaseName      = "DB_NAME"
	KeyAdminUsername     = "ADMIN_USERNAME"
	KeyAdminPassword     = "ADMIN_PASSWORD"
	KeyAdminPasswordHash = "ADMIN_PASSWORD_HASH"
	KeyJWTSecret         = "JWT_SECRET"
	KeyCORSOrigins       = "CORS_ORIGINS"
	KeyPostmarkAPIToken  = "POSTMARK_API_TOKEN"
	KeySendGridAPIKey    = "SENDGRID_API_KEY"
	KeyEmailSender       = "EMAIL_SENDER"
	KeyNotifyEmail       = "NOTIFY_EMAIL"

	defaultPort        = "8000"
	defaultCORSOrigins = "*"

	missingConfigurationMessage = "missing required configuration"
)

// Config captures everything the server and the seed command need.
type Config struct {
	Port              string
	MongoURL          string
	DatabaseName      string
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string
	JWTSecret         string
	CORSOrigins       []string
	PostmarkAPIToken  string
	SendGridAPIKey    string
	EmailSender       string
	NotifyEmail       string
}

// SetDefaults registers defaults and environment lookup on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyPort, defaultPort)
	v.SetDefault(KeyCORSOrigins, defaultCORSOrigins)
	for _, key := range []string{
		KeyMongoURL, KeyDatabaseName, KeyAdminUsername, KeyAdminPassword, KeyAdminPasswordHash,
		KeyJWTSecret, KeyPostmarkAPIToken, KeySendGridAPIKey, KeyEmailSender, KeyNotifyEmail,
	} {
		v.SetDefault(key, "")
	}
	v.AutomaticEnv()
}

// Load reads the current values out of v.
func Load(v *viper.Viper) Config {
	get := func(key string) string {
		return strings.TrimSpace(v.GetString(key))
	}
	return Config{
		Port:              get(KeyPort),
		MongoURL:          get(KeyMongoURL),
		DatabaseName:      get(KeyDatabaseName),
		AdminUsername:     get(KeyAdminUsername),
		AdminPassword:     v.GetString(KeyAdminPassword),
		AdminPasswordHash: get(KeyAdminPasswordHash),
		JWTSecret:         v.GetString(KeyJWTSecret),
		CORSOrigins:       splitList(get(KeyCORSOrigins)),
		PostmarkAPIToken:  get(KeyPostmarkAPIToken),
		SendGridAPIKey:    get(KeySendGridAPIKey),
		EmailSender:       get(KeyEmailSender),
		NotifyEmail:       get(KeyNotifyEmail),
	}
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// ValidateStore checks the store connection settings.
func (c Config) ValidateStore() error {
	return missing(map[string]bool{
		KeyMongoURL:     c.MongoURL == "",
		KeyDatabaseName: c.DatabaseName == "",
	})
}

// ValidateServer checks everything serve needs. There is no fallback admin
// identity: the username and a password or bcrypt hash must be configured.
func (c Config) ValidateServer() error {
	return missing(map[string]bool{
		KeyMongoURL:      c.MongoURL == "",
		KeyDatabaseName:  c.DatabaseName == "",
		KeyAdminUsername: c.AdminUsername == "",
		KeyAdminPassword: c.AdminPassword == "" && c.AdminPasswordHash == "",
	})
}

func missing(checks map[string]bool) error {
	var names []string
	for _, key := range []string{KeyMongoURL, KeyDatabaseName, KeyAdminUsername, KeyAdminPassword} {
		if checks[key] {
			names = append(names, key)
		}
	}
	if len(names) == 0 {
		return nil
	}
	return fmt.Errorf("%s: %s", missingConfigurationMessage, strings.Join(names, ", "))
}

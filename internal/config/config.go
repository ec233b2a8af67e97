package config

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/caarlos0/env/v8"
)

type Firebase struct {
	Type                    string        `env:"FIREBASE_TYPE,required" json:"type"`
	ProjectId               string        `env:"FIREBASE_PROJECT_ID,required" json:"project_id"`
	PrivateKeyId            string        `env:"FIREBASE_PRIVATE_KEY_ID,required" json:"private_key_id"`
	PrivateKey              string        `env:"FIREBASE_PRIVATE_KEY,required" json:"private_key"`
	ClientEmail             string        `env:"FIREBASE_CLIENT_EMAIL,required" json:"client_email"`
	ClientId                string        `env:"FIREBASE_CLIENT_ID,required" json:"client_id"`
	AuthUri                 string        `env:"FIREBASE_AUTH_URI,required" json:"auth_uri"`
	TokenUri                string        `env:"FIREBASE_TOKEN_URI,required" json:"token_uri"`
	AuthProviderX509CertUrl string        `env:"FIREBASE_AUTH_PROVIDER_X509_CERT_URL,required" json:"auth_provider_x509_cert_url"`
	ClientX509CertUrl       string        `env:"FIREBASE_CLIENT_X509_CERT_URL,required" json:"client_x509_cert_url"`
	WebApiKey               string        `env:"FIREBASE_WEB_API_KEY,required" json:"-"`
	WriteTimeoutSecond      time.Duration `env:"FIREBASE_WRITE_TIMEOUT_SECOND" json:"-"`
}

type Account struct {
	Email    string `env:"INVENTORY_EMAIL"`
	Password string `env:"INVENTORY_PASSWORD"`
}

type Widget struct {
	PrefsFile       string        `env:"WIDGET_PREFS_FILE" envDefault:"widget_prefs.json"`
	RefreshInterval time.Duration `env:"WIDGET_REFRESH_INTERVAL" envDefault:"30s"`
}

type Config struct {
	Firebase
	Account
	Widget
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func LoadConfigOrPanic() Config {
	var config *Config = new(Config)
	if err := env.Parse(config); err != nil {
		panic(err)
	}

	config.normalize()
	return *config
}

func (c *Config) normalize() {

	decodedBytes, err := base64.StdEncoding.DecodeString(c.Firebase.PrivateKey)
	if err != nil {
		panic(err)
	}
	c.Firebase.PrivateKey = string(decodedBytes)
	c.Firebase.PrivateKey = strings.ReplaceAll(c.Firebase.PrivateKey, "\\n", "\n")

	if c.WriteTimeoutSecond == 0 {
		c.WriteTimeoutSecond = time.Second * 30
	}
}

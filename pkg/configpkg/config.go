// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper fron a config file or environement variables.
type Config struct {
	DBDriver      string `mapstructure:"DB_DRIVER"`
	DBSource      string `mapstructure:"DB_SOURCE"`
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	Environement  string `mapstructure:"GO_ENV"`

	ClearingAccountOwner string `mapstructure:"CLEARING_ACCOUNT_OWNER"`
	EventSigningSecret   string `mapstructure:"EVENT_SIGNING_SECRET"`

	WebhookEnabled bool   `mapstructure:"WEBHOOK_ENABLED"`
	WebhookURL     string `mapstructure:"WEBHOOK_URL"`
	WebhookSecret  string `mapstructure:"WEBHOOK_SECRET"`

	KYCProviderMode string `mapstructure:"KYC_PROVIDER_MODE"`

	SchedulerEnabled      bool          `mapstructure:"SCHEDULER_ENABLED"`
	SchedulerPollInterval time.Duration `mapstructure:"SCHEDULER_POLL_INTERVAL"`
	SchedulerBatchSize    int           `mapstructure:"SCHEDULER_BATCH_SIZE"`
	SchedulerMaxAttempts  int           `mapstructure:"SCHEDULER_MAX_ATTEMPTS"`
	SchedulerRetryBackoff time.Duration `mapstructure:"SCHEDULER_RETRY_BACKOFF"`

	InterbankMode            string        `mapstructure:"INTERBANK_MODE"`
	InterbankProvider        string        `mapstructure:"INTERBANK_PROVIDER"`
	InterbankRetryAttempts   int           `mapstructure:"INTERBANK_RETRY_ATTEMPTS"`
	InterbankRetryBackoff    time.Duration `mapstructure:"INTERBANK_RETRY_BACKOFF"`
	InterbankStubFailureRate float64       `mapstructure:"INTERBANK_STUB_FAILURE_RATE"`
}

// Load read configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = viper.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}

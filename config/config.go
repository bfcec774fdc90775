package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	// DatadirKey is the local data directory to store the internal state
	// of the daemon.
	DatadirKey = "DATA_DIR_PATH"
	// LogLevelKey are the different logging levels. For reference on the
	// values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// WatcherIntervalKey is the interval in seconds between two scans of
	// the market watcher.
	WatcherIntervalKey = "WATCHER_INTERVAL"
	// WebhookTimeoutKey are the seconds to wait for webhook endpoints
	// responses before timeouts.
	WebhookTimeoutKey = "WEBHOOK_TIMEOUT"
	// FaucetEnabledKey enables minting balances on the embedded ledger.
	// Meant for local and regtest setups only.
	FaucetEnabledKey = "FAUCET_ENABLED"
	// NoWatcherKey disables the market watcher. Ended markets then stay
	// open until someone submits the permissionless transitions.
	NoWatcherKey = "NO_WATCHER"

	// DbLocation is the folder inside the datadir containing the db.
	DbLocation = "db"
)

var vip *viper.Viper
var defaultDatadir = btcutil.AppDataDir("betd", false)

func init() {
	vip = viper.New()
	vip.SetEnvPrefix("BETD")
	vip.AutomaticEnv()

	vip.SetDefault(DatadirKey, defaultDatadir)
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(WatcherIntervalKey, 10)
	vip.SetDefault(WebhookTimeoutKey, 15)
	vip.SetDefault(FaucetEnabledKey, false)
	vip.SetDefault(NoWatcherKey, false)

	if err := validate(); err != nil {
		log.WithError(err).Panic("error while validating config")
	}

	if err := initDatadir(); err != nil {
		log.WithError(err).Panic("error while creating datadir")
	}
}

// GetString ...
func GetString(key string) string {
	return vip.GetString(key)
}

// GetInt ...
func GetInt(key string) int {
	return vip.GetInt(key)
}

// GetDuration ...
func GetDuration(key string) time.Duration {
	return vip.GetDuration(key)
}

// GetBool ...
func GetBool(key string) bool {
	return vip.GetBool(key)
}

// GetDatadir ...
func GetDatadir() string {
	return GetString(DatadirKey)
}

// GetDbDir returns the path of the db folder inside the datadir.
func GetDbDir() string {
	return filepath.Join(GetDatadir(), DbLocation)
}

func validate() error {
	if interval := vip.GetInt(WatcherIntervalKey); interval <= 0 {
		return fmt.Errorf("%s must be a positive number of seconds", WatcherIntervalKey)
	}
	if timeout := vip.GetInt(WebhookTimeoutKey); timeout <= 0 {
		return fmt.Errorf("%s must be a positive number of seconds", WebhookTimeoutKey)
	}
	return nil
}

func initDatadir() error {
	return makeDirectoryIfNotExists(GetDbDir())
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/solwire/cli/internal/output"
)

// Environment variable prefix for solwire configuration.
const envPrefix = "SOLWIRE"

// Loader reads solwire.json, layering environment overrides on top.
type Loader struct {
	v   *viper.Viper
	log output.Logger
}

// NewLoader creates a configuration loader.
func NewLoader(log output.Logger) *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("network", "SOLWIRE_NETWORK")
	_ = v.BindEnv("variant", "SOLWIRE_VARIANT")
	_ = v.BindEnv("appkit.projectId", "SOLWIRE_APPKIT_PROJECT_ID")

	return &Loader{v: v, log: log}
}

// Load reads projectDir/solwire.json. An absent file means defaults; a
// malformed file also means defaults, with a warning. Load never fails:
// configuration problems must not abort a run, the file is advisory.
func (l *Loader) Load(projectDir string) *Config {
	path := filepath.Join(projectDir, FileName)

	l.v.SetConfigFile(path)
	l.v.SetConfigType("json")

	if err := l.v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			l.log.Debug("no solwire.json, using defaults", "path", path)
		} else if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			l.log.Debug("no solwire.json, using defaults", "path", path)
		} else {
			l.log.Warn("solwire.json is malformed, using defaults", "path", path, "err", err)
		}
		cfg := &Config{}
		_ = l.v.Unmarshal(cfg)
		return cfg.WithDefaults()
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		l.log.Warn("solwire.json has unusable values, using defaults", "path", path, "err", err)
		return Default()
	}
	return cfg.WithDefaults()
}

// Exists reports whether projectDir already has a solwire.json.
func Exists(projectDir string) bool {
	_, err := os.Stat(filepath.Join(projectDir, FileName))
	return err == nil
}

// Save writes cfg to projectDir/solwire.json as indented JSON.
func Save(projectDir string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(filepath.Join(projectDir, FileName), data, 0o644)
}

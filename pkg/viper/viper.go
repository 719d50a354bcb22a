package viper

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "CONSUMER_SERVICE"

func ReadFile(conf any, filePath string) error {
	v, err := read(filePath)
	if err != nil {
		return err
	}
	return v.Unmarshal(conf)
}

func ReadFileWithProfile(profile string, conf any, filePath string) error {
	v, err := read(filePath)
	if err != nil {
		return err
	}
	sub := v.Sub(profile)
	if sub == nil {
		return fmt.Errorf("profile %q not found in %s", profile, filePath)
	}
	return sub.Unmarshal(conf)
}

// ReadFileWithEnv reads a flat yaml file and lets CONSUMER_SERVICE_<KEY> variables
// override its top level keys.
func ReadFileWithEnv(conf any, filePath string, keys ...string) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return err
		}
	}
	if len(filePath) != 0 {
		v.SetConfigFile(filePath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
		}
	}
	return v.Unmarshal(conf)
}

func read(filePath string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(filePath)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	return v, nil
}

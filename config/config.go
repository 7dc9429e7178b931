// Package config registers every setting with its default and loads the user's overrides.
package config

import (
	"errors"
	"strings"

	"github.com/reelroll-cli/reelroll/constant"
	"github.com/reelroll-cli/reelroll/filesystem"
	"github.com/reelroll-cli/reelroll/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps config keys to environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup registers defaults and env bindings, then reads reelroll.toml if there is one.
func Setup() error {
	viper.SetFs(filesystem.API())
	viper.SetConfigName(constant.Reelroll)
	viper.SetConfigType("toml")
	viper.AddConfigPath(where.Config())

	bindEnv()
	setDefaults()

	err := viper.ReadInConfig()
	if errors.As(err, new(viper.ConfigFileNotFoundError)) {
		return nil
	}
	return err
}

func bindEnv() {
	viper.SetEnvPrefix(constant.Reelroll)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)

	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}
}

func setDefaults() {
	viper.SetTypeByDefaultValue(true)

	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}
}

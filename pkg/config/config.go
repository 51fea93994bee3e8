package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Mnemonic MnemonicConfig `mapstructure:"mnemonic"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type MnemonicConfig struct {
	// Strength is the default entropy bit length for generated
	// mnemonics; one of 128, 160, 192, 224 or 256.
	Strength int `mapstructure:"strength"`
	// WordlistPath points at a custom 2048-word list file, one word per
	// line. Empty selects the embedded English list.
	WordlistPath string `mapstructure:"wordlist_path"`
}

var Global Config

func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("Fatal error config file: %s \n", err)
		}
		// No config file is fine; defaults and environment apply.
	}

	if err := viper.Unmarshal(&Global); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}

func setDefaults() {
	viper.SetDefault("app.env", "development")
	viper.SetDefault("mnemonic.strength", 128)
	viper.SetDefault("mnemonic.wordlist_path", "")
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gefd/bip39/pkg/bip39"
	"github.com/gefd/bip39/pkg/config"
	"github.com/gefd/bip39/pkg/logger"
	"github.com/gefd/bip39/pkg/wordlist"
)

var wordlistPath string

// rootCmd is the base command; subcommands attach themselves in their
// own init functions.
var rootCmd = &cobra.Command{
	Use:   "mnemonic-cli",
	Short: "BIP-39 mnemonic codec tool",
	Long: `Convert between raw entropy and BIP-39 mnemonic sentences.
Generate fresh mnemonics from the system CSPRNG, encode caller-supplied
entropy as words, and recover entropy from a sentence with checksum
verification.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Init()
		logger.Init(config.Global.App.Env)
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&wordlistPath, "wordlist", "",
		"path to a custom 2048-word list file, one word per line")
}

// loadList resolves the word list: the --wordlist flag wins, then the
// configured path, then the embedded English list.
func loadList() (*wordlist.List, error) {
	path := wordlistPath
	if path == "" {
		path = config.Global.Mnemonic.WordlistPath
	}
	if path == "" {
		return wordlist.English(), nil
	}
	list, err := wordlist.LoadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("custom word list loaded", zap.String("path", path))
	return list, nil
}

// fail prints a classified error to stderr and exits with its code.
func fail(err error) {
	code, msg := bip39.Decode(err)
	fmt.Fprintln(os.Stderr, "Error:", msg)
	logger.Sync()
	os.Exit(code)
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gefd/bip39/pkg/bip39"
	"github.com/gefd/bip39/pkg/config"
	"github.com/gefd/bip39/pkg/logger"
)

var strength int

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Generate a fresh mnemonic",
	Long: `Draws entropy from the system CSPRNG and prints the resulting
mnemonic sentence. Strength selects the entropy bit length:
128 bits yields 12 words, 256 bits yields 24 words.`,
	Run: func(cmd *cobra.Command, args []string) {
		list, err := loadList()
		if err != nil {
			fail(err)
		}

		s := strength
		if s == 0 {
			s = config.Global.Mnemonic.Strength
		}
		logger.Debug("generating mnemonic", zap.Int("strength", s))

		words, err := bip39.New(list).Generate(s)
		if err != nil {
			fail(err)
		}
		fmt.Println(strings.Join(words, " "))
	},
}

func init() {
	newCmd.Flags().IntVar(&strength, "strength", 0,
		"entropy bits: 128, 160, 192, 224 or 256 (default from config)")
	rootCmd.AddCommand(newCmd)
}

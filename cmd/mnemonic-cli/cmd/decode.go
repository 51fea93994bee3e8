package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gefd/bip39/pkg/bip39"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <word>...",
	Short: "Recover entropy from a mnemonic",
	Long: `Maps each word back to its 11-bit index, verifies the embedded
checksum and prints the original entropy hex-encoded. The sentence may be
passed quoted or as separate arguments.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		list, err := loadList()
		if err != nil {
			fail(err)
		}
		entropyHex, err := bip39.New(list).MnemonicToEntropy(strings.Join(args, " "))
		if err != nil {
			fail(err)
		}
		fmt.Println(entropyHex)
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

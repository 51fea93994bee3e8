package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gefd/bip39/pkg/bip39"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <entropy-hex>",
	Short: "Encode entropy bytes as a mnemonic",
	Long: `Encodes a hex-encoded entropy value (16, 20, 24, 28 or 32 bytes)
as a mnemonic sentence.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		list, err := loadList()
		if err != nil {
			fail(err)
		}
		mnemonic, err := bip39.New(list).EntropyHexToMnemonic(args[0])
		if err != nil {
			fail(err)
		}
		fmt.Println(mnemonic)
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/forward-progress/ffpack/core"
)

var format string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ffpack",
	Short: "A command line tool for managing declarative Minecraft modpacks",
	Long: `ffpack prints a freshly scaffolded pack manifest, filled with placeholder
values, to standard output. Redirect it into a file to start a new pack.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		pack := core.DefaultPack()
		switch viper.GetString("format") {
		case "json":
			out, err := json.MarshalIndent(pack, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		case "toml":
			return pack.EncodeTOML(os.Stdout)
		default:
			return fmt.Errorf("unknown output format %q (want json or toml)", viper.GetString("format"))
		}
	},
}

// Execute starts the root command for ffpack
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&format, "format", "json", "The manifest format to emit (json or toml)")
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
}

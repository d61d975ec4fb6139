package commands

import (
	"fmt"

	"github.com/bbq191/geant4-installer/internal/release"
	"github.com/spf13/cobra"
)

var versionsLimit int

// versionsCmd 列出可安装版本
var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "列出可安装的 Geant4 版本",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		versions, err := release.NewResolver(cfg.TagsURL, cfg.HTTPTimeout, GetLogger()).Fetch(cmd.Context())
		if err != nil {
			return err
		}

		if versionsLimit > 0 && versionsLimit < len(versions) {
			versions = versions[:versionsLimit]
		}
		for _, v := range versions {
			fmt.Printf("v%s\n", v)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionsCmd)
	versionsCmd.Flags().IntVarP(&versionsLimit, "limit", "n", 0, "最多显示的版本数 (0=全部)")
}

package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/arcticbots/sightsbot/bot"
	"github.com/arcticbots/sightsbot/core/bootstrap"
	"github.com/arcticbots/sightsbot/core/buildinfo"
	corecmd "github.com/arcticbots/sightsbot/core/cmd"
	coreconfig "github.com/arcticbots/sightsbot/core/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "sightsbot",
		Short: "Bilingual Telegram guide to the sights of the Russian Arctic",
		Long: `Sightsbot runs a Telegram bot that keeps a bilingual catalog of
points of interest. Visitors browse and read entries in English or Russian;
curators add and remove entries through guided conversations, with the second
language filled in automatically.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return corecmd.Run(corecmd.Options{
				DefaultConfigPath: configPath,
				LoadConfig: func(path string) (corecmd.ConfigCarrier, error) {
					cfg, err := coreconfig.Load(path)
					if err != nil {
						return nil, err
					}
					return carrier{cfg}, nil
				},
				Bootstrap: func(cc corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
					cfg := cc.CoreConfig()
					res, err := bootstrap.Run(cmd.Context(), bootstrap.Options{Config: cfg})
					if err != nil {
						return nil, err
					}
					return bot.New(cfg, res.Catalog, res.Assets)
				},
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "configs/config.yaml", "path to the YAML config file")
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sightsbot %s (%s) %s\n", buildinfo.Version, buildinfo.Commit, buildinfo.Date)
		},
	}
}

type carrier struct {
	cfg *coreconfig.Config
}

func (c carrier) CoreConfig() *coreconfig.Config { return c.cfg }

// Package cli wires the definition tooling into a cobra command tree.
//
//	discordinteractions validate -f commands.yaml
//	discordinteractions render -f commands.yaml --indent --check-schema
//	discordinteractions publish -f commands.yaml --guild 1234
//
// Settings come from .env, config.yaml and the environment (see package
// config). Flags override both.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wosher-co/discordinteractions/config"
	"github.com/wosher-co/discordinteractions/models"
	"github.com/wosher-co/discordinteractions/utils"
)

type app struct {
	v          *viper.Viper
	configFile string
	settings   *config.Settings
}

// Execute runs the command tree against os.Args using the global viper
// instance. SIGINT and SIGTERM cancel the command's context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd(viper.GetViper()).ExecuteContext(ctx)
}

// NewRootCmd builds the root command with all subcommands attached. Flag
// values are bound into v.
func NewRootCmd(v *viper.Viper) *cobra.Command {
	a := &app{v: v}
	root := &cobra.Command{
		Use:           "discordinteractions",
		Short:         "Validate, render and publish Discord application commands",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "Path to a settings file (default ./config.yaml)")
	flags.StringP("file", "f", "", "Path to the command definitions file (YAML or JSON)")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	_ = v.BindPFlag(config.KeyDefinitionsPath, flags.Lookup("file"))
	_ = v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))

	root.AddCommand(
		a.validateCmd(),
		a.renderCmd(),
		a.publishCmd(),
	)
	return root
}

func (a *app) load() error {
	s, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	if err := utils.InitLogger(s.LogLevel); err != nil {
		return err
	}
	a.settings = s
	return nil
}

func (a *app) definitions() ([]models.Command, error) {
	cmds, err := config.LoadDefinitions(a.settings.DefinitionsPath)
	if err != nil {
		return nil, err
	}
	utils.Info("cli", "load", fmt.Sprintf("loaded %d commands from %s", len(cmds), a.settings.DefinitionsPath))
	return cmds, nil
}

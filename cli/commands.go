package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wosher-co/discordinteractions/command"
	"github.com/wosher-co/discordinteractions/config"
	"github.com/wosher-co/discordinteractions/discord"
	"github.com/wosher-co/discordinteractions/schema"
	"github.com/wosher-co/discordinteractions/serializer"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check definitions against Discord's registration rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmds, err := a.definitions()
			if err != nil {
				return err
			}
			set := command.NewSet()
			for _, c := range cmds {
				set.Add(command.Static(c))
			}
			if err := set.Validate(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d commands valid\n", set.Len())
			return nil
		},
	}
}

func (a *app) renderCmd() *cobra.Command {
	var (
		indent      bool
		checkSchema bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the bulk overwrite request body",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmds, err := a.definitions()
			if err != nil {
				return err
			}
			set := command.NewSet()
			for _, c := range cmds {
				set.Add(command.Static(c))
			}
			out, err := set.JSON()
			if err != nil {
				return err
			}
			if checkSchema {
				if err := schema.ValidateList([]byte(out)); err != nil {
					return err
				}
			}
			if indent {
				if out, err = serializer.Indent(out, "  "); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&indent, "indent", false, "Indent the output")
	cmd.Flags().BoolVar(&checkSchema, "check-schema", false, "Also check the output against the bundled JSON schema")
	return cmd
}

func (a *app) publishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Overwrite the application's registered commands",
		Long: `Overwrite the application's registered commands with the definitions file.

Without --guild the global command list is replaced. Global changes can take
a while to reach every client; guild commands update immediately.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmds, err := a.definitions()
			if err != nil {
				return err
			}
			session, err := discord.New(a.settings.Token)
			if err != nil {
				return err
			}
			registered, err := discord.NewPublisher(session, a.settings.ApplicationID).
				Publish(cmd.Context(), a.settings.GuildID, cmds)
			if err != nil {
				return err
			}
			for _, r := range registered {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", r.ID, r.Name)
			}
			return nil
		},
	}
	cmd.Flags().String("guild", "", "Guild to register in instead of globally")
	cmd.Flags().String("application-id", "", "Application id (defaults to discord.application_id)")
	_ = a.v.BindPFlag(config.KeyGuildID, cmd.Flags().Lookup("guild"))
	_ = a.v.BindPFlag(config.KeyApplicationID, cmd.Flags().Lookup("application-id"))
	return cmd
}

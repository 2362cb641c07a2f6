package session

import "github.com/spf13/cobra"

func NewSessionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Terminal session commands",
	}

	cmd.AddCommand(NewStartCommand())

	return cmd
}

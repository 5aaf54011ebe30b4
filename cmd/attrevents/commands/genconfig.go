package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/theodox/attributeEvents/pkg/config"
	"github.com/theodox/attributeEvents/pkg/paths"
	"github.com/theodox/attributeEvents/pkg/style"
)

func newGenConfigCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := output
			if path == "" {
				path = paths.ConfigFile()
			}
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return err
			}
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			cmd.Println(style.SuccessStyle.Render(fmt.Sprintf("wrote %s", path)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination path (defaults to the XDG config location)")
	return cmd
}

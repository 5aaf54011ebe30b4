package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theodox/attributeEvents/pkg/style"
)

func newListCmd(scenePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every object with stored events and its descriptors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, session, err := openSession(*scenePath)
			if err != nil {
				return err
			}

			found := session.Find()
			if len(found) == 0 {
				cmd.Println(style.MutedStyle.Render("no stored events in scene"))
				return nil
			}

			for _, w := range found {
				cmd.Println(style.ObjectStyle.Render(string(w.Ref())))
				descriptors, err := w.Descriptors()
				if err != nil {
					cmd.Println(style.ListItemStyle.Render(
						style.ErrorStyle.Render(fmt.Sprintf("unreadable: %v", err))))
					continue
				}
				for _, d := range descriptors {
					cmd.Println(style.DescriptorLine(d.Attribute(), d.HandlerName()))
				}
			}
			return nil
		},
	}
}

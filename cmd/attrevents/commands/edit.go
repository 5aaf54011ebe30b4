package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theodox/attributeEvents/pkg/notifier"
	"github.com/theodox/attributeEvents/pkg/scene/scenefile"
	"github.com/theodox/attributeEvents/pkg/style"
	"github.com/theodox/attributeEvents/pkg/types"
)

func newAddCmd(scenePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "add OBJECT ATTRIBUTE HANDLER",
		Short: "Store a watch on an object and save the scene",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, session, err := openSession(*scenePath)
			if err != nil {
				return err
			}

			w, err := session.Watch(types.ObjectRef(args[0]))
			if err != nil {
				return err
			}
			if err := w.AddEvent(notifier.New(args[1], args[2])); err != nil {
				return err
			}
			if err := scenefile.Save(*scenePath, m); err != nil {
				return err
			}

			cmd.Println(style.SuccessStyle.Render(
				fmt.Sprintf("stored %s -> %s on %s", args[1], args[2], args[0])))
			return nil
		},
	}
}

func newRemoveCmd(scenePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "remove OBJECT ATTRIBUTE HANDLER",
		Short: "Remove a stored watch from an object and save the scene",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, session, err := openSession(*scenePath)
			if err != nil {
				return err
			}

			w, err := session.Watch(types.ObjectRef(args[0]))
			if err != nil {
				return err
			}
			if err := w.RemoveEvent(notifier.New(args[1], args[2])); err != nil {
				return err
			}
			if err := scenefile.Save(*scenePath, m); err != nil {
				return err
			}

			cmd.Println(style.SuccessStyle.Render(
				fmt.Sprintf("removed %s -> %s from %s", args[1], args[2], args[0])))
			return nil
		},
	}
}

func newOffCmd(scenePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "off OBJECT",
		Short: "Strip all stored events from an object and save the scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, session, err := openSession(*scenePath)
			if err != nil {
				return err
			}

			ref := types.ObjectRef(args[0])
			w, err := session.Watch(ref)
			if err != nil {
				return err
			}
			w.UnregisterAll()

			if err := m.Delete(ref, session.StorageKey()); err != nil {
				return err
			}
			if err := scenefile.Save(*scenePath, m); err != nil {
				return err
			}

			cmd.Println(style.SuccessStyle.Render(fmt.Sprintf("cleared stored events on %s", args[0])))
			return nil
		},
	}
}

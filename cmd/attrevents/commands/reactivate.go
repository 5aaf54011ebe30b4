package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theodox/attributeEvents/pkg/logging"
	"github.com/theodox/attributeEvents/pkg/style"
	"github.com/theodox/attributeEvents/pkg/types"
	"github.com/theodox/attributeEvents/pkg/watch"
)

func newReactivateCmd(scenePath *string) *cobra.Command {
	var simulate []string

	cmd := &cobra.Command{
		Use:   "reactivate",
		Short: "Rebuild live subscriptions from the events stored in a scene file",
		Long: `Loads the scene, re-activates a live subscription for every stored
descriptor, and reports the outcome per object. Every handler name found
in the scene is bound to a built-in logging handler; use --set to
simulate attribute changes after the sweep and watch them fire.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, session, err := openSession(*scenePath)
			if err != nil {
				return err
			}

			registerLoggingHandlers(session)

			outcomes := session.Reactivate()
			if len(outcomes) == 0 {
				cmd.Println(style.MutedStyle.Render("no stored events in scene"))
				return nil
			}

			cmd.Println(style.TitleStyle.Render("reactivated:"))
			failures := 0
			for _, o := range outcomes {
				cmd.Println(style.OutcomeLine(string(o.Object), o.Activated, o.Err))
				if o.Err != nil {
					failures++
				}
			}

			for _, change := range simulate {
				ref, attribute, value, err := parseChange(change)
				if err != nil {
					return err
				}
				if err := m.SetAttr(ref, attribute, value); err != nil {
					return err
				}
			}

			if failures > 0 {
				return fmt.Errorf("%d object(s) failed to reactivate", failures)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&simulate, "set", nil,
		"Simulate an attribute change after the sweep, as OBJECT.ATTRIBUTE=VALUE (repeatable)")
	return cmd
}

// registerLoggingHandlers binds every handler name referenced by the
// scene to a logging implementation, so stored events are observable from
// the CLI without host application code. Names already registered (by an
// embedding application) are left alone.
func registerLoggingHandlers(session *watch.Session) {
	logger := logging.GetLogger("builtin")
	for _, w := range session.Find() {
		descriptors, err := w.Descriptors()
		if err != nil {
			continue
		}
		for _, d := range descriptors {
			name := d.HandlerName()
			if session.Handlers().Has(name) {
				continue
			}
			_ = session.Handlers().Register(name, func(sender types.ObjectRef, ctx types.Context) error {
				logger.Info().
					Str("handler", name).
					Str("sender", string(sender)).
					Interface("context", ctx).
					Msg("event fired")
				return nil
			})
		}
	}
}

// parseChange splits "OBJECT.ATTRIBUTE=VALUE"; the object is the segment
// before the first dot, the attribute everything up to the '='.
func parseChange(spec string) (types.ObjectRef, string, string, error) {
	target, value, found := strings.Cut(spec, "=")
	if !found {
		return "", "", "", fmt.Errorf("invalid change %q, want OBJECT.ATTRIBUTE=VALUE", spec)
	}
	object, attribute, found := strings.Cut(target, ".")
	if !found || object == "" || attribute == "" {
		return "", "", "", fmt.Errorf("invalid change %q, want OBJECT.ATTRIBUTE=VALUE", spec)
	}
	return types.ObjectRef(object), attribute, value, nil
}

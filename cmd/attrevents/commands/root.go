// Package commands implements the attrevents CLI: tooling to inspect,
// edit and reactivate the attribute-change events stored on objects in a
// scene file.
package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/theodox/attributeEvents/internal/version"
	"github.com/theodox/attributeEvents/pkg/config"
	"github.com/theodox/attributeEvents/pkg/logging"
	"github.com/theodox/attributeEvents/pkg/registry"
	"github.com/theodox/attributeEvents/pkg/scene"
	"github.com/theodox/attributeEvents/pkg/scene/scenefile"
	"github.com/theodox/attributeEvents/pkg/watch"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		scenePath string
	)

	rootCmd := &cobra.Command{
		Use:     "attrevents",
		Short:   "Inspect and restore attribute-change events stored on scene objects",
		Long: `attrevents manages attribute-change events persisted on scene objects:
named handlers are bound to watched attributes through stored notifier
descriptors, and the reactivate sweep restores every stored watch when a
scene is opened.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase logging verbosity (repeatable)")
	rootCmd.PersistentFlags().StringVarP(&scenePath, "scene", "s", "", "Path to the scene file")

	rootCmd.AddCommand(newListCmd(&scenePath))
	rootCmd.AddCommand(newAddCmd(&scenePath))
	rootCmd.AddCommand(newRemoveCmd(&scenePath))
	rootCmd.AddCommand(newOffCmd(&scenePath))
	rootCmd.AddCommand(newReactivateCmd(&scenePath))
	rootCmd.AddCommand(newGenConfigCmd())

	return rootCmd
}

// openSession loads the scene file and builds a session over it using the
// configured storage key. The returned Memory serves as both scene and
// storage collaborator.
func openSession(scenePath string) (*scene.Memory, *watch.Session, error) {
	if scenePath == "" {
		return nil, nil, fmt.Errorf("no scene file specified (use --scene)")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	m, err := scenefile.Load(scenePath)
	if err != nil {
		return nil, nil, err
	}

	session := watch.NewSession(m, m, registry.Default(), watch.WithStorageKey(cfg.Storage.Key))
	return m, session, nil
}

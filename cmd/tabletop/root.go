package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/tabletop-inventory/internal/config"
	"github.com/KirkDiggler/tabletop-inventory/internal/entities"
	"github.com/KirkDiggler/tabletop-inventory/internal/errors"
	"github.com/KirkDiggler/tabletop-inventory/internal/orchestrators/character"
	"github.com/KirkDiggler/tabletop-inventory/internal/pkg/clock"
	"github.com/KirkDiggler/tabletop-inventory/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/tabletop-inventory/internal/repositories/character"
	"github.com/KirkDiggler/tabletop-inventory/internal/repositories/registry"
)

// app carries what every command needs once the root command has run its setup
type app struct {
	out    io.Writer
	errOut io.Writer

	// flag values
	saveDir  string
	logLevel string

	cfg     *config.Config
	manager character.Service
	loaded  *character.LoadAllCharactersOutput

	newManager func(cfg *config.Config) (character.Service, error)
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		out:        out,
		errOut:     errOut,
		newManager: newFileManager,
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tabletop",
		Short: "Tabletop RPG character inventory",
		Long: `Track tabletop role-playing game characters: inventory, coins and notes.
Each character is stored as one JSON file in the save directory.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.errOut)
	rootCmd.PersistentFlags().StringVar(&a.saveDir, "save-dir", "", "directory holding character files (env TABLETOP_SAVE_DIR)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (env TABLETOP_LOG_LEVEL)")

	rootCmd.AddCommand(
		newCreateCmd(a),
		newListCmd(a),
		newShowCmd(a),
		newEditCmd(a),
		newDeleteCmd(a),
		newAddItemCmd(a),
		newRemoveItemCmd(a),
		newEquipCmd(a),
		newCurrencyCmd(a),
		newVerifyCmd(a),
	)

	return rootCmd
}

// setup loads configuration, installs the logger and loads every saved character
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("save-dir") {
		cfg.SaveDir = a.saveDir
		if err := cfg.ResolveSaveDir(); err != nil {
			return err
		}
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	manager, err := a.newManager(cfg)
	if err != nil {
		return err
	}

	loaded, err := manager.LoadAllCharacters(cmd.Context(), &character.LoadAllCharactersInput{})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.manager = manager
	a.loaded = loaded

	slog.Debug("loaded characters", "save_dir", cfg.SaveDir,
		"loaded", len(loaded.Characters), "skipped", len(loaded.Skipped))

	return nil
}

func newFileManager(cfg *config.Config) (character.Service, error) {
	return buildManager(cfg, idgen.NewUUID(""))
}

// buildManager wires a character manager to the save directory
func buildManager(cfg *config.Config, ids idgen.Generator) (character.Service, error) {
	repo, err := characterrepo.NewFile(&characterrepo.FileConfig{Dir: cfg.SaveDir})
	if err != nil {
		return nil, err
	}

	return character.New(&character.Config{
		Registry:          registry.NewInMemory(),
		CharacterRepo:     repo,
		Clock:             clock.New(),
		IDGenerator:       ids,
		DefaultGameSystem: cfg.DefaultGameSystem,
	})
}

// resolve finds a character by ID, or by a case-insensitive name that matches
// exactly one character
func (a *app) resolve(ctx context.Context, ref string) (string, error) {
	if ref == "" {
		return "", errors.InvalidArgument("character reference is required")
	}

	if _, err := a.manager.GetCharacter(ctx, &character.GetCharacterInput{ID: ref}); err == nil {
		return ref, nil
	} else if !errors.IsNotFound(err) {
		return "", err
	}

	listed, err := a.manager.ListCharacters(ctx, &character.ListCharactersInput{})
	if err != nil {
		return "", err
	}

	var matches []string
	for _, c := range listed.Characters {
		if strings.EqualFold(c.Name, ref) {
			matches = append(matches, c.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", errors.NotFoundf("no character with ID or name %q", ref)
	case 1:
		return matches[0], nil
	default:
		return "", errors.InvalidArgumentf("%d characters are named %q; use an ID (%s)",
			len(matches), ref, strings.Join(matches, ", "))
	}
}

// save persists a character after a change and reports where it went
func (a *app) save(ctx context.Context, id string) error {
	out, err := a.manager.SaveCharacter(ctx, &character.SaveCharacterInput{ID: id})
	if err != nil {
		return err
	}
	slog.Info("saved character", "character_id", id, "path", out.Path)
	return nil
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// characterName is used in confirmations
func characterName(c *entities.Character) string {
	if c.Name == "" {
		return c.ID
	}
	return c.Name
}

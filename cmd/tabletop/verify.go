package main

import (
	"fmt"
	"os"

	goerrors "github.com/pixil98/go-errors"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/tabletop-inventory/internal/errors"
)

const quarantineExt = ".corrupt"

func newVerifyCmd(a *app) *cobra.Command {
	var quarantine bool

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Report character files that fail to load",
		Long: `Report every file in the save directory that could not be loaded. With
--quarantine each bad file is renamed with a .corrupt suffix so later runs skip it.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			checked := len(a.loaded.Characters) + len(a.loaded.Skipped)
			a.printf("Checked %d file(s) in %s, %d could not be loaded\n", checked, a.cfg.SaveDir, len(a.loaded.Skipped))

			if len(a.loaded.Skipped) == 0 {
				return nil
			}

			el := goerrors.NewErrorList()
			for _, skipped := range a.loaded.Skipped {
				a.printf("  - %s: %v\n", skipped.Path, skipped.Err)
				el.Add(fmt.Errorf("%s: %w", skipped.Path, skipped.Err))

				if !quarantine {
					continue
				}
				if err := os.Rename(skipped.Path, skipped.Path+quarantineExt); err != nil {
					return errors.Wrapf(err, "failed to quarantine %s", skipped.Path)
				}
				a.printf("    moved to %s\n", skipped.Path+quarantineExt)
			}

			if quarantine {
				return nil
			}
			return errors.WrapWithCodef(el.Err(), errors.CodeDataLoss, "%d unreadable character file(s)", len(a.loaded.Skipped))
		},
	}

	cmd.Flags().BoolVar(&quarantine, "quarantine", false, "rename unreadable files so they are skipped")

	return cmd
}

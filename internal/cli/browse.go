package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jjunho/lunar-year/internal/domain"
	"github.com/jjunho/lunar-year/internal/infra/logger"
	"github.com/jjunho/lunar-year/internal/ui/tui"
)

func browseCmd() *cobra.Command {
	var (
		year     int
		langFlag string
	)

	c := &cobra.Command{
		Use:   "browse",
		Short: "Browse the 60-year cycle interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			cleanup, _ := logger.Setup(logger.Config{Debug: debug})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			lang, err := pickLanguage("", langFlag, cfg)
			if err != nil {
				return err
			}

			deps := tui.Deps{
				Catalog:  domain.Catalog{},
				Logger:   logger.L(),
				Year:     year,
				Language: lang,
			}
			return tui.Run(deps)
		},
	}

	c.Flags().IntVarP(&year, "year", "y", time.Now().Year(), "Year whose entry starts selected")
	c.Flags().StringVarP(&langFlag, "language", "l", "", "Output language: chi, kor, jap, viet, eng")
	return c
}

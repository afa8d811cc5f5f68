package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jjunho/lunar-year/internal/buildinfo"
	"github.com/jjunho/lunar-year/internal/domain"
	"github.com/jjunho/lunar-year/internal/infra/logger"
	"github.com/jjunho/lunar-year/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		langFlag string
		jsonOut  bool
		debug    bool
	)

	cmd := &cobra.Command{
		Use:   "lunar <year> [language]",
		Short: "Convert a Gregorian year to its sexagenary (stem-branch) name",
		Long: "lunar maps a Gregorian year (4-9999) onto the 60-year sexagenary cycle\n" +
			"and prints the year-name in Chinese, Korean, Japanese, Vietnamese or English.",
		Example:      "  lunar 2024 eng\n  lunar 2025 --language chi --json",
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cleanup, _ := logger.Setup(logger.Config{Debug: debug})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			year, err := parseYear(args[0])
			if err != nil {
				return err
			}

			positional := ""
			if len(args) == 2 {
				positional = args[1]
			}
			lang, err := pickLanguage(positional, langFlag, cfg)
			if err != nil {
				return err
			}

			uc := usecase.NewResolveYear(domain.Catalog{})
			res, err := uc.Execute(cmd.Context(), year, lang)
			if err != nil {
				logger.L().Error("resolve.failed", "year", year, "language", string(lang), "err", err.Error())
				return err
			}
			logger.L().Info("resolve.ok", "year", res.Year, "ordinal", res.CycleOrdinal, "language", res.Language)

			if jsonOut {
				b, err := json.MarshalIndent(res, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(b))
				return nil
			}

			fmt.Println(formatResult(res, cfg.Output.Separator))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	cmd.Flags().StringVarP(&langFlag, "language", "l", "", "Output language: chi, kor, jap, viet, eng")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the result as JSON")

	cmd.AddCommand(tableCmd())
	cmd.AddCommand(languagesCmd())
	cmd.AddCommand(browseCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(buildinfo.String())
		},
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jjunho/lunar-year/internal/domain"
	"github.com/jjunho/lunar-year/internal/usecase"
)

func tableCmd() *cobra.Command {
	var langFlag string

	c := &cobra.Command{
		Use:   "table",
		Short: "Print all 60 entries of the sexagenary cycle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			lang, err := pickLanguage("", langFlag, cfg)
			if err != nil {
				return err
			}

			uc := usecase.NewListCycle(domain.Catalog{})
			rows, err := uc.Execute(cmd.Context(), lang)
			if err != nil {
				return err
			}

			for _, row := range rows {
				fmt.Printf("%2d  %s  %s\n", row.CycleOrdinal, row.Han, row.Display)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&langFlag, "language", "l", "", "Output language: chi, kor, jap, viet, eng")
	return c
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jjunho/lunar-year/internal/domain"
)

func languagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the supported language codes",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			for _, lang := range domain.Languages() {
				fmt.Printf("%-5s %s\n", string(lang), lang.LongName())
			}
		},
	}
}

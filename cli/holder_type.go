package cli

import (
	"github.com/spf13/cobra"

	"github.com/Aashish23092/id-verification/logging"
	"github.com/Aashish23092/id-verification/service"
)

func newHolderTypeCmd(root *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "holder-type PAN",
		Short:   "Show the holder category encoded in a PAN",
		Example: "  idverify holder-type AAACB1234C",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// pure lookup, no OCR providers needed
			svc := service.NewPANService(nil, logging.Discard(), nil)
			ht := svc.HolderType(args[0])

			out := newPrinter(cmd.OutOrStdout(), root.noColor)
			if asJSON {
				return out.JSON(ht)
			}
			out.HolderType(ht)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

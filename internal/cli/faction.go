package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

// NewFactionsCmd создаёт группу команд для фракций.
func NewFactionsCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fracties",
		Aliases: []string{"fractie"},
		Short:   "Browse parliamentary parties",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List active parties",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			factions, err := client.ListFactions(cmd.Context())
			if err != nil {
				return err
			}

			headers := []string{"AFKORTING", "NAAM", "ZETELS", "ID"}
			rows := make([][]string, len(factions))
			for i, f := range factions {
				rows[i] = []string{orDash(f.Abbreviation), orDash(f.Name), strconv.Itoa(f.Seats), orDash(f.ID)}
			}

			out.Print(headers, rows, factions)
			return nil
		},
	})

	return cmd
}

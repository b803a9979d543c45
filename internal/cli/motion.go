package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// NewMotionsCmd создаёт группу команд для моций.
func NewMotionsCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "moties",
		Aliases: []string{"motie"},
		Short:   "Browse motions",
	}

	cmd.AddCommand(
		newMotionsListCmd(clientFn, outputFn),
		newMotionVotesCmd(clientFn, outputFn),
		newMotionsFilterCmd(clientFn, outputFn),
	)

	return cmd
}

var motionHeaders = []string{"ID", "NUMMER", "GESTART", "TITEL", "INDIENERS"}

func motionRow(m MotionResponse) []string {
	names := make([]string, 0, len(m.Submitters))
	for _, s := range m.Submitters {
		names = append(names, fmt.Sprintf("%s (%s)", orDash(s.Name), orDash(s.Party)))
	}
	submitters := strings.Join(names, ", ")
	if submitters == "" {
		submitters = "-"
	}
	return []string{orDash(m.ID), orDash(m.Number), orDash(m.StartedAt), clip(orDash(m.Title), 60), submitters}
}

func newMotionsListCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var page, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List motions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			resp, err := client.ListMotions(cmd.Context(), page, limit)
			if err != nil {
				return err
			}

			rows := make([][]string, len(resp.Motions))
			for i, m := range resp.Motions {
				rows[i] = motionRow(m)
			}

			out.Print(motionHeaders, rows, resp)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&limit, "limit", 50, "Motions per page")

	return cmd
}

func newMotionVotesCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "stemmingen <motion-id>",
		Short: "Show votes per party for a motion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			resp, err := client.MotionVotes(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			rows := make([][]string, len(resp.Votes))
			for i, v := range resp.Votes {
				rows[i] = voteRow(v)
			}

			out.Success(fmt.Sprintf("Motie: %s", orDash(resp.MotionTitle)))
			out.Print([]string{"FRACTIE", "STEMMING", "ZETELS"}, rows, resp)
			return nil
		},
	}
}

func voteRow(v PartyVoteResponse) []string {
	size := "-"
	if v.Size != nil {
		size = strconv.Itoa(*v.Size)
	}
	return []string{v.Party, orDash(v.Kind), size}
}

func newMotionsFilterCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var req FilterRequest

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Find recent motions by how parties voted",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			if req.For == nil {
				req.For = []string{}
			}
			if req.Against == nil {
				req.Against = []string{}
			}

			resp, err := client.FilterMotions(cmd.Context(), req)
			if err != nil {
				return err
			}

			headers := append(append([]string{}, motionHeaders...), "STEMMINGEN")
			rows := make([][]string, len(resp.Motions))
			for i, m := range resp.Motions {
				rows[i] = append(motionRow(m), votesSummary(m.Votes))
			}

			out.Success(fmt.Sprintf("%d motions matched", resp.Total))
			out.Print(headers, rows, resp)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&req.For, "voor", nil, "Parties that must have voted for (comma-separated)")
	cmd.Flags().StringSliceVar(&req.Against, "tegen", nil, "Parties that must have voted against (comma-separated)")

	return cmd
}

// votesSummary форматирует карту голосов как "PARTIJ:Soort", по алфавиту.
func votesSummary(votes map[string]PartyVoteResponse) string {
	if len(votes) == 0 {
		return "-"
	}
	parties := make([]string, 0, len(votes))
	for p := range votes {
		parties = append(parties, p)
	}
	sort.Strings(parties)

	parts := make([]string, len(parties))
	for i, p := range parties {
		parts[i] = p + ":" + orDash(votes[p].Kind)
	}
	return strings.Join(parts, " ")
}

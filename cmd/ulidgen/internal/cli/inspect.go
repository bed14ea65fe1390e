package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thalib/ulidgen/cmd/ulidgen/internal/ulid"
)

func newInspectCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ULID",
		Short: "Decode the timestamp and randomness of a ULID",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageErrorf("inspect expects exactly one ULID, got %d arguments", len(args))
			}
			return nil
		},
		RunE: a.inspect,
	}
}

func (a *app) inspect(cmd *cobra.Command, args []string) error {
	id, err := ulid.Parse(args[0])
	if err != nil {
		a.logger.DebugWithErr("ULID rejected", err)
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ulid:      %s\n", id.String())
	fmt.Fprintf(out, "timestamp: %d\n", id.Time())
	fmt.Fprintf(out, "time:      %s\n", ulid.Time(id).Format("2006-01-02T15:04:05.000Z07:00"))
	fmt.Fprintf(out, "entropy:   %s\n", hex.EncodeToString(id.Entropy()))
	return nil
}

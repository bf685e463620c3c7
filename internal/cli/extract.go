package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mboehme/rfsee/pkg/catalog"
	"github.com/mboehme/rfsee/pkg/cite"
	rfseeerrors "github.com/mboehme/rfsee/pkg/errors"
)

// newExtractCmd creates the extract command, a debugging aid that runs
// citation extraction over one text file and prints the matches.
func newExtractCmd() *cobra.Command {
	var self string

	cmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Show the RFC citations extracted from a text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd.Context(), args[0], self)
		},
	}

	cmd.Flags().StringVar(&self, "self", "", "RFC the text belongs to (excluded from the result)")

	return cmd
}

func runExtract(ctx context.Context, path, self string) error {
	logger := loggerFromContext(ctx)

	var selfID catalog.EntryID
	if self != "" {
		id, err := catalog.ParseID(self)
		if err != nil {
			return rfseeerrors.Wrap(rfseeerrors.ErrCodeInvalidID, err, "parse %q", self)
		}
		selfID = id
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return rfseeerrors.Wrap(rfseeerrors.ErrCodeTextNotFound, err, "read %s", path)
	}
	logger.Debugf("Read %d bytes from %s", len(data), path)

	citations := cite.Extract(string(data), selfID)
	if len(citations) == 0 {
		printInfo("No citations found")
		return nil
	}

	printInfo("%d citation(s) in order of first appearance:", len(citations))
	for _, id := range citations {
		fmt.Println("  " + styleNumber.Render(string(id)))
	}
	return nil
}

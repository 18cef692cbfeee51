package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Vojb/busted-dart/internal/services/practice/storage"
)

// dumpDocuments writes every stored document as indented JSON under a
// header naming its key and last update.
func dumpDocuments(ctx context.Context, docs storage.DocumentStore, w io.Writer) error {
	records, err := docs.ListDocuments(ctx)
	if err != nil {
		return fmt.Errorf("list documents: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(w, "no stored documents")
		return nil
	}
	for _, record := range records {
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, record.Value, "", "  "); err != nil {
			return fmt.Errorf("format document %s: %w", record.Key, err)
		}
		fmt.Fprintf(w, "# %s (updated %s)\n%s\n", record.Key, record.UpdatedAt.UTC().Format(time.RFC3339), pretty.String())
	}
	return nil
}

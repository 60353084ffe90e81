package gateway

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"payments-engine/internal/domain"
)

var snapshotHeader = []string{"client", "available", "held", "total", "locked"}

// WriteSnapshotsCSV renders account snapshots as CSV with amounts fixed
// to four decimal places, one row per client.
func WriteSnapshotsCSV(w io.Writer, snapshots []domain.AccountSnapshot) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(snapshotHeader); err != nil {
		return fmt.Errorf("failed to write snapshot header: %w", err)
	}

	for _, snapshot := range snapshots {
		if err := writer.Write(snapshotRecord(snapshot)); err != nil {
			return fmt.Errorf("failed to write snapshot for client %d: %w", snapshot.ClientID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteSnapshotsTable renders account snapshots as an aligned table for
// reading by humans rather than by the next tool in a pipeline.
func WriteSnapshotsTable(w io.Writer, snapshots []domain.AccountSnapshot) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(snapshotHeader)

	for _, snapshot := range snapshots {
		table.Append(snapshotRecord(snapshot))
	}

	table.Render()
}

func snapshotRecord(snapshot domain.AccountSnapshot) []string {
	return []string{
		strconv.FormatUint(uint64(snapshot.ClientID), 10),
		snapshot.Available.StringFixed(4),
		snapshot.Held.StringFixed(4),
		snapshot.Total.StringFixed(4),
		strconv.FormatBool(snapshot.Locked),
	}
}

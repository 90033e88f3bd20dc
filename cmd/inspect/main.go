package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"line-relay/infrastructure/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// inspect prints the lines and mailboxes of a relay store. Tokens only ever
// appear as fingerprints and message contents are never printed.
func main() {
	dbPath := flag.String("db", "./data/relay", "Path to badger DB")
	prefix := flag.String("prefix", "", "Only scan this prefix (line: or mailbox:)")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	prefixes := storage.Prefixes
	if *prefix != "" {
		prefixes = []string{*prefix}
	}
	rows, err := storage.Dump(db, prefixes...)
	if err != nil {
		log.Fatal(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Type", "Expires", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	table.AppendBulk(lo.Map(rows, func(row storage.Row, _ int) []string {
		expires := "never"
		if !row.ExpiresAt.IsZero() {
			expires = row.ExpiresAt.Format("2006-01-02 15:04:05")
		}
		return []string{row.Key, row.Type, expires, row.Detail}
	}))
	table.Render()

	counts := lo.CountValuesBy(rows, func(row storage.Row) string { return row.Type })
	fmt.Printf("\n%d lines, %d mailboxes\n", counts[storage.RecordLine], counts[storage.RecordMailbox])
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil {
		// A store that was not closed cleanly must be opened once in write mode to truncate.
		if strings.Contains(err.Error(), "Log truncate required") {
			repairOpts := badger.DefaultOptions(path).
				WithLogger(nil).WithBypassLockGuard(true)

			db, err = badger.Open(repairOpts)
			if err != nil {
				return nil, fmt.Errorf("repair failed: %w", err)
			}
			db.Close()
			return badger.Open(opts)
		}
		return nil, err
	}
	return db, nil
}

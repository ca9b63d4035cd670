package main

import (
	"flag"
	"log"
	"os"
	"social-client/repositories"
	"social-client/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

// Prints the session keys held in a client's BadgerDB. Tokens are shortened
// unless -reveal is set.
func main() {
	dbPath := flag.String("db", ".complexapp", "Path to badger DB")
	reveal := flag.Bool("reveal", false, "Print tokens in full")
	flag.Parse()

	opts := badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	entries, err := repositories.ListSession(db)
	if err != nil {
		log.Fatal(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Value"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for _, entry := range entries {
		value := entry.Value
		if entry.Key == services.TokenKey && !*reveal && len(value) > 8 {
			value = value[:8] + "..."
		}
		table.Append([]string{entry.Key, value})
	}
	table.Render()
}

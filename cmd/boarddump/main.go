// Program boarddump prints the board stored in a reorder database.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dustin/go-humanize/english"

	"github.com/llehouerou/reorder/internal/board"
	"github.com/llehouerou/reorder/internal/state"
)

func main() {
	dbPath := ""
	if len(os.Args) > 1 {
		dbPath = os.Args[1]
	}

	mgr, err := state.Open(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer mgr.Close()

	columns, err := mgr.LoadBoard(context.Background())
	if err != nil {
		log.Fatalf("Failed to load board: %v", err)
	}
	if columns == nil {
		log.Println("No board stored yet")
		return
	}

	fmt.Print(render(columns))
}

func render(columns []board.Column) string {
	var b strings.Builder
	for _, col := range columns {
		fmt.Fprintf(&b, "%s (%s)\n", col.Title, english.Plural(len(col.Cards), "card", ""))
		for i, card := range col.Cards {
			fmt.Fprintf(&b, "  %d. %s", i+1, card.Title)
			if len(card.Merged) > 0 {
				fmt.Fprintf(&b, " [+ %s]", strings.Join(card.Merged, ", "))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

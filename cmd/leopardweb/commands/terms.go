package commands

import (
	"context"

	"leopardweb-catalog/lib/util/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
)

func runListTerms(ctx context.Context) {
	client := newClient(loadConfig())

	terms, err := client.Terms(ctx)
	if err != nil {
		serviceutil.Fatal("failed to fetch terms", err)
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(rootCmd.OutOrStdout())
	t.AppendHeader(table.Row{"Code", "Description"})
	for _, term := range terms {
		t.AppendRow(table.Row{term.Code, term.Description})
	}
	t.Render()
}

package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jask/pagenav/internal/database"
	"github.com/jask/pagenav/internal/database/repository"
)

// NewActionsCommand creates the actions command.
func NewActionsCommand() *cobra.Command {
	var (
		limit  int
		counts bool
	)
	cmd := &cobra.Command{
		Use:   "actions",
		Short: "List audited context-menu actions",
		Example: `  # Last 20 actions
  pagenav actions

  # Everything, with per-action totals
  pagenav actions --limit 0 --counts`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, ok := GetConfig(cmd.Context())
			if !ok {
				return errors.New("config not loaded")
			}
			db, err := database.OpenMigrated(cfg.Database.Path)
			if err != nil {
				return err
			}
			defer db.Close()

			repo := repository.NewActionRepo(db)
			rows, err := repo.ListRecent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list actions: %w", err)
			}
			renderActions(cmd.OutOrStdout(), rows)
			if !counts {
				return nil
			}
			totals, err := repo.CountByAction(cmd.Context())
			if err != nil {
				return fmt.Errorf("count actions: %w", err)
			}
			renderCounts(cmd.OutOrStdout(), totals)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "rows to show, 0 for all")
	cmd.Flags().BoolVar(&counts, "counts", false, "also print totals per action")
	return cmd
}

func renderActions(w io.Writer, rows []repository.ContextAction) {
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"When", "Action", "Page", "Session"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.CreatedAt.Local().Format(time.DateTime), r.Action, r.PageID, shortID(r.SessionID)})
	}
	t.Render()
	_, _ = fmt.Fprintf(w, "(%d rows)\n", len(rows))
}

func renderCounts(w io.Writer, totals []repository.ActionCount) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Action", "Count"})
	sum := 0
	for _, c := range totals {
		t.AppendRow(table.Row{c.Action, c.Count})
		sum += c.Count
	}
	t.AppendFooter(table.Row{"Total", sum})
	t.Render()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

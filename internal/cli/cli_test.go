package cli

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/jask/pagenav/internal/config"
	"github.com/jask/pagenav/internal/database"
	"github.com/jask/pagenav/internal/database/repository"
	"github.com/jask/pagenav/internal/nav"
	"github.com/jask/pagenav/internal/testdata"
)

func writeConfig(t *testing.T, dir string) (string, string) {
	t.Helper()
	dbPath := filepath.Join(dir, "audit.db")
	cfgPath := filepath.Join(dir, "config.toml")
	body := fmt.Sprintf(`
[database]
path = %q

[log]
path = %q
level = "debug"
`, dbPath, filepath.Join(dir, "pagenav.log"))
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o644))
	return cfgPath, dbPath
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "pagenav v"+Version)
}

func TestActionsCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	cfgPath, dbPath := writeConfig(t, dir)

	db, err := database.OpenMigrated(dbPath)
	require.NoError(t, err)
	repo := repository.NewActionRepo(db)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, a := range []string{"setAsFirst", "delete", "delete"} {
		require.NoError(t, repo.Insert(context.Background(), repository.ContextAction{
			ID:        fmt.Sprintf("row-%d", i),
			SessionID: "session-abcdef-123",
			Action:    a,
			PageID:    "p1",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, db.Close())

	out, err := execute(t, "--config", cfgPath, "actions", "--limit", "2", "--counts")
	require.NoError(t, err)
	require.Contains(t, out, "(2 rows)")
	require.Contains(t, out, "session-")
	require.NotContains(t, out, "session-abcdef-123")
	require.Contains(t, out, "setAsFirst")
	require.Contains(t, out, "3")
}

func TestActionsCommandAllRows(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfgPath, dbPath := writeConfig(t, t.TempDir())

	db, err := database.OpenMigrated(dbPath)
	require.NoError(t, err)
	_, err = testdata.SeedActions(context.Background(), repository.NewActionRepo(db), rand.New(rand.NewSource(7)), 30, time.Now())
	require.NoError(t, err)
	require.NoError(t, db.Close())

	out, err := execute(t, "--config", cfgPath, "actions", "--limit", "0")
	require.NoError(t, err)
	require.Contains(t, out, "(30 rows)")

	out, err = execute(t, "--config", cfgPath, "actions")
	require.NoError(t, err)
	require.Contains(t, out, "(20 rows)")
}

func TestActionsCommandEmpty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfgPath, _ := writeConfig(t, t.TempDir())

	out, err := execute(t, "--config", cfgPath, "actions")
	require.NoError(t, err)
	require.Contains(t, out, "(0 rows)")
}

func TestMissingConfigFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.toml"), "actions")
	require.Error(t, err)
}

func testCmd() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	return cmd
}

func TestOpenSessionWithoutAudit(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{
		Log:      config.LogConfig{Path: filepath.Join(dir, "log", "pagenav.log"), Level: "info"},
		Database: config.DatabaseConfig{Path: filepath.Join(dir, "audit.db")},
	}
	s, err := openSession(testCmd(), cfg)
	require.NoError(t, err)
	require.Nil(t, s.db)
	s.sink.Record(nav.ActionRecord{Action: nav.ActionRename, PageID: "x", At: time.Now()})
	require.NoError(t, s.Close())

	logged, err := os.ReadFile(cfg.Log.Path)
	require.NoError(t, err)
	require.Contains(t, string(logged), `"msg":"context action"`)
	require.Contains(t, string(logged), `"action":"rename"`)
	require.NoFileExists(t, cfg.Database.Path)
}

func TestOpenSessionPersistsActions(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{
		Log:      config.LogConfig{Path: filepath.Join(dir, "pagenav.log"), Level: "info"},
		Database: config.DatabaseConfig{Path: filepath.Join(dir, "audit.db")},
		Audit:    config.AuditConfig{Enabled: true},
	}
	s, err := openSession(testCmd(), cfg)
	require.NoError(t, err)
	s.sink.Record(nav.ActionRecord{Action: nav.ActionDuplicate, PageID: "p9", At: time.Now()})

	rows, err := repository.NewActionRepo(s.db).ListRecent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "duplicate", rows[0].Action)
	require.Equal(t, "p9", rows[0].PageID)
	require.NoError(t, s.Close())
}

// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/l3montree-dev/applibrary/config"
	"github.com/l3montree-dev/applibrary/database/models"
	"github.com/l3montree-dev/applibrary/database/repositories"
	"github.com/l3montree-dev/applibrary/services"
	"github.com/l3montree-dev/applibrary/shared"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newTrashService(db shared.DB, cfg config.Config) *services.TrashService {
	return services.NewTrashService(
		repositories.NewAppRepository(db),
		repositories.NewAppVersionRepository(db),
		repositories.NewCleanupRunRepository(db),
		cfg,
	)
}

func NewTrashCommand() *cobra.Command {
	trash := cobra.Command{
		Use:   "trash",
		Short: "Inspect and purge soft-deleted apps and versions",
	}

	trash.AddCommand(newTrashListCommand())
	trash.AddCommand(newTrashEmptyCommand())
	trash.AddCommand(newTrashCleanupCommand())
	return &trash
}

func newTrashListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List everything in the trash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, closeDB, err := openDatabase(cmd)
			if err != nil {
				return err
			}
			defer closeDB()

			trashService := newTrashService(db, cfg)
			apps, err := trashService.ListDeletedApps(cmd.Context())
			if err != nil {
				return err
			}
			versions, err := trashService.ListDeletedVersions(cmd.Context())
			if err != nil {
				return err
			}

			renderTrash(cmd.OutOrStdout(), apps, versions)
			return nil
		},
	}
}

func newTrashEmptyCommand() *cobra.Command {
	empty := &cobra.Command{
		Use:   "empty",
		Short: "Permanently delete everything in the trash, regardless of age",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if yes, _ := cmd.Flags().GetBool("yes"); !yes {
				return errors.New("emptying the trash cannot be undone, pass --yes to confirm")
			}

			cfg, db, closeDB, err := openDatabase(cmd)
			if err != nil {
				return err
			}
			defer closeDB()

			run, err := withSpinner(" emptying trash", func() (models.CleanupRun, error) {
				return newTrashService(db, cfg).EmptyTrash(cmd.Context())
			})
			if err != nil {
				return err
			}
			renderCleanupRun(cmd.OutOrStdout(), run)
			return nil
		},
	}
	empty.Flags().Bool("yes", false, "confirm the purge")
	return empty
}

func newTrashCleanupCommand() *cobra.Command {
	cleanup := &cobra.Command{
		Use:   "cleanup",
		Short: "Permanently delete everything which is in the trash for longer than the retention period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, closeDB, err := openDatabase(cmd)
			if err != nil {
				return err
			}
			defer closeDB()

			run, err := withSpinner(fmt.Sprintf(" removing items deleted more than %d days ago", cfg.Trash.RetentionDays), func() (models.CleanupRun, error) {
				return newTrashService(db, cfg).Cleanup(cmd.Context(), models.CleanupTriggerCLI)
			})
			if err != nil {
				return err
			}
			renderCleanupRun(cmd.OutOrStdout(), run)
			return nil
		},
	}
	cleanup.Flags().Int("retention-days", 30, "purge items deleted more than this many days ago")
	if err := cleanup.Flags().SetAnnotation("retention-days", config.FlagAnnotation, []string{"TRASH_RETENTION_DAYS"}); err != nil {
		panic(err)
	}
	return cleanup
}

func withSpinner(suffix string, fn func() (models.CleanupRun, error)) (models.CleanupRun, error) {
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = suffix
	s.Start()
	defer s.Stop()
	return fn()
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}

func renderTrash(w io.Writer, apps []models.App, versions []models.DeletedAppVersion) {
	fmt.Fprintln(w, text.FgHiCyan.Sprint("DELETED APPS"))
	appTable := table.NewWriter()
	appTable.SetStyle(table.StyleLight)
	appTable.AppendHeader(table.Row{"App ID", "Name", "Publisher", "Deleted At"})
	for _, app := range apps {
		var deletedAt *time.Time
		if app.DeletedAt.Valid {
			deletedAt = &app.DeletedAt.Time
		}
		appTable.AppendRow(table.Row{app.AppID, app.Name, app.Publisher, formatTime(deletedAt)})
	}
	fmt.Fprintln(w, appTable.Render())

	fmt.Fprintln(w, text.FgHiCyan.Sprint("\nDELETED VERSIONS"))
	versionTable := table.NewWriter()
	versionTable.SetStyle(table.StyleLight)
	versionTable.AppendHeader(table.Row{"Version ID", "App", "Version", "Deleted At"})
	for _, v := range versions {
		var deletedAt *time.Time
		if v.DeletedAt.Valid {
			deletedAt = &v.DeletedAt.Time
		}
		versionTable.AppendRow(table.Row{v.VersionID, v.AppName, v.Version, formatTime(deletedAt)})
	}
	fmt.Fprintln(w, versionTable.Render())
}

func renderCleanupRun(w io.Writer, run models.CleanupRun) {
	status := text.FgGreen.Sprint(run.Status)
	if run.Status != models.CleanupStatusSucceeded {
		status = text.FgRed.Sprint(run.Status)
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendRows([]table.Row{
		{"Run", run.ID.String()},
		{"Trigger", string(run.Trigger)},
		{"Status", status},
		{"Deleted Before", formatTime(run.DeleteBefore)},
		{"Deleted Apps", run.DeletedApps},
		{"Deleted Versions", run.DeletedVersions},
	})
	fmt.Fprintln(w, t.Render())
}

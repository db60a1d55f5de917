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
	"log/slog"

	"github.com/l3montree-dev/applibrary/database"
	"github.com/spf13/cobra"
)

func NewMigrateCommand() *cobra.Command {
	migrate := cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	migrate.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, closeDB, err := openDatabase(cmd)
			if err != nil {
				return err
			}
			defer closeDB()

			if err := database.RunMigrationsWithDB(db); err != nil {
				return err
			}
			slog.Info("database migrated")
			return nil
		},
	})

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back the given number of migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := cmd.Flags().GetInt("steps")
			if err != nil {
				return err
			}
			if steps < 1 {
				return fmt.Errorf("steps must be at least 1, got %d", steps)
			}

			_, db, closeDB, err := openDatabase(cmd)
			if err != nil {
				return err
			}
			defer closeDB()

			if err := database.RollbackMigrationsWithDB(db, steps); err != nil {
				return err
			}
			slog.Info("rolled back migrations", "steps", steps)
			return nil
		},
	}
	down.Flags().Int("steps", 1, "number of migrations to roll back")
	migrate.AddCommand(down)

	migrate.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, closeDB, err := openDatabase(cmd)
			if err != nil {
				return err
			}
			defer closeDB()

			version, dirty, err := database.GetMigrationVersionWithDB(db)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
			return nil
		},
	})

	return &migrate
}

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
	"github.com/l3montree-dev/applibrary/config"
	"github.com/l3montree-dev/applibrary/database"
	"github.com/l3montree-dev/applibrary/shared"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "applibrary-cli",
	Short:        "Management cli",
	Long:         `The applibrary cli runs maintenance tasks directly against the app library database.`,
	SilenceUsage: true,
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

// openDatabase loads the config (with the flags of cmd taking precedence) and connects to postgres.
// The returned function closes the pool.
func openDatabase(cmd *cobra.Command) (config.Config, shared.DB, func(), error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	pool, err := database.NewPgxConnPool(cfg.Database)
	if err != nil {
		return config.Config{}, nil, nil, errors.Wrap(err, "could not connect to database")
	}
	db, err := database.NewGormDB(pool)
	if err != nil {
		pool.Close()
		return config.Config{}, nil, nil, errors.Wrap(err, "could not open database")
	}
	return cfg, db, pool.Close, nil
}

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
	"io"
	"os"

	"github.com/l3montree-dev/applibrary/database/models"
	"github.com/l3montree-dev/applibrary/database/repositories"
	"github.com/l3montree-dev/applibrary/shared"
	"github.com/l3montree-dev/applibrary/transformer"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type exportedVersion struct {
	VersionID        string  `yaml:"versionId"`
	Version          string  `yaml:"version"`
	IsCurrent        bool    `yaml:"isCurrent"`
	ReleaseNotes     *string `yaml:"releaseNotes,omitempty"`
	DetectionScript  *string `yaml:"detectionScript,omitempty"`
	InstallCommand   *string `yaml:"installCommand,omitempty"`
	UninstallCommand *string `yaml:"uninstallCommand,omitempty"`
	FilePath         *string `yaml:"filePath,omitempty"`
	Description      *string `yaml:"description,omitempty"`
}

type exportedApp struct {
	AppID       string            `yaml:"appId"`
	Name        string            `yaml:"name"`
	Publisher   string            `yaml:"publisher"`
	Description *string           `yaml:"description,omitempty"`
	Category    *string           `yaml:"category,omitempty"`
	Versions    []exportedVersion `yaml:"versions"`
}

type exportDocument struct {
	Apps []exportedApp `yaml:"apps"`
}

// exportApps writes every app which is not in the trash together with its active versions as yaml.
func exportApps(db shared.DB, w io.Writer) error {
	appRepository := repositories.NewAppRepository(db)
	appVersionRepository := repositories.NewAppVersionRepository(db)

	apps, err := appRepository.ListActive("")
	if err != nil {
		return errors.Wrap(err, "could not list apps")
	}

	doc := exportDocument{Apps: make([]exportedApp, 0, len(apps))}
	for _, app := range apps {
		versions, err := appVersionRepository.ListByApp(nil, app.ID)
		if err != nil {
			return errors.Wrapf(err, "could not list versions of %s", app.AppID)
		}
		transformer.SortVersionsDesc(versions)

		doc.Apps = append(doc.Apps, exportedApp{
			AppID:       app.AppID,
			Name:        app.Name,
			Publisher:   app.Publisher,
			Description: app.Description,
			Category:    app.Category,
			Versions:    exportVersions(versions),
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func exportVersions(versions []models.AppVersion) []exportedVersion {
	res := make([]exportedVersion, len(versions))
	for i, v := range versions {
		res[i] = exportedVersion{
			VersionID:        v.VersionID,
			Version:          v.Version,
			IsCurrent:        v.IsCurrent,
			ReleaseNotes:     v.ReleaseNotes,
			DetectionScript:  v.DetectionScript,
			InstallCommand:   v.InstallCommand,
			UninstallCommand: v.UninstallCommand,
			FilePath:         v.FilePath,
			Description:      v.Description,
		}
	}
	return res
}

func NewAppsCommand() *cobra.Command {
	apps := cobra.Command{
		Use:   "apps",
		Short: "Work with the apps of the library",
	}

	export := &cobra.Command{
		Use:   "export",
		Short: "Export all apps and their versions as yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, closeDB, err := openDatabase(cmd)
			if err != nil {
				return err
			}
			defer closeDB()

			out := cmd.OutOrStdout()
			if path, _ := cmd.Flags().GetString("output"); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return errors.Wrap(err, "could not create output file")
				}
				defer f.Close()
				out = f
			}
			return exportApps(db, out)
		},
	}
	export.Flags().StringP("output", "o", "", "write the export to this file instead of stdout")
	apps.AddCommand(export)

	return &apps
}

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

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CleanupTrigger string

const (
	CleanupTriggerManual   CleanupTrigger = "manual"
	CleanupTriggerEmpty    CleanupTrigger = "empty"
	CleanupTriggerSchedule CleanupTrigger = "schedule"
	CleanupTriggerCLI      CleanupTrigger = "cli"
)

type CleanupStatus string

const (
	CleanupStatusRunning   CleanupStatus = "running"
	CleanupStatusSucceeded CleanupStatus = "succeeded"
	CleanupStatusFailed    CleanupStatus = "failed"
)

// CleanupRun records a single purge of the trash, either an unconditional
// empty or an age based retention sweep.
type CleanupRun struct {
	ID      uuid.UUID      `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	Trigger CleanupTrigger `json:"trigger" gorm:"type:text;not null"`
	// nil for an unconditional empty
	RetentionDays   *int           `json:"retentionDays"`
	DeleteBefore    *time.Time     `json:"deleteBefore"`
	StartedAt       time.Time      `json:"startedAt" gorm:"not null"`
	FinishedAt      *time.Time     `json:"finishedAt"`
	Status          CleanupStatus  `json:"status" gorm:"type:text;not null"`
	DeletedApps     int64          `json:"deletedApps" gorm:"not null;default:0"`
	DeletedVersions int64          `json:"deletedVersions" gorm:"not null;default:0"`
	Details         datatypes.JSON `json:"details" gorm:"type:jsonb"`
}

func (CleanupRun) TableName() string {
	return "trash_cleanup_runs"
}

func (r *CleanupRun) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

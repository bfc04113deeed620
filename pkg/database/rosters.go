package database

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/models"
)

// slotKeyColumns is the natural key slots are upserted on
var slotKeyColumns = []clause.Column{{Name: "employee_id"}, {Name: "week_start"}, {Name: "day"}}

// UpsertSlot writes one slot keyed (employee, week, day) in a single
// query (supported by both Postgres and SQLite)
func UpsertSlot(db *gorm.DB, weekStart time.Time, slot models.PlanningSlot) error {
	row, err := SlotFromModel(weekStart, slot)
	if err != nil {
		return err
	}
	return db.Clauses(clause.OnConflict{
		Columns: slotKeyColumns,
		DoUpdates: clause.AssignmentColumns([]string{
			"start", "end", "pause_start", "pause_minutes", "split_slots", "is_leave",
		}),
	}).Create(&row).Error
}

// DeleteSlot removes the slot for one (employee, week, day) key.
// Deleting an absent row is not an error.
func DeleteSlot(db *gorm.DB, weekStart time.Time, employeeID string, day models.DayKey) error {
	return db.Where("employee_id = ? AND week_start = ? AND day = ?",
		employeeID, weekStart.Format(DateFormat), string(day)).Delete(&Slot{}).Error
}

// SaveRoster replaces a week's persisted slots with the given roster
// value. Runs in one transaction so a failed write leaves the stored
// week intact.
func SaveRoster(db *gorm.DB, r models.WeeklyRoster) error {
	week := r.WeekStart.Format(DateFormat)
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("week_start = ?", week).Delete(&Slot{}).Error; err != nil {
			return err
		}
		for _, day := range models.WorkingDays {
			for _, slot := range r.Days[day] {
				row, err := SlotFromModel(r.WeekStart, slot)
				if err != nil {
					return err
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// LoadRoster rebuilds a week's roster value from the slots table. A week
// with no stored slots yields an empty roster, not an error.
func LoadRoster(db *gorm.DB, weekStart time.Time) (models.WeeklyRoster, error) {
	week := models.WeekStart(weekStart)
	r := models.WeeklyRoster{
		WeekStart: week,
		Days:      make(map[models.DayKey][]models.PlanningSlot, len(models.WorkingDays)),
	}

	var rows []Slot
	if err := db.Where("week_start = ?", week.Format(DateFormat)).Order("day, start, employee_id").Find(&rows).Error; err != nil {
		return models.WeeklyRoster{}, err
	}
	for _, row := range rows {
		slot, err := SlotToModel(row)
		if err != nil {
			return models.WeeklyRoster{}, err
		}
		r.Days[slot.Day] = append(r.Days[slot.Day], slot)
	}
	return r, nil
}

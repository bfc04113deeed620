package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Employee represents the employees table. The template and the other
// JSON-typed columns keep every field of the domain value, so a
// round-trip through the store is lossless.
type Employee struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Initials     string    `json:"initials"`
	Role         string    `gorm:"not null" json:"role"`
	Contract     string    `gorm:"not null" json:"contract"`
	Active       bool      `gorm:"default:true" json:"active"`
	Template     string    `json:"template"` // JSON day -> template value
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Availability represents the availabilities table, one row per
// (employee, week)
type Availability struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID string    `gorm:"uniqueIndex:idx_avail_emp_week;not null" json:"employee_id"`
	WeekStart  string    `gorm:"uniqueIndex:idx_avail_emp_week;not null" json:"week_start"` // Monday, 2006-01-02
	Days       string    `json:"days"`                                                      // JSON day -> window or null
	UpdatedAt  time.Time `json:"updated_at"`
}

// Slot represents the slots table, upserted by (employee, week, day)
type Slot struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	EmployeeID   string `gorm:"uniqueIndex:idx_slot_key;not null" json:"employee_id"`
	WeekStart    string `gorm:"uniqueIndex:idx_slot_key;not null" json:"week_start"`
	Day          string `gorm:"uniqueIndex:idx_slot_key;not null" json:"day"`
	Start        string `json:"start"`
	End          string `json:"end"`
	PauseStart   string `json:"pause_start"`
	PauseMinutes int    `json:"pause_minutes"`
	SplitSlots   string `json:"split_slots"` // JSON sub-range list, kept verbatim
	IsLeave      bool   `json:"is_leave"`
}

// LeaveRequest represents the leave_requests table
type LeaveRequest struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	EmployeeID    string    `gorm:"index;not null" json:"employee_id"`
	Kind          string    `gorm:"not null" json:"kind"`
	Date          string    `gorm:"not null" json:"date"` // 2006-01-02
	Slot          string    `json:"slot"`
	Motive        string    `json:"motive"`
	Urgent        bool      `json:"urgent"`
	Status        string    `gorm:"default:pending" json:"status"`
	ReplacementID string    `json:"replacement_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// NightGuard represents the night_guards table, one row per rotation date
type NightGuard struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Date         string    `gorm:"uniqueIndex;not null" json:"date"` // 2006-01-02
	PharmacistID string    `json:"pharmacist_id"`
	CompanionID  string    `json:"companion_id"`
	Status       string    `gorm:"default:unassigned" json:"status"`
	Start        string    `json:"start"`
	End          string    `json:"end"`
	CreatedAt    time.Time `json:"created_at"`
}

// MasterUser represents the master_users table (administrator accounts)
type MasterUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// InitDB initializes the database connection and migrates the schema
func InitDB() *gorm.DB {
	var db *gorm.DB
	var err error

	dsn := os.Getenv("DATABASE_URL")
	if dsn != "" {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	} else {
		dbPath := os.Getenv("DATA_PATH")
		if dbPath == "" {
			dbPath = "planning.db"
		}
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	}

	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Auto Migration
	db.AutoMigrate(&Employee{}, &Availability{}, &Slot{}, &LeaveRequest{}, &NightGuard{}, &MasterUser{})

	return db
}

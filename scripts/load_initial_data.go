package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"session-booking-backend/internal/config"
	"session-booking-backend/internal/database"
	"session-booking-backend/internal/database/models"
	"session-booking-backend/internal/repository"
	"session-booking-backend/internal/service"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type RuleData struct {
	Title           string          `yaml:"title"`
	Description     string          `yaml:"description,omitempty"`
	Weekday         int             `yaml:"weekday"`
	TimeOfDay       string          `yaml:"time_of_day"`
	DurationMinutes int             `yaml:"duration_minutes"`
	StartDate       string          `yaml:"start_date"`
	EndDate         string          `yaml:"end_date,omitempty"`
	IsActive        *bool           `yaml:"is_active,omitempty"`
	Exceptions      []ExceptionData `yaml:"exceptions,omitempty"`
}

type ExceptionData struct {
	Date        string `yaml:"date"`
	Cancel      bool   `yaml:"cancel,omitempty"`
	NewDatetime string `yaml:"new_datetime,omitempty"`
}

type OccurrenceData struct {
	Title           string `yaml:"title"`
	Description     string `yaml:"description,omitempty"`
	StartDatetime   string `yaml:"start_datetime"`
	DurationMinutes int    `yaml:"duration_minutes"`
}

// File structures
type RulesFile struct {
	Rules []RuleData `yaml:"rules"`
}

type OccurrencesFile struct {
	Occurrences []OccurrenceData `yaml:"occurrences"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	rules, err := loadRules(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load rules: %w", err)
	}

	occurrences, err := loadOccurrences(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load occurrences: %w", err)
	}

	ruleRepo := repository.NewRuleRepository(db)
	exceptionRepo := repository.NewExceptionRepository(db)
	occurrenceRepo := repository.NewOccurrenceRepository(db)

	rulesCreated := 0
	exceptionsCreated := 0
	for _, ruleData := range rules {
		rule, created, err := createRule(db, ruleData)
		if err != nil {
			return fmt.Errorf("failed to create rule %q: %w", ruleData.Title, err)
		}
		if created {
			rulesCreated++
		}

		for _, excData := range ruleData.Exceptions {
			exception, err := buildException(rule, excData)
			if err != nil {
				return fmt.Errorf("failed to build exception for rule %q: %w", ruleData.Title, err)
			}
			if err := exceptionRepo.Upsert(exception); err != nil {
				return fmt.Errorf("failed to upsert exception for rule %q: %w", ruleData.Title, err)
			}
			exceptionsCreated++
		}
	}

	occurrencesCreated := 0
	for _, occData := range occurrences {
		created, err := createStandaloneOccurrence(db, occData)
		if err != nil {
			return fmt.Errorf("failed to create occurrence %q: %w", occData.Title, err)
		}
		if created {
			occurrencesCreated++
		}
	}

	// Materialize upcoming instances for the seeded rules so the calendar
	// has data immediately after loading.
	generation := service.NewGenerationService(ruleRepo, occurrenceRepo)
	generated, err := generation.GenerateAll(service.Horizon{MonthsAhead: 3})
	if err != nil {
		return fmt.Errorf("failed to generate occurrences: %w", err)
	}

	log.Printf("📊 Loaded %d rules, %d exceptions, %d standalone occurrences; generated %d instances",
		rulesCreated, exceptionsCreated, occurrencesCreated, generated)
	return nil
}

func loadRules(dataDir string) ([]RuleData, error) {
	path := filepath.Join(dataDir, "rules.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("⚠️  No rules.yaml found in %s, skipping", dataDir)
			return nil, nil
		}
		return nil, err
	}

	var file RulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return file.Rules, nil
}

func loadOccurrences(dataDir string) ([]OccurrenceData, error) {
	path := filepath.Join(dataDir, "occurrences.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("⚠️  No occurrences.yaml found in %s, skipping", dataDir)
			return nil, nil
		}
		return nil, err
	}

	var file OccurrencesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return file.Occurrences, nil
}

// createRule inserts the rule unless a rule with the same title and start
// date already exists, so re-running the loader stays idempotent.
func createRule(db *gorm.DB, ruleData RuleData) (*models.RecurrenceRule, bool, error) {
	startDate, err := time.Parse("2006-01-02", ruleData.StartDate)
	if err != nil {
		return nil, false, fmt.Errorf("invalid start_date %q: %w", ruleData.StartDate, err)
	}

	var existing models.RecurrenceRule
	err = db.Where("title = ? AND start_date = ?", ruleData.Title, ruleData.StartDate).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	rule := &models.RecurrenceRule{
		Title:           ruleData.Title,
		Description:     ruleData.Description,
		Weekday:         ruleData.Weekday,
		TimeOfDay:       ruleData.TimeOfDay,
		DurationMinutes: ruleData.DurationMinutes,
		StartDate:       startDate,
		IsActive:        true,
	}
	if ruleData.EndDate != "" {
		endDate, err := time.Parse("2006-01-02", ruleData.EndDate)
		if err != nil {
			return nil, false, fmt.Errorf("invalid end_date %q: %w", ruleData.EndDate, err)
		}
		rule.EndDate = &endDate
	}
	if ruleData.IsActive != nil {
		rule.IsActive = *ruleData.IsActive
	}

	if err := db.Create(rule).Error; err != nil {
		return nil, false, err
	}
	return rule, true, nil
}

func buildException(rule *models.RecurrenceRule, excData ExceptionData) (*models.RuleException, error) {
	date, err := time.Parse("2006-01-02", excData.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid exception date %q: %w", excData.Date, err)
	}

	exception := &models.RuleException{
		RuleID:        rule.ID,
		ExceptionDate: date,
		IsCancelled:   excData.Cancel,
	}
	if excData.NewDatetime != "" {
		if excData.Cancel {
			return nil, fmt.Errorf("exception on %s cannot both cancel and reschedule", excData.Date)
		}
		newDatetime, err := time.Parse(time.RFC3339, excData.NewDatetime)
		if err != nil {
			return nil, fmt.Errorf("invalid new_datetime %q: %w", excData.NewDatetime, err)
		}
		exception.ModifiedDatetime = &newDatetime
	}
	return exception, nil
}

// createStandaloneOccurrence inserts a one-time session unless one with the
// same title and start instant already exists.
func createStandaloneOccurrence(db *gorm.DB, occData OccurrenceData) (bool, error) {
	startDatetime, err := time.Parse(time.RFC3339, occData.StartDatetime)
	if err != nil {
		return false, fmt.Errorf("invalid start_datetime %q: %w", occData.StartDatetime, err)
	}

	var existing models.Occurrence
	err = db.Where("title = ? AND start_datetime = ? AND rule_id IS NULL", occData.Title, startDatetime).
		First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	duration := occData.DurationMinutes
	if duration == 0 {
		duration = 60
	}
	occurrence := &models.Occurrence{
		Title:           occData.Title,
		Description:     occData.Description,
		StartDatetime:   startDatetime,
		DurationMinutes: duration,
		Status:          models.OccurrenceStatusScheduled,
	}

	if err := db.Create(occurrence).Error; err != nil {
		return false, err
	}
	return true, nil
}

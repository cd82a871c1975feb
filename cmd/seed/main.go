package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"gymcrm/internal/config"
	"gymcrm/internal/db"
	"gymcrm/internal/model"
	"gymcrm/internal/service"
)

// Seeds the baseline records a fresh install needs: the first admin account,
// a demo trainer, starter plans, default catalogs and the gym profile.
// Re-running is safe; existing rows are left alone.
func main() {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("database init")
	}

	if err := seedUsers(gormDB, logger); err != nil {
		logger.Fatal().Err(err).Msg("seed users")
	}
	if err := seedPlans(gormDB); err != nil {
		logger.Fatal().Err(err).Msg("seed plans")
	}
	if err := seedCatalogs(gormDB); err != nil {
		logger.Fatal().Err(err).Msg("seed catalogs")
	}
	if err := seedGymProfile(gormDB); err != nil {
		logger.Fatal().Err(err).Msg("seed gym profile")
	}

	logger.Info().Msg("seed complete")
}

func seedUsers(gormDB *gorm.DB, logger zerolog.Logger) error {
	adminEmail := envOr("SEED_ADMIN_EMAIL", "admin@gymcrm.local")
	adminPassword := envOr("SEED_ADMIN_PASSWORD", "admin123")

	hash, err := service.HashPassword(adminPassword)
	if err != nil {
		return err
	}
	admin := model.User{
		Name:         "Administrator",
		Email:        adminEmail,
		PasswordHash: hash,
		Role:         model.RoleSuperAdmin,
		Active:       true,
	}
	if err := gormDB.Where("email = ?", adminEmail).FirstOrCreate(&admin).Error; err != nil {
		return err
	}
	logger.Info().Str("email", adminEmail).Msg("admin account ready")

	trainerHash, err := service.HashPassword("trainer123")
	if err != nil {
		return err
	}
	trainer := model.User{
		Name:         "Demo Trainer",
		Email:        "trainer@gymcrm.local",
		PasswordHash: trainerHash,
		Role:         model.RoleTrainer,
		Active:       true,
	}
	return gormDB.Where("email = ?", trainer.Email).FirstOrCreate(&trainer).Error
}

func seedPlans(gormDB *gorm.DB) error {
	plans := []model.MembershipPlan{
		{
			Name:        "Monthly",
			Description: "Full gym access billed every month",
			Duration:    30,
			Price:       decimal.NewFromInt(1500),
			Features:    []string{"Gym floor access", "Locker"},
			Color:       "#3b82f6",
			SortOrder:   1,
			Active:      true,
		},
		{
			Name:        "Quarterly",
			Description: "Three months with a personal training session",
			Duration:    90,
			Price:       decimal.NewFromInt(4000),
			Features:    []string{"Gym floor access", "Locker", "1 PT session"},
			Color:       "#8b5cf6",
			Popular:     true,
			SortOrder:   2,
			Active:      true,
		},
		{
			Name:        "Annual",
			Description: "Best value for committed members",
			Duration:    365,
			Price:       decimal.NewFromInt(14000),
			Features:    []string{"Gym floor access", "Locker", "Monthly PT session", "Diet consultation"},
			Color:       "#f59e0b",
			SortOrder:   3,
			Active:      true,
		},
	}
	for i := range plans {
		if err := gormDB.Where("name = ?", plans[i].Name).FirstOrCreate(&plans[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedCatalogs(gormDB *gorm.DB) error {
	goals := []string{"Weight Loss", "Muscle Gain", "General Fitness", "Endurance", "Flexibility"}
	for _, name := range goals {
		goal := model.FitnessGoal{Name: name, IsDefault: true}
		if err := gormDB.Where("name = ?", name).FirstOrCreate(&goal).Error; err != nil {
			return err
		}
	}

	exercises := []model.Exercise{
		{Name: "Bench Press", MuscleGroup: "Chest", IsDefault: true},
		{Name: "Squat", MuscleGroup: "Legs", IsDefault: true},
		{Name: "Deadlift", MuscleGroup: "Back", IsDefault: true},
		{Name: "Overhead Press", MuscleGroup: "Shoulders", IsDefault: true},
		{Name: "Pull Up", MuscleGroup: "Back", IsDefault: true},
		{Name: "Plank", MuscleGroup: "Core", IsDefault: true},
		{Name: "Treadmill Run", MuscleGroup: "Cardio", IsDefault: true},
	}
	for i := range exercises {
		if err := gormDB.Where("name = ?", exercises[i].Name).FirstOrCreate(&exercises[i]).Error; err != nil {
			return err
		}
	}

	dietTypes := []string{"Vegetarian", "Non-Vegetarian", "Vegan", "Keto", "High Protein"}
	for _, name := range dietTypes {
		dietType := model.DietType{Name: name, IsDefault: true}
		if err := gormDB.Where("name = ?", name).FirstOrCreate(&dietType).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedGymProfile(gormDB *gorm.DB) error {
	var count int64
	if err := gormDB.Model(&model.GymProfile{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	profile := model.GymProfile{
		Name:    envOr("SEED_GYM_NAME", "Powerhouse Fitness"),
		Tagline: "Train hard, live strong",
	}
	return gormDB.Create(&profile).Error
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

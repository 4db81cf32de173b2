package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"house-rental-backend/internal/config"
	"house-rental-backend/internal/database"
	"house-rental-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type OwnerData struct {
	Username string `yaml:"username"`
	FullName string `yaml:"fullname"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type HouseData struct {
	OwnerUsername string  `yaml:"owner_username"`
	Title         string  `yaml:"title"`
	Description   string  `yaml:"description"`
	Location      string  `yaml:"location"`
	LocationLink  string  `yaml:"location_link,omitempty"`
	Price         float64 `yaml:"price"`
	HouseType     string  `yaml:"house_type"`
	Phone         string  `yaml:"phone"`
	Email         string  `yaml:"email"`
	ImagePath     string  `yaml:"image_path,omitempty"`
}

// File structures
type OwnersFile struct {
	Owners []OwnerData `yaml:"owners"`
}

type HousesFile struct {
	Houses []HouseData `yaml:"houses"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, cfg.DatabaseDriver, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	if err := loadDataFromYAMLFiles(db, dataDir); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn, driver string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		Driver:   driver,
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
	var ownersFile OwnersFile
	if err := readYAMLFiles(dataDir, "owners", func(data []byte) error {
		var file OwnersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		ownersFile.Owners = append(ownersFile.Owners, file.Owners...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load owners: %w", err)
	}

	var housesFile HousesFile
	if err := readYAMLFiles(dataDir, "houses", func(data []byte) error {
		var file HousesFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		housesFile.Houses = append(housesFile.Houses, file.Houses...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load houses: %w", err)
	}

	// Create owners first
	ownerMap := make(map[string]*models.Owner)
	ownerCreated := 0
	for _, ownerData := range ownersFile.Owners {
		owner, created, err := createOwner(db, ownerData)
		if err != nil {
			return fmt.Errorf("failed to create owner %s: %w", ownerData.Username, err)
		}
		ownerMap[ownerData.Username] = owner
		if created {
			ownerCreated++
		}
	}
	log.Printf("Owners: %d created, %d total", ownerCreated, len(ownersFile.Owners))

	houseCreated := 0
	for _, houseData := range housesFile.Houses {
		_, created, err := createHouse(db, houseData, ownerMap)
		if err != nil {
			log.Printf("Warning: failed to create house %q: %v", houseData.Title, err)
			continue // Continue with other houses
		}
		if created {
			houseCreated++
		}
	}
	log.Printf("Houses: %d created, %d total", houseCreated, len(housesFile.Houses))

	return nil
}

// readYAMLFiles calls fn with the content of every .yaml file below dataDir whose path contains kind
func readYAMLFiles(dataDir, kind string, fn func(data []byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), kind) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := fn(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	})
}

func createOwner(db *gorm.DB, ownerData OwnerData) (*models.Owner, bool, error) {
	var owner models.Owner
	err := db.Where("username = ?", ownerData.Username).First(&owner).Error
	if err == nil {
		return &owner, false, nil // created = false (existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query owner: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(ownerData.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, fmt.Errorf("failed to hash password: %w", err)
	}

	owner = models.Owner{
		Username:     ownerData.Username,
		FullName:     ownerData.FullName,
		Email:        ownerData.Email,
		PasswordHash: string(hash),
	}
	if err := db.Create(&owner).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create owner: %w", err)
	}
	return &owner, true, nil
}

func createHouse(db *gorm.DB, houseData HouseData, ownerMap map[string]*models.Owner) (*models.House, bool, error) {
	owner, ok := ownerMap[houseData.OwnerUsername]
	if !ok {
		return nil, false, fmt.Errorf("unknown owner %q", houseData.OwnerUsername)
	}

	var house models.House
	err := db.Where("owner_id = ? AND title = ?", owner.ID, houseData.Title).First(&house).Error
	if err == nil {
		return &house, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query house: %w", err)
	}

	house = models.House{
		Title:        houseData.Title,
		Description:  houseData.Description,
		Location:     houseData.Location,
		LocationLink: houseData.LocationLink,
		Price:        houseData.Price,
		HouseType:    houseData.HouseType,
		Phone:        houseData.Phone,
		Email:        houseData.Email,
		ImagePath:    houseData.ImagePath,
		OwnerID:      owner.ID,
	}
	if err := db.Create(&house).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create house: %w", err)
	}
	return &house, true, nil
}

package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"household-energy-sim/internal/api/models"
	"household-energy-sim/internal/config"

	"github.com/gin-gonic/gin"
)

// BatteryHandler handles battery-related requests
type BatteryHandler struct {
	batteryDir string
}

// NewBatteryHandler creates a new battery handler. An empty dir falls back to
// BATTERY_DIR, then ./examples/batteries.
func NewBatteryHandler(dir string) *BatteryHandler {
	if dir == "" {
		dir = os.Getenv("BATTERY_DIR")
	}
	if dir == "" {
		dir = filepath.Join("examples", "batteries")
	}

	// Convert to absolute path for reliability
	if absDir, err := filepath.Abs(dir); err == nil {
		dir = absDir
	}

	log.Printf("BatteryHandler: Using battery directory: %s", dir)
	return &BatteryHandler{batteryDir: dir}
}

// ListBatteries handles GET /api/v1/batteries
func (h *BatteryHandler) ListBatteries(c *gin.Context) {
	batteries := []models.BatteryInfo{}

	entries, err := os.ReadDir(h.batteryDir)
	if err != nil {
		log.Printf("BatteryHandler: Failed to read battery directory %s: %v", h.batteryDir, err)
		c.JSON(http.StatusOK, gin.H{"batteries": batteries})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(h.batteryDir, entry.Name())
		info, err := h.loadBatteryInfo(path, entry.Name())
		if err != nil {
			log.Printf("BatteryHandler: Failed to load battery file %s: %v", path, err)
			continue // Skip invalid files
		}
		batteries = append(batteries, *info)
	}

	log.Printf("BatteryHandler: Returning %d batteries", len(batteries))
	c.JSON(http.StatusOK, gin.H{"batteries": batteries})
}

// Resolve loads a preset by id (file name without .yaml).
func (h *BatteryHandler) Resolve(id string) (config.BatteryConfig, error) {
	id = strings.TrimSuffix(strings.TrimSpace(id), ".yaml")
	if id == "" || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return config.BatteryConfig{}, fmt.Errorf("invalid battery preset id %q", id)
	}
	return config.LoadBatteryFile(filepath.Join(h.batteryDir, id+".yaml"))
}

func (h *BatteryHandler) loadBatteryInfo(path, filename string) (*models.BatteryInfo, error) {
	b, err := config.LoadBatteryFile(path)
	if err != nil {
		return nil, err
	}

	// "home_13kwh.yaml" -> "home_13kwh"
	id := strings.TrimSuffix(filename, ".yaml")

	name := b.Name
	if name == "" {
		name = id
	}

	// Specs are what a dispatch run with this preset would use.
	p := config.MergeBattery(config.DefaultBattery(), b).ToModelParams()
	return &models.BatteryInfo{
		ID:   id,
		Name: name,
		File: path,
		Specs: models.BatterySpecs{
			CapacityKWh:    p.CapacityKWh,
			MaxChargeKW:    p.MaxChargeKW,
			MaxDischargeKW: p.MaxDischargeKW,
			Efficiency:     p.Efficiency,
		},
	}, nil
}

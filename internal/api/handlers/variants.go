package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"cooling-expander/internal/api/models"
	"cooling-expander/internal/config"

	"github.com/gin-gonic/gin"
)

// VariantDir resolves the directory holding variant preset files.
// Override with VARIANT_DIR; defaults to examples/variants under the
// working directory.
func VariantDir() string {
	dir := os.Getenv("VARIANT_DIR")
	if dir == "" {
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "examples", "variants")
		} else {
			dir = "./examples/variants"
		}
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return dir
}

// VariantHandler handles variant preset requests
type VariantHandler struct {
	variantDir string
}

// NewVariantHandler creates a new variant handler
func NewVariantHandler() *VariantHandler {
	return &VariantHandler{variantDir: VariantDir()}
}

// ListVariants handles GET /api/v1/variants
func (h *VariantHandler) ListVariants(c *gin.Context) {
	presets := []models.VariantInfo{}

	entries, err := os.ReadDir(h.variantDir)
	if err != nil {
		// Missing preset directory is not an error; just nothing to list.
		c.JSON(http.StatusOK, gin.H{"presets": presets})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(h.variantDir, entry.Name())
		variants, err := config.LoadVariantFile(path)
		if err != nil {
			continue // Skip invalid files
		}

		info := models.VariantInfo{
			ID:   strings.TrimSuffix(entry.Name(), ".yaml"),
			File: path,
		}
		for _, v := range variants {
			info.Variants = append(info.Variants, models.VariantSpecs{
				ID:                v.ID,
				EfficiencyPenalty: v.EfficiencyPenalty,
				WithdrawalRate:    v.WithdrawalRate,
			})
		}
		presets = append(presets, info)
	}

	c.JSON(http.StatusOK, gin.H{"presets": presets})
}

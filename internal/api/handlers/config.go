package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanson-travis/EclipseIndexAimTrainer/internal/game"
)

// GetConfig returns the trainer mode and display aids a client renders with
func GetConfig(engine *game.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		mode := engine.Mode()
		c.JSON(http.StatusOK, gin.H{
			"mode":      mode.Name,
			"max_balls": mode.MaxBalls,
			"max_ei":    engine.Curriculum().MaxEI,
			"aids":      mode.Aids,
			"table":     engine.Table(),
			"levels":    game.MaxLevel,
		})
	}
}

type curriculumLevel struct {
	Level        int                `json:"level"`
	LegalEIs     []float64          `json:"legal_eis"`
	NewEIs       []float64          `json:"new_eis"`
	SnapInterval float64            `json:"snap_interval"`
	Angles       map[string]float64 `json:"angles"`
}

// GetCurriculum lists the legal EIs, introductions and snap interval per level
func GetCurriculum(engine *game.Engine) gin.HandlerFunc {
	cur := engine.Curriculum()
	levels := make([]curriculumLevel, 0, game.MaxLevel)
	for level := game.MinLevel; level <= game.MaxLevel; level++ {
		legal := cur.LegalEIs(level)
		angles := make(map[string]float64, len(legal))
		for _, ei := range legal {
			angles[formatEI(ei)] = game.EIToAngle(ei)
		}
		levels = append(levels, curriculumLevel{
			Level:        level,
			LegalEIs:     legal,
			NewEIs:       cur.NewlyIntroduced(level),
			SnapInterval: game.SnapInterval(level),
			Angles:       angles,
		})
	}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"max_ei": cur.MaxEI, "levels": levels})
	}
}

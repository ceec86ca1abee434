package config

import (
	"testing"

	"github.com/hanson-travis/EclipseIndexAimTrainer/internal/game"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"TRAINER_MODE", "MAX_EI", "INPUT_SNAP", "SHOW_AIM_LINE", "SESSION_TTL_MINUTES", "RANDOM_SEED", "DATABASE_URL", "REDIS_URL"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.TrainerMode != "8-ball" || cfg.MaxEI != 8 || cfg.SessionTTLMinutes != 60 {
		t.Errorf("defaults: %+v", cfg)
	}
	if cfg.DatabaseURL != "" || cfg.RedisURL != "" {
		t.Errorf("storage should be off by default: db=%q redis=%q", cfg.DatabaseURL, cfg.RedisURL)
	}
	if cfg.ShowAimLine != nil {
		t.Errorf("unset aid should be nil")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TRAINER_MODE", "10-ball")
	t.Setenv("MAX_EI", "7")
	t.Setenv("INPUT_SNAP", "drag")
	t.Setenv("SHOW_AIM_LINE", "true")
	t.Setenv("RANDOM_SEED", "99")
	t.Setenv("SESSION_TTL_MINUTES", "not-a-number")

	cfg := Load()
	if cfg.MaxEI != 7 || cfg.RandomSeed != 99 {
		t.Errorf("got max_ei=%v seed=%d", cfg.MaxEI, cfg.RandomSeed)
	}
	if cfg.SessionTTLMinutes != 60 {
		t.Errorf("bad int should fall back, got %d", cfg.SessionTTLMinutes)
	}

	m, err := cfg.Mode()
	if err != nil {
		t.Fatalf("mode: %v", err)
	}
	if m.MaxBalls != 10 || !m.Aids.AimLine || m.Aids.Snap != game.SnapOnDrag || m.Aids.GhostBall {
		t.Errorf("mode: %+v", m)
	}
}

func TestModeRejectsUnknown(t *testing.T) {
	cfg := &Config{TrainerMode: "snooker"}
	if _, err := cfg.Mode(); err == nil {
		t.Errorf("expected error for unknown mode")
	}
	cfg = &Config{TrainerMode: "9-ball", InputSnap: "hover"}
	if _, err := cfg.Mode(); err == nil {
		t.Errorf("expected error for unknown snap mode")
	}
}

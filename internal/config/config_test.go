package config

import (
	"errors"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		envPort, envProvider, envLeagueKey, envTeamKey, envSeasons,
		envLogLevel, envLogFormat, envYahooBaseURL, envYahooAccessToken,
		envYahooTimeout, envYahooRateLimit,
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "5001" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Provider != ProviderFixture {
		t.Fatalf("expected fixture provider, got %s", cfg.Provider)
	}
	if len(cfg.Seasons) != 4 || cfg.Seasons[0] != "2022-23" {
		t.Fatalf("unexpected default seasons: %v", cfg.Seasons)
	}
	if cfg.Yahoo.Timeout != 10*time.Second {
		t.Fatalf("unexpected yahoo timeout: %v", cfg.Yahoo.Timeout)
	}
	if cfg.TeamKey != "" {
		t.Fatalf("team key must stay empty without a league key, got %s", cfg.TeamKey)
	}
}

func TestLoadRequiresLeagueKeyForYahoo(t *testing.T) {
	clearEnv(t)
	t.Setenv(envProvider, ProviderYahoo)

	if _, err := Load(); !errors.Is(err, ErrLeagueKeyRequired) {
		t.Fatalf("expected ErrLeagueKeyRequired, got %v", err)
	}
}

func TestLoadDerivesTeamKey(t *testing.T) {
	clearEnv(t)
	t.Setenv(envLeagueKey, "418.l.12345")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TeamKey != "418.l.12345.t.1" {
		t.Fatalf("expected derived team key, got %s", cfg.TeamKey)
	}

	t.Setenv(envTeamKey, "418.l.12345.t.7")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TeamKey != "418.l.12345.t.7" {
		t.Fatalf("explicit team key must win, got %s", cfg.TeamKey)
	}
}

func TestLoadParsesSeasonList(t *testing.T) {
	clearEnv(t)
	t.Setenv(envSeasons, " 2023-24 , 2024-25 ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Seasons) != 2 || cfg.Seasons[0] != "2023-24" || cfg.Seasons[1] != "2024-25" {
		t.Fatalf("unexpected seasons: %v", cfg.Seasons)
	}
}

package internal

import "testing"

func TestDefaultConfigValid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Library.Path == "" {
		t.Error("default library path should be set")
	}
	if cfg.Validation.Workers < 1 {
		t.Errorf("workers = %d, want >= 1", cfg.Validation.Workers)
	}
	if cfg.Validation.WarningsAsErrors {
		t.Error("warnings_as_errors should default to off")
	}
}

func TestLibraryPathRequired(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Library.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty library path should fail validation")
	}
}

func TestWorkersBounds(t *testing.T) {
	cfg := NewDefaultConfig()

	cfg.Validation.Workers = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero workers should fail validation")
	}

	cfg.Validation.Workers = 1000
	if err := cfg.Validate(); err == nil {
		t.Error("absurd worker count should fail validation")
	}

	cfg.Validation.Workers = 8
	if err := cfg.Validate(); err != nil {
		t.Errorf("workers=8 should pass: %v", err)
	}
}

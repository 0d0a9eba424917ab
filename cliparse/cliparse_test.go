// cliparse/cliparse_test.go
package cliparse

import (
	"testing"
)

func TestParseFlags(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("FIRESTORE_PROJECT_ID", "")
	t.Setenv("FIRESTORE_CREDENTIALS", "")
	t.Setenv("PUBLIC_BASE_URL", "")

	tests := []struct {
		name     string
		args     []string
		wantPort int
		wantErr  bool
	}{
		{"default port", []string{"-project", "demo"}, 8080, false},
		{"valid port", []string{"-p", "8081", "-project", "demo"}, 8081, false},
		{"missing project", []string{"-p", "8081"}, 0, true},
		{"non-numeric port", []string{"-p", "foo", "-project", "demo"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && cfg.Port != tt.wantPort {
				t.Errorf("ParseFlags() port = %d, want %d", cfg.Port, tt.wantPort)
			}
		})
	}
}

func TestParseFlagsEnvFallback(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("FIRESTORE_PROJECT_ID", "env-project")
	t.Setenv("PUBLIC_BASE_URL", "https://polls.example.com")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags() unexpected error: %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.ProjectID != "env-project" {
		t.Errorf("ProjectID = %q, want env-project", cfg.ProjectID)
	}
	if cfg.BaseURL != "https://polls.example.com" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
}

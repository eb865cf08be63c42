package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateMetadataFlag(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "data.json")
	if err := os.WriteFile(file, []byte("{}"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"existing_file", file, false},
		{"empty", "", true},
		{"missing_file", filepath.Join(dir, "absent.json"), true},
		{"directory", dir, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateMetadataFlag(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateMetadataFlag(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

package sanitizer

import (
	"errors"
	"testing"
)

func TestCreatePreset(t *testing.T) {
	tests := []struct {
		name               string
		preset             string
		wantOutputFormat   string
		wantValidateRanges bool
		wantStrictMode     bool
	}{
		{name: "Aladin", preset: "aladin", wantOutputFormat: "aladin", wantValidateRanges: true},
		{name: "Decimal", preset: "decimal", wantOutputFormat: "decimal", wantValidateRanges: true},
		{name: "Loose", preset: "loose", wantOutputFormat: "aladin", wantValidateRanges: false},
		{name: "Strict", preset: "strict", wantOutputFormat: "aladin", wantValidateRanges: true, wantStrictMode: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := CreatePreset(tt.preset)
			if err != nil {
				t.Fatalf("CreatePreset(%q) failed: %v", tt.preset, err)
			}

			settings := s.Settings()

			if settings.OutputFormat != tt.wantOutputFormat {
				t.Errorf("OutputFormat = %q, want %q", settings.OutputFormat, tt.wantOutputFormat)
			}

			if settings.ValidateRanges != tt.wantValidateRanges {
				t.Errorf("ValidateRanges = %v, want %v", settings.ValidateRanges, tt.wantValidateRanges)
			}

			if settings.StrictMode != tt.wantStrictMode {
				t.Errorf("StrictMode = %v, want %v", settings.StrictMode, tt.wantStrictMode)
			}
		})
	}
}

func TestCreatePreset_Unknown(t *testing.T) {
	_, err := CreatePreset("fancy")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("CreatePreset error = %v, want ErrUnknownPreset", err)
	}
}

func TestCreatePreset_LooseAcceptsOutOfRange(t *testing.T) {
	s, err := CreatePreset("loose")
	if err != nil {
		t.Fatalf("CreatePreset failed: %v", err)
	}

	result := s.Sanitize("25:00:00, 95:00:00")
	if !result.Valid {
		t.Errorf("loose preset rejected out-of-range values: %s", result.Err)
	}
}

func TestSupportedFormats(t *testing.T) {
	formats := SupportedFormats()

	if len(formats.Input) == 0 {
		t.Error("no input formats listed")
	}

	if len(formats.Output) != 3 {
		t.Fatalf("Output = %v, want 3 identifiers", formats.Output)
	}

	want := map[string]bool{"aladin": true, "decimal": true, "hms-dms": true}
	for _, f := range formats.Output {
		if !want[f] {
			t.Errorf("unexpected output format %q", f)
		}
	}
}

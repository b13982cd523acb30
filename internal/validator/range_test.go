package validator

import (
	"errors"
	"strings"
	"testing"
)

func TestRangeValidator_ValidateRA(t *testing.T) {
	v := NewRangeValidator(true)

	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{name: "Zero", value: 0, wantErr: false},
		{name: "Mid range", value: 12.5, wantErr: false},
		{name: "Just under the bound", value: 23.999999, wantErr: false},
		{name: "Exactly 24 is excluded", value: 24, wantErr: true},
		{name: "Hour 25", value: 25, wantErr: true},
		{name: "Negative", value: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateRA(tt.value)

			if tt.wantErr {
				if !errors.Is(err, ErrRAOutOfRange) {
					t.Fatalf("ValidateRA(%v) = %v, want ErrRAOutOfRange", tt.value, err)
				}

				if !strings.Contains(err.Error(), "RA out of range") {
					t.Errorf("error %q missing 'RA out of range'", err.Error())
				}

				if !strings.Contains(err.Error(), "24") {
					t.Errorf("error %q does not cite the valid bound", err.Error())
				}
			} else if err != nil {
				t.Errorf("ValidateRA(%v) = %v, want nil", tt.value, err)
			}
		})
	}
}

func TestRangeValidator_ValidateDEC(t *testing.T) {
	v := NewRangeValidator(true)

	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{name: "Both poles included", value: 90, wantErr: false},
		{name: "South pole", value: -90, wantErr: false},
		{name: "Mid range", value: -0.97, wantErr: false},
		{name: "Above north pole", value: 90.001, wantErr: true},
		{name: "Below south pole", value: -95, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateDEC(tt.value)

			if tt.wantErr {
				if !errors.Is(err, ErrDECOutOfRange) {
					t.Fatalf("ValidateDEC(%v) = %v, want ErrDECOutOfRange", tt.value, err)
				}
			} else if err != nil {
				t.Errorf("ValidateDEC(%v) = %v, want nil", tt.value, err)
			}
		})
	}
}

func TestRangeValidator_Disabled(t *testing.T) {
	v := NewRangeValidator(false)

	if v.Enabled() {
		t.Error("Enabled() = true, want false")
	}

	if err := v.ValidateRA(25); err != nil {
		t.Errorf("disabled ValidateRA(25) = %v, want nil", err)
	}

	if err := v.ValidateDEC(95); err != nil {
		t.Errorf("disabled ValidateDEC(95) = %v, want nil", err)
	}
}

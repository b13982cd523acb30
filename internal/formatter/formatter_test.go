package formatter

import (
	"strings"
	"testing"

	"astrosan/internal/models"
)

func axis(decimal float64) *models.AxisComponent {
	return &models.AxisComponent{Valid: true, Decimal: decimal}
}

func TestFormatter_Aladin(t *testing.T) {
	f := New(FormatAladin, 6)

	tests := []struct {
		name string
		ra   float64
		dec  float64
		want string
	}{
		{
			name: "Fixed width fields",
			ra:   12.582438888888889,
			dec:  12.582438888888889,
			want: "12 34 56.780, +12 34 56.780",
		},
		{
			name: "Single digit fields zero padded",
			ra:   1.5,
			dec:  5.25,
			want: "01 30 00.000, +05 15 00.000",
		},
		{
			name: "Negative near-zero declination keeps its sign",
			ra:   16.620277777777776,
			dec:  -(58.0/60 + 20.0/3600),
			want: "16 37 13.000, -00 58 20.000",
		},
		{
			name: "South pole",
			ra:   0,
			dec:  -90,
			want: "00 00 00.000, -90 00 00.000",
		},
		{
			name: "Out-of-range values render without crashing",
			ra:   25,
			dec:  95,
			want: "25 00 00.000, +95 00 00.000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Format(axis(tt.ra), axis(tt.dec))
			if got != tt.want {
				t.Errorf("Format(%v, %v) = %q, want %q", tt.ra, tt.dec, got, tt.want)
			}
		})
	}
}

func TestFormatter_Decimal(t *testing.T) {
	tests := []struct {
		name      string
		precision int
		ra        float64
		dec       float64
		want      string
	}{
		{name: "Default precision", precision: 6, ra: 12.582439, dec: -0.972222, want: "12.582439, -0.972222"},
		{name: "Precision 2", precision: 2, ra: 12.5, dec: 45.25, want: "12.50, 45.25"},
		{name: "Precision 0 drops the point", precision: 0, ra: 12.6, dec: 45.2, want: "13, 45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(FormatDecimal, tt.precision)

			got := f.Format(axis(tt.ra), axis(tt.dec))
			if got != tt.want {
				t.Errorf("Format = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatter_DecimalPrecisionProperty(t *testing.T) {
	// The rendered strings carry exactly the configured number of digits
	// after the decimal point, for every precision.
	for precision := 0; precision <= 10; precision++ {
		f := New(FormatDecimal, precision)
		out := f.Format(axis(12.582438888888889), axis(-0.9722222222))

		for _, part := range strings.Split(out, ", ") {
			idx := strings.Index(part, ".")

			digits := 0
			if idx >= 0 {
				digits = len(part) - idx - 1
			}

			if digits != precision {
				t.Errorf("precision %d: %q has %d fraction digits", precision, part, digits)
			}
		}
	}
}

func TestFormatter_HMSDMS(t *testing.T) {
	f := New(FormatHMSDMS, 6)

	tests := []struct {
		name string
		ra   float64
		dec  float64
		want string
	}{
		{
			name: "Natural widths with explicit plus",
			ra:   12.582438888888889,
			dec:  12.582438888888889,
			want: `12h 34m 56.780s, +12° 34' 56.780"`,
		},
		{
			name: "No zero padding",
			ra:   1.5,
			dec:  -5.25,
			want: `1h 30m 0.000s, -5° 15' 0.000"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Format(axis(tt.ra), axis(tt.dec))
			if got != tt.want {
				t.Errorf("Format = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatter_SecondsCarry(t *testing.T) {
	f := New(FormatAladin, 6)

	// 11.9999999999h would naively render a 60.000 seconds field.
	got := f.Format(axis(11.9999999999), axis(0))

	if strings.Contains(got, "60.000") {
		t.Errorf("Format = %q, seconds field not carried", got)
	}

	if !strings.HasPrefix(got, "12 00 00.000") {
		t.Errorf("Format = %q, want carry into the hour field", got)
	}
}

func TestIsSupported(t *testing.T) {
	for _, name := range OutputFormats() {
		if !IsSupported(name) {
			t.Errorf("IsSupported(%q) = false", name)
		}
	}

	if IsSupported("sexagesimal") {
		t.Error(`IsSupported("sexagesimal") = true`)
	}
}

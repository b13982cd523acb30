package classifier

import "testing"

func TestClassifier_Classify_AlreadyValid(t *testing.T) {
	c := New()

	// Normalization has already collapsed whitespace around the comma.
	d := c.Classify("12 34 56.780,+12 34 56.780", "12 34 56.780, +12 34 56.780", "aladin")

	if d.Outcome != OutcomeAlreadyValid {
		t.Fatalf("Outcome = %q, want %q", d.Outcome, OutcomeAlreadyValid)
	}

	if d.Passthrough != "12 34 56.780, +12 34 56.780" {
		t.Errorf("Passthrough = %q, want the trimmed original", d.Passthrough)
	}
}

func TestClassifier_Classify_AlreadyValidOnlyForAladin(t *testing.T) {
	c := New()

	d := c.Classify("12 34 56.780,+12 34 56.780", "12 34 56.780, +12 34 56.780", "decimal")

	if d.Outcome != OutcomeCoordinates {
		t.Errorf("Outcome = %q, want %q for non-aladin target", d.Outcome, OutcomeCoordinates)
	}
}

func TestClassifier_Classify_CatalogNames(t *testing.T) {
	c := New()

	tests := []struct {
		input string
		want  string
	}{
		{input: "M31", want: "M31"},
		{input: "m31", want: "M31"},
		{input: "M 104", want: "M 104"},
		{input: "NGC 1234", want: "NGC 1234"},
		{input: "ic434", want: "IC434"},
		{input: "UGC 12591", want: "UGC 12591"},
		{input: "HIP 87937", want: "HIP 87937"},
		{input: "HD 209458", want: "HD 209458"},
		{input: "SAO 308", want: "SAO 308"},
		{input: "Sh2-101", want: "SH2-101"},
		{input: "Barnard 33", want: "BARNARD 33"},
		{input: "PK 164+31.1", want: "PK 164+31.1"},
		{input: "LBN 974", want: "LBN 974"},
		{input: "ALPHA CENTAURI", want: "ALPHA CENTAURI"},
		{input: "51 ERI", want: "51 ERI"},
		{input: "R AND", want: "R AND"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d := c.Classify(tt.input, tt.input, "aladin")

			if d.Outcome != OutcomeObjectName {
				t.Fatalf("Classify(%q).Outcome = %q, want %q", tt.input, d.Outcome, OutcomeObjectName)
			}

			if d.Passthrough != tt.want {
				t.Errorf("Passthrough = %q, want canonical %q", d.Passthrough, tt.want)
			}
		})
	}
}

func TestClassifier_Classify_CatalogWinsOverCoordinateLikeness(t *testing.T) {
	c := New()

	// "51 ERI" contains a number but must classify as an object name.
	d := c.Classify("51 ERI", "51 ERI", "aladin")
	if d.Outcome != OutcomeObjectName {
		t.Errorf("Outcome = %q, want object-name", d.Outcome)
	}
}

func TestClassifier_Classify_CoordinateHints(t *testing.T) {
	c := New()

	tests := []struct {
		name  string
		input string
	}{
		{name: "Hour marker", input: "12h 34m 56.78s,12d 34' 56\""},
		{name: "Signed number", input: "16 37 13,-00 58 20"},
		{name: "Decimal pair", input: "12.582,45.123"},
		{name: "Colon sexagesimal", input: "12:34:56,12:34:56"},
		{name: "Axis label", input: "RA 12.5 DEC 45.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := c.Classify(tt.input, tt.input, "aladin")
			if d.Outcome != OutcomeCoordinates {
				t.Errorf("Classify(%q).Outcome = %q, want coordinates", tt.input, d.Outcome)
			}
		})
	}
}

func TestClassifier_Classify_FallthroughKeepsOriginal(t *testing.T) {
	c := New()

	d := c.Classify("some unknown object", "  some unknown object  ", "aladin")

	if d.Outcome != OutcomeObjectName {
		t.Fatalf("Outcome = %q, want object-name", d.Outcome)
	}

	if d.Passthrough != "some unknown object" {
		t.Errorf("Passthrough = %q, want the trimmed original", d.Passthrough)
	}
}

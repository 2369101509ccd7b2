package parser

import (
	"reflect"
	"testing"

	"pcst_ai/internal/models"
)

type sections = models.ResponseSections

const fullCompletion = `ANALYSIS:
The valve is not tracking its setpoint.

POSSIBLE CAUSES:
1. Worn seal
2. Cavitation
3. Positioner drift

TROUBLESHOOTING STEPS:
1. Isolate the valve and apply LOTO.
2. Check air supply pressure.

SAFETY WARNINGS:
- Verify isolation before work.
- Wear PPE.

EQUIPMENT NOTES:
Fisher DVC6200 positioners
need recalibration after seal replacement.
`

func TestParseTroubleshooting_FullCompletion(t *testing.T) {
	got := ParseTroubleshooting(fullCompletion)

	if got.Analysis != "The valve is not tracking its setpoint." {
		t.Fatalf("analysis: got %q", got.Analysis)
	}
	if want := []string{"1. Worn seal", "2. Cavitation", "3. Positioner drift"}; !reflect.DeepEqual(got.Causes, want) {
		t.Fatalf("causes: got %q, want %q", got.Causes, want)
	}
	if want := []string{"1. Isolate the valve and apply LOTO.", "2. Check air supply pressure."}; !reflect.DeepEqual(got.Steps, want) {
		t.Fatalf("steps: got %q, want %q", got.Steps, want)
	}
	if want := []string{"- Verify isolation before work.", "- Wear PPE."}; !reflect.DeepEqual(got.SafetyWarnings, want) {
		t.Fatalf("safety warnings: got %q, want %q", got.SafetyWarnings, want)
	}
	if want := "Fisher DVC6200 positioners need recalibration after seal replacement."; got.EquipmentNotes != want {
		t.Fatalf("equipment notes: got %q, want %q", got.EquipmentNotes, want)
	}
}

func TestParseTroubleshooting_NeverFailsAndAlwaysHasAllFields(t *testing.T) {
	inputs := []string{
		"",
		"\n\n   \n",
		"random chatter with no headings",
		"1. orphan item\n- orphan dash",
		"EQUIPMENT NOTES:",
		"\x00\xff\xfe garbage",
		"SAFETY WARNINGS:\nANALYSIS:\nPOSSIBLE CAUSES:",
	}
	for _, in := range inputs {
		got := ParseTroubleshooting(in)
		if got.Causes == nil || got.Steps == nil || got.SafetyWarnings == nil {
			t.Fatalf("nil slice for input %q: %+v", in, got)
		}
	}
}

func TestParseTroubleshooting_Rules(t *testing.T) {
	cases := []struct {
		name  string
		input string
		check func(t *testing.T, got sections)
	}{
		{
			name:  "inline analysis",
			input: "ANALYSIS: Pump seal leak",
			check: func(t *testing.T, got sections) {
				if got.Analysis != "Pump seal leak" {
					t.Fatalf("analysis: got %q", got.Analysis)
				}
			},
		},
		{
			name:  "lowercase heading with inline text",
			input: "analysis: suction strainer blocked",
			check: func(t *testing.T, got sections) {
				if got.Analysis != "suction strainer blocked" {
					t.Fatalf("analysis: got %q", got.Analysis)
				}
			},
		},
		{
			name:  "markdown decorated heading",
			input: "**ANALYSIS:** Low discharge pressure",
			check: func(t *testing.T, got sections) {
				if got.Analysis != "** Low discharge pressure" {
					t.Fatalf("analysis: got %q", got.Analysis)
				}
			},
		},
		{
			name:  "analysis fallback keeps only first line",
			input: "ANALYSIS:\nfirst line\nsecond line",
			check: func(t *testing.T, got sections) {
				if got.Analysis != "first line" {
					t.Fatalf("analysis: got %q", got.Analysis)
				}
			},
		},
		{
			name:  "numbered lines before any heading are dropped",
			input: "1. stray\n2. stray\nPOSSIBLE CAUSES:\n1. kept",
			check: func(t *testing.T, got sections) {
				if !reflect.DeepEqual(got.Causes, []string{"1. kept"}) {
					t.Fatalf("causes: got %q", got.Causes)
				}
			},
		},
		{
			name:  "non dashed lines in safety warnings contribute nothing",
			input: "SAFETY WARNINGS:\nWear gloves.\n* Use a harness.\n1. Numbered",
			check: func(t *testing.T, got sections) {
				if len(got.SafetyWarnings) != 0 {
					t.Fatalf("safety warnings: got %q", got.SafetyWarnings)
				}
			},
		},
		{
			name:  "notes joined with single spaces and trimmed",
			input: "EQUIPMENT NOTES:\n  line one  \n\n line two\t\nline three\n",
			check: func(t *testing.T, got sections) {
				if got.EquipmentNotes != "line one line two line three" {
					t.Fatalf("notes: got %q", got.EquipmentNotes)
				}
			},
		},
		{
			name:  "numbered line inside notes is dropped",
			input: "EQUIPMENT NOTES:\nsee manual\n1. not a note",
			check: func(t *testing.T, got sections) {
				if got.EquipmentNotes != "see manual" {
					t.Fatalf("notes: got %q", got.EquipmentNotes)
				}
			},
		},
		{
			name:  "heading wins over numbered prefix",
			input: "POSSIBLE CAUSES:\n1. Worn seal\n2. TROUBLESHOOTING STEPS: begin here\n3. Check flow",
			check: func(t *testing.T, got sections) {
				if !reflect.DeepEqual(got.Causes, []string{"1. Worn seal"}) {
					t.Fatalf("causes: got %q", got.Causes)
				}
				if !reflect.DeepEqual(got.Steps, []string{"3. Check flow"}) {
					t.Fatalf("steps: got %q", got.Steps)
				}
			},
		},
		{
			name:  "only single digit prefixes count",
			input: "TROUBLESHOOTING STEPS:\n9. ninth\n10. tenth\n0. zero",
			check: func(t *testing.T, got sections) {
				// "10." starts with "1." so it is kept; "0." is not a list prefix.
				if !reflect.DeepEqual(got.Steps, []string{"9. ninth", "10. tenth"}) {
					t.Fatalf("steps: got %q", got.Steps)
				}
			},
		},
		{
			name:  "repeated analysis heading overwrites",
			input: "ANALYSIS: first\nANALYSIS: second",
			check: func(t *testing.T, got sections) {
				if got.Analysis != "second" {
					t.Fatalf("analysis: got %q", got.Analysis)
				}
			},
		},
		{
			name:  "crlf line endings",
			input: "POSSIBLE CAUSES:\r\n1. Cavitation\r\n",
			check: func(t *testing.T, got sections) {
				if !reflect.DeepEqual(got.Causes, []string{"1. Cavitation"}) {
					t.Fatalf("causes: got %q", got.Causes)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, ParseTroubleshooting(tc.input))
		})
	}
}

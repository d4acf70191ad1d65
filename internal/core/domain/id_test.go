package domain

import "testing"

func TestParseID(t *testing.T) {
	valid := map[string]int64{
		"0":          0,
		"7":          7,
		"123456":     123456,
		"0042":       42,
		"9007199254": 9007199254,
	}
	for raw, want := range valid {
		got, ok := ParseID(raw)
		if !ok {
			t.Fatalf("ParseID(%q) rejected, want %d", raw, want)
		}
		if got != want {
			t.Fatalf("ParseID(%q) = %d, want %d", raw, got, want)
		}
	}

	invalid := []string{
		"", "-1", "+1", "1.5", "1e3", " 42", "42 ", "abc", "12a", "a12",
		"١٢٣", // non-ASCII digits
		"999999999999999999999999999999", // overflow
	}
	for _, raw := range invalid {
		if _, ok := ParseID(raw); ok {
			t.Fatalf("ParseID(%q) accepted, want rejection", raw)
		}
	}
}

func TestResourceName(t *testing.T) {
	got := ResourceName(KindCampaign, "1234567890", 42)
	if got != "customers/1234567890/campaigns/42" {
		t.Fatalf("unexpected resource name: %s", got)
	}
	got = ResourceName(KindCampaignBudget, "1234567890", -1)
	if got != "customers/1234567890/campaignBudgets/-1" {
		t.Fatalf("unexpected placeholder name: %s", got)
	}
}

func TestTrailingID(t *testing.T) {
	if got := TrailingID("customers/123/campaigns/456"); got != "456" {
		t.Fatalf("TrailingID = %q, want 456", got)
	}
	if got := TrailingID("456"); got != "456" {
		t.Fatalf("TrailingID without separators = %q, want 456", got)
	}
}

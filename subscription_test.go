package aforro

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/aforro/date"
)

// writeConfig writes a subscriptions file in a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "subscriptions.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}
	return path
}

func TestLoadSubscriptions(t *testing.T) {
	path := writeConfig(t, `[
		{"series": "E", "subscription_number": "12345", "acquisition_date": "2019-05-15", "units": 100},
		{"series": "F", "subscription_number": "67890", "acquisition_date": "2022-11-02", "units": 50}
	]`)

	subs, err := LoadSubscriptions(path)
	if err != nil {
		t.Fatalf("LoadSubscriptions() unexpected error = %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("LoadSubscriptions() returned %d subscriptions, want 2", len(subs))
	}
	got := subs[0]
	if got.Series != SeriesE || got.Number != "12345" || got.Units != 100 {
		t.Errorf("first subscription = %+v", got)
	}
	if got.AcquisitionDate != date.New(2019, 5, 15) {
		t.Errorf("AcquisitionDate = %s, want 2019-05-15", got.AcquisitionDate)
	}
	if got.Value != nil {
		t.Error("a freshly loaded subscription must have no valuation")
	}
}

func TestLoadSubscriptionsEmpty(t *testing.T) {
	subs, err := LoadSubscriptions(writeConfig(t, `[]`))
	if err != nil {
		t.Fatalf("LoadSubscriptions() unexpected error = %v", err)
	}
	if len(subs) != 0 {
		t.Errorf("LoadSubscriptions() returned %d subscriptions, want 0", len(subs))
	}
}

func TestLoadSubscriptionsErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{not json`},
		{"unknown series", `[{"series": "Z", "subscription_number": "1", "acquisition_date": "2020-01-01", "units": 1}]`},
		{"negative units", `[{"series": "A", "subscription_number": "1", "acquisition_date": "2020-01-01", "units": -1}]`},
		{"missing acquisition date", `[{"series": "A", "subscription_number": "1", "units": 1}]`},
		{"invalid acquisition date", `[{"series": "A", "subscription_number": "1", "acquisition_date": "someday", "units": 1}]`},
		{"future acquisition date", `[{"series": "A", "subscription_number": "1", "acquisition_date": "2999-01-01", "units": 1}]`},
	}
	for _, tc := range tests {
		if _, err := LoadSubscriptions(writeConfig(t, tc.content)); err == nil {
			t.Errorf("%s: LoadSubscriptions() expected an error", tc.name)
		}
	}
}

func TestLoadSubscriptionsMissingFile(t *testing.T) {
	if _, err := LoadSubscriptions(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("LoadSubscriptions() expected an error for a missing file")
	}
}

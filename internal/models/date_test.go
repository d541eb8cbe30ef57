package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.March, 5)
	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"2024-03-05"` {
		t.Fatalf("got %s", out)
	}

	var parsed Date
	if err := json.Unmarshal([]byte(`"2023-12-31"`), &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if parsed.String() != "2023-12-31" {
		t.Fatalf("got %s", parsed)
	}
	if err := json.Unmarshal([]byte(`"31/12/2023"`), &parsed); err == nil {
		t.Fatal("expected error for bad layout")
	}
}

func TestDateNullRendering(t *testing.T) {
	entry := struct {
		End  *Date `json:"end"`
		Zero Date  `json:"zero"`
	}{}
	out, _ := json.Marshal(entry)
	if string(out) != `{"end":null,"zero":null}` {
		t.Fatalf("got %s", out)
	}
}

func TestDateScan(t *testing.T) {
	cases := []interface{}{
		time.Date(2022, time.July, 9, 13, 45, 0, 0, time.UTC),
		"2022-07-09",
		"2022-07-09 00:00:00+00:00",
		[]byte("2022-07-09T00:00:00Z"),
	}
	for _, src := range cases {
		var d Date
		if err := d.Scan(src); err != nil {
			t.Fatalf("scan %v: %v", src, err)
		}
		if d.String() != "2022-07-09" {
			t.Fatalf("scan %v: got %s", src, d)
		}
	}
	var d Date
	if err := d.Scan(42); err == nil {
		t.Fatal("expected error for int")
	}
}

func TestTimelineIsCurrent(t *testing.T) {
	end := NewDate(2020, time.January, 1)
	if !(TimelineEntry{}).IsCurrent() {
		t.Fatal("entry without end date must be current")
	}
	if (TimelineEntry{EndDate: &end}).IsCurrent() {
		t.Fatal("entry with end date must not be current")
	}
}

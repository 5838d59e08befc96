package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "date only", input: "2024-03-15", want: "2024-03-15"},
		{name: "rfc3339", input: "2024-03-15T18:30:00Z", want: "2024-03-15"},
		{name: "padded", input: " 2024-03-15 ", want: "2024-03-15"},
		{name: "garbage", input: "15/03/2024", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) expected error, got %v", tt.input, d)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) failed: %v", tt.input, err)
			}
			if got := d.Format("2006-01-02"); got != tt.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestDateJSON(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2024-03-15"`), &d); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != `"2024-03-15"` {
		t.Errorf("Marshal = %s, want %q", out, "2024-03-15")
	}

	// Null and empty both decode to the zero date
	for _, raw := range []string{`null`, `""`} {
		var z Date
		if err := json.Unmarshal([]byte(raw), &z); err != nil {
			t.Fatalf("Unmarshal %s failed: %v", raw, err)
		}
		if !z.IsZero() {
			t.Errorf("Unmarshal %s = %v, want zero date", raw, z)
		}
	}

	zero, err := json.Marshal(Date{})
	if err != nil {
		t.Fatalf("Marshal zero failed: %v", err)
	}
	if string(zero) != `""` {
		t.Errorf("Marshal zero = %s, want empty string", zero)
	}
}

func TestNewDateKeepsCalendarDay(t *testing.T) {
	d := NewDate(time.Date(2024, 3, 15, 23, 45, 12, 0, time.UTC))
	if d.Hour() != 0 || d.Minute() != 0 {
		t.Errorf("NewDate kept time-of-day: %v", d)
	}
	if d.Format("2006-01-02") != "2024-03-15" {
		t.Errorf("NewDate day = %s, want 2024-03-15", d.Format("2006-01-02"))
	}
}

package utils

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseCSV(t *testing.T) {
	csvData := `employee_id,timestamp,kind,device_id
101,2025-12-22T08:00:00Z,SESSION_START,terminal-1
101,2025-12-22T17:02:00Z,SESSION_END,terminal-1`

	reader := strings.NewReader(csvData)

	got, err := ParseCSV(reader)
	if err != nil {
		t.Fatalf("ParseCSV returned error: %v", err)
	}

	want := [][]string{
		{"employee_id", "timestamp", "kind", "device_id"},
		{"101", "2025-12-22T08:00:00Z", "SESSION_START", "terminal-1"},
		{"101", "2025-12-22T17:02:00Z", "SESSION_END", "terminal-1"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseCSV returned %+v, want %+v", got, want)
	}
}

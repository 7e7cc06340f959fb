package db

import "testing"

func TestDecodeReportData(t *testing.T) {
	valid := `{"total":1200.50,"months":["2026-01","2026-02"]}`
	if got := string(decodeReportData(&valid)); got != valid {
		t.Errorf("valid payload = %s, want %s", got, valid)
	}

	array := `[1,2,3]`
	if got := string(decodeReportData(&array)); got != array {
		t.Errorf("array payload = %s, want %s", got, array)
	}

	malformed := `{"total":`
	if got := string(decodeReportData(&malformed)); got != `{}` {
		t.Errorf("malformed payload = %s, want {}", got)
	}

	if got := string(decodeReportData(nil)); got != `{}` {
		t.Errorf("nil payload = %s, want {}", got)
	}

	empty := ""
	if got := string(decodeReportData(&empty)); got != `{}` {
		t.Errorf("empty payload = %s, want {}", got)
	}
}

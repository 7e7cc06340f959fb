package util

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"ana@example.com",
		"first.last@sub.domain.org",
		"user+tag@mail.co",
	}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = false, want true", email)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"@no-local.com",
		"no-domain@",
		"spaces in@example.com",
		"no-tld@example",
	}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = true, want false", email)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	cases := map[string]string{
		"Ana@Example.COM":    "ana@example.com",
		"  ana@example.com ": "ana@example.com",
		"ana@example.com":    "ana@example.com",
	}
	for in, want := range cases {
		if got := NormalizeEmail(in); got != want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if !ValidatePassword("pw123456") {
		t.Error("ValidatePassword(pw123456) = false, want true")
	}
	if ValidatePassword("short7") {
		t.Error("ValidatePassword(short7) = true, want false")
	}
	if ValidatePassword("") {
		t.Error("ValidatePassword(\"\") = true, want false")
	}
}

func TestValidateTransactionType(t *testing.T) {
	for _, typ := range []string{"income", "expense", "Income", "EXPENSE"} {
		if !ValidateTransactionType(typ) {
			t.Errorf("ValidateTransactionType(%q) = false, want true", typ)
		}
	}
	for _, typ := range []string{"", "transfer", "incomes"} {
		if ValidateTransactionType(typ) {
			t.Errorf("ValidateTransactionType(%q) = true, want false", typ)
		}
	}
}

package text_test

import (
	"testing"

	"restaurant_scout/internal/text"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"":                  "",
		"Kadıköy":           "kadikoy",
		"ÜSKÜDAR":           "uskudar",
		"İstanbul":          "istanbul",
		"Beşiktaş":          "besiktas",
		"Çiğ Köfte":         "cig kofte",
		"Gaziosmanpaşa":     "gaziosmanpasa",
		"Moda, Kadıköy/İst": "moda, kadikoy/ist",
		"ISPARTA":           "isparta",
		"café":              "cafe",
	}
	for in, want := range cases {
		if got := text.Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"", "Şişli", "ŞİŞLİ", "ıiIİ", "Ağaçlı Yol 12/3", "Кафе", "crème brûlée", "ǅemal"}
	for _, in := range inputs {
		once := text.Normalize(in)
		if twice := text.Normalize(once); twice != once {
			t.Errorf("not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestLowerKeepsTurkishLetters(t *testing.T) {
	if got := text.Lower("KÖFTECİ"); got != "köfteci" {
		t.Fatalf("Lower = %q", got)
	}
	if got := text.Lower("ISLAK"); got != "ıslak" {
		t.Fatalf("Lower = %q", got)
	}
}

func TestFold(t *testing.T) {
	if got := text.Fold("Üsküdar_Köfteci_4.5+"); got != "Uskudar_Kofteci_4.5+" {
		t.Fatalf("Fold = %q", got)
	}
	if got := text.Fold("Işık_İnegöl"); got != "Isik_Inegol" {
		t.Fatalf("Fold = %q", got)
	}
}

func TestContains(t *testing.T) {
	if !text.Contains("Moda, Kadıköy, İstanbul", "kadikoy") {
		t.Fatal("expected diacritic-insensitive match")
	}
	if text.Contains("Moda", "") {
		t.Fatal("empty needle must not match")
	}
}

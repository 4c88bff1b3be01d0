package catalog

import (
	"reflect"
	"testing"

	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		lang string
		want language.Tag
	}{
		{"en", language.English},
		{"en-GB", language.English},
		{"ru", language.Russian},
		{"ru-RU", language.Russian},
		{"", language.English},
		{"not a tag!", language.English},
	}

	for _, tt := range tests {
		if got := Match(tt.lang); got != tt.want {
			t.Errorf("Match(%q) = %v, want %v", tt.lang, got, tt.want)
		}
	}
}

func TestIsSupported(t *testing.T) {
	if !IsSupported("ru") {
		t.Error("ru should be supported")
	}
	if IsSupported("!!") {
		t.Error("garbage tag should not be supported")
	}
}

func TestLabelsFor(t *testing.T) {
	en := LabelsFor("en")
	if en.SelectSize != "Select a size" {
		t.Errorf("en SelectSize = %q", en.SelectSize)
	}
	if en.AddToCart != "Add to cart" {
		t.Errorf("en AddToCart = %q", en.AddToCart)
	}

	ru := LabelsFor("ru")
	if ru.SelectSize != "Выберите размер" {
		t.Errorf("ru SelectSize = %q", ru.SelectSize)
	}
	if ru.AddToCart != "В корзину" {
		t.Errorf("ru AddToCart = %q", ru.AddToCart)
	}
}

func TestLabelsComplete(t *testing.T) {
	for _, lang := range Languages() {
		v := reflect.ValueOf(LabelsFor(lang))
		for i := 0; i < v.NumField(); i++ {
			if v.Field(i).String() == "" {
				t.Errorf("%s: label %s is empty", lang, v.Type().Field(i).Name)
			}
		}
	}
}

func TestProduct(t *testing.T) {
	p := Product("en")
	if p.Price.Amount != 14999 {
		t.Errorf("Price.Amount = %d, want 14999", p.Price.Amount)
	}
	if len(p.Sizes) != 5 || p.Sizes[0] != "XS" || p.Sizes[4] != "XL" {
		t.Errorf("Sizes = %v, want XS..XL", p.Sizes)
	}
	if Product("ru").Title != "Кожаные лоферы" {
		t.Errorf("ru title = %q", Product("ru").Title)
	}

	// Callers get their own copy of the size list
	p.Sizes[0] = "XXS"
	if Product("en").Sizes[0] != "XS" {
		t.Error("Product() should not share the size slice")
	}
}

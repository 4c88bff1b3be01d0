// Package catalog holds the static product shown on the detail screen and
// the localized strings used to present it.
package catalog

import (
	"golang.org/x/text/language"

	"github.com/marcus/pdp/internal/models"
)

// Supported display languages, default first
var supported = []language.Tag{
	language.English,
	language.Russian,
}

var matcher = language.NewMatcher(supported)

// Match picks the closest supported language for a BCP 47 tag such as
// "ru" or "en-GB". Unparseable or unsupported tags fall back to English.
func Match(lang string) language.Tag {
	tag, ok := lookup(lang)
	if !ok {
		return supported[0]
	}
	return tag
}

// IsSupported reports whether lang resolves to one of the supported languages
func IsSupported(lang string) bool {
	_, ok := lookup(lang)
	return ok
}

// Languages returns the supported language codes
func Languages() []string {
	out := make([]string, len(supported))
	for i, t := range supported {
		out[i] = t.String()
	}
	return out
}

func lookup(lang string) (language.Tag, bool) {
	t, err := language.Parse(lang)
	if err != nil {
		return language.Und, false
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return language.Und, false
	}
	return supported[idx], true
}

// Labels are the user-facing strings of the screen
type Labels struct {
	SelectSize  string // disabled purchase action
	AddToCart   string // enabled purchase action, followed by the price
	Separator   string // between AddToCart and the price
	SizeHeading string
	InfoOK      string
	Added       string // status line after a confirmed purchase
	NoSize      string // status line when confirming without a size

	// Key help
	PrevSize   string
	NextSize   string
	Choose     string
	ChooseNth  string
	Confirm    string
	Info       string
	MoreKeys   string
	Quit       string
	ModalHints string
}

var labels = map[language.Tag]Labels{
	language.English: {
		SelectSize:  "Select a size",
		AddToCart:   "Add to cart",
		Separator:   " · ",
		SizeHeading: "Size",
		InfoOK:      "Got it",
		Added:       "Added to cart",
		NoSize:      "Error: no size selected",

		PrevSize:   "prev size",
		NextSize:   "next size",
		Choose:     "select size",
		ChooseNth:  "select nth size",
		Confirm:    "add to cart",
		Info:       "info",
		MoreKeys:   "more keys",
		Quit:       "quit",
		ModalHints: "tab switch · enter confirm · esc close",
	},
	language.Russian: {
		SelectSize:  "Выберите размер",
		AddToCart:   "В корзину",
		Separator:   " · ",
		SizeHeading: "Размер",
		InfoOK:      "Понятно",
		Added:       "Добавлено в корзину",
		NoSize:      "Ошибка: размер не выбран",

		PrevSize:   "пред. размер",
		NextSize:   "след. размер",
		Choose:     "выбрать размер",
		ChooseNth:  "размер по номеру",
		Confirm:    "в корзину",
		Info:       "информация",
		MoreKeys:   "ещё клавиши",
		Quit:       "выход",
		ModalHints: "tab перейти · enter выбрать · esc закрыть",
	},
}

// LabelsFor returns the labels for lang, see Match
func LabelsFor(lang string) Labels {
	return labels[Match(lang)]
}

// BasePrice is the price of the loafers in rubles
var BasePrice = models.Price{Amount: 14999, Symbol: "₽"}

const loafersSKU = "loafers-leather-01"

var products = map[language.Tag]models.Product{
	language.English: {
		SKU:   loafersSKU,
		Title: "Leather loafers",
		Description: "Loafers made of genuine leather. Shaped vamp with a textured seam along the contour.\n\n" +
			"Tapered toe. Leather insole and lining.\n\n" +
			"Rubberized sole. A dust bag is included.",
		InfoTitle: "Additional information",
		InfoText:  "These are very high quality leather loafers, made with love. Hurry up and buy!",
		Sizes:     models.StandardSizes(),
		Price:     BasePrice,
	},
	language.Russian: {
		SKU:   loafersSKU,
		Title: "Кожаные лоферы",
		Description: "Лоферы из натуральной кожи. Фигурная союзка с фактурным швом по контуру.\n\n" +
			"Зауженный мыс. Кожаная стелька и подкладка.\n\n" +
			"Прорезиненная подошва. В комплект входит пыльник.",
		InfoTitle: "Дополнительная информация",
		InfoText:  "Это очень качественные кожаные лоферы, сделанные с любовью. Покупайте скорее!",
		Sizes:     models.StandardSizes(),
		Price:     BasePrice,
	},
}

// Product returns the catalog product localized for lang
func Product(lang string) models.Product {
	p := products[Match(lang)]
	p.Sizes = append([]models.Size(nil), p.Sizes...)
	return p
}

package texts

import "github.com/Ramilbey/china-agent-bot/internal/domain"

// MenuID identifies a reply keyboard
type MenuID string

const (
	MenuMain     MenuID = "main"
	MenuServices MenuID = "services"
	MenuLanguage MenuID = "language"
)

// Fixed button grids. Rows and order are part of the bot's look and are
// the same in every language; only the captions differ.
var menuGrids = map[MenuID][][]Label{
	MenuMain: {
		{LabelServices, LabelContact},
		{LabelPricing, LabelHelp},
		{LabelRequest},
		{LabelLanguage, LabelAbout},
	},
	MenuServices: {
		{LabelSvcTranslation, LabelSvcSourcing},
		{LabelSvcAdmission, LabelSvcFair},
		{LabelSvcGuide},
		{LabelBack},
	},
}

// MenuCaptions returns the localized caption grid for menu. The
// language selector is a single fixed row shared by all languages.
func MenuCaptions(lang domain.Language, menu MenuID) [][]string {
	if menu == MenuLanguage {
		return [][]string{{
			LanguageButtonFor(domain.LanguageUzbek),
			LanguageButtonFor(domain.LanguageRussian),
			LanguageButtonFor(domain.LanguageEnglish),
		}}
	}

	grid, ok := menuGrids[menu]
	if !ok {
		return nil
	}
	out := make([][]string, 0, len(grid))
	for _, row := range grid {
		captions := make([]string, 0, len(row))
		for _, label := range row {
			captions = append(captions, Button(lang, label))
		}
		out = append(out, captions)
	}
	return out
}

// ServiceTopics maps the opaque identifiers used in inline callback
// data to the service detail texts. The inline variant mirrors the
// services submenu one-for-one.
var ServiceTopics = map[string]Topic{
	"translation": TopicSvcTranslation,
	"sourcing":    TopicSvcSourcing,
	"admission":   TopicSvcAdmission,
	"fair":        TopicSvcFair,
	"guide":       TopicSvcGuide,
}

// ServiceOrder fixes the inline button ordering
var ServiceOrder = []string{"translation", "sourcing", "admission", "fair", "guide"}

// ServiceLabel returns the submenu label for an opaque service id
func ServiceLabel(id string) (Label, bool) {
	switch id {
	case "translation":
		return LabelSvcTranslation, true
	case "sourcing":
		return LabelSvcSourcing, true
	case "admission":
		return LabelSvcAdmission, true
	case "fair":
		return LabelSvcFair, true
	case "guide":
		return LabelSvcGuide, true
	}
	return "", false
}

package texts

import "github.com/Ramilbey/china-agent-bot/internal/domain"

// Label identifies a button independently of its localized caption
type Label string

const (
	LabelServices Label = "services"
	LabelContact  Label = "contact"
	LabelPricing  Label = "pricing"
	LabelHelp     Label = "help"
	LabelRequest  Label = "request"
	LabelLanguage Label = "language"
	LabelAbout    Label = "about"
	LabelBack     Label = "back"
	LabelCancel   Label = "cancel"

	LabelSvcTranslation Label = "svc_translation"
	LabelSvcSourcing    Label = "svc_sourcing"
	LabelSvcAdmission   Label = "svc_admission"
	LabelSvcFair        Label = "svc_fair"
	LabelSvcGuide       Label = "svc_guide"
)

// LanguageButtons maps the selector captions to language codes. The
// selector keyboard is identical in every language, and these captions
// are recognized no matter which language the user is currently on.
var LanguageButtons = map[string]domain.Language{
	"🇺🇿 O‘zbek":  domain.LanguageUzbek,
	"🇷🇺 Русский": domain.LanguageRussian,
	"🇬🇧 English": domain.LanguageEnglish,
}

// LanguageButtonFor returns the selector caption for lang
func LanguageButtonFor(lang domain.Language) string {
	for caption, l := range LanguageButtons {
		if l == lang {
			return caption
		}
	}
	return ""
}

var buttons = map[Label]map[domain.Language]string{
	LabelServices: {
		domain.LanguageUzbek:   "🛠 Xizmatlar",
		domain.LanguageRussian: "🛠 Услуги",
		domain.LanguageEnglish: "🛠 Services",
	},
	LabelContact: {
		domain.LanguageUzbek:   "📞 Aloqa",
		domain.LanguageRussian: "📞 Контакт",
		domain.LanguageEnglish: "📞 Contact",
	},
	LabelPricing: {
		domain.LanguageUzbek:   "💰 Narxlar",
		domain.LanguageRussian: "💰 Цены",
		domain.LanguageEnglish: "💰 Pricing",
	},
	LabelHelp: {
		domain.LanguageUzbek:   "❓ Yordam",
		domain.LanguageRussian: "❓ Помощь",
		domain.LanguageEnglish: "❓ Help",
	},
	LabelRequest: {
		domain.LanguageUzbek:   "📝 So‘rov yuborish",
		domain.LanguageRussian: "📝 Оставить заявку",
		domain.LanguageEnglish: "📝 Send request",
	},
	LabelLanguage: {
		domain.LanguageUzbek:   "🌏 Til",
		domain.LanguageRussian: "🌏 Язык",
		domain.LanguageEnglish: "🌏 Language",
	},
	LabelAbout: {
		domain.LanguageUzbek:   "ℹ Haqida",
		domain.LanguageRussian: "ℹ О боте",
		domain.LanguageEnglish: "ℹ About",
	},
	LabelBack: {
		domain.LanguageUzbek:   "⬅️ Orqaga",
		domain.LanguageRussian: "⬅️ Назад",
		domain.LanguageEnglish: "⬅️ Back",
	},
	LabelCancel: {
		domain.LanguageUzbek:   "❌ Bekor qilish",
		domain.LanguageRussian: "❌ Отмена",
		domain.LanguageEnglish: "❌ Cancel",
	},
	LabelSvcTranslation: {
		domain.LanguageUzbek:   "🔤 Tarjima",
		domain.LanguageRussian: "🔤 Переводы",
		domain.LanguageEnglish: "🔤 Translation",
	},
	LabelSvcSourcing: {
		domain.LanguageUzbek:   "📦 Mahsulot topish",
		domain.LanguageRussian: "📦 Поиск товаров",
		domain.LanguageEnglish: "📦 Product sourcing",
	},
	LabelSvcAdmission: {
		domain.LanguageUzbek:   "🎓 O‘qishga kirishda yordam",
		domain.LanguageRussian: "🎓 Помощь с поступлением",
		domain.LanguageEnglish: "🎓 Admission help",
	},
	LabelSvcFair: {
		domain.LanguageUzbek:   "🏮 Kanton yarmarkasi",
		domain.LanguageRussian: "🏮 Кантонская ярмарка",
		domain.LanguageEnglish: "🏮 Canton Fair",
	},
	LabelSvcGuide: {
		domain.LanguageUzbek:   "🧭 Biznes yo‘lboshchi",
		domain.LanguageRussian: "🧭 Бизнес-гид",
		domain.LanguageEnglish: "🧭 Business guide",
	},
}

// Button returns the localized caption for label in lang, falling back
// to English
func Button(lang domain.Language, label Label) string {
	byLang, ok := buttons[label]
	if !ok {
		return string(label)
	}
	if s, ok := byLang[lang]; ok {
		return s
	}
	return byLang[domain.LanguageEnglish]
}

// Labels returns every defined button label
func Labels() []Label {
	out := make([]Label, 0, len(buttons))
	for l := range buttons {
		out = append(out, l)
	}
	return out
}

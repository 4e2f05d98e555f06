// Package texts holds the localized reply texts, button labels and menu
// grids for all supported languages. Translations are compiled into the
// binary; there is no runtime loading.
package texts

import "github.com/Ramilbey/china-agent-bot/internal/domain"

// Topic identifies a localized reply text
type Topic string

const (
	TopicChooseLanguage   Topic = "choose_language"
	TopicLanguageChosen   Topic = "language_chosen"
	TopicMainMenu         Topic = "main_menu"
	TopicServices         Topic = "services"
	TopicContact          Topic = "contact"
	TopicPricing          Topic = "pricing"
	TopicAbout            Topic = "about"
	TopicHelp             Topic = "help"
	TopicRequestPrompt    Topic = "request_prompt"
	TopicRequestReceived  Topic = "request_received"
	TopicRequestCancelled Topic = "request_cancelled"
	TopicFallback         Topic = "fallback"
	TopicError            Topic = "error"

	TopicSvcTranslation Topic = "svc_translation"
	TopicSvcSourcing    Topic = "svc_sourcing"
	TopicSvcAdmission   Topic = "svc_admission"
	TopicSvcFair        Topic = "svc_fair"
	TopicSvcGuide       Topic = "svc_guide"
)

// Welcome is the /start greeting, shown before a language is chosen,
// so it speaks all three languages at once.
const Welcome = "👋 *China Agent Bot* 🇨🇳\n\n" +
	"🇺🇿 Xush kelibsiz! Iltimos, tilni tanlang.\n" +
	"🇷🇺 Добро пожаловать! Пожалуйста, выберите язык.\n" +
	"🇬🇧 Welcome! Please choose your language."

var replies = map[Topic]map[domain.Language]string{
	TopicChooseLanguage: {
		domain.LanguageUzbek:   "🌏 Tilni tanlang:",
		domain.LanguageRussian: "🌏 Выберите язык:",
		domain.LanguageEnglish: "🌏 Choose a language:",
	},
	TopicLanguageChosen: {
		domain.LanguageUzbek:   "✅ Til tanlandi: O‘zbek. Quyidagi menyudan foydalaning:",
		domain.LanguageRussian: "✅ Язык выбран: Русский. Воспользуйтесь меню ниже:",
		domain.LanguageEnglish: "✅ Language set: English. Use the menu below:",
	},
	TopicMainMenu: {
		domain.LanguageUzbek:   "🏠 Asosiy menyu. Bo‘limni tanlang:",
		domain.LanguageRussian: "🏠 Главное меню. Выберите раздел:",
		domain.LanguageEnglish: "🏠 Main menu. Choose a section:",
	},
	TopicServices: {
		domain.LanguageUzbek:   "1️⃣ Tarjima\n2️⃣ Mahsulot topish\n3️⃣ O‘qishga kirishda yordam\n4️⃣ Kanton yarmarkasi\n5️⃣ Biznes yo‘lboshchi",
		domain.LanguageRussian: "1️⃣ Переводы\n2️⃣ Поиск товаров\n3️⃣ Помощь с поступлением\n4️⃣ Кантонская ярмарка\n5️⃣ Бизнес-гид",
		domain.LanguageEnglish: "1️⃣ Translation\n2️⃣ Product sourcing\n3️⃣ Admission help\n4️⃣ Canton Fair\n5️⃣ Business guide",
	},
	TopicContact: {
		domain.LanguageUzbek:   "📞 Aloqa:\nWeChat: your_wechat\nTelegram: @yourusername\nTelefon: +86 123456789",
		domain.LanguageRussian: "📞 Контакт:\nWeChat: your_wechat\nTelegram: @yourusername\nТелефон: +86 123456789",
		domain.LanguageEnglish: "📞 Contact:\nWeChat: your_wechat\nTelegram: @yourusername\nPhone: +86 123456789",
	},
	TopicPricing: {
		domain.LanguageUzbek:   "💰 Narxlar:\n• Tarjima — soatiga $10 dan\n• Mahsulot topish — buyurtmaning 5%\n• O‘qishga kirishda yordam — $100 dan\n• Kanton yarmarkasida gid — kuniga $50\n• Biznes yo‘lboshchi — kuniga $60",
		domain.LanguageRussian: "💰 Цены:\n• Переводы — от $10/час\n• Поиск товаров — 5% от заказа\n• Помощь с поступлением — от $100\n• Гид на Кантонской ярмарке — $50/день\n• Бизнес-гид — $60/день",
		domain.LanguageEnglish: "💰 Pricing:\n• Translation — from $10/hour\n• Product sourcing — 5% of order\n• Admission help — from $100\n• Canton Fair guide — $50/day\n• Business guide — $60/day",
	},
	TopicAbout: {
		domain.LanguageUzbek:   "🤖 China Agent Bot sizga Guanchjoudagi ishonchli agentlar bilan bog‘lanishda yordam beradi.",
		domain.LanguageRussian: "🤖 China Agent Bot помогает вам связаться с надежными агентами в Гуанчжоу.",
		domain.LanguageEnglish: "🤖 China Agent Bot helps connect with trusted agents in Guangzhou.",
	},
	TopicHelp: {
		domain.LanguageUzbek:   "❓ Botdan foydalanish:\n/menu — asosiy menyu\n/contact — aloqa\n/pricing — narxlar\n/about — bot haqida\n\nMenyudan xizmatni tanlang yoki so‘rov yuboring, biz siz bilan bog‘lanamiz.",
		domain.LanguageRussian: "❓ Как пользоваться ботом:\n/menu — главное меню\n/contact — контакты\n/pricing — цены\n/about — о боте\n\nВыберите услугу в меню или оставьте заявку, и мы свяжемся с вами.",
		domain.LanguageEnglish: "❓ How to use the bot:\n/menu — main menu\n/contact — contact info\n/pricing — pricing\n/about — about the bot\n\nPick a service from the menu or send a request and we will get back to you.",
	},
	TopicRequestPrompt: {
		domain.LanguageUzbek:   "📝 Nima kerakligini yozing, biz siz bilan bog‘lanamiz. Bekor qilish uchun /cancel yuboring.",
		domain.LanguageRussian: "📝 Опишите, что вам нужно, и мы свяжемся с вами. Отправьте /cancel для отмены.",
		domain.LanguageEnglish: "📝 Describe what you need and we will contact you. Send /cancel to abort.",
	},
	TopicRequestReceived: {
		domain.LanguageUzbek:   "✅ So‘rovingiz qabul qilindi! Tez orada siz bilan bog‘lanamiz.",
		domain.LanguageRussian: "✅ Ваша заявка принята! Мы скоро свяжемся с вами.",
		domain.LanguageEnglish: "✅ Your request has been received! We will contact you soon.",
	},
	TopicRequestCancelled: {
		domain.LanguageUzbek:   "❌ So‘rov bekor qilindi.",
		domain.LanguageRussian: "❌ Заявка отменена.",
		domain.LanguageEnglish: "❌ Request cancelled.",
	},
	TopicFallback: {
		domain.LanguageUzbek:   "🤔 Tushunmadim. Iltimos, quyidagi menyudan foydalaning.",
		domain.LanguageRussian: "🤔 Я не понял. Пожалуйста, воспользуйтесь меню ниже.",
		domain.LanguageEnglish: "🤔 I didn't understand that. Please use the menu below.",
	},
	TopicError: {
		domain.LanguageUzbek:   "⚠️ Xatolik yuz berdi. Keyinroq urinib ko‘ring.",
		domain.LanguageRussian: "⚠️ Что-то пошло не так. Попробуйте позже.",
		domain.LanguageEnglish: "⚠️ Something went wrong. Please try again later.",
	},
	TopicSvcTranslation: {
		domain.LanguageUzbek:   "🔤 Tarjima\nUchrashuvlar, zavodlarga tashriflar va hujjatlar uchun uz/ru/en/zh professional tarjima.",
		domain.LanguageRussian: "🔤 Переводы\nПрофессиональный перевод uz/ru/en/zh для встреч, визитов на фабрики и документов.",
		domain.LanguageEnglish: "🔤 Translation\nProfessional uz/ru/en/zh interpreting for meetings, factory visits and documents.",
	},
	TopicSvcSourcing: {
		domain.LanguageUzbek:   "📦 Mahsulot topish\nGuanchjouda ishonchli ishlab chiqaruvchilarni topamiz, namunalarni tekshiramiz va yetkazib berishni tashkil qilamiz.",
		domain.LanguageRussian: "📦 Поиск товаров\nНаходим надежных производителей в Гуанчжоу, проверяем образцы и организуем доставку.",
		domain.LanguageEnglish: "📦 Product sourcing\nWe find reliable manufacturers in Guangzhou, check samples and arrange shipping.",
	},
	TopicSvcAdmission: {
		domain.LanguageUzbek:   "🎓 O‘qishga kirishda yordam\nXitoy universitetlariga hujjat topshirishda to‘liq yordam: hujjatlar, viza, turar joy.",
		domain.LanguageRussian: "🎓 Помощь с поступлением\nПолное сопровождение при поступлении в китайские вузы: документы, виза, проживание.",
		domain.LanguageEnglish: "🎓 Admission help\nFull support with applying to Chinese universities: documents, visa, accommodation.",
	},
	TopicSvcFair: {
		domain.LanguageUzbek:   "🏮 Kanton yarmarkasi\nKanton yarmarkasida hamrohlik: chiptalar, yo‘l ko‘rsatish, yetkazib beruvchilar bilan muzokaralar.",
		domain.LanguageRussian: "🏮 Кантонская ярмарка\nСопровождение на Кантонской ярмарке: билеты, навигация, переговоры с поставщиками.",
		domain.LanguageEnglish: "🏮 Canton Fair\nAccompaniment at the Canton Fair: tickets, navigation, negotiations with suppliers.",
	},
	TopicSvcGuide: {
		domain.LanguageUzbek:   "🧭 Biznes yo‘lboshchi\nBiznes safarlar uchun shaxsiy gid: bozorlar, zavodlar, transport va tarjima.",
		domain.LanguageRussian: "🧭 Бизнес-гид\nЛичный гид для деловых поездок: рынки, фабрики, транспорт и перевод.",
		domain.LanguageEnglish: "🧭 Business guide\nPersonal guide for business trips: markets, factories, transport and translation.",
	},
}

// Text returns the reply for topic in lang, falling back to English
func Text(lang domain.Language, topic Topic) string {
	byLang, ok := replies[topic]
	if !ok {
		return string(topic)
	}
	if s, ok := byLang[lang]; ok {
		return s
	}
	return byLang[domain.LanguageEnglish]
}

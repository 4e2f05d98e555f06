// Package dispatch matches inbound message text against the known
// localized button captions and resolves it to a single tagged action.
// One lookup table replaces per-language caption chains: captions are
// keyed by (language, caption) so a caption from another language's
// keyboard is not recognized, with the language-selector captions as
// the one deliberate exception.
package dispatch

import (
	"github.com/Ramilbey/china-agent-bot/internal/domain"
	"github.com/Ramilbey/china-agent-bot/internal/texts"
)

// Kind tags what an Action asks the handler to do
type Kind int

const (
	// KindFallback replies with the unrecognized-input text and re-shows the main menu
	KindFallback Kind = iota
	// KindShowText replies with a static localized text
	KindShowText
	// KindShowMenu replies with a localized text plus a keyboard
	KindShowMenu
	// KindChangeLanguage stores a new language preference
	KindChangeLanguage
	// KindEnterRequestFlow puts the user into the service-request state
	KindEnterRequestFlow
)

// Action is the resolved outcome for one inbound text
type Action struct {
	Kind     Kind
	Topic    texts.Topic
	Menu     texts.MenuID
	Language domain.Language
}

type key struct {
	lang    domain.Language
	caption string
}

// Dispatcher resolves inbound text to actions
type Dispatcher struct {
	table map[key]Action
}

// New builds the caption lookup table for all languages
func New() *Dispatcher {
	d := &Dispatcher{table: make(map[key]Action)}

	actions := map[texts.Label]Action{
		texts.LabelServices: {Kind: KindShowMenu, Topic: texts.TopicServices, Menu: texts.MenuServices},
		texts.LabelContact:  {Kind: KindShowText, Topic: texts.TopicContact},
		texts.LabelPricing:  {Kind: KindShowText, Topic: texts.TopicPricing},
		texts.LabelHelp:     {Kind: KindShowText, Topic: texts.TopicHelp},
		texts.LabelAbout:    {Kind: KindShowText, Topic: texts.TopicAbout},
		texts.LabelLanguage: {Kind: KindShowMenu, Topic: texts.TopicChooseLanguage, Menu: texts.MenuLanguage},
		texts.LabelRequest:  {Kind: KindEnterRequestFlow, Topic: texts.TopicRequestPrompt},
		texts.LabelBack:     {Kind: KindShowMenu, Topic: texts.TopicMainMenu, Menu: texts.MenuMain},

		texts.LabelSvcTranslation: {Kind: KindShowText, Topic: texts.TopicSvcTranslation},
		texts.LabelSvcSourcing:    {Kind: KindShowText, Topic: texts.TopicSvcSourcing},
		texts.LabelSvcAdmission:   {Kind: KindShowText, Topic: texts.TopicSvcAdmission},
		texts.LabelSvcFair:        {Kind: KindShowText, Topic: texts.TopicSvcFair},
		texts.LabelSvcGuide:       {Kind: KindShowText, Topic: texts.TopicSvcGuide},
	}

	for _, lang := range domain.Languages {
		for label, action := range actions {
			d.table[key{lang, texts.Button(lang, label)}] = action
		}
	}

	return d
}

// Match resolves text for a user whose stored language is lang.
// Caption comparison is exact; anything unknown is a fallback.
func (d *Dispatcher) Match(lang domain.Language, text string) Action {
	// Selector captions win regardless of the session language: during a
	// switch the keyboard on screen may not match the stored preference.
	if target, ok := texts.LanguageButtons[text]; ok {
		return Action{Kind: KindChangeLanguage, Language: target}
	}

	if action, ok := d.table[key{lang, text}]; ok {
		return action
	}

	return Action{Kind: KindFallback, Topic: texts.TopicFallback, Menu: texts.MenuMain}
}

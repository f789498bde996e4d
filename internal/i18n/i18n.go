// Package i18n selects static, per-language dictionaries for all
// user-facing strings. Dictionary is a pure lookup: no shared mutable
// state, deterministic fallback to English for unknown tags.
package i18n

// Lang is a supported language tag.
type Lang string

const (
	LangEN Lang = "en"
	LangES Lang = "es"
	LangEL Lang = "el"
	LangFR Lang = "fr"
	LangDE Lang = "de"
	LangPT Lang = "pt"
	LangIT Lang = "it"
	LangNL Lang = "nl"
	LangTR Lang = "tr"
	LangHI Lang = "hi"
	LangJA Lang = "ja"
	LangZH Lang = "zh"
)

// Langs lists every supported tag.
var Langs = []Lang{
	LangEN, LangES, LangEL, LangFR, LangDE, LangPT,
	LangIT, LangNL, LangTR, LangHI, LangJA, LangZH,
}

// DefaultLang is used when a tag is missing or unsupported.
const DefaultLang = LangEN

// Resolve maps an arbitrary tag to a supported language.
func Resolve(tag string) Lang {
	for _, lang := range Langs {
		if string(lang) == tag {
			return lang
		}
	}
	return DefaultLang
}

type CommonStrings struct {
	Brand          string `json:"brand"`
	Online         string `json:"online"`
	Offline        string `json:"offline"`
	GenericError   string `json:"generic_error"`
	GoOnlinePrompt string `json:"go_online_prompt"`
}

type LandingStrings struct {
	HeroEyebrow  string   `json:"hero_eyebrow"`
	HeroTitle    string   `json:"hero_title"`
	HeroSubtitle string   `json:"hero_subtitle"`
	Primary      string   `json:"primary"`
	Secondary    string   `json:"secondary"`
	Stats        []string `json:"stats"`
	Steps        []Step   `json:"steps"`
}

type Step struct {
	Label  string `json:"label"`
	Detail string `json:"detail"`
}

type AuthStrings struct {
	LoginTitle    string `json:"login_title"`
	LoginSubtitle string `json:"login_subtitle"`
	EmailLabel    string `json:"email_label"`
	Submit        string `json:"submit"`
}

type PatientStrings struct {
	Title           string `json:"title"`
	Request         string `json:"request"`
	Cancel          string `json:"cancel"`
	Recent          string `json:"recent"`
	NoConsultations string `json:"no_consultations"`
	NotAssigned     string `json:"not_assigned"`
}

type DoctorStrings struct {
	Title             string `json:"title"`
	Incoming          string `json:"incoming"`
	MyConsultations   string `json:"my_consultations"`
	Accept            string `json:"accept"`
	MarkCompleted     string `json:"mark_completed"`
	Release           string `json:"release"`
	SaveNotes         string `json:"save_notes"`
	NoPending         string `json:"no_pending"`
	OfflineNotice     string `json:"offline_notice"`
	SpecialtyRequired string `json:"specialty_required"`
}

// Dict holds every user-facing string for one language.
type Dict struct {
	Lang    Lang           `json:"lang"`
	Common  CommonStrings  `json:"common"`
	Landing LandingStrings `json:"landing"`
	Auth    AuthStrings    `json:"auth"`
	Patient PatientStrings `json:"patient"`
	Doctor  DoctorStrings  `json:"doctor"`
}

var dictionaries = map[Lang]*Dict{
	LangEN: &en,
	LangES: &es,
}

// Dictionary returns the dictionary for lang, falling back to English
// for languages without translations yet.
func Dictionary(lang Lang) *Dict {
	if d, ok := dictionaries[lang]; ok {
		return d
	}
	return &en
}

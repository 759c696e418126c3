package conditions

// Code is a provider-assigned integer identifying a weather phenomenon.
type Code int

// CodeUnavailable is the sentinel the provider sends when it has no data for
// a reading. It maps to the last table slot instead of being an error.
const CodeUnavailable Code = 3200

// Metadata describes a condition code in natural language.
type Metadata struct {
	Type     string
	Quantity string
	Text     PhraseSet
}

// PhraseSet is one of the two phrase shapes found in the condition tables:
// per-language noun/adjective pairs, or a language-invariant singular/plural
// pair.
type PhraseSet interface {
	// Noun returns the noun phrase for a language together with its
	// plurality. ok is false when the shape has no noun for that language.
	Noun(lang string) (phrase string, plural bool, ok bool)

	// Adjective returns the adjective phrase for a language. ok is false
	// when the shape defines no adjective for that language.
	Adjective(lang string) (phrase string, ok bool)
}

// NounAdjective holds per-language noun and adjective phrases.
// A missing entry means the form is unavailable for that language.
type NounAdjective struct {
	Nouns      map[string]string
	Plural     bool
	Adjectives map[string]string
}

func (n NounAdjective) Noun(lang string) (string, bool, bool) {
	phrase, ok := n.Nouns[lang]
	if !ok || phrase == "" {
		return "", false, false
	}
	return phrase, n.Plural, true
}

func (n NounAdjective) Adjective(lang string) (string, bool) {
	phrase, ok := n.Adjectives[lang]
	if !ok || phrase == "" {
		return "", false
	}
	return phrase, true
}

// SingularPlural holds a single-language phrase pair. It is used by tables
// sourced from deployments that only speak one language.
type SingularPlural struct {
	Singular string
	Plural   string
}

func (s SingularPlural) Noun(string) (string, bool, bool) {
	if s.Plural != "" {
		return s.Plural, true, true
	}
	if s.Singular == "" {
		return "", false, false
	}
	return s.Singular, false, true
}

func (s SingularPlural) Adjective(string) (string, bool) {
	return "", false
}

// Lookup returns the metadata for a condition code. It is total: the
// unavailable sentinel and any code outside the table resolve to the
// "unavailable" entry.
func Lookup(code Code) Metadata {
	if code == CodeUnavailable || code < 0 || int(code) >= len(table)-1 {
		return table[len(table)-1]
	}
	return table[code]
}

func nounAdj(nlNoun, enNoun string, plural bool, nlAdj, enAdj string) PhraseSet {
	ps := NounAdjective{
		Nouns:  map[string]string{"nl": nlNoun, "en": enNoun},
		Plural: plural,
	}
	if nlAdj != "" || enAdj != "" {
		ps.Adjectives = map[string]string{"nl": nlAdj, "en": enAdj}
	}
	return ps
}

// table is indexed by condition code 0-47; the final slot is the
// "unavailable" entry that code 3200 remaps to.
var table = []Metadata{
	{Type: "tornado", Text: nounAdj("tornado's", "tornados", true, "", "")},
	{Type: "tropical storm", Text: nounAdj("een tropische storm", "a tropical storm", false, "", "")},
	{Type: "huricane", Text: nounAdj("een orkaan", "a huricane", false, "", "")},
	{Type: "severe thunderstorms", Quantity: "severe", Text: nounAdj("zware onweersbuien", "severe thunderstorms", true, "", "")},
	{Type: "thunderstorm", Quantity: "severe", Text: nounAdj("onweer", "a thunderstorm", false, "", "")},
	{Type: "rain and snow", Quantity: "mixed", Text: nounAdj("regen en sneeuw", "rain and snow", false, "", "")},
	{Type: "rain and sleet", Quantity: "mixed", Text: nounAdj("regen en ijzel", "rain and sleet", false, "", "")},
	{Type: "snow and sleet", Quantity: "mixed", Text: nounAdj("sneeuw en ijzel", "snow and sleet", false, "", "")},
	{Type: "freezing drizzle", Text: nounAdj("lichte ijzel", "freezing drizzle", false, "", "")},
	{Type: "drizzle", Text: nounAdj("motregen", "drizzle", false, "licht regenachtige", "drizzly")},
	{Type: "freezing rain", Text: nounAdj("ijzel", "freezing rain", false, "", "")},
	{Type: "shower", Text: nounAdj("regenbuien", "showers", true, "regenachtige", "rainy")},
	{Type: "shower", Text: nounAdj("regenbuien", "showers", true, "regenachtige", "rainy")},
	{Type: "snow flurry", Text: nounAdj("sneeuw vlagen", "snow flurry", false, "", "")},
	{Type: "snow shower", Quantity: "light", Text: nounAdj("sneeuw", "snow showers", true, "sneeuwachtige", "snowy")},
	{Type: "blowing snow", Text: nounAdj("sneeuwbuien", "blowing snow", false, "", "")},
	{Type: "snow", Text: nounAdj("snow", "snow", false, "sneeuwachtige", "snowy")},
	{Type: "hail", Text: nounAdj("hagel", "hail", false, "", "")},
	{Type: "sleet", Text: nounAdj("ijzel", "sleet", false, "ijzelige", "sleety")},
	{Type: "dust", Text: nounAdj("stof", "dust", false, "stoffige", "dusty")},
	{Type: "fog", Text: nounAdj("mist", "fog", false, "mistige", "foggy")},
	{Type: "haze", Text: nounAdj("mist", "haze", false, "mistige", "hazy")},
	{Type: "smoke", Text: nounAdj("rookwolken", "smoke clouds", true, "", "")},
	{Type: "wind", Text: nounAdj("wind", "wind", false, "winderige", "windy")},
	{Type: "wind", Text: nounAdj("wind", "wind", false, "winderige", "windy")},
	{Type: "cold", Text: nounAdj("kou", "cold", false, "koude", "cold")},
	{Type: "clouds", Text: nounAdj("bewolking", "clouds", true, "bewolkte", "cloudy")},
	{Type: "clouds", Quantity: "mostly", Text: nounAdj("veel bewolking", "quite some clouds", true, "erg bewolkte", "mostly cloudy")},
	{Type: "clouds", Quantity: "mostly", Text: nounAdj("veel bewolking", "quite some clouds", true, "erg bewolkte", "mostly cloudy")},
	{Type: "clouds", Quantity: "partly", Text: nounAdj("lichte bewolking", "some clouds", true, "licht bewolkte", "partly cloudy")},
	{Type: "clouds", Quantity: "partly", Text: nounAdj("lichte bewolking", "some clouds", true, "licht bewolkte", "partially cloudy")},
	{Type: "clear", Text: nounAdj("helder", "clear", false, "heldere", "clear")},
	{Type: "sun", Text: nounAdj("zon", "sun", false, "zonnige", "sunny")},
	{Type: "fair", Text: nounAdj("mooi", "", false, "mooie", "fair")},
	{Type: "fair", Text: nounAdj("mooi", "", false, "mooie", "fair")},
	{Type: "rain and hail", Quantity: "mixed", Text: nounAdj("regen en hagel", "rain and hail", false, "", "")},
	{Type: "hot", Text: nounAdj("warm", "hot", false, "warme", "hot")},
	{Type: "thunderstorm", Text: nounAdj("zwaar onweer", "thunderstorms", true, "", "")},
	{Type: "thunderstorm", Text: nounAdj("zwaar onweer", "thunderstorms", true, "", "")},
	{Type: "thunderstorm", Text: nounAdj("zwaar onweer", "thunderstorms", true, "", "")},
	{Type: "shower", Text: nounAdj("regenbuien", "showers", true, "regenachtige", "rainy")},
	{Type: "snow", Quantity: "heavy", Text: nounAdj("zware sneeuwbuien", "heavy snow", false, "sneeuwachtige", "snowy")},
	{Type: "snow", Text: nounAdj("sneeuwbuien", "snow", false, "sneeuwachtige", "snowy")},
	{Type: "snow", Quantity: "heavy", Text: nounAdj("zware sneeuwbuien", "heavy snow", false, "sneeuwachtige", "snowy")},
	{Type: "clouds", Quantity: "partly", Text: nounAdj("matige bewolking", "some clouds", true, "matig bewolkte", "partially cloudy")},
	{Type: "thundershowers", Text: nounAdj("onweer en zware regenbuien", "thunderstorms", true, "", "")},
	{Type: "snow", Text: nounAdj("sneeuwbuien", "snow", false, "sneeuwachtige", "snowy")},
	{Type: "thundershowers", Text: nounAdj("onweer en zware regenbuien", "thunderstorms", true, "", "")},
	{Type: "unavailable", Text: nounAdj("niet beschikbaar", "unavailable", false, "", "")},
}

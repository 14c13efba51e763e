package terms

// expansions maps a lower-cased food keyword to the venue names people
// actually search for. Keys are matched exactly after Turkish lower-casing.
var expansions = map[string][]string{
	// meat
	"köfte":     {"köfte", "köfteci", "köftecisi", "köfte salonu", "köfte evi", "kofte"},
	"kebap":     {"kebap", "kebapçı", "kebapçısı", "kebap salonu", "kebab", "kebapci"},
	"döner":     {"döner", "dönerci", "dönercisi", "döner salonu", "donercisi"},
	"iskender":  {"iskender", "iskenderi", "iskender kebap", "iskender salonu"},
	"lahmacun":  {"lahmacun", "lahmacuncu", "lahmacuncusu", "lahmacun evi"},
	"tantuni":   {"tantuni", "tantunici", "tantunicisi"},
	"çiğköfte":  {"çiğköfte", "çiğ köfte", "çiğ köfteci", "cigkofte"},
	"çiğ köfte": {"çiğköfte", "çiğ köfte", "çiğ köfteci", "cigkofte"},
	"kokoreç":   {"kokoreç", "kokoreççi", "kokoreççisi"},

	// dough
	"pide":    {"pide", "pideci", "pidecisi", "pide salonu", "pide evi"},
	"börek":   {"börek", "börekçi", "börekçisi", "börek evi", "borek"},
	"gözleme": {"gözleme", "gözlemeci", "gözlemecisi", "gozleme"},
	"mantı":   {"mantı", "mantıcı", "mantıcısı", "manti"},

	// seafood
	"balık":          {"balık", "balık restoranı", "balık evi", "balıkçı", "balık lokantası", "balik"},
	"midye":          {"midye", "midyeci", "midyecisi", "midye tava"},
	"deniz ürünleri": {"deniz ürünleri", "deniz urunleri", "seafood", "balık"},

	// desserts and bakery
	"dondurma": {"dondurma", "dondurmacı", "dondurmacısı", "dondurma salonu", "ice cream"},
	"tatlı":    {"tatlı", "tatlıcı", "tatlıcısı", "tatlı evi", "tatli"},
	"baklava":  {"baklava", "baklavacı", "baklavacısı"},
	"künefe":   {"künefe", "künefeci", "künefecisi", "kunefe"},
	"pasta":    {"pasta", "pastane", "pastahanesi", "pasta evi"},
	"sütlaç":   {"sütlaç", "sütlaççı", "sütlaççısı", "sutlac"},

	// breakfast
	"kahvaltı": {"kahvaltı", "kahvaltıcı", "kahvaltı evi", "serpme kahvaltı", "kahvalti"},
	"brunch":   {"brunch", "kahvaltı", "breakfast"},

	// fast food
	"burger":   {"burger", "hamburger", "burgerci", "burger king"},
	"pizza":    {"pizza", "pizzacı", "pizzeria", "pizza evi", "italyan"},
	"sandwich": {"sandwich", "sandviç", "sandwiç", "sandvici"},
	"toast":    {"toast", "toastçı", "toastçısı", "tost"},
	"waffle":   {"waffle", "wafleci", "waffle evi"},

	// world
	"sushi":   {"sushi", "suşi", "japon", "japon mutfağı"},
	"çin":     {"çin", "çin mutfağı", "chinese", "noodle"},
	"hint":    {"hint", "hint mutfağı", "indian", "curry"},
	"meksika": {"meksika", "meksika mutfağı", "mexican", "tacos"},

	// coffee and drinks
	"kafe":  {"kafe", "cafe", "kahve", "coffee", "kahveci"},
	"kahve": {"kahve", "coffee", "kafe", "cafe", "kahveci"},
	"çay":   {"çay", "çayhane", "çay evi", "tea"},

	// general
	"restoran": {"restoran", "restaurant", "lokanta", "yemek evi"},
	"lokanta":  {"lokanta", "restoran", "restaurant", "yemek evi"},
	"meyhane":  {"meyhane", "taverna", "rakı balık"},
	"ocakbaşı": {"ocakbaşı", "ocakbasi", "mangal", "ızgara"},
}

// Generic eatery categories appended to every non-generic expansion.
var genericTerms = []string{"restoran", "restaurant", "lokanta"}

// Agentive endings ("köfteci", "kebapçı", "lahmacuncu") and their possessive
// forms. Longer endings first.
var agentiveSuffixes = []string{
	"cisi", "cısı", "cusu", "cüsü", "çisi", "çısı", "çusu", "çüsü",
	"ci", "cı", "cu", "cü", "çi", "çı", "çu", "çü",
}

var suffixVowels = "aeiou"

package shared

// Cities maps each supported city to the districts offered in the picker.
var Cities = map[string][]string{
	"İstanbul": {
		"Adalar", "Arnavutköy", "Ataşehir", "Avcılar", "Bağcılar", "Bahçelievler",
		"Bakırköy", "Başakşehir", "Bayrampaşa", "Beşiktaş", "Beykoz", "Beylikdüzü",
		"Beyoğlu", "Büyükçekmece", "Çatalca", "Çekmeköy", "Esenler", "Esenyurt",
		"Eyüpsultan", "Fatih", "Gaziosmanpaşa", "Güngören", "Kadıköy", "Kağıthane",
		"Kartal", "Küçükçekmece", "Maltepe", "Pendik", "Sancaktepe", "Sarıyer",
		"Silivri", "Sultanbeyli", "Sultangazi", "Şile", "Şişli", "Tuzla",
		"Ümraniye", "Üsküdar", "Zeytinburnu",
	},
	"Ankara":    {"Çankaya", "Keçiören", "Mamak", "Altındağ", "Yenimahalle", "Etimesgut", "Sincan", "Pursaklar", "Gölbaşı", "Polatlı"},
	"İzmir":     {"Karşıyaka", "Bornova", "Konak", "Çeşme", "Alsancak", "Buca", "Bayraklı", "Karabağlar", "Balçova", "Narlıdere"},
	"Bursa":     {"Nilüfer", "Osmangazi", "Yıldırım", "Gürsu", "Mudanya", "Gemlik", "İnegöl", "Kestel"},
	"Antalya":   {"Muratpaşa", "Kepez", "Konyaaltı", "Alanya", "Manavgat", "Serik", "Aksu", "Döşemealtı"},
	"Adana":     {"Seyhan", "Yüreğir", "Çukurova", "Sarıçam", "Karaisalı"},
	"Trabzon":   {"Ortahisar", "Akçaabat", "Yomra", "Arsin", "Araklı"},
	"Eskişehir": {"Odunpazarı", "Tepebaşı", "Alpu", "Beylikova", "Çifteler"},
}

// FoodTypes is the suggestion list for the food type field, grouped loosely
// by cuisine.
var FoodTypes = []string{
	"köfteci", "kebapçı", "pideci", "lahmacun", "dönerci", "iskender",
	"mantı", "börekçi", "gözlemeci", "çiğ köfte", "tantuni", "kokoreç",
	"midyeci", "kumru", "lokanta", "ev yemekleri", "meyhane", "ocakbaşı",
	"köfte", "kebap", "pide", "türk mutfağı", "anadolu mutfağı",

	"balık", "balık restoran", "deniz ürünleri", "mezeci", "rakı balık",

	"kahvaltı", "serpme kahvaltı", "köy kahvaltısı", "brunch", "kafe",

	"burger", "hamburger", "pizza", "döner", "fast food", "sokak lezzetleri",
	"sandviç", "toast", "wrap", "waffle", "kumpir",

	"sushi", "japon", "çin", "uzak doğu", "noodle", "ramen", "thai",
	"hint", "kore", "asya mutfağı", "wok",

	"italyan", "fransız", "ispanyol", "yunan", "akdeniz", "meksika",

	"steakhouse", "kasap", "mangal", "et restoran", "biftek",

	"tatlıcı", "dondurmacı", "pastane", "fırın", "bakery", "cafe",
	"künefe", "baklava", "muhallebi", "sütlaç", "dondurma",

	"vegan", "vejetaryen", "sağlıklı", "organik", "salata",

	"kafeterya", "kahve", "coffee", "bistro", "pub", "bar",

	"gurme", "fine dining", "butik restoran", "bahçe restoran",
	"teras", "sahil", "boğaz", "manzaralı",
}

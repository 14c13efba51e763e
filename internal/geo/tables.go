package geo

import "restaurant_scout/internal/domain"

// İstanbul district spellings seen in provider addresses, keyed by the
// normalized district name.
var districtVariations = map[string][]string{
	"kadikoy":       {"kadikoy", "kadiköy", "kadıkoy", "kadıköy"},
	"besiktas":      {"besiktas", "beşiktaş", "besıktas", "besıktaş"},
	"sisli":         {"sisli", "şişli"},
	"beyoglu":       {"beyoglu", "beyoğlu"},
	"uskudar":       {"uskudar", "üsküdar"},
	"fatih":         {"fatih", "fatıh"},
	"bakirkoy":      {"bakirkoy", "bakırköy"},
	"maltepe":       {"maltepe"},
	"pendik":        {"pendik"},
	"tuzla":         {"tuzla"},
	"kartal":        {"kartal"},
	"atasehir":      {"atasehir", "ataşehir"},
	"umraniye":      {"umraniye", "ümraniye"},
	"cekmekoy":      {"cekmekoy", "çekmeköy"},
	"sancaktepe":    {"sancaktepe"},
	"sultanbeyli":   {"sultanbeyli"},
	"kucukcekmece":  {"kucukcekmece", "küçükçekmece"},
	"buyukcekmece":  {"buyukcekmece", "büyükçekmece"},
	"avcilar":       {"avcilar", "avcılar"},
	"bagcilar":      {"bagcilar", "bağcılar"},
	"bahcelievler":  {"bahcelievler", "bahçelievler"},
	"esenler":       {"esenler"},
	"gaziosmanpasa": {"gaziosmanpasa", "gaziosmanpaşa"},
	"gungoren":      {"gungoren", "güngören"},
	"sultangazi":    {"sultangazi"},
	"eyup":          {"eyup", "eyüp", "eyupsultan", "eyüpsultan"},
	"arnavutkoy":    {"arnavutkoy", "arnavutköy"},
	"basaksehir":    {"basaksehir", "başakşehir"},
	"beylikduzu":    {"beylikduzu", "beylikdüzü"},
	"catalca":       {"catalca", "çatalca"},
	"silivri":       {"silivri"},
}

// Rough rectangles for the central districts only.
var districtBounds = map[string]domain.Bounds{
	"kadikoy":  {North: 40.99, South: 40.94, East: 29.09, West: 29.02},
	"besiktas": {North: 41.08, South: 41.03, East: 29.02, West: 28.98},
	"sisli":    {North: 41.06, South: 41.04, East: 28.99, West: 28.96},
	"fatih":    {North: 41.02, South: 40.99, East: 28.98, West: 28.93},
	"uskudar":  {North: 41.04, South: 40.98, East: 29.06, West: 29.01},
	"beyoglu":  {North: 41.04, South: 41.01, East: 28.99, West: 28.95},
	"maltepe":  {North: 40.96, South: 40.92, East: 29.15, West: 29.10},
	"pendik":   {North: 40.91, South: 40.86, East: 29.26, West: 29.21},
	"kartal":   {North: 40.91, South: 40.87, East: 29.21, West: 29.16},
	"tuzla":    {North: 40.87, South: 40.82, East: 29.32, West: 29.27},
}

var cityBounds = map[string]domain.Bounds{
	"istanbul": {North: 41.34, South: 40.80, East: 29.70, West: 27.80},
}

// competingDistricts are checked by the flexible locality rule: an address
// that names the city and one of these is not a city-wide hit.
var competingDistricts = map[string][]string{
	"istanbul": {"kadikoy", "besiktas", "sisli", "fatih", "beyoglu", "uskudar", "bagcilar", "zeytinburnu", "bakirkoy", "maltepe"},
}

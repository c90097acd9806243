package tfidf

// spanishStopwords is the fixed Spanish stopword list applied during
// vectorization. Entries are already lowercase and accent-free, matching the
// normalization applied to document tokens before the list is consulted.
var spanishStopwords = []string{
	"a", "al", "algo", "algunas", "algunos", "ante", "antes", "aquel", "aquella", "aquellas", "aquellos", "aqui",
	"asi", "aun", "aunque", "bajo", "bien", "cada", "como", "con", "contra", "cual", "cuales", "cuando", "de", "del",
	"desde", "donde", "dos", "durante", "e", "el", "ella", "ellas", "ello", "ellos", "en", "entre", "era", "erais",
	"eramos", "eran", "eres", "es", "esa", "esas", "ese", "eso", "esos", "esta", "estaba", "estabais", "estabamos",
	"estaban", "estoy", "estas", "este", "esto", "estos", "fin", "fue", "fueron", "fuimos", "ha", "haber", "habia",
	"habiais", "habiamos", "habian", "habra", "habran", "habria", "habrian", "han", "hasta", "hay", "haya", "he",
	"hemos", "hizo", "la", "las", "le", "les", "lo", "los", "mas", "me", "mi", "mis", "mucho", "muy", "nada", "ni", "no",
	"nos", "nosotras", "nosotros", "nuestra", "nuestras", "nuestro", "nuestros", "o", "os", "otra", "otras", "otro",
	"otros", "para", "pero", "poco", "por", "porque", "que", "quien", "quienes", "se", "sea", "sean", "segun", "ser",
	"si", "siempre", "sin", "sobre", "sois", "solamente", "solo", "somos", "son", "soy", "su", "sus", "tal", "tambien",
	"tampoco", "te", "ti", "tiene", "tienen", "toda", "todas", "todavia", "todo", "todos", "tu", "tus", "tuya", "tuyo",
	"un", "una", "uno", "unos", "usted", "ustedes", "va", "vamos", "van", "vosotras", "vosotros", "y", "ya",
}

var stopwordSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(spanishStopwords))
	for _, w := range spanishStopwords {
		set[w] = struct{}{}
	}
	return set
}()

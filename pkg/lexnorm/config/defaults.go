package config

// BaseStopwords is the built-in Spanish stopword base. It plays the
// role the tagger's default stopword list plays in the original
// deployment: user configuration extends it, never replaces it. The
// negation particle "no" appears here for completeness but is always
// excluded again during vocabulary construction.
var BaseStopwords = []string{
	"a", "al", "algo", "alguna", "algunas", "alguno", "algunos", "algún",
	"ante", "antes", "aquel", "aquella", "aquellas", "aquellos", "aqui",
	"aquí", "asi", "así", "aun", "aún", "bajo", "bien", "cada", "casi",
	"como", "cómo", "con", "contra", "cual", "cuales", "cuando", "cuándo",
	"cuanto", "de", "del", "demás", "desde", "donde", "dónde", "dos",
	"durante", "e", "el", "ella", "ellas", "ellos", "en", "entre", "era",
	"eran", "es", "esa", "esas", "ese", "eso", "esos", "esta", "estaba",
	"estaban", "estado", "estar", "estas", "este", "esto", "estos", "está",
	"están", "fue", "fueron", "ha", "haber", "habia", "había", "han",
	"hasta", "hay", "la", "las", "le", "les", "lo", "los", "luego", "mas",
	"me", "mi", "mientras", "mismo", "mucha", "muchas", "mucho", "muchos",
	"muy", "más", "ni", "no", "nos", "nosotros", "nuestra", "nuestro", "o",
	"os", "otra", "otras", "otro", "otros", "para", "pero", "poco", "por",
	"porque", "pues", "que", "quien", "quienes", "qué", "se", "segun",
	"según", "ser", "si", "sido", "siempre", "sin", "sobre", "solo", "son",
	"su", "sus", "sí", "sólo", "también", "tan", "tanto", "te", "tener",
	"tiene", "tienen", "toda", "todas", "todo", "todos", "tras", "tu", "tus",
	"un", "una", "unas", "uno", "unos", "usted", "va", "vamos", "van",
	"varias", "varios", "vez", "y", "ya", "yo", "él", "ésta", "éste",
}

// BaseNegation holds the negation-family terms that must always
// survive stopword filtering. Compared accent-folded, so unaccented
// spellings here match accented input ("jamás", "ningún").
var BaseNegation = []string{
	"no", "ni", "nunca", "jamas", "sin", "tampoco",
	"ningun", "ninguna", "ninguno", "ningunas", "ningunos",
	"nada", "nadie",
}

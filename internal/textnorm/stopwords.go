package textnorm

// Portuguese stopword list (NLTK corpus). Tokens are matched after
// folding, so the accented entries only hit unaccented occurrences.
var stopwords = []string{
	"a", "ao", "aos", "aquela", "aquelas", "aquele", "aqueles", "aquilo",
	"as", "até", "com", "como", "da", "das", "de", "dela", "delas",
	"dele", "deles", "depois", "do", "dos", "e", "ela", "elas", "ele",
	"eles", "em", "entre", "era", "eram", "essa", "essas", "esse",
	"esses", "esta", "estas", "estava", "estavam", "este", "esteja",
	"estejam", "estejamos", "estes", "esteve", "estive", "estivemos",
	"estiver", "estivera", "estiveram", "estiverem", "estivermos",
	"estivesse", "estivessem", "estou", "está", "estamos", "estão",
	"eu", "foi", "fomos", "for", "fora", "foram", "forem", "formos",
	"fosse", "fossem", "fui", "haja", "hajam", "hajamos", "havemos",
	"hei", "houve", "houvemos", "houver", "houvera", "houveram",
	"houverei", "houverem", "houveremos", "houveria", "houveriam",
	"houvermos", "houverá", "houverão", "houveríamos", "houvesse",
	"houvessem", "há", "hão", "isso", "isto", "já", "lhe", "lhes",
	"mais", "mas", "me", "mesmo", "meu", "meus", "minha", "minhas",
	"muito", "na", "nas", "nem", "no", "nos", "nossa", "nossas",
	"nosso", "nossos", "num", "numa", "não", "nós", "o", "os", "ou",
	"para", "pela", "pelas", "pelo", "pelos", "por", "qual", "quando",
	"que", "quem", "se", "seja", "sejam", "sejamos", "sem", "ser",
	"serei", "seremos", "seria", "seriam", "será", "serão", "seríamos",
	"seu", "seus", "somos", "sou", "sua", "suas", "são", "só",
	"também", "te", "tem", "temos", "tenha", "tenham", "tenhamos",
	"tenho", "terei", "teremos", "teria", "teriam", "terá", "terão",
	"teríamos", "teu", "teus", "teve", "tinha", "tinham", "tive",
	"tivemos", "tiver", "tivera", "tiveram", "tiverem", "tivermos",
	"tivesse", "tivessem", "tu", "tua", "tuas", "tém", "tínhamos",
	"um", "uma", "você", "vocês", "vos", "à", "às", "é", "éramos",
}

var stopSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		m[w] = struct{}{}
	}
	return m
}()

package usecase

// Endpoints keeps every third-party base URL in one place so tests can point
// handlers at local servers. Each handler is the sole reader of its
// provider's response shape.
type Endpoints struct {
	DuckDuckGo      string
	Geocoding       string
	Forecast        string
	CloudflareDNS   string
	Disify          string
	UrbanDictionary string
	OpenTDB         string
	DadJoke         string
	CatFact         string
	DogFact         string
	Unsplash        string
	IPInfo          string
	IPAPI           string
	Quotable        string
	QuotesRest      string
	ZenQuotes       string
	HTTPCat         string
	Screenshot      string
}

// DefaultEndpoints returns the production endpoint table
func DefaultEndpoints() Endpoints {
	return Endpoints{
		DuckDuckGo:      "https://api.duckduckgo.com",
		Geocoding:       "https://geocoding-api.open-meteo.com/v1/search",
		Forecast:        "https://api.open-meteo.com/v1/forecast",
		CloudflareDNS:   "https://cloudflare-dns.com/dns-query",
		Disify:          "https://www.disify.com/api/email",
		UrbanDictionary: "https://api.urbandictionary.com/v0/define",
		OpenTDB:         "https://opentdb.com/api.php?amount=1&type=multiple",
		DadJoke:         "https://icanhazdadjoke.com/",
		CatFact:         "https://catfact.ninja/fact",
		DogFact:         "https://dog-api.kinduff.com/api/facts",
		Unsplash:        "https://api.unsplash.com/photos/random",
		IPInfo:          "https://ipinfo.io",
		IPAPI:           "https://ipapi.co",
		Quotable:        "https://api.quotable.io/random",
		QuotesRest:      "https://quotes.rest/qod?category=inspire",
		ZenQuotes:       "https://zenquotes.io/api/random",
		HTTPCat:         "https://http.cat",
		Screenshot:      "https://image.thum.io/get/width/800/crop/768/noanimate",
	}
}

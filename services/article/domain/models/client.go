package models

// Client is a (id, name) entry of the client registry.
type Client struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SeedClients is the built-in table of known clients keyed by client id.
var SeedClients = map[string]string{
	"001": "BUCHER",
	"002": "THIMONNIER",
	"003": "TECNOFIL",
	"006": "MAF",
	"007": "MICALÓ RAMIÓ",
	"008": "INOXPA",
	"009": "METALQUIMIA",
	"010": "BUCH",
	"012": "LCP",
	"014": "GALÍ",
	"015": "INOXMIM",
	"020": "CLEXTRAL",
	"026": "CAUSTIER",
	"028": "SAFERTECH",
	"031": "HYDRO",
	"039": "TECHNISOURCING",
	"040": "POLYMEM",
}

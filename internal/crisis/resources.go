package crisis

import "strings"

// Hotline is a single crisis helpline for a country.
type Hotline struct {
	Name        string `json:"name"`
	Number      string `json:"number"`
	Description string `json:"description"`
	Available   string `json:"available"`
	Link        string `json:"link"`
}

// OnlineResource is a web resource offering crisis or mental health support.
type OnlineResource struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// ResourceEntry holds everything known for one country.
type ResourceEntry struct {
	Emergency       string           `json:"emergency"`
	Hotlines        []Hotline        `json:"hotlines"`
	OnlineResources []OnlineResource `json:"online_resources"`
}

// Country pairs an ISO 3166-1 alpha-2 code with a display name.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Resolve returns the resource entry for a country code. The code is
// trimmed and upper-cased first; unknown or empty codes fall back to US.
func Resolve(code string) ResourceEntry {
	code = strings.ToUpper(strings.TrimSpace(code))
	if entry, ok := resources[code]; ok {
		return entry
	}
	return resources["US"]
}

// NormalizeCode trims and upper-cases a country code and applies the same
// US fallback Resolve does, so callers can echo the code actually served.
func NormalizeCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if _, ok := resources[code]; ok {
		return code
	}
	return "US"
}

// Countries lists the supported countries sorted alphabetically by name.
func Countries() []Country {
	out := make([]Country, len(countries))
	copy(out, countries)
	return out
}

// CountryName returns the display name for an exact code, "" if unknown.
func CountryName(code string) string {
	for _, c := range countries {
		if c.Code == code {
			return c.Name
		}
	}
	return ""
}

var countries = []Country{
	{"AR", "Argentina"},
	{"AU", "Australia"},
	{"BE", "Belgium"},
	{"BR", "Brazil"},
	{"CA", "Canada"},
	{"CN", "China"},
	{"DK", "Denmark"},
	{"EG", "Egypt"},
	{"FI", "Finland"},
	{"FR", "France"},
	{"DE", "Germany"},
	{"GR", "Greece"},
	{"ID", "Indonesia"},
	{"IN", "India"},
	{"IE", "Ireland"},
	{"IT", "Italy"},
	{"JP", "Japan"},
	{"KR", "South Korea"},
	{"MY", "Malaysia"},
	{"MX", "Mexico"},
	{"NL", "Netherlands"},
	{"NZ", "New Zealand"},
	{"NG", "Nigeria"},
	{"NO", "Norway"},
	{"PK", "Pakistan"},
	{"PH", "Philippines"},
	{"PL", "Poland"},
	{"PT", "Portugal"},
	{"RU", "Russia"},
	{"SA", "Saudi Arabia"},
	{"SG", "Singapore"},
	{"ZA", "South Africa"},
	{"ES", "Spain"},
	{"SE", "Sweden"},
	{"CH", "Switzerland"},
	{"TH", "Thailand"},
	{"TR", "Turkey"},
	{"AE", "United Arab Emirates"},
	{"GB", "United Kingdom"},
	{"US", "United States"},
	{"VN", "Vietnam"},
}

func init() {
	// The catalog and the resource table must stay in lockstep.
	if len(countries) != len(resources) {
		panic("crisis: country catalog and resource table out of sync")
	}
	for _, c := range countries {
		if _, ok := resources[c.Code]; !ok {
			panic("crisis: no resources for country " + c.Code)
		}
	}
}

var resources = map[string]ResourceEntry{
	"US": {
		Emergency: "911",
		Hotlines: []Hotline{
			{"National Suicide Prevention Lifeline", "988", "24/7 free and confidential support", "24/7", "tel:988"},
			{"Crisis Text Line", "Text HOME to 741741", "Free 24/7 crisis support via text", "24/7", "sms:741741?body=HOME"},
			{"Emergency Services", "911", "For immediate life-threatening emergencies", "24/7", "tel:911"},
			{"National Domestic Violence Hotline", "1-800-799-7233", "Support for domestic violence situations", "24/7", "tel:18007997233"},
			{"SAMHSA National Helpline", "1-800-662-4357", "Substance abuse and mental health services", "24/7", "tel:18006624357"},
		},
		OnlineResources: []OnlineResource{
			{"Crisis Text Line", "https://www.crisistextline.org", "Free crisis support via text message"},
			{"National Suicide Prevention Lifeline", "https://988lifeline.org", "988 Suicide & Crisis Lifeline"},
			{"Mental Health America", "https://www.mhanational.org", "Mental health resources and screening tools"},
			{"NAMI (National Alliance on Mental Illness)", "https://www.nami.org", "Support, education, and advocacy"},
		},
	},
	"PK": {
		Emergency: "15",
		Hotlines: []Hotline{
			{"Emergency Services", "15", "For immediate life-threatening emergencies", "24/7", "tel:15"},
			{"Police Emergency", "15", "Police emergency services", "24/7", "tel:15"},
			{"Aman Foundation Helpline", "111-11-AMAN (111-11-2626)", "Mental health and crisis support", "24/7", "tel:111112626"},
			{"Rozan Helpline", "0800-22444", "Support for emotional and psychological issues", "24/7", "tel:080022444"},
			{"Sehat Tahaffuz Helpline", "1166", "Health emergency helpline", "24/7", "tel:1166"},
		},
		OnlineResources: []OnlineResource{
			{"Rozan", "https://www.rozan.org", "Mental health and emotional support services"},
			{"Aman Foundation", "https://www.amanfoundation.org", "Mental health and crisis support"},
			{"Pakistan Mental Health Association", "https://www.pmha.org.pk", "Mental health resources and support"},
		},
	},
	"IN": {
		Emergency: "112",
		Hotlines: []Hotline{
			{"Emergency Services", "112", "Unified emergency number for all emergencies", "24/7", "tel:112"},
			{"Police Emergency", "100", "Police emergency services", "24/7", "tel:100"},
			{"Vandrevala Foundation", "1860-2662-345", "24/7 mental health helpline", "24/7", "tel:18602662345"},
			{"iCall Psychosocial Helpline", "022-25521111", "Mental health support (Mon-Sat, 8am-10pm)", "Mon-Sat, 8am-10pm", "tel:02225521111"},
			{"Sneha Suicide Prevention Helpline", "044-24640050", "24/7 suicide prevention support", "24/7", "tel:04424640050"},
			{"Aasra Suicide Prevention", "91-22-27546669", "24/7 suicide prevention helpline", "24/7", "tel:912227546669"},
		},
		OnlineResources: []OnlineResource{
			{"Vandrevala Foundation", "https://www.vandrevalafoundation.com", "Mental health support and resources"},
			{"iCall", "https://icallhelpline.org", "Psychosocial helpline and resources"},
			{"Sneha Foundation", "https://www.snehaindia.org", "Suicide prevention and mental health support"},
			{"Aasra", "https://www.aasra.info", "Suicide prevention helpline"},
		},
	},
	"GB": {
		Emergency: "999",
		Hotlines: []Hotline{
			{"Emergency Services", "999", "For immediate life-threatening emergencies", "24/7", "tel:999"},
			{"Samaritans", "116 123", "24/7 free emotional support", "24/7", "tel:116123"},
			{"Crisis Text Line UK", "Text SHOUT to 85258", "Free 24/7 crisis support via text", "24/7", "sms:85258?body=SHOUT"},
			{"Mind Infoline", "0300 123 3393", "Mental health information and support", "Mon-Fri, 9am-6pm", "tel:03001233393"},
		},
		OnlineResources: []OnlineResource{
			{"Samaritans", "https://www.samaritans.org", "24/7 emotional support"},
			{"Mind", "https://www.mind.org.uk", "Mental health information and support"},
			{"Crisis Text Line UK", "https://www.crisistextline.uk", "Free crisis support via text"},
		},
	},
	"CA": {
		Emergency: "911",
		Hotlines: []Hotline{
			{"Emergency Services", "911", "For immediate life-threatening emergencies", "24/7", "tel:911"},
			{"Crisis Services Canada", "1-833-456-4566", "24/7 suicide prevention and support", "24/7", "tel:18334564566"},
			{"Kids Help Phone", "1-800-668-6868", "24/7 support for young people", "24/7", "tel:18006686868"},
			{"Crisis Text Line Canada", "Text HOME to 686868", "Free 24/7 crisis support via text", "24/7", "sms:686868?body=HOME"},
		},
		OnlineResources: []OnlineResource{
			{"Crisis Services Canada", "https://www.crisisservicescanada.ca", "Suicide prevention and crisis support"},
			{"Kids Help Phone", "https://kidshelpphone.ca", "Support for young people"},
			{"Canadian Mental Health Association", "https://www.cmha.ca", "Mental health resources and support"},
		},
	},
	"AU": {
		Emergency: "000",
		Hotlines: []Hotline{
			{"Emergency Services", "000", "For immediate life-threatening emergencies", "24/7", "tel:000"},
			{"Lifeline Australia", "13 11 14", "24/7 crisis support and suicide prevention", "24/7", "tel:131114"},
			{"Beyond Blue", "1300 22 4636", "24/7 mental health support", "24/7", "tel:1300224636"},
			{"Kids Helpline", "1800 55 1800", "24/7 support for young people", "24/7", "tel:1800551800"},
		},
		OnlineResources: []OnlineResource{
			{"Lifeline Australia", "https://www.lifeline.org.au", "24/7 crisis support"},
			{"Beyond Blue", "https://www.beyondblue.org.au", "Mental health information and support"},
			{"Kids Helpline", "https://kidshelpline.com.au", "Support for young people"},
		},
	},
	"DE": {
		Emergency: "112",
		Hotlines: []Hotline{
			{"Emergency Services", "112", "For immediate life-threatening emergencies", "24/7", "tel:112"},
			{"Telefonseelsorge", "0800 111 0 111", "24/7 emotional support and crisis intervention", "24/7", "tel:08001110111"},
			{"Nummer gegen Kummer", "116 111", "Youth helpline (Mon-Sat, 2pm-8pm)", "Mon-Sat, 2pm-8pm", "tel:116111"},
		},
		OnlineResources: []OnlineResource{
			{"Telefonseelsorge", "https://www.telefonseelsorge.de", "24/7 emotional support"},
			{"Nummer gegen Kummer", "https://www.nummergegenkummer.de", "Youth support services"},
		},
	},
	"FR": {
		Emergency: "112",
		Hotlines: []Hotline{
			{"Emergency Services", "112", "For immediate life-threatening emergencies", "24/7", "tel:112"},
			{"SOS Amitié", "09 72 39 40 50", "24/7 emotional support", "24/7", "tel:0972394050"},
			{"Suicide Écoute", "01 45 39 40 00", "24/7 suicide prevention", "24/7", "tel:0145394000"},
		},
		OnlineResources: []OnlineResource{
			{"SOS Amitié", "https://www.sos-amitie.org", "24/7 emotional support"},
		},
	},
	"ES": {
		Emergency: "112",
		Hotlines: []Hotline{
			{"Emergency Services", "112", "For immediate life-threatening emergencies", "24/7", "tel:112"},
			{"Teléfono de la Esperanza", "717 003 717", "24/7 emotional support", "24/7", "tel:717003717"},
		},
		OnlineResources: []OnlineResource{
			{"Teléfono de la Esperanza", "https://www.telefonodelaesperanza.org", "24/7 emotional support"},
		},
	},
	"IT": {
		Emergency: "112",
		Hotlines: []Hotline{
			{"Emergency Services", "112", "For immediate life-threatening emergencies", "24/7", "tel:112"},
			{"Telefono Amico", "199 284 284", "24/7 emotional support", "24/7", "tel:199284284"},
		},
		OnlineResources: []OnlineResource{
			{"Telefono Amico", "https://www.telefonoamico.it", "24/7 emotional support"},
		},
	},
	"BR": {
		Emergency: "192",
		Hotlines: []Hotline{
			{"Emergency Services", "192", "For immediate life-threatening emergencies", "24/7", "tel:192"},
			{"Centro de Valorização da Vida (CVV)", "188", "24/7 suicide prevention", "24/7", "tel:188"},
		},
		OnlineResources: []OnlineResource{
			{"CVV", "https://www.cvv.org.br", "24/7 suicide prevention"},
		},
	},
	"MX": {
		Emergency: "911",
		Hotlines: []Hotline{
			{"Emergency Services", "911", "For immediate life-threatening emergencies", "24/7", "tel:911"},
			{"Línea de la Vida", "800 911 2000", "24/7 mental health support", "24/7", "tel:8009112000"},
		},
		OnlineResources: []OnlineResource{
			{"Línea de la Vida", "https://www.gob.mx/salud", "Mental health support"},
		},
	},
	"AR": {
		Emergency: "911",
		Hotlines: []Hotline{
			{"Emergency Services", "911", "For immediate life-threatening emergencies", "24/7", "tel:911"},
			{"Centro de Asistencia al Suicida", "135", "24/7 suicide prevention", "24/7", "tel:135"},
		},
		OnlineResources: []OnlineResource{
			{"Centro de Asistencia al Suicida", "https://www.casbuenosaires.org.ar", "Suicide prevention"},
		},
	},
	"ZA": {
		Emergency: "10111",
		Hotlines: []Hotline{
			{"Emergency Services", "10111", "For immediate life-threatening emergencies", "24/7", "tel:10111"},
			{"Lifeline South Africa", "0861 322 322", "24/7 crisis support", "24/7", "tel:0861322322"},
		},
		OnlineResources: []OnlineResource{
			{"Lifeline South Africa", "https://lifeline.co.za", "24/7 crisis support"},
		},
	},
	"NG": {
		Emergency: "199",
		Hotlines: []Hotline{
			{"Emergency Services", "199", "For immediate life-threatening emergencies", "24/7", "tel:199"},
			{"Lagos State Emergency", "767", "Emergency services", "24/7", "tel:767"},
		},
	},
	"EG": {
		Emergency: "123",
		Hotlines: []Hotline{
			{"Emergency Services", "123", "For immediate life-threatening emergencies", "24/7", "tel:123"},
		},
	},
	"SA": {
		Emergency: "911",
		Hotlines: []Hotline{
			{"Emergency Services", "911", "For immediate life-threatening emergencies", "24/7", "tel:911"},
			{"National Center for Mental Health Promotion", "920033360", "Mental health support", "24/7", "tel:920033360"},
		},
	},
	"AE": {
		Emergency: "999",
		Hotlines: []Hotline{
			{"Emergency Services", "999", "For immediate life-threatening emergencies", "24/7", "tel:999"},
		},
	},
	"TR": {
		Emergency: "112",
		Hotlines: []Hotline{
			{"Emergency Services", "112", "For immediate life-threatening emergencies", "24/7", "tel:112"},
		},
	},
	"JP": {
		Emergency: "110",
		Hotlines: []Hotline{
			{"Emergency Services", "110", "For immediate life-threatening emergencies", "24/7", "tel:110"},
			{"Inochi no Denwa", "0120-738-556", "24/7 suicide prevention", "24/7", "tel:0120738556"},
		},
		OnlineResources: []OnlineResource{
			{"Inochi no Denwa", "https://www.inochinodenwa.org", "Suicide prevention"},
		},
	},
	"KR": {
		Emergency: "112",
		Hotlines: []Hotline{
			{"Emergency Services", "112", "For immediate life-threatening emergencies", "24/7", "tel:112"},
			{"LifeLine Korea", "1588-9191", "24/7 suicide prevention", "24/7", "tel:15889191"},
		},
	},
	"CN": {
		Emergency: "110",
		Hotlines: []Hotline{
			{"Emergency Services", "110", "For immediate life-threatening emergencies", "24/7", "tel:110"},
			{"Beijing Suicide Research and Prevention Center", "400-161-9995", "24/7 suicide prevention", "24/7", "tel:4001619995"},
		},
	},
	"ID": {
		Emergency: "112",
		Hotlines: []Hotline{
			{"Emergency Services", "112", "For immediate life-threatening emergencies", "24/7", "tel:112"},
		},
	},
	"PH": {
		Emergency: "911",
		Hotlines: []Hotline{
			{"Emergency Services", "911", "For immediate life-threatening emergencies", "24/7", "tel:911"},
			{"Hopeline Philippines", "(02) 804-4673", "24/7 suicide prevention", "24/7", "tel:028044673"},
		},
	},
	"TH": {
		Emergency: "191",
		Hotlines: []Hotline{
			{"Emergency Services", "191", "For immediate life-threatening emergencies", "24/7", "tel:191"},
			{"Samaritans of Thailand", "02-713-6791", "24/7 emotional support", "24/7", "tel:027136791"},
		},
	},
	"VN": {
		Emergency: "113",
		Hotlines: []Hotline{
			{"Emergency Services", "113", "For immediate life-threatening emergencies", "24/7", "tel:113"},
		},
	},
	"MY": {
		Emergency: "999",
		Hotlines: []Hotline{
			{"Emergency Services", "999", "For immediate life-threatening emergencies", "24/7", "tel:999"},
			{"Befrienders KL", "03-7627 2929", "24/7 emotional support", "24/7", "tel:0376272929"},
		},
		OnlineResources: []OnlineResource{
			{"Befrienders", "https://www.befrienders.org.my", "24/7 emotional support"},
		},
	},
	"SG": {
		Emergency: "999",
		Hotlines: []Hotline{
			{"Emergency Services", "999", "For immediate life-threatening emergencies", "24/7", "tel:999"},
			{"Samaritans of Singapore", "1-767", "24/7 suicide prevention", "24/7", "tel:1767"},
		},
		OnlineResources: []OnlineResource{
			{"Samaritans of Singapore", "https://www.sos.org.sg", "24/7 suicide prevention"},
		},
	},
	"NZ": {
		Emergency: "111",
		Hotlines: []Hotline{
			{"Emergency Services", "111", "For immediate life-threatening emergencies", "24/7", "tel:111"},
			{"Lifeline Aotearoa", "0800 543 354", "24/7 crisis support", "24/7", "tel:0800543354"},
		},
		OnlineResources: []OnlineResource{
			{"Lifeline Aotearoa", "https://www.lifeline.org.nz", "24/7 crisis support"},
		},
	},
	"IE": {
		Emergency: "112",
		Hotlines: []Hotline{
			{"Emergency Services", "112", "For immediate life-threatening emergencies", "24/7", "tel:112"},
			{"Samaritans Ireland", "116 123", "24/7 emotional support", "24/7", "tel:116123"},
		},
		OnlineResources: []OnlineResource{
			{"Samaritans Ireland", "https://www.samaritans.ie", "24/7 emotional support"},
		},
	},
	"NL": {
		Emergency: "112",
		Hotlines: []Hotline{
			{"Emergency Services", "112", "For immediate life-threatening emergencies", "24/7", "tel:112"},
			{"113 Zelfmoordpreventie", "0900-0113", "24/7 suicide prevention", "24/7", "tel:09000113"},
		},
		OnlineResources: []OnlineResource{
			{"113 Zelfmoordpreventie", "https://www.113.nl", "24/7 suicide prevention"},
		},
	},
	"BE": {
		Emergency: "112",
		Hotlines: []Hotline{
			{"Emergency Services", "112", "For immediate life-threatening emergencies", "24/7", "tel:112"},
			{"Centrum ter Preventie van Zelfdoding", "1813", "24/7 suicide prevention", "24/7", "tel:1813"},
		},
	},
	"CH": {
		Emergency: "112",
		Hotlines: []Hotline{
			{"Emergency Services", "112", "For immediate life-threatening emergencies", "24/7", "tel:112"},
			{"Die Dargebotene Hand", "143", "24/7 emotional support", "24/7", "tel:143"},
		},
	},
	"SE": {
		Emergency: "112",
		Hotlines: []Hotline{
			{"Emergency Services", "112", "For immediate life-threatening emergencies", "24/7", "tel:112"},
			{"Mind", "901 01", "24/7 mental health support", "24/7", "tel:90101"},
		},
	},
	"NO": {
		Emergency: "112",
		Hotlines: []Hotline{
			{"Emergency Services", "112", "For immediate life-threatening emergencies", "24/7", "tel:112"},
			{"Mental Helse", "116 123", "24/7 mental health support", "24/7", "tel:116123"},
		},
	},
	"DK": {
		Emergency: "112",
		Hotlines: []Hotline{
			{"Emergency Services", "112", "For immediate life-threatening emergencies", "24/7", "tel:112"},
			{"Livslinien", "70 201 201", "24/7 suicide prevention", "24/7", "tel:70201201"},
		},
	},
	"FI": {
		Emergency: "112",
		Hotlines: []Hotline{
			{"Emergency Services", "112", "For immediate life-threatening emergencies", "24/7", "tel:112"},
			{"Crisis Helpline", "09 2525 0111", "24/7 crisis support", "24/7", "tel:0925250111"},
		},
	},
	"PL": {
		Emergency: "112",
		Hotlines: []Hotline{
			{"Emergency Services", "112", "For immediate life-threatening emergencies", "24/7", "tel:112"},
			{"Telefon Zaufania", "116 123", "24/7 emotional support", "24/7", "tel:116123"},
		},
	},
	"RU": {
		Emergency: "112",
		Hotlines: []Hotline{
			{"Emergency Services", "112", "For immediate life-threatening emergencies", "24/7", "tel:112"},
			{"Crisis Helpline", "8-800-2000-122", "24/7 crisis support", "24/7", "tel:88002000122"},
		},
	},
	"GR": {
		Emergency: "112",
		Hotlines: []Hotline{
			{"Emergency Services", "112", "For immediate life-threatening emergencies", "24/7", "tel:112"},
			{"Klimaka", "1018", "24/7 suicide prevention", "24/7", "tel:1018"},
		},
	},
	"PT": {
		Emergency: "112",
		Hotlines: []Hotline{
			{"Emergency Services", "112", "For immediate life-threatening emergencies", "24/7", "tel:112"},
			{"SOS Voz Amiga", "213 544 545", "24/7 emotional support", "24/7", "tel:213544545"},
		},
	},
}

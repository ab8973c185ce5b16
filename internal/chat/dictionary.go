package chat

import (
	"strconv"

	"hopeconnect/internal/models"
)

// Service types HopeBot knows about.
const (
	Food       = "food"
	Shelter    = "shelter"
	Healthcare = "healthcare"
	Addiction  = "addiction"
	Employment = "employment"
)

// ServiceTypes is the display order used when listing what a location offers.
var ServiceTypes = []string{Food, Shelter, Healthcare, Addiction, Employment}

// locations is matched in order; the first name found in the message wins.
var locations = []string{
	"london",
	"manchester",
	"birmingham",
	"leeds",
	"glasgow",
	"cardiff",
}

type keyword struct {
	word        string
	serviceType string
}

// keywords is matched in order; the first keyword found in the message wins.
var keywords = []keyword{
	{"food", Food},
	{"hungry", Food},
	{"meal", Food},
	{"shelter", Shelter},
	{"sleep", Shelter},
	{"bed", Shelter},
	{"hostel", Shelter},
	{"housing", Shelter},
	{"doctor", Healthcare},
	{"gp", Healthcare},
	{"health", Healthcare},
	{"medical", Healthcare},
	{"clinic", Healthcare},
	{"addiction", Addiction},
	{"drug", Addiction},
	{"alcohol", Addiction},
	{"drink", Addiction},
	{"job", Employment},
	{"work", Employment},
	{"employment", Employment},
	{"training", Employment},
}

var listings = map[string]map[string][]models.ServiceListing{
	"london": {
		Food: {
			{Name: "Southwark Community Kitchen", Address: "12 Borough Road, London SE1 0AA", Phone: "020 7946 0101", Hours: "Mon-Sat 12:00-14:00", Notes: "Hot lunch, no referral needed"},
			{Name: "Camden Food Bank", Address: "40 Pratt Street, London NW1 0DB", Phone: "020 7946 0102", Hours: "Tue, Thu 10:00-13:00", Notes: "Voucher from a support worker"},
		},
		Shelter: {
			{Name: "Thameside Night Shelter", Address: "3 Tooley Street, London SE1 2PF", Phone: "020 7946 0103", Hours: "Daily from 19:00", Notes: "Call ahead after 17:00"},
		},
		Healthcare: {
			{Name: "Great Chapel Street Medical Centre", Address: "13 Great Chapel Street, London W1F 8FL", Phone: "020 7946 0104", Hours: "Mon-Fri 09:00-12:30", Notes: "GP for people without a fixed address"},
		},
		Addiction: {
			{Name: "Riverside Recovery Hub", Address: "88 Commercial Road, London E1 1NU", Phone: "020 7946 0105", Hours: "Mon-Fri 10:00-16:00", Notes: "Drop-in and needle exchange"},
		},
		Employment: {
			{Name: "Pathways to Work London", Address: "21 Old Street, London EC1V 9HL", Phone: "020 7946 0106", Hours: "Mon-Thu 09:30-16:30", Notes: "CV help and interview clothes"},
		},
	},
	"manchester": {
		Food: {
			{Name: "Ancoats Soup Run", Address: "Piccadilly Gardens, Manchester M1 1RG", Phone: "0161 496 0201", Hours: "Daily 20:00-21:00"},
		},
		Shelter: {
			{Name: "Northern Quarter Night Stop", Address: "7 Tib Street, Manchester M4 1LA", Phone: "0161 496 0202", Hours: "Daily from 20:00", Notes: "Referral via the council outreach team"},
		},
		Healthcare: {
			{Name: "Urban Village Medical Practice", Address: "Ancoats Urban Village, Manchester M4 6AQ", Phone: "0161 496 0203", Hours: "Mon-Fri 08:30-18:00"},
		},
		Addiction: {
			{Name: "Change Grow Live Manchester", Address: "18 Lever Street, Manchester M1 1DE", Phone: "0161 496 0204", Hours: "Mon-Fri 09:00-17:00"},
		},
		Employment: {
			{Name: "Manchester Works Hub", Address: "Central Library, St Peter's Square, Manchester M2 5PD", Phone: "0161 496 0205", Hours: "Mon-Fri 10:00-15:00"},
		},
	},
	"birmingham": {
		Food: {
			{Name: "Digbeth Food Hub", Address: "55 High Street Deritend, Birmingham B12 0LN", Phone: "0121 496 0301", Hours: "Mon, Wed, Fri 11:00-14:00"},
		},
		Shelter: {
			{Name: "Snow Hill Emergency Beds", Address: "2 Colmore Row, Birmingham B3 2QD", Phone: "0121 496 0302", Hours: "Daily from 18:30"},
		},
		Healthcare: {
			{Name: "Birmingham Homeless Health Centre", Address: "Lower Essex Street, Birmingham B5 6SN", Phone: "0121 496 0303", Hours: "Mon-Fri 09:00-17:00"},
		},
		Addiction: {
			{Name: "Aquarius Drop-in", Address: "14 Bull Street, Birmingham B4 6AF", Phone: "0121 496 0304", Hours: "Mon-Fri 10:00-16:00"},
		},
	},
	"leeds": {
		Food: {
			{Name: "Leeds Kirkgate Kitchen", Address: "Kirkgate Market, Leeds LS2 7HY", Phone: "0113 496 0401", Hours: "Tue-Sat 12:00-14:00"},
		},
		Shelter: {
			{Name: "St George's Crypt", Address: "Great George Street, Leeds LS1 3BR", Phone: "0113 496 0402", Hours: "Daily 24 hours"},
		},
		Employment: {
			{Name: "Leeds Skills Exchange", Address: "Merrion Centre, Leeds LS2 8NG", Phone: "0113 496 0403", Hours: "Mon-Fri 09:00-16:00"},
		},
	},
	"glasgow": {
		Food: {
			{Name: "Merchant City Food Share", Address: "30 Candleriggs, Glasgow G1 1LD", Phone: "0141 496 0501", Hours: "Mon-Fri 12:00-13:30"},
		},
		Shelter: {
			{Name: "Clyde Night Shelter", Address: "180 Clyde Street, Glasgow G1 4JY", Phone: "0141 496 0502", Hours: "Daily from 21:00"},
		},
		Healthcare: {
			{Name: "Hunter Street Health Centre", Address: "55 Hunter Street, Glasgow G4 0UP", Phone: "0141 496 0503", Hours: "Mon-Fri 08:45-16:45"},
		},
		Addiction: {
			{Name: "Glasgow Recovery Cafe", Address: "12 Bath Street, Glasgow G2 1HF", Phone: "0141 496 0504", Hours: "Mon-Sat 10:00-15:00"},
		},
	},
	"cardiff": {
		Food: {
			{Name: "Cardiff Bay Community Pantry", Address: "9 Bute Street, Cardiff CF10 5AN", Phone: "029 2018 0601", Hours: "Wed, Sat 10:00-12:00"},
		},
		Shelter: {
			{Name: "Wallich Night Shelter", Address: "14 Tresillian Terrace, Cardiff CF10 5DE", Phone: "029 2018 0602", Hours: "Daily from 20:00"},
		},
		Healthcare: {
			{Name: "Cardiff Health Inclusion Service", Address: "Dumfries Place, Cardiff CF10 3FN", Phone: "029 2018 0603", Hours: "Mon-Fri 09:00-13:00"},
		},
	},
}

// DirectoryEntries flattens the listings for search indexing, in location,
// service type, then listing order. IDs are stable across runs.
func DirectoryEntries() []models.DirectoryEntry {
	var out []models.DirectoryEntry
	for _, loc := range locations {
		for _, st := range ServiceTypes {
			for i, l := range listings[loc][st] {
				out = append(out, models.DirectoryEntry{
					ID:             entryID(loc, st, i),
					Location:       loc,
					ServiceType:    st,
					ServiceListing: l,
				})
			}
		}
	}
	return out
}

func entryID(location, serviceType string, i int) string {
	return location + "-" + serviceType + "-" + strconv.Itoa(i+1)
}

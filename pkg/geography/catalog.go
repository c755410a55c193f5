package geography

import (
	"encoding/json"
	"log"
	"os"
	"sort"
)

// Catalog maps states to their districts for the filter dropdowns.
// It always works: an optional geography.json can override the built-in
// table, and any problem loading it is logged and ignored so the price
// search never blocks on this dependency.
type Catalog struct {
	states    []string
	districts map[string][]string
}

type geoFile struct {
	States         []string            `json:"states"`
	StateDistricts map[string][]string `json:"stateDistricts"`
}

// Load builds the catalog, overriding the built-in table with the file at
// path when it exists and parses.
func Load(path string) *Catalog {
	c := &Catalog{states: defaultStates, districts: defaultDistricts}
	if path == "" {
		return c
	}
	b, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[geo] %s not readable, using built-in table: %v", path, err)
		return c
	}
	var gf geoFile
	if err := json.Unmarshal(b, &gf); err != nil || len(gf.States) == 0 {
		log.Printf("[geo] %s not usable, using built-in table", path)
		return c
	}
	states := append([]string(nil), gf.States...)
	sort.Strings(states)
	c.states = states
	if gf.StateDistricts != nil {
		c.districts = gf.StateDistricts
	}
	log.Printf("[geo] loaded %d states from %s", len(states), path)
	return c
}

// States returns all known states in sorted order.
func (c *Catalog) States() []string {
	return append([]string(nil), c.states...)
}

// Districts returns the districts of a state, or an empty list for an
// unknown state. Never nil, never an error.
func (c *Catalog) Districts(state string) []string {
	d, ok := c.districts[state]
	if !ok {
		return []string{}
	}
	return append([]string(nil), d...)
}

// StateDistricts returns the full mapping for the /geography payload.
func (c *Catalog) StateDistricts() map[string][]string {
	out := make(map[string][]string, len(c.districts))
	for k, v := range c.districts {
		out[k] = append([]string(nil), v...)
	}
	return out
}

var defaultStates = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Delhi", "Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand",
	"Karnataka", "Kerala", "Madhya Pradesh", "Maharashtra", "Manipur",
	"Meghalaya", "Mizoram", "Nagaland", "Odisha", "Punjab", "Rajasthan",
	"Sikkim", "Tamil Nadu", "Telangana", "Tripura", "Uttar Pradesh",
	"Uttarakhand", "West Bengal",
}

var defaultDistricts = map[string][]string{
	"Andhra Pradesh":   {"Anantapur", "Chittoor", "East Godavari", "Guntur", "Kadapa", "Krishna", "Kurnool", "Nellore", "Prakasam", "Srikakulam", "Visakhapatnam", "Vizianagaram", "West Godavari"},
	"Assam":            {"Barpeta", "Bongaigaon", "Cachar", "Darrang", "Dibrugarh", "Golaghat", "Jorhat", "Kamrup", "Lakhimpur", "Nagaon", "Sonitpur"},
	"Bihar":            {"Araria", "Aurangabad", "Begusarai", "Bhagalpur", "Darbhanga", "Gaya", "Katihar", "Madhubani", "Muzaffarpur", "Nalanda", "Patna", "Purnia", "Rohtas", "Samastipur", "Saran", "Vaishali"},
	"Chhattisgarh":     {"Bastar", "Bilaspur", "Dhamtari", "Durg", "Janjgir", "Korba", "Mahasamund", "Raigarh", "Raipur", "Rajnandgaon", "Surguja"},
	"Delhi":            {"Central", "East", "New Delhi", "North", "North West", "South", "South West", "West"},
	"Goa":              {"North Goa", "South Goa"},
	"Gujarat":          {"Ahmedabad", "Amreli", "Anand", "Banaskantha", "Bharuch", "Bhavnagar", "Gandhinagar", "Junagadh", "Kheda", "Kutch", "Mehsana", "Patan", "Rajkot", "Surat", "Vadodara", "Valsad"},
	"Haryana":          {"Ambala", "Bhiwani", "Faridabad", "Fatehabad", "Gurgaon", "Hisar", "Jind", "Kaithal", "Karnal", "Kurukshetra", "Panipat", "Rewari", "Rohtak", "Sirsa", "Sonepat", "Yamunanagar"},
	"Himachal Pradesh": {"Bilaspur", "Chamba", "Hamirpur", "Kangra", "Kullu", "Mandi", "Shimla", "Sirmour", "Solan", "Una"},
	"Jharkhand":        {"Bokaro", "Deoghar", "Dhanbad", "Dumka", "Giridih", "Hazaribagh", "Palamu", "Ranchi"},
	"Karnataka":        {"Bagalkot", "Ballari", "Belagavi", "Bengaluru Rural", "Bidar", "Chitradurga", "Davangere", "Dharwad", "Hassan", "Kalaburagi", "Kolar", "Mandya", "Mysore", "Raichur", "Shimoga", "Tumkur", "Vijayapura"},
	"Kerala":           {"Alappuzha", "Ernakulam", "Idukki", "Kannur", "Kollam", "Kottayam", "Kozhikode", "Malappuram", "Palakkad", "Thiruvananthapuram", "Thrissur", "Wayanad"},
	"Madhya Pradesh":   {"Balaghat", "Betul", "Bhopal", "Chhatarpur", "Chhindwara", "Dewas", "Dhar", "Guna", "Gwalior", "Hoshangabad", "Indore", "Jabalpur", "Mandsaur", "Morena", "Ratlam", "Rewa", "Sagar", "Satna", "Sehore", "Ujjain", "Vidisha"},
	"Maharashtra":      {"Ahmednagar", "Akola", "Amravati", "Aurangabad", "Beed", "Buldhana", "Chandrapur", "Dhule", "Jalgaon", "Jalna", "Kolhapur", "Latur", "Nagpur", "Nanded", "Nashik", "Osmanabad", "Parbhani", "Pune", "Sangli", "Satara", "Solapur", "Wardha", "Yavatmal"},
	"Odisha":           {"Balasore", "Bargarh", "Bolangir", "Cuttack", "Ganjam", "Kalahandi", "Koraput", "Mayurbhanj", "Puri", "Sambalpur", "Sundargarh"},
	"Punjab":           {"Amritsar", "Barnala", "Bathinda", "Faridkot", "Fatehgarh Sahib", "Ferozepur", "Gurdaspur", "Hoshiarpur", "Jalandhar", "Kapurthala", "Ludhiana", "Mansa", "Moga", "Muktsar", "Patiala", "Rupnagar", "Sangrur", "Tarn Taran"},
	"Rajasthan":        {"Ajmer", "Alwar", "Barmer", "Bharatpur", "Bikaner", "Churu", "Ganganagar", "Hanumangarh", "Jaipur", "Jodhpur", "Kota", "Nagaur", "Sikar", "Udaipur"},
	"Tamil Nadu":       {"Coimbatore", "Cuddalore", "Dindigul", "Erode", "Madurai", "Salem", "Thanjavur", "Tiruchirappalli", "Tirunelveli", "Vellore", "Villupuram"},
	"Telangana":        {"Adilabad", "Karimnagar", "Khammam", "Mahbubnagar", "Medak", "Nalgonda", "Nizamabad", "Rangareddy", "Warangal"},
	"Uttar Pradesh":    {"Agra", "Aligarh", "Allahabad", "Azamgarh", "Bareilly", "Basti", "Etawah", "Faizabad", "Ghaziabad", "Gorakhpur", "Jhansi", "Kanpur", "Lucknow", "Mathura", "Meerut", "Moradabad", "Muzaffarnagar", "Saharanpur", "Varanasi"},
	"Uttarakhand":      {"Almora", "Dehradun", "Haridwar", "Nainital", "Udham Singh Nagar"},
	"West Bengal":      {"Bankura", "Bardhaman", "Birbhum", "Cooch Behar", "Hooghly", "Howrah", "Jalpaiguri", "Malda", "Murshidabad", "Nadia", "North 24 Parganas", "Purulia", "South 24 Parganas"},
}

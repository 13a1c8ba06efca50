package rich

import (
	"sort"

	"github.com/supermodeltools/bizsite/internal/bizsite/model"
)

// Vocabulary is the domain language for one industry. Every field is
// required; LookupVocabulary falls back to DefaultVocabulary, never to a
// partially filled record.
//
// FAQ templates may contain {business}, {city}, {area}, {label}, {trade},
// {phone} and {service} placeholders.
type Vocabulary struct {
	Label     string // "water damage restoration"
	Trade     string // "restoration technicians"
	Emergency bool   // offers round-the-clock response
	Symptoms  []string
	Causes    []string
	Badges    []string
	Process   []Step
	FAQs      []model.FAQItem
}

// Step is one stage of the service process.
type Step struct {
	Title       string
	Description string
}

var defaultProcess = []Step{
	{"Reach Out", "Call or send a message and tell us what you need. We respond quickly."},
	{"Get a Clear Plan", "We assess the job, explain your options and give you an upfront estimate."},
	{"We Get It Done", "Our team completes the work on schedule and cleans up afterwards."},
	{"Follow Up", "We check in to make sure everything meets your expectations."},
}

// DefaultVocabulary is used for industries with no dedicated entry.
var DefaultVocabulary = Vocabulary{
	Label: "professional services",
	Trade: "professionals",
	Symptoms: []string{
		"A problem that keeps coming back after quick fixes",
		"A project you have been putting off because it feels overwhelming",
		"Work that needs to meet code, warranty or insurance requirements",
		"Results that matter too much to leave to guesswork",
	},
	Causes: []string{
		"Normal wear and tear over time",
		"Deferred maintenance",
		"Previous work done without the right tools or training",
		"Changing needs as your home or business grows",
	},
	Badges:  []string{"Licensed & Insured", "Locally Owned", "Upfront Pricing", "Satisfaction Guaranteed"},
	Process: defaultProcess,
	FAQs: []model.FAQItem{
		{Question: "What areas does {business} serve?", Answer: "We serve {area} and the surrounding communities. Call {phone} to confirm we cover your address."},
		{Question: "How do I get an estimate?", Answer: "Call {phone} or use our contact form. We provide clear, upfront estimates before any work begins."},
		{Question: "Are you licensed and insured?", Answer: "Yes. {business} is fully licensed and insured for the work we perform."},
		{Question: "How soon can you start?", Answer: "Most jobs in {city} can be scheduled within a few days, and urgent requests are prioritized."},
	},
}

var vocabularies = map[string]Vocabulary{
	"water-damage": {
		Label:     "water damage restoration",
		Trade:     "restoration technicians",
		Emergency: true,
		Symptoms: []string{
			"Standing water after a flood, storm or burst pipe",
			"Musty odors that signal hidden moisture",
			"Stained, sagging or bubbling ceilings and walls",
			"Warped floors or lifting baseboards",
			"Visible mold growth near damp areas",
		},
		Causes: []string{
			"Burst or frozen pipes",
			"Failed water heaters and appliance supply lines",
			"Roof leaks and clogged gutters",
			"Sewer backups and overflowing toilets",
			"Storm flooding and groundwater intrusion",
		},
		Badges:  []string{"24/7 Emergency Response", "IICRC Certified", "Insurance Claim Help", "Licensed & Insured"},
		Process: []Step{{"Emergency Contact", "Call any time. A technician is dispatched immediately."}, {"Inspection", "We locate every source of moisture with meters and thermal imaging."}, {"Water Removal & Drying", "Commercial extractors, air movers and dehumidifiers dry the structure."}, {"Restoration", "We repair drywall, flooring and finishes so your property looks like nothing happened."}},
		FAQs: []model.FAQItem{
			{Question: "How fast can {business} respond to water damage in {city}?", Answer: "We run an emergency line around the clock and typically arrive within about an hour anywhere in {area}."},
			{Question: "Will my insurance cover {service}?", Answer: "Most homeowner policies cover sudden and accidental water damage. We document everything and work directly with your adjuster."},
			{Question: "How long does drying take?", Answer: "Most structures dry in three to five days. We monitor moisture daily and only remove equipment when readings are normal."},
			{Question: "Can mold grow after water damage?", Answer: "Mold can begin growing within 24 to 48 hours, which is why fast extraction and drying matter so much."},
		},
	},
	"plumbing": {
		Label:     "plumbing",
		Trade:     "plumbers",
		Emergency: true,
		Symptoms: []string{
			"Slow or gurgling drains",
			"Low water pressure throughout the house",
			"Running toilets and dripping faucets",
			"Water heater that cannot keep up",
			"Unexplained spikes in your water bill",
		},
		Causes: []string{
			"Grease, hair and debris buildup in drain lines",
			"Corroded or aging pipes",
			"Tree roots entering sewer lines",
			"Hard water scale",
			"Worn washers, valves and seals",
		},
		Badges:  []string{"Licensed Master Plumbers", "Same-Day Service", "Upfront Flat-Rate Pricing", "Workmanship Guarantee"},
		Process: defaultProcess,
		FAQs: []model.FAQItem{
			{Question: "Do you offer emergency plumbing in {city}?", Answer: "Yes. {business} answers emergency calls day and night throughout {area}. Call {phone}."},
			{Question: "How much does {service} cost?", Answer: "We quote a flat price before we start, so there are no surprises when the job is done."},
			{Question: "Should I repair or replace my water heater?", Answer: "Units older than ten years or with tank leaks are usually worth replacing. We will give you an honest recommendation."},
			{Question: "Can you clear a main sewer line clog?", Answer: "Yes. We use camera inspection and hydro jetting to clear and diagnose main line problems."},
		},
	},
	"roofing": {
		Label: "roofing",
		Trade: "roofers",
		Symptoms: []string{
			"Missing, curled or cracked shingles",
			"Water spots on ceilings after rain",
			"Granules collecting in gutters",
			"Sagging roof lines",
			"Daylight visible through attic boards",
		},
		Causes: []string{
			"Hail and wind storm damage",
			"Age and UV exposure",
			"Poor attic ventilation",
			"Improper installation or flashing",
			"Ice dams and clogged gutters",
		},
		Badges:  []string{"Free Roof Inspections", "Manufacturer Certified", "Storm Damage Experts", "Licensed & Insured"},
		Process: defaultProcess,
		FAQs: []model.FAQItem{
			{Question: "How do I know if I need a new roof?", Answer: "Roofs over 20 years old or with widespread shingle damage are usually candidates for replacement. {business} offers free inspections in {city}."},
			{Question: "Do you help with storm damage insurance claims?", Answer: "Yes. We document the damage and meet with your adjuster to make the process simple."},
			{Question: "How long does {service} take?", Answer: "Most residential roofs are completed in one to three days depending on size and weather."},
			{Question: "What warranties do you offer?", Answer: "We back our workmanship and install materials that carry manufacturer warranties."},
		},
	},
	"hvac": {
		Label:     "heating and cooling",
		Trade:     "HVAC technicians",
		Emergency: true,
		Symptoms: []string{
			"Rooms that never reach the set temperature",
			"Strange noises when the system starts",
			"Rising energy bills",
			"Short cycling or constant running",
			"Weak airflow from vents",
		},
		Causes: []string{
			"Dirty filters and coils",
			"Refrigerant leaks",
			"Worn capacitors and motors",
			"Ductwork leaks",
			"Skipped seasonal maintenance",
		},
		Badges:  []string{"NATE Certified Technicians", "24/7 Emergency Service", "Financing Available", "Satisfaction Guaranteed"},
		Process: defaultProcess,
		FAQs: []model.FAQItem{
			{Question: "How often should my HVAC system be serviced?", Answer: "We recommend a tune-up twice a year, once before cooling season and once before heating season."},
			{Question: "Do you offer same-day {service} in {city}?", Answer: "In most cases, yes. Call {phone} and {business} will get a technician to you quickly."},
			{Question: "Is it time to replace my system?", Answer: "Systems older than 12 to 15 years or needing frequent repairs are often more economical to replace."},
			{Question: "Do you offer financing?", Answer: "Yes. Ask about our financing options when you schedule your estimate."},
		},
	},
	"electrical": {
		Label: "electrical services",
		Trade: "electricians",
		Symptoms: []string{
			"Flickering or dimming lights",
			"Breakers that trip repeatedly",
			"Warm outlets or switch plates",
			"Burning smells near fixtures",
			"Two-prong outlets in an older home",
		},
		Causes: []string{
			"Overloaded circuits",
			"Aging or aluminum wiring",
			"Loose connections",
			"Outdated electrical panels",
			"DIY wiring mistakes",
		},
		Badges:  []string{"Licensed Electricians", "Code Compliant Work", "Upfront Pricing", "Safety First"},
		Process: defaultProcess,
		FAQs: []model.FAQItem{
			{Question: "Can {business} upgrade my electrical panel?", Answer: "Yes. We install and upgrade panels throughout {area}, including permits and inspections."},
			{Question: "Is flickering lighting dangerous?", Answer: "It can signal a loose connection or overloaded circuit. Call {phone} to have it checked."},
			{Question: "Do you install EV chargers?", Answer: "We install Level 2 chargers and make sure your panel can support the load."},
			{Question: "Are your electricians licensed?", Answer: "Every electrician on our team is licensed, insured and background checked."},
		},
	},
	"landscaping": {
		Label: "landscaping",
		Trade: "landscapers",
		Symptoms: []string{
			"Patchy or yellowing lawn",
			"Overgrown beds and shrubs",
			"Poor drainage and standing water",
			"Outdoor space you never use",
			"High water bills from inefficient irrigation",
		},
		Causes: []string{
			"Compacted soil",
			"Wrong plants for the local climate",
			"Irrigation systems out of adjustment",
			"Inconsistent maintenance",
			"Pests and lawn disease",
		},
		Badges:  []string{"Free Design Consultations", "Water-Wise Designs", "Reliable Weekly Crews", "Locally Owned"},
		Process: defaultProcess,
		FAQs: []model.FAQItem{
			{Question: "Do you offer ongoing maintenance in {city}?", Answer: "Yes. {business} offers weekly and seasonal maintenance plans across {area}."},
			{Question: "Can you design a drought-tolerant yard?", Answer: "We specialize in water-wise plantings and efficient drip irrigation."},
			{Question: "When is the best time for {service}?", Answer: "Spring and fall are ideal for most planting, but we work year-round on hardscapes and cleanups."},
			{Question: "Do you provide free estimates?", Answer: "Yes. Call {phone} to schedule a free on-site consultation."},
		},
	},
	"pest-control": {
		Label: "pest control",
		Trade: "pest control specialists",
		Symptoms: []string{
			"Droppings in cabinets, attics or garages",
			"Gnaw marks on wiring or food packaging",
			"Ant trails along counters",
			"Scratching sounds in walls at night",
			"Mud tubes on the foundation",
		},
		Causes: []string{
			"Food and water sources left accessible",
			"Gaps around doors, vents and utility lines",
			"Moisture problems",
			"Seasonal migration",
			"Wood in contact with soil",
		},
		Badges:  []string{"Family & Pet Safe Options", "Licensed Applicators", "Free Re-Treatments", "Satisfaction Guaranteed"},
		Process: defaultProcess,
		FAQs: []model.FAQItem{
			{Question: "Are your treatments safe for pets and kids?", Answer: "We use targeted treatments and will walk you through any precautions before we begin."},
			{Question: "How quickly can {business} come out?", Answer: "We offer fast scheduling throughout {area}. Call {phone}."},
			{Question: "Do you offer recurring {service}?", Answer: "Yes. Quarterly plans keep pests out year-round and include free re-treatments between visits."},
			{Question: "Do you inspect for termites?", Answer: "We provide thorough termite inspections and treatment plans."},
		},
	},
	"cleaning": {
		Label: "cleaning services",
		Trade: "cleaning professionals",
		Symptoms: []string{
			"Not enough time in the week to keep up",
			"Move-in or move-out deadlines",
			"Allergies triggered by dust and dander",
			"Carpets and grout that never look clean",
			"Post-construction dust everywhere",
		},
		Causes: []string{
			"Busy schedules",
			"Pets and kids",
			"Renovation projects",
			"High-traffic commercial spaces",
			"Lack of professional equipment",
		},
		Badges:  []string{"Bonded & Insured", "Eco-Friendly Products", "Background-Checked Staff", "100% Satisfaction"},
		Process: defaultProcess,
		FAQs: []model.FAQItem{
			{Question: "Do I need to be home during the cleaning?", Answer: "No. Many {city} clients give us a key or code. Our staff is bonded, insured and background checked."},
			{Question: "What does {service} include?", Answer: "We provide a detailed checklist with every booking and can customize it to your home."},
			{Question: "Do you bring your own supplies?", Answer: "Yes. We bring professional equipment and eco-friendly products."},
			{Question: "How do I book?", Answer: "Call {phone} or use our contact form to schedule with {business}."},
		},
	},
	"auto-repair": {
		Label: "auto repair",
		Trade: "mechanics",
		Symptoms: []string{
			"Check engine light on",
			"Squealing or grinding brakes",
			"Rough idle or stalling",
			"Fluid spots under the car",
			"Pulling to one side while driving",
		},
		Causes: []string{
			"Worn brake pads and rotors",
			"Skipped oil changes",
			"Failing sensors",
			"Alignment and suspension wear",
			"Battery and charging system problems",
		},
		Badges:  []string{"ASE Certified Mechanics", "Warranty on Parts & Labor", "Honest Estimates", "Family Owned"},
		Process: defaultProcess,
		FAQs: []model.FAQItem{
			{Question: "Do you work on all makes and models?", Answer: "Yes. {business} services domestic and import vehicles."},
			{Question: "How long will {service} take?", Answer: "Many repairs are finished the same day. We will give you a time estimate when you drop off."},
			{Question: "Do you offer a warranty?", Answer: "Our repairs carry a warranty on parts and labor."},
			{Question: "Where are you located?", Answer: "We serve drivers across {area}. Call {phone} for directions or to book."},
		},
	},
}

var industryAliases = map[string]string{
	"water-damage-restoration": "water-damage",
	"restoration":              "water-damage",
	"plumber":                  "plumbing",
	"roofer":                   "roofing",
	"heating-cooling":          "hvac",
	"electrician":              "electrical",
	"lawn-care":                "landscaping",
	"exterminator":             "pest-control",
	"house-cleaning":           "cleaning",
	"janitorial":               "cleaning",
	"mechanic":                 "auto-repair",
}

// LookupVocabulary returns the vocabulary for an industry id. Ids are
// slugified before lookup. Unknown industries get DefaultVocabulary.
func LookupVocabulary(industry string) Vocabulary {
	key := model.Slugify(industry)
	if alias, ok := industryAliases[key]; ok {
		key = alias
	}
	if v, ok := vocabularies[key]; ok {
		return v
	}
	return DefaultVocabulary
}

// Industries lists the industry ids with a dedicated vocabulary.
func Industries() []string {
	ids := make([]string, 0, len(vocabularies))
	for id := range vocabularies {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

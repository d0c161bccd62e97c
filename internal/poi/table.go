package poi

// cities is the static lookup table. Costs are per-person estimates in the
// destination's typical major currency unit.
var cities = []City{
	{
		City:    "Rome",
		Country: "Italy",
		Sights: []Sight{
			{Title: "Colosseum", Lat: 41.8902, Lng: 12.4922, Tags: []string{"history", "landmark"}, EstCost: 18, Open: "09:00", Close: "19:00"},
			{Title: "Trevi Fountain", Lat: 41.9009, Lng: 12.4833, Tags: []string{"landmark", "free"}, EstCost: 0},
			{Title: "Vatican Museums", Lat: 41.9065, Lng: 12.4536, Tags: []string{"art", "museum"}, EstCost: 20, Open: "08:00", Close: "18:00", Closed: []string{"Sunday"}},
			{Title: "Pantheon", Lat: 41.8986, Lng: 12.4769, Tags: []string{"history", "landmark"}, EstCost: 5, Open: "09:00", Close: "19:00"},
			{Title: "Villa Borghese Gardens", Lat: 41.9142, Lng: 12.4923, Tags: []string{"park", "free"}, EstCost: 0},
		},
		SignatureFoods: []string{"Cacio e pepe", "Supplì", "Maritozzo", "Carbonara"},
	},
	{
		City:    "Paris",
		Country: "France",
		Sights: []Sight{
			{Title: "Eiffel Tower", Lat: 48.8584, Lng: 2.2945, Tags: []string{"landmark"}, EstCost: 29, Open: "09:30", Close: "23:00"},
			{Title: "Louvre Museum", Lat: 48.8606, Lng: 2.3376, Tags: []string{"art", "museum"}, EstCost: 22, Open: "09:00", Close: "18:00", Closed: []string{"Tuesday"}},
			{Title: "Sacré-Cœur", Lat: 48.8867, Lng: 2.3431, Tags: []string{"landmark", "free"}, EstCost: 0, Open: "06:30", Close: "22:30"},
			{Title: "Jardin du Luxembourg", Lat: 48.8462, Lng: 2.3372, Tags: []string{"park", "free"}, EstCost: 0},
			{Title: "Musée d'Orsay", Lat: 48.8600, Lng: 2.3266, Tags: []string{"art", "museum"}, EstCost: 16, Open: "09:30", Close: "18:00", Closed: []string{"Monday"}},
		},
		SignatureFoods: []string{"Croissant", "Steak frites", "Crêpes", "Macarons"},
	},
	{
		City:    "Tokyo",
		Country: "Japan",
		Sights: []Sight{
			{Title: "Senso-ji Temple", Lat: 35.7148, Lng: 139.7967, Tags: []string{"temple", "free"}, EstCost: 0, Open: "06:00", Close: "17:00"},
			{Title: "Meiji Shrine", Lat: 35.6764, Lng: 139.6993, Tags: []string{"shrine", "free"}, EstCost: 0},
			{Title: "teamLab Planets", Lat: 35.6494, Lng: 139.7898, Tags: []string{"art", "modern"}, EstCost: 3800, Open: "09:00", Close: "22:00"},
			{Title: "Shibuya Crossing", Lat: 35.6595, Lng: 139.7005, Tags: []string{"landmark", "free"}, EstCost: 0},
			{Title: "Tokyo Skytree", Lat: 35.7101, Lng: 139.8107, Tags: []string{"landmark", "view"}, EstCost: 2100, Open: "10:00", Close: "21:00"},
		},
		SignatureFoods: []string{"Sushi", "Ramen", "Monjayaki", "Taiyaki"},
	},
	{
		City:    "Barcelona",
		Country: "Spain",
		Sights: []Sight{
			{Title: "Sagrada Família", Lat: 41.4036, Lng: 2.1744, Tags: []string{"architecture", "landmark"}, EstCost: 26, Open: "09:00", Close: "20:00"},
			{Title: "Park Güell", Lat: 41.4145, Lng: 2.1527, Tags: []string{"park", "architecture"}, EstCost: 10, Open: "09:30", Close: "19:30"},
			{Title: "La Barceloneta Beach", Lat: 41.3784, Lng: 2.1925, Tags: []string{"beach", "free"}, EstCost: 0},
			{Title: "Gothic Quarter walk", Lat: 41.3833, Lng: 2.1764, Tags: []string{"history", "free"}, EstCost: 0},
			{Title: "Casa Batlló", Lat: 41.3916, Lng: 2.1649, Tags: []string{"architecture"}, EstCost: 29, Open: "09:00", Close: "20:00"},
		},
		SignatureFoods: []string{"Pa amb tomàquet", "Bombas", "Crema catalana", "Vermut"},
	},
	{
		City:    "Lisbon",
		Country: "Portugal",
		Sights: []Sight{
			{Title: "Belém Tower", Lat: 38.6916, Lng: -9.2160, Tags: []string{"history", "landmark"}, EstCost: 8, Open: "10:00", Close: "18:00", Closed: []string{"Monday"}},
			{Title: "Miradouro da Senhora do Monte", Lat: 38.7190, Lng: -9.1334, Tags: []string{"view", "free"}, EstCost: 0},
			{Title: "Jerónimos Monastery", Lat: 38.6979, Lng: -9.2067, Tags: []string{"history"}, EstCost: 12, Open: "09:30", Close: "18:00", Closed: []string{"Monday"}},
			{Title: "Alfama district walk", Lat: 38.7131, Lng: -9.1254, Tags: []string{"history", "free"}, EstCost: 0},
			{Title: "Oceanário de Lisboa", Lat: 38.7636, Lng: -9.0938, Tags: []string{"family"}, EstCost: 25, Open: "10:00", Close: "20:00"},
		},
		SignatureFoods: []string{"Pastel de nata", "Bacalhau à Brás", "Bifana", "Ginjinha"},
	},
	{
		City:    "New York",
		Country: "United States",
		Sights: []Sight{
			{Title: "Central Park", Lat: 40.7829, Lng: -73.9654, Tags: []string{"park", "free"}, EstCost: 0},
			{Title: "The Met", Lat: 40.7794, Lng: -73.9632, Tags: []string{"art", "museum"}, EstCost: 30, Open: "10:00", Close: "17:00", Closed: []string{"Wednesday"}},
			{Title: "Brooklyn Bridge walk", Lat: 40.7061, Lng: -73.9969, Tags: []string{"landmark", "free"}, EstCost: 0},
			{Title: "Top of the Rock", Lat: 40.7587, Lng: -73.9787, Tags: []string{"view"}, EstCost: 40, Open: "09:00", Close: "23:00"},
			{Title: "High Line", Lat: 40.7480, Lng: -74.0048, Tags: []string{"park", "free"}, EstCost: 0},
		},
		SignatureFoods: []string{"Bagels", "New York pizza", "Pastrami on rye", "Cheesecake"},
	},
}

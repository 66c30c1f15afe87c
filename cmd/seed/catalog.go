package main

// seedProduct is one catalog row to load. Prices are in pesos.
type seedProduct struct {
	Name        string
	Brand       string
	ProductType string
	Price       float64
	Cost        float64
	Count       int
}

// The store's launch catalog.
var catalog = []seedProduct{
	// --- Food ---
	{"Pet's Milk Lactose-Free 1L", "Cosi", "Food", 200, 150, 10},
	{"Value Meal Dog food in Can 390g", "Vitality", "Food", 160, 110, 10},
	{"Vitality High Energy", "Vitality", "Food", 280, 230, 10},
	{"Vitality Classic", "Vitality", "Food", 250, 200, 10},
	{"Royal Canin Hairball Care Adult Wet Cat Food", "Royal Canin", "Food", 75, 25, 10},
	{"Royal Canin Urinary Care Cat Slices in Gravy", "Royal Canin", "Food", 85, 35, 10},
	{"Royal Canin Renal Can Wet Food for Dogs", "Royal Canin", "Food", 180, 130, 10},
	{"Royal Canin Veterinary Gastrointestinal", "Royal Canin", "Food", 180, 130, 10},
	{"Royal Canin Veterinary Canine Urinary Wet Dog Food", "Royal Canin", "Food", 80, 30, 10},
	{"Royal Canin Hepatic Adult Wet Dog Food", "Royal Canin", "Food", 180, 130, 10},
	{"Royal Canin Recovery for Dogs and Cats Canned", "Royal Canin", "Food", 300, 250, 10},
	{"Dr. Healmedix Hepatic 1.5kg Dog Dry Food", "Healmedix", "Food", 1400, 1300, 10},
	{"Pedigree Dentastix Daily Oral Care", "Pedigree", "Food", 75, 125, 10},
	{"Pedigree Puppy Chicken Chunks in Gravy Wet Dog Food", "Pedigree", "Food", 48, 38, 10},
	{"Pedigree Puppy Wet Dog Food Beef Flavor in Gravy", "Pedigree", "Food", 45, 35, 10},
	{"Pedigree Adult Beef in Gravy Wet Dog", "Pedigree", "Food", 45, 35, 10},
	{"Special Delight Tuna and Ocean Fish", "Special Delight", "Food", 40, 30, 10},
	{"Special Delight Tuna and Salmon Mousse", "Special Delight", "Food", 350, 250, 8},
	{"Special Delight Red Meat in Jelly", "Special Delight", "Food", 40, 30, 10},
	{"Whiskas Junior Tuna Wet Cat Food", "Whiskas", "Food", 40, 30, 10},
	{"Whiskas Junior Mackerel Wet Cat Food", "Whiskas", "Food", 40, 30, 10},
	{"Tuna Cat Food Pouch for Adult", "Whiskas", "Food", 35, 25, 10},
	{"Sheba Wet Cat Food", "Sheba", "Food", 45, 35, 10},
	{"Kitekat Wet Cat Food Chicken and Tuna", "Kitekat", "Food", 30, 20, 10},
	{"Kitekat Wet Cat Food Chicken and Salmon", "Kitekat", "Food", 30, 20, 10},
	{"Persian Kitten Dry Cat Food 400g", "Royal Canin", "Food", 290, 240, 10},
	{"Royal Canin Breed Health Nutrition Shih tzu", "Royal Canin", "Food", 320, 280, 10},
	{"Nutripe Lamb and Green Tripe Pure", "Nutripe", "Food", 130, 80, 10},
	{"Nutripe Dog Food Beef And Green Tripe", "Nutripe", "Food", 130, 80, 10},
	{"Vitality Valuemeal Dog Food Grain Free", "Vitality", "Food", 160, 110, 10},
	{"Charco's Beef Dog Treats", "Charco's", "Food", 180, 130, 10},
	{"Charco's Original Dog Treats", "Charco's", "Food", 130, 80, 10},

	// --- Vitamins ---
	{"Petdelyte Oral Solution", "Petdelyte", "Vitamin", 70, 50, 10},
	{"LC-Vit Syrup Multivitamins Lysine", "Lysine", "Vitamin", 200, 150, 10},
	{"Hepatosure Sorbitol Inositol Hepato Protectant", "Sorbitol", "Vitamin", 300, 250, 10},
	{"Mondex Water Soluble Powder 340g", "Mondex", "Vitamin", 180, 130, 10},

	// --- Pet Supplies ---
	{"Toothpaste with Chicken Flavor", "Bioline", "Pet Supplies", 70, 20, 10},
	{"Toothpaste with Beef Flavor", "Bioline", "Pet Supplies", 150, 100, 10},
	{"Toothpaste with Mint Flavor", "Bioline", "Pet Supplies", 150, 100, 10},
	{"Toothpaste with Orange Flavor", "Bioline", "Pet Supplies", 150, 100, 10},
	{"Cat Litter Deodorant Powder", "Bioline", "Pet Supplies", 250, 200, 10},
	{"Royal Tail Essentials Madre de Cacao Dog Soap Tutti Fruitie", "Royal Tail", "Pet Supplies", 80, 30, 10},
	{"Royal Tail Shampoo 1Gallon/4000mL", "Royal Tail", "Pet Supplies", 950, 800, 10},
	{"Royal Tail Essentials Madre de Cacao Dog Soap", "Royal Tail", "Pet Supplies", 80, 30, 10},
	{"Royal Tail Sweet Talk", "Royal Tail", "Pet Supplies", 250, 200, 10},
	{"Royal Ear Cleanser", "Royal Tail", "Pet Supplies", 350, 300, 10},
	{"Furfect Soap Biosulfur+Madre de Cacao", "Furfect", "Pet Supplies", 80, 30, 10},
	{"Papi Groom & Bloom 3 in 1 All Purpose Shampoo", "Papi", "Pet Supplies", 150, 100, 10},
	{"Vetspro Fipronil Spray", "Vets Pro", "Pet Supplies", 300, 250, 10},
	{"Wound Spray", "Vets Pro", "Pet Supplies", 350, 300, 10},
}

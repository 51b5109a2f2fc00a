package catalog

import "towergrow/entities"

// defaultCrops is the built-in catalog shipped with the app. Grow durations
// assume hydroponic conditions and run shorter than soil estimates.
var defaultCrops = []entities.CropType{
	// Leafy greens
	{Name: "Lettuce", Icon: "🥬", GrowDays: 30, Color: "#4CAF50"},
	{Name: "Spinach", Icon: "🍃", GrowDays: 25, Color: "#2E7D32"},
	{Name: "Kale", Icon: "🥗", GrowDays: 35, Color: "#33691E"},
	{Name: "Arugula", Icon: "🌿", GrowDays: 21, Color: "#8BC34A"},
	{Name: "Swiss Chard", Icon: "🥬", GrowDays: 30, Color: "#43A047"},
	{Name: "Bok Choy", Icon: "🥬", GrowDays: 28, Color: "#66BB6A"},
	{Name: "Watercress", Icon: "🌱", GrowDays: 14, Color: "#81C784"},
	{Name: "Microgreens", Icon: "🌱", GrowDays: 10, Color: "#AED581"},
	// Herbs
	{Name: "Basil", Icon: "🌿", GrowDays: 25, Color: "#66BB6A"},
	{Name: "Cilantro", Icon: "🌿", GrowDays: 20, Color: "#7CB342"},
	{Name: "Mint", Icon: "🌿", GrowDays: 18, Color: "#4CAF50"},
	{Name: "Parsley", Icon: "🌿", GrowDays: 28, Color: "#558B2F"},
	{Name: "Dill", Icon: "🌿", GrowDays: 22, Color: "#689F38"},
	{Name: "Oregano", Icon: "🌿", GrowDays: 30, Color: "#827717"},
	{Name: "Thyme", Icon: "🌿", GrowDays: 30, Color: "#9E9D24"},
	{Name: "Chives", Icon: "🌿", GrowDays: 28, Color: "#7CB342"},
	{Name: "Rosemary", Icon: "🌿", GrowDays: 45, Color: "#5D8A3C"},
	{Name: "Sage", Icon: "🌿", GrowDays: 35, Color: "#6D8B74"},
	// Fruiting crops
	{Name: "Tomato", Icon: "🍅", GrowDays: 60, Color: "#EF5350"},
	{Name: "Cherry Tomato", Icon: "🍅", GrowDays: 55, Color: "#E53935"},
	{Name: "Peppers", Icon: "🫑", GrowDays: 50, Color: "#43A047"},
	{Name: "Chili", Icon: "🌶️", GrowDays: 65, Color: "#D32F2F"},
	{Name: "Cucumber", Icon: "🥒", GrowDays: 35, Color: "#66BB6A"},
	{Name: "Zucchini", Icon: "🥒", GrowDays: 40, Color: "#558B2F"},
	{Name: "Strawberry", Icon: "🍓", GrowDays: 45, Color: "#E91E63"},
	{Name: "Eggplant", Icon: "🍆", GrowDays: 65, Color: "#7B1FA2"},
	// Brassicas & roots
	{Name: "Broccoli", Icon: "🥦", GrowDays: 55, Color: "#388E3C"},
	{Name: "Cauliflower", Icon: "🥦", GrowDays: 60, Color: "#BDBDBD"},
	{Name: "Cabbage", Icon: "🥬", GrowDays: 50, Color: "#2E7D32"},
	{Name: "Radish", Icon: "🔴", GrowDays: 22, Color: "#C62828"},
	{Name: "Turnip", Icon: "🟣", GrowDays: 35, Color: "#6A1B9A"},
	// Legumes & others
	{Name: "Snap Peas", Icon: "🫛", GrowDays: 40, Color: "#558B2F"},
	{Name: "Green Beans", Icon: "🫘", GrowDays: 45, Color: "#33691E"},
	{Name: "Celery", Icon: "🥬", GrowDays: 60, Color: "#A5D6A7"},
	{Name: "Green Onion", Icon: "🧅", GrowDays: 20, Color: "#7CB342"},
	{Name: "Fennel", Icon: "🌿", GrowDays: 40, Color: "#C0CA33"},
	// Specialty
	{Name: "Edible Flowers", Icon: "🌸", GrowDays: 30, Color: "#F48FB1"},
	{Name: "Wheatgrass", Icon: "🌾", GrowDays: 8, Color: "#9CCC65"},
	{Name: "Lemongrass", Icon: "🌾", GrowDays: 50, Color: "#CDDC39"},
}

package classifier

// categoryRule binds one category to its keyword list. Rules are evaluated in
// slice order and the first keyword hit wins, so the ordering below is part of
// the contract: "frozen yogurt" is Dairy, not Frozen, because Dairy is
// evaluated first.
type categoryRule struct {
	category string
	keywords []string
}

// Keywords that can only ever hit an earlier rule are omitted: "beef jerky"
// always matches Meat before Snacks, "cream" matches Dairy before Health &
// Beauty, "massage oil" and "petroleum jelly" match Pantry first, and every
// "frozen ..." phrase is covered by the bare "frozen" keyword.
var categoryRules = []categoryRule{
	{"Fruits", []string{
		"apple", "banana", "orange", "grape", "strawberry", "blueberry",
		"mango", "pineapple", "watermelon", "kiwi", "peach", "pear", "cherry",
		"lemon", "lime", "avocado", "papaya", "coconut", "pomegranate", "fig",
		"date", "cranberry", "raspberry", "blackberry", "plum", "apricot",
		"nectarine", "guava", "passion fruit", "dragon fruit",
	}},
	{"Vegetables", []string{
		"carrot", "potato", "onion", "tomato", "cucumber", "lettuce",
		"spinach", "broccoli", "cauliflower", "cabbage", "pepper",
		"bell pepper", "chili", "garlic", "ginger", "celery", "radish",
		"beetroot", "corn", "peas", "beans", "mushroom", "eggplant",
		"zucchini", "squash", "pumpkin", "sweet potato", "turnip", "leek",
		"asparagus", "artichoke", "okra", "brussels sprouts", "kale",
		"arugula", "bok choy",
	}},
	{"Dairy", []string{
		"milk", "cheese", "yogurt", "butter", "cream", "sour cream",
		"cottage cheese", "mozzarella", "cheddar", "parmesan", "feta",
		"ricotta", "gouda", "swiss", "brie", "camembert", "cream cheese",
		"mascarpone", "buttermilk", "kefir", "greek yogurt", "ice cream",
		"frozen yogurt",
	}},
	{"Meat", []string{
		"chicken", "beef", "pork", "lamb", "turkey", "duck", "fish", "salmon",
		"tuna", "shrimp", "crab", "lobster", "sausage", "bacon", "ham",
		"steak", "chops", "ground beef", "ground turkey", "ground chicken",
		"ribs", "wings", "drumsticks", "thighs", "breast", "fillet", "cutlet",
		"meatball", "patty", "burger", "hot dog", "salami", "pepperoni",
		"prosciutto", "chorizo", "bratwurst", "kielbasa",
	}},
	{"Bakery", []string{
		"bread", "bagel", "croissant", "muffin", "donut", "cake", "pie",
		"cookie", "biscuit", "cracker", "pretzel", "roll", "bun", "pita",
		"tortilla", "waffle", "pancake", "french toast", "scone", "pastry",
		"tart", "brownie", "cupcake", "baguette", "sourdough", "rye bread",
		"whole wheat", "white bread", "naan", "flatbread",
	}},
	{"Beverages", []string{
		"water", "juice", "soda", "coffee", "tea", "beer", "wine", "whiskey",
		"vodka", "rum", "gin", "brandy", "cognac", "champagne", "prosecco",
		"cider", "lemonade", "iced tea", "energy drink", "sports drink",
		"coconut water", "almond milk", "soy milk", "oat milk", "rice milk",
		"coconut milk", "kombucha", "smoothie", "shake", "frappuccino",
		"latte", "cappuccino", "espresso", "americano", "mocha",
		"hot chocolate", "cocoa",
	}},
	{"Snacks", []string{
		"chips", "crackers", "nuts", "almonds", "walnuts", "cashews",
		"pistachios", "peanuts", "popcorn", "pretzels", "trail mix",
		"granola", "cereal", "candy", "chocolate", "gummy", "lollipop", "gum",
		"mints", "jerky", "dried fruit", "raisins", "dates", "figs",
		"apricots", "cranberries", "banana chips", "apple chips",
		"veggie chips", "pita chips", "tortilla chips", "cheese puffs",
		"cheetos", "doritos", "lays", "pringles",
	}},
	{"Frozen", []string{
		"frozen", "ice cream", "sorbet", "gelato",
	}},
	{"Pantry", []string{
		"rice", "pasta", "noodles", "flour", "sugar", "salt", "spices",
		"herbs", "oil", "vinegar", "sauce", "ketchup", "mustard", "mayo",
		"mayonnaise", "relish", "pickles", "olives", "capers", "anchovies",
		"sardines", "lentils", "chickpeas", "quinoa", "oats", "honey",
		"syrup", "jam", "jelly", "preserves", "marmalade", "peanut butter",
		"almond butter", "cashew butter", "tahini", "hummus", "salsa",
		"pesto", "marinara", "alfredo", "teriyaki", "soy sauce",
		"worcestershire", "hot sauce", "sriracha", "tabasco",
		"barbecue sauce", "ranch", "italian dressing", "caesar dressing",
		"vinaigrette", "balsamic",
	}},
	{"Health & Beauty", []string{
		"shampoo", "conditioner", "soap", "body wash", "lotion",
		"moisturizer", "sunscreen", "deodorant", "antiperspirant",
		"toothpaste", "toothbrush", "floss", "mouthwash", "vitamins",
		"supplements", "medicine", "bandage", "bandaid", "cotton", "q-tip",
		"tissue", "toilet paper", "paper towel", "napkin", "diaper",
		"baby wipes", "makeup", "cosmetics", "perfume", "cologne",
		"aftershave", "razor", "blade", "tampon", "pad", "condom",
		"lubricant", "candle", "incense", "air freshener", "fabric softener",
		"detergent", "bleach", "disinfectant", "hand sanitizer", "alcohol",
		"hydrogen peroxide", "iodine", "betadine", "neosporin", "vaseline",
		"chapstick", "lip balm", "nail polish", "nail file", "tweezers",
		"scissors", "comb", "brush", "hair tie", "bobby pin", "barrette",
		"headband", "scrunchy",
	}},
}

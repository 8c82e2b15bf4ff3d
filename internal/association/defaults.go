package association

// DefaultTables returns the built-in reference tables.
func DefaultTables() *Tables {
	return MustTables(DefaultSource())
}

// DefaultSource returns a fresh copy of the built-in table data.
func DefaultSource() TableSource {
	return TableSource{
		Figures:    defaultFigures(),
		Lexicon:    defaultLexicon(),
		Categories: defaultCategories(),
		Metaphors:  defaultMetaphors(),
	}
}

// Harrison and Roosevelt are listed twice. The later phrase replaces the
// earlier one when the table is built (see NewTables).
func defaultFigures() []FigureEntry {
	return []FigureEntry{
		{"washington", "a general crossing an icy river in a rowboat at dawn"},
		{"adams", "a stern statesman drafting letters by candlelight"},
		{"jefferson", "a tall redhead writing a declaration with a quill pen"},
		{"madison", "a small man holding a giant constitution scroll"},
		{"monroe", "a president drawing a protective line around a map of the americas"},
		{"jackson", "a fierce general standing on a cotton bale barricade"},
		{"harrison", "a frontiersman in front of a log cabin with a jug of cider"},
		{"tyler", "a man waving a banner that reads tippecanoe and tyler too"},
		{"polk", "a president stretching a map westward to the pacific"},
		{"lincoln", "a tall figure in a stovepipe hat freeing slaves"},
		{"grant", "a cigar-chewing general accepting a sword under an apple tree"},
		{"garfield", "a president reading two books at once, one in each hand"},
		{"cleveland", "a heavyset man walking through two separate white house doors"},
		{"harrison", "a small man standing in his grandfather's shadow"},
		{"mckinley", "a president in a top hat beside a towering mountain"},
		{"roosevelt", "a rough rider charging up a hill with a big stick"},
		{"taft", "a very large man stuck in a bathtub"},
		{"wilson", "a professor tacking fourteen points onto a world map"},
		{"coolidge", "a silent man in a suit holding a finger to his lips"},
		{"hoover", "a man holding an empty pot in front of a giant dam"},
		{"roosevelt", "a man in a wheelchair speaking into an old radio microphone"},
		{"truman", "a man at a desk with a sign reading the buck stops here"},
		{"eisenhower", "a general in a bomber jacket planning an invasion on a beach map"},
		{"kennedy", "a young man at a podium pointing toward the moon"},
		{"nixon", "a man flashing victory signs while boarding a helicopter"},
		{"reagan", "an actor on horseback telling someone to tear down a wall"},
		{"obama", "a man in shirtsleeves under a poster that reads hope"},
		{"napoleon", "a short general with a hand tucked into his coat on a white horse"},
		{"cleopatra", "a queen in gold reclining on a barge on the nile"},
		{"caesar", "a laurel-crowned general crossing a small river with legions"},
		{"einstein", "a wild-haired scientist writing e=mc2 on a chalkboard"},
		{"newton", "a man under a tree being struck on the head by an apple"},
		{"shakespeare", "a bald playwright holding a skull on a wooden stage"},
		{"gandhi", "a thin man in a white shawl spinning thread at a wheel"},
		{"churchill", "a bulldog-faced man with a cigar flashing a v sign"},
		{"columbus", "three wooden ships sailing toward an unknown horizon"},
		{"edison", "an inventor holding up a glowing light bulb"},
		{"darwin", "a bearded naturalist sketching finches on a tropical island"},
		{"curie", "a woman holding a glowing green vial in a dark laboratory"},
		{"mozart", "a child in a powdered wig playing a harpsichord blindfolded"},
		{"beethoven", "a wild-haired composer conducting a storm with his ear to the piano"},
		{"galileo", "an astronomer pointing a telescope at the moons of jupiter"},
	}
}

func defaultLexicon() map[string]string {
	return map[string]string{
		"freedom":      "a bird soaring in open sky",
		"liberty":      "a torch held high above a harbor",
		"justice":      "a blindfolded woman holding balanced scales",
		"democracy":    "a crowd of hands dropping ballots into a glass box",
		"equality":     "two people standing on a perfectly level seesaw",
		"independence": "a lone lighthouse standing on a rocky shore",
		"revolution":   "a burning flag carried through a barricaded street",
		"war":          "smoking cannons on a cratered battlefield",
		"peace":        "a white dove carrying an olive branch",
		"hope":         "a single candle burning in a dark room",
		"love":         "two swans forming a heart with their necks",
		"wisdom":       "an old owl wearing spectacles on a pile of books",
		"knowledge":    "an open book with light pouring out of its pages",
		"time":         "a melting clock draped over a tree branch",
		"death":        "a hooded figure holding an hourglass",
		"life":         "a green sprout pushing through cracked earth",
		"power":        "a fist crackling with lightning",
		"wealth":       "a dragon sleeping on a mountain of gold coins",
		"poverty":      "an empty bowl on a bare wooden table",
		"courage":      "a knight facing a towering dragon alone",
		"fear":         "a long shadow reaching across a child's bedroom",
		"anger":        "a volcano erupting red smoke",
		"joy":          "children jumping through a fountain in sunlight",
		"sadness":      "a rain cloud hanging over a single person",
		"truth":        "a mirror reflecting a bright beam of light",
		"trust":        "a hand catching someone falling backwards",
		"friendship":   "two hands clasped across a bridge",
		"memory":       "a glass jar filled with glowing fireflies",
		"change":       "a caterpillar splitting open into a butterfly",
		"growth":       "a giant beanstalk climbing into the clouds",
		"strength":     "an oak tree standing firm in a hurricane",
		"balance":      "a stack of stones resting on a single pebble",
		"victory":      "a golden trophy raised above a cheering crowd",
		"defeat":       "a fallen chess king on a checkered board",
		"law":          "a heavy gavel striking a marble block",
		"science":      "a bubbling flask beside a spinning atom",
		"art":          "a paint-splattered easel in a sunlit studio",
		"music":        "musical notes flying out of a golden trumpet",
		"economy":      "a giant gear turning stacks of coins",
		"government":   "a domed capitol building on a hill",
		"religion":     "a stained glass window glowing at dusk",
		"industry":     "smokestacks rising above a busy factory",
		"technology":   "a circuit board glowing like a city at night",
		"nation":       "a flag planted on the top of a mountain",
		"independent":  "a lone wolf howling on a cliff",
		"slavery":      "heavy iron chains lying broken on the ground",
		"constitution": "an ancient parchment scroll sealed with wax",
	}
}

func defaultCategories() []ConcreteCategory {
	return []ConcreteCategory{
		{
			Name:       "animals",
			Words:      []string{"elephant", "eagle", "lion", "owl", "dolphin", "tiger", "butterfly", "wolf", "horse", "snake", "tortoise", "fox", "bear", "whale"},
			Adjectives: []string{"majestic", "wild", "enormous", "graceful", "fierce", "curious"},
		},
		{
			Name:       "landmarks",
			Words:      []string{"pyramid", "castle", "lighthouse", "bridge", "tower", "temple", "colosseum", "statue", "cathedral", "windmill", "palace", "fortress"},
			Adjectives: []string{"ancient", "towering", "crumbling", "magnificent", "famous", "golden"},
		},
		{
			Name:       "nature",
			Words:      []string{"mountain", "river", "forest", "ocean", "volcano", "waterfall", "desert", "island", "canyon", "glacier", "garden", "meadow"},
			Adjectives: []string{"vast", "misty", "lush", "rugged", "serene", "sunlit"},
		},
		{
			Name:       "objects",
			Words:      []string{"key", "clock", "book", "sword", "crown", "lantern", "anchor", "compass", "hourglass", "mirror", "telescope", "scale", "ladder", "candle"},
			Adjectives: []string{"gleaming", "antique", "oversized", "ornate", "rusty", "glowing"},
		},
		{
			Name:       "fantasy",
			Words:      []string{"dragon", "unicorn", "phoenix", "wizard", "giant", "mermaid", "griffin", "fairy", "golem", "kraken"},
			Adjectives: []string{"mythical", "enchanted", "legendary", "shimmering", "fearsome", "magical"},
		},
		{
			Name:       "phenomena",
			Words:      []string{"lightning", "rainbow", "aurora", "eclipse", "tornado", "comet", "earthquake", "storm", "avalanche", "meteor", "tide"},
			Adjectives: []string{"dazzling", "thundering", "brilliant", "swirling", "blinding", "colossal"},
		},
	}
}

func defaultMetaphors() []MetaphorEntry {
	return []MetaphorEntry{
		{"growth", "a seedling unfurling into a towering tree"},
		{"change", "a chameleon shifting colors on a branch"},
		{"knowledge", "a lit lamp in a vast library"},
		{"wisdom", "an old owl perched on a stack of books"},
		{"time", "sand pouring through a giant hourglass"},
		{"love", "a heart-shaped lock on a bridge railing"},
		{"strength", "a weightlifter raising a boulder overhead"},
		{"courage", "a lion standing alone on a rock at sunset"},
		{"peace", "a calm lake reflecting snow-capped mountains"},
		{"hope", "a sunrise breaking through storm clouds"},
		{"power", "a lightning bolt striking a steel tower"},
		{"memory", "a photograph album opening by itself"},
		{"balance", "a tightrope walker crossing a canyon"},
		{"journey", "a winding road disappearing over the hills"},
		{"success", "a flag planted on a mountain summit"},
		{"danger", "a rope bridge fraying over a deep gorge"},
		{"connection", "glowing threads linking distant islands"},
		{"creativity", "a paintbrush painting a world into existence"},
		{"loss", "an empty swing moving in the wind"},
		{"conflict", "two rams locking horns on a cliff edge"},
		{"unity", "many hands stacked together in a circle"},
		{"transformation", "a lump of coal turning into a diamond"},
	}
}

package game

// defaultWords is the built-in secret word pool.
var defaultWords = []string{
	"Apple", "Bridge", "Candle", "Dragon", "Elephant", "Forest", "Galaxy", "Harmony", "Island", "Jungle",
	"Knight", "Lantern", "Mountain", "Nebula", "Ocean", "Pyramid", "Quartz", "Rainbow", "Saturn", "Treasure",
	"Umbrella", "Violin", "Whisper", "Xylophone", "Yacht", "Zephyr", "Anchor", "Beacon", "Compass", "Diamond",
	"Emerald", "Feather", "Glacier", "Harbor", "Igloo", "Jewel", "Lagoon", "Meteor", "Nectar", "Oracle",
	"Palette", "Quiver", "Riddle", "Starlight", "Temple", "Universe", "Voyage", "Waterfall", "Yonder", "Zodiac",
	"Alpaca", "Blizzard", "Cactus", "Dolphin", "Enigma", "Fjord", "Geyser", "Harpoon", "Inferno", "Jigsaw",
	"Kernel", "Labyrinth", "Meadow", "Nimbus", "Obsidian", "Paradox", "Quasar", "Runway", "Saffron", "Tornado",
	"Utopia", "Vortex", "Wavelength", "Yodel", "Zucchini", "Atlas", "Bonsai", "Chimera", "Dynamo", "Epoch",
	"Fable", "Glimmer", "Harlem", "Inkling", "Juggler", "Keepsake", "Lighthouse", "Monsoon", "Nomad", "Overture",
	"Pinnacle", "Quest", "Reverie", "Serenade", "Timber", "Udon", "Verdict", "Wingman", "Yearbook", "Zenith",
}

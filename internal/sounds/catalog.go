package sounds

// catalog is the factory sound library, grouped by category in display
// order. Ids are unique across categories.
var catalog = []Category{
	{
		Name: "Kicks",
		Sounds: []Sound{
			{1, "MICRO KICK"},
			{2, "NT KICK"},
			{3, "NT KICK B"},
			{4, "NT KICK C"},
			{5, "NT KICK D"},
			{6, "LOCK KIK"},
			{7, "KICK GRIT"},
			{8, "KICK VERB"},
			{9, "KICK MID"},
			{10, "KICK BUMP"},
			{11, "KICK 9X9 DIRT"},
			{12, "KICK 9X9 DIRT B"},
			{13, "KICK 9X9 DIRT C"},
			{14, "KICK 9X9 DIRT D"},
			{15, "KICK 9X9 DIRT E"},
			{16, "KICK HARD"},
			{17, "KICK AIR"},
			{18, "KICK THUD"},
			{19, "CARDIO KICK I"},
			{20, "AFTERPARTY KICK"},
			{21, "NT ALT KICK"},
			{22, "NT ALT KICK B"},
			{23, "NT ALT KICK C"},
			{24, "KICK DIRT"},
			{25, "KICK SUB"},
			{26, "KICK SP"},
			{27, "KICK FLUX"},
			{28, "KICK FLUX B"},
			{29, "KICK SUB B"},
			{30, "KICK OPEN"},
			{31, "BOOMER KICK"},
		},
	},
	{
		Name: "Snares",
		Sounds: []Sound{
			{100, "NT SNARE"},
			{101, "NT SNARE B"},
			{102, "NT SNARE C"},
			{103, "SNARE LO"},
			{104, "SNARE MID"},
			{105, "SNARE HI"},
			{106, "SNARE 6X6 1"},
			{107, "SNARE 6X6 2"},
			{108, "SNARE 6X6 3"},
			{109, "SNARE CLASSIC"},
			{110, "SNARE FAT"},
			{111, "SNARE SMACK"},
			{112, "SNARE BURST"},
			{113, "BRUSHY SNARE 1"},
			{114, "NT SNARE ALT"},
			{115, "NT SNARE ALT B"},
			{116, "NT SNARE ALT C"},
			{117, "SNARE RIM"},
			{118, "SNARE PUNCH"},
			{119, "SNARE POP"},
			{120, "SNARE SNAP"},
			{121, "SNARE VINYL"},
			{122, "SNARE MP3K"},
			{123, "SNARE MINI BM"},
			{124, "SNARE VINYL B"},
			{125, "SNARE RES"},
			{126, "SNARE OPEN"},
			{127, "SNARE WOOD"},
			{128, "QUIK ROLL 3"},
			{129, "LONDON SNARE 2"},
			{130, "NT RIMSHOT"},
			{131, "NT RIMSHOT B"},
			{132, "NT RIMSHOT C"},
			{133, "RIM LO"},
			{134, "RIM MID"},
			{135, "RIM HI"},
			{136, "RIMSHOT DDDI"},
			{137, "RIMSHOT VINYL"},
			{138, "RIMSHOT 7X7 SP"},
			{139, "RIMSHOT DMX"},
			{140, "RIM DARK"},
			{141, "RIM SMACK"},
			{142, "RIM SNAP"},
			{143, "KNOW RIMSHOT 1"},
			{144, "SIDEQUEST SNARE"},
			{145, "AKKOUNTANT RIM 2"},
		},
	},
	{
		Name: "Cymbals and Hats",
		Sounds: []Sound{
			{200, "NT HH CLOSED"},
			{201, "NT HH CLOSED B"},
			{202, "NT HH CLOSED C"},
			{203, "CLOSED HAT LO"},
			{204, "CLOSED HAT MID"},
			{205, "CLOSED HAT HI"},
			{206, "CLOSED HAT PEDAL"},
			{207, "CLOSED HAT FOOT"},
			{208, "HAT CLOSED 9X9"},
			{209, "HAT CLOSED 5X5"},
			{210, "HAT CLOSED 6X6"},
			{211, "HAT CLOSED 8X8"},
			{212, "CLOSED HAT LO B"},
			{213, "CLOSED HAT HI B"},
			{214, "CLOSED HAT AIR"},
			{215, "GOLDEN HAT 1"},
			{216, "CRUNCH HAT 2"},
			{217, "SHINE HAT 4"},
			{218, "NT HH OPEN"},
			{219, "NT HH OPEN B"},
			{220, "NT HH OPEN C"},
			{221, "OPEN HAT REAL"},
			{222, "OPEN HAT DRIVE"},
			{223, "OPEN HAT METAL"},
			{224, "HAT OPEN 9X9"},
			{225, "HAT OPEN 5X5"},
			{226, "HAT OPEN 6X6"},
			{227, "HAT OPEN 8X8"},
			{228, "OPEN HAT LO"},
			{229, "OPEN HAT HI"},
			{230, "OPEN HAT AIR"},
			{231, "GIRTH OPEN HAT 3"},
			{232, "GOLDEN HAT 1 B"},
			{233, "LUCKY DBL HAT 2"},
			{234, "BRUSH HAT 4"},
			{235, "NT RIDE"},
			{236, "NT RIDE B"},
			{237, "RIDE DARK"},
			{238, "RIDE BRITE"},
			{239, "RIDE SAKATA"},
			{240, "CYMBAL MPI"},
			{241, "RIDE 7X7"},
			{242, "RIDE DARK B"},
			{243, "RIDE LITE"},
			{244, "RIDE BELL"},
			{245, "RIDE HI"},
			{246, "TOASTER BELL"},
			{247, "NT RIDE C"},
			{248, "CRASH"},
			{249, "CRASH 9X9"},
			{250, "CHINA 626"},
			{251, "SPLASH"},
			{252, "CRASH CYM"},
			{253, "80 GREAT CRASH"},
		},
	},
	{
		Name: "Percussion",
		Sounds: []Sound{
			{300, "NT CLAP"},
			{301, "NT CLAP B"},
			{302, "NT CLAP C"},
			{303, "CLAP REAL"},
			{304, "CLAP HARD"},
			{305, "CLAP SNAP"},
			{306, "CLAP VINYL"},
			{307, "CLAP TRUMULATOR"},
			{308, "CLAP SP DISCO"},
			{309, "CLAP SP DISCO B"},
			{310, "CLAP DARK"},
			{311, "CLAP LITE"},
			{312, "CLAP AIR"},
			{313, "CLAP NOISE"},
			{314, "GOSPEL CLAP 3"},
			{315, "HOMECOMING CLAP"},
			{316, "DETROIT CLAP 2"},
			{317, "NT TAMBO"},
			{318, "NT TAMBO B"},
			{319, "NT TAMBO C"},
			{320, "HAND DRUM HI"},
			{321, "TAMB"},
			{322, "HAND DRUM LO"},
			{323, "BONGO MID 4"},
			{324, "CONGA MID II"},
			{325, "AGOGO"},
			{326, "BONGO HI"},
			{327, "MARACA"},
			{328, "BONGO LO"},
			{329, "GUIRO"},
			{330, "CLAVE"},
			{331, "CONGA LO"},
			{332, "CONGA HI"},
			{333, "CABASE LMI"},
			{334, "CABASA MP3K"},
			{335, "CABASA LNNDRUM"},
			{336, "SHAKER DMX"},
			{337, "TAMB B"},
			{338, "CLAVE B"},
			{339, "COWBELL"},
			{340, "SHAKER"},
			{341, "HERMES HIHAT 2"},
			{342, "LOWW CLAVE I"},
			{343, "NT PERC"},
			{344, "NT PERC B"},
			{345, "NT PERC C"},
		},
	},
	{
		Name: "Bass",
		Sounds: []Sound{
			{400, "NT BASS"},
			{401, "S95X ROUND"},
			{402, "TUBRO BASS"},
			{403, "E BASS ROUND"},
			{404, "BASIC"},
			{405, "MP3K SUB"},
			{406, "SYN A RE"},
			{407, "UPRIGHT SUB"},
			{408, "E BASS PICK"},
			{409, "THMP"},
			{410, "CAT ENVELOPE"},
			{411, "TB3X3 PUNCH"},
			{412, "UGGBASS"},
			{413, "E BASS PICK B"},
			{414, "PERFECT BASS"},
			{415, "PRODIGY SUB"},
			{416, "S95X SUB"},
			{417, "BASS THUB"},
			{418, "ROCKELBASS MID"},
			{419, "E BASS DIST"},
			{420, "OB SUB"},
			{421, "CX TONE"},
			{422, "BUZZ BASS"},
			{423, "ROCKELBASS SHORT"},
			{424, "MNO EVO FILTER"},
			{425, "SYNTH 4TH HIT"},
			{426, "THIRTY SEVEN SUB"},
			{427, "ORGA"},
			{428, "MUD"},
			{429, "REESE"},
			{430, "P.SIX SIMPLE"},
			{431, "S612 ELECTRIC"},
			{432, "AKUBASS MIDLONG"},
			{458, "PUFF"},
			{459, "RUDE TWANG"},
		},
	},
	{
		Name: "Melodic & Synth",
		Sounds: []Sound{
			{500, "BLUE"},
			{501, "PIANO S95X"},
			{502, "WURLI CLEAN"},
			{503, "MUTE STRATO"},
			{504, "CUTE EMU FLUTE"},
			{505, "ULTRA"},
			{506, "SQUICK"},
			{507, "CLAV 360 PHASER"},
			{508, "BABY CHORD"},
			{509, "BG VOCAL"},
			{510, "SKYLINE STRING"},
			{511, "OCTAVE STAB"},
			{512, "TRUMPET BREEZY"},
			{513, "SCARY VIBES"},
			{514, "SLY SYNTH CHORD"},
			{515, "EPIANO 360"},
			{516, "ORGAN DX VERB"},
			{517, "PLUCK HI BASS"},
			{518, "PLUCK HYBRID"},
			{519, "PROPHET PIANO"},
			{520, "EPIANO 360 BASS"},
			{521, "HOUSEORGAN DE-EX"},
			{522, "SOOTHE STRING"},
			{523, "CELLO PLUCKZ"},
			{524, "HIGH PAN"},
			{525, "SYNTH MICRO FUNK"},
			{526, "DR ORGAN CHORD"},
			{527, "LEADAFT"},
			{528, "SOOTHE STRONG"},
			{529, "SIMPLE TROMBONE"},
			{530, "CELLO 360"},
			{531, "FLUTE 360 FILTER"},
			{532, "ORGAN DX200 STAB"},
			{533, "WATERCHORD AM7"},
			{534, "SAD GUITAR"},
			{535, "HORN 360 ENGLISH"},
			{536, "STRINGS 360"},
			{537, "HOUSE CHORD EM7"},
			{538, "UPRIGHT CHORD"},
			{539, "EXOTIC PLUCK"},
			{540, "SKY LEAD"},
			{541, "STRINGS DR"},
			{542, "LIQUID CHORD EM7"},
			{543, "CHORDY F9SUS4"},
			{544, "BROKEN BELL PERC"},
			{545, "PLING CHORD"},
			{546, "S612 VERB HIT"},
			{547, "DR"},
			{548, "VOX S612 DARK"},
			{549, "SITAR ONE SHOT"},
			{550, "LOOK ORGAN"},
			{551, "THIRTY 7 STAB"},
			{552, "BUZZ DELAY"},
			{553, "VOX S612 EH"},
			{554, "GUZHENG"},
			{555, "NT CHORDY"},
			{556, "FX BIRDS TAPE"},
			{557, "VOX S612 GATED"},
			{558, "O3D"},
			{559, "SEARCH CHORD"},
		},
	},
}

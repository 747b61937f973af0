package theme

// Stock scales. The width fractions use the "of" separator because "/"
// needs escaping in every selector it reaches.
var (
	DefaultSpacing = NewScale(
		Pair{"px", "1px"},
		Pair{"0", "0"},
		Pair{"1", "0.25rem"},
		Pair{"2", "0.5rem"},
		Pair{"3", "0.75rem"},
		Pair{"4", "1rem"},
		Pair{"5", "1.25rem"},
		Pair{"6", "1.5rem"},
		Pair{"8", "2rem"},
		Pair{"10", "2.5rem"},
		Pair{"12", "3rem"},
		Pair{"16", "4rem"},
		Pair{"20", "5rem"},
		Pair{"24", "6rem"},
		Pair{"32", "8rem"},
		Pair{"40", "10rem"},
		Pair{"48", "12rem"},
		Pair{"56", "14rem"},
		Pair{"64", "16rem"},
	)

	DefaultBorderWidth = NewScale(
		Pair{DefaultKey, "1px"},
		Pair{"0", "0"},
		Pair{"2", "2px"},
		Pair{"4", "4px"},
		Pair{"8", "8px"},
	)

	DefaultMaxWidth = NewScale(
		Pair{"xs", "20rem"},
		Pair{"sm", "24rem"},
		Pair{"md", "28rem"},
		Pair{"lg", "32rem"},
		Pair{"xl", "36rem"},
		Pair{"2xl", "42rem"},
		Pair{"3xl", "48rem"},
		Pair{"4xl", "56rem"},
		Pair{"5xl", "64rem"},
		Pair{"6xl", "72rem"},
		Pair{"full", "100%"},
	)

	DefaultFill = NewScale(
		Pair{"current", "currentColor"},
	)

	DefaultColors = NewScale(
		Pair{"transparent", "transparent"},
		Pair{"current", "currentColor"},
		Pair{"black", "#000"},
		Pair{"white", "#fff"},
		Pair{"gray-100", "#f7fafc"},
		Pair{"gray-200", "#edf2f7"},
		Pair{"gray-300", "#e2e8f0"},
		Pair{"gray-400", "#cbd5e0"},
		Pair{"gray-500", "#a0aec0"},
		Pair{"gray-600", "#718096"},
		Pair{"gray-700", "#4a5568"},
		Pair{"gray-800", "#2d3748"},
		Pair{"gray-900", "#1a202c"},
	)

	DefaultScreens = NewScale(
		Pair{"sm", "640px"},
		Pair{"md", "768px"},
		Pair{"lg", "1024px"},
		Pair{"xl", "1280px"},
	)

	// Fractions is layered into the width scale between spacing and full/screen.
	Fractions = NewScale(
		Pair{"1of2", "50%"},
		Pair{"1of3", "33.333333%"},
		Pair{"2of3", "66.666667%"},
		Pair{"1of4", "25%"},
		Pair{"2of4", "50%"},
		Pair{"3of4", "75%"},
		Pair{"1of5", "20%"},
		Pair{"2of5", "40%"},
		Pair{"3of5", "60%"},
		Pair{"4of5", "80%"},
		Pair{"1of6", "16.666667%"},
		Pair{"2of6", "33.333333%"},
		Pair{"3of6", "50%"},
		Pair{"4of6", "66.666667%"},
		Pair{"5of6", "83.333333%"},
		Pair{"1of12", "8.333333%"},
		Pair{"2of12", "16.666667%"},
		Pair{"3of12", "25%"},
		Pair{"4of12", "33.333333%"},
		Pair{"5of12", "41.666667%"},
		Pair{"6of12", "50%"},
		Pair{"7of12", "58.333333%"},
		Pair{"8of12", "66.666667%"},
		Pair{"9of12", "75%"},
		Pair{"10of12", "83.333333%"},
		Pair{"11of12", "91.666667%"},
	)

	translateExtras = NewScale(
		Pair{"-full", "-100%"},
		Pair{"-1of2", "-50%"},
		Pair{"1of2", "50%"},
		Pair{"full", "100%"},
	)
)

package questionbank

// SeedVersion is the version of the compiled-in question set.
const SeedVersion = "v1.0.0"

// seedQuestions is the reference Excel screening quiz.
var seedQuestions = []Question{
	{
		ID:         1,
		Category:   "Foundation",
		Difficulty: DifficultyBasic,
		Text:       "Can you explain the difference between a workbook and a worksheet in Excel? When would you use multiple worksheets?",
		Keywords:   []string{"workbook", "worksheet", "tabs", "organize", "multiple", "sheets"},
		MaxScore:   20,
	},
	{
		ID:         2,
		Category:   "Formulas",
		Difficulty: DifficultyIntermediate,
		Text:       "How would you use VLOOKUP to find data across different sheets? Can you walk me through a practical example?",
		Keywords:   []string{"vlookup", "lookup", "reference", "sheets", "table", "exact match", "approximate"},
		MaxScore:   25,
	},
	{
		ID:         3,
		Category:   "Data Analysis",
		Difficulty: DifficultyIntermediate,
		Text:       "Describe how you would create a pivot table to analyze sales data by region and month. What insights could this provide?",
		Keywords:   []string{"pivot table", "analyze", "summarize", "region", "month", "insights", "data analysis"},
		MaxScore:   25,
	},
	{
		ID:         4,
		Category:   "Problem Solving",
		Difficulty: DifficultyAdvanced,
		Text:       "You have a dataset with duplicate entries and inconsistent formatting. How would you clean this data efficiently?",
		Keywords:   []string{"duplicate", "clean", "formatting", "remove duplicates", "standardize", "data quality"},
		MaxScore:   25,
	},
	{
		ID:         5,
		Category:   "Advanced Analysis",
		Difficulty: DifficultyAdvanced,
		Text:       "How would you use conditional formatting and advanced formulas to create a dynamic dashboard that updates automatically?",
		Keywords:   []string{"conditional formatting", "dashboard", "dynamic", "automatic", "advanced formulas", "visualization"},
		MaxScore:   25,
	},
}

// defaultBank is the package-level bank built from the seed in init().
var defaultBank *Bank

func init() {
	b, err := New(SeedVersion, seedQuestions)
	if err != nil {
		panic(err)
	}
	defaultBank = b
}

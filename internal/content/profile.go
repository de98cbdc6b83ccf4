package content

// Milestone is one entry of the career timeline.
type Milestone struct {
	Year        string
	Title       string
	Description string
	Icon        string
}

// SkillGroup is a titled list of skill chips.
type SkillGroup struct {
	Title  string
	Skills []string
}

// Profile is the biography shown in the hero and about sections.
type Profile struct {
	Tagline   string
	Bio       []string
	Timeline  []Milestone
	Skills    []SkillGroup
	Giveaway  Giveaway
	Offerings []Offering
}

// Giveaway is the free e-book offered in the hero.
type Giveaway struct {
	Title   string
	Success string
	Detail  string
}

// Offering is a choice in the consultation form's service select.
type Offering struct {
	Value string
	Label string
}

func builtinProfile() Profile {
	return Profile{
		Tagline: "психолог и психотерапевт",
		Bio: []string{
			"Елис е опитен психолог и писател с над 10 години професионален опит. Специализирана в когнитивно-поведенческа терапия, тя помага на клиентите си да преодоляват различни емоционални и психологически предизвикателства.",
			"За мен любовта е смисълът на всичко, което правя! Вярвам, че всеки един от нас заслужава и може да създаде своя живот мечта! А аз ще се радвам да бъда част от този процес.",
			"Консултациите и семинарите които организирам са насочени към това да изградим здрава връзка със себе си, във връзките и взаимоотношенията си и със заобикалящия ни свят; личностно развитие, преодоляване на лоши навици и придобиване на нови, които ни служат за наше благо, здравословен начин на живот, хармония и щастие.",
			"Вярвам, че в живота няма случайни неща и щом си попаднал тук, то със сигурност има нещо полезно за теб!",
		},
		Timeline: []Milestone{
			{Year: "2013", Title: "Дипломиране", Description: `СУ "Св. Климент Охридски", Психология`, Icon: "school"},
			{Year: "2015", Title: "Старт на практика", Description: "Основаване на частна практика", Icon: "work"},
			{Year: "2018", Title: "Първа книга", Description: `"Пътят към себе си" - наръчник за себепознание`, Icon: "book"},
			{Year: "2021", Title: "Втора книга", Description: `"Хармония в хаоса" - стратегии за личностно развитие`, Icon: "book"},
		},
		Skills: []SkillGroup{
			{
				Title: "Професионални умения",
				Skills: []string{
					"Психологическо консултиране", "Лични консултации", "Семейно консултиране",
					"Личностно развитие", "Мотивационен говорител", "Емоционална интелигентност",
					"Семинари", "Работилници",
				},
			},
			{
				Title: "Теми и подходи",
				Skills: []string{
					"Себепознание", "Хармония", "Здравословен начин на живот", "Медитация",
					"Позитивна психология", "Хуманистична психология", "Творческа терапия",
					"Емоционално благополучие",
				},
			},
		},
		Giveaway: Giveaway{
			Title:   "Получете безплатна електронна книга",
			Success: "Благодарим ви!",
			Detail:  "Изпратихме линк за изтегляне на вашия имейл.",
		},
		Offerings: []Offering{
			{Value: "individual", Label: "Индивидуална терапия"},
			{Value: "couples", Label: "Семейно консултиране"},
			{Value: "group", Label: "Групова терапия"},
			{Value: "workshop", Label: "Участие в уъркшоп"},
			{Value: "other", Label: "Друго"},
		},
	}
}

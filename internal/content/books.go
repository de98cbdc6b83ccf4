package content

// BookCategories returns the declared, ordered category list of the books shelf.
func BookCategories() []string {
	return []string{"Психология", "Самопомощ", "Личностно развитие", "Семейство"}
}

type bookSource struct {
	book Book
	body string
}

func bookDetails(year, pages int) BookDetails {
	return BookDetails{
		Author:    "Елис Петрова",
		Publisher: "Психология и развитие",
		Year:      year,
		Pages:     pages,
		ISBN:      "978-619-XXXX-XX-X",
		Format:    "Печатна и електронна",
	}
}

func builtinBooks() []bookSource {
	const (
		img        = "/project-imgs/example-project.jpg"
		goodreads  = "https://www.goodreads.com"
		amazonLink = "https://www.amazon.com"
	)
	return []bookSource{
		{
			book: Book{
				Title:        "Пътят към себе си",
				ImgSrc:       img,
				ExternalLink: amazonLink,
				SourceLink:   goodreads,
				Tech:         []string{"Психология", "Самопомощ"},
				Categories:   []string{"Психология", "Самопомощ"},
				Description:  "Книга, която ви води по пътя към откриване на истинското Аз и как да живеете автентичен и осъзнат живот.",
				Details:      bookDetails(2018, 236),
			},
			body: `**Пътят към себе си** е моята първа книга, в която споделям как да открием истинските си желания и да живеем живот, верен на същността ни.

В книгата изследвам връзката между нашите мисли, емоции и действия и как те формират реалността, която създаваме. Представям практически методи за:

- Освобождаване от ограничаващи убеждения
- Развиване на емоционална интелигентност
- Намиране на вътрешен баланс и хармония
- Изграждане на здрави връзки със себе си и другите

Тази книга е идеална за всеки, който иска да разбере себе си по-добре и да живее по-автентично и осъзнато.

> "Невероятно вдъхновяваща книга, която ми помогна да разбера себе си и да направя важни промени в живота си." - Мария К., читател`,
		},
		{
			book: Book{
				Title:        "Хармония в хаоса",
				ImgSrc:       img,
				ExternalLink: amazonLink,
				SourceLink:   goodreads,
				Tech:         []string{"Психология", "Личностно развитие"},
				Categories:   []string{"Психология", "Личностно развитие"},
				Description:  "Практически наръчник за намиране на спокойствие и баланс в забързаното ежедневие и трансформиране на стреса в сила.",
				Details:      bookDetails(2021, 212),
			},
			body: `**Хармония в хаоса** е книга, създадена за съвременния човек, който се сблъсква ежедневно с предизвикателства, стрес и несигурност.

В този труд разглеждам:

- Техники за управление на стреса и тревожността
- Методи за създаване на здравословни ежедневни навици
- Практики за осъзнатост и присъствие в настоящия момент
- Стратегии за преобразуване на трудностите във възможности

Книгата включва множество упражнения и практически съвети, които може да прилагате веднага в ежедневието си за по-спокоен и хармоничен живот.

> "Този наръчник се превърна в моя спасителна котва в най-трудните моменти. Препоръчвам го на всеки!" - Иван П., психотерапевт`,
		},
		{
			book: Book{
				Title:        "Любовта като пътешествие",
				ImgSrc:       img,
				ExternalLink: amazonLink,
				SourceLink:   goodreads,
				Tech:         []string{"Психология", "Семейство", "Взаимоотношения"},
				Categories:   []string{"Психология", "Семейство"},
				Description:  "Задълбочен анализ на любовните отношения, как да изградим здрава връзка, основана на взаимно уважение и разбиране.",
				Details:      bookDetails(2022, 248),
			},
			body: `**Любовта като пътешествие** изследва дълбочината и сложността на любовните взаимоотношения, преминавайки отвъд първоначалното привличане към изграждането на трайна и пълноценна връзка.

В книгата обсъждам:

- Различните езици на любовта и как да разбираме партньора си
- Решаване на конфликти по здравословен начин
- Поддържане на интимност и връзка през различните етапи на отношенията
- Как да бъдем автентични, без да жертваме любовта си

Книгата е подходяща както за двойки, търсещи да задълбочат връзката си, така и за хора, които искат да разберат по-добре динамиката на любовните отношения.

> "Тази книга спаси брака ми и ни помогна да открием отново любовта си един към друг." - Милена и Стоян, читатели`,
		},
		{
			book: Book{
				Title:        "Силата на промяната",
				ImgSrc:       img,
				ExternalLink: amazonLink,
				SourceLink:   goodreads,
				Tech:         []string{"Личностно развитие", "Самопомощ"},
				Categories:   []string{"Личностно развитие", "Самопомощ"},
				Description:  "Книга за това как да приемем промяната, да я използваме в своя полза и да израстваме през преходите в живота ни.",
				Details:      bookDetails(2022, 224),
			},
			body: `**Силата на промяната** е посветена на едно от най-големите предизвикателства в живота - как да се справяме с промените, независимо дали са избрани от нас или наложени от обстоятелствата.

В тази книга разглеждам:

- Психологията на промяната и защо често ѝ се съпротивляваме
- Как да трансформираме страха от неизвестното в любопитство
- Стъпки за приемане и адаптиране към новите реалности
- Как да използваме промяната като катализатор за личностно израстване

Книгата съдържа истински истории на хора, претърпели значителни промени в живота си и извлекли ценни поуки от тях.

> "След загубата на работата си мислех, че животът ми свършва. Тази книга ми показа как да превърна тази промяна в нов, по-добър начин на живот." - Георги М., читател`,
		},
		{
			book: Book{
				Title:        "Изкуството на щастието",
				ImgSrc:       img,
				ExternalLink: amazonLink,
				SourceLink:   goodreads,
				Tech:         []string{"Психология", "Самопомощ", "Личностно развитие"},
				Categories:   []string{"Психология", "Самопомощ", "Личностно развитие"},
				Description:  "Изследване на това какво наистина означава да бъдеш щастлив и практически съвети за създаване на повече радост в живота.",
				Details:      bookDetails(2023, 236),
			},
			body: `**Изкуството на щастието** разглежда щастието не като крайна цел или моментно състояние, а като умение, което може да бъде развивано и практикувано ежедневно.

В книгата обсъждам:

- Научните изследвания за щастието и благополучието
- Практики за повишаване на позитивните емоции
- Връзката между благодарността и щастието
- Как да намерим смисъл и цел в живота си
- Ролята на взаимоотношенията в създаването на трайно щастие

Включила съм множество упражнения и дневни практики, които помагат на читателите да култивират повече радост и удовлетворение в ежедневието си.

> "Следвам препоръките в тази книга вече шест месеца и мога да потвърдя, че моето цялостно усещане за щастие и благополучие е значително подобрено." - Елена Д., психолог`,
		},
		{
			book: Book{
				Title:        "Родителство с любов и граници",
				ImgSrc:       img,
				ExternalLink: amazonLink,
				SourceLink:   goodreads,
				Tech:         []string{"Психология", "Семейство", "Възпитание"},
				Categories:   []string{"Психология", "Семейство"},
				Description:  "Ръководство за родители, които искат да възпитават децата си с любов и уважение, като същевременно поставят здравословни граници.",
				Details:      bookDetails(2023, 260),
			},
			body: `**Родителство с любов и граници** е насочена към родители, които искат да създадат здравословна и подкрепяща среда за развитието на децата си.

В тази книга разглеждам:

- Баланса между любов и дисциплина в родителството
- Как да комуникираме ефективно с децата от различни възрасти
- Поставяне на граници без да потискаме детската индивидуалност
- Справяне с трудни ситуации и конфликти
- Изграждане на емоционална интелигентност у децата

Книгата включва множество практически съвети, базирани на съвременни психологически изследвания и реален опит.

> "Като самотен баща на две деца, тази книга беше откровение за мен. Помогна ми да разбирам по-добре децата си и да създам по-хармонична домашна среда." - Николай П., читател`,
		},
	}
}

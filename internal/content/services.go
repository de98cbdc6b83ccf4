package content

// ServiceCategories returns the declared, ordered category list of the services catalog.
func ServiceCategories() []string {
	return []string{"Индивидуални", "Групови", "Онлайн", "На живо"}
}

type serviceSource struct {
	service Service
	body    string
}

func builtinServices() []serviceSource {
	const (
		img      = "/project-imgs/example-project.jpg"
		calendly = "https://calendly.com"
		zoom     = "https://zoom.us"
		rating   = "4.9/5.0"
	)
	return []serviceSource{
		{
			service: Service{
				Title:        "Индивидуални консултации",
				ImgSrc:       img,
				BookingLink:  calendly,
				ScheduleLink: zoom,
				Tech:         []string{"Индивидуални", "На живо"},
				Categories:   []string{"Индивидуални", "На живо"},
				Description:  "Персонализирани сесии, фокусирани върху вашите конкретни нужди и цели, с професионална подкрепа и насоки по пътя на личностното ви развитие.",
				Facts:        ServiceFacts{Duration: "50 минути", Location: "На място", Participants: "Индивидуално", Rating: rating},
			},
			body: `**Индивидуалните консултации** предлагат сигурно и подкрепящо пространство, където можете да изследвате вашите мисли, емоции и предизвикателства с професионална подкрепа.

По време на сесиите ще работим върху:

- Идентифициране на основни житейски предизвикателства и тяхното преодоляване
- Развиване на емоционална осъзнатост и регулация
- Подобряване на взаимоотношенията с околните
- Повишаване на самочувствието и себеувереността

Всяка сесия е с продължителност 50 минути и се провежда в уютна и конфиденциална обстановка в моя офис в центъра на града.

> "Работата с Елис ми помогна да погледна на проблемите си от нова перспектива и да открия в себе си сила, която не съм подозирал, че притежавам." - Мартин Д., клиент`,
		},
		{
			service: Service{
				Title:        "Онлайн терапевтични сесии",
				ImgSrc:       img,
				BookingLink:  calendly,
				ScheduleLink: zoom,
				Tech:         []string{"Индивидуални", "Онлайн"},
				Categories:   []string{"Индивидуални", "Онлайн"},
				Description:  "Гъвкави онлайн консултации, предоставящи професионална психологическа подкрепа от комфорта на вашия дом, с фокус върху вашите нужди и цели.",
				Facts:        ServiceFacts{Duration: "50 минути", Location: "Онлайн", Participants: "Индивидуално", Rating: rating},
			},
			body: `**Онлайн терапевтичните сесии** предлагат същата професионална подкрепа като присъствените консултации, но с предимството на гъвкавостта и удобството да се включите от всяко място.

Тези сесии са идеални за:

- Хора с натоварен график или ограничена мобилност
- Клиенти, които живеят в други градове или държави
- Ситуации, в които предпочитате комфорта на познатата ви среда
- Продължаване на терапевтичната работа при пътуване

Сесиите се провеждат чрез сигурна видео платформа, гарантираща поверителност на разговорите. Продължителността на всяка сесия е 50 минути.

> "Онлайн сесиите с Елис са толкова ефективни, колкото и присъствените. Ценя възможността да продължа работата с нея, дори когато съм в командировка." - Петя К., клиент`,
		},
		{
			service: Service{
				Title:        "Групови терапевтични сесии",
				ImgSrc:       img,
				BookingLink:  calendly,
				ScheduleLink: zoom,
				Tech:         []string{"Групови", "На живо"},
				Categories:   []string{"Групови", "На живо"},
				Description:  "Терапевтични групи, създаващи подкрепяща общност, където можете да споделяте преживявания, да получавате обратна връзка и да израствате заедно с другите.",
				Facts:        ServiceFacts{Duration: "90 минути", Location: "На място", Participants: "6-8 участници", Rating: rating},
			},
			body: `**Груповите терапевтични сесии** предлагат уникална възможност за личностно развитие чрез взаимодействие с други хора, споделящи подобни предизвикателства.

Предимствата на груповата терапия включват:

- Възможност да видите, че не сте сами с вашите проблеми
- Получаване на различни перспективи и обратна връзка
- Развиване на социални умения в безопасна среда
- Изграждане на подкрепяща общност

Групите се състоят от 6-8 участници и се провеждат веднъж седмично с продължителност 90 минути. Всяка група има специфичен фокус (напр. управление на тревожност, изграждане на здравословни взаимоотношения и др.).

> "Груповата терапия ми помогна да се почувствам по-малко сама и да открия нови начини за справяне с предизвикателствата. Подкрепата от групата е безценна." - Анна П., участник`,
		},
		{
			service: Service{
				Title:        "Онлайн групови уъркшопи",
				ImgSrc:       img,
				BookingLink:  calendly,
				ScheduleLink: zoom,
				Tech:         []string{"Групови", "Онлайн"},
				Categories:   []string{"Групови", "Онлайн"},
				Description:  "Интерактивни онлайн уъркшопи по конкретни теми, предоставящи практически инструменти и техники за личностно развитие в достъпен формат.",
				Facts:        ServiceFacts{Duration: "2-3 часа", Location: "Онлайн", Participants: "Малки групи", Rating: rating},
			},
			body: `**Онлайн груповите уъркшопи** съчетават образователния елемент с практически упражнения, предоставяйки ви конкретни инструменти и техники, които можете да приложите веднага в живота си.

Текущите уъркшоп теми включват:

- Управление на стреса и тревожността в ежедневието
- Изграждане на здравословни граници във взаимоотношенията
- Емоционална интелигентност - разпознаване и управление на емоциите
- Повишаване на самочувствието и изграждане на позитивен Аз-образ

Уъркшопите се провеждат онлайн с продължителност 2-3 часа и включват интерактивни елементи, дискусии и материали, които получавате след събитието.

> "Уъркшопът за управление на стреса беше изключително полезен. Научих конкретни техники, които прилагам всеки ден и вече забелязвам положителна промяна." - Иван С., участник`,
		},
		{
			service: Service{
				Title:        "Семинари за организации",
				ImgSrc:       img,
				BookingLink:  calendly,
				ScheduleLink: zoom,
				Tech:         []string{"Групови", "На живо"},
				Categories:   []string{"Групови", "На живо"},
				Description:  "Специализирани психологически семинари за организации, фокусирани върху подобряване на екипната комуникация, емоционална интелигентност и благополучие на работното място.",
				Facts:        ServiceFacts{Duration: "Половин до цял ден", Location: "Онлайн / На място", Participants: "Екипи", Rating: rating},
			},
			body: `**Семинарите за организации** са разработени специално за подобряване на психологическия климат в екипите, повишаване на продуктивността и благосъстоянието на служителите.

Предлагам семинари в следните области:

- Превенция на професионалното прегаряне (burnout)
- Ефективна комуникация и разрешаване на конфликти
- Управление на стреса на работното място
- Емоционална интелигентност в професионална среда
- Изграждане на устойчивост и адаптивност към промени

Семинарите се адаптират според нуждите на вашата организация и могат да бъдат проведени както на място във вашия офис, така и онлайн. Продължителността варира от половин до цял ден.

> "Семинарът за превенция на професионалното прегаряне беше изключително ценен за нашия екип. Елис предостави практични инструменти и техники, които вече прилагаме с видим резултат." - Георги П., HR мениджър`,
		},
		{
			service: Service{
				Title:        "Менторство за личностно развитие",
				ImgSrc:       img,
				BookingLink:  calendly,
				ScheduleLink: zoom,
				Tech:         []string{"Индивидуални", "Онлайн"},
				Categories:   []string{"Индивидуални", "Онлайн"},
				Description:  "Персонализирана програма за личностно развитие с дългосрочен фокус, комбинираща редовни сесии, практически задачи и продължителна подкрепа за постигане на значима трансформация.",
				Facts:        ServiceFacts{Duration: "3 месеца", Location: "Онлайн", Participants: "Индивидуално", Rating: rating},
			},
			body: `**Менторството за личностно развитие** е 3-месечна програма, разработена да ви съпътства в процеса на задълбочена лична трансформация и постигане на конкретни житейски цели.

Програмата включва:

- Първоначална двучасова сесия за задълбочена оценка и планиране
- Ежеседмични 60-минутни сесии (общо 12 сесии)
- Персонализирани практически задачи между сесиите
- Неограничена поддръжка по имейл през целия период
- Комплект материали и ресурси, съобразени с вашите цели

Менторството е подходящо за хора, които са готови за сериозна работа върху себе си и искат не просто подкрепа, а конкретни резултати и трайна промяна.

> "Тримесечната програма с Елис беше повратна точка в живота ми. За първи път почувствах, че наистина напредвам и трансформирам негативните модели, които ме държаха назад години наред." - Димитър Н., клиент`,
		},
	}
}

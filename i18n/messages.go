package i18n

import "fmt"

// Message is a typed key into the localized copy tables.
type Message int

const (
	MsgWelcome Message = iota
	MsgStart
	MsgHelpBody
	MsgHelpAdmin
	MsgHelpFooter
	MsgLangChange
	MsgLangSet
	MsgDevInfo
	MsgError
	MsgAddName
	MsgAddDescription
	MsgAddFunFact
	MsgAddPhoto
	MsgAddLocation
	MsgTranslationError
	MsgInvalidLink
	MsgPhotoError
	MsgAddSuccess
	MsgPermissionDenied
	MsgCancel
	MsgRandomSight
	MsgShowLocation
	MsgNoSights
	MsgListTitle
	MsgPrevButton
	MsgNextButton
	MsgBackList
	MsgDelStart
	MsgDelConfirm
	MsgDelSuccess
	MsgDelFail
	MsgDelCancel
	MsgDelList
	MsgDelAmbiguous
	MsgYesButton
	MsgNoButton
)

type text struct {
	en string
	ru string
}

func (t text) in(lang Language) string {
	if lang == Russian {
		return t.ru
	}
	return t.en
}

// T returns the localized copy for the given message key.
func T(lang Language, m Message) string {
	return table[m].in(lang)
}

// F returns the localized copy formatted with args.
func F(lang Language, m Message, args ...any) string {
	return fmt.Sprintf(table[m].in(lang), args...)
}

var table = map[Message]text{
	MsgWelcome: {
		en: "🌍 Choose your language / Выберите язык:",
		ru: "🌍 Выберите язык / Choose your language:",
	},
	MsgStart: {
		en: "🎉 Welcome to Arctic Adventures Bot! 🐻❄️\n\n" +
			"Let's explore Arkhangelskaya Oblast' together!\n\n" +
			"🌟 Did you know?\n" +
			"• Home to the Northern Lights! 🌌\n" +
			"• There are 300-year-old wooden houses! 🏚️\n" +
			"• You can meet real reindeer! 🦌\n" +
			"• The region is bigger than France! 🇫🇷\n\n" +
			"Type /help to see what we can do!",
		ru: "🎉 Добро пожаловать в бота 'Арктические приключения'! 🐻❄️\n\n" +
			"Давайте исследуем Архангельскую область вместе!\n\n" +
			"🌟 А вы знали?\n" +
			"• Здесь видят Северное сияние! 🌌\n" +
			"• Есть 300-летние деревянные дома! 🏚️\n" +
			"• Можно встретить настоящих оленей! 🦌\n" +
			"• Область больше Франции! 🇫🇷\n\n" +
			"Напишите /help чтобы увидеть возможности!",
	},
	MsgHelpBody: {
		en: "🦊 Here's how I can help you:\n\n" +
			"/start - Begin our adventure! 🚀\n" +
			"/help - Show this help message 📖\n" +
			"/lang - Change language 🌐\n" +
			"/dev - About this bot 🤖\n" +
			"/rand - Random magical place 🎲\n" +
			"/list - List all magical places 📜\n",
		ru: "🦊 Вот что я умею:\n\n" +
			"/start - Начать путешествие! 🚀\n" +
			"/help - Показать справку 📖\n" +
			"/lang - Изменить язык 🌐\n" +
			"/dev - О боте 🤖\n" +
			"/rand - Случайное волшебное место 🎲\n" +
			"/list - Список всех мест 📜\n",
	},
	MsgHelpAdmin: {
		en: "/add - Add new magic places (Wizards only) ✨\n" +
			"/del - Remove magic places (Wizards only) 🧹\n",
		ru: "/add - Добавить волшебные места (Только для волшебников) ✨\n" +
			"/del - Удалить волшебные места (Только для волшебников) 🧹\n",
	},
	MsgHelpFooter: {
		en: "\nLet's explore the Arctic wonders together! ❄️",
		ru: "\nДавайте исследовать северные чудеса вместе! ❄️",
	},
	MsgLangChange: {
		en: "🌍 Choose language:",
		ru: "🌍 Выберите язык:",
	},
	MsgLangSet: {
		en: "🌐 Language set to %s!",
		ru: "🌐 Выбран язык: %s!",
	},
	MsgDevInfo: {
		en: "🤖 Arctic Explorer Bot\n" +
			"Version: %s 🧊\n" +
			"Made with ❤️ by Polar Bears Team\n" +
			"🛠️ How I work:\n" +
			"- Go Magic 🐹\n" +
			"- Telegram Bot Powers 📲\n" +
			"- Arctic Spirit 🧊\n\n" +
			"I'm always learning new tricks! 🎩",
		ru: "🤖 Бот-исследователь Арктики\n" +
			"Версия: %s 🧊\n" +
			"Сделано с ❤️ командой 'Полярные медведи'\n" +
			"🛠️ Как я работаю:\n" +
			"- Go Магия 🐹\n" +
			"- Телеграм технологии 📲\n" +
			"- Северный дух 🧊\n\n" +
			"Я постоянно учусь новым трюкам! 🎩",
	},
	MsgError: {
		en: "❄️ Oops! Something melted... Try again!",
		ru: "❄️ Упс! Что-то растаяло... Попробуйте снова!",
	},
	MsgAddName: {
		en: "🏰 What's the name of this magical place?",
		ru: "🏰 Как называется это волшебное место?",
	},
	MsgAddDescription: {
		en: "📖 Describe this place in a fun way for kids:",
		ru: "📖 Опиши это место весело, для детей:",
	},
	MsgAddFunFact: {
		en: "🎩 Share a cool fact that kids will love:",
		ru: "🎩 Поделись интересным фактом, который понравится детям:",
	},
	MsgAddPhoto: {
		en: "📸 Send a photo of this place now!",
		ru: "📸 Отправь фотографию этого места!",
	},
	MsgAddLocation: {
		en: "🗺️ Share a Yandex Maps link to this place:",
		ru: "🗺️ Отправь ссылку на Yandex Maps:",
	},
	MsgTranslationError: {
		en: "🔍 Oops! Translation magic failed. Try again later!",
		ru: "🔍 Ой! Перевод не удался. Попробуйте позже!",
	},
	MsgInvalidLink: {
		en: "⚠️ That doesn't look like a valid link. Please send a proper Yandex Maps URL:",
		ru: "⚠️ Это не похоже на правильную ссылку. Отправь корректную ссылку Yandex Maps:",
	},
	MsgPhotoError: {
		en: "📷 Oh no! Couldn't save the photo. Try again!",
		ru: "📷 Ой! Не удалось сохранить фото. Попробуй еще раз!",
	},
	MsgAddSuccess: {
		en: "🌟 New magical place added! Now everyone can find it!",
		ru: "🌟 Новое волшебное место добавлено! Теперь все могут его найти!",
	},
	MsgPermissionDenied: {
		en: "🛑 Only master wizards can do that!",
		ru: "🛑 Только главные волшебники могут это делать!",
	},
	MsgCancel: {
		en: "✨ Magic operation cancelled!",
		ru: "✨ Волшебная операция отменена!",
	},
	MsgRandomSight: {
		en: "🎲 Let's explore a random magical place!",
		ru: "🎲 Давайте исследуем случайное волшебное место!",
	},
	MsgShowLocation: {
		en: "🗺️ Show on Map",
		ru: "🗺️ Показать на карте",
	},
	MsgNoSights: {
		en: "😞 No magical places found yet!",
		ru: "😞 Пока нет волшебных мест!",
	},
	MsgListTitle: {
		en: "📚 Magical Places List (Page %d):",
		ru: "📚 Список волшебных мест (Страница %d):",
	},
	MsgPrevButton: {
		en: "⬅️ Previous",
		ru: "⬅️ Назад",
	},
	MsgNextButton: {
		en: "➡️ Next",
		ru: "➡️ Вперед",
	},
	MsgBackList: {
		en: "📜 Back to List",
		ru: "📜 Назад к списку",
	},
	MsgDelStart: {
		en: "🧹 Which magic place should vanish? Type its name:",
		ru: "🧹 Какое волшебное место должно исчезнуть? Напиши его название:",
	},
	MsgDelConfirm: {
		en: "Are you sure you want to remove %s? This magic can't be undone! ✨",
		ru: "Точно удалить %s? Это не обратимо! ✨",
	},
	MsgDelSuccess: {
		en: "🧙♂️ Poof! %s has disappeared from the map!",
		ru: "🧙♂️ Пуф! %s исчезло с карты!",
	},
	MsgDelFail: {
		en: "🔍 Hmm... I can't find %s in my spellbook",
		ru: "🔍 Хм... Не могу найти %s в своей книге заклинаний",
	},
	MsgDelCancel: {
		en: "✨ Deletion magic stopped!",
		ru: "✨ Магия удаления остановлена!",
	},
	MsgDelList: {
		en: "🔮 Found these magical places:",
		ru: "🔮 Найдены волшебные места:",
	},
	MsgDelAmbiguous: {
		en: "🔮 Several places still match. Type a more exact name first!",
		ru: "🔮 Подходит несколько мест. Сначала уточни название!",
	},
	MsgYesButton: {
		en: "✅ Yes",
		ru: "✅ Да",
	},
	MsgNoButton: {
		en: "❌ No",
		ru: "❌ Нет",
	},
}

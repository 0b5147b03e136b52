package telegram

import "github.com/aliskhannn/language-teacher-bot/internal/domain/entities"

// texts is the message catalog of one interface language. Strings are
// plain text and are escaped when rendered.
type texts struct {
	labels    map[command]string
	sizeLabel string // fmt pattern with the number of words

	welcomeBack      string
	mainMenu         string
	unknownCommand   string
	restart          string
	internalError    string
	chooseTarget     string
	chooseLevel      string
	invalidLanguage  string
	invalidLevel     string
	levelSaved       string
	gamesMenu        string
	flashcardOptions string
	chooseTier       string
	tierSaved        string
	tierCurrent      string

	emptyPool          string
	emptyMyWords       string
	emptySentences     string
	flashcardStarted   string
	cardPrompt         string
	correct            string
	wrong              string
	unfamiliar         string
	favoriteAdded      string
	favoriteExists     string
	graduated          string
	flashcardResult    string
	testSuggestion     string
	sentenceStarted    string
	sentenceRound      string
	sentenceWrong      string
	sentenceWait       string
	sentenceResult     string
	dictionaryPrompt   string
	dictionaryTitle    string
	allLevels          string
	emptyList          string
	myWordsPrompt      string
	unknownTitle       string
	favoritesTitle     string
	deleted            string
	cleared            string
	settingsTitle      string
	chooseNewNative    string
	nativeChanged      string
	targetChanged      string
	levelChanged       string
	chooseRounds       string
	roundsSaved        string
	invalidRounds      string
	prevPage           string
	nextPage           string
	mainMenuButton     string
	deleteAll          string
	showUnknown        string
	showFavorites      string
	addedToFavorites   string
	alreadyInFavorites string

	languageNames map[entities.Language]string
}

// languageLabels are the language buttons, each written in its own language.
var languageLabels = map[entities.Language]string{
	entities.LanguageRussian: "🇷🇺 Русский",
	entities.LanguageChinese: "🇨🇳 中文",
}

// chooseNativeText is shown before the interface language is known.
const chooseNativeText = "Выберите ваш родной язык:\n请选择您的母语："

var ruTexts = texts{
	labels: map[command]string{
		cmdBackToMenu:       "⬅️ В главное меню",
		cmdGames:            "🎮 Игры",
		cmdDictionary:       "📚 Словарь",
		cmdMyWords:          "📝 Мои слова",
		cmdSettings:         "⚙️ Настройки",
		cmdFlashcards:       "🃏 Карточки",
		cmdSentences:        "🧩 Собери предложение",
		cmdFlashcardAll:     "Все слова",
		cmdFlashcardMyWords: "Только мои слова",
		cmdFlashcardTier:    "🎚 Уровень карточек",
		cmdCurrentTier:      "Мой текущий уровень",
		cmdBackToGames:      "⬅️ К играм",
		cmdAllLevels:        "Все уровни",
		cmdUnknownWords:     "❓ Незнакомые слова",
		cmdFavoriteWords:    "⭐ Избранные слова",
		cmdDontKnow:         "🤷 Не знаю",
		cmdAddFavorite:      "⭐ В избранное",
		cmdChangeNative:     "Изменить родной язык",
		cmdChangeTarget:     "Изменить изучаемый язык",
		cmdChangeLevel:      "Изменить уровень",
		cmdSentenceRounds:   "Количество предложений",
		cmdBackToSettings:   "⬅️ К настройкам",
	},
	sizeLabel: "%d слов",

	welcomeBack:      "С возвращением, %s!",
	mainMenu:         "Главное меню. Выберите раздел:",
	unknownCommand:   "Неизвестная команда. Воспользуйтесь кнопками ниже.",
	restart:          "Профиль не найден. Отправьте /start, чтобы начать заново.",
	internalError:    "Что-то пошло не так. Попробуйте позже.",
	chooseTarget:     "Выберите язык, который хотите изучать:",
	chooseLevel:      "Выберите ваш уровень владения языком:",
	invalidLanguage:  "Пожалуйста, выберите язык с помощью кнопок.",
	invalidLevel:     "Пожалуйста, выберите уровень от A1 до C2.",
	levelSaved:       "Готово! Ваш уровень: %s.",
	gamesMenu:        "Выберите игру:",
	flashcardOptions: "Сколько слов будет в игре?",
	chooseTier:       "Выберите уровень слов для карточек:",
	tierSaved:        "Карточки будут строиться по уровню %s.",
	tierCurrent:      "Карточки будут строиться по вашему уровню.",

	emptyPool:          "Для выбранного уровня пока нет слов.",
	emptyMyWords:       "В вашем списке незнакомых слов пока пусто.",
	emptySentences:     "Для вашего уровня пока нет предложений.",
	flashcardStarted:   "Игра началась! Уровень: %s. Напишите перевод слова.",
	cardPrompt:         "Слово %d из %d:",
	correct:            "✅ Верно!",
	wrong:              "❌ Неверно. Правильный перевод: %s",
	unfamiliar:         "📖 Перевод: %s. Слово добавлено в незнакомые.",
	favoriteAdded:      "⭐ Добавлено в избранное. Перевод: %s",
	favoriteExists:     "⭐ Слово уже в избранном. Перевод: %s",
	graduated:          "Слово убрано из списка незнакомых.",
	flashcardResult:    "Игра окончена!\nПравильно: %d из %d (%.1f%%)\nНе знаю: %d\nВремя: %d сек.",
	testSuggestion:     "Отличный результат! Попробуйте пройти тест на следующий уровень: %s",
	sentenceStarted:    "Соберите предложение из предложенных слов и отправьте его целиком.",
	sentenceRound:      "Предложение %d/%d:",
	sentenceWrong:      "❌ Неверно. Правильно: %s",
	sentenceWait:       "Подождите, следующее предложение уже в пути.",
	sentenceResult:     "Игра окончена!\nПравильно: %d\nНеправильно: %d\nВремя: %d сек.",
	dictionaryPrompt:   "Выберите уровень словаря:",
	dictionaryTitle:    "Словарь (%s), страница %d/%d",
	allLevels:          "все уровни",
	emptyList:          "Здесь пока ничего нет.",
	myWordsPrompt:      "Какой список открыть?",
	unknownTitle:       "Незнакомые слова, страница %d/%d",
	favoritesTitle:     "Избранные слова, страница %d/%d",
	deleted:            "Удалено",
	cleared:            "Список очищен",
	settingsTitle:      "Настройки\nРодной язык: %s\nИзучаемый язык: %s\nУровень: %s\nПредложений в игре: %d",
	chooseNewNative:    "Выберите новый родной язык:",
	nativeChanged:      "Родной язык изменён. Изучаемый язык: %s.",
	targetChanged:      "Изучаемый язык: %s.",
	levelChanged:       "Уровень изменён на %s.",
	chooseRounds:       "Сколько предложений будет в игре?",
	roundsSaved:        "Теперь в игре %d предложений.",
	invalidRounds:      "Выберите количество с помощью кнопок.",
	prevPage:           "◀️ Назад",
	nextPage:           "Вперёд ▶️",
	mainMenuButton:     "🏠 Главное меню",
	deleteAll:          "🗑 Удалить все",
	showUnknown:        "❓ Незнакомые",
	showFavorites:      "⭐ Избранные",
	addedToFavorites:   "Добавлено в избранное",
	alreadyInFavorites: "Уже в избранном",

	languageNames: map[entities.Language]string{
		entities.LanguageRussian: "русский",
		entities.LanguageChinese: "китайский",
	},
}

var zhTexts = texts{
	labels: map[command]string{
		cmdBackToMenu:       "⬅️ 返回主菜单",
		cmdGames:            "🎮 游戏",
		cmdDictionary:       "📚 词典",
		cmdMyWords:          "📝 我的单词",
		cmdSettings:         "⚙️ 设置",
		cmdFlashcards:       "🃏 单词卡片",
		cmdSentences:        "🧩 组句游戏",
		cmdFlashcardAll:     "全部单词",
		cmdFlashcardMyWords: "只练我的单词",
		cmdFlashcardTier:    "🎚 卡片级别",
		cmdCurrentTier:      "我当前的级别",
		cmdBackToGames:      "⬅️ 返回游戏",
		cmdAllLevels:        "全部级别",
		cmdUnknownWords:     "❓ 生词",
		cmdFavoriteWords:    "⭐ 收藏的单词",
		cmdDontKnow:         "🤷 不认识",
		cmdAddFavorite:      "⭐ 收藏",
		cmdChangeNative:     "更改母语",
		cmdChangeTarget:     "更改学习语言",
		cmdChangeLevel:      "更改级别",
		cmdSentenceRounds:   "句子数量",
		cmdBackToSettings:   "⬅️ 返回设置",
	},
	sizeLabel: "%d 个单词",

	welcomeBack:      "欢迎回来，%s！",
	mainMenu:         "主菜单，请选择：",
	unknownCommand:   "未知命令，请使用下方按钮。",
	restart:          "未找到您的资料，请发送 /start 重新开始。",
	internalError:    "出了点问题，请稍后再试。",
	chooseTarget:     "请选择您要学习的语言：",
	chooseLevel:      "请选择您的语言水平：",
	invalidLanguage:  "请使用按钮选择语言。",
	invalidLevel:     "请选择 A1 到 C2 之间的级别。",
	levelSaved:       "完成！您的级别：%s。",
	gamesMenu:        "请选择游戏：",
	flashcardOptions: "这局游戏要练多少个单词？",
	chooseTier:       "请选择卡片的单词级别：",
	tierSaved:        "卡片将使用 %s 级别的单词。",
	tierCurrent:      "卡片将使用您当前的级别。",

	emptyPool:          "所选级别暂时没有单词。",
	emptyMyWords:       "您的生词表还是空的。",
	emptySentences:     "您的级别暂时没有句子。",
	flashcardStarted:   "游戏开始！级别：%s。请输入单词的翻译。",
	cardPrompt:         "第 %d 个，共 %d 个：",
	correct:            "✅ 正确！",
	wrong:              "❌ 错误。正确翻译：%s",
	unfamiliar:         "📖 翻译：%s。已加入生词表。",
	favoriteAdded:      "⭐ 已收藏。翻译：%s",
	favoriteExists:     "⭐ 该单词已在收藏中。翻译：%s",
	graduated:          "该单词已从生词表中移除。",
	flashcardResult:    "游戏结束！\n正确：%d / %d（%.1f%%）\n不认识：%d\n用时：%d 秒",
	testSuggestion:     "成绩优秀！试试下一级别的测试：%s",
	sentenceStarted:    "请用给出的词语组成句子，并发送完整的句子。",
	sentenceRound:      "第 %d/%d 句：",
	sentenceWrong:      "❌ 错误。正确答案：%s",
	sentenceWait:       "请稍候，下一句马上就到。",
	sentenceResult:     "游戏结束！\n正确：%d\n错误：%d\n用时：%d 秒",
	dictionaryPrompt:   "请选择词典级别：",
	dictionaryTitle:    "词典（%s），第 %d/%d 页",
	allLevels:          "全部级别",
	emptyList:          "这里还什么都没有。",
	myWordsPrompt:      "要打开哪个列表？",
	unknownTitle:       "生词，第 %d/%d 页",
	favoritesTitle:     "收藏的单词，第 %d/%d 页",
	deleted:            "已删除",
	cleared:            "列表已清空",
	settingsTitle:      "设置\n母语：%s\n学习语言：%s\n级别：%s\n每局句子数：%d",
	chooseNewNative:    "请选择新的母语：",
	nativeChanged:      "母语已更改。学习语言：%s。",
	targetChanged:      "学习语言：%s。",
	levelChanged:       "级别已更改为 %s。",
	chooseRounds:       "每局游戏要几个句子？",
	roundsSaved:        "现在每局有 %d 个句子。",
	invalidRounds:      "请使用按钮选择数量。",
	prevPage:           "◀️ 上一页",
	nextPage:           "下一页 ▶️",
	mainMenuButton:     "🏠 主菜单",
	deleteAll:          "🗑 全部删除",
	showUnknown:        "❓ 生词",
	showFavorites:      "⭐ 收藏",
	addedToFavorites:   "已收藏",
	alreadyInFavorites: "已在收藏中",

	languageNames: map[entities.Language]string{
		entities.LanguageRussian: "俄语",
		entities.LanguageChinese: "中文",
	},
}

var locales = map[entities.Language]*texts{
	entities.LanguageRussian: &ruTexts,
	entities.LanguageChinese: &zhTexts,
}

// textsFor returns the catalog of the user's native language, Russian by default.
func textsFor(lang entities.Language) *texts {
	if t, ok := locales[lang]; ok {
		return t
	}
	return &ruTexts
}

func (t *texts) label(cmd command) string {
	return t.labels[cmd]
}

func (t *texts) languageName(lang entities.Language) string {
	if name, ok := t.languageNames[lang]; ok {
		return name
	}
	return "-"
}

// Package i18n registers the site's user-facing strings with x/text/message.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys double as the English text.
const (
	LatestUpdates  = "Latest site updates"
	GroupPosts     = "Posts of the %s community"
	AuthorPosts    = "All posts by %s"
	FieldRequired  = "This field is required."
	InvalidChoice  = "Select a valid choice. That choice is not one of the available choices."
	NewPost        = "New post"
	EditPost       = "Edit post"
	Groups         = "Groups"
	SignUp         = "Sign up"
	LogIn          = "Log in"
	GroupAdmin     = "Manage groups"
	NotFoundTitle  = "Page not found"
	ServerErrTitle = "Something went wrong"
)

var supported = []language.Tag{language.English, language.Russian}

var matcher = language.NewMatcher(supported)

var russian = map[string]string{
	LatestUpdates:  "Последние обновления на сайте",
	GroupPosts:     "Записи сообщества %s",
	AuthorPosts:    "Все посты пользователя %s",
	FieldRequired:  "Обязательное поле.",
	InvalidChoice:  "Выберите корректный вариант. Вашего варианта нет среди допустимых значений.",
	NewPost:        "Новый пост",
	EditPost:       "Редактировать пост",
	Groups:         "Группы",
	SignUp:         "Регистрация",
	LogIn:          "Войти",
	GroupAdmin:     "Управление группами",
	NotFoundTitle:  "Страница не найдена",
	ServerErrTitle: "Что-то пошло не так",
}

func init() {
	for key, value := range russian {
		if err := message.SetString(language.Russian, key, value); err != nil {
			panic(err)
		}
	}
}

// Tag resolves a configured language name to a supported tag, English by default.
func Tag(lang string) language.Tag {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return language.English
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return language.English
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.English
	}
	return supported[index]
}

// Printer returns a printer for the configured language.
func Printer(lang string) *message.Printer {
	return message.NewPrinter(Tag(lang))
}

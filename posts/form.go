package posts

import (
	"strings"

	"yatube/domain"
	"yatube/i18n"
)

const (
	FieldText  = "text"
	FieldGroup = "group"
)

// PostForm is the set of fields a user may submit for a post.
type PostForm struct {
	Text    string
	GroupID *int64
}

// FormFromPost returns a form pre-populated with the post's current values.
func FormFromPost(p domain.Post) PostForm {
	return PostForm{Text: p.Text, GroupID: p.GroupID()}
}

// FieldErrors maps a form field to its error messages.
type FieldErrors map[string][]string

func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Get returns the first error for field, or "".
func (e FieldErrors) Get(field string) string {
	if len(e[field]) == 0 {
		return ""
	}
	return e[field][0]
}

// PostFields are the cleaned values of a valid form.
type PostFields struct {
	Text    string
	GroupID *int64
}

// Validation is either valid Fields or a non-empty Errors map.
type Validation struct {
	Fields PostFields
	Errors FieldErrors
}

func (v Validation) Valid() bool { return len(v.Errors) == 0 }

// ValidatePostForm trims the text and requires it to be non-empty.
// Error messages are i18n keys.
func ValidatePostForm(form PostForm) Validation {
	text := strings.TrimSpace(form.Text)
	if text == "" {
		errs := FieldErrors{}
		errs.Add(FieldText, i18n.FieldRequired)
		return Validation{Errors: errs}
	}
	return Validation{Fields: PostFields{Text: text, GroupID: form.GroupID}}
}

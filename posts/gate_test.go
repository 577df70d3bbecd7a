package posts

import (
	"context"
	"errors"
	"testing"
	"time"

	"yatube/domain"
)

func actorFor(u domain.User) *domain.Actor {
	return &domain.Actor{UserID: u.ID, Username: u.Username}
}

func int64Ptr(v int64) *int64 { return &v }

func TestGateRequiresActor(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc := NewService(store, "en")
	ctx := context.Background()

	if _, err := svc.CreateForm(ctx, nil); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("create form error = %v", err)
	}
	if _, err := svc.Create(ctx, nil, PostForm{Text: "Hello"}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("create error = %v", err)
	}
	// Unauthorized wins over a missing post.
	if _, err := svc.EditForm(ctx, nil, 404); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("edit form error = %v", err)
	}
	if _, err := svc.Edit(ctx, nil, 404, PostForm{Text: "x"}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("edit error = %v", err)
	}
	if store.writes != 0 {
		t.Fatalf("writes = %d, want 0", store.writes)
	}
}

func TestCreateRedirectsToActorProfile(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	user := store.addUser("author")
	svc := NewService(store, "en")
	fixed := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	editor, err := svc.Create(context.Background(), actorFor(user), PostForm{Text: "  Hello  "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if editor.Redirect == nil || editor.Redirect.Kind != RedirectProfile || editor.Redirect.Username != "author" {
		t.Fatalf("redirect = %+v", editor.Redirect)
	}

	post, err := store.PostByID(context.Background(), editor.PostID)
	if err != nil {
		t.Fatalf("get created post: %v", err)
	}
	if post.Text != "Hello" {
		t.Fatalf("text = %q, want Hello", post.Text)
	}
	if post.Author.ID != user.ID {
		t.Fatalf("author = %+v", post.Author)
	}
	if post.Group != nil {
		t.Fatalf("group = %+v, want nil", post.Group)
	}
	if !post.CreatedAt.Equal(fixed) {
		t.Fatalf("created at = %v, want %v", post.CreatedAt, fixed)
	}
}

func TestCreateWithGroup(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	user := store.addUser("author")
	group := store.addGroup("Cats", "cats")
	svc := NewService(store, "en")

	editor, err := svc.Create(context.Background(), actorFor(user), PostForm{Text: "meow", GroupID: &group.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	post, err := store.PostByID(context.Background(), editor.PostID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if post.Group == nil || post.Group.ID != group.ID {
		t.Fatalf("group = %+v", post.Group)
	}
}

func TestCreateInvalidLeavesStoreUntouched(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	user := store.addUser("author")
	store.addGroup("Cats", "cats")
	svc := NewService(store, "en")

	tests := []struct {
		name  string
		form  PostForm
		field string
	}{
		{name: "empty text", form: PostForm{Text: ""}, field: FieldText},
		{name: "blank text", form: PostForm{Text: " \n\t "}, field: FieldText},
		{name: "unknown group", form: PostForm{Text: "ok", GroupID: int64Ptr(99)}, field: FieldGroup},
	}
	for _, tt := range tests {
		editor, err := svc.Create(context.Background(), actorFor(user), tt.form)
		if err != nil {
			t.Fatalf("%s: create: %v", tt.name, err)
		}
		if editor.Redirect != nil {
			t.Fatalf("%s: unexpected redirect %+v", tt.name, editor.Redirect)
		}
		if editor.Errors.Get(tt.field) == "" {
			t.Fatalf("%s: missing %s error in %v", tt.name, tt.field, editor.Errors)
		}
		if editor.Form.Text != tt.form.Text {
			t.Fatalf("%s: form text = %q, want submitted %q", tt.name, editor.Form.Text, tt.form.Text)
		}
		if editor.IsEdit {
			t.Fatalf("%s: create form must not be in edit mode", tt.name)
		}
		if len(editor.Groups) != 1 {
			t.Fatalf("%s: groups = %v", tt.name, editor.Groups)
		}
	}
	if store.writes != 0 {
		t.Fatalf("writes = %d, want 0", store.writes)
	}
}

func TestCreateErrorsAreLocalized(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	user := store.addUser("author")
	svc := NewService(store, "ru")

	editor, err := svc.Create(context.Background(), actorFor(user), PostForm{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got := editor.Errors.Get(FieldText); got != "Обязательное поле." {
		t.Fatalf("text error = %q", got)
	}
}

func TestEditFormForAuthor(t *testing.T) {
	t.Parallel()

	store, author, group := seed(t)
	svc := NewService(store, "en")

	editor, err := svc.EditForm(context.Background(), actorFor(author), 1)
	if err != nil {
		t.Fatalf("edit form: %v", err)
	}
	if editor.Redirect != nil {
		t.Fatalf("unexpected redirect %+v", editor.Redirect)
	}
	if !editor.IsEdit {
		t.Fatal("expected edit mode")
	}
	if editor.Form.Text != "Test text 1" {
		t.Fatalf("form text = %q", editor.Form.Text)
	}
	if editor.Form.GroupID == nil || *editor.Form.GroupID != group.ID {
		t.Fatalf("form group = %v", editor.Form.GroupID)
	}
}

func TestEditByNonAuthorRedirectsWithoutChanges(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	a := store.addUser("A")
	b := store.addUser("B")
	svc := NewService(store, "en")

	created, err := svc.Create(context.Background(), actorFor(a), PostForm{Text: "original"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	writes := store.writes

	formEditor, err := svc.EditForm(context.Background(), actorFor(b), created.PostID)
	if err != nil {
		t.Fatalf("edit form: %v", err)
	}
	if formEditor.Redirect == nil || formEditor.Redirect.Kind != RedirectDetail || formEditor.Redirect.PostID != created.PostID {
		t.Fatalf("edit form redirect = %+v", formEditor.Redirect)
	}

	// An invalid submission still redirects: authorization runs before validation.
	for _, form := range []PostForm{{Text: "hijacked"}, {Text: ""}} {
		editor, err := svc.Edit(context.Background(), actorFor(b), created.PostID, form)
		if err != nil {
			t.Fatalf("edit: %v", err)
		}
		if editor.Redirect == nil || editor.Redirect.Kind != RedirectDetail {
			t.Fatalf("edit redirect = %+v", editor.Redirect)
		}
		if editor.Errors != nil {
			t.Fatalf("non-author must not see form errors: %v", editor.Errors)
		}
	}

	post, err := store.PostByID(context.Background(), created.PostID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if post.Text != "original" {
		t.Fatalf("text = %q, want original", post.Text)
	}
	if store.writes != writes {
		t.Fatalf("writes = %d, want %d", store.writes, writes)
	}
}

func TestEditMissingPost(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	user := store.addUser("author")
	svc := NewService(store, "en")

	if _, err := svc.EditForm(context.Background(), actorFor(user), 404); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("edit form error = %v", err)
	}
	if _, err := svc.Edit(context.Background(), actorFor(user), 404, PostForm{Text: "x"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("edit error = %v", err)
	}
}

func TestEditByAuthor(t *testing.T) {
	t.Parallel()

	store, author, _ := seed(t)
	other := store.addGroup("Dogs", "dogs")
	svc := NewService(store, "en")
	before, err := store.PostByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	editor, err := svc.Edit(context.Background(), actorFor(author), 1, PostForm{Text: "rewritten", GroupID: &other.ID})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if editor.Redirect == nil || editor.Redirect.Kind != RedirectDetail || editor.Redirect.PostID != 1 {
		t.Fatalf("redirect = %+v", editor.Redirect)
	}

	after, err := store.PostByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if after.Text != "rewritten" {
		t.Fatalf("text = %q", after.Text)
	}
	if after.Group == nil || after.Group.ID != other.ID {
		t.Fatalf("group = %+v", after.Group)
	}
	if after.Author.ID != before.Author.ID || !after.CreatedAt.Equal(before.CreatedAt) {
		t.Fatal("author and creation time must not change")
	}

	cleared, err := svc.Edit(context.Background(), actorFor(author), 1, PostForm{Text: "no group"})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if cleared.Redirect == nil {
		t.Fatal("expected redirect")
	}
	after, _ = store.PostByID(context.Background(), 1)
	if after.Group != nil {
		t.Fatalf("group = %+v, want nil", after.Group)
	}
}

func TestEditInvalidRedisplaysInEditMode(t *testing.T) {
	t.Parallel()

	store, author, _ := seed(t)
	svc := NewService(store, "en")
	writes := store.writes

	editor, err := svc.Edit(context.Background(), actorFor(author), 2, PostForm{Text: "   "})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if editor.Redirect != nil {
		t.Fatalf("unexpected redirect %+v", editor.Redirect)
	}
	if !editor.IsEdit || editor.PostID != 2 {
		t.Fatalf("editor = %+v", editor)
	}
	if editor.Errors.Get(FieldText) != "This field is required." {
		t.Fatalf("errors = %v", editor.Errors)
	}
	if editor.Form.Text != "   " {
		t.Fatalf("form text = %q, want the invalid submission", editor.Form.Text)
	}
	if store.writes != writes {
		t.Fatal("invalid edit must not write")
	}
}

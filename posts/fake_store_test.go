package posts

import (
	"context"
	"sort"
	"sync"
	"time"

	"yatube/domain"
	"yatube/pager"
)

type fakeStore struct {
	mu     sync.Mutex
	users  []domain.User
	groups []domain.Group
	posts  []domain.Post
	nextID int64
	writes int
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1}
}

func (f *fakeStore) addUser(username string) domain.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := domain.User{ID: int64(len(f.users) + 1), Username: username}
	f.users = append(f.users, u)
	return u
}

func (f *fakeStore) addGroup(title, slug string) domain.Group {
	f.mu.Lock()
	defer f.mu.Unlock()
	g := domain.Group{ID: int64(len(f.groups) + 1), Title: title, Slug: slug}
	f.groups = append(f.groups, g)
	return g
}

func (f *fakeStore) GroupBySlug(_ context.Context, slug string) (domain.Group, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, g := range f.groups {
		if g.Slug == slug {
			return g, nil
		}
	}
	return domain.Group{}, domain.ErrNotFound
}

func (f *fakeStore) GroupByID(_ context.Context, id int64) (domain.Group, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, g := range f.groups {
		if g.ID == id {
			return g, nil
		}
	}
	return domain.Group{}, domain.ErrNotFound
}

func (f *fakeStore) ListGroups(context.Context) ([]domain.Group, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := append([]domain.Group(nil), f.groups...)
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (f *fakeStore) UserByUsername(_ context.Context, username string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (f *fakeStore) PostByID(_ context.Context, id int64) (domain.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Post{}, domain.ErrNotFound
}

func (f *fakeStore) filter(keep func(domain.Post) bool) pager.Collection[domain.Post] {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out pager.SliceCollection[domain.Post]
	for i := len(f.posts) - 1; i >= 0; i-- {
		if keep(f.posts[i]) {
			out = append(out, f.posts[i])
		}
	}
	return out
}

func (f *fakeStore) AllPosts() pager.Collection[domain.Post] {
	return f.filter(func(domain.Post) bool { return true })
}

func (f *fakeStore) GroupPosts(groupID int64) pager.Collection[domain.Post] {
	return f.filter(func(p domain.Post) bool { return p.Group != nil && p.Group.ID == groupID })
}

func (f *fakeStore) UserPosts(userID int64) pager.Collection[domain.Post] {
	return f.filter(func(p domain.Post) bool { return p.Author.ID == userID })
}

func (f *fakeStore) CountUserPosts(ctx context.Context, userID int64) (int, error) {
	return f.UserPosts(userID).Count(ctx)
}

func (f *fakeStore) CreatePost(ctx context.Context, text string, authorID int64, groupID *int64, createdAt time.Time) (domain.Post, error) {
	var group *domain.Group
	if groupID != nil {
		g, err := f.GroupByID(ctx, *groupID)
		if err != nil {
			return domain.Post{}, err
		}
		group = &g
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var author domain.User
	for _, u := range f.users {
		if u.ID == authorID {
			author = u
		}
	}
	p := domain.Post{ID: f.nextID, Text: text, CreatedAt: createdAt, Author: author, Group: group}
	f.nextID++
	f.writes++
	f.posts = append(f.posts, p)
	return p, nil
}

func (f *fakeStore) UpdatePost(ctx context.Context, id int64, text string, groupID *int64) (domain.Post, error) {
	var group *domain.Group
	if groupID != nil {
		g, err := f.GroupByID(ctx, *groupID)
		if err != nil {
			return domain.Post{}, err
		}
		group = &g
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.posts {
		if f.posts[i].ID == id {
			f.posts[i].Text = text
			f.posts[i].Group = group
			f.writes++
			return f.posts[i], nil
		}
	}
	return domain.Post{}, domain.ErrNotFound
}

var _ Store = (*fakeStore)(nil)

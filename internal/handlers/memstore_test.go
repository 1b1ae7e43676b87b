package handlers_test

// Map-backed implementations of the repository interfaces. There is no
// embeddable MongoDB to open in t.TempDir, so the handler tests run the
// real routes over these instead. Every read hands out a copy so handlers
// observe fresh state per request, like the real driver.

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/pllus/social-api/internal/model"
	"github.com/pllus/social-api/internal/repository"
)

type memUsers struct {
	mu sync.Mutex
	m  map[bson.ObjectID]*model.User
}

func newMemUsers() *memUsers { return &memUsers{m: map[bson.ObjectID]*model.User{}} }

var _ repository.UserStore = (*memUsers)(nil)

func cloneUser(u *model.User) *model.User {
	cp := *u
	cp.Posts = append([]bson.ObjectID(nil), u.Posts...)
	cp.Followers = append([]bson.ObjectID(nil), u.Followers...)
	cp.Following = append([]bson.ObjectID(nil), u.Following...)
	return &cp
}

func (s *memUsers) Create(_ context.Context, u *model.User) (bson.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := cloneUser(u)
	cp.ID = bson.NewObjectID()
	s.m[cp.ID] = cp
	return cp.ID, nil
}

func (s *memUsers) ByID(_ context.Context, id bson.ObjectID) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.m[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneUser(u), nil
}

func (s *memUsers) ByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.m {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memUsers) Update(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[u.ID]; !ok {
		return repository.ErrNotFound
	}
	s.m[u.ID] = cloneUser(u)
	return nil
}

type memPosts struct {
	mu sync.Mutex
	m  map[bson.ObjectID]*model.Post
}

func newMemPosts() *memPosts { return &memPosts{m: map[bson.ObjectID]*model.Post{}} }

var _ repository.PostStore = (*memPosts)(nil)

func clonePost(p *model.Post) *model.Post {
	cp := *p
	cp.Likes = append([]bson.ObjectID(nil), p.Likes...)
	cp.Comments = append([]bson.ObjectID(nil), p.Comments...)
	return &cp
}

func (s *memPosts) Create(_ context.Context, p *model.Post) (bson.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := clonePost(p)
	cp.ID = bson.NewObjectID()
	s.m[cp.ID] = cp
	return cp.ID, nil
}

func (s *memPosts) ByID(_ context.Context, id bson.ObjectID) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.m[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return clonePost(p), nil
}

func (s *memPosts) ByAuthor(_ context.Context, author bson.ObjectID) ([]model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var posts []model.Post
	for _, p := range s.m {
		if p.Author == author {
			posts = append(posts, *clonePost(p))
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

func (s *memPosts) Update(_ context.Context, p *model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[p.ID]; !ok {
		return repository.ErrNotFound
	}
	s.m[p.ID] = clonePost(p)
	return nil
}

func (s *memPosts) Delete(_ context.Context, id bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.m, id)
	return nil
}

type memComments struct {
	mu   sync.Mutex
	list []model.Comment
}

func newMemComments() *memComments { return &memComments{} }

var _ repository.CommentStore = (*memComments)(nil)

func (s *memComments) Create(_ context.Context, cm *model.Comment) (bson.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *cm
	cp.ID = bson.NewObjectID()
	s.list = append(s.list, cp)
	return cp.ID, nil
}

func (s *memComments) ByPost(_ context.Context, post bson.ObjectID) ([]model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Comment
	for _, cm := range s.list {
		if cm.Post == post {
			out = append(out, cm)
		}
	}
	return out, nil
}

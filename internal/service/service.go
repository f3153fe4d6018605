// Package service is the core of the backend: per-entity operations on top
// of the store, the subscription graph and the user deletion cascade. Both
// the REST and the GraphQL adapters call into it and hold no logic of their
// own.
package service

import (
	"context"
	"sync"

	"github.com/wichananm65/social-graph-backend/internal/domain"
	"github.com/wichananm65/social-graph-backend/internal/integrity"
	"github.com/wichananm65/social-graph-backend/internal/store"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultCascadeWorkers = 8

// collection is the subset of store.Collection the service relies on.
type collection[T any] interface {
	Create(rec T) (T, error)
	Get(id string) (T, error)
	FindOne(preds ...store.Predicate) (T, error)
	FindMany(preds ...store.Predicate) []T
	Update(id string, mutate func(*T) error) (T, error)
	Delete(id string) (T, error)
}

type Service struct {
	users       collection[domain.User]
	profiles    collection[domain.Profile]
	posts       collection[domain.Post]
	memberTypes collection[domain.MemberType]

	check   *integrity.Checker
	log     *zap.Logger
	workers int

	// serializes the one-profile-per-user check with the insert
	profileMu sync.Mutex
}

type Option func(*Service)

func WithLogger(log *zap.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithCascadeWorkers bounds how many records a cascade step mutates at once.
func WithCascadeWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.workers = n
		}
	}
}

func New(st *store.Store, opts ...Option) *Service {
	s := &Service{
		users:       st.Users,
		profiles:    st.Profiles,
		posts:       st.Posts,
		memberTypes: st.MemberTypes,
		check:       integrity.FromStore(st),
		log:         zap.NewNop(),
		workers:     defaultCascadeWorkers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// forEach runs fn for every id with at most s.workers in flight and returns
// the first failure. Work already done is not undone.
func (s *Service) forEach(ctx context.Context, ids []string, fn func(id string) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for _, id := range ids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(id)
		})
	}
	return g.Wait()
}

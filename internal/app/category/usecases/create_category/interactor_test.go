package create_category

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catalog-service/internal/app/category/domain"
	"github.com/light-bringer/catalog-service/internal/pkg/clock"
	"github.com/light-bringer/catalog-service/internal/pkg/committer"
	"github.com/light-bringer/catalog-service/internal/pkg/outbox"
)

type fakeRepo struct {
	inserted []*domain.Category
}

func (r *fakeRepo) InsertMut(c *domain.Category) *spanner.Mutation {
	r.inserted = append(r.inserted, c)
	return spanner.Insert("categories", []string{"category_id"}, []interface{}{c.ID()})
}

func (r *fakeRepo) GetByID(context.Context, string) (*domain.Category, error) {
	return nil, domain.ErrCategoryNotFound
}

func (r *fakeRepo) Exists(context.Context, string) (bool, error) { return false, nil }

type fakeApplier struct {
	plans []*committer.CommitPlan
	err   error
}

func (a *fakeApplier) Apply(_ context.Context, plan *committer.CommitPlan) error {
	a.plans = append(a.plans, plan)
	return a.err
}

func (a *fakeApplier) ApplyWithVersionCheck(ctx context.Context, _ committer.VersionCheck, plan *committer.CommitPlan) error {
	return a.Apply(ctx, plan)
}

func newInteractor(repo *fakeRepo, applier *fakeApplier) (*Interactor, *test.Hook) {
	log, hook := test.NewNullLogger()
	clk := clock.NewMockClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewInteractor(repo, outbox.NewWriter(), applier, clk, log), hook
}

func TestInteractor_Execute(t *testing.T) {
	t.Run("commits category and outbox event together", func(t *testing.T) {
		repo := &fakeRepo{}
		applier := &fakeApplier{}
		interactor, hook := newInteractor(repo, applier)

		id, err := interactor.Execute(context.Background(), &Request{Name: "Electronics", Description: "Gadgets"})
		require.NoError(t, err)
		assert.NotEmpty(t, id)

		require.Len(t, repo.inserted, 1)
		assert.Equal(t, id, repo.inserted[0].ID())

		require.Len(t, applier.plans, 1)
		assert.Equal(t, 2, applier.plans[0].Count())

		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
		assert.Equal(t, id, hook.LastEntry().Data["category_id"])
	})

	t.Run("invalid name never reaches storage", func(t *testing.T) {
		repo := &fakeRepo{}
		applier := &fakeApplier{}
		interactor, _ := newInteractor(repo, applier)

		_, err := interactor.Execute(context.Background(), &Request{Name: "x"})
		assert.ErrorIs(t, err, domain.ErrInvalidName)
		assert.Empty(t, applier.plans)
	})

	t.Run("commit failure is wrapped", func(t *testing.T) {
		boom := errors.New("spanner unavailable")
		interactor, _ := newInteractor(&fakeRepo{}, &fakeApplier{err: boom})

		_, err := interactor.Execute(context.Background(), &Request{Name: "Books"})
		assert.ErrorIs(t, err, boom)
	})
}

package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/anzhiyu-c/anheyu-post/pkg/constant"
	"github.com/anzhiyu-c/anheyu-post/pkg/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendPreservesSubmissionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepo()

	const n = 25
	for i := 1; i <= n; i++ {
		require.NoError(t, repo.Append(ctx, model.Post{ID: uint64(i), Title: fmt.Sprintf("post %d", i)}))
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, n, count)

	posts, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, posts, n)
	for i, p := range posts {
		assert.Equal(t, uint64(i+1), p.ID)
		assert.Equal(t, fmt.Sprintf("post %d", i+1), p.Title)
	}
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepo()
	require.NoError(t, repo.Append(ctx, model.Post{ID: 1}))
	require.NoError(t, repo.Append(ctx, model.Post{ID: 2}))

	require.NoError(t, repo.Remove(ctx, 1))
	posts, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, uint64(2), posts[0].ID)

	err = repo.Remove(ctx, 1)
	assert.ErrorIs(t, err, constant.ErrNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRemoveFromEmpty(t *testing.T) {
	err := NewPostRepo().Remove(context.Background(), 7)
	assert.ErrorIs(t, err, constant.ErrNotFound)
}

func TestFindAllReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepo()
	require.NoError(t, repo.Append(ctx, model.Post{ID: 1, Title: "original"}))

	posts, err := repo.FindAll(ctx)
	require.NoError(t, err)
	posts[0].Title = "changed"

	stored, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "original", stored.Title)
}

func TestFindByIDMissing(t *testing.T) {
	_, err := NewPostRepo().FindByID(context.Background(), 3)
	assert.ErrorIs(t, err, constant.ErrNotFound)
}

func TestConcurrentAppend(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepo()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id uint64) {
			defer wg.Done()
			_ = repo.Append(ctx, model.Post{ID: id})
		}(uint64(i + 1))
	}
	wg.Wait()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, count)
}

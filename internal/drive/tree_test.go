package drive

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider is a scripted Client counting calls per node.
type fakeProvider struct {
	mu        sync.Mutex
	listDelay time.Duration
	listings  map[string][]Entry
	contents map[string]string
	failList map[string]bool
	failRead map[string]bool
	lists    map[string]int
	reads    map[string]int
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		listings: map[string][]Entry{
			RootFolderID: {
				{ID: "f1", Name: "Drawings", Kind: KindFolder},
				{ID: "d1", Name: "readme.txt", Kind: KindFile},
			},
			"f1": {
				{ID: "d2", Name: "plan.pdf", Kind: KindFile},
			},
		},
		contents: map[string]string{
			"d1": "hello",
			"d2": "plan content",
		},
		failList: map[string]bool{},
		failRead: map[string]bool{},
		lists:    map[string]int{},
		reads:    map[string]int{},
	}
}

func (f *fakeProvider) List(ctx context.Context, folderID string) ([]Entry, error) {
	time.Sleep(f.listDelay)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists[folderID]++
	if f.failList[folderID] {
		return nil, fmt.Errorf("%w: listing failed", ErrRemoteFetch)
	}
	return f.listings[folderID], nil
}

func (f *fakeProvider) Read(ctx context.Context, fileID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads[fileID]++
	if f.failRead[fileID] {
		return "", fmt.Errorf("%w: read failed", ErrRemoteFetch)
	}
	return f.contents[fileID], nil
}

func refreshed(t *testing.T, provider *fakeProvider) *Tree {
	t.Helper()
	tree := NewTree(provider)
	require.NoError(t, tree.Refresh(context.Background()))
	return tree
}

func TestTree_RefreshListsTopLevelOnly(t *testing.T) {
	provider := newFakeProvider()
	tree := refreshed(t, provider)

	roots := tree.Roots()
	require.Len(t, roots, 2)
	assert.Equal(t, "Drawings", roots[0].Name)
	assert.Equal(t, KindFolder, roots[0].Kind)
	assert.Nil(t, roots[0].Children, "deeper levels stay unfetched")
	assert.Equal(t, 1, provider.lists[RootFolderID])
	assert.Zero(t, provider.lists["f1"])
}

func TestTree_ExpandFetchesOnceThenToggles(t *testing.T) {
	provider := newFakeProvider()
	tree := refreshed(t, provider)
	ctx := context.Background()

	require.NoError(t, tree.Expand(ctx, "f1"))
	node, ok := tree.Node("f1")
	require.True(t, ok)
	assert.True(t, node.Expanded)
	require.Len(t, tree.ChildrenOf("f1"), 1)
	assert.Equal(t, "plan.pdf", tree.ChildrenOf("f1")[0].Name)

	// Second expand only collapses; the cached children survive.
	require.NoError(t, tree.Expand(ctx, "f1"))
	node, _ = tree.Node("f1")
	assert.False(t, node.Expanded)
	assert.NotNil(t, node.Children)

	require.NoError(t, tree.Expand(ctx, "f1"))
	node, _ = tree.Node("f1")
	assert.True(t, node.Expanded)

	assert.Equal(t, 1, provider.lists["f1"], "children fetched exactly once")
}

func TestTree_ExpandEmptyFolderIsRememberedAsFetched(t *testing.T) {
	provider := newFakeProvider()
	provider.listings["f1"] = []Entry{}
	tree := refreshed(t, provider)
	ctx := context.Background()

	require.NoError(t, tree.Expand(ctx, "f1"))
	node, _ := tree.Node("f1")
	assert.NotNil(t, node.Children)
	assert.Empty(t, node.Children)

	require.NoError(t, tree.Expand(ctx, "f1"))
	assert.Equal(t, 1, provider.lists["f1"])
}

func TestTree_ExpandErrors(t *testing.T) {
	provider := newFakeProvider()
	tree := refreshed(t, provider)
	ctx := context.Background()

	assert.ErrorIs(t, tree.Expand(ctx, "nope"), ErrUnknownNode)
	assert.ErrorIs(t, tree.Expand(ctx, "d1"), ErrNotFolder)

	provider.failList["f1"] = true
	err := tree.Expand(ctx, "f1")
	assert.ErrorIs(t, err, ErrRemoteFetch)

	// A failed expansion leaves the folder unfetched for another try.
	provider.failList["f1"] = false
	require.NoError(t, tree.Expand(ctx, "f1"))
	require.Len(t, tree.ChildrenOf("f1"), 1)
}

func TestTree_SelectCachesContent(t *testing.T) {
	provider := newFakeProvider()
	tree := refreshed(t, provider)
	ctx := context.Background()

	content, err := tree.Select(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "hello", content)

	selected, ok := tree.Selected()
	require.True(t, ok)
	assert.Equal(t, "d1", selected.ID)

	content, err = tree.Select(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "hello", content)
	assert.Equal(t, 1, provider.reads["d1"], "content fetched exactly once")
}

func TestTree_SelectFailureCachesPlaceholder(t *testing.T) {
	provider := newFakeProvider()
	provider.failRead["d1"] = true
	tree := refreshed(t, provider)
	ctx := context.Background()

	content, err := tree.Select(ctx, "d1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRemoteFetch))
	assert.Equal(t, ContentUnavailable, content)

	// The node is still selected and the failure is cached: no refetch.
	selected, ok := tree.Selected()
	require.True(t, ok)
	assert.Equal(t, "d1", selected.ID)

	provider.failRead["d1"] = false
	content, err = tree.Select(ctx, "d1")
	require.NoError(t, err, "cached placeholder is served without another fetch")
	assert.Equal(t, ContentUnavailable, content)
	assert.Equal(t, 1, provider.reads["d1"])
}

func TestTree_SelectErrors(t *testing.T) {
	provider := newFakeProvider()
	tree := refreshed(t, provider)
	ctx := context.Background()

	_, err := tree.Select(ctx, "nope")
	assert.ErrorIs(t, err, ErrUnknownNode)

	_, err = tree.Select(ctx, "f1")
	assert.ErrorIs(t, err, ErrNotFile)
}

func TestTree_RefreshDiscardsEverything(t *testing.T) {
	provider := newFakeProvider()
	tree := refreshed(t, provider)
	ctx := context.Background()

	require.NoError(t, tree.Expand(ctx, "f1"))
	_, err := tree.Select(ctx, "d1")
	require.NoError(t, err)

	require.NoError(t, tree.Refresh(ctx))

	node, ok := tree.Node("f1")
	require.True(t, ok)
	assert.Nil(t, node.Children, "expansion state is gone")
	_, selectedOK := tree.Selected()
	assert.False(t, selectedOK, "selection is gone")

	// Re-expanding and re-selecting hit the provider again.
	require.NoError(t, tree.Expand(ctx, "f1"))
	_, err = tree.Select(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, 2, provider.lists["f1"])
	assert.Equal(t, 2, provider.reads["d1"])
}

func TestTree_ConcurrentExpandCoalesces(t *testing.T) {
	provider := newFakeProvider()
	tree := refreshed(t, provider)
	provider.listDelay = 100 * time.Millisecond
	ctx := context.Background()

	// Race many expansions of an unfetched folder. The singleflight group
	// must collapse them into one provider call.
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = tree.Expand(ctx, "f1")
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, provider.lists["f1"])
	assert.NotNil(t, tree.ChildrenOf("f1"))
}

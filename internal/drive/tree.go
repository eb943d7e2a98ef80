package drive

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ContentUnavailable is cached for a file whose content fetch failed, so a
// second selection never re-fetches a known-bad file.
const ContentUnavailable = "content unavailable"

// Node is one entry in the lazily-materialized remote tree. Children is nil
// until the folder has been listed; a fetched folder with no entries keeps
// a non-nil empty slice so repeat expansion is recognized as already
// fetched. Content is nil until the file has been read.
type Node struct {
	ID       string
	Name     string
	Kind     NodeKind
	Children []string
	Expanded bool
	Content  *string
}

// Tree is an arena of nodes addressed by provider-assigned ID, with
// parent-to-children edges stored as ID lists. Finding a node to update is
// a map lookup instead of a full-tree walk.
type Tree struct {
	client Client

	mu       sync.Mutex
	nodes    map[string]*Node
	roots    []string
	selected string

	// At most one listing or content request may be outstanding per node;
	// racing double-clicks coalesce onto the same flight.
	group singleflight.Group
}

// NewTree creates an empty Tree over the given provider client. Call
// Refresh to materialize the top level.
func NewTree(client Client) *Tree {
	return &Tree{
		client: client,
		nodes:  make(map[string]*Node),
	}
}

// Refresh discards the entire tree and re-fetches the top level only.
// Deeper levels return to unfetched and repopulate lazily on expansion.
func (t *Tree) Refresh(ctx context.Context) error {
	entries, err, _ := t.group.Do("list:"+RootFolderID, func() (interface{}, error) {
		return t.client.List(ctx, RootFolderID)
	})
	if err != nil {
		return fmt.Errorf("refreshing tree: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.nodes = make(map[string]*Node)
	t.roots = nil
	t.selected = ""
	for _, e := range entries.([]Entry) {
		t.nodes[e.ID] = &Node{ID: e.ID, Name: e.Name, Kind: e.Kind}
		t.roots = append(t.roots, e.ID)
	}
	return nil
}

// Expand materializes a folder's children on first call and toggles its
// display flag on every call. Fetched children are cached in place: only
// Refresh ever discards them.
func (t *Tree) Expand(ctx context.Context, folderID string) error {
	t.mu.Lock()
	node, ok := t.nodes[folderID]
	if !ok {
		t.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownNode, folderID)
	}
	if node.Kind != KindFolder {
		t.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotFolder, folderID)
	}
	if node.Children != nil {
		node.Expanded = !node.Expanded
		t.mu.Unlock()
		return nil
	}
	t.mu.Unlock()

	_, err, _ := t.group.Do("list:"+folderID, func() (interface{}, error) {
		listed, listErr := t.client.List(ctx, folderID)
		if listErr != nil {
			return nil, listErr
		}

		t.mu.Lock()
		defer t.mu.Unlock()
		parent, still := t.nodes[folderID]
		if !still {
			// Tree was refreshed out from under the flight.
			return nil, nil
		}
		childIDs := make([]string, 0, len(listed))
		for _, e := range listed {
			if _, exists := t.nodes[e.ID]; !exists {
				t.nodes[e.ID] = &Node{ID: e.ID, Name: e.Name, Kind: e.Kind}
			}
			childIDs = append(childIDs, e.ID)
		}
		parent.Children = childIDs
		parent.Expanded = true
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("expanding %s: %w", folderID, err)
	}
	return nil
}

// Select returns a file's content, fetching and caching it on first
// selection. A failed fetch caches ContentUnavailable and still marks the
// node selected; the error is reported once, inline, and never re-fetched.
func (t *Tree) Select(ctx context.Context, fileID string) (string, error) {
	t.mu.Lock()
	node, ok := t.nodes[fileID]
	if !ok {
		t.mu.Unlock()
		return "", fmt.Errorf("%w: %s", ErrUnknownNode, fileID)
	}
	if node.Kind != KindFile {
		t.mu.Unlock()
		return "", fmt.Errorf("%w: %s", ErrNotFile, fileID)
	}
	if node.Content != nil {
		t.selected = fileID
		content := *node.Content
		t.mu.Unlock()
		return content, nil
	}
	t.mu.Unlock()

	result, err, _ := t.group.Do("read:"+fileID, func() (interface{}, error) {
		content, readErr := t.client.Read(ctx, fileID)

		t.mu.Lock()
		defer t.mu.Unlock()
		target, still := t.nodes[fileID]
		if !still {
			// Tree was refreshed out from under the flight.
			return &content, readErr
		}
		if readErr != nil {
			placeholder := ContentUnavailable
			target.Content = &placeholder
		} else {
			target.Content = &content
		}
		t.selected = fileID
		return target.Content, readErr
	})

	t.mu.Lock()
	t.selected = fileID
	t.mu.Unlock()

	if err != nil {
		return ContentUnavailable, fmt.Errorf("selecting %s: %w", fileID, err)
	}
	return *result.(*string), nil
}

// Node returns a copy of the node with the given ID.
func (t *Tree) Node(id string) (Node, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n, ok := t.nodes[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Roots returns copies of the top-level nodes in listing order.
func (t *Tree) Roots() []Node {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.collect(t.roots)
}

// ChildrenOf returns copies of a folder's fetched children in listing
// order, or nil if the folder is unfetched or unknown.
func (t *Tree) ChildrenOf(folderID string) []Node {
	t.mu.Lock()
	defer t.mu.Unlock()
	n, ok := t.nodes[folderID]
	if !ok || n.Children == nil {
		return nil
	}
	return t.collect(n.Children)
}

// Selected returns the currently selected node, if any.
func (t *Tree) Selected() (Node, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.selected == "" {
		return Node{}, false
	}
	n, ok := t.nodes[t.selected]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

func (t *Tree) collect(ids []string) []Node {
	out := make([]Node, 0, len(ids))
	for _, id := range ids {
		if n, ok := t.nodes[id]; ok {
			out = append(out, *n)
		}
	}
	return out
}

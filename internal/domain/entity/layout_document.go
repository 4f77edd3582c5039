package entity

import (
	"strconv"
	"strings"
	"time"
)

// LayoutVersion is the current version of the layout document format.
// Documents are accepted when their major component matches LayoutMajorVersion.
const (
	LayoutVersion      = "1.0"
	LayoutMajorVersion = 1
)

// maxDocumentDepth bounds recursion on untrusted documents.
const maxDocumentDepth = 128

// DocumentNodeType tags a document node.
type DocumentNodeType string

const (
	DocumentPane      DocumentNodeType = "Pane"
	DocumentContainer DocumentNodeType = "Container"
)

// Orientation is the document form of a branch's split axis.
type Orientation string

const (
	OrientationVertical   Orientation = "Vertical"   // side by side
	OrientationHorizontal Orientation = "Horizontal" // stacked
)

// LayoutDocument is the portable form of a pane tree.
type LayoutDocument struct {
	Version string        `json:"version" yaml:"version" jsonschema:"required,pattern=^[0-9]+(\.[0-9]+)*$"`
	Root    *DocumentNode `json:"root" yaml:"root" jsonschema:"required"`

	// State is kept by the layout store beside the document and is never encoded.
	State *PaneState `json:"-" yaml:"-"`
}

// PaneState is the editing state of a stored layout: which pane is selected
// and which panes were created while splitting was off.
type PaneState struct {
	Selected NodeID
	Locked   []NodeID
}

// DocumentNode captures one node of the pane tree.
// Containers omit ContentKey; panes omit Orientation and SplitRatio.
type DocumentNode struct {
	ID               string            `json:"id" yaml:"id"`
	Type             DocumentNodeType  `json:"type" yaml:"type" jsonschema:"required,enum=Pane,enum=Container"`
	ContentKey       string            `json:"contentKey,omitempty" yaml:"contentKey,omitempty"`
	Orientation      Orientation       `json:"orientation,omitempty" yaml:"orientation,omitempty" jsonschema:"enum=Vertical,enum=Horizontal"`
	SplitRatio       *float64          `json:"splitRatio,omitempty" yaml:"splitRatio,omitempty" jsonschema:"minimum=0.1,maximum=0.9"`
	CustomProperties map[string]string `json:"customProperties,omitempty" yaml:"customProperties,omitempty"`
	FirstChild       *DocumentNode     `json:"firstChild,omitempty" yaml:"firstChild,omitempty"`
	SecondChild      *DocumentNode     `json:"secondChild,omitempty" yaml:"secondChild,omitempty"`
}

// LayoutInfo summarises a stored layout for listings.
type LayoutInfo struct {
	Name      string    `json:"name"`
	Version   string    `json:"version"`
	PaneCount int       `json:"paneCount"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DocumentFromTree walks the tree depth-first, first child before second,
// and produces its document form. An empty tree yields a nil root.
func DocumentFromTree(tree *PaneTree) *LayoutDocument {
	doc := &LayoutDocument{Version: LayoutVersion}
	if tree == nil || tree.IsEmpty() {
		return doc
	}
	doc.Root = documentNode(tree.Root())

	state := &PaneState{}
	if selected := tree.Selected(); selected != nil {
		state.Selected = selected.ID
	}
	for leaf := range tree.Leaves() {
		if !leaf.CanSplit {
			state.Locked = append(state.Locked, leaf.ID)
		}
	}
	doc.State = state
	return doc
}

func documentNode(node *PaneNode) *DocumentNode {
	if node == nil {
		return nil
	}

	out := &DocumentNode{
		ID:               string(node.ID),
		CustomProperties: copyProperties(node.Properties),
	}

	if node.Kind == KindLeaf {
		out.Type = DocumentPane
		out.ContentKey = node.ContentKey
		return out
	}

	ratio := node.SplitRatio
	out.Type = DocumentContainer
	out.SplitRatio = &ratio
	out.Orientation = OrientationHorizontal
	if node.IsVerticalSplit {
		out.Orientation = OrientationVertical
	}
	out.FirstChild = documentNode(node.First)
	out.SecondChild = documentNode(node.Second)
	return out
}

// PaneCount returns the number of panes described by the document.
func (d *LayoutDocument) PaneCount() int {
	if d == nil {
		return 0
	}
	return countDocumentPanes(d.Root)
}

func countDocumentPanes(node *DocumentNode) int {
	if node == nil {
		return 0
	}
	if node.Type == DocumentPane {
		return 1
	}
	return countDocumentPanes(node.FirstChild) + countDocumentPanes(node.SecondChild)
}

// Validate checks the document and returns a *DocumentError describing the
// first failure.
func (d *LayoutDocument) Validate() error {
	if d == nil {
		return invalidDocument("", "document is nil")
	}
	if err := checkVersion(d.Version); err != nil {
		return err
	}
	if d.Root == nil {
		return invalidDocument("root", "root is missing")
	}
	seen := make(map[string]struct{})
	return validateDocumentNode(d.Root, "root", 0, seen)
}

func checkVersion(version string) error {
	if version == "" {
		return invalidDocument("version", "version is missing")
	}
	majorPart, _, _ := strings.Cut(version, ".")
	major, err := strconv.Atoi(majorPart)
	if err != nil {
		return invalidDocument("version", "malformed version %q", version)
	}
	if major != LayoutMajorVersion {
		return invalidDocument("version", "unsupported major version %d, want %d", major, LayoutMajorVersion)
	}
	return nil
}

func validateDocumentNode(node *DocumentNode, path string, depth int, seen map[string]struct{}) error {
	if depth > maxDocumentDepth {
		return invalidDocument(path, "tree deeper than %d levels", maxDocumentDepth)
	}
	if node.ID != "" {
		if _, dup := seen[node.ID]; dup {
			return invalidDocument(path, "duplicate id %q", node.ID)
		}
		seen[node.ID] = struct{}{}
	}

	switch node.Type {
	case DocumentPane:
		if strings.TrimSpace(node.ID) == "" {
			return invalidDocument(path, "pane id is empty")
		}
		if node.FirstChild != nil || node.SecondChild != nil {
			return invalidDocument(path, "pane %q has children", node.ID)
		}
		return nil
	case DocumentContainer:
		if node.FirstChild == nil {
			return invalidDocument(path, "container is missing firstChild")
		}
		if node.SecondChild == nil {
			return invalidDocument(path, "container is missing secondChild")
		}
		if node.SplitRatio == nil {
			return invalidDocument(path, "container is missing splitRatio")
		}
		if r := *node.SplitRatio; r != r || r < MinSplitRatio || r > MaxSplitRatio {
			return invalidDocument(path, "splitRatio %v outside [%.1f, %.1f]", r, MinSplitRatio, MaxSplitRatio)
		}
		switch node.Orientation {
		case OrientationVertical, OrientationHorizontal:
		case "":
			return invalidDocument(path, "container is missing orientation")
		default:
			return invalidDocument(path, "unknown orientation %q", node.Orientation)
		}
		if err := validateDocumentNode(node.FirstChild, path+".firstChild", depth+1, seen); err != nil {
			return err
		}
		return validateDocumentNode(node.SecondChild, path+".secondChild", depth+1, seen)
	case "":
		return invalidDocument(path, "node type is missing")
	default:
		return invalidDocument(path, "unknown node type %q", node.Type)
	}
}

// ContentResolver recreates content for a pane from its key and metadata.
// Returning nil makes the rebuild install a Placeholder.
type ContentResolver func(contentKey string, properties map[string]string) ContentHandle

// IDGenerator is a function that generates unique IDs.
type IDGenerator func() string

// RebuildOptions tunes TreeFromDocument.
type RebuildOptions struct {
	Resolver ContentResolver
	// NewID names containers whose document id is empty.
	NewID IDGenerator
	// CanSplit is the split permission given to every rebuilt pane when the
	// document carries no PaneState. Stored state wins over it.
	CanSplit bool
	// PlaceholderLabel is shown by placeholders for unresolved content.
	PlaceholderLabel string
}

// TreeFromDocument validates doc and reconstructs the pane tree. This is the
// inverse of DocumentFromTree: shape, ratios, orientations, ids, content keys
// and custom properties are preserved. Nothing is returned on failure.
func TreeFromDocument(doc *LayoutDocument, opts RebuildOptions) (*PaneTree, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	used := make(map[string]struct{})
	collectDocumentIDs(doc.Root, used)

	var seq int
	gen := opts.NewID
	if gen == nil {
		gen = func() string {
			seq++
			return "container-" + strconv.Itoa(seq)
		}
	}
	newID := func() string {
		for {
			id := gen()
			if _, taken := used[id]; !taken && id != "" {
				used[id] = struct{}{}
				return id
			}
		}
	}

	canSplit := func(NodeID) bool { return opts.CanSplit }
	if doc.State != nil {
		locked := make(map[NodeID]struct{}, len(doc.State.Locked))
		for _, id := range doc.State.Locked {
			locked[id] = struct{}{}
		}
		canSplit = func(id NodeID) bool {
			_, isLocked := locked[id]
			return !isLocked
		}
	}

	root := rebuildNode(doc.Root, opts, canSplit, newID)
	tree := NewPaneTree(root)

	var preferred *PaneNode
	if doc.State != nil && doc.State.Selected != "" {
		if node := tree.FindByID(doc.State.Selected); node.IsLeaf() {
			preferred = node
		}
	}
	tree.EnsureSingleSelection(preferred)
	return tree, nil
}

func rebuildNode(snap *DocumentNode, opts RebuildOptions, canSplit func(NodeID) bool, newID IDGenerator) *PaneNode {
	if snap.Type == DocumentPane {
		leaf := NewLeaf(NodeID(snap.ID), nil)
		leaf.ContentKey = snap.ContentKey
		leaf.Properties = copyProperties(snap.CustomProperties)
		leaf.CanSplit = canSplit(leaf.ID)
		if opts.Resolver != nil {
			leaf.Content = opts.Resolver(snap.ContentKey, copyProperties(snap.CustomProperties))
		}
		if leaf.Content == nil {
			leaf.Content = Placeholder{Key: snap.ContentKey, Label: opts.PlaceholderLabel}
		}
		return leaf
	}

	id := snap.ID
	if id == "" {
		id = newID()
	}
	branch := NewBranch(
		NodeID(id),
		rebuildNode(snap.FirstChild, opts, canSplit, newID),
		rebuildNode(snap.SecondChild, opts, canSplit, newID),
		snap.Orientation == OrientationVertical,
		*snap.SplitRatio,
	)
	branch.Properties = copyProperties(snap.CustomProperties)
	return branch
}

func collectDocumentIDs(node *DocumentNode, used map[string]struct{}) {
	if node == nil {
		return
	}
	if node.ID != "" {
		used[node.ID] = struct{}{}
	}
	collectDocumentIDs(node.FirstChild, used)
	collectDocumentIDs(node.SecondChild, used)
}

func copyProperties(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

package vehicle

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// NoParent marks the root bone.
const NoParent = -1

// Bone describes one node of a skeleton in its bind pose.
type Bone struct {
	Name   string
	Parent int        // Index of the parent bone, NoParent for the root
	Bind   mgl64.Mat4 // Transform relative to the parent at load time
}

// Skeleton is an arena of bones addressed by index, with names resolved once
// at construction. Each bone keeps an immutable bind transform, a mutable
// local transform, and a cached absolute transform.
//
// Matrices use column vectors: a bone's absolute transform is
// parent.absolute * bone.local.
type Skeleton struct {
	names    []string
	parents  []int
	initial  []mgl64.Mat4
	local    []mgl64.Mat4
	absolute []mgl64.Mat4
	order    []int // Parents always precede children
	index    map[string]int
}

// NewSkeleton validates the bone list and builds a skeleton in its bind pose.
// Exactly one bone must be the root, parents must be valid indices, names must
// be unique and non-empty, and the parent links must not form a cycle.
func NewSkeleton(bones []Bone) (*Skeleton, error) {
	if len(bones) == 0 {
		return nil, errors.New("skeleton: no bones")
	}

	s := &Skeleton{
		names:    make([]string, len(bones)),
		parents:  make([]int, len(bones)),
		initial:  make([]mgl64.Mat4, len(bones)),
		local:    make([]mgl64.Mat4, len(bones)),
		absolute: make([]mgl64.Mat4, len(bones)),
		index:    make(map[string]int, len(bones)),
	}

	root := NoParent
	for i, b := range bones {
		if b.Name == "" {
			return nil, fmt.Errorf("skeleton: bone %d has no name", i)
		}
		if _, dup := s.index[b.Name]; dup {
			return nil, fmt.Errorf("skeleton: duplicate bone %q", b.Name)
		}
		if b.Parent == NoParent {
			if root != NoParent {
				return nil, fmt.Errorf("skeleton: bones %q and %q are both roots", s.names[root], b.Name)
			}
			root = i
		} else if b.Parent < 0 || b.Parent >= len(bones) || b.Parent == i {
			return nil, fmt.Errorf("skeleton: bone %q has invalid parent %d", b.Name, b.Parent)
		}

		s.index[b.Name] = i
		s.names[i] = b.Name
		s.parents[i] = b.Parent
		s.initial[i] = b.Bind
		s.local[i] = b.Bind
	}
	if root == NoParent {
		return nil, errors.New("skeleton: no root bone")
	}

	order, err := topoOrder(s.parents, root)
	if err != nil {
		return nil, err
	}
	s.order = order
	s.Update()
	return s, nil
}

// topoOrder returns bone indices sorted so that every parent precedes its
// children. Bones that cannot reach the root indicate a cycle.
func topoOrder(parents []int, root int) ([]int, error) {
	children := make([][]int, len(parents))
	for i, p := range parents {
		if p != NoParent {
			children[p] = append(children[p], i)
		}
	}

	order := make([]int, 0, len(parents))
	queue := []int{root}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		order = append(order, i)
		queue = append(queue, children[i]...)
	}

	if len(order) != len(parents) {
		return nil, fmt.Errorf("skeleton: %d bones are not connected to the root (cycle?)", len(parents)-len(order))
	}
	return order, nil
}

// Len returns the number of bones.
func (s *Skeleton) Len() int {
	return len(s.names)
}

// Index looks up a bone by name.
func (s *Skeleton) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Name returns the name of bone i.
func (s *Skeleton) Name(i int) string {
	return s.names[i]
}

// Parent returns the parent index of bone i, or NoParent for the root.
func (s *Skeleton) Parent(i int) int {
	return s.parents[i]
}

// Root returns the index of the root bone.
func (s *Skeleton) Root() int {
	return s.order[0]
}

// Initial returns the bind-pose transform of bone i.
func (s *Skeleton) Initial(i int) mgl64.Mat4 {
	return s.initial[i]
}

// Local returns the current transform of bone i relative to its parent.
func (s *Skeleton) Local(i int) mgl64.Mat4 {
	return s.local[i]
}

// SetLocal replaces the transform of bone i relative to its parent.
// Absolute transforms are stale until Update is called.
func (s *Skeleton) SetLocal(i int, m mgl64.Mat4) {
	s.local[i] = m
}

// HasAncestor reports whether ancestor lies on the path from bone i to the root.
func (s *Skeleton) HasAncestor(i, ancestor int) bool {
	for p := s.parents[i]; p != NoParent; p = s.parents[p] {
		if p == ancestor {
			return true
		}
	}
	return false
}

// Absolute composes the local transforms from the root down to bone i.
// It reads the local table directly, so it is valid between Update calls.
func (s *Skeleton) Absolute(i int) mgl64.Mat4 {
	m := s.local[i]
	for p := s.parents[i]; p != NoParent; p = s.parents[p] {
		m = s.local[p].Mul4(m)
	}
	return m
}

// Update recomputes the cached absolute transform of every bone.
func (s *Skeleton) Update() {
	for _, i := range s.order {
		if p := s.parents[i]; p == NoParent {
			s.absolute[i] = s.local[i]
		} else {
			s.absolute[i] = s.absolute[p].Mul4(s.local[i])
		}
	}
}

// Current returns the cached absolute transform of bone i as of the last Update.
func (s *Skeleton) Current(i int) mgl64.Mat4 {
	return s.absolute[i]
}

// CopyAbsoluteTo copies all cached absolute transforms into dst, growing it
// as needed, and returns the result.
func (s *Skeleton) CopyAbsoluteTo(dst []mgl64.Mat4) []mgl64.Mat4 {
	if cap(dst) < len(s.absolute) {
		dst = make([]mgl64.Mat4, len(s.absolute))
	}
	dst = dst[:len(s.absolute)]
	copy(dst, s.absolute)
	return dst
}

// ResetPose restores every local transform to its bind pose.
func (s *Skeleton) ResetPose() {
	copy(s.local, s.initial)
	s.Update()
}

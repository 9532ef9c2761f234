package egtb

import "fmt"

// Store persists solved nodes during a build. Implementations are keyed
// by position hash; reading an absent hash returns a node with Known
// set to false rather than an error.
type Store interface {
	Read(hash uint64) (*Node, error)
	Write(node *Node) error
	Count() (uint64, error)
	Close() error
}

// MemStore keeps nodes in a dense in-memory array indexed by hash. It
// is the store of choice when the table fits in RAM and for tests.
type MemStore struct {
	scores []int16
	flags  []Flag
	known  []bool
	count  uint64
}

// NewMemStore allocates storage for hashes in [0, size).
func NewMemStore(size uint64) *MemStore {
	return &MemStore{
		scores: make([]int16, size),
		flags:  make([]Flag, size),
		known:  make([]bool, size),
	}
}

func (s *MemStore) Read(hash uint64) (*Node, error) {
	if hash >= uint64(len(s.known)) {
		return nil, fmt.Errorf("egtb: hash %d outside store range", hash)
	}

	return &Node{
		Hash:  hash,
		Score: int(s.scores[hash]),
		Flag:  s.flags[hash],
		Known: s.known[hash],
	}, nil
}

func (s *MemStore) Write(node *Node) error {
	if node.Hash >= uint64(len(s.known)) {
		return fmt.Errorf("egtb: hash %d outside store range", node.Hash)
	}

	if !s.known[node.Hash] {
		s.count++
	}

	s.scores[node.Hash] = int16(node.Score)
	s.flags[node.Hash] = node.Flag
	s.known[node.Hash] = true

	return nil
}

func (s *MemStore) Count() (uint64, error) {
	return s.count, nil
}

func (s *MemStore) Close() error {
	return nil
}

package egtb

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const sqlSchema = `
CREATE TABLE IF NOT EXISTS nodes (
	hash   INTEGER PRIMARY KEY,
	pieces INTEGER NOT NULL,
	score  INTEGER NOT NULL,
	flag   INTEGER NOT NULL
);`

// SQLStore persists nodes in a sqlite database so builds larger than
// available memory can run and survive restarts up to the last
// finished tier.
type SQLStore struct {
	db     *sql.DB
	read   *sql.Stmt
	write  *sql.Stmt
	writes uint64
}

// NewSQLStore opens or creates a node database at path.
func NewSQLStore(path string) (*SQLStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("egtb: open %s: %w", path, err)
	}

	// Durability of a resumable batch job; speed over safety.
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = OFF;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	if _, err := db.Exec(sqlSchema); err != nil {
		db.Close()
		return nil, err
	}

	read, err := db.Prepare("SELECT pieces, score, flag FROM nodes WHERE hash = ?")
	if err != nil {
		db.Close()
		return nil, err
	}

	write, err := db.Prepare(
		"INSERT OR REPLACE INTO nodes (hash, pieces, score, flag) VALUES (?, ?, ?, ?)")
	if err != nil {
		read.Close()
		db.Close()
		return nil, err
	}

	return &SQLStore{db: db, read: read, write: write}, nil
}

func (s *SQLStore) Read(hash uint64) (*Node, error) {
	node := &Node{Hash: hash}

	row := s.read.QueryRow(int64(hash))
	err := row.Scan(&node.Pieces, &node.Score, &node.Flag)

	if err == sql.ErrNoRows {
		return node, nil
	}

	if err != nil {
		return nil, fmt.Errorf("egtb: read hash %d: %w", hash, err)
	}

	node.Known = true
	return node, nil
}

func (s *SQLStore) Write(node *Node) error {
	_, err := s.write.Exec(int64(node.Hash), node.Pieces, node.Score, node.Flag)
	if err != nil {
		return fmt.Errorf("egtb: write hash %d: %w", node.Hash, err)
	}
	s.writes++
	return nil
}

func (s *SQLStore) Count() (uint64, error) {
	var count uint64
	row := s.db.QueryRow("SELECT COUNT(*) FROM nodes")
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *SQLStore) Close() error {
	s.read.Close()
	s.write.Close()
	return s.db.Close()
}

package leaves

import (
	"errors"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/joansalasoler/draughts/cache"
	"github.com/joansalasoler/draughts/config"
)

const CacheKeyPrefix = "leaves:"

// CacheLoadFunc is the function that loads a tablebase into the global
// cache.
func CacheLoadFunc(cfg *config.Config, key string) (interface{}, error) {
	path := strings.TrimPrefix(key, CacheKeyPrefix)
	log.Debug().Msgf("Loading %v ...", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadLeaves(file)
}

// Get loads the tablebase at path from the cache or from disk.
func Get(cfg *config.Config, path string) (*Leaves, error) {
	obj, err := cache.Load(cfg, CacheKeyPrefix+path, CacheLoadFunc)
	if err != nil {
		return nil, err
	}
	ret, ok := obj.(*Leaves)
	if !ok {
		return nil, errors.New("could not read tablebase from file")
	}
	return ret, nil
}

// Open returns the shared book for the configured leaves path. When
// the file is missing or corrupt it logs a warning and returns a stub,
// so the engine runs without endgame knowledge instead of failing.
func Open(cfg *config.Config) Book {
	book, err := Get(cfg, cfg.LeavesPath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.LeavesPath).
			Msg("endgame tablebase unavailable")
		return Stub{}
	}
	return book
}

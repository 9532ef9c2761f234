package cache

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/joansalasoler/draughts/config"
)

// The cache holds large loaded objects so every consumer of a
// tablebase shares a single copy per file. Loading the five piece
// table takes hundreds of megabytes; an engine probing from several
// places must not load it twice.

type cache struct {
	sync.Mutex
	objects map[string]interface{}
}

// LoadFunc materializes the object behind a cache key.
type LoadFunc func(cfg *config.Config, key string) (interface{}, error)

var global = &cache{objects: make(map[string]interface{})}

// Load returns the cached object for key, materializing it through
// loadFunc on the first request.
func Load(cfg *config.Config, key string, loadFunc LoadFunc) (interface{}, error) {
	return global.get(cfg, key, loadFunc)
}

// Evict drops the object for key so the next Load reloads it. Used
// after a rebuild replaces a tablebase file on disk.
func Evict(key string) {
	global.Lock()
	defer global.Unlock()
	delete(global.objects, key)
}

func (c *cache) get(cfg *config.Config, key string, loadFunc LoadFunc) (interface{}, error) {
	c.Lock()
	defer c.Unlock()

	if obj, ok := c.objects[key]; ok {
		log.Debug().Str("key", key).Msg("getting obj from cache")
		return obj, nil
	}

	log.Debug().Str("key", key).Msg("loading into cache")
	obj, err := loadFunc(cfg, key)
	if err != nil {
		return nil, err
	}
	c.objects[key] = obj

	return obj, nil
}

package resp

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// fragmentTTL bounds how long a rendered fragment may be reused.
const fragmentTTL = time.Hour

var (
	fragmentLock sync.Mutex
	_            FragmentCacher = make(FragmentMap)
	_            FragmentCacher = FragmentRedis{}
)

// A FragmentCacher can store rendered HTML fragments paired to cache keys.
//
// The "json" dispatch format consults a FragmentCacher before rendering;
// directly rendered pages never do, since their contexts carry
// request-scoped values such as flashes.
type FragmentCacher interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, html string)
}

// A FragmentMap stores cache key, fragment value pairs in a map.
//
// Server restarts reset this map.
// FragmentMap ought not be used for production environments.
type FragmentMap map[string]fragmentMapVal

// NewFragmentMap initializes a FragmentMap
// for use as a Responder's FragmentCacher.
func NewFragmentMap() FragmentMap { return make(FragmentMap) }

type fragmentMapVal struct {
	html string
	at   time.Time
}

// Get retrieves the fragment paired to key much like a regular map.
func (f FragmentMap) Get(ctx context.Context, key string) (string, bool) {
	if key == "" {
		return "", false
	}

	select {
	case <-ctx.Done():
		return "", false

	default:
		fragmentLock.Lock()
		defer fragmentLock.Unlock()

		v, ok := f[key]
		if !ok || time.Since(v.at) > fragmentTTL {
			return "", false
		}

		return v.html, true
	}
}

// Set overwrites the fragment paired to key in the map.
//
// For each call to Set, fragments older than fragmentTTL are evicted.
func (f FragmentMap) Set(ctx context.Context, key string, html string) {
	if key == "" {
		return
	}

	select {
	case <-ctx.Done():
		return
	default:
		fragmentLock.Lock()
		defer fragmentLock.Unlock()

		for k, v := range f {
			if time.Since(v.at) > fragmentTTL {
				delete(f, k)
			}
		}

		f[key] = fragmentMapVal{html: html, at: time.Now()}
	}
}

// A FragmentRedis connects to a Redis backend
// for the purposes of caching rendered fragments.
type FragmentRedis struct {
	client *redis.Client
}

// NewRedisCache constructs a FragmentRedis with the options passed in.
func NewRedisCache(opts *redis.Options) FragmentRedis {
	return FragmentRedis{client: redis.NewClient(opts)}
}

// Get retrieves the fragment paired to key from the connected Redis backend.
func (f FragmentRedis) Get(ctx context.Context, key string) (string, bool) {
	if key == "" {
		return "", false
	}

	select {
	case <-ctx.Done():
		return "", false
	default:
		html, err := f.client.Get(ctx, key).Result()
		if err != nil {
			return "", false
		}

		return html, true
	}
}

// Set saves the fragment by pairing it to the key in the Redis backend.
func (f FragmentRedis) Set(ctx context.Context, key string, html string) {
	select {
	case <-ctx.Done():
		return
	default:
		f.client.Set(ctx, key, html, fragmentTTL)
	}
}

// cachedFragment looks a rendered fragment up in the Responder's cache, if any.
func (doer *Responder) cachedFragment(ctx context.Context, name string, rc map[string]any) (string, bool) {
	if doer.cache == nil {
		return "", false
	}

	key, err := fragmentKey(name, rc)
	if err != nil {
		return "", false
	}

	return doer.cache.Get(ctx, key)
}

// cacheFragment stores a rendered fragment in the Responder's cache, if any.
//
// Contexts not representable in JSON produce no key and are not cached.
func (doer *Responder) cacheFragment(ctx context.Context, name string, rc map[string]any, html string) {
	if doer.cache == nil {
		return
	}

	key, err := fragmentKey(name, rc)
	if err != nil {
		return
	}

	doer.cache.Set(ctx, key, html)
}

// fragmentKey hashes the template name and the rendered context into a cache key.
//
// encoding/json sorts map keys, so equal contexts produce equal keys.
func fragmentKey(name string, rc map[string]any) (string, error) {
	b, err := json.Marshal(rc)
	if err != nil {
		return "", err
	}

	h := sha256.New()
	h.Write([]byte(name))
	h.Write(b)
	return hex.EncodeToString(h.Sum(nil)), nil
}

package permute

// DefaultCacheSize is the number of distinct image sizes whose geometry an
// Engine keeps. A chat-bot style workload sees a handful of recurring sizes.
const DefaultCacheSize = 16

const panicCacheSizeInvalid = "permute: WithCacheSize: size must be >= 0"

// Option configures an Engine.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options holds Engine configuration. Fields are set through Option values.
type Options struct {
	cacheSize int
}

// WithCacheSize bounds the geometry cache to size entries (least recently
// used first out). Zero disables caching: every call rebuilds geometry.
// Panics if size is negative.
func WithCacheSize(size int) Option {
	if size < 0 {
		panic(panicCacheSizeInvalid)
	}
	return func(o *Options) {
		o.cacheSize = size
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

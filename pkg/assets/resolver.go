package assets

// Resolver provides asset path resolution.
// It combines manifest lookup with path prefixing.
type Resolver interface {
	// Asset resolves a source asset path to its full URL path, including
	// any configured prefix and fingerprinted filename.
	Asset(source string) string
}

// manifestResolver wraps a Manifest to implement Resolver.
type manifestResolver struct {
	manifest *Manifest
	prefix   string
}

// NewResolver creates a Resolver from a Manifest with an optional path
// prefix. The prefix is prepended to all resolved paths:
//
//	manifest, _ := assets.Load("dist/manifest.json")
//	resolver := assets.NewResolver(manifest, "/static/")
//	resolver.Asset("reactor.js") // "/static/reactor.a1b2c3d4.min.js"
func NewResolver(m *Manifest, prefix string) Resolver {
	return &manifestResolver{
		manifest: m,
		prefix:   prefix,
	}
}

func (r *manifestResolver) Asset(source string) string {
	return r.prefix + r.manifest.Resolve(source)
}

// passthrough returns assets unchanged (for development mode).
type passthrough struct {
	prefix string
}

// NewPassthroughResolver creates a resolver that returns paths with only
// the prefix applied. Use this in development where fingerprinting is
// disabled, so dev and prod asset URLs stay consistent:
//
//	assets.NewPassthroughResolver("/static/").Asset("reactor.js") // "/static/reactor.js"
func NewPassthroughResolver(prefix string) Resolver {
	return &passthrough{prefix: prefix}
}

func (p *passthrough) Asset(source string) string {
	return p.prefix + source
}

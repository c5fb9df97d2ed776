package tenant

import (
	"errors"
	"net/http"
	"strings"
)

// Resolver extracts the operator identifier from an HTTP request.
type Resolver interface {
	// Resolve returns the identifier, or an empty string when the request
	// carries none. An error means extraction itself failed.
	Resolve(r *http.Request) (string, error)
}

// ResolverFunc is an adapter to use ordinary functions as Resolver.
type ResolverFunc func(r *http.Request) (string, error)

// Resolve calls the function.
func (f ResolverFunc) Resolve(r *http.Request) (string, error) {
	return f(r)
}

// HeaderResolver reads the operator identifier from an HTTP header.
// Intended for API traffic routed through a gateway that injects it.
type HeaderResolver struct {
	HeaderName string
}

// NewHeaderResolver creates a header resolver, defaulting to X-Operator-ID.
func NewHeaderResolver(headerName string) *HeaderResolver {
	if headerName == "" {
		headerName = "X-Operator-ID"
	}
	return &HeaderResolver{HeaderName: headerName}
}

// Resolve extracts the identifier from the configured header.
func (r *HeaderResolver) Resolve(req *http.Request) (string, error) {
	return req.Header.Get(r.HeaderName), nil
}

// SubdomainResolver extracts the operator slug from the request host
// (e.g. "metrobus" from "metrobus.fleet.example.com").
type SubdomainResolver struct {
	// BaseDomain is the shared platform domain (e.g. "fleet.example.com").
	// Hosts that equal the base domain, or don't end in it, carry no slug.
	BaseDomain string
}

// NewSubdomainResolver creates a subdomain resolver for the given base domain.
func NewSubdomainResolver(baseDomain string) *SubdomainResolver {
	return &SubdomainResolver{BaseDomain: baseDomain}
}

// Resolve extracts the operator slug from the host's first label.
func (r *SubdomainResolver) Resolve(req *http.Request) (string, error) {
	host := req.Host
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		host = host[:idx]
	}

	suffix := "." + strings.TrimPrefix(r.BaseDomain, ".")
	if r.BaseDomain == "" || !strings.HasSuffix(host, suffix) {
		return "", nil
	}

	slug := strings.TrimSuffix(host, suffix)
	// Nested subdomains (a.b.fleet.example.com) are not operator slugs.
	if slug == "" || slug == "www" || strings.Contains(slug, ".") {
		return "", nil
	}

	return slug, nil
}

// CompositeResolver tries multiple resolvers in order until one yields an
// identifier.
type CompositeResolver struct {
	Resolvers []Resolver
}

// NewCompositeResolver creates a resolver chain.
func NewCompositeResolver(resolvers ...Resolver) *CompositeResolver {
	return &CompositeResolver{Resolvers: resolvers}
}

// Resolve returns the first non-empty identifier from the chain.
func (c *CompositeResolver) Resolve(r *http.Request) (string, error) {
	var errs []error

	for _, resolver := range c.Resolvers {
		id, err := resolver.Resolve(r)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if id != "" {
			return id, nil
		}
	}

	if len(errs) > 0 {
		return "", errors.Join(errs...)
	}
	return "", nil
}

package educrawl

import (
	"net/url"
	"strings"
)

// IsAbsoluteURL reports whether rawURL is an absolute http or https URL.
func IsAbsoluteURL(rawURL string) bool {
	if rawURL == "" {
		return false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// OKToFollow reports whether a discovered URL should be followed: it must be
// absolute (http/https), its host must equal domain or be a subdomain of it,
// it must not contain "@" or use the mailto scheme, and its path must end in
// "/", have no file extension, or end in ".html".
func OKToFollow(rawURL, domain string) bool {
	if !IsAbsoluteURL(rawURL) {
		return false
	}
	if strings.Contains(rawURL, "@") || strings.HasPrefix(strings.ToLower(rawURL), "mailto:") {
		return false
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Host)
	domain = strings.ToLower(domain)
	if host != domain && !strings.HasSuffix(host, "."+domain) {
		return false
	}

	path := u.Path
	if path == "" || strings.HasSuffix(path, "/") {
		return true
	}
	switch ext := pathExtension(path); ext {
	case "", ".html":
		return true
	default:
		return false
	}
}

// pathExtension returns the lowercase extension of the last path segment,
// including the dot, or "" if the segment has none.
func pathExtension(path string) string {
	segments := strings.Split(path, "/")
	last := ""
	for _, seg := range segments {
		if seg != "" {
			last = seg
		}
	}
	idx := strings.LastIndex(last, ".")
	if idx < 0 || idx == len(last)-1 {
		return ""
	}
	ext := last[idx:]
	// Only alphanumeric extensions count; "v1.2" is not a file name.
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return strings.ToLower(ext)
}

// NormalizeURL normalizes a URL for deduplication: the fragment is stripped
// and the scheme and host are lowercased. Path and query are preserved
// verbatim so distinct pages are not collapsed. NormalizeURL is idempotent.
func NormalizeURL(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.Fragment = ""
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	return u.String()
}

// ResolveURL converts a discovered href to an absolute URL relative to the
// page it was found on. Absolute http/https hrefs pass through unchanged;
// javascript:, tel:, and mailto: links are discarded. Returns "" if the href
// cannot be resolved to an absolute http/https URL.
func ResolveURL(pageURL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	lower := strings.ToLower(href)
	for _, prefix := range []string{"javascript:", "tel:", "mailto:"} {
		if strings.HasPrefix(lower, prefix) {
			return ""
		}
	}

	if IsAbsoluteURL(href) {
		return href
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	abs := base.ResolveReference(ref)
	if (abs.Scheme != "http" && abs.Scheme != "https") || abs.Host == "" {
		return ""
	}
	return abs.String()
}

package loader

import (
	"fmt"
	"net/url"
	"strings"
)

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// Source identifies where the record list is read from.
type Source struct {
	Kind     SourceKind
	Location string
}

func (s Source) String() string {
	return string(s.Kind) + ":" + s.Location
}

// SourceFromFile returns a Source pointing to a local file path.
func SourceFromFile(path string) Source {
	return Source{Kind: SourceKindFile, Location: path}
}

// SourceFromFS returns a Source naming a file inside the loader's fs.FS.
func SourceFromFS(name string) Source {
	return Source{Kind: SourceKindFS, Location: name}
}

// SourceFromURL returns a Source for an HTTP(S) endpoint.
func SourceFromURL(raw string) Source {
	return Source{Kind: SourceKindURL, Location: raw}
}

// ParseSource picks the source kind from raw: http and https URLs load over
// the network, anything else is read as a file path.
func ParseSource(raw string) (Source, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Source{}, fmt.Errorf("loader: source is empty")
	}
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		u, err := url.Parse(raw)
		if err != nil {
			return Source{}, fmt.Errorf("loader: parse url: %w", err)
		}
		if u.Host == "" {
			return Source{}, fmt.Errorf("loader: url %q has no host", raw)
		}
		return SourceFromURL(u.String()), nil
	}
	return SourceFromFile(strings.TrimPrefix(raw, "file://")), nil
}

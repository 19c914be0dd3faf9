package schema

import (
	"encoding/json"
	"slices"
	"sort"
)

// providerPreference orders named image providers; others follow alphabetically.
var providerPreference = []string{"nasa", "wikimedia", "esa", "hubble"}

// ImageURLs is the `image_urls` field: either an object of provider to URL,
// or a bare string. Any other shape decodes as empty.
type ImageURLs struct {
	byProvider map[string]string
	single     string
}

// UnmarshalJSON implements json.Unmarshaler.
func (u *ImageURLs) UnmarshalJSON(data []byte) error {
	*u = ImageURLs{}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		u.single = single
		return nil
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	u.byProvider = make(map[string]string, len(raw))
	for provider, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			u.byProvider[provider] = s
		}
	}
	return nil
}

// Ordered returns the URLs in provider preference order.
func (u ImageURLs) Ordered() []string {
	if u.single != "" {
		return []string{u.single}
	}
	rest := make([]string, 0, len(u.byProvider))
	for provider := range u.byProvider {
		if !slices.Contains(providerPreference, provider) {
			rest = append(rest, provider)
		}
	}
	sort.Strings(rest)

	out := make([]string, 0, len(u.byProvider))
	for _, provider := range append(slices.Clone(providerPreference), rest...) {
		if url, ok := u.byProvider[provider]; ok {
			out = append(out, url)
		}
	}
	return out
}

// NewImageURLs builds an ImageURLs from a provider map, for tests and fixtures.
func NewImageURLs(byProvider map[string]string) ImageURLs {
	return ImageURLs{byProvider: byProvider}
}

// Imagery holds every image field a source entry may carry.
type Imagery struct {
	ImageURLs     ImageURLs `json:"image_urls"`
	ImageURL      Text      `json:"imageUrl"`
	Image         Text      `json:"image"`
	ImageURLSnake Text      `json:"image_url"`
}

// Images returns every non-empty reference, provider URLs first, without duplicates.
func (im Imagery) Images() []string {
	candidates := append(im.ImageURLs.Ordered(), im.ImageURL.String(), im.Image.String(), im.ImageURLSnake.String())
	return Unique(candidates...)
}

// Primary returns the first reference, or "".
func (im Imagery) Primary() string {
	if images := im.Images(); len(images) > 0 {
		return images[0]
	}
	return ""
}

// Unique drops empty strings and repeats, keeping first-seen order.
func Unique(refs ...string) []string {
	seen := make(map[string]struct{}, len(refs))
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref == "" {
			continue
		}
		if _, dup := seen[ref]; dup {
			continue
		}
		seen[ref] = struct{}{}
		out = append(out, ref)
	}
	return out
}

package profile

import "strings"

// photoKeys is the priority order for profile photo candidates.
var photoKeys = []string{
	"profile_image_url",
	"profile_picture_url",
	"picture_url",
	"avatar",
	"photo_url",
	"image_url",
	"picture",
}

// LinkedInURL picks the best available profile link and makes sure it
// carries a scheme.
func LinkedInURL(r Raw) string {
	url := r.FirstString("profile_url", "linkedin_url", "url")
	if url == "" {
		return ""
	}
	return ensureScheme(url)
}

// PhotoURL tries the usual photo and avatar keys in priority order. A
// candidate may be a bare string or an object carrying url/src.
func PhotoURL(r Raw) string {
	for _, key := range photoKeys {
		v, ok := r[key]
		if !ok {
			continue
		}
		if m, isMap := v.(map[string]any); isMap {
			v = Raw(m).FirstString("url", "src")
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) != "" {
			return ensureScheme(s)
		}
	}
	return ""
}

// NameFromTitle derives a display name from a search-hit title such as
// "Jane Doe - Staff Engineer | LinkedIn". Falls back when nothing
// usable is left.
func NameFromTitle(title, fallback string) string {
	if strings.TrimSpace(title) == "" {
		return fallback
	}
	primary := strings.TrimSpace(strings.Split(title, "|")[0])
	primary = strings.TrimSpace(strings.Split(primary, " - ")[0])
	if primary == "" {
		return fallback
	}
	return primary
}

func ensureScheme(url string) string {
	if strings.HasPrefix(url, "http") {
		return url
	}
	return "https://" + strings.TrimLeft(url, "/")
}

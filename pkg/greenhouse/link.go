package greenhouse

import "strings"

// nextLink extracts the rel="next" target from RFC 8288 Link header values.
// Harvest sends e.g. <https://harvest.greenhouse.io/v1/jobs?page=2&per_page=100>; rel="next"
func nextLink(values []string) string {
	for _, value := range values {
		for _, link := range strings.Split(value, ",") {
			target, params, ok := strings.Cut(link, ";")
			if !ok {
				continue
			}
			target = strings.TrimSpace(target)
			if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
				continue
			}

			for _, param := range strings.Split(params, ";") {
				key, val, ok := strings.Cut(strings.TrimSpace(param), "=")
				if !ok || !strings.EqualFold(strings.TrimSpace(key), "rel") {
					continue
				}
				for _, rel := range strings.Fields(strings.Trim(strings.TrimSpace(val), `"`)) {
					if strings.EqualFold(rel, "next") {
						return strings.TrimSuffix(strings.TrimPrefix(target, "<"), ">")
					}
				}
			}
		}
	}
	return ""
}

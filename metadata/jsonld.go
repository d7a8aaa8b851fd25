package metadata

import "encoding/json"

// WebsiteJSONLD returns the schema.org WebSite record for the descriptor,
// published by the organization behind the site.
func (d Descriptor) WebsiteJSONLD() string {
	data := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        d.ApplicationName,
		"url":         d.AbsoluteURL("/"),
		"description": d.Description,
	}
	if d.Publisher != "" {
		org := map[string]any{
			"@type": "Organization",
			"name":  d.Publisher,
			"url":   d.AbsoluteURL("/"),
		}
		if len(d.OpenGraph.Images) > 0 {
			org["logo"] = d.AbsoluteURL(d.OpenGraph.Images[0].URL)
		}
		data["publisher"] = org
	}
	if len(d.Authors) > 0 {
		data["author"] = map[string]string{
			"@type": "Organization",
			"name":  d.Authors[0].Name,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

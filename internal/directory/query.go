package directory

import "strings"

var indexMapping = map[string]interface{}{
	"mappings": map[string]interface{}{
		"properties": map[string]interface{}{
			"id":          map[string]interface{}{"type": "keyword"},
			"location":    map[string]interface{}{"type": "keyword"},
			"serviceType": map[string]interface{}{"type": "keyword"},
			"name":        map[string]interface{}{"type": "text"},
			"address":     map[string]interface{}{"type": "text"},
			"notes":       map[string]interface{}{"type": "text"},
			"phone":       map[string]interface{}{"type": "keyword", "index": false},
			"hours":       map[string]interface{}{"type": "keyword", "index": false},
		},
	},
}

// buildSearchQuery matches text against the listing fields and filters by
// location when one is given. An empty text matches everything.
func buildSearchQuery(text, location string) map[string]interface{} {
	must := []interface{}{}
	if text = strings.TrimSpace(text); text != "" {
		must = append(must, map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  text,
				"fields": []string{"name^3", "serviceType^2", "notes", "address"},
				"type":   "best_fields",
			},
		})
	} else {
		must = append(must, map[string]interface{}{"match_all": map[string]interface{}{}})
	}

	boolQuery := map[string]interface{}{"must": must}
	if location = strings.ToLower(strings.TrimSpace(location)); location != "" {
		boolQuery["filter"] = []interface{}{
			map[string]interface{}{"term": map[string]interface{}{"location": location}},
		}
	}

	return map[string]interface{}{
		"query": map[string]interface{}{"bool": boolQuery},
		"sort":  []interface{}{"_score", map[string]interface{}{"id": "asc"}},
	}
}

package domain

// SearchResult is a single hit from the unified search index.
// Type distinguishes courses, materials and teachers; the optional fields
// are populated depending on that type.
type SearchResult struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	Type           string   `json:"type"`
	Description    string   `json:"description,omitempty"`
	Category       string   `json:"category,omitempty"`
	Level          string   `json:"level,omitempty"`
	TeacherName    string   `json:"teacher_name,omitempty"`
	MaterialType   string   `json:"material_type_field,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	RelevanceScore *float64 `json:"relevance_score,omitempty"`
}

// FacetValue is one value bucket within a search facet
type FacetValue struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// SearchFacets groups the facet buckets returned alongside search results
type SearchFacets struct {
	Categories    []FacetValue `json:"categories"`
	Levels        []FacetValue `json:"levels"`
	Tags          []FacetValue `json:"tags"`
	MaterialTypes []FacetValue `json:"material_types"`
	Teachers      []FacetValue `json:"teachers"`
}

// SearchResponse is the full payload of a search call, echoing the applied
// filters back to the caller
type SearchResponse struct {
	Query   string         `json:"query,omitempty"`
	Filters map[string]any `json:"filters,omitempty"`
	Results []SearchResult `json:"results"`
	Facets  SearchFacets   `json:"facets"`
}

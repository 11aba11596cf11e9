package vigil

// ListParams carries the paging fields shared by every search operation.
// A zero Page or PageSize leaves the platform default in effect.
type ListParams struct {
	Page     int
	PageSize int
}

func (p *ListParams) fill(body map[string]any) {
	if p.Page > 0 {
		body["page"] = p.Page
	}

	if p.PageSize > 0 {
		body["pageSize"] = p.PageSize
	}
}

// AlertListParams filters an alert search.
type AlertListParams struct {
	ListParams

	Severity string
	Status   string
	Query    string
}

// ToBody translates the params into a search request body.
func (p *AlertListParams) ToBody() map[string]any {
	body := make(map[string]any)
	if p == nil {
		return body
	}

	p.fill(body)

	if p.Severity != "" {
		body["severity"] = p.Severity
	}

	if p.Status != "" {
		body["status"] = p.Status
	}

	if p.Query != "" {
		body["query"] = p.Query
	}

	return body
}

// CaseListParams filters a case search.
type CaseListParams struct {
	ListParams

	Status   string
	Assignee string
}

// ToBody translates the params into a search request body.
func (p *CaseListParams) ToBody() map[string]any {
	body := make(map[string]any)
	if p == nil {
		return body
	}

	p.fill(body)

	if p.Status != "" {
		body["status"] = p.Status
	}

	if p.Assignee != "" {
		body["assignee"] = p.Assignee
	}

	return body
}

// EndpointListParams filters an endpoint search.
type EndpointListParams struct {
	ListParams

	Hostname string
	Platform string
	Isolated *bool
}

// ToBody translates the params into a search request body.
func (p *EndpointListParams) ToBody() map[string]any {
	body := make(map[string]any)
	if p == nil {
		return body
	}

	p.fill(body)

	if p.Hostname != "" {
		body["hostname"] = p.Hostname
	}

	if p.Platform != "" {
		body["platform"] = p.Platform
	}

	if p.Isolated != nil {
		body["isolated"] = *p.Isolated
	}

	return body
}

// ThreatListParams filters a threat search.
type ThreatListParams struct {
	ListParams

	Category   string
	Confidence string
}

// ToBody translates the params into a search request body.
func (p *ThreatListParams) ToBody() map[string]any {
	body := make(map[string]any)
	if p == nil {
		return body
	}

	p.fill(body)

	if p.Category != "" {
		body["category"] = p.Category
	}

	if p.Confidence != "" {
		body["confidence"] = p.Confidence
	}

	return body
}

// VulnerabilityListParams filters a vulnerability search.
type VulnerabilityListParams struct {
	ListParams

	MinScore float64
	CVE      string
}

// ToBody translates the params into a search request body.
func (p *VulnerabilityListParams) ToBody() map[string]any {
	body := make(map[string]any)
	if p == nil {
		return body
	}

	p.fill(body)

	if p.MinScore > 0 {
		body["minScore"] = p.MinScore
	}

	if p.CVE != "" {
		body["cve"] = p.CVE
	}

	return body
}

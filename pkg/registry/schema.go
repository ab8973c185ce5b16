// pkg/registry/schema.go
package registry

// ActivityRegistry is the machine-readable list of job workers a BPMN
// modeller can use.
type ActivityRegistry struct {
	Version     string     `json:"version"`
	LastUpdated string     `json:"lastUpdated"`
	Activities  []Activity `json:"activities"`
}

// Activity describes one job worker. HTTPRoute names the API route that runs
// the same operation, when there is one.
type Activity struct {
	ID                   string                 `json:"id"`
	DisplayName          string                 `json:"displayName"`
	Description          string                 `json:"description"`
	Category             string                 `json:"category"`
	Version              string                 `json:"version"`
	TaskType             string                 `json:"taskType"`
	HTTPRoute            string                 `json:"httpRoute,omitempty"`
	ImplementationStatus string                 `json:"implementationStatus"`
	InputSchema          map[string]interface{} `json:"inputSchema"`
	OutputSchema         map[string]interface{} `json:"outputSchema"`
	Errors               []ActivityError        `json:"errors"`
	Timeout              string                 `json:"timeout"`
	Retries              int                    `json:"retries"`
	Tags                 []string               `json:"tags"`
}

// ActivityError is a BPMN error the worker may throw. Retries is what the
// engine is told to retry; zero means the boundary event fires at once.
type ActivityError struct {
	Code     string `json:"code"`
	Category string `json:"category"`
	Retries  int    `json:"retries"`
}

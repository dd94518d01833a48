package autosave

// Form is one locally edited form. Action is the form's declared target;
// empty means the page's own path.
type Form struct {
	Name   string            `yaml:"-"`
	Action string            `yaml:"action"`
	Fields map[string]string `yaml:"fields"`
}

// SaveResponse is the server's reply to an auto-save.
type SaveResponse struct {
	Success bool `json:"success"`
}

// Stats counts auto-save outcomes.
type Stats struct {
	Saved    int64 `json:"saved"`
	Rejected int64 `json:"rejected"`
	Failed   int64 `json:"failed"`
}

// SuccessMessage is the toast shown after a successful save.
const SuccessMessage = "Form auto-saved successfully"

package ollama

type (
	GenerateRequest struct {
		Model   string  `json:"model"`
		System  string  `json:"system,omitempty"`
		Prompt  string  `json:"prompt"`
		Stream  bool    `json:"stream"`
		Options Options `json:"options,omitempty"`
	}

	Options struct {
		Seed uint32 `json:"seed,omitempty"`
	}

	GenerateResponse struct {
		Model         string `json:"model"`
		CreatedAt     string `json:"created_at"`
		Response      string `json:"response"`
		Done          bool   `json:"done"`
		TotalDuration int64  `json:"total_duration"`
		EvalCount     int    `json:"eval_count"`
		EvalDuration  int64  `json:"eval_duration"`
	}

	TagsResponse struct {
		Models []TagModel `json:"models"`
	}

	TagModel struct {
		Name string `json:"name"`
	}
)

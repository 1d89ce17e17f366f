package models

// Shapes exchanged with the Piston execution engine. The request body is
// forwarded verbatim, responses come back enriched with a parsed error
// when the run stage wrote to stderr.

type CodeFile struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type CodeRequest struct {
	Language string     `json:"language" validate:"required"`
	Version  string     `json:"version" validate:"required"`
	Files    []CodeFile `json:"files" validate:"required,min=1"`
}

// Code is the result of one execution stage.
type Code struct {
	Signal   *string `json:"signal"`
	Stdout   string  `json:"stdout"`
	Stderr   string  `json:"stderr"`
	Code     *int    `json:"code"`
	Output   string  `json:"output"`
	Memory   int64   `json:"memory"`
	Message  *string `json:"message"`
	Status   *string `json:"status"`
	CPUTime  int64   `json:"cpu_time"`
	WallTime int64   `json:"wall_time"`
}

// CodeError is a best effort breakdown of an interpreter traceback.
// Every field is optional; parsing never rejects a response. Line and
// column stay strings, they are lifted straight out of the traceback.
type CodeError struct {
	Type         *string `json:"type"`
	StatusCode   *int    `json:"status_code"`
	Message      *string `json:"message"`
	ErrorSnippet *string `json:"error_snippet"`
	Pointer      *string `json:"pointer"`
	Location     *string `json:"location"`
	Line         *string `json:"line"`
	Column       *string `json:"column"`
}

type CodeResponse struct {
	Compile *Code      `json:"compile"`
	Run     *Code      `json:"run"`
	Error   *CodeError `json:"error"`
}

package history

import "time"

// Run is one completed retime run.
type Run struct {
	ID           string        `json:"id" yaml:"id"`
	StartedAt    time.Time     `json:"started_at" yaml:"started_at"`
	InputPath    string        `json:"input_path" yaml:"input_path"`
	OutputPath   string        `json:"output_path" yaml:"output_path"`
	DelaySeconds int           `json:"delay_seconds" yaml:"delay_seconds"`
	Direction    string        `json:"direction" yaml:"direction"`
	Charset      string        `json:"charset" yaml:"charset"`
	Lines        int           `json:"lines" yaml:"lines"`
	Cues         int           `json:"cues" yaml:"cues"`
	BelowZero    int           `json:"below_zero" yaml:"below_zero"`
	Elapsed      time.Duration `json:"elapsed" yaml:"elapsed"`
}
